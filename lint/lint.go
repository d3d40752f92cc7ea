// Package lint is the public facade over the checking engine: it loads the
// configuration, discovers files and drives the per-file checks.
package lint

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"gopkg.in/yaml.v3"

	"github.com/pystyle/pystyle/internal"
	tt "github.com/pystyle/pystyle/internal/types"
	"github.com/pystyle/pystyle/scanner"
)

// Extension is the source-file extension considered during directory scans.
const Extension = ".py"

// DefaultConfigFile is consulted when no configuration path is given.
const DefaultConfigFile = ".pystyle.yaml"

// Engine is the part of the checking engine the facade needs.
type Engine interface {
	Run(filePath string) ([]tt.Issue, error)
	RunSource(source []byte) ([]tt.Issue, error)
	IgnoreRule(code tt.RuleCode)
}

// New builds an engine from the configuration file at configurationPath.
// An empty path falls back to DefaultConfigFile; a missing default file
// yields the built-in rule set.
func New(configurationPath string) (*internal.Engine, error) {
	config, err := LoadConfig(configurationPath)
	if err != nil {
		return nil, err
	}
	return internal.NewEngine(config.Rules), nil
}

// Options adjusts how paths are processed.
type Options struct {
	// Progress renders a progress bar on stderr during directory scans.
	Progress bool
}

// ProcessFiles checks every given path sequentially, collecting findings
// into the report. Processing stops at the first fatal error; errors carry
// the offending path and are reported by the caller.
func ProcessFiles(ctx context.Context, engine Engine, paths []string, report *internal.Report, opts Options) error {
	for _, path := range paths {
		if err := ProcessPath(ctx, engine, path, report, opts); err != nil {
			return err
		}
	}
	return nil
}

// ProcessPath checks one file or directory. A directory contributes its
// direct children with the .py extension; an explicit file is checked
// regardless of extension. Findings collected before a parse failure are
// committed to the report before the error is returned.
func ProcessPath(ctx context.Context, engine Engine, path string, report *internal.Report, opts Options) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("error accessing %s: %w", path, err)
	}

	if !info.IsDir() {
		return processFile(engine, path, report)
	}

	files, err := scanner.New(path, Extension).Scan()
	if err != nil {
		return fmt.Errorf("error scanning directory %s: %w", path, err)
	}

	var bar *progressbar.ProgressBar
	if opts.Progress {
		bar = progressbar.NewOptions(len(files),
			progressbar.OptionSetDescription(path),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	for _, file := range files {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := processFile(engine, file.Path, report); err != nil {
			return err
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	return nil
}

func processFile(engine Engine, path string, report *internal.Report) error {
	issues, err := engine.Run(path)
	report.Add(path, issues...)
	if err != nil {
		return fmt.Errorf("error checking %s: %w", path, err)
	}
	return nil
}

// Config represents the overall configuration with a name and a map of rules.
type Config struct {
	Name  string                   `yaml:"name"`
	Rules map[string]tt.ConfigRule `yaml:"rules"`
}

// LoadConfig reads and parses the configuration file. Only the implicit
// default file is allowed to be absent.
func LoadConfig(configurationPath string) (Config, error) {
	var config Config

	implicit := configurationPath == ""
	if implicit {
		configurationPath = DefaultConfigFile
	}

	f, err := os.Open(configurationPath)
	if err != nil {
		if implicit && errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return config, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&config); err != nil {
		return config, fmt.Errorf("error parsing %s: %w", configurationPath, err)
	}
	return config, nil
}
