package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pystyle/pystyle/formatter"
	"github.com/pystyle/pystyle/internal"
	tt "github.com/pystyle/pystyle/internal/types"
	"github.com/pystyle/pystyle/lint"
)

var (
	ignoreRules     string
	checkJsonOutput bool
	outPath         string
	prettyOutput    bool
	showProgress    bool
	exitCode        bool
)

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Run the style checks over files or directories",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		engine, err := lint.New(cfgFile)
		if err != nil {
			logger.Fatal("Failed to initialize check engine", zap.Error(err))
		}

		if ignoreRules != "" {
			for _, rule := range strings.Split(ignoreRules, ",") {
				engine.IgnoreRule(tt.RuleCode(strings.TrimSpace(rule)))
			}
		}

		report := internal.NewReport()
		runErr := lint.ProcessFiles(ctx, engine, args, report, lint.Options{Progress: showProgress})

		// findings collected before a failure are still reported
		printReport(logger, report, checkJsonOutput, outPath, prettyOutput)

		if runErr != nil {
			logger.Fatal("Error processing files", zap.Error(runErr))
		}
		if exitCode && report.Total() > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	checkCmd.Flags().StringVar(&ignoreRules, "ignore", "", "Comma-separated list of rule codes to ignore")
	checkCmd.Flags().BoolVar(&checkJsonOutput, "json", false, "Output findings in JSON format")
	checkCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path (when using JSON)")
	checkCmd.Flags().BoolVar(&prettyOutput, "pretty", false, "Render findings with their source lines")
	checkCmd.Flags().BoolVar(&showProgress, "progress", false, "Show a progress bar during directory scans")
	checkCmd.Flags().BoolVar(&exitCode, "exit-code", false, "Exit with status 1 when findings exist")
}

func printReport(logger *zap.Logger, report *internal.Report, isJson bool, jsonOutput string, pretty bool) {
	switch {
	case isJson:
		d, err := json.Marshal(report.ByFile())
		if err != nil {
			logger.Error("Error marshalling findings to JSON", zap.Error(err))
			return
		}
		if jsonOutput == "" {
			fmt.Println(string(d))
			return
		}
		if err := os.WriteFile(jsonOutput, d, 0o644); err != nil {
			logger.Error("Error writing JSON output file", zap.Error(err))
		}
	case pretty:
		for _, filename := range report.Files() {
			sourceCode, err := internal.ReadSourceCode(filename)
			if err != nil {
				logger.Error("Error reading source file", zap.String("file", filename), zap.Error(err))
				continue
			}
			fmt.Print(formatter.Pretty(filename, report.Issues(filename), sourceCode))
		}
	default:
		fmt.Print(formatter.Plain(report))
	}
}
