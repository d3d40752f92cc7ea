package internal

import (
	"os"
	"strings"

	"github.com/pystyle/pystyle/internal/pyast"
	tt "github.com/pystyle/pystyle/internal/types"
)

// Engine manages the checking process for one run. Files are processed
// sequentially; per-file state (the blank-line run) is reset between files.
type Engine struct {
	ignoredRules map[tt.RuleCode]bool
	lineRules    []LineRule
	treeRule     TreeRule
}

// NewEngine creates an engine with the full rule set, applying the
// configured per-rule severities. Rules configured "off" are ignored.
func NewEngine(rules map[string]tt.ConfigRule) *Engine {
	e := &Engine{
		lineRules: defaultLineRules(),
		treeRule:  &NamingAndDefaultsRule{},
	}
	for key, rule := range rules {
		code := tt.RuleCode(key)
		if !code.Valid() {
			// unknown rule, continue to the next one
			continue
		}
		if rule.Severity == tt.SeverityOff {
			e.IgnoreRule(code)
		}
	}
	return e
}

// IgnoreRule suppresses all findings for the given code.
func (e *Engine) IgnoreRule(code tt.RuleCode) {
	if e.ignoredRules == nil {
		e.ignoredRules = make(map[tt.RuleCode]bool)
	}
	e.ignoredRules[code] = true
}

// Run applies all checks to the named file. On a parse failure the line
// findings collected so far are still returned together with the error.
func (e *Engine) Run(filename string) ([]tt.Issue, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return e.run(filename, content)
}

// RunSource applies all checks to in-memory source.
func (e *Engine) RunSource(source []byte) ([]tt.Issue, error) {
	return e.run("", source)
}

func (e *Engine) run(filename string, source []byte) ([]tt.Issue, error) {
	for _, rule := range e.lineRules {
		if r, ok := rule.(resettable); ok {
			r.Reset()
		}
	}

	var issues []tt.Issue
	for i, line := range SplitLines(source) {
		for _, rule := range e.lineRules {
			issues = append(issues, rule.Check(filename, line, i+1)...)
		}
	}

	file, err := pyast.ParseFile(filename, source)
	if err != nil {
		// line findings survive a parse failure
		return e.filterIgnored(issues), err
	}
	issues = append(issues, e.treeRule.Check(filename, file)...)

	return e.filterIgnored(issues), nil
}

func (e *Engine) filterIgnored(issues []tt.Issue) []tt.Issue {
	if len(e.ignoredRules) == 0 {
		return issues
	}
	filtered := make([]tt.Issue, 0, len(issues))
	for _, issue := range issues {
		if !e.ignoredRules[issue.Rule] {
			filtered = append(filtered, issue)
		}
	}
	return filtered
}

// SplitLines splits source into physical lines the way Python iterates a
// text file: the trailing newline is stripped and a final newline does not
// produce an extra empty line. CRLF endings behave like LF.
func SplitLines(source []byte) []string {
	lines := strings.Split(string(source), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// SourceCode stores the content of a source code file.
type SourceCode struct {
	Lines []string
}

// ReadSourceCode reads the content of a file and returns it as a `SourceCode` struct.
func ReadSourceCode(filename string) (*SourceCode, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return &SourceCode{Lines: SplitLines(content)}, nil
}
