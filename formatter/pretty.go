package formatter

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/pystyle/pystyle/internal"
	tt "github.com/pystyle/pystyle/internal/types"
)

const tabWidth = 8

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	ruleStyle    = color.New(color.FgYellow, color.Bold)
	fileStyle    = color.New(color.FgCyan, color.Bold)
	lineStyle    = color.New(color.FgBlue, color.Bold)
	messageStyle = color.New(color.FgRed, color.Bold)
)

// Pretty renders one file's findings with their source lines.
func Pretty(filename string, issues []tt.Issue, sourceCode *internal.SourceCode) string {
	var builder strings.Builder
	for _, issue := range issues {
		builder.WriteString(formatIssueHeader(issue))
		builder.WriteString(formatIssueBody(issue, sourceCode))
	}
	return builder.String()
}

func formatIssueHeader(issue tt.Issue) string {
	return errorStyle.Sprint("error: ") + ruleStyle.Sprint(string(issue.Rule)) + "\n" +
		lineStyle.Sprint(" --> ") + fileStyle.Sprintf("%s:%d", issue.Filename, issue.Line) + "\n"
}

func formatIssueBody(issue tt.Issue, sourceCode *internal.SourceCode) string {
	var result strings.Builder

	lineNumberStr := fmt.Sprintf("%d", issue.Line)
	padding := strings.Repeat(" ", len(lineNumberStr)-1)
	result.WriteString(lineStyle.Sprintf("  %s|\n", padding))

	var line string
	if issue.Line >= 1 && issue.Line <= len(sourceCode.Lines) {
		line = expandTabs(sourceCode.Lines[issue.Line-1])
	}
	result.WriteString(lineStyle.Sprintf("%d | ", issue.Line))
	result.WriteString(line + "\n")

	result.WriteString(lineStyle.Sprintf("  %s| ", padding))
	result.WriteString(messageStyle.Sprintf("^ %s %s\n\n", issue.Rule, issue.Message))

	return result.String()
}

func expandTabs(line string) string {
	var expanded strings.Builder
	column := 0
	for _, ch := range line {
		if ch == '\t' {
			spaceCount := tabWidth - (column % tabWidth)
			expanded.WriteString(strings.Repeat(" ", spaceCount))
			column += spaceCount
		} else {
			expanded.WriteRune(ch)
			column++
		}
	}
	return expanded.String()
}
