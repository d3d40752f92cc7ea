// Package formatter renders analysis reports for output.
package formatter

import (
	"strings"

	"github.com/pystyle/pystyle/internal"
)

// Plain renders the canonical report: one line per finding, files sorted
// lexicographically, findings in discovery order within each file.
//
//	<file_path>: Line <line_number>: <rule_code> <rule_description>
func Plain(report *internal.Report) string {
	var builder strings.Builder
	for _, path := range report.Files() {
		for _, issue := range report.Issues(path) {
			builder.WriteString(issue.String())
			builder.WriteByte('\n')
		}
	}
	return builder.String()
}
