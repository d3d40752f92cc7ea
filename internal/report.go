package internal

import (
	"sort"

	tt "github.com/pystyle/pystyle/internal/types"
)

// Report accumulates findings keyed by file path, in append order per file.
// One Report covers one analysis run; it is read-only after the run.
type Report struct {
	files map[string][]tt.Issue
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{files: make(map[string][]tt.Issue)}
}

// Add appends findings for the given file, preserving discovery order.
func (r *Report) Add(path string, issues ...tt.Issue) {
	if len(issues) == 0 {
		return
	}
	r.files[path] = append(r.files[path], issues...)
}

// Files returns the file paths with findings, sorted lexicographically.
func (r *Report) Files() []string {
	paths := make([]string, 0, len(r.files))
	for path := range r.files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Issues returns the findings for one file in discovery order.
func (r *Report) Issues(path string) []tt.Issue {
	return r.files[path]
}

// ByFile returns the full path-to-findings mapping.
func (r *Report) ByFile() map[string][]tt.Issue {
	return r.files
}

// Total returns the number of findings across all files.
func (r *Report) Total() int {
	n := 0
	for _, issues := range r.files {
		n += len(issues)
	}
	return n
}
