package lints

import (
	tt "github.com/pystyle/pystyle/internal/types"
)

// BlankRunTracker counts consecutive blank lines within one file's line
// stream and reports S006 on the first code line after a run of more than
// two. The zero value is ready to use; Reset must be called between files.
type BlankRunTracker struct {
	run int
}

// Reset clears the run counter. Called at the start of every file.
func (t *BlankRunTracker) Reset() {
	t.run = 0
}

// Check consumes one line. Blank lines grow the run; a code line settles it.
func (t *BlankRunTracker) Check(filename, line string, lineNum int) []tt.Issue {
	if line == "" {
		t.run++
		return nil
	}
	if t.run > 2 {
		t.run = 0
		return []tt.Issue{newIssue(tt.BlankLines, filename, lineNum)}
	}
	t.run = 0
	return nil
}
