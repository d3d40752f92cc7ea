package lints

import (
	"testing"

	"github.com/stretchr/testify/assert"

	tt "github.com/pystyle/pystyle/internal/types"
)

func TestBlankRunTracker(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		lines   []string
		flagged []int // line numbers expected to flag S006
	}{
		{
			name:    "no blank lines",
			lines:   []string{"a = 1", "b = 2"},
			flagged: nil,
		},
		{
			name:    "two blank lines allowed",
			lines:   []string{"a = 1", "", "", "b = 2"},
			flagged: nil,
		},
		{
			name:    "three blank lines flag the code line",
			lines:   []string{"a = 1", "", "", "", "b = 2"},
			flagged: []int{5},
		},
		{
			name:    "run is settled once",
			lines:   []string{"", "", "", "a = 1", "b = 2"},
			flagged: []int{4},
		},
		{
			name:    "counter resets between runs",
			lines:   []string{"", "", "", "a = 1", "", "", "", "b = 2"},
			flagged: []int{4, 8},
		},
		{
			name:    "trailing blanks produce nothing",
			lines:   []string{"a = 1", "", "", ""},
			flagged: nil,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var tracker BlankRunTracker
			tracker.Reset()

			var got []int
			for i, line := range tc.lines {
				for _, issue := range tracker.Check("test.py", line, i+1) {
					assert.Equal(t, tt.BlankLines, issue.Rule)
					got = append(got, issue.Line)
				}
			}
			assert.Equal(t, tc.flagged, got)
		})
	}
}
