package formatter

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/pystyle/pystyle/internal"
	tt "github.com/pystyle/pystyle/internal/types"
)

func init() {
	// keep the layout assertions free of escape codes
	color.NoColor = true
}

func TestPlain(t *testing.T) {
	t.Parallel()

	report := internal.NewReport()
	report.Add("b.py", tt.Issue{
		Rule: tt.TooLong, Filename: "b.py", Line: 12, Message: tt.TooLong.Description(),
	})
	report.Add("a.py",
		tt.Issue{Rule: tt.ConstructionSpaces, Filename: "a.py", Line: 1, Message: tt.ConstructionSpaces.Description()},
		tt.Issue{Rule: tt.VariableNaming, Filename: "a.py", Line: 2, Message: tt.VariableNaming.Description()},
	)

	expected := "a.py: Line 1: S007 Too many spaces after construction_name (def or class)\n" +
		"a.py: Line 2: S011 Variable var_name should be written in snake_case\n" +
		"b.py: Line 12: S001 Too long\n"
	assert.Equal(t, expected, Plain(report))
}

func TestPlainEmptyReport(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "", Plain(internal.NewReport()))
}

func TestPretty(t *testing.T) {
	t.Parallel()

	// styles render as plain text without a terminal; check the layout
	sourceCode := &internal.SourceCode{Lines: []string{"x = 1;"}}
	issues := []tt.Issue{{
		Rule: tt.Semicolon, Filename: "a.py", Line: 1, Message: tt.Semicolon.Description(),
	}}

	out := Pretty("a.py", issues, sourceCode)
	assert.Contains(t, out, "error: ")
	assert.Contains(t, out, "a.py:1")
	assert.Contains(t, out, "1 | x = 1;")
	assert.Contains(t, out, "^ S003 Unnecessary semicolon after a statement")
}

func TestExpandTabs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "        x", expandTabs("\tx"))
	assert.Equal(t, "a       b", expandTabs("a\tb"))
	assert.False(t, strings.Contains(expandTabs("\t\t"), "\t"))
}
