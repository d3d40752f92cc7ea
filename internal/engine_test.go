package internal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tt "github.com/pystyle/pystyle/internal/types"
)

type finding struct {
	Code tt.RuleCode
	Line int
}

func findings(issues []tt.Issue) []finding {
	var out []finding
	for _, issue := range issues {
		out = append(out, finding{Code: issue.Rule, Line: issue.Line})
	}
	return out
}

func TestEngineRunSource(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		source   string
		expected []finding
	}{
		{
			name:     "clean file",
			source:   "def do_things():\n    return 1\n",
			expected: nil,
		},
		{
			name:     "long line",
			source:   strings.Repeat("x", 80) + " = 1\n",
			expected: []finding{{tt.TooLong, 1}},
		},
		{
			name:   "spacing and naming example",
			source: "def   foo():\n    BadVar = 1\n",
			expected: []finding{
				{tt.ConstructionSpaces, 1},
				{tt.VariableNaming, 2},
			},
		},
		{
			name:   "blank run flags the code line once",
			source: "x = 1\n\n\n\ny = 2\n",
			expected: []finding{
				{tt.BlankLines, 5},
			},
		},
		{
			name:   "line findings precede tree findings",
			source: "def  BadFunc(Arg=[]):\n    BadVar = 1;  # todo later\n",
			expected: []finding{
				{tt.ConstructionSpaces, 1},
				{tt.FunctionNaming, 1},
				{tt.Semicolon, 2},
				{tt.Todo, 2},
				{tt.ArgumentNaming, 1},
				{tt.MutableDefault, 1},
				{tt.VariableNaming, 2},
			},
		},
		{
			name:   "checks within a line run in fixed order",
			source: "  x = 1; # todo\n",
			expected: []finding{
				{tt.Indentation, 1},
				{tt.Semicolon, 1},
				{tt.CommentSpacing, 1},
				{tt.Todo, 1},
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			engine := NewEngine(nil)
			issues, err := engine.RunSource([]byte(tc.source))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, findings(issues))
		})
	}
}

func TestEngineBlankRunResetsBetweenFiles(t *testing.T) {
	t.Parallel()

	engine := NewEngine(nil)

	// leave the first file with a pending blank run
	issues, err := engine.RunSource([]byte("x = 1\n\n\n\n"))
	require.NoError(t, err)
	assert.Empty(t, issues)

	// the next file must start with a fresh counter
	issues, err = engine.RunSource([]byte("y = 2\n"))
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestEngineIgnoreRule(t *testing.T) {
	t.Parallel()

	engine := NewEngine(nil)
	engine.IgnoreRule(tt.Todo)

	issues, err := engine.RunSource([]byte("x = 1  # todo\n"))
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestEngineConfiguredSeverityOff(t *testing.T) {
	t.Parallel()

	engine := NewEngine(map[string]tt.ConfigRule{
		"S003":    {Severity: tt.SeverityOff},
		"bogus":   {Severity: tt.SeverityOff},
		"S001":    {Severity: tt.SeverityError},
		"S000000": {Severity: tt.SeverityOff},
	})

	issues, err := engine.RunSource([]byte("x = 1;\n"))
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestEngineParseFailureKeepsLineFindings(t *testing.T) {
	t.Parallel()

	issuesSource := "x = 1;\ndef broken(:\n"
	engine := NewEngine(nil)
	issues, err := engine.RunSource([]byte(issuesSource))
	require.Error(t, err)
	assert.Equal(t, []finding{{tt.Semicolon, 1}}, findings(issues))
}

func TestEngineRunFile(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "sample.py")
	err := os.WriteFile(path, []byte("def foo(BadName):\n    pass\n"), 0o644)
	require.NoError(t, err)

	engine := NewEngine(nil)
	issues, err := engine.Run(path)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, tt.ArgumentNaming, issues[0].Rule)
	assert.Equal(t, path, issues[0].Filename)
	assert.Equal(t, 1, issues[0].Line)
}

func TestEngineRunMissingFile(t *testing.T) {
	t.Parallel()

	engine := NewEngine(nil)
	_, err := engine.Run(filepath.Join(t.TempDir(), "nope.py"))
	require.Error(t, err)
}

func TestSplitLines(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		source   string
		expected []string
	}{
		{"empty", "", nil},
		{"single line with newline", "a\n", []string{"a"}},
		{"no trailing newline", "a\nb", []string{"a", "b"}},
		{"blank lines kept", "a\n\n\nb\n", []string{"a", "", "", "b"}},
		{"crlf stripped", "a\r\nb\r\n", []string{"a", "b"}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := SplitLines([]byte(tc.source))
			if tc.expected == nil {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, tc.expected, got)
			}
		})
	}
}
