package lints

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pystyle/pystyle/internal/pyast"
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

func TestCheckTree(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		source   string
		expected []finding
	}{
		{
			name: "argument naming at definition line",
			source: `def foo(BadName):
    pass
`,
			expected: []finding{{tt.ArgumentNaming, 1}},
		},
		{
			name: "one finding per violating argument",
			source: `def foo(Bad, worse, Worst):
    pass
`,
			expected: []finding{{tt.ArgumentNaming, 1}, {tt.ArgumentNaming, 1}},
		},
		{
			name: "mutable list default",
			source: `def f(x=[]):
    pass
`,
			expected: []finding{{tt.MutableDefault, 1}},
		},
		{
			name: "constant default",
			source: `def f(x=1):
    pass
`,
			expected: nil,
		},
		{
			name: "only the first default is classified",
			source: `def f(a=1, b=[]):
    pass
`,
			expected: nil,
		},
		{
			name: "first default mutable flags once",
			source: `def f(a={}, b=[]):
    pass
`,
			expected: []finding{{tt.MutableDefault, 1}},
		},
		{
			name: "name reference default is not constant",
			source: `def f(x=DEFAULT):
    pass
`,
			expected: []finding{{tt.MutableDefault, 1}},
		},
		{
			name: "string default is constant",
			source: `def f(x='hello'):
    pass
`,
			expected: nil,
		},
		{
			name: "none default is constant",
			source: `def f(x=None):
    pass
`,
			expected: nil,
		},
		{
			name: "function-local variable naming",
			source: `def foo():
    BadVar = 1
`,
			expected: []finding{{tt.VariableNaming, 2}},
		},
		{
			name: "module-level assignment exempt",
			source: `CONSTANT = 1
`,
			expected: nil,
		},
		{
			name: "class attribute exempt",
			source: `class Config:
    Retries = 3
`,
			expected: nil,
		},
		{
			name: "method body is function scope",
			source: `class Config:
    def reload(self):
        Timeout = 5
`,
			expected: []finding{{tt.VariableNaming, 3}},
		},
		{
			name: "attribute target skipped",
			source: `def f(self):
    self.Value = 1
`,
			expected: nil,
		},
		{
			name: "subscript target skipped",
			source: `def f(d):
    d["Key"] = 1
`,
			expected: nil,
		},
		{
			name: "tuple targets checked independently",
			source: `def f():
    Bad, good = 1, 2
`,
			expected: []finding{{tt.VariableNaming, 2}},
		},
		{
			name: "statements joined by semicolons",
			source: `def f():
    x = 1; Bad = 2
`,
			expected: []finding{{tt.VariableNaming, 2}},
		},
		{
			name: "inline conditional suite",
			source: `def f():
    if x: Bad = 1
`,
			expected: []finding{{tt.VariableNaming, 2}},
		},
		{
			name: "module-level inline suite exempt",
			source: `if x: Bad = 1
`,
			expected: nil,
		},
		{
			name: "argument and variable findings in source order",
			source: `def f(Arg=[]):
    Var = 1
`,
			expected: []finding{
				{tt.ArgumentNaming, 1},
				{tt.MutableDefault, 1},
				{tt.VariableNaming, 2},
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			file, err := pyast.ParseFile("test.py", []byte(tc.source))
			require.NoError(t, err)

			issues := CheckTree("test.py", file)
			assert.Equal(t, tc.expected, findings(issues))
			for _, issue := range issues {
				assert.Equal(t, "test.py", issue.Filename)
				assert.Equal(t, issue.Rule.Description(), issue.Message)
			}
		})
	}
}
