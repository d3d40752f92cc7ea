package internal

import (
	"github.com/pystyle/pystyle/internal/lints"
	"github.com/pystyle/pystyle/internal/pyast"
	tt "github.com/pystyle/pystyle/internal/types"
)

/*
* Implement each style rule as a separate struct
 */

// LineRule defines the interface for rules that inspect one physical line.
type LineRule interface {
	// Check runs the rule on the given line and returns found issues.
	Check(filename, line string, lineNum int) []tt.Issue

	// Code returns the rule code this rule reports.
	Code() tt.RuleCode
}

// resettable is implemented by line rules carrying state across lines.
type resettable interface {
	Reset()
}

type LineLengthRule struct{}

func (r *LineLengthRule) Check(filename, line string, lineNum int) []tt.Issue {
	return lints.CheckLineLength(filename, line, lineNum)
}

func (r *LineLengthRule) Code() tt.RuleCode { return tt.TooLong }

type IndentationRule struct{}

func (r *IndentationRule) Check(filename, line string, lineNum int) []tt.Issue {
	return lints.CheckIndentation(filename, line, lineNum)
}

func (r *IndentationRule) Code() tt.RuleCode { return tt.Indentation }

type SemicolonRule struct{}

func (r *SemicolonRule) Check(filename, line string, lineNum int) []tt.Issue {
	return lints.CheckSemicolon(filename, line, lineNum)
}

func (r *SemicolonRule) Code() tt.RuleCode { return tt.Semicolon }

type CommentSpacingRule struct{}

func (r *CommentSpacingRule) Check(filename, line string, lineNum int) []tt.Issue {
	return lints.CheckCommentSpacing(filename, line, lineNum)
}

func (r *CommentSpacingRule) Code() tt.RuleCode { return tt.CommentSpacing }

type TodoRule struct{}

func (r *TodoRule) Check(filename, line string, lineNum int) []tt.Issue {
	return lints.CheckTodo(filename, line, lineNum)
}

func (r *TodoRule) Code() tt.RuleCode { return tt.Todo }

// BlankLinesRule is stateful: it tracks the current blank-line run and is
// reset at the start of every file.
type BlankLinesRule struct {
	tracker lints.BlankRunTracker
}

func (r *BlankLinesRule) Check(filename, line string, lineNum int) []tt.Issue {
	return r.tracker.Check(filename, line, lineNum)
}

func (r *BlankLinesRule) Code() tt.RuleCode { return tt.BlankLines }

func (r *BlankLinesRule) Reset() { r.tracker.Reset() }

type ConstructionSpacingRule struct{}

func (r *ConstructionSpacingRule) Check(filename, line string, lineNum int) []tt.Issue {
	return lints.CheckConstructionSpacing(filename, line, lineNum)
}

func (r *ConstructionSpacingRule) Code() tt.RuleCode { return tt.ConstructionSpaces }

type ClassNamingRule struct{}

func (r *ClassNamingRule) Check(filename, line string, lineNum int) []tt.Issue {
	return lints.CheckClassNaming(filename, line, lineNum)
}

func (r *ClassNamingRule) Code() tt.RuleCode { return tt.ClassNaming }

type FunctionNamingRule struct{}

func (r *FunctionNamingRule) Check(filename, line string, lineNum int) []tt.Issue {
	return lints.CheckFunctionNaming(filename, line, lineNum)
}

func (r *FunctionNamingRule) Code() tt.RuleCode { return tt.FunctionNaming }

// -----------------------------------------------------------------------------

// TreeRule defines the interface for rules that inspect the parsed file.
type TreeRule interface {
	Check(filename string, file *pyast.File) []tt.Issue
}

// NamingAndDefaultsRule runs the syntax-tree checks: argument naming (S010),
// variable naming (S011) and mutable default values (S012).
type NamingAndDefaultsRule struct{}

func (r *NamingAndDefaultsRule) Check(filename string, file *pyast.File) []tt.Issue {
	return lints.CheckTree(filename, file)
}

// defaultLineRules returns the line rules in their fixed evaluation order.
// The order is part of the output contract.
func defaultLineRules() []LineRule {
	return []LineRule{
		&LineLengthRule{},
		&IndentationRule{},
		&SemicolonRule{},
		&CommentSpacingRule{},
		&TodoRule{},
		&BlankLinesRule{},
		&ConstructionSpacingRule{},
		&ClassNamingRule{},
		&FunctionNamingRule{},
	}
}
