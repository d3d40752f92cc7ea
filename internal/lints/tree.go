package lints

import (
	"strings"

	"github.com/pystyle/pystyle/internal/pyast"
	tt "github.com/pystyle/pystyle/internal/types"
)

// CheckTree runs the syntax-tree checks over a parsed file and returns the
// findings in source order.
//
// Per function definition: one S010 for every parameter name containing an
// uppercase letter, attributed to the definition's line, then at most one
// S012 classifying only the first defaulted parameter. Per assignment whose
// nearest enclosing block is a function body: one S011 for every simple
// identifier target containing an uppercase letter.
func CheckTree(filename string, file *pyast.File) []tt.Issue {
	var issues []tt.Issue
	pyast.Walk(file, func(n pyast.Node) {
		switch node := n.(type) {
		case *pyast.FuncDef:
			issues = append(issues, checkFuncDef(filename, node)...)
		case *pyast.Assign:
			issues = append(issues, checkAssign(filename, node)...)
		}
	})
	return issues
}

func checkFuncDef(filename string, fn *pyast.FuncDef) []tt.Issue {
	var issues []tt.Issue
	for _, param := range fn.Params {
		if containsUpper(param.Name) {
			issues = append(issues, newIssue(tt.ArgumentNaming, filename, fn.Line))
		}
	}
	// Only the first defaulted parameter is classified; later defaults on
	// the same signature are not inspected.
	for _, param := range fn.Params {
		if param.Default == nil {
			continue
		}
		if !param.Default.Constant() {
			issues = append(issues, newIssue(tt.MutableDefault, filename, fn.Line))
		}
		break
	}
	return issues
}

func checkAssign(filename string, assign *pyast.Assign) []tt.Issue {
	if !assign.FuncScoped {
		return nil
	}
	var issues []tt.Issue
	for _, target := range assign.Targets {
		if target.Simple && containsUpper(target.Name) {
			issues = append(issues, newIssue(tt.VariableNaming, filename, assign.Line))
		}
	}
	return issues
}

func containsUpper(name string) bool {
	return strings.IndexFunc(name, func(r rune) bool {
		return r >= 'A' && r <= 'Z'
	}) >= 0
}
