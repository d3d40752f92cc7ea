// Package pyast provides a minimal syntax tree over Python source files.
//
// The parser recognizes only the node kinds the style checks need: function
// definitions (with their parameter lists and default expressions) and simple
// assignment statements, classified by the block they appear in. Everything
// else in the source is scanned for structure (strings, comments, bracket
// nesting) but produces no nodes.
package pyast

// ExprKind tags the shape of a default-value expression.
type ExprKind int

const (
	// ExprConstant covers literal constants: numbers, plain strings,
	// True, False, None and Ellipsis.
	ExprConstant ExprKind = iota
	ExprList
	ExprDict
	ExprTuple
	ExprName
	ExprCall
	ExprOther
)

func (k ExprKind) String() string {
	switch k {
	case ExprConstant:
		return "constant"
	case ExprList:
		return "list"
	case ExprDict:
		return "dict"
	case ExprTuple:
		return "tuple"
	case ExprName:
		return "name"
	case ExprCall:
		return "call"
	default:
		return "other"
	}
}

// Expr is a default-value expression with its classified kind.
type Expr struct {
	Kind ExprKind
	Text string
}

// Constant reports whether the expression is a literal constant.
func (e Expr) Constant() bool { return e.Kind == ExprConstant }

// Param is one named formal parameter of a function definition.
type Param struct {
	Name    string
	Default *Expr
}

// Node is the interface implemented by all syntax tree nodes.
type Node interface {
	// Pos returns the 1-based source line the node starts on.
	Pos() int
}

// FuncDef is a function definition header.
type FuncDef struct {
	Line   int
	Name   string
	Params []Param
}

func (f *FuncDef) Pos() int { return f.Line }

// Target is one assignment target. Simple is true for a bare identifier;
// attribute, subscript and starred targets carry Simple == false.
type Target struct {
	Name   string
	Simple bool
}

// Assign is a plain assignment statement. FuncScoped is true when the
// nearest enclosing block is a function body; class bodies and the module
// level leave it false.
type Assign struct {
	Line       int
	Targets    []Target
	FuncScoped bool
}

func (a *Assign) Pos() int { return a.Line }

// File is the parsed representation of one source file. Nodes are ordered
// by source position.
type File struct {
	Nodes []Node
}

// Walk calls fn for every node in source order.
func Walk(f *File, fn func(Node)) {
	for _, n := range f.Nodes {
		fn(n)
	}
}
