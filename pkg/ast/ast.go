// Package ast defines the lisp2c syntax tree node types.
package ast

// Node is the interface implemented by all tree nodes. The set of
// implementations is closed: NumberLiteral, StringLiteral, CallExpression,
// ExpressionStatement and Program.
type Node interface {
	Kind() string
	Pos() int
	node() // sealed marker
}

// --- Literals ---

// NumberLiteral holds a digit run exactly as written.
type NumberLiteral struct {
	Offset int
	Value  string
}

func (n *NumberLiteral) Kind() string { return "NumberLiteral" }
func (n *NumberLiteral) Pos() int     { return n.Offset }
func (n *NumberLiteral) node()        {}

// StringLiteral holds the bytes between the quote delimiters, unescaped.
type StringLiteral struct {
	Offset int
	Value  string
}

func (n *StringLiteral) Kind() string { return "StringLiteral" }
func (n *StringLiteral) Pos() int     { return n.Offset }
func (n *StringLiteral) node()        {}

// --- Calls ---

type CallExpression struct {
	Offset int
	Name   string
	Params []Node
}

func (n *CallExpression) Kind() string { return "CallExpression" }
func (n *CallExpression) Pos() int     { return n.Offset }
func (n *CallExpression) node()        {}

// ExpressionStatement marks a call in statement position. Only the
// transformer produces it.
type ExpressionStatement struct {
	Offset     int
	Expression *CallExpression
}

func (n *ExpressionStatement) Kind() string { return "ExpressionStatement" }
func (n *ExpressionStatement) Pos() int     { return n.Offset }
func (n *ExpressionStatement) node()        {}

// --- Program ---

type Program struct {
	Body []Node
}

func (n *Program) Kind() string { return "Program" }
func (n *Program) Pos() int     { return 0 }
func (n *Program) node()        {}
