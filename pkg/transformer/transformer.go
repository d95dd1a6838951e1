// Package transformer rebuilds a parsed program into the shape the code
// generator expects: every top-level call is wrapped in an
// ExpressionStatement. The result shares no node with the input.
package transformer

import (
	"fmt"

	"github.com/thomasrohde/lisp2c/pkg/ast"
	"github.com/thomasrohde/lisp2c/pkg/diagnostics"
	"github.com/thomasrohde/lisp2c/pkg/traverser"
)

// scope is the context threaded through the walk. call is the new node
// that children of the current input node are appended to; it is nil at
// the top level.
type scope struct {
	program *ast.Program
	call    *ast.CallExpression
}

// appendNode adds a freshly built node to the call under construction.
func (s scope) appendNode(n ast.Node) {
	s.call.Params = append(s.call.Params, n)
}

type builder struct{}

func (builder) Enter(node, parent ast.Node, s scope) (scope, error) {
	switch n := node.(type) {
	case *ast.Program:
		if parent != nil {
			return s, unexpectedNode(n)
		}
		return scope{program: s.program}, nil

	case *ast.NumberLiteral:
		if s.call == nil {
			return s, topLevelLiteral(n, n.Value)
		}
		s.appendNode(&ast.NumberLiteral{Offset: n.Offset, Value: n.Value})
		return s, nil

	case *ast.StringLiteral:
		if s.call == nil {
			return s, topLevelLiteral(n, fmt.Sprintf("%q", n.Value))
		}
		s.appendNode(&ast.StringLiteral{Offset: n.Offset, Value: n.Value})
		return s, nil

	case *ast.CallExpression:
		call := &ast.CallExpression{Offset: n.Offset, Name: n.Name}
		if s.call == nil {
			s.program.Body = append(s.program.Body, &ast.ExpressionStatement{
				Offset:     n.Offset,
				Expression: call,
			})
		} else {
			s.appendNode(call)
		}
		return scope{program: s.program, call: call}, nil

	case *ast.ExpressionStatement:
		return s, unexpectedNode(n)
	}
	return s, unexpectedNode(node)
}

func (builder) Exit(ast.Node, ast.Node, scope) error { return nil }

// Transform returns a new program equivalent to program with top-level
// calls wrapped in statements. A literal outside any call is rejected.
func Transform(program *ast.Program) (*ast.Program, error) {
	if program == nil {
		return nil, &TransformError{
			Kind: UnexpectedNode,
			Diag: diagnostics.MakeDiag(diagnostics.ETransform, "transform: nil program", nil, ""),
		}
	}

	out := &ast.Program{}
	if err := traverser.Walk[scope](program, nil, builder{}, scope{program: out}); err != nil {
		if _, ok := err.(*TransformError); ok {
			return nil, err
		}
		return nil, &TransformError{
			Kind: UnexpectedNode,
			Diag: diagnostics.MakeDiag(diagnostics.ETransform, err.Error(), nil, ""),
			Err:  err,
		}
	}
	return out, nil
}

func topLevelLiteral(n ast.Node, text string) error {
	return &TransformError{
		Kind: TopLevelLiteral,
		Node: n,
		Diag: diagnostics.MakeDiag(
			diagnostics.ETransform,
			fmt.Sprintf("literal %s is not inside a call", text),
			diagnostics.At(n.Pos()),
			"only calls may appear at the top level",
		),
	}
}

func unexpectedNode(n ast.Node) error {
	var loc *diagnostics.Location
	if n != nil {
		loc = diagnostics.At(n.Pos())
	}
	return &TransformError{
		Kind: UnexpectedNode,
		Node: n,
		Diag: diagnostics.MakeDiag(
			diagnostics.ETransform,
			fmt.Sprintf("unexpected %T in parsed program", n),
			loc,
			"",
		),
	}
}
