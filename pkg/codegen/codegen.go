// Package codegen renders a transformed lisp2c tree as C-style call text.
package codegen

import (
	"fmt"
	"strings"

	"github.com/thomasrohde/lisp2c/pkg/ast"
	"github.com/thomasrohde/lisp2c/pkg/diagnostics"
)

// Generate renders node. A Program renders every body element followed by
// a newline.
func Generate(node ast.Node) (string, error) {
	var b strings.Builder
	if err := generate(&b, node); err != nil {
		return "", err
	}
	return b.String(), nil
}

func generate(b *strings.Builder, node ast.Node) error {
	switch n := node.(type) {
	case *ast.NumberLiteral:
		b.WriteString(n.Value)
	case *ast.StringLiteral:
		b.WriteByte('"')
		b.WriteString(n.Value)
		b.WriteByte('"')
	case *ast.CallExpression:
		b.WriteString(n.Name)
		b.WriteByte('(')
		for i, param := range n.Params {
			if i > 0 {
				b.WriteString(", ")
			}
			if err := generate(b, param); err != nil {
				return err
			}
		}
		b.WriteByte(')')
	case *ast.ExpressionStatement:
		if n.Expression == nil {
			return unknownNode(node)
		}
		if err := generate(b, n.Expression); err != nil {
			return err
		}
		b.WriteByte(';')
	case *ast.Program:
		for _, stmt := range n.Body {
			if err := generate(b, stmt); err != nil {
				return err
			}
			b.WriteByte('\n')
		}
	default:
		return unknownNode(node)
	}
	return nil
}

func unknownNode(node ast.Node) error {
	var loc *diagnostics.Location
	if node != nil {
		loc = diagnostics.At(node.Pos())
	}
	return &GenError{
		Kind: UnknownNode,
		Node: node,
		Diag: diagnostics.MakeDiag(
			diagnostics.EGen,
			fmt.Sprintf("cannot generate code for %T", node),
			loc,
			"",
		),
	}
}

// GenErrorKind classifies code generation failures.
type GenErrorKind int

const (
	UnknownNode GenErrorKind = iota
)

func (k GenErrorKind) String() string {
	if k == UnknownNode {
		return "UnknownNode"
	}
	return "GenErrorKind(?)"
}

// GenError wraps a diagnostic for code generation errors.
type GenError struct {
	Kind GenErrorKind
	Node ast.Node
	Diag diagnostics.Diagnostic
}

func (e *GenError) Error() string {
	return e.Diag.Message
}

func (e *GenError) Diagnostic() diagnostics.Diagnostic {
	return e.Diag
}
