// Package formatter implements the lisp2c source code formatter.
package formatter

import (
	"strings"

	"github.com/thomasrohde/lisp2c/pkg/ast"
)

// Format pretty-prints a parsed program back to source code: one top-level
// form per line, arguments separated by single spaces.
func Format(program *ast.Program) string {
	if len(program.Body) == 0 {
		return ""
	}
	lines := make([]string, len(program.Body))
	for i, n := range program.Body {
		lines[i] = formatExpr(n)
	}
	return strings.Join(lines, "\n") + "\n"
}

func formatExpr(n ast.Node) string {
	switch expr := n.(type) {
	case *ast.NumberLiteral:
		return expr.Value
	case *ast.StringLiteral:
		return `"` + expr.Value + `"`
	case *ast.CallExpression:
		parts := make([]string, 0, len(expr.Params)+1)
		parts = append(parts, expr.Name)
		for _, p := range expr.Params {
			parts = append(parts, formatExpr(p))
		}
		return "(" + strings.Join(parts, " ") + ")"
	case *ast.ExpressionStatement:
		return formatExpr(expr.Expression)
	}
	return ""
}
