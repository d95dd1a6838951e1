package ast_test

import (
	"testing"

	"github.com/thomasrohde/lisp2c/pkg/ast"
)

func TestNodeKinds(t *testing.T) {
	call := &ast.CallExpression{Offset: 3, Name: "add"}
	nodes := []ast.Node{
		&ast.NumberLiteral{Offset: 1, Value: "42"},
		&ast.StringLiteral{Offset: 2, Value: "hi"},
		call,
		&ast.ExpressionStatement{Offset: 3, Expression: call},
		&ast.Program{},
	}

	expected := []struct {
		kind string
		pos  int
	}{
		{"NumberLiteral", 1},
		{"StringLiteral", 2},
		{"CallExpression", 3},
		{"ExpressionStatement", 3},
		{"Program", 0},
	}

	for i, node := range nodes {
		if got := node.Kind(); got != expected[i].kind {
			t.Errorf("node %d: got Kind() = %q, want %q", i, got, expected[i].kind)
		}
		if got := node.Pos(); got != expected[i].pos {
			t.Errorf("node %d: got Pos() = %d, want %d", i, got, expected[i].pos)
		}
	}
}
