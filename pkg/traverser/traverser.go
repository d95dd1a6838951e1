// Package traverser walks lisp2c trees in a fixed order, calling a Visitor
// before (pre-order) and after (post-order) each node's children.
package traverser

import (
	"fmt"

	"github.com/thomasrohde/lisp2c/pkg/ast"
)

// Visitor receives walk events. Enter returns the context that is handed to
// the node's children; Exit receives the context the node itself was
// entered with.
type Visitor[C any] interface {
	Enter(node, parent ast.Node, ctx C) (C, error)
	Exit(node, parent ast.Node, ctx C) error
}

// UnknownNodeError is returned when the walk meets a node kind outside the
// closed ast set.
type UnknownNodeError struct {
	Node ast.Node
}

func (e *UnknownNodeError) Error() string {
	return fmt.Sprintf("traverser: unknown node type %T", e.Node)
}

// Walk visits node and its descendants. The root's parent is nil. Children
// of Program are its Body and children of CallExpression its Params, in
// order; every other kind is a leaf. The first error from v stops the walk
// and is returned unchanged.
func Walk[C any](node, parent ast.Node, v Visitor[C], ctx C) error {
	var children []ast.Node
	switch n := node.(type) {
	case *ast.Program:
		children = n.Body
	case *ast.CallExpression:
		children = n.Params
	case *ast.NumberLiteral, *ast.StringLiteral, *ast.ExpressionStatement:
	default:
		return &UnknownNodeError{Node: node}
	}

	childCtx, err := v.Enter(node, parent, ctx)
	if err != nil {
		return err
	}
	for _, child := range children {
		if err := Walk(child, node, v, childCtx); err != nil {
			return err
		}
	}
	return v.Exit(node, parent, ctx)
}

// Hooks adapts a pair of plain functions to a Visitor that carries no
// context. Either function may be nil.
type Hooks struct {
	OnEnter func(node, parent ast.Node) error
	OnExit  func(node, parent ast.Node) error
}

func (h Hooks) Enter(node, parent ast.Node, ctx struct{}) (struct{}, error) {
	if h.OnEnter == nil {
		return ctx, nil
	}
	return ctx, h.OnEnter(node, parent)
}

func (h Hooks) Exit(node, parent ast.Node, _ struct{}) error {
	if h.OnExit == nil {
		return nil
	}
	return h.OnExit(node, parent)
}

// Traverse walks root with hooks, starting with a nil parent.
func Traverse(root ast.Node, hooks Hooks) error {
	return Walk[struct{}](root, nil, hooks, struct{}{})
}
