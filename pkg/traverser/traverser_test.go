package traverser_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thomasrohde/lisp2c/pkg/ast"
	"github.com/thomasrohde/lisp2c/pkg/traverser"
)

func label(n ast.Node) string {
	switch n := n.(type) {
	case nil:
		return "<nil>"
	case *ast.Program:
		return "Program"
	case *ast.CallExpression:
		return "Call:" + n.Name
	case *ast.NumberLiteral:
		return "Num:" + n.Value
	case *ast.StringLiteral:
		return "Str:" + n.Value
	case *ast.ExpressionStatement:
		return "Stmt"
	}
	return fmt.Sprintf("%T", n)
}

// (add 2 (subtract 4 2)) "s"
func sampleTree() *ast.Program {
	return &ast.Program{Body: []ast.Node{
		&ast.CallExpression{Name: "add", Params: []ast.Node{
			&ast.NumberLiteral{Value: "2"},
			&ast.CallExpression{Name: "subtract", Params: []ast.Node{
				&ast.NumberLiteral{Value: "4"},
				&ast.NumberLiteral{Value: "2"},
			}},
		}},
		&ast.StringLiteral{Value: "s"},
	}}
}

func TestTraverseOrder(t *testing.T) {
	var events []string
	hooks := traverser.Hooks{
		OnEnter: func(node, parent ast.Node) error {
			events = append(events, "enter "+label(node)+" <- "+label(parent))
			return nil
		},
		OnExit: func(node, parent ast.Node) error {
			events = append(events, "exit "+label(node))
			return nil
		},
	}

	require.NoError(t, traverser.Traverse(sampleTree(), hooks))

	assert.Equal(t, []string{
		"enter Program <- <nil>",
		"enter Call:add <- Program",
		"enter Num:2 <- Call:add",
		"exit Num:2",
		"enter Call:subtract <- Call:add",
		"enter Num:4 <- Call:subtract",
		"exit Num:4",
		"enter Num:2 <- Call:subtract",
		"exit Num:2",
		"exit Call:subtract",
		"exit Call:add",
		"enter Str:s <- Program",
		"exit Str:s",
		"exit Program",
	}, events)
}

func TestTraverseNilHooks(t *testing.T) {
	require.NoError(t, traverser.Traverse(sampleTree(), traverser.Hooks{}))
}

func TestExpressionStatementIsLeaf(t *testing.T) {
	stmt := &ast.ExpressionStatement{Expression: &ast.CallExpression{Name: "inner"}}
	var seen []string
	err := traverser.Traverse(&ast.Program{Body: []ast.Node{stmt}}, traverser.Hooks{
		OnEnter: func(node, _ ast.Node) error {
			seen = append(seen, label(node))
			return nil
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Program", "Stmt"}, seen)
}

func TestEnterErrorStopsWalk(t *testing.T) {
	stop := errors.New("stop")
	var seen []string
	err := traverser.Traverse(sampleTree(), traverser.Hooks{
		OnEnter: func(node, _ ast.Node) error {
			seen = append(seen, label(node))
			if label(node) == "Call:subtract" {
				return stop
			}
			return nil
		},
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"Program", "Call:add", "Num:2", "Call:subtract"}, seen)
}

func TestExitErrorStopsWalk(t *testing.T) {
	stop := errors.New("stop")
	var exits []string
	err := traverser.Traverse(sampleTree(), traverser.Hooks{
		OnExit: func(node, _ ast.Node) error {
			exits = append(exits, label(node))
			return stop
		},
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"Num:2"}, exits)
}

func TestUnknownNode(t *testing.T) {
	err := traverser.Traverse(&ast.Program{Body: []ast.Node{nil}}, traverser.Hooks{})

	var une *traverser.UnknownNodeError
	require.ErrorAs(t, err, &une)
	assert.Nil(t, une.Node)
}

// depthVisitor threads the nesting depth through the context.
type depthVisitor struct {
	depths map[string]int
}

func (v *depthVisitor) Enter(node, _ ast.Node, depth int) (int, error) {
	v.depths[label(node)] = depth
	return depth + 1, nil
}

func (v *depthVisitor) Exit(node, _ ast.Node, depth int) error {
	if v.depths[label(node)] != depth {
		return fmt.Errorf("exit context for %s = %d, want %d", label(node), depth, v.depths[label(node)])
	}
	return nil
}

func TestWalkThreadsContext(t *testing.T) {
	v := &depthVisitor{depths: map[string]int{}}
	require.NoError(t, traverser.Walk[int](sampleTree(), nil, v, 0))

	assert.Equal(t, map[string]int{
		"Program":       0,
		"Call:add":      1,
		"Num:2":         3, // the later "2" under subtract overwrites the one under add
		"Call:subtract": 2,
		"Num:4":         3,
		"Str:s":         1,
	}, v.depths)
}
