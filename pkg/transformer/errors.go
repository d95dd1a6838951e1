package transformer

import (
	"github.com/thomasrohde/lisp2c/pkg/ast"
	"github.com/thomasrohde/lisp2c/pkg/diagnostics"
)

// TransformErrorKind classifies transformer failures.
type TransformErrorKind int

const (
	// TopLevelLiteral: a number or string appears outside any call.
	TopLevelLiteral TransformErrorKind = iota
	// UnexpectedNode: the input tree holds a node the parser never builds.
	UnexpectedNode
)

func (k TransformErrorKind) String() string {
	switch k {
	case TopLevelLiteral:
		return "TopLevelLiteral"
	case UnexpectedNode:
		return "UnexpectedNode"
	default:
		return "TransformErrorKind(?)"
	}
}

// TransformError wraps a diagnostic for transform errors.
type TransformError struct {
	Kind TransformErrorKind
	Node ast.Node
	Diag diagnostics.Diagnostic
	Err  error
}

func (e *TransformError) Error() string {
	return e.Diag.Message
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

func (e *TransformError) Diagnostic() diagnostics.Diagnostic {
	return e.Diag
}
