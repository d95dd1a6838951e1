package parser

import "github.com/thomasrohde/lisp2c/pkg/diagnostics"

// ParseErrorKind classifies parser failures.
type ParseErrorKind int

const (
	UnexpectedToken ParseErrorKind = iota
	UnexpectedEnd
	ExpectedName
)

func (k ParseErrorKind) String() string {
	switch k {
	case UnexpectedToken:
		return "UnexpectedToken"
	case UnexpectedEnd:
		return "UnexpectedEnd"
	case ExpectedName:
		return "ExpectedName"
	default:
		return "ParseErrorKind(?)"
	}
}

// ParseError wraps a diagnostic for parse errors. Index is the token index
// the cursor was at; for UnexpectedEnd it equals the token count and Offset
// is the end of the last token.
type ParseError struct {
	Kind   ParseErrorKind
	Index  int
	Offset int
	Diag   diagnostics.Diagnostic
}

func (e *ParseError) Error() string {
	return e.Diag.Message
}

func (e *ParseError) Diagnostic() diagnostics.Diagnostic {
	return e.Diag
}
