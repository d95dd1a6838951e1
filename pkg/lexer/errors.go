package lexer

import "github.com/thomasrohde/lisp2c/pkg/diagnostics"

// LexErrorKind classifies tokenizer failures.
type LexErrorKind int

const (
	UnknownCharacter LexErrorKind = iota
	UnexpectedEnd
)

func (k LexErrorKind) String() string {
	switch k {
	case UnknownCharacter:
		return "UnknownCharacter"
	case UnexpectedEnd:
		return "UnexpectedEnd"
	default:
		return "LexErrorKind(?)"
	}
}

// LexError wraps a diagnostic for lex errors. Char is set for
// UnknownCharacter only. Offset is the byte offset of the offending
// character, or the source length for UnexpectedEnd.
type LexError struct {
	Kind   LexErrorKind
	Char   rune
	Offset int
	Diag   diagnostics.Diagnostic
}

func (e *LexError) Error() string {
	return e.Diag.Message
}

func (e *LexError) Diagnostic() diagnostics.Diagnostic {
	return e.Diag
}
