// Package lexer implements the lisp2c tokenizer.
package lexer

import (
	"fmt"
	"unicode/utf8"

	"github.com/thomasrohde/lisp2c/pkg/diagnostics"
)

// TokenType identifies the type of a lexer token.
type TokenType int

const (
	TokParen  TokenType = iota // ( or )
	TokNumber                  // digit run
	TokString                  // "..." contents
	TokName                    // letter run
)

func (t TokenType) String() string {
	switch t {
	case TokParen:
		return "paren"
	case TokNumber:
		return "number"
	case TokString:
		return "string"
	case TokName:
		return "name"
	default:
		return fmt.Sprintf("token(%d)", int(t))
	}
}

// Token represents a single lexer token.
type Token struct {
	Type   TokenType
	Value  string
	Offset int
}

// IsParen reports whether tok is the given parenthesis.
func (tok Token) IsParen(p byte) bool {
	return tok.Type == TokParen && len(tok.Value) == 1 && tok.Value[0] == p
}

// End returns the byte offset just past the token, including string quotes.
func (tok Token) End() int {
	if tok.Type == TokString {
		return tok.Offset + len(tok.Value) + 2
	}
	return tok.Offset + len(tok.Value)
}

type scanner struct {
	source string
	pos    int
}

func (s *scanner) atEnd() bool {
	return s.pos >= len(s.source)
}

func (s *scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.source[s.pos]
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// scanRun consumes the maximal run of bytes matching pred. The run ends at
// the first non-matching byte or at the end of the source.
func (s *scanner) scanRun(typ TokenType, pred func(byte) bool) Token {
	start := s.pos
	for !s.atEnd() && pred(s.peek()) {
		s.pos++
	}
	return Token{Type: typ, Value: s.source[start:s.pos], Offset: start}
}

func (s *scanner) scanString() (Token, error) {
	start := s.pos
	s.pos++ // consume opening "

	for !s.atEnd() {
		if s.peek() == '"' {
			value := s.source[start+1 : s.pos]
			s.pos++ // consume closing "
			return Token{Type: TokString, Value: value, Offset: start}, nil
		}
		s.pos++
	}
	return Token{}, &LexError{
		Kind:   UnexpectedEnd,
		Offset: len(s.source),
		Diag: diagnostics.MakeDiag(
			diagnostics.ELex,
			fmt.Sprintf("unterminated string literal starting at offset %d", start),
			diagnostics.At(len(s.source)),
			"add a closing '\"'",
		),
	}
}

func (s *scanner) nextToken() (Token, error) {
	ch := s.peek()

	switch {
	case ch == '(' || ch == ')':
		tok := Token{Type: TokParen, Value: s.source[s.pos : s.pos+1], Offset: s.pos}
		s.pos++
		return tok, nil
	case isDigit(ch):
		return s.scanRun(TokNumber, isDigit), nil
	case isAlpha(ch):
		return s.scanRun(TokName, isAlpha), nil
	case ch == '"':
		return s.scanString()
	}

	r, _ := utf8.DecodeRuneInString(s.source[s.pos:])
	return Token{}, &LexError{
		Kind:   UnknownCharacter,
		Char:   r,
		Offset: s.pos,
		Diag: diagnostics.MakeDiag(
			diagnostics.ELex,
			fmt.Sprintf("unknown character %q", r),
			diagnostics.At(s.pos),
			"",
		),
	}
}

// Tokenize breaks source code into a slice of tokens.
func Tokenize(source string) ([]Token, error) {
	s := &scanner{source: source}
	var tokens []Token

	for {
		for !s.atEnd() && isSpace(s.peek()) {
			s.pos++
		}
		if s.atEnd() {
			return tokens, nil
		}
		tok, err := s.nextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
}
