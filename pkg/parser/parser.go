// Package parser implements the lisp2c recursive-descent parser.
//
// Grammar:
//
//	Program    := Expression*
//	Expression := Number | String | Call
//	Call       := '(' Name Expression* ')'
package parser

import (
	"fmt"

	"github.com/thomasrohde/lisp2c/pkg/ast"
	"github.com/thomasrohde/lisp2c/pkg/diagnostics"
	"github.com/thomasrohde/lisp2c/pkg/lexer"
)

type parser struct {
	tokens []lexer.Token
	pos    int
}

// ParseSource tokenizes source and parses it into a tree. Lex errors are
// returned unchanged.
func ParseSource(source string) (*ast.Program, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

// Parse builds a Program from tokens. The cursor only moves forward, so
// every token is looked at once.
func Parse(tokens []lexer.Token) (*ast.Program, error) {
	p := &parser{tokens: tokens}
	prog := &ast.Program{}

	for !p.atEnd() {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		prog.Body = append(prog.Body, expr)
	}
	return prog, nil
}

func (p *parser) atEnd() bool {
	return p.pos >= len(p.tokens)
}

func (p *parser) current() lexer.Token {
	return p.tokens[p.pos]
}

func (p *parser) parseExpression() (ast.Node, error) {
	if p.atEnd() {
		return nil, p.unexpectedEnd("expected an expression")
	}

	tok := p.current()
	switch tok.Type {
	case lexer.TokNumber:
		p.pos++
		return &ast.NumberLiteral{Offset: tok.Offset, Value: tok.Value}, nil
	case lexer.TokString:
		p.pos++
		return &ast.StringLiteral{Offset: tok.Offset, Value: tok.Value}, nil
	case lexer.TokParen:
		if tok.IsParen('(') {
			return p.parseCall()
		}
	}
	return nil, p.unexpectedToken(tok)
}

func (p *parser) parseCall() (*ast.CallExpression, error) {
	open := p.current()
	p.pos++ // consume '('

	if p.atEnd() {
		return nil, p.unexpectedEnd("expected a call name after '('")
	}
	name := p.current()
	if name.Type != lexer.TokName {
		return nil, &ParseError{
			Kind:   ExpectedName,
			Index:  p.pos,
			Offset: name.Offset,
			Diag: diagnostics.MakeDiag(
				diagnostics.EParse,
				fmt.Sprintf("expected a call name after '(', got %s %q", name.Type, name.Value),
				diagnostics.At(name.Offset),
				"every call starts with a name, e.g. (add 1 2)",
			),
		}
	}
	p.pos++

	call := &ast.CallExpression{Offset: open.Offset, Name: name.Value}
	for {
		if p.atEnd() {
			return nil, p.unexpectedEnd(fmt.Sprintf("unclosed call %q", call.Name))
		}
		if p.current().IsParen(')') {
			p.pos++
			return call, nil
		}
		param, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		call.Params = append(call.Params, param)
	}
}

func (p *parser) unexpectedToken(tok lexer.Token) error {
	return &ParseError{
		Kind:   UnexpectedToken,
		Index:  p.pos,
		Offset: tok.Offset,
		Diag: diagnostics.MakeDiag(
			diagnostics.EParse,
			fmt.Sprintf("unexpected %s %q", tok.Type, tok.Value),
			diagnostics.At(tok.Offset),
			"",
		),
	}
}

func (p *parser) unexpectedEnd(msg string) error {
	offset := 0
	if n := len(p.tokens); n > 0 {
		offset = p.tokens[n-1].End()
	}
	return &ParseError{
		Kind:   UnexpectedEnd,
		Index:  len(p.tokens),
		Offset: offset,
		Diag: diagnostics.MakeDiag(
			diagnostics.EParse,
			"unexpected end of input: "+msg,
			diagnostics.At(offset),
			"",
		),
	}
}
