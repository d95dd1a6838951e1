package lexer

import (
	"errors"
	"testing"
)

// helper to tokenize and fail on error
func mustTokenize(t *testing.T, source string) []Token {
	t.Helper()
	tokens, err := Tokenize(source)
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	return tokens
}

// helper to tokenize and return the *LexError
func mustFailLex(t *testing.T, source string) *LexError {
	t.Helper()
	tokens, err := Tokenize(source)
	if err == nil {
		t.Fatalf("expected lex error, got tokens %v", tokens)
	}
	var le *LexError
	if !errors.As(err, &le) {
		t.Fatalf("expected *LexError, got %T: %v", err, err)
	}
	if tokens != nil {
		t.Errorf("expected nil tokens on error, got %v", tokens)
	}
	return le
}

// ---------------------------------------------------------------------------
// Test: empty and blank input produce no tokens
// ---------------------------------------------------------------------------
func TestEmptyInput(t *testing.T) {
	for _, src := range []string{"", "   ", "\t\n\r\v\f"} {
		tokens := mustTokenize(t, src)
		if len(tokens) != 0 {
			t.Errorf("Tokenize(%q): expected no tokens, got %v", src, tokens)
		}
	}
}

// ---------------------------------------------------------------------------
// Test: single tokens
// ---------------------------------------------------------------------------
func TestSingleTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		typ   TokenType
		value string
	}{
		{"lparen", "(", TokParen, "("},
		{"rparen", ")", TokParen, ")"},
		{"number", "42", TokNumber, "42"},
		{"number leading zeros", "007", TokNumber, "007"},
		{"name", "add", TokName, "add"},
		{"mixed case name", "subTract", TokName, "subTract"},
		{"string", `"hi"`, TokString, "hi"},
		{"empty string", `""`, TokString, ""},
		{"string with spaces", `"hello world"`, TokString, "hello world"},
		{"string keeps backslash", `"a\n"`, TokString, `a\n`},
		{"string keeps parens", `"(x)"`, TokString, "(x)"},
		{"string keeps newline", "\"a\nb\"", TokString, "a\nb"},
		{"string keeps utf8", `"héllo"`, TokString, "héllo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := mustTokenize(t, tt.input)
			if len(tokens) != 1 {
				t.Fatalf("expected 1 token, got %d: %v", len(tokens), tokens)
			}
			if tokens[0].Type != tt.typ {
				t.Errorf("expected type %v, got %v", tt.typ, tokens[0].Type)
			}
			if tokens[0].Value != tt.value {
				t.Errorf("expected value %q, got %q", tt.value, tokens[0].Value)
			}
			if tokens[0].Offset != 0 {
				t.Errorf("expected offset 0, got %d", tokens[0].Offset)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Test: runs are maximal and split at class boundaries
// ---------------------------------------------------------------------------
func TestRunBoundaries(t *testing.T) {
	tokens := mustTokenize(t, "12ab34")
	want := []Token{
		{Type: TokNumber, Value: "12", Offset: 0},
		{Type: TokName, Value: "ab", Offset: 2},
		{Type: TokNumber, Value: "34", Offset: 4},
	}
	assertTokens(t, tokens, want)
}

// ---------------------------------------------------------------------------
// Test: full nested call
// ---------------------------------------------------------------------------
func TestNestedCall(t *testing.T) {
	tokens := mustTokenize(t, "(add 2 (subtract 4 2))")
	want := []Token{
		{Type: TokParen, Value: "(", Offset: 0},
		{Type: TokName, Value: "add", Offset: 1},
		{Type: TokNumber, Value: "2", Offset: 5},
		{Type: TokParen, Value: "(", Offset: 7},
		{Type: TokName, Value: "subtract", Offset: 8},
		{Type: TokNumber, Value: "4", Offset: 17},
		{Type: TokNumber, Value: "2", Offset: 19},
		{Type: TokParen, Value: ")", Offset: 20},
		{Type: TokParen, Value: ")", Offset: 21},
	}
	assertTokens(t, tokens, want)
}

func TestStringOffsetIsOpeningQuote(t *testing.T) {
	tokens := mustTokenize(t, `(greet "hi")`)
	want := []Token{
		{Type: TokParen, Value: "(", Offset: 0},
		{Type: TokName, Value: "greet", Offset: 1},
		{Type: TokString, Value: "hi", Offset: 7},
		{Type: TokParen, Value: ")", Offset: 11},
	}
	assertTokens(t, tokens, want)
}

// ---------------------------------------------------------------------------
// Test: runs ending at end of input are bounds-checked
// ---------------------------------------------------------------------------
func TestRunsAtEndOfInput(t *testing.T) {
	tokens := mustTokenize(t, "(add 2")
	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %d: %v", len(tokens), tokens)
	}
	if tokens[2].Type != TokNumber || tokens[2].Value != "2" {
		t.Errorf("expected trailing number 2, got %v", tokens[2])
	}

	tokens = mustTokenize(t, "abc")
	if len(tokens) != 1 || tokens[0].Value != "abc" {
		t.Errorf("expected single name abc, got %v", tokens)
	}
}

// ---------------------------------------------------------------------------
// Test: errors
// ---------------------------------------------------------------------------
func TestUnknownCharacter(t *testing.T) {
	tests := []struct {
		input  string
		char   rune
		offset int
	}{
		{"(add 2 $)", '$', 7},
		{"-1", '-', 0},
		{"(a_b)", '_', 2},
		{"(x 1.5)", '.', 4},
		{"(é)", 'é', 1},
		{"'a'", '\'', 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			le := mustFailLex(t, tt.input)
			if le.Kind != UnknownCharacter {
				t.Errorf("expected UnknownCharacter, got %v", le.Kind)
			}
			if le.Char != tt.char {
				t.Errorf("expected char %q, got %q", tt.char, le.Char)
			}
			if le.Offset != tt.offset {
				t.Errorf("expected offset %d, got %d", tt.offset, le.Offset)
			}
			if le.Diag.Location == nil || le.Diag.Location.Offset != tt.offset {
				t.Errorf("expected diagnostic at offset %d, got %+v", tt.offset, le.Diag.Location)
			}
		})
	}
}

func TestUnterminatedString(t *testing.T) {
	tests := []string{`"`, `"abc`, `(greet "hi)`}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			le := mustFailLex(t, input)
			if le.Kind != UnexpectedEnd {
				t.Errorf("expected UnexpectedEnd, got %v", le.Kind)
			}
			if le.Offset != len(input) {
				t.Errorf("expected offset %d, got %d", len(input), le.Offset)
			}
			if le.Diagnostic().Code != "E_LEX" {
				t.Errorf("expected E_LEX, got %s", le.Diagnostic().Code)
			}
		})
	}
}

func TestTokenTypeString(t *testing.T) {
	names := map[TokenType]string{
		TokParen:      "paren",
		TokNumber:     "number",
		TokString:     "string",
		TokName:       "name",
		TokenType(99): "token(99)",
	}
	for typ, want := range names {
		if got := typ.String(); got != want {
			t.Errorf("TokenType(%d).String() = %q, want %q", int(typ), got, want)
		}
	}
}

func assertTokens(t *testing.T, got, want []Token) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}
