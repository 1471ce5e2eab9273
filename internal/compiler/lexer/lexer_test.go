package lexer

import (
	"errors"
	"testing"

	"github.com/minic-lang/minic/internal/compiler/token"
)

// mustNext is a helper that fails the test on an unexpected lexer error.
func mustNext(t *testing.T, l *Lexer) token.Token {
	t.Helper()
	tok, err := l.NextToken()
	if err != nil {
		t.Fatalf("NextToken() returned error: %v", err)
	}
	return tok
}

func TestNextTokenStream(t *testing.T) {
	input := `int x = 2 * 3; if (x > 5) { x = x - 1; }`

	expected := []struct {
		typ     token.TokenType
		literal string
	}{
		{token.TokenTypeLiteral, "int"},
		{token.TokenIdent, "x"},
		{token.TokenAssign, "="},
		{token.TokenInt, "2"},
		{token.TokenAsterisk, "*"},
		{token.TokenInt, "3"},
		{token.TokenSemicolon, ";"},
		{token.TokenIf, "if"},
		{token.TokenLParen, "("},
		{token.TokenIdent, "x"},
		{token.TokenGt, ">"},
		{token.TokenInt, "5"},
		{token.TokenRParen, ")"},
		{token.TokenLBrace, "{"},
		{token.TokenIdent, "x"},
		{token.TokenAssign, "="},
		{token.TokenIdent, "x"},
		{token.TokenMinus, "-"},
		{token.TokenInt, "1"},
		{token.TokenSemicolon, ";"},
		{token.TokenRBrace, "}"},
		{token.TokenEOF, ""},
	}

	l := NewLexer(input)
	for i, exp := range expected {
		tok := mustNext(t, l)
		if tok.Type != exp.typ {
			t.Fatalf("token %d: expected type %s, got %s (%q)", i, exp.typ, tok.Type, tok.Literal)
		}
		if tok.Literal != exp.literal {
			t.Fatalf("token %d: expected literal %q, got %q", i, exp.literal, tok.Literal)
		}
	}
}

func TestTwoCharOperators(t *testing.T) {
	input := `== != <= >= < > =`
	expected := []token.TokenType{
		token.TokenEq, token.TokenNotEq, token.TokenLtEq, token.TokenGtEq,
		token.TokenLt, token.TokenGt, token.TokenAssign, token.TokenEOF,
	}

	l := NewLexer(input)
	for i, exp := range expected {
		tok := mustNext(t, l)
		if tok.Type != exp {
			t.Fatalf("token %d: expected %s, got %s", i, exp, tok.Type)
		}
	}
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	input := `if else for while return int float string foo Bar2 _x`
	expected := []struct {
		typ     token.TokenType
		literal string
	}{
		{token.TokenIf, "if"},
		{token.TokenElse, "else"},
		{token.TokenFor, "for"},
		{token.TokenWhile, "while"},
		{token.TokenReturn, "return"},
		{token.TokenTypeLiteral, "int"},
		{token.TokenTypeLiteral, "float"},
		{token.TokenTypeLiteral, "string"},
		{token.TokenIdent, "foo"},
		{token.TokenIdent, "Bar2"},
		{token.TokenIdent, "_x"},
	}

	l := NewLexer(input)
	for i, exp := range expected {
		tok := mustNext(t, l)
		if tok.Type != exp.typ || tok.Literal != exp.literal {
			t.Fatalf("token %d: expected %s (%q), got %s (%q)", i, exp.typ, exp.literal, tok.Type, tok.Literal)
		}
	}
}

func TestNumericLiterals(t *testing.T) {
	l := NewLexer("42 3.14 0.5")

	tok := mustNext(t, l)
	if tok.Type != token.TokenInt || tok.Literal != "42" {
		t.Fatalf("expected INT 42, got %s (%q)", tok.Type, tok.Literal)
	}
	tok = mustNext(t, l)
	if tok.Type != token.TokenFloat || tok.Literal != "3.14" {
		t.Fatalf("expected FLOAT 3.14, got %s (%q)", tok.Type, tok.Literal)
	}
	tok = mustNext(t, l)
	if tok.Type != token.TokenFloat || tok.Literal != "0.5" {
		t.Fatalf("expected FLOAT 0.5, got %s (%q)", tok.Type, tok.Literal)
	}
}

// A second '.' ends the numeric literal without being consumed, so 1.2.3
// scans as FLOAT(1.2), ILLEGAL(.), INT(3).
func TestSecondDotStopsNumber(t *testing.T) {
	l := NewLexer("1.2.3")

	tok := mustNext(t, l)
	if tok.Type != token.TokenFloat || tok.Literal != "1.2" {
		t.Fatalf("expected FLOAT 1.2, got %s (%q)", tok.Type, tok.Literal)
	}
	tok = mustNext(t, l)
	if tok.Type != token.TokenIllegal || tok.Literal != "." {
		t.Fatalf("expected ILLEGAL '.', got %s (%q)", tok.Type, tok.Literal)
	}
	tok = mustNext(t, l)
	if tok.Type != token.TokenInt || tok.Literal != "3" {
		t.Fatalf("expected INT 3, got %s (%q)", tok.Type, tok.Literal)
	}
}

func TestStringLiteral(t *testing.T) {
	l := NewLexer(`string s = "hello world";`)

	mustNext(t, l) // string
	mustNext(t, l) // s
	mustNext(t, l) // =
	tok := mustNext(t, l)
	if tok.Type != token.TokenString || tok.Literal != "hello world" {
		t.Fatalf("expected STRING \"hello world\", got %s (%q)", tok.Type, tok.Literal)
	}
}

func TestUnterminatedStringIsHardError(t *testing.T) {
	l := NewLexer(`x = "oops`)

	mustNext(t, l) // x
	mustNext(t, l) // =
	_, err := l.NextToken()
	if err == nil {
		t.Fatalf("expected error for unterminated string literal")
	}
	var lexErr *LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("expected *LexError, got %T: %v", err, err)
	}
}

func TestComments(t *testing.T) {
	input := `
// leading comment
x = 1; /* inline
block */ y = 2;
`
	expected := []string{"x", "=", "1", ";", "y", "=", "2", ";"}

	l := NewLexer(input)
	for i, exp := range expected {
		tok := mustNext(t, l)
		if tok.Literal != exp {
			t.Fatalf("token %d: expected literal %q, got %q", i, exp, tok.Literal)
		}
	}
	if tok := mustNext(t, l); tok.Type != token.TokenEOF {
		t.Fatalf("expected EOF, got %s", tok.Type)
	}
}

// An unterminated block comment is a soft case: one ILLEGAL token with a
// diagnostic payload, not an error, and the stream stays usable.
func TestUnterminatedBlockComment(t *testing.T) {
	l := NewLexer("x = 1; /* never closed")

	for i := 0; i < 4; i++ {
		mustNext(t, l)
	}
	tok := mustNext(t, l)
	if tok.Type != token.TokenIllegal {
		t.Fatalf("expected ILLEGAL token, got %s (%q)", tok.Type, tok.Literal)
	}
	if tok.Literal != "Unterminated comment" {
		t.Fatalf("expected diagnostic payload, got %q", tok.Literal)
	}
	if tok := mustNext(t, l); tok.Type != token.TokenEOF {
		t.Fatalf("expected EOF after unterminated comment, got %s", tok.Type)
	}
}

func TestGarbageBecomesIllegal(t *testing.T) {
	l := NewLexer("x = 1 @ 2;")

	mustNext(t, l) // x
	mustNext(t, l) // =
	mustNext(t, l) // 1
	tok := mustNext(t, l)
	if tok.Type != token.TokenIllegal || tok.Literal != "@" {
		t.Fatalf("expected ILLEGAL '@', got %s (%q)", tok.Type, tok.Literal)
	}
	// The lexer never terminates the stream early on garbage.
	tok = mustNext(t, l)
	if tok.Type != token.TokenInt || tok.Literal != "2" {
		t.Fatalf("expected INT 2 after garbage, got %s (%q)", tok.Type, tok.Literal)
	}
}

func TestEOFIsIdempotent(t *testing.T) {
	l := NewLexer("x")

	mustNext(t, l)
	for i := 0; i < 3; i++ {
		tok := mustNext(t, l)
		if tok.Type != token.TokenEOF {
			t.Fatalf("call %d after end: expected EOF, got %s", i, tok.Type)
		}
	}
}

func TestLineAndColumnTracking(t *testing.T) {
	l := NewLexer("x = 1;\ny = 2;")

	tok := mustNext(t, l)
	if tok.Line != 1 || tok.Column != 1 {
		t.Fatalf("expected x at 1:1, got %d:%d", tok.Line, tok.Column)
	}
	mustNext(t, l) // =
	mustNext(t, l) // 1
	mustNext(t, l) // ;
	tok = mustNext(t, l)
	if tok.Literal != "y" || tok.Line != 2 {
		t.Fatalf("expected y on line 2, got %q at line %d", tok.Literal, tok.Line)
	}
}
