package lexer

import (
	"fmt"

	"github.com/minic-lang/minic/internal/compiler/token"
)

// LexError is the hard tokenizer failure. The only construct that produces
// one is an unterminated string literal; an unterminated block comment is
// reported as an ILLEGAL token instead so the caller can decide severity.
type LexError struct {
	Line    int
	Column  int
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%d:%d: lex error: %s", e.Line, e.Column, e.Message)
}

type Lexer struct {
	input        string
	position     int  // current char index
	readPosition int  // next char index
	ch           byte // current char

	line   int // current line number (1-indexed)
	column int // current column number (1-indexed)
}

func NewLexer(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

// readChar advances the lexer's position and updates the current character.
// It handles EOF and tracks line/column numbers.
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0 // ASCII NULL (EOF)
	} else {
		l.ch = l.input[l.readPosition]
	}

	l.position = l.readPosition
	l.readPosition++

	if l.ch == '\n' {
		l.line++
		l.column = 1
	} else if l.ch != 0 {
		l.column++
	}
}

// Returns the next character without consuming it
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// NextToken scans and returns the next token. It is idempotent at EOF: once
// the input is exhausted every further call returns an EOF token. The error
// is non-nil only for an unterminated string literal.
func (l *Lexer) NextToken() (token.Token, error) {
	l.skipWhitespace()

	startLine := l.line
	startCol := l.column

	switch l.ch {
	case '/':
		if l.peekChar() == '/' {
			l.readChar()
			l.readComment()
			return l.NextToken()
		} else if l.peekChar() == '*' {
			l.readChar()
			if !l.readBlockComment() {
				// Soft failure: the stream stays usable after this token.
				return l.newToken(token.TokenIllegal, "Unterminated comment", startLine, startCol), nil
			}
			return l.NextToken()
		}
		tok := l.newToken(token.TokenSlash, string(l.ch), startLine, startCol)
		l.readChar()
		return tok, nil
	case '=':
		if l.peekChar() == '=' {
			return l.twoCharToken(token.TokenEq, startLine, startCol), nil
		}
		tok := l.newToken(token.TokenAssign, string(l.ch), startLine, startCol)
		l.readChar()
		return tok, nil
	case '!':
		if l.peekChar() == '=' {
			return l.twoCharToken(token.TokenNotEq, startLine, startCol), nil
		}
		// Bare '!' is not an operator in this language.
		tok := l.newToken(token.TokenIllegal, string(l.ch), startLine, startCol)
		l.readChar()
		return tok, nil
	case '<':
		if l.peekChar() == '=' {
			return l.twoCharToken(token.TokenLtEq, startLine, startCol), nil
		}
		tok := l.newToken(token.TokenLt, string(l.ch), startLine, startCol)
		l.readChar()
		return tok, nil
	case '>':
		if l.peekChar() == '=' {
			return l.twoCharToken(token.TokenGtEq, startLine, startCol), nil
		}
		tok := l.newToken(token.TokenGt, string(l.ch), startLine, startCol)
		l.readChar()
		return tok, nil
	case '+':
		tok := l.newToken(token.TokenPlus, string(l.ch), startLine, startCol)
		l.readChar()
		return tok, nil
	case '-':
		tok := l.newToken(token.TokenMinus, string(l.ch), startLine, startCol)
		l.readChar()
		return tok, nil
	case '*':
		tok := l.newToken(token.TokenAsterisk, string(l.ch), startLine, startCol)
		l.readChar()
		return tok, nil
	case '(':
		tok := l.newToken(token.TokenLParen, string(l.ch), startLine, startCol)
		l.readChar()
		return tok, nil
	case ')':
		tok := l.newToken(token.TokenRParen, string(l.ch), startLine, startCol)
		l.readChar()
		return tok, nil
	case '{':
		tok := l.newToken(token.TokenLBrace, string(l.ch), startLine, startCol)
		l.readChar()
		return tok, nil
	case '}':
		tok := l.newToken(token.TokenRBrace, string(l.ch), startLine, startCol)
		l.readChar()
		return tok, nil
	case ';':
		tok := l.newToken(token.TokenSemicolon, string(l.ch), startLine, startCol)
		l.readChar()
		return tok, nil
	case ',':
		tok := l.newToken(token.TokenComma, string(l.ch), startLine, startCol)
		l.readChar()
		return tok, nil
	case '"':
		return l.readString(startLine, startCol)
	case 0:
		// EOF; do NOT advance so repeated calls keep returning EOF
		return l.newToken(token.TokenEOF, "", startLine, startCol), nil
	default:
		if isLetter(l.ch) {
			ident := l.readIdentifier()
			return l.newToken(lookupIdent(ident), ident, startLine, startCol), nil
		} else if isDigit(l.ch) {
			return l.readNumber(startLine, startCol), nil
		}
		tok := l.newToken(token.TokenIllegal, string(l.ch), startLine, startCol)
		l.readChar()
		return tok, nil
	}
}

// newToken is a helper to create a token.Token struct
func (l *Lexer) newToken(tokenType token.TokenType, literal string, line, col int) token.Token {
	return token.Token{Type: tokenType, Literal: literal, Line: line, Column: col}
}

// twoCharToken consumes the current char plus the peeked one, e.g. "==", "<=".
func (l *Lexer) twoCharToken(tokenType token.TokenType, line, col int) token.Token {
	ch := l.ch
	l.readChar()
	literal := string(ch) + string(l.ch)
	l.readChar()
	return token.Token{Type: tokenType, Literal: literal, Line: line, Column: col}
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\n' || l.ch == '\t' || l.ch == '\r' || l.ch == '\v' || l.ch == '\f' {
		l.readChar()
	}
}

func (l *Lexer) readComment() {
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
}

// readBlockComment consumes through the closing */ and reports whether the
// comment was actually closed before EOF.
func (l *Lexer) readBlockComment() bool {
	l.readChar() // Consume the opening '*'

	for {
		if l.ch == 0 {
			return false
		}
		if l.ch == '*' && l.peekChar() == '/' {
			l.readChar() // Consume '*'
			l.readChar() // Consume '/'
			return true
		}
		l.readChar()
	}
}

func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

func (l *Lexer) readString(startLine, startCol int) (token.Token, error) {
	start := l.position + 1 // Skip opening "
	l.readChar()            // Consume opening "

	for l.ch != '"' && l.ch != 0 {
		l.readChar()
	}

	if l.ch == 0 {
		return token.Token{}, &LexError{Line: startLine, Column: startCol, Message: "unterminated string literal"}
	}

	lit := l.input[start:l.position]
	l.readChar() // Consume closing "
	return token.Token{Type: token.TokenString, Literal: lit, Line: startLine, Column: startCol}, nil
}

// readNumber scans an integer or float literal. At most one '.' is accepted;
// a second '.' ends the literal without being consumed, so the next call
// re-scans from the dot. 1.2.3 therefore lexes as FLOAT(1.2) ILLEGAL(.) INT(3).
func (l *Lexer) readNumber(startLine, startCol int) token.Token {
	start := l.position
	hasDot := false
	for isDigit(l.ch) || l.ch == '.' {
		if l.ch == '.' {
			if hasDot {
				break
			}
			hasDot = true
		}
		l.readChar()
	}
	literal := l.input[start:l.position]
	if hasDot {
		return token.Token{Type: token.TokenFloat, Literal: literal, Line: startLine, Column: startCol}
	}
	return token.Token{Type: token.TokenInt, Literal: literal, Line: startLine, Column: startCol}
}

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// keywords maps identifier strings to their corresponding token types.
var keywords = map[string]token.TokenType{
	"if":     token.TokenIf,
	"else":   token.TokenElse,
	"for":    token.TokenFor,
	"while":  token.TokenWhile,
	"return": token.TokenReturn,
	"int":    token.TokenTypeLiteral,
	"float":  token.TokenTypeLiteral,
	"string": token.TokenTypeLiteral,
}

// lookupIdent checks if an identifier is a keyword, returning the keyword's
// token type or token.TokenIdent if it's not a keyword.
func lookupIdent(ident string) token.TokenType {
	if tokType, ok := keywords[ident]; ok {
		return tokType
	}
	return token.TokenIdent
}
