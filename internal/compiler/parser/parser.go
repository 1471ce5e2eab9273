package parser

import (
	"fmt"
	"strconv"

	"github.com/minic-lang/minic/internal/compiler/ast"
	"github.com/minic-lang/minic/internal/compiler/lexer"
	"github.com/minic-lang/minic/internal/compiler/token"
)

// ParseError reports the first grammar mismatch. There is no recovery or
// resynchronization: the first error aborts the whole parse.
type ParseError struct {
	Expected string      // token kind or grammar construct the parser needed
	Found    token.Token // the token actually seen
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: syntax error: expected %s, found %s (%q)",
		e.Found.Line, e.Found.Column, e.Expected, e.Found.Type, e.Found.Literal)
}

// Parser is a recursive-descent parser with one token of lookahead.
// Operator precedence is baked into the call structure: comparisons and
// additive operators share one tier (parseExpression) above the
// multiplicative tier (parseTerm). A Parser is single-use; construct a fresh
// one to reparse.
type Parser struct {
	l      *lexer.Lexer
	curTok token.Token
}

func NewParser(l *lexer.Lexer) *Parser {
	return &Parser{l: l}
}

// advance pulls the next token from the lexer. A lexer failure (unterminated
// string literal) surfaces here and aborts the parse.
func (p *Parser) advance() error {
	tok, err := p.l.NextToken()
	if err != nil {
		return err
	}
	p.curTok = tok
	return nil
}

// expect consumes the current token if it has the wanted type, and fails the
// parse otherwise. This is the parser's sole error-reporting mechanism.
func (p *Parser) expect(t token.TokenType) (token.Token, error) {
	if p.curTok.Type != t {
		return token.Token{}, &ParseError{Expected: string(t), Found: p.curTok}
	}
	tok := p.curTok
	if err := p.advance(); err != nil {
		return token.Token{}, err
	}
	return tok, nil
}

// ParseProgram parses the whole input and returns the ordered top-level
// statements.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}

	program := &ast.Program{}
	for p.curTok.Type != token.TokenEOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		program.Statements = append(program.Statements, stmt)
	}
	return program, nil
}

func (p *Parser) parseStatement() (ast.Node, error) {
	switch p.curTok.Type {
	case token.TokenIf:
		return p.parseIf()
	case token.TokenFor:
		return p.parseFor()
	case token.TokenWhile:
		return p.parseWhile()
	case token.TokenReturn:
		return p.parseReturn()
	case token.TokenLBrace:
		return p.parseBlock()
	default:
		return p.parseAssignment(true)
	}
}

// parseAssignment parses `[type] name = expression [;]`. The semicolon is
// suppressed only for a for-loop's update clause, where the closing ')'
// follows directly.
func (p *Parser) parseAssignment(expectSemicolon bool) (ast.Node, error) {
	declaredType := ""
	if p.curTok.IsTypeKeyword() {
		declaredType = p.curTok.Literal
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	nameTok, err := p.expect(token.TokenIdent)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.TokenAssign); err != nil {
		return nil, err
	}

	// Diagnosed eagerly rather than left to parseFactor's generic failure.
	if p.curTok.Type == token.TokenSemicolon {
		return nil, &ParseError{Expected: "expression after '='", Found: p.curTok}
	}

	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if expectSemicolon {
		if _, err := p.expect(token.TokenSemicolon); err != nil {
			return nil, err
		}
	}

	return &ast.AssignStatement{Name: nameTok.Literal, DeclaredType: declaredType, Value: value}, nil
}

// isExpressionOp reports whether t continues the comparison/additive tier.
func isExpressionOp(t token.TokenType) bool {
	switch t {
	case token.TokenEq, token.TokenNotEq, token.TokenLt, token.TokenGt,
		token.TokenLtEq, token.TokenGtEq, token.TokenPlus, token.TokenMinus:
		return true
	}
	return false
}

// parseExpression parses the comparison/additive tier, left-associative.
func (p *Parser) parseExpression() (ast.Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for isExpressionOp(p.curTok.Type) {
		op := p.curTok.Literal
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpression{Left: left, Operator: op, Right: right}
	}
	return left, nil
}

// parseTerm parses the multiplicative tier, left-associative.
func (p *Parser) parseTerm() (ast.Node, error) {
	node, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	for p.curTok.Type == token.TokenAsterisk || p.curTok.Type == token.TokenSlash {
		op := p.curTok.Literal
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		node = &ast.BinaryExpression{Left: node, Operator: op, Right: right}
	}
	return node, nil
}

// parseFactor parses literals, identifiers, and parenthesized expressions.
func (p *Parser) parseFactor() (ast.Node, error) {
	tok := p.curTok

	switch tok.Type {
	case token.TokenInt:
		if err := p.advance(); err != nil {
			return nil, err
		}
		value, err := strconv.Atoi(tok.Literal)
		if err != nil {
			return nil, &ParseError{Expected: "integer literal", Found: tok}
		}
		return &ast.IntegerLiteral{Value: value}, nil

	case token.TokenFloat:
		if err := p.advance(); err != nil {
			return nil, err
		}
		value, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return nil, &ParseError{Expected: "float literal", Found: tok}
		}
		return &ast.FloatLiteral{Value: value}, nil

	case token.TokenString:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.StringLiteral{Value: tok.Literal}, nil

	case token.TokenLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		node, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.TokenRParen); err != nil {
			return nil, err
		}
		return node, nil

	case token.TokenIdent:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.Identifier{Name: tok.Literal}, nil

	default:
		return nil, &ParseError{Expected: "expression", Found: tok}
	}
}

// parseBlock parses `{ statement* }`.
func (p *Parser) parseBlock() (*ast.BlockStatement, error) {
	if _, err := p.expect(token.TokenLBrace); err != nil {
		return nil, err
	}

	block := &ast.BlockStatement{}
	for p.curTok.Type != token.TokenRBrace {
		if p.curTok.Type == token.TokenEOF {
			return nil, &ParseError{Expected: string(token.TokenRBrace), Found: p.curTok}
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}

	if _, err := p.expect(token.TokenRBrace); err != nil {
		return nil, err
	}
	return block, nil
}

// parseIf parses `if (expr) block [else block]`.
func (p *Parser) parseIf() (ast.Node, error) {
	if _, err := p.expect(token.TokenIf); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.TokenLParen); err != nil {
		return nil, err
	}
	condition, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.TokenRParen); err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	var elseBlock *ast.BlockStatement
	if p.curTok.Type == token.TokenElse {
		if err := p.advance(); err != nil {
			return nil, err
		}
		elseBlock, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}

	return &ast.IfStatement{Condition: condition, Then: then, Else: elseBlock}, nil
}

// parseFor parses `for (init; condition; update) block`. The update clause
// never consumes a semicolon because the closing ')' follows directly.
func (p *Parser) parseFor() (ast.Node, error) {
	if _, err := p.expect(token.TokenFor); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.TokenLParen); err != nil {
		return nil, err
	}
	init, err := p.parseAssignment(true)
	if err != nil {
		return nil, err
	}
	condition, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.TokenSemicolon); err != nil {
		return nil, err
	}
	update, err := p.parseAssignment(false)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.TokenRParen); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.ForStatement{Init: init, Condition: condition, Update: update, Body: body}, nil
}

// parseWhile parses `while (expr) block`.
func (p *Parser) parseWhile() (ast.Node, error) {
	if _, err := p.expect(token.TokenWhile); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.TokenLParen); err != nil {
		return nil, err
	}
	condition, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.TokenRParen); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.WhileStatement{Condition: condition, Body: body}, nil
}

// parseReturn parses `return [expr] ;`.
func (p *Parser) parseReturn() (ast.Node, error) {
	if _, err := p.expect(token.TokenReturn); err != nil {
		return nil, err
	}

	var value ast.Node
	if p.curTok.Type != token.TokenSemicolon {
		var err error
		value, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(token.TokenSemicolon); err != nil {
		return nil, err
	}
	return &ast.ReturnStatement{Value: value}, nil
}
