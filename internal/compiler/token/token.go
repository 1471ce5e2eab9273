package token

type TokenType string

const (
	// Single character tokens
	TokenLParen    TokenType = "LPAREN"    // (
	TokenRParen    TokenType = "RPAREN"    // )
	TokenLBrace    TokenType = "LBRACE"    // {
	TokenRBrace    TokenType = "RBRACE"    // }
	TokenAssign    TokenType = "ASSIGN"    // =
	TokenPlus      TokenType = "PLUS"      // +
	TokenMinus     TokenType = "MINUS"     // -
	TokenAsterisk  TokenType = "ASTERISK"  // *
	TokenSlash     TokenType = "SLASH"     // / (division)
	TokenSemicolon TokenType = "SEMICOLON" // ;
	TokenComma     TokenType = "COMMA"     // ,

	// Comparison operators
	TokenEq    TokenType = "EQ"     // ==
	TokenNotEq TokenType = "NOT_EQ" // !=
	TokenLt    TokenType = "LT"     // <
	TokenGt    TokenType = "GT"     // >
	TokenLtEq  TokenType = "LT_EQ"  // <=
	TokenGtEq  TokenType = "GT_EQ"  // >=

	// Keywords
	TokenIf     TokenType = "IF"     // if
	TokenElse   TokenType = "ELSE"   // else
	TokenFor    TokenType = "FOR"    // for
	TokenWhile  TokenType = "WHILE"  // while
	TokenReturn TokenType = "RETURN" // return

	// Type keywords: int, float, string. The Literal distinguishes which one.
	TokenTypeLiteral TokenType = "TYPE_LITERAL"

	// Literals & Identifiers
	TokenString TokenType = "STRING" // "..."
	TokenInt    TokenType = "INT"    // 43
	TokenFloat  TokenType = "FLOAT"  // 4.3
	TokenIdent  TokenType = "IDENT"  // Identifier (e.g. variable name)

	// Special
	TokenEOF     TokenType = "EOF"
	TokenIllegal TokenType = "ILLEGAL"
)

type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

func (t Token) IsTypeKeyword() bool {
	return t.Type == TokenTypeLiteral
}
