package vowel

import "fmt"

// Token represents group a characters with additional information that was
// obtained during the scanning phase.
type Token struct {
	Typ     TokenType
	Lexeme  string
	Literal interface{}
	Line    int
	Column  int
}

// NewToken creates a new token
func NewToken(typ TokenType, lexeme string, literal interface{}, line, column int) *Token {
	return &Token{typ, lexeme, literal, line, column}
}

func (t *Token) String() string {
	return fmt.Sprintf("%s %s %v", t.Typ, t.Lexeme, t.Literal)
}

// TokenType is a just a wrapped string used to represent token's type
type TokenType string

const (
	// Single-character tokens
	LEFT_PAREN   TokenType = "("
	RIGHT_PAREN  TokenType = ")"
	LEFT_BRACE   TokenType = "{"
	RIGHT_BRACE  TokenType = "}"
	LEFT_SQUARE  TokenType = "["
	RIGHT_SQUARE TokenType = "]"
	COMMA        TokenType = ","
	DOT          TokenType = "."
	MINUS        TokenType = "-"
	PLUS         TokenType = "+"
	SEMICOLON    TokenType = ";"
	SLASH        TokenType = "/"
	STAR         TokenType = "*"
	PERCENT      TokenType = "%"
	CARET        TokenType = "^"
	QUESTION     TokenType = "?"
	COLON        TokenType = ":"
	UNDER_SCORE  TokenType = "_"
	DOLLAR       TokenType = "$"
	AMPERSAND    TokenType = "&"

	// One or two chracter tokens
	BANG          TokenType = "!"
	BANG_EQUAL    TokenType = "!="
	EQUAL         TokenType = "="
	EQUAL_EQUAL   TokenType = "=="
	GREATER       TokenType = ">"
	GREATER_EQUAL TokenType = ">="
	LESS          TokenType = "<"
	LESS_EQUAL    TokenType = "<="

	// Literals
	IDENTIFIER TokenType = "IDENTIFIER"
	STRING     TokenType = "STRING"
	NUMBER     TokenType = "NUMBER"

	// Keywords
	AND    TokenType = "AND"
	CLASS  TokenType = "CLASS"
	ELSE   TokenType = "ELSE"
	FALSE  TokenType = "FALSE"
	FOR    TokenType = "FOR"
	FUNC   TokenType = "FUNC"
	IF     TokenType = "IF"
	NIL    TokenType = "NIL"
	OR     TokenType = "OR"
	PRINT  TokenType = "PRINT"
	RETURN TokenType = "RETURN"
	SUPER  TokenType = "SUPER"
	THIS   TokenType = "THIS"
	TRUE   TokenType = "TRUE"
	VAR    TokenType = "VAR"
	WHILE  TokenType = "WHILE"

	EOF TokenType = "EOF"
)

// KeywordTokens maps the language's reserved words to their token types.
// Several of them are not English: "ne" is and, "oba" is or, "wandika" is
// print, "albeit" is while and "nze" is this.
var KeywordTokens = map[string]TokenType{
	"ne":      AND,
	"class":   CLASS,
	"else":    ELSE,
	"false":   FALSE,
	"for":     FOR,
	"func":    FUNC,
	"if":      IF,
	"nil":     NIL,
	"oba":     OR,
	"wandika": PRINT,
	"return":  RETURN,
	"super":   SUPER,
	"nze":     THIS,
	"true":    TRUE,
	"var":     VAR,
	"albeit":  WHILE,
}
