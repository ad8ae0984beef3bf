// Package token defines the token types produced by the lexer.
package token

import (
	"fmt"

	"minipas/internal/span"
)

// Kind represents the type of a token.
type Kind int

const (
	// Special tokens
	ILLEGAL Kind = iota
	EOF

	// Literals
	IDENT  // identifiers: x, foo, my_var
	INT    // integer literals: 123
	FLOAT  // float literals: 3.14, 1.5e-3
	STRING // string literals: "hello"

	// Operators
	ASSIGN // =
	PLUS   // +
	MINUS  // -
	STAR   // *
	SLASH  // /

	EQ  // ==
	NEQ // !=
	LT  // <
	LTE // <=
	GT  // >
	GTE // >=

	// Delimiters
	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }
	COMMA     // ,
	SEMICOLON // ;
	COLON     // :

	// Keywords
	KW_PROGRAM
	KW_LET
	KW_IF
	KW_ELSE
	KW_WHILE
	KW_INT
	KW_BOOL
	KW_FLOAT
	KW_STR
)

var kindNames = map[Kind]string{
	ILLEGAL: "ILLEGAL",
	EOF:     "EOF",

	IDENT:  "IDENT",
	INT:    "INT",
	FLOAT:  "FLOAT",
	STRING: "STRING",

	ASSIGN: "=",
	PLUS:   "+",
	MINUS:  "-",
	STAR:   "*",
	SLASH:  "/",
	EQ:     "==",
	NEQ:    "!=",
	LT:     "<",
	LTE:    "<=",
	GT:     ">",
	GTE:    ">=",

	LPAREN:    "(",
	RPAREN:    ")",
	LBRACE:    "{",
	RBRACE:    "}",
	COMMA:     ",",
	SEMICOLON: ";",
	COLON:     ":",

	KW_PROGRAM: "program",
	KW_LET:     "let",
	KW_IF:      "if",
	KW_ELSE:    "else",
	KW_WHILE:   "while",
	KW_INT:     "int",
	KW_BOOL:    "bool",
	KW_FLOAT:   "float",
	KW_STR:     "str",
}

// String returns the human-readable name for a token kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsKeyword returns true if the kind is a keyword.
func (k Kind) IsKeyword() bool {
	return k >= KW_PROGRAM && k <= KW_STR
}

// IsLiteral returns true if the kind is a literal (ident/int/float/string).
func (k Kind) IsLiteral() bool {
	return k >= IDENT && k <= STRING
}

// IsTypeName returns true for the keywords that name a declared type.
func (k Kind) IsTypeName() bool {
	return k >= KW_INT && k <= KW_STR
}

// Describe renders the kind the way diagnostics quote it: fixed tokens in
// single quotes, token classes by name.
func (k Kind) Describe() string {
	switch k {
	case EOF:
		return "end of input"
	case IDENT:
		return "identifier"
	case INT:
		return "integer literal"
	case FLOAT:
		return "float literal"
	case STRING:
		return "string literal"
	case ILLEGAL:
		return "invalid token"
	}
	return "'" + k.String() + "'"
}

var keywords = map[string]Kind{
	"program": KW_PROGRAM,
	"let":     KW_LET,
	"if":      KW_IF,
	"else":    KW_ELSE,
	"while":   KW_WHILE,
	"int":     KW_INT,
	"bool":    KW_BOOL,
	"float":   KW_FLOAT,
	"str":     KW_STR,
}

// LookupIdent returns the keyword Kind for ident, or IDENT if it is not a keyword.
func LookupIdent(ident string) Kind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return IDENT
}

// Token represents a lexical token with its kind, text, and source location.
type Token struct {
	Kind   Kind      `json:"kind"`
	Lexeme string    `json:"lexeme"`
	Span   span.Span `json:"span"`
}

// String returns a human-readable representation of the token.
func (t Token) String() string {
	return fmt.Sprintf("%s %q %s", t.Kind, t.Lexeme, t.Span.Start)
}

// Describe renders the token for a diagnostic message, e.g. 'int' or
// identifier 'x'.
func (t Token) Describe() string {
	switch t.Kind {
	case EOF:
		return "end of input"
	case IDENT, INT, FLOAT:
		return fmt.Sprintf("%s '%s'", t.Kind.Describe(), t.Lexeme)
	case STRING:
		return fmt.Sprintf("string literal %s", t.Lexeme)
	}
	if t.Lexeme != "" {
		return "'" + t.Lexeme + "'"
	}
	return t.Kind.Describe()
}
