// Package lexer implements the lexical analysis (tokenization) for minipas.
package lexer

import (
	"fmt"
	"unicode/utf8"

	"minipas/internal/diag"
	"minipas/internal/span"
	"minipas/internal/token"
)

// Lexer tokenizes source code on demand. It never fails: invalid input
// yields ILLEGAL tokens paired with a diagnostic, and scanning continues.
type Lexer struct {
	source string

	pos  int // current read position in source
	line int // current line (1-based)
	col  int // current column (1-based, in runes)
}

// New creates a new Lexer for the given source text.
func New(source string) *Lexer {
	return &Lexer{
		source: source,
		pos:    0,
		line:   1,
		col:    1,
	}
}

// Reset rewinds the lexer to the beginning of the source.
func (l *Lexer) Reset() {
	l.pos = 0
	l.line = 1
	l.col = 1
}

// Next scans the next token. On a lexical error the token is ILLEGAL and the
// diagnostic describes it. At end of input Next keeps returning EOF.
func (l *Lexer) Next() (token.Token, *diag.Diagnostic) {
	l.skipWhitespace()

	start := l.curPos()
	if l.pos >= len(l.source) {
		return token.Token{Kind: token.EOF, Lexeme: "", Span: l.makeSpan(start)}, nil
	}

	ch := l.peek()
	switch {
	case ch == '"':
		return l.readString(start)
	case isDigit(ch):
		return l.readNumber(start)
	case isIdentStart(ch):
		return l.readIdentifier(start), nil
	}
	return l.readOperator(start)
}

// Tokenize scans the entire source from the beginning and returns all tokens,
// ending with EOF, and the lexical diagnostics in source order.
func (l *Lexer) Tokenize() ([]token.Token, diag.List) {
	l.Reset()
	var tokens []token.Token
	var diags diag.List
	for {
		tok, d := l.Next()
		tokens = append(tokens, tok)
		if d != nil {
			diags = append(diags, *d)
		}
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens, diags
}

// ---- internal helpers ----

// peek returns the current character without advancing, or 0 if at end.
func (l *Lexer) peek() byte {
	if l.pos >= len(l.source) {
		return 0
	}
	return l.source[l.pos]
}

// peekNext returns the character after current, or 0 if at end.
func (l *Lexer) peekNext() byte {
	if l.pos+1 >= len(l.source) {
		return 0
	}
	return l.source[l.pos+1]
}

// advance consumes the current byte and returns it. UTF-8 continuation bytes
// do not move the column.
func (l *Lexer) advance() byte {
	ch := l.source[l.pos]
	l.pos++
	switch {
	case ch == '\n':
		l.line++
		l.col = 1
	case ch&0xC0 != 0x80:
		l.col++
	}
	return ch
}

// curPos returns the current position as a span.Position.
func (l *Lexer) curPos() span.Position {
	return span.Position{Offset: l.pos, Line: l.line, Column: l.col}
}

// makeSpan returns a span from start to current position.
func (l *Lexer) makeSpan(start span.Position) span.Span {
	return span.Span{Start: start, End: l.curPos()}
}

// skipWhitespace skips spaces, tabs, carriage returns and newlines.
func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.source) {
		ch := l.source[l.pos]
		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			l.advance()
		} else {
			break
		}
	}
}

// illegal builds an ILLEGAL token covering start..current with its diagnostic.
func (l *Lexer) illegal(start span.Position, d diag.Diagnostic) (token.Token, *diag.Diagnostic) {
	tok := token.Token{Kind: token.ILLEGAL, Lexeme: l.source[start.Offset:l.pos], Span: l.makeSpan(start)}
	d.Found = tok
	return tok, &d
}

// ---- token reading ----

// readString reads a double-quoted string literal. The lexeme keeps the
// quotes and the text is taken verbatim. A literal must close on its own
// line: a newline or end of input first makes it unterminated, reported at
// the opening quote with the span ending before the newline.
func (l *Lexer) readString(start span.Position) (token.Token, *diag.Diagnostic) {
	l.advance() // skip opening "
	for l.pos < len(l.source) && l.peek() != '\n' {
		if l.advance() == '"' {
			return token.Token{Kind: token.STRING, Lexeme: l.source[start.Offset:l.pos], Span: l.makeSpan(start)}, nil
		}
	}
	d := diag.Errorf(diag.UnterminatedString, l.makeSpan(start), "unterminated string literal").
		WithHint("add a closing '\"' before the end of the line")
	return l.illegal(start, d)
}

// readNumber reads an integer or float literal. Integers have no leading
// zeros, so a 0 followed by digits ends after the 0. The integer part of a
// float may start with zeros.
func (l *Lexer) readNumber(start span.Position) (token.Token, *diag.Diagnostic) {
	end := l.pos
	for end < len(l.source) && isDigit(l.source[end]) {
		end++
	}
	isFloat := end+1 < len(l.source) && l.source[end] == '.' && isDigit(l.source[end+1])

	if !isFloat {
		if l.peek() == '0' {
			l.advance()
		} else {
			for l.pos < end {
				l.advance()
			}
		}
		return token.Token{Kind: token.INT, Lexeme: l.source[start.Offset:l.pos], Span: l.makeSpan(start)}, nil
	}

	for l.pos < end {
		l.advance()
	}
	l.advance() // skip '.'
	for l.pos < len(l.source) && isDigit(l.peek()) {
		l.advance()
	}

	if ch := l.peek(); ch == 'e' || ch == 'E' {
		exp := l.curPos()
		l.advance()
		if ch := l.peek(); ch == '+' || ch == '-' {
			l.advance()
		}
		if !isDigit(l.peek()) {
			// Reported at the exponent marker; the token still covers the whole literal.
			d := diag.Errorf(diag.MalformedNumber, l.makeSpan(exp),
				"malformed number %q: missing exponent digits", l.source[start.Offset:l.pos])
			return l.illegal(start, d)
		}
		for l.pos < len(l.source) && isDigit(l.peek()) {
			l.advance()
		}
	}
	return token.Token{Kind: token.FLOAT, Lexeme: l.source[start.Offset:l.pos], Span: l.makeSpan(start)}, nil
}

// readIdentifier reads an identifier or keyword.
func (l *Lexer) readIdentifier(start span.Position) token.Token {
	for l.pos < len(l.source) && isIdentPart(l.peek()) {
		l.advance()
	}
	lexeme := l.source[start.Offset:l.pos]
	return token.Token{Kind: token.LookupIdent(lexeme), Lexeme: lexeme, Span: l.makeSpan(start)}
}

// readOperator reads an operator or delimiter token.
func (l *Lexer) readOperator(start span.Position) (token.Token, *diag.Diagnostic) {
	if kind, ok := singles[l.peek()]; ok {
		ch := l.advance()
		if l.peek() == '=' {
			if pair, ok := withEquals[ch]; ok {
				l.advance()
				kind = pair
			}
		}
		return token.Token{Kind: kind, Lexeme: l.source[start.Offset:l.pos], Span: l.makeSpan(start)}, nil
	}

	if l.peek() == '!' {
		l.advance()
		if l.peek() == '=' {
			l.advance()
			return token.Token{Kind: token.NEQ, Lexeme: "!=", Span: l.makeSpan(start)}, nil
		}
		d := diag.Errorf(diag.UnexpectedCharacter, l.makeSpan(start), "unexpected character '!'").
			WithHint("did you mean '!='?")
		return l.illegal(start, d)
	}

	// Consume the whole rune so columns stay in step with the source.
	r, size := utf8.DecodeRuneInString(l.source[l.pos:])
	for i := 0; i < size; i++ {
		l.advance()
	}
	d := diag.Errorf(diag.UnexpectedCharacter, l.makeSpan(start), "unexpected character %s", quoteChar(r, l.source[start.Offset:l.pos]))
	return l.illegal(start, d)
}

var singles = map[byte]token.Kind{
	'(': token.LPAREN,
	')': token.RPAREN,
	'{': token.LBRACE,
	'}': token.RBRACE,
	',': token.COMMA,
	';': token.SEMICOLON,
	':': token.COLON,
	'+': token.PLUS,
	'-': token.MINUS,
	'*': token.STAR,
	'/': token.SLASH,
	'=': token.ASSIGN,
	'<': token.LT,
	'>': token.GT,
}

// withEquals maps the first byte of a two-byte operator ending in '=' to its kind.
var withEquals = map[byte]token.Kind{
	'=': token.EQ,
	'<': token.LTE,
	'>': token.GTE,
}

func quoteChar(r rune, raw string) string {
	if r == utf8.RuneError && len(raw) == 1 {
		return fmt.Sprintf("byte 0x%02x", raw[0])
	}
	return fmt.Sprintf("%q", r)
}

// ---- character classification ----

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}
