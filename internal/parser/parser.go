// Package parser implements the syntax analysis for minipas.
// It uses recursive descent for the program structure and statements and one
// function per precedence level for expressions.
package parser

import (
	"minipas/internal/ast"
	"minipas/internal/diag"
	"minipas/internal/lexer"
	"minipas/internal/span"
	"minipas/internal/token"
)

// DefaultMaxErrors caps the diagnostics collected in recovery mode.
const DefaultMaxErrors = 10

// Options controls error handling.
type Options struct {
	// Recover keeps parsing after an error to collect further diagnostics.
	// The first diagnostic and the accept/reject outcome are the same as
	// without it.
	Recover bool
	// MaxErrors bounds the diagnostics in recovery mode; past it a single
	// TooManyErrors diagnostic is appended. Zero means DefaultMaxErrors.
	MaxErrors int
	// Emit, when set, sees every diagnostic as it is recorded.
	Emit func(diag.Diagnostic)
}

// ============================================================
// Parser
// ============================================================

// Parser pulls tokens from a lexer with one token of lookahead.
type Parser struct {
	lx   *lexer.Lexer
	opts Options

	tok     token.Token      // lookahead
	tokDiag *diag.Diagnostic // lexer diagnostic when tok is ILLEGAL
	prev    token.Token      // last consumed token

	reporter *diag.Reporter
	done     bool // recovery gave up: end of input or error limit
	depth    int  // blocks currently open
}

// New creates a parser reading from lx.
func New(lx *lexer.Lexer, opts Options) *Parser {
	limit := opts.MaxErrors
	if limit <= 0 {
		limit = DefaultMaxErrors
	}
	if !opts.Recover {
		limit = 0
	}
	p := &Parser{lx: lx, opts: opts, reporter: diag.NewReporter(limit, opts.Emit)}
	p.advance()
	return p
}

// Parse lexes and parses a whole program.
func Parse(src string, opts Options) (*ast.Program, diag.List) {
	return New(lexer.New(src), opts).ParseProgram()
}

// ParseExpr parses src as a single expression followed by end of input.
// It always stops at the first error.
func ParseExpr(src string) (ast.Expr, diag.List) {
	p := New(lexer.New(src), Options{})
	expr, d := p.parseExpr()
	if d == nil && !p.check(token.EOF) {
		d = p.unexpected("end of input")
	}
	if d != nil {
		return nil, diag.List{*d}
	}
	return expr, nil
}

// ParseStmts parses src as one or more statements followed by end of input.
// It always stops at the first error.
func ParseStmts(src string) ([]ast.Stmt, diag.List) {
	p := New(lexer.New(src), Options{})
	var stmts []ast.Stmt
	for {
		stmt, d := p.parseStmt()
		if d != nil {
			return nil, diag.List{*d}
		}
		stmts = append(stmts, stmt)
		if p.check(token.EOF) {
			return stmts, nil
		}
	}
}

// ParseProgram parses: "program" IDENT ";" { decl } stmt { stmt } EOF
//
// On any diagnostic the returned program is nil.
func (p *Parser) ParseProgram() (*ast.Program, diag.List) {
	prog, d := p.parseProgram()
	if d != nil && !p.halted() {
		p.reporter.Report(*d)
	}
	if diags := p.reporter.Diagnostics(); len(diags) > 0 {
		return nil, diags
	}
	return prog, nil
}

func (p *Parser) parseProgram() (*ast.Program, *diag.Diagnostic) {
	start := p.tok.Span.Start
	prog := &ast.Program{}

	name, d := p.parseHeader()
	if d != nil && !p.recoverFrom(d) {
		return nil, d
	}
	prog.Name = name

	for p.check(token.KW_LET) {
		decl, d := p.parseDecl()
		if d != nil {
			if !p.recoverFrom(d) {
				return nil, d
			}
			continue
		}
		prog.Decls = append(prog.Decls, decl)
	}

	for {
		stmt, d := p.parseStmt()
		if d != nil {
			if !p.recoverFrom(d) {
				return nil, d
			}
		} else {
			prog.Body = append(prog.Body, stmt)
		}
		if p.check(token.EOF) {
			break
		}
	}

	prog.Span = p.makeSpan(start)
	return prog, nil
}

// parseHeader parses: "program" IDENT ";"
func (p *Parser) parseHeader() (*ast.Ident, *diag.Diagnostic) {
	if _, d := p.expect(token.KW_PROGRAM); d != nil {
		return nil, d
	}
	name, d := p.parseIdent()
	if d != nil {
		return nil, d
	}
	if _, d := p.expect(token.SEMICOLON); d != nil {
		return nil, d
	}
	return name, nil
}

// parseDecl parses: "let" IDENT ":" type ";"
func (p *Parser) parseDecl() (*ast.Decl, *diag.Diagnostic) {
	start := p.advance() // consume 'let'
	name, d := p.parseIdent()
	if d != nil {
		return nil, d
	}
	if _, d := p.expect(token.COLON); d != nil {
		return nil, d
	}
	typ, d := p.parseType()
	if d != nil {
		return nil, d
	}
	if _, d := p.expect(token.SEMICOLON); d != nil {
		return nil, d
	}
	return &ast.Decl{
		NodeBase: ast.NodeBase{Span: p.makeSpan(start.Span.Start)},
		Name:     name,
		Type:     typ,
	}, nil
}

var typeNames = map[token.Kind]ast.Type{
	token.KW_INT:   ast.Int,
	token.KW_BOOL:  ast.Bool,
	token.KW_FLOAT: ast.Float,
	token.KW_STR:   ast.Str,
}

// parseType parses: "int" | "bool" | "float" | "str"
func (p *Parser) parseType() (ast.Type, *diag.Diagnostic) {
	if typ, ok := typeNames[p.tok.Kind]; ok {
		p.advance()
		return typ, nil
	}
	switch p.tok.Kind {
	case token.ILLEGAL, token.EOF:
		return 0, p.unexpected("type (int, bool, float, str)")
	}
	d := diag.Expected(p.tok, token.KW_INT, token.KW_BOOL, token.KW_FLOAT, token.KW_STR)
	d.Message = "expected type (int, bool, float, str), found " + p.tok.Describe()
	return 0, &d
}

func (p *Parser) parseIdent() (*ast.Ident, *diag.Diagnostic) {
	tok, d := p.expect(token.IDENT)
	if d != nil {
		return nil, d
	}
	return &ast.Ident{ExprBase: makeExprBase(tok.Span.Start, tok.Span.End), Name: tok.Lexeme}, nil
}

// ---- navigation helpers ----

func (p *Parser) advance() token.Token {
	p.prev = p.tok
	p.tok, p.tokDiag = p.lx.Next()
	return p.prev
}

func (p *Parser) check(kind token.Kind) bool {
	return p.tok.Kind == kind
}

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			return true
		}
	}
	return false
}

// expect consumes a token of the given kind or describes why it cannot.
func (p *Parser) expect(kind token.Kind) (token.Token, *diag.Diagnostic) {
	if p.check(kind) {
		return p.advance(), nil
	}
	switch p.tok.Kind {
	case token.ILLEGAL:
		return p.tok, p.lexError()
	case token.EOF:
		d := diag.EndOfInput(p.tok, kind.Describe())
		d.Expected = []token.Kind{kind}
		return p.tok, &d
	}
	d := diag.Expected(p.tok, kind)
	return p.tok, &d
}

// unexpected reports that no production for what starts at the lookahead.
func (p *Parser) unexpected(what string) *diag.Diagnostic {
	switch p.tok.Kind {
	case token.ILLEGAL:
		return p.lexError()
	case token.EOF:
		d := diag.EndOfInput(p.tok, what)
		return &d
	}
	d := diag.Unexpected(p.tok, what)
	return &d
}

// lexError returns the lexer's diagnostic for an ILLEGAL lookahead.
func (p *Parser) lexError() *diag.Diagnostic {
	d := *p.tokDiag
	return &d
}

// ============================================================
// Error recovery
// ============================================================

func (p *Parser) halted() bool {
	return p.done || p.reporter.Full()
}

// record reports d when recovery is enabled. It returns false when the
// parse must stop and d should propagate.
func (p *Parser) record(d *diag.Diagnostic) bool {
	if !p.opts.Recover || p.halted() {
		return false
	}
	p.reporter.Report(*d)
	if p.reporter.Full() {
		p.done = true
		return false
	}
	return true
}

// recoverFrom records d and resynchronizes when recovery is enabled. It
// returns false when the parse must stop and d should propagate.
func (p *Parser) recoverFrom(d *diag.Diagnostic) bool {
	if !p.record(d) {
		return false
	}
	if p.check(token.EOF) {
		p.done = true
		return false
	}
	p.synchronize()
	if p.reporter.Full() {
		p.done = true
		return false
	}
	return true
}

// synchronize skips tokens until a likely statement boundary. It stops after
// ';', before a token that starts a statement or declaration, and before a
// '}' that closes an open block so the block ends where it should. Outside
// any block a '}' is skipped and parsing resumes after it. Unless it is
// already at such a '}', it consumes at least one token. Lexical errors in
// skipped tokens are still reported.
func (p *Parser) synchronize() {
	if p.closesBlock() {
		return
	}
	p.advance()
	for !p.check(token.EOF) {
		switch p.prev.Kind {
		case token.SEMICOLON, token.RBRACE:
			return
		}
		if p.match(token.KW_IF, token.KW_WHILE, token.KW_LET, token.LBRACE) || p.closesBlock() {
			return
		}
		if p.check(token.ILLEGAL) {
			if !p.reporter.Report(*p.tokDiag) {
				return
			}
		}
		p.advance()
	}
}

// closesBlock reports whether the lookahead is the '}' of an open block.
func (p *Parser) closesBlock() bool {
	return p.depth > 0 && p.check(token.RBRACE)
}

// ============================================================
// Span helpers
// ============================================================

func (p *Parser) makeSpan(start span.Position) span.Span {
	return span.Span{Start: start, End: p.prev.Span.End}
}

func makeExprBase(start, end span.Position) ast.ExprBase {
	return ast.ExprBase{NodeBase: ast.NodeBase{Span: span.Span{Start: start, End: end}}}
}

// joinExprBase covers an operator node from its first to its last operand.
func joinExprBase(first, last span.Span) ast.ExprBase {
	return ast.ExprBase{NodeBase: ast.NodeBase{Span: span.Join(first, last)}}
}

func makeStmtBase(start, end span.Position) ast.StmtBase {
	return ast.StmtBase{NodeBase: ast.NodeBase{Span: span.Span{Start: start, End: end}}}
}
