package parser

import (
	"minipas/internal/ast"
	"minipas/internal/diag"
	"minipas/internal/token"
)

// ============================================================
// Statement parsing
// ============================================================

func (p *Parser) parseStmt() (ast.Stmt, *diag.Diagnostic) {
	switch p.tok.Kind {
	case token.IDENT:
		return p.parseSimpleStmt()
	case token.LBRACE:
		block, d := p.parseBlock()
		if d != nil {
			return nil, d
		}
		return block, nil
	case token.KW_IF:
		return p.parseIfStmt()
	case token.KW_WHILE:
		return p.parseWhileStmt()
	case token.KW_LET:
		d := p.unexpected("statement").WithHint("declarations must come before the first statement")
		return nil, &d
	default:
		return nil, p.unexpected("statement")
	}
}

// parseSimpleStmt parses an assignment or a call, both starting with an
// identifier:
//
//	IDENT "=" expr ";"
//	IDENT "(" [ expr { "," expr } ] ")" ";"
func (p *Parser) parseSimpleStmt() (ast.Stmt, *diag.Diagnostic) {
	nameTok := p.advance()
	name := &ast.Ident{ExprBase: makeExprBase(nameTok.Span.Start, nameTok.Span.End), Name: nameTok.Lexeme}
	start := nameTok.Span.Start

	switch p.tok.Kind {
	case token.ASSIGN:
		p.advance()
		value, d := p.parseExpr()
		if d != nil {
			return nil, d
		}
		if _, d := p.expect(token.SEMICOLON); d != nil {
			return nil, d
		}
		return &ast.AssignStmt{StmtBase: makeStmtBase(start, p.prev.Span.End), Target: name, Value: value}, nil

	case token.LPAREN:
		p.advance()
		var args []ast.Expr
		if !p.check(token.RPAREN) {
			for {
				arg, d := p.parseExpr()
				if d != nil {
					return nil, d
				}
				args = append(args, arg)
				if !p.check(token.COMMA) {
					break
				}
				p.advance() // consume ','
			}
		}
		if _, d := p.expect(token.RPAREN); d != nil {
			return nil, d
		}
		if _, d := p.expect(token.SEMICOLON); d != nil {
			return nil, d
		}
		return &ast.CallStmt{StmtBase: makeStmtBase(start, p.prev.Span.End), Callee: name, Args: args}, nil

	case token.ILLEGAL, token.EOF:
		return nil, p.unexpected("'=' or '('")
	}
	d := diag.Expected(p.tok, token.ASSIGN, token.LPAREN)
	return nil, &d
}

// parseBlock parses: "{" stmt { stmt } "}"
func (p *Parser) parseBlock() (*ast.BlockStmt, *diag.Diagnostic) {
	open, d := p.expect(token.LBRACE)
	if d != nil {
		return nil, d
	}
	if p.check(token.RBRACE) {
		d := p.unexpected("statement").WithHint("a block must contain at least one statement")
		if !p.record(&d) {
			return nil, &d
		}
		p.advance() // consume '}'
		return &ast.BlockStmt{StmtBase: makeStmtBase(open.Span.Start, p.prev.Span.End)}, nil
	}

	p.depth++
	defer func() { p.depth-- }()

	block := &ast.BlockStmt{}
	for !p.check(token.RBRACE) {
		stmt, d := p.parseStmt()
		if d != nil {
			if !p.recoverFrom(d) {
				return nil, d
			}
			continue
		}
		block.Stmts = append(block.Stmts, stmt)
	}
	p.advance() // consume '}'

	block.StmtBase = makeStmtBase(open.Span.Start, p.prev.Span.End)
	return block, nil
}

// parseIfStmt parses: "if" expr block [ "else" block ]
func (p *Parser) parseIfStmt() (ast.Stmt, *diag.Diagnostic) {
	start := p.advance() // consume 'if'
	cond, d := p.parseExpr()
	if d != nil {
		return nil, d
	}
	then, d := p.parseBlock()
	if d != nil {
		return nil, d
	}
	stmt := &ast.IfStmt{Cond: cond, Then: then}
	if p.check(token.KW_ELSE) {
		p.advance() // consume 'else'
		if stmt.Else, d = p.parseBlock(); d != nil {
			return nil, d
		}
	}
	stmt.StmtBase = makeStmtBase(start.Span.Start, p.prev.Span.End)
	return stmt, nil
}

// parseWhileStmt parses: "while" expr block
func (p *Parser) parseWhileStmt() (ast.Stmt, *diag.Diagnostic) {
	start := p.advance() // consume 'while'
	cond, d := p.parseExpr()
	if d != nil {
		return nil, d
	}
	body, d := p.parseBlock()
	if d != nil {
		return nil, d
	}
	return &ast.WhileStmt{
		StmtBase: makeStmtBase(start.Span.Start, p.prev.Span.End),
		Cond:     cond,
		Body:     body,
	}, nil
}
