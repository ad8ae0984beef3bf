package parser

import (
	"strconv"

	"minipas/internal/ast"
	"minipas/internal/diag"
	"minipas/internal/token"
)

// ============================================================
// Expression parsing
// ============================================================
//
// One function per level, loosest first:
//
//	expr      = [ "-" ] mult-expr { ("+"|"-") mult-expr }
//	mult-expr = eq-expr  { ("*"|"/") eq-expr }
//	eq-expr   = rel-expr { ("=="|"!=") rel-expr }
//	rel-expr  = prim     { ("<"|"<="|">"|">=") prim }
//
// Multiplicative operators bind looser than comparisons, so a*b==c is
// a*(b==c). All levels are left-associative.

var (
	addOps  = map[token.Kind]ast.BinaryOp{token.PLUS: ast.Add, token.MINUS: ast.Sub}
	multOps = map[token.Kind]ast.BinaryOp{token.STAR: ast.Mul, token.SLASH: ast.Div}
	eqOps   = map[token.Kind]ast.BinaryOp{token.EQ: ast.Eq, token.NEQ: ast.Ne}
	relOps  = map[token.Kind]ast.BinaryOp{token.LT: ast.Lt, token.LTE: ast.Le, token.GT: ast.Gt, token.GTE: ast.Ge}
)

// parseExpr parses an add-expr. A leading '-' negates only the first operand.
func (p *Parser) parseExpr() (ast.Expr, *diag.Diagnostic) {
	var left ast.Expr
	if p.check(token.MINUS) {
		minus := p.advance()
		operand, d := p.parseMultExpr()
		if d != nil {
			return nil, d
		}
		left = &ast.UnaryExpr{
			ExprBase: joinExprBase(minus.Span, operand.GetSpan()),
			Op:       ast.Neg,
			Operand:  operand,
		}
	} else {
		var d *diag.Diagnostic
		if left, d = p.parseMultExpr(); d != nil {
			return nil, d
		}
	}
	return p.foldBinary(left, addOps, p.parseMultExpr)
}

func (p *Parser) parseMultExpr() (ast.Expr, *diag.Diagnostic) {
	left, d := p.parseEqExpr()
	if d != nil {
		return nil, d
	}
	return p.foldBinary(left, multOps, p.parseEqExpr)
}

func (p *Parser) parseEqExpr() (ast.Expr, *diag.Diagnostic) {
	left, d := p.parseRelExpr()
	if d != nil {
		return nil, d
	}
	return p.foldBinary(left, eqOps, p.parseRelExpr)
}

func (p *Parser) parseRelExpr() (ast.Expr, *diag.Diagnostic) {
	left, d := p.parsePrimary()
	if d != nil {
		return nil, d
	}
	return p.foldBinary(left, relOps, p.parsePrimary)
}

// foldBinary consumes { op operand } for the operators in ops and builds a
// left-leaning tree on top of left.
func (p *Parser) foldBinary(left ast.Expr, ops map[token.Kind]ast.BinaryOp, operand func() (ast.Expr, *diag.Diagnostic)) (ast.Expr, *diag.Diagnostic) {
	for {
		op, ok := ops[p.tok.Kind]
		if !ok {
			return left, nil
		}
		p.advance()
		right, d := operand()
		if d != nil {
			return nil, d
		}
		left = &ast.BinaryExpr{
			ExprBase: joinExprBase(left.GetSpan(), right.GetSpan()),
			Op:       op,
			Left:     left,
			Right:    right,
		}
	}
}

// parsePrimary parses: INT | FLOAT | STRING | IDENT | "(" expr ")"
func (p *Parser) parsePrimary() (ast.Expr, *diag.Diagnostic) {
	tok := p.tok
	base := makeExprBase(tok.Span.Start, tok.Span.End)

	switch tok.Kind {
	case token.INT:
		v, err := strconv.ParseUint(tok.Lexeme, 10, 64)
		if err != nil {
			d := diag.Errorf(diag.MalformedNumber, tok.Span, "integer literal %s is out of range", tok.Lexeme).
				WithHint("integers must fit in 64 bits")
			d.Found = tok
			return nil, &d
		}
		p.advance()
		return &ast.IntLit{ExprBase: base, Value: v}, nil

	case token.FLOAT:
		v, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil {
			d := diag.Errorf(diag.MalformedNumber, tok.Span, "float literal %s is out of range", tok.Lexeme)
			d.Found = tok
			return nil, &d
		}
		p.advance()
		return &ast.FloatLit{ExprBase: base, Value: v}, nil

	case token.STRING:
		p.advance()
		return &ast.StrLit{ExprBase: base, Value: tok.Lexeme[1 : len(tok.Lexeme)-1]}, nil

	case token.IDENT:
		p.advance()
		return &ast.Ident{ExprBase: base, Name: tok.Lexeme}, nil

	case token.LPAREN:
		p.advance()
		inner, d := p.parseExpr()
		if d != nil {
			return nil, d
		}
		if _, d := p.expect(token.RPAREN); d != nil {
			return nil, d
		}
		return &ast.ParenExpr{ExprBase: makeExprBase(tok.Span.Start, p.prev.Span.End), Inner: inner}, nil
	}

	return nil, p.unexpected("expression")
}
