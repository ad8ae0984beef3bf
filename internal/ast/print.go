package ast

import (
	"strconv"
	"strings"
)

// String renders node in a compact single-line form, e.g.
//
//	If(Binary(Lt, x, 5), Block[Call(write, [x])], Block[Assign(x, 0)])
//
// The output is stable and is used for golden tests and the REPL.
func String(node Node) string {
	var b strings.Builder
	write(&b, node)
	return b.String()
}

func write(b *strings.Builder, node Node) {
	switch n := node.(type) {
	case nil:
		b.WriteString("<nil>")
	case *Program:
		b.WriteString("Program(")
		write(b, n.Name)
		b.WriteString(", [")
		for i, d := range n.Decls {
			if i > 0 {
				b.WriteString(", ")
			}
			write(b, d)
		}
		b.WriteString("], [")
		writeStmts(b, n.Body)
		b.WriteString("])")
	case *Decl:
		b.WriteString("Decl(")
		write(b, n.Name)
		b.WriteString(", ")
		b.WriteString(n.Type.String())
		b.WriteString(")")

	case *Ident:
		if n == nil {
			b.WriteString("<nil>")
			return
		}
		b.WriteString(n.Name)
	case *IntLit:
		b.WriteString(strconv.FormatUint(n.Value, 10))
	case *FloatLit:
		b.WriteString(formatFloat(n.Value))
	case *StrLit:
		b.WriteString(strconv.Quote(n.Value))
	case *UnaryExpr:
		b.WriteString("Unary(")
		b.WriteString(n.Op.String())
		b.WriteString(", ")
		write(b, n.Operand)
		b.WriteString(")")
	case *BinaryExpr:
		b.WriteString("Binary(")
		b.WriteString(n.Op.String())
		b.WriteString(", ")
		write(b, n.Left)
		b.WriteString(", ")
		write(b, n.Right)
		b.WriteString(")")
	case *ParenExpr:
		b.WriteString("Paren(")
		write(b, n.Inner)
		b.WriteString(")")

	case *AssignStmt:
		b.WriteString("Assign(")
		write(b, n.Target)
		b.WriteString(", ")
		write(b, n.Value)
		b.WriteString(")")
	case *CallStmt:
		b.WriteString("Call(")
		write(b, n.Callee)
		b.WriteString(", [")
		for i, a := range n.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			write(b, a)
		}
		b.WriteString("])")
	case *BlockStmt:
		if n == nil {
			b.WriteString("<nil>")
			return
		}
		b.WriteString("Block[")
		writeStmts(b, n.Stmts)
		b.WriteString("]")
	case *IfStmt:
		b.WriteString("If(")
		write(b, n.Cond)
		b.WriteString(", ")
		write(b, n.Then)
		if n.Else != nil {
			b.WriteString(", ")
			write(b, n.Else)
		}
		b.WriteString(")")
	case *WhileStmt:
		b.WriteString("While(")
		write(b, n.Cond)
		b.WriteString(", ")
		write(b, n.Body)
		b.WriteString(")")
	default:
		b.WriteString("?")
	}
}

func writeStmts(b *strings.Builder, stmts []Stmt) {
	for i, s := range stmts {
		if i > 0 {
			b.WriteString(", ")
		}
		write(b, s)
	}
}

// formatFloat keeps a decimal point so floats never print like integers.
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
