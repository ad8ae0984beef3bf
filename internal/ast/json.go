package ast

import (
	"minipas/internal/span"
)

// NodeToMap converts an AST node to a map suitable for JSON or YAML output.
// This produces a tagged-union structure: every node has a "kind" field.
func NodeToMap(node Node) map[string]interface{} {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *Program:
		decls := make([]interface{}, len(n.Decls))
		for i, d := range n.Decls {
			decls[i] = NodeToMap(d)
		}
		return m("Program", n.Span,
			"name", identName(n.Name),
			"decls", decls,
			"body", stmtSlice(n.Body))
	case *Decl:
		return m("Decl", n.Span, "name", identName(n.Name), "type", n.Type.String())

	// ---- Expressions ----
	case *Ident:
		if n == nil {
			return nil
		}
		return m("Ident", n.Span, "name", n.Name)
	case *IntLit:
		return m("IntLit", n.Span, "value", n.Value)
	case *FloatLit:
		return m("FloatLit", n.Span, "value", n.Value)
	case *StrLit:
		return m("StrLit", n.Span, "value", n.Value)
	case *UnaryExpr:
		return m("UnaryExpr", n.Span, "op", n.Op.String(), "operand", NodeToMap(n.Operand))
	case *BinaryExpr:
		return m("BinaryExpr", n.Span,
			"op", n.Op.String(),
			"left", NodeToMap(n.Left),
			"right", NodeToMap(n.Right))
	case *ParenExpr:
		return m("ParenExpr", n.Span, "inner", NodeToMap(n.Inner))

	// ---- Statements ----
	case *AssignStmt:
		return m("AssignStmt", n.Span,
			"target", NodeToMap(n.Target),
			"value", NodeToMap(n.Value))
	case *CallStmt:
		return m("CallStmt", n.Span,
			"callee", NodeToMap(n.Callee),
			"args", exprSlice(n.Args))
	case *BlockStmt:
		if n == nil {
			return nil
		}
		return m("BlockStmt", n.Span, "stmts", stmtSlice(n.Stmts))
	case *IfStmt:
		result := m("IfStmt", n.Span,
			"cond", NodeToMap(n.Cond),
			"then", NodeToMap(n.Then))
		if n.Else != nil {
			result["else"] = NodeToMap(n.Else)
		}
		return result
	case *WhileStmt:
		return m("WhileStmt", n.Span,
			"cond", NodeToMap(n.Cond),
			"body", NodeToMap(n.Body))

	default:
		return map[string]interface{}{"kind": "Unknown"}
	}
}

// ---- helpers ----

// m builds a map with kind, span, and extra key-value pairs.
func m(kind string, s span.Span, kvs ...interface{}) map[string]interface{} {
	result := map[string]interface{}{
		"kind": kind,
		"span": spanToMap(s),
	}
	for i := 0; i+1 < len(kvs); i += 2 {
		key := kvs[i].(string)
		result[key] = kvs[i+1]
	}
	return result
}

func spanToMap(s span.Span) map[string]interface{} {
	return map[string]interface{}{
		"start": map[string]interface{}{
			"offset": s.Start.Offset,
			"line":   s.Start.Line,
			"column": s.Start.Column,
		},
		"end": map[string]interface{}{
			"offset": s.End.Offset,
			"line":   s.End.Line,
			"column": s.End.Column,
		},
	}
}

func identName(id *Ident) string {
	if id == nil {
		return ""
	}
	return id.Name
}

func stmtSlice(stmts []Stmt) []interface{} {
	result := make([]interface{}, len(stmts))
	for i, s := range stmts {
		result[i] = NodeToMap(s)
	}
	return result
}

func exprSlice(exprs []Expr) []interface{} {
	result := make([]interface{}, len(exprs))
	for i, e := range exprs {
		result[i] = NodeToMap(e)
	}
	return result
}
