package ast

// Inspect traverses the tree rooted at node in depth-first order. It calls
// f(node); if f returns true, Inspect visits each child of node in source
// order. Absent children (a missing else branch) are skipped.
func Inspect(node Node, f func(Node) bool) {
	if isNil(node) || !f(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		Inspect(n.Name, f)
		for _, d := range n.Decls {
			Inspect(d, f)
		}
		for _, s := range n.Body {
			Inspect(s, f)
		}
	case *Decl:
		Inspect(n.Name, f)
	case *UnaryExpr:
		Inspect(n.Operand, f)
	case *BinaryExpr:
		Inspect(n.Left, f)
		Inspect(n.Right, f)
	case *ParenExpr:
		Inspect(n.Inner, f)
	case *AssignStmt:
		Inspect(n.Target, f)
		Inspect(n.Value, f)
	case *CallStmt:
		Inspect(n.Callee, f)
		for _, a := range n.Args {
			Inspect(a, f)
		}
	case *BlockStmt:
		for _, s := range n.Stmts {
			Inspect(s, f)
		}
	case *IfStmt:
		Inspect(n.Cond, f)
		Inspect(n.Then, f)
		if n.Else != nil {
			Inspect(n.Else, f)
		}
	case *WhileStmt:
		Inspect(n.Cond, f)
		Inspect(n.Body, f)
	case *Ident, *IntLit, *FloatLit, *StrLit:
		// leaves
	}
}

// isNil catches typed nil pointers stored in a Node interface.
func isNil(node Node) bool {
	switch n := node.(type) {
	case nil:
		return true
	case *Ident:
		return n == nil
	case *BlockStmt:
		return n == nil
	case *Decl:
		return n == nil
	case *Program:
		return n == nil
	}
	return false
}

// Count returns the number of nodes in the tree rooted at node.
func Count(node Node) int {
	total := 0
	Inspect(node, func(Node) bool {
		total++
		return true
	})
	return total
}
