// Package ast defines the abstract syntax tree for minipas.
package ast

import (
	"minipas/internal/span"
)

// ============================================================
// Node interfaces
// ============================================================

// Node is the interface implemented by all AST nodes.
type Node interface {
	nodeNode()
	GetSpan() span.Span
}

// Expr is the interface for expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Stmt is the interface for statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// ============================================================
// Base types (embedded to provide common fields)
// ============================================================

// NodeBase provides the common Span field for all AST nodes.
type NodeBase struct {
	Span span.Span
}

func (n NodeBase) nodeNode()          {}
func (n NodeBase) GetSpan() span.Span { return n.Span }

// ExprBase is embedded by all expression nodes.
type ExprBase struct{ NodeBase }

func (ExprBase) exprNode() {}

// StmtBase is embedded by all statement nodes.
type StmtBase struct{ NodeBase }

func (StmtBase) stmtNode() {}

// ============================================================
// Program (AST root) and declarations
// ============================================================

// Program represents a whole source file: header, declarations, body.
type Program struct {
	NodeBase
	Name  *Ident
	Decls []*Decl
	Body  []Stmt // never empty
}

// Type is a declared variable type.
type Type int

const (
	Int Type = iota
	Bool
	Float
	Str
)

func (t Type) String() string {
	switch t {
	case Int:
		return "int"
	case Bool:
		return "bool"
	case Float:
		return "float"
	case Str:
		return "str"
	default:
		return "unknown"
	}
}

// Decl represents `let name: type;`.
type Decl struct {
	NodeBase
	Name *Ident
	Type Type
}

// ============================================================
// Expressions
// ============================================================

// Ident represents an identifier, both as a reference and as a name in
// declarations, assignments and calls.
type Ident struct {
	ExprBase
	Name string
}

// IntLit represents an integer literal.
type IntLit struct {
	ExprBase
	Value uint64
}

// FloatLit represents a floating-point literal.
type FloatLit struct {
	ExprBase
	Value float64
}

// StrLit represents a string literal. Value excludes the quotes.
type StrLit struct {
	ExprBase
	Value string
}

// UnaryOp is a prefix operator.
type UnaryOp int

const (
	Neg UnaryOp = iota // -
)

func (op UnaryOp) String() string {
	if op == Neg {
		return "Neg"
	}
	return "UnaryOp?"
}

// Symbol returns the source spelling of the operator.
func (op UnaryOp) Symbol() string {
	if op == Neg {
		return "-"
	}
	return "?"
}

// UnaryExpr represents a prefix operation.
type UnaryExpr struct {
	ExprBase
	Op      UnaryOp
	Operand Expr
}

// BinaryOp is an infix operator.
type BinaryOp int

const (
	Add BinaryOp = iota // +
	Sub                 // -
	Mul                 // *
	Div                 // /
	Eq                  // ==
	Ne                  // !=
	Lt                  // <
	Le                  // <=
	Gt                  // >
	Ge                  // >=
)

var binaryOpNames = [...]struct{ name, symbol string }{
	Add: {"Add", "+"},
	Sub: {"Sub", "-"},
	Mul: {"Mul", "*"},
	Div: {"Div", "/"},
	Eq:  {"Eq", "=="},
	Ne:  {"Ne", "!="},
	Lt:  {"Lt", "<"},
	Le:  {"Le", "<="},
	Gt:  {"Gt", ">"},
	Ge:  {"Ge", ">="},
}

func (op BinaryOp) String() string {
	if op >= 0 && int(op) < len(binaryOpNames) {
		return binaryOpNames[op].name
	}
	return "BinaryOp?"
}

// Symbol returns the source spelling of the operator.
func (op BinaryOp) Symbol() string {
	if op >= 0 && int(op) < len(binaryOpNames) {
		return binaryOpNames[op].symbol
	}
	return "?"
}

// BinaryExpr represents a binary operation.
type BinaryExpr struct {
	ExprBase
	Op    BinaryOp
	Left  Expr
	Right Expr
}

// ParenExpr represents a parenthesized expression. It is kept in the tree
// so spans and printed forms match the source.
type ParenExpr struct {
	ExprBase
	Inner Expr
}

// ============================================================
// Statements
// ============================================================

// AssignStmt represents `target = value;`.
type AssignStmt struct {
	StmtBase
	Target *Ident
	Value  Expr
}

// CallStmt represents `callee(args);`.
type CallStmt struct {
	StmtBase
	Callee *Ident
	Args   []Expr
}

// BlockStmt represents `{ stmts }`. A block holds at least one statement.
type BlockStmt struct {
	StmtBase
	Stmts []Stmt
}

// IfStmt represents `if cond { ... } [else { ... }]`.
type IfStmt struct {
	StmtBase
	Cond Expr
	Then *BlockStmt
	Else *BlockStmt // nil if absent
}

// WhileStmt represents `while cond { ... }`.
type WhileStmt struct {
	StmtBase
	Cond Expr
	Body *BlockStmt
}
