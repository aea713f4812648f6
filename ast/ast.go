// Package ast defines the AST node types the parser produces: one
// concrete Go struct per tag, each satisfying Node and, as appropriate,
// Expr or Stmt.
package ast

import "ecma3/lexer"

// Node is implemented by every AST node. Pos reports the byte offset of
// the node's first character in the normalized source.
type Node interface {
	Pos() int
	String() string
	SetSpan(start, end lexer.Token)
}

// Span holds the start/end token references the optional token-embedding
// mode preserves for downstream tooling.
type Span struct {
	Start, End lexer.Token
}

// Stmt is implemented by every statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is implemented by every expression node.
type Expr interface {
	Node
	exprNode()
}

// Base carries the one field every node needs and gives embedders Pos()
// for free. Exported so the parser package can set it by struct literal.
type Base struct {
	Position int
	Span     *Span
}

func (b Base) Pos() int { return b.Position }

// SetSpan records the originating token range. Only populated when a
// parse runs with embedTokens set.
func (b *Base) SetSpan(start, end lexer.Token) { b.Span = &Span{Start: start, End: end} }
