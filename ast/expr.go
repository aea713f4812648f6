package ast

import (
	"strconv"

	"github.com/shopspring/decimal"
)

func (Ident) exprNode()           {}
func (AtomLit) exprNode()         {}
func (NumberLit) exprNode()       {}
func (StringLit) exprNode()       {}
func (RegexpLit) exprNode()       {}
func (ArrayLit) exprNode()        {}
func (ObjectLit) exprNode()       {}
func (DotExpr) exprNode()         {}
func (SubExpr) exprNode()         {}
func (CallExpr) exprNode()        {}
func (NewExpr) exprNode()         {}
func (UnaryExpr) exprNode()       {}
func (BinaryExpr) exprNode()      {}
func (AssignExpr) exprNode()      {}
func (ConditionalExpr) exprNode() {}
func (SeqExpr) exprNode()         {}
func (FunctionLit) exprNode()     {}

// Ident is the `name` tag: a bare identifier reference.
type Ident struct {
	Base
	Name string
}

func (i *Ident) String() string { return i.Name }

// AtomLit is the `atom` tag: `true`, `false`, `null`, or `undefined`.
type AtomLit struct {
	Base
	Value string
}

func (a *AtomLit) String() string { return a.Value }

// NumberLit is the `num` tag. Value preserves full decimal precision;
// radix (hex/octal) is intentionally not retained.
type NumberLit struct {
	Base
	Value decimal.Decimal
}

func (n *NumberLit) String() string { return n.Value.String() }

// StringLit is the `string` tag, escapes already decoded.
type StringLit struct {
	Base
	Value string
}

func (s *StringLit) String() string { return strconv.Quote(s.Value) }

// RegexpLit is the `regexp` tag.
type RegexpLit struct {
	Base
	Pattern string
	Flags   string
}

func (r *RegexpLit) String() string { return "/" + r.Pattern + "/" + r.Flags }

// ArrayLit is the `array` tag. The parser materializes an elision as
// AtomLit{Value: "undefined"}; Elements never holds a nil slot.
type ArrayLit struct {
	Base
	Elements []Expr
}

func (a *ArrayLit) String() string { return "[array]" }

// ObjectProperty is one `[key, value]` or accessor `[name, function,
// "get"|"set"]` entry of an `object` literal.
type ObjectProperty struct {
	Key      string
	Value    Expr
	Accessor string // "", "get", or "set"
}

// ObjectLit is the `object` tag.
type ObjectLit struct {
	Base
	Properties []ObjectProperty
}

func (o *ObjectLit) String() string { return "[object]" }

// DotExpr is the `dot` tag: `object.name`.
type DotExpr struct {
	Base
	Object Expr
	Name   string
}

func (d *DotExpr) String() string { return d.Object.String() + "." + d.Name }

// SubExpr is the `sub` tag: `object[index]`.
type SubExpr struct {
	Base
	Object Expr
	Index  Expr
}

func (s *SubExpr) String() string { return s.Object.String() + "[...]" }

// CallExpr is the `call` tag.
type CallExpr struct {
	Base
	Callee Expr
	Args   []Expr
}

func (c *CallExpr) String() string { return c.Callee.String() + "(...)" }

// NewExpr is the `new` tag. Args is nil when no parenthesized argument
// list followed the callee chain (an optionally-chained new), and also
// when that list is empty, so nil does not tell `new X` from `new X()`.
type NewExpr struct {
	Base
	Callee Expr
	Args   []Expr
}

func (n *NewExpr) String() string { return "new " + n.Callee.String() }

// UnaryExpr is the `unary-prefix`/`unary-postfix` tag.
type UnaryExpr struct {
	Base
	Op      string
	Operand Expr
	Postfix bool
}

func (u *UnaryExpr) String() string {
	if u.Postfix {
		return u.Operand.String() + u.Op
	}
	return u.Op + u.Operand.String()
}

// BinaryExpr is the `binary` tag.
type BinaryExpr struct {
	Base
	Op          string
	Left, Right Expr
}

func (b *BinaryExpr) String() string { return b.Left.String() + " " + b.Op + " " + b.Right.String() }

// AssignExpr is the `assign` tag. Op is true for a bare `=`, or the
// stripped operator string (e.g. "+") for a compound assignment.
type AssignExpr struct {
	Base
	Op       any
	Lhs, Rhs Expr
}

func (a *AssignExpr) String() string { return a.Lhs.String() + " = " + a.Rhs.String() }

// ConditionalExpr is the `conditional` tag.
type ConditionalExpr struct {
	Base
	Test, Then, Else Expr
}

func (c *ConditionalExpr) String() string { return c.Test.String() + " ? ... : ..." }

// SeqExpr is the `seq` tag: a left-associated chain folded from a
// comma-expression.
type SeqExpr struct {
	Base
	First, Rest Expr
}

func (s *SeqExpr) String() string { return s.First.String() + ", " + s.Rest.String() }

// FunctionLit is the expression form of the `function`/`defun` tag: Name
// is empty for an anonymous function expression.
type FunctionLit struct {
	Base
	Name   string
	Params []string
	Body   *BlockStmt
}

func (f *FunctionLit) String() string { return "function " + f.Name + "(...)" }

// IsAssignable implements `is_assignable`: dot, sub, name (other than
// "this"), new, and call expressions are assignable; every other shape
// is not, in both lenient and exigent mode.
func IsAssignable(e Expr, exigent bool) bool {
	switch v := e.(type) {
	case *DotExpr, *SubExpr, *NewExpr, *CallExpr:
		return true
	case *Ident:
		return v.Name != "this"
	}
	return false
}
