package ast

import (
	"fmt"
	"strings"
)

// Dump renders n as an indented tree, one node per line, for debugging
// and golden-file tests. It has no bearing on parsing.
func Dump(n Node) string {
	var b strings.Builder
	dump(&b, n, 0)
	return b.String()
}

func dump(b *strings.Builder, n Node, depth int) {
	if n == nil {
		return
	}
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(b, "%s%T %s\n", indent, n, n.String())

	for _, child := range children(n) {
		dump(b, child, depth+1)
	}
}

// children returns n's direct AST children, skipping nil slots. It does
// not attempt to be exhaustive over every field kind (string/bool
// fields carry no children); it only walks Node-typed fields.
func children(n Node) []Node {
	switch v := n.(type) {
	case *Program:
		return stmts(v.Body)
	case *BlockStmt:
		return stmts(v.Body)
	case *ExprStmt:
		return []Node{v.X}
	case *VarStmt:
		var out []Node
		for _, d := range v.Decls {
			if d.Init != nil {
				out = append(out, d.Init)
			}
		}
		return out
	case *IfStmt:
		return nonNil(v.Cond, v.Then, v.Else)
	case *WhileStmt:
		return nonNil(v.Cond, v.Body)
	case *WithStmt:
		return nonNil(v.X, v.Body)
	case *DoWhileStmt:
		return nonNil(v.Body, v.Cond)
	case *ForStmt:
		return nonNil(v.Init, v.Test, v.Step, v.Body)
	case *ForInStmt:
		return nonNil(v.Obj, v.Body)
	case *SwitchStmt:
		out := []Node{v.Discriminant}
		for _, c := range v.Cases {
			if c.Test != nil {
				out = append(out, c.Test)
			}
			out = append(out, stmts(c.Body)...)
		}
		return out
	case *ReturnStmt:
		return nonNil(v.X)
	case *ThrowStmt:
		return []Node{v.X}
	case *TryStmt:
		return nonNil(n2(v.Body), n2(v.CatchBody), n2(v.Finally))
	case *LabeledStmt:
		return []Node{v.Stmt}
	case *FunctionDecl:
		return []Node{v.Body}
	case *ArrayLit:
		return exprs(v.Elements)
	case *ObjectLit:
		var out []Node
		for _, p := range v.Properties {
			out = append(out, p.Value)
		}
		return out
	case *DotExpr:
		return []Node{v.Object}
	case *SubExpr:
		return nonNil(v.Object, v.Index)
	case *CallExpr:
		return append([]Node{v.Callee}, exprs(v.Args)...)
	case *NewExpr:
		return append([]Node{v.Callee}, exprs(v.Args)...)
	case *UnaryExpr:
		return []Node{v.Operand}
	case *BinaryExpr:
		return []Node{v.Left, v.Right}
	case *AssignExpr:
		return []Node{v.Lhs, v.Rhs}
	case *ConditionalExpr:
		return []Node{v.Test, v.Then, v.Else}
	case *SeqExpr:
		return []Node{v.First, v.Rest}
	case *FunctionLit:
		return nonNil(n2(v.Body))
	}
	return nil
}

func n2(b *BlockStmt) Node {
	if b == nil {
		return nil
	}
	return b
}

func stmts(ss []Stmt) []Node {
	out := make([]Node, 0, len(ss))
	for _, s := range ss {
		out = append(out, s)
	}
	return out
}

func exprs(es []Expr) []Node {
	out := make([]Node, 0, len(es))
	for _, e := range es {
		out = append(out, e)
	}
	return out
}

func nonNil(ns ...Node) []Node {
	var out []Node
	for _, n := range ns {
		if n == nil {
			continue
		}
		out = append(out, n)
	}
	return out
}
