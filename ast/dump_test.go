package ast_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ecma3/ast"
)

func TestDump_RendersNestedNodes(t *testing.T) {
	prog := &ast.Program{
		Body: []ast.Stmt{
			&ast.IfStmt{
				Cond: &ast.Ident{Name: "x"},
				Then: &ast.ExprStmt{X: &ast.Ident{Name: "y"}},
			},
		},
	}
	out := ast.Dump(prog)
	require.Contains(t, out, "*ast.Program")
	require.Contains(t, out, "*ast.IfStmt")
	require.Contains(t, out, "*ast.Ident x")
}

func TestDump_NilNode(t *testing.T) {
	require.Equal(t, "", ast.Dump(nil))
}
