package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ecma3/ast"
	"ecma3/parser"
)

func mustParse(t *testing.T, src string, exigent bool) *ast.Program {
	t.Helper()
	prog, err := parser.Parse(src, exigent, false)
	require.NoError(t, err)
	require.NotNil(t, prog)
	return prog
}

func TestParser_VarDecl(t *testing.T) {
	prog := mustParse(t, "var x = 1;", false)
	require.Len(t, prog.Body, 1)
	v, ok := prog.Body[0].(*ast.VarStmt)
	require.True(t, ok)
	require.Len(t, v.Decls, 1)
	require.Equal(t, "x", v.Decls[0].Name)
	num, ok := v.Decls[0].Init.(*ast.NumberLit)
	require.True(t, ok)
	require.Equal(t, "1", num.Value.String())
}

func TestParser_FunctionDecl(t *testing.T) {
	prog := mustParse(t, "function f(a,b){ return a+b; }", false)
	fn, ok := prog.Body[0].(*ast.FunctionDecl)
	require.True(t, ok)
	require.Equal(t, "f", fn.Name)
	require.Equal(t, []string{"a", "b"}, fn.Params)
	require.Len(t, fn.Body.Body, 1)
	ret, ok := fn.Body.Body[0].(*ast.ReturnStmt)
	require.True(t, ok)
	bin, ok := ret.X.(*ast.BinaryExpr)
	require.True(t, ok)
	require.Equal(t, "+", bin.Op)
}

func TestParser_ForLoop(t *testing.T) {
	prog := mustParse(t, "for (var i=0; i<10; i++) a[i]=i;", false)
	f, ok := prog.Body[0].(*ast.ForStmt)
	require.True(t, ok)
	body, ok := f.Body.(*ast.ExprStmt)
	require.True(t, ok)
	assign, ok := body.X.(*ast.AssignExpr)
	require.True(t, ok)
	require.Equal(t, true, assign.Op)
	_, ok = assign.Lhs.(*ast.SubExpr)
	require.True(t, ok)
}

func TestParser_Conditional(t *testing.T) {
	prog := mustParse(t, "x ? y : z;", false)
	stmt := prog.Body[0].(*ast.ExprStmt)
	cond, ok := stmt.X.(*ast.ConditionalExpr)
	require.True(t, ok)
	require.IsType(t, &ast.Ident{}, cond.Test)
}

func TestParser_TryCatchFinally(t *testing.T) {
	prog := mustParse(t, "try { f(); } catch(e) { g(e); } finally { h(); }", false)
	try, ok := prog.Body[0].(*ast.TryStmt)
	require.True(t, ok)
	require.Equal(t, "e", try.CatchName)
	require.NotNil(t, try.CatchBody)
	require.NotNil(t, try.Finally)
}

func TestParser_RegexInAssignment(t *testing.T) {
	prog := mustParse(t, "a = /foo/gi.test(s)", false)
	stmt := prog.Body[0].(*ast.ExprStmt)
	assign := stmt.X.(*ast.AssignExpr)
	call, ok := assign.Rhs.(*ast.CallExpr)
	require.True(t, ok)
	dot, ok := call.Callee.(*ast.DotExpr)
	require.True(t, ok)
	require.Equal(t, "test", dot.Name)
	re, ok := dot.Object.(*ast.RegexpLit)
	require.True(t, ok)
	require.Equal(t, "foo", re.Pattern)
	require.Equal(t, "gi", re.Flags)
}

func TestParser_RegexAfterStatementBoundary(t *testing.T) {
	// right after a postfix ++ a '/' scans as division, but the explicit
	// ';' ends the statement, so the '/' that follows starts a regex.
	prog := mustParse(t, "x++;\n/abc/.test(y);", false)
	require.Len(t, prog.Body, 2)
	stmt := prog.Body[1].(*ast.ExprStmt)
	call := stmt.X.(*ast.CallExpr)
	dot := call.Callee.(*ast.DotExpr)
	_, ok := dot.Object.(*ast.RegexpLit)
	require.True(t, ok)
}

func TestParser_DivisionNotRegex(t *testing.T) {
	prog := mustParse(t, "a / b / c;", false)
	stmt := prog.Body[0].(*ast.ExprStmt)
	outer, ok := stmt.X.(*ast.BinaryExpr)
	require.True(t, ok)
	require.Equal(t, "/", outer.Op)
	_, ok = outer.Left.(*ast.BinaryExpr)
	require.True(t, ok)
}

func TestParser_ArrayLitElisionAndTrailingComma(t *testing.T) {
	prog := mustParse(t, "var a = [1,,3,];", false)
	v := prog.Body[0].(*ast.VarStmt)
	arr := v.Decls[0].Init.(*ast.ArrayLit)
	require.Len(t, arr.Elements, 3)
	hole, ok := arr.Elements[1].(*ast.AtomLit)
	require.True(t, ok)
	require.Equal(t, "undefined", hole.Value)
}

func TestParser_ObjectLitAccessors(t *testing.T) {
	prog := mustParse(t, "var o = { x: 1, get y() { return 2; } };", false)
	v := prog.Body[0].(*ast.VarStmt)
	obj := v.Decls[0].Init.(*ast.ObjectLit)
	require.Len(t, obj.Properties, 2)
	require.Equal(t, "", obj.Properties[0].Accessor)
	require.Equal(t, "get", obj.Properties[1].Accessor)
	require.IsType(t, &ast.FunctionLit{}, obj.Properties[1].Value)
}

func TestParser_LabeledLoopAndBreak(t *testing.T) {
	prog := mustParse(t, "outer: while (x) { break outer; }", false)
	lbl, ok := prog.Body[0].(*ast.LabeledStmt)
	require.True(t, ok)
	require.Equal(t, "outer", lbl.Label)
}

func TestParser_EmptySource(t *testing.T) {
	prog := mustParse(t, "", false)
	require.Empty(t, prog.Body)
}

func TestParser_SingleSemicolon(t *testing.T) {
	prog := mustParse(t, ";", false)
	require.Len(t, prog.Body, 1)
	require.IsType(t, &ast.EmptyStmt{}, prog.Body[0])
}

func TestParser_NegativeScenarios(t *testing.T) {
	cases := []string{
		"return 1;",
		"break foo;",
		"1 = 2;",
		`"abc`,
		"/abc",
	}
	for _, src := range cases {
		_, err := parser.Parse(src, false, false)
		require.Error(t, err, src)
	}
}

func TestParser_ExigentRejectsTrailingComma(t *testing.T) {
	_, err := parser.Parse("var a = [1,2,];", true, false)
	require.Error(t, err)
}

func TestParser_ExigentRejectsNonLoopLabel(t *testing.T) {
	_, err := parser.Parse("outer: x = 1;", true, false)
	require.Error(t, err)
}
