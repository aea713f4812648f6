package parser

import (
	"ecma3/ast"
	"ecma3/token"
)

// parseStmt dispatches on the current token's type: Name tokens followed
// by ':' become labeled statements, '{' introduces a block, a bare ';'
// yields an empty statement, keywords dispatch to a fixed per-keyword
// sub-parser, and anything else is an expression statement.
func (p *Parser) parseStmt() ast.Stmt {
	startTok := p.tok
	s := p.parseStmtDispatch()
	if p.embedTokens {
		s.SetSpan(startTok, p.prevTok)
	}
	return s
}

func (p *Parser) parseStmtDispatch() ast.Stmt {
	switch {
	case p.isPunc("{"):
		return p.parseBlock()
	case p.isPunc(";"):
		start := p.tok.Pos
		p.next()
		return &ast.EmptyStmt{Base: ast.Base{Position: start}}
	case p.isName() && p.peekIsColon():
		return p.parseLabeled()
	case p.tok.Type == token.Keyword:
		return p.parseKeywordStmt()
	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) peekIsColon() bool {
	t := p.peek()
	return t.Type == token.Punc && t.Lit() == ":"
}

func (p *Parser) parseBlock() *ast.BlockStmt {
	start := p.tok.Pos
	p.expectPunc("{")
	var body []ast.Stmt
	for !p.isPunc("}") && !p.tok.IsEOF() {
		body = append(body, p.parseStmt())
	}
	p.expectPunc("}")
	return &ast.BlockStmt{Base: ast.Base{Position: start}, Body: body}
}

func (p *Parser) parseExprStmt() ast.Stmt {
	start := p.tok.Pos
	x := p.parseExpression(true, false)
	p.semicolon()
	return &ast.ExprStmt{Base: ast.Base{Position: start}, X: x}
}

func (p *Parser) parseLabeled() ast.Stmt {
	start := p.tok.Pos
	label := p.expectName()
	p.expectPunc(":")

	p.labels = append(p.labels, label)
	stmt := p.parseStmt()
	p.labels = p.labels[:len(p.labels)-1]

	if p.exigent {
		if !token.StatementsWithLabels[tagOf(stmt)] {
			p.errorfAt(p.tok, "Label '"+label+"' is not followed by a loop or switch")
		}
	}
	return &ast.LabeledStmt{Base: ast.Base{Position: start}, Label: label, Stmt: stmt}
}

// tagOf reports the tag name of a statement, for the exigent-mode
// label-target check (STATEMENTS_WITH_LABELS is keyed by tag name).
func tagOf(s ast.Stmt) string {
	switch s.(type) {
	case *ast.ForStmt, *ast.ForInStmt:
		return "for"
	case *ast.DoWhileStmt:
		return "do"
	case *ast.WhileStmt:
		return "while"
	case *ast.SwitchStmt:
		return "switch"
	}
	return ""
}

func (p *Parser) parseKeywordStmt() ast.Stmt {
	switch p.tok.Lit() {
	case "var":
		return p.parseVar(false)
	case "const":
		return p.parseVar(true)
	case "if":
		return p.parseIf()
	case "while":
		return p.parseWhile()
	case "with":
		return p.parseWith()
	case "do":
		return p.parseDoWhile()
	case "for":
		return p.parseFor()
	case "switch":
		return p.parseSwitch()
	case "break":
		return p.parseBreakContinue(true)
	case "continue":
		return p.parseBreakContinue(false)
	case "return":
		return p.parseReturn()
	case "throw":
		return p.parseThrow()
	case "try":
		return p.parseTry()
	case "debugger":
		return p.parseDebugger()
	case "function":
		return p.parseFunctionDecl()
	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parseVar(isConst bool) *ast.VarStmt {
	start := p.tok.Pos
	p.next() // "var" or "const"

	var decls []ast.VarDecl
	for {
		name := p.expectName()
		var init ast.Expr
		if p.isOp("=") {
			p.next()
			init = p.parseAssign(false)
		}
		decls = append(decls, ast.VarDecl{Name: name, Init: init})
		if !p.isPunc(",") {
			break
		}
		p.next()
	}
	p.semicolon()
	return &ast.VarStmt{Base: ast.Base{Position: start}, Decls: decls, Const: isConst}
}

func (p *Parser) parseIf() *ast.IfStmt {
	start := p.tok.Pos
	p.next() // "if"
	p.expectPunc("(")
	cond := p.parseExpression(true, false)
	p.expectPunc(")")
	then := p.parseStmt()
	var elseStmt ast.Stmt
	if p.isKeyword("else") {
		p.next()
		elseStmt = p.parseStmt()
	}
	return &ast.IfStmt{Base: ast.Base{Position: start}, Cond: cond, Then: then, Else: elseStmt}
}

func (p *Parser) parseWhile() *ast.WhileStmt {
	start := p.tok.Pos
	p.next() // "while"
	p.expectPunc("(")
	cond := p.parseExpression(true, false)
	p.expectPunc(")")

	p.inLoop++
	body := p.parseStmt()
	p.inLoop--
	return &ast.WhileStmt{Base: ast.Base{Position: start}, Cond: cond, Body: body}
}

func (p *Parser) parseWith() *ast.WithStmt {
	start := p.tok.Pos
	p.next() // "with"
	p.expectPunc("(")
	x := p.parseExpression(true, false)
	p.expectPunc(")")
	body := p.parseStmt()
	return &ast.WithStmt{Base: ast.Base{Position: start}, X: x, Body: body}
}

func (p *Parser) parseDoWhile() *ast.DoWhileStmt {
	start := p.tok.Pos
	p.next() // "do"

	p.inLoop++
	body := p.parseStmt()
	p.inLoop--

	p.expectKeyword("while")
	p.expectPunc("(")
	cond := p.parseExpression(true, false)
	p.expectPunc(")")
	p.semicolon()
	return &ast.DoWhileStmt{Base: ast.Base{Position: start}, Body: body, Cond: cond}
}

// parseFor parses the for-statement head: after '(', if not ';', parse
// either a var declaration or an expression in no_in mode; an 'in' that
// follows switches to for-in, normalizing a var head to its first
// declared name.
func (p *Parser) parseFor() ast.Stmt {
	start := p.tok.Pos
	p.next() // "for"
	p.expectPunc("(")

	if p.isPunc(";") {
		return p.finishFor(start, nil)
	}

	if p.isKeyword("var") {
		varStart := p.tok.Pos
		p.next()
		name := p.expectName()
		var init ast.Expr
		if p.isOp("=") {
			p.next()
			init = p.parseAssign(true)
		}
		if p.isOp("in") {
			p.next()
			obj := p.parseExpression(true, false)
			p.expectPunc(")")
			return p.finishForIn(start, name, true, obj)
		}
		decls := []ast.VarDecl{{Name: name, Init: init}}
		for p.isPunc(",") {
			p.next()
			n := p.expectName()
			var i ast.Expr
			if p.isOp("=") {
				p.next()
				i = p.parseAssign(true)
			}
			decls = append(decls, ast.VarDecl{Name: n, Init: i})
		}
		varStmt := &ast.VarStmt{Base: ast.Base{Position: varStart}, Decls: decls}
		p.expectPunc(";")
		return p.finishFor(start, varStmt)
	}

	x := p.parseExpression(true, true)
	if p.isOp("in") {
		p.next()
		obj := p.parseExpression(true, false)
		p.expectPunc(")")
		lhsName := ""
		if id, ok := x.(*ast.Ident); ok {
			lhsName = id.Name
		} else if !ast.IsAssignable(x, p.exigent) {
			p.errorfAt(p.tok, "Invalid left-hand side in for-in loop")
		}
		return p.finishForIn(start, lhsName, false, obj)
	}
	exprStart := x.Pos()
	initStmt := &ast.ExprStmt{Base: ast.Base{Position: exprStart}, X: x}
	p.expectPunc(";")
	return p.finishFor(start, initStmt)
}

func (p *Parser) finishFor(start int, init ast.Stmt) *ast.ForStmt {
	var test, step ast.Expr
	if !p.isPunc(";") {
		test = p.parseExpression(true, false)
	}
	p.expectPunc(";")
	if !p.isPunc(")") {
		step = p.parseExpression(true, false)
	}
	p.expectPunc(")")

	p.inLoop++
	body := p.parseStmt()
	p.inLoop--
	return &ast.ForStmt{Base: ast.Base{Position: start}, Init: init, Test: test, Step: step, Body: body}
}

func (p *Parser) finishForIn(start int, lhs string, isVar bool, obj ast.Expr) *ast.ForInStmt {
	p.inLoop++
	body := p.parseStmt()
	p.inLoop--
	return &ast.ForInStmt{Base: ast.Base{Position: start}, Lhs: lhs, IsVar: isVar, Obj: obj, Body: body}
}

// parseSwitch parses the switch body: case/default labels start a new
// bucket, statements accumulate into the most recent bucket, and a
// leading statement before any case is a parse error.
func (p *Parser) parseSwitch() *ast.SwitchStmt {
	start := p.tok.Pos
	p.next() // "switch"
	p.expectPunc("(")
	disc := p.parseExpression(true, false)
	p.expectPunc(")")
	p.expectPunc("{")

	p.inLoop++
	var cases []ast.SwitchCase
	for !p.isPunc("}") && !p.tok.IsEOF() {
		switch {
		case p.isKeyword("case"):
			p.next()
			test := p.parseExpression(true, false)
			p.expectPunc(":")
			cases = append(cases, ast.SwitchCase{Test: test})
		case p.isKeyword("default"):
			p.next()
			p.expectPunc(":")
			cases = append(cases, ast.SwitchCase{Test: nil})
		default:
			if len(cases) == 0 {
				p.errorf("Expected 'case' or 'default'")
			}
			last := &cases[len(cases)-1]
			last.Body = append(last.Body, p.parseStmt())
		}
	}
	p.inLoop--
	p.expectPunc("}")
	return &ast.SwitchStmt{Base: ast.Base{Position: start}, Discriminant: disc, Cases: cases}
}

func (p *Parser) parseBreakContinue(isBreak bool) ast.Stmt {
	start := p.tok.Pos
	p.next() // "break" or "continue"

	label := ""
	if p.isName() && !p.tok.NLB {
		label = p.tok.Lit()
		p.next()
	}
	p.semicolon()

	if label != "" {
		if !p.hasLabel(label) {
			p.errorfAt(p.tok, "Label '"+label+"' not found")
		}
	} else if p.inLoop == 0 {
		kw := "continue"
		if isBreak {
			kw = "break"
		}
		p.errorfAt(p.tok, "'"+kw+"' outside of loop or switch")
	}

	if isBreak {
		return &ast.BreakStmt{Base: ast.Base{Position: start}, Label: label}
	}
	return &ast.ContinueStmt{Base: ast.Base{Position: start}, Label: label}
}

func (p *Parser) parseReturn() *ast.ReturnStmt {
	start := p.tok.Pos
	p.next() // "return"

	if p.inFunction == 0 {
		p.errorfAt(p.tok, "'return' outside of function")
	}

	var x ast.Expr
	if !p.isPunc(";") && !p.tok.NLB && !p.isPunc("}") && !p.tok.IsEOF() {
		x = p.parseExpression(true, false)
	}
	p.semicolon()
	return &ast.ReturnStmt{Base: ast.Base{Position: start}, X: x}
}

func (p *Parser) parseThrow() *ast.ThrowStmt {
	start := p.tok.Pos
	p.next() // "throw"
	x := p.parseExpression(true, false)
	p.semicolon()
	return &ast.ThrowStmt{Base: ast.Base{Position: start}, X: x}
}

// parseTry parses a try statement: try block, then optional catch(name)
// block, optional finally block; at least one of catch/finally is
// required.
func (p *Parser) parseTry() *ast.TryStmt {
	start := p.tok.Pos
	p.next() // "try"
	body := p.parseBlock()

	var catchName string
	var catchBody, finallyBody *ast.BlockStmt
	if p.isKeyword("catch") {
		p.next()
		p.expectPunc("(")
		catchName = p.expectName()
		p.expectPunc(")")
		catchBody = p.parseBlock()
	}
	if p.isKeyword("finally") {
		p.next()
		finallyBody = p.parseBlock()
	}
	if catchBody == nil && finallyBody == nil {
		p.errorfAt(p.tok, "Missing catch or finally after try")
	}
	return &ast.TryStmt{
		Base:      ast.Base{Position: start},
		Body:      body,
		CatchName: catchName,
		CatchBody: catchBody,
		Finally:   finallyBody,
	}
}

func (p *Parser) parseDebugger() *ast.DebuggerStmt {
	start := p.tok.Pos
	p.next() // "debugger"
	p.semicolon()
	return &ast.DebuggerStmt{Base: ast.Base{Position: start}}
}

// parseFunctionDecl parses the declaration form of a function, distinct
// from the expression form in that a name is mandatory.
func (p *Parser) parseFunctionDecl() *ast.FunctionDecl {
	start := p.tok.Pos
	p.next() // "function"
	name := p.expectName()
	params := p.parseParams()
	body := p.parseFunctionBody()
	return &ast.FunctionDecl{Base: ast.Base{Position: start}, Name: name, Params: params, Body: body}
}

func (p *Parser) parseParams() []string {
	p.expectPunc("(")
	var params []string
	for !p.isPunc(")") {
		params = append(params, p.expectName())
		if p.isPunc(",") {
			p.next()
		}
	}
	p.expectPunc(")")
	return params
}

// parseFunctionBody applies function-body scoping: in_function is
// incremented and in_loop is saved/reset to 0 while the body is parsed,
// restoring both on exit.
func (p *Parser) parseFunctionBody() *ast.BlockStmt {
	savedLoop := p.inLoop
	savedLabels := p.labels
	p.inLoop = 0
	p.labels = nil
	p.inFunction++

	body := p.parseBlock()

	p.inFunction--
	p.inLoop = savedLoop
	p.labels = savedLabels
	return body
}
