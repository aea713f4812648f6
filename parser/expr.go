package parser

import (
	"github.com/shopspring/decimal"

	"ecma3/ast"
	"ecma3/lexer"
	"ecma3/token"
)

// parseExpression parses an assignment expression, optionally folded
// left-associatively with ',' into a seq node.
func (p *Parser) parseExpression(commas, noIn bool) ast.Expr {
	x := p.parseAssign(noIn)
	if !commas {
		return x
	}
	for p.isPunc(",") {
		start := x.Pos()
		p.next()
		rest := p.parseAssign(noIn)
		x = &ast.SeqExpr{Base: ast.Base{Position: start}, First: x, Rest: rest}
	}
	return x
}

// parseAssign parses a right-associative assignment: the LHS must be
// assignable, compound operators are represented by their stripped
// form, and bare '=' by the boolean sentinel true.
func (p *Parser) parseAssign(noIn bool) ast.Expr {
	left := p.parseConditional(noIn)
	if p.tok.Type != token.Operator {
		return left
	}
	val, ok := token.IsAssignmentOp(p.tok.Lit())
	if !ok {
		return left
	}
	if !ast.IsAssignable(left, p.exigent) {
		p.errorfAt(p.tok, "Invalid left-hand side in assignment")
	}
	start := left.Pos()
	p.next()
	right := p.parseAssign(noIn)
	return &ast.AssignExpr{Base: ast.Base{Position: start}, Op: val, Lhs: left, Rhs: right}
}

// parseConditional parses the right-associative '?:' operator.
func (p *Parser) parseConditional(noIn bool) ast.Expr {
	test := p.parseBinary(1, noIn)
	if !p.isOp("?") {
		return test
	}
	start := test.Pos()
	p.next()
	then := p.parseAssign(false)
	p.expectPunc(":")
	elseExpr := p.parseAssign(noIn)
	return &ast.ConditionalExpr{Base: ast.Base{Position: start}, Test: test, Then: then, Else: elseExpr}
}

// parseBinary is a precedence-climbing binary operator parser:
// left-associative throughout, with 'in' demoted out of the table when
// no_in is set (the for(...) head).
func (p *Parser) parseBinary(minPrec int, noIn bool) ast.Expr {
	left := p.parseUnary()
	for {
		if p.tok.Type != token.Operator {
			return left
		}
		op := p.tok.Lit()
		if op == "in" && noIn {
			return left
		}
		prec := token.Precedence(op)
		if prec == 0 || prec < minPrec {
			return left
		}
		start := left.Pos()
		p.next()
		right := p.parseBinary(prec+1, noIn)
		left = &ast.BinaryExpr{Base: ast.Base{Position: start}, Op: op, Left: left, Right: right}
	}
}

// parseUnary parses the unary-prefix operators; '++'/'--' additionally
// require an assignable operand.
func (p *Parser) parseUnary() ast.Expr {
	if p.tok.Type == token.Operator && token.IsUnaryPrefixOp(p.tok.Lit()) {
		op := p.tok.Lit()
		start := p.tok.Pos
		p.next()
		operand := p.parseUnary()
		if token.IsIncDec(op) && !ast.IsAssignable(operand, p.exigent) {
			p.errorfAt(p.tok, "Invalid use of '"+op+"'")
		}
		return &ast.UnaryExpr{Base: ast.Base{Position: start}, Op: op, Operand: operand, Postfix: false}
	}
	return p.parsePostfix()
}

// parsePostfix applies a trailing '++'/'--' after the full subscript
// chain: the operand must be assignable and the operator must not be
// separated from it by a newline (ASI).
func (p *Parser) parsePostfix() ast.Expr {
	x := p.parseCallOrMember(true)
	if (p.isOp("++") || p.isOp("--")) && !p.tok.NLB {
		op := p.tok.Lit()
		if !ast.IsAssignable(x, p.exigent) {
			p.errorfAt(p.tok, "Invalid use of '"+op+"'")
		}
		start := x.Pos()
		p.next()
		x = &ast.UnaryExpr{Base: ast.Base{Position: start}, Op: op, Operand: x, Postfix: true}
	}
	return x
}

func (p *Parser) parseCallOrMember(allowCalls bool) ast.Expr {
	return p.parseSubscripts(p.parsePrimary(), allowCalls)
}

// parseSubscripts applies '.', '[...]', and, when allowCalls, '(...)'
// left-to-right until none remain.
func (p *Parser) parseSubscripts(x ast.Expr, allowCalls bool) ast.Expr {
	for {
		start := x.Pos()
		switch {
		case p.isPunc("."):
			p.next()
			name := p.propertyName()
			x = &ast.DotExpr{Base: ast.Base{Position: start}, Object: x, Name: name}
		case p.isPunc("["):
			p.next()
			idx := p.parseExpression(true, false)
			p.expectPunc("]")
			x = &ast.SubExpr{Base: ast.Base{Position: start}, Object: x, Index: idx}
		case allowCalls && p.isPunc("("):
			args := p.parseArgs()
			x = &ast.CallExpr{Base: ast.Base{Position: start}, Callee: x, Args: args}
		default:
			return x
		}
	}
}

// propertyName accepts any identifier-shaped lexeme (Name, Keyword, or
// Atom token) after a '.', matching ordinary JS property-access syntax.
func (p *Parser) propertyName() string {
	switch p.tok.Type {
	case token.Name, token.Keyword, token.Atom:
		lit := p.tok.Lit()
		p.next()
		return lit
	}
	p.errorf("Unexpected token, expected a property name")
	return ""
}

func (p *Parser) parseArgs() []ast.Expr {
	p.expectPunc("(")
	var args []ast.Expr
	for !p.isPunc(")") {
		args = append(args, p.parseAssign(false))
		if p.isPunc(",") {
			p.next()
		} else {
			break
		}
	}
	p.expectPunc(")")
	return args
}

// parseNew parses 'new', optionally chained without parens; an
// argument list is consumed only if '(' follows.
func (p *Parser) parseNew() ast.Expr {
	start := p.tok.Pos
	p.next() // "new"
	callee := p.parseSubscripts(p.parsePrimary(), false)
	var args []ast.Expr
	if p.isPunc("(") {
		args = p.parseArgs()
	}
	n := &ast.NewExpr{Base: ast.Base{Position: start}, Callee: callee, Args: args}
	return p.parseSubscripts(n, true)
}

func (p *Parser) parseFunctionLit() ast.Expr {
	start := p.tok.Pos
	p.next() // "function"
	name := ""
	if p.isName() {
		name = p.tok.Lit()
		p.next()
	}
	params := p.parseParams()
	body := p.parseFunctionBody()
	return &ast.FunctionLit{Base: ast.Base{Position: start}, Name: name, Params: params, Body: body}
}

// parsePrimary parses an atomic expression. A '/'-leading operator
// token reaching this point is always a regex: division can never
// start a primary expression, so the scanner's division guess was
// wrong and is reinterpreted on the spot.
func (p *Parser) parsePrimary() ast.Expr {
	start := p.tok.Pos
	switch {
	case p.tok.Type == token.Operator && (p.tok.Lit() == "/" || p.tok.Lit() == "/="):
		p.reinterpretRegex()
		return p.parsePrimary()
	case p.tok.Type == token.Num:
		v, _ := p.tok.Value.(decimal.Decimal)
		p.next()
		return &ast.NumberLit{Base: ast.Base{Position: start}, Value: v}
	case p.tok.Type == token.String:
		s := p.tok.Lit()
		p.next()
		return &ast.StringLit{Base: ast.Base{Position: start}, Value: s}
	case p.tok.Type == token.Regexp:
		rv, _ := p.tok.Value.(lexer.RegexpValue)
		p.next()
		return &ast.RegexpLit{Base: ast.Base{Position: start}, Pattern: rv.Pattern, Flags: rv.Flags}
	case p.tok.Type == token.Atom:
		v := p.tok.Lit()
		p.next()
		return &ast.AtomLit{Base: ast.Base{Position: start}, Value: v}
	case p.tok.Type == token.Name:
		name := p.tok.Lit()
		p.next()
		return &ast.Ident{Base: ast.Base{Position: start}, Name: name}
	case p.isPunc("("):
		p.next()
		x := p.parseExpression(true, false)
		p.expectPunc(")")
		return x
	case p.isPunc("["):
		return p.parseArrayLit()
	case p.isPunc("{"):
		return p.parseObjectLit()
	case p.tok.Type == token.Operator && p.tok.Lit() == "new":
		return p.parseNew()
	case p.isKeyword("function"):
		return p.parseFunctionLit()
	}
	p.errorf("Unexpected token " + p.tok.Type.String())
	return nil
}

// parseArrayLit parses an array literal: trailing comma tolerated in
// lenient mode, holes permitted as 'undefined' atoms.
func (p *Parser) parseArrayLit() ast.Expr {
	start := p.tok.Pos
	p.next() // "["
	var elems []ast.Expr
	for !p.isPunc("]") {
		if p.isPunc(",") {
			elems = append(elems, &ast.AtomLit{Base: ast.Base{Position: p.tok.Pos}, Value: "undefined"})
			p.next()
			continue
		}
		elems = append(elems, p.parseAssign(false))
		if p.isPunc(",") {
			p.next()
			if p.exigent && p.isPunc("]") {
				p.errorf("Unexpected trailing comma in array literal")
			}
			continue
		}
		break
	}
	p.expectPunc("]")
	return &ast.ArrayLit{Base: ast.Base{Position: start}, Elements: elems}
}

// parseObjectLit parses an object literal, including the 'get'/'set'
// accessor shorthand: a Name 'get' or 'set' followed by anything but
// ':' introduces an accessor function.
func (p *Parser) parseObjectLit() ast.Expr {
	start := p.tok.Pos
	p.next() // "{"
	var props []ast.ObjectProperty
	for !p.isPunc("}") {
		props = append(props, p.parseObjectProperty())
		if p.isPunc(",") {
			p.next()
			if p.exigent && p.isPunc("}") {
				p.errorf("Unexpected trailing comma in object literal")
			}
			continue
		}
		break
	}
	p.expectPunc("}")
	return &ast.ObjectLit{Base: ast.Base{Position: start}, Properties: props}
}

func (p *Parser) parseObjectProperty() ast.ObjectProperty {
	if p.isName() && (p.tok.Lit() == "get" || p.tok.Lit() == "set") {
		role := p.tok.Lit()
		next := p.peek()
		if !(next.Type == token.Punc && next.Lit() == ":") {
			p.next() // consume "get"/"set"
			name := p.propertyKey()
			start := p.tok.Pos
			params := p.parseParams()
			body := p.parseFunctionBody()
			fn := &ast.FunctionLit{Base: ast.Base{Position: start}, Params: params, Body: body}
			return ast.ObjectProperty{Key: name, Value: fn, Accessor: role}
		}
	}

	key := p.propertyKey()
	p.expectPunc(":")
	val := p.parseAssign(false)
	return ast.ObjectProperty{Key: key, Value: val}
}

func (p *Parser) propertyKey() string {
	switch p.tok.Type {
	case token.Name, token.Keyword, token.Atom:
		lit := p.tok.Lit()
		p.next()
		return lit
	case token.String:
		lit := p.tok.Lit()
		p.next()
		return lit
	case token.Num:
		d, _ := p.tok.Value.(decimal.Decimal)
		p.next()
		return d.String()
	}
	p.errorf("Unexpected token, expected a property key")
	return ""
}
