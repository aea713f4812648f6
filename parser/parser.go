// Package parser implements a predictive recursive-descent parser: one
// token of lookahead, a state record carrying the current/previous
// token plus enclosing-function, enclosing-loop, and active-label
// bookkeeping, building the tagged tree of statements and expressions
// defined in package ast.
package parser

import (
	"ecma3/ast"
	"ecma3/lexer"
	"ecma3/token"
)

// bailout is the panic sentinel a parse error unwinds through, caught by
// recover() at the single entry point (Parse). There is no error
// recovery and no partial AST: the first error detected ends the parse.
type bailout struct{ err error }

// Parser is the single mutable parse-state record.
type Parser struct {
	sc *lexer.Scanner

	tok        lexer.Token
	prevTok    lexer.Token
	preTokScan lexer.State

	exigent     bool
	embedTokens bool

	inFunction int
	inLoop     int
	labels     []string
}

// New creates a Parser over src. warn is passed through to the
// underlying scanner for @cc_on reporting; it may be nil.
func New(src string, exigent, embedTokens bool, warn lexer.WarnFunc) *Parser {
	p := &Parser{
		sc:          lexer.New(src, warn),
		exigent:     exigent,
		embedTokens: embedTokens,
	}
	p.next()
	return p
}

// Parse runs the full grammar over src and returns the toplevel
// program, or the first ParseError encountered.
func Parse(src string, exigent, embedTokens bool) (prog *ast.Program, err error) {
	return ParseWithWarn(src, exigent, embedTokens, nil)
}

// ParseWithWarn is Parse with an explicit @cc_on warning sink.
func ParseWithWarn(src string, exigent, embedTokens bool, warn lexer.WarnFunc) (prog *ast.Program, err error) {
	defer func() {
		if e := recover(); e != nil {
			b, ok := e.(bailout)
			if !ok {
				panic(e)
			}
			err = b.err
		}
	}()
	p := New(src, exigent, embedTokens, warn)
	prog = p.parseProgram()
	return
}

func (p *Parser) parseProgram() *ast.Program {
	start := p.tok.Pos
	var body []ast.Stmt
	for !p.tok.IsEOF() {
		body = append(body, p.parseStmt())
	}
	return &ast.Program{Base: ast.Base{Position: start}, Body: body}
}

// next advances to the following token, snapshotting the scanner
// position immediately beforehand so reinterpretRegex can rewind to it.
func (p *Parser) next() {
	p.preTokScan = p.sc.Snapshot()
	p.prevTok = p.tok
	tok, err := p.sc.NextToken()
	if err != nil {
		p.fail(err)
	}
	p.tok = tok
}

// peek reports the token that follows the current one without
// consuming it, restoring scanner state afterward.
func (p *Parser) peek() lexer.Token {
	snap := p.sc.Snapshot()
	tok, err := p.sc.NextToken()
	p.sc.Restore(snap)
	if err != nil {
		p.fail(err)
	}
	return tok
}

// reinterpretRegex rewinds to the position of the current '/'-leading
// token, which the scanner misclassified as a division operator, and
// re-scans it as a regular-expression literal. This is the back-door
// needed for statement- or expression-leading '/'.
func (p *Parser) reinterpretRegex() {
	p.sc.Restore(p.preTokScan)
	tok, err := p.sc.ReinterpretAsRegex()
	if err != nil {
		p.fail(err)
	}
	p.tok = tok
}

func (p *Parser) fail(err error) {
	panic(bailout{err: err})
}

// errorf raises a ParseError positioned at the current token.
func (p *Parser) errorf(msg string) {
	p.fail(&lexer.ParseError{Msg: msg, Line: p.tok.Line, Col: p.tok.Col, Pos: p.tok.Pos})
}

func (p *Parser) errorfAt(tok lexer.Token, msg string) {
	p.fail(&lexer.ParseError{Msg: msg, Line: tok.Line, Col: tok.Col, Pos: tok.Pos})
}

func (p *Parser) isPunc(lit string) bool {
	return p.tok.Type == token.Punc && p.tok.Lit() == lit
}

func (p *Parser) isOp(lit string) bool {
	return p.tok.Type == token.Operator && p.tok.Lit() == lit
}

func (p *Parser) isKeyword(lit string) bool {
	return p.tok.Type == token.Keyword && p.tok.Lit() == lit
}

func (p *Parser) isName() bool {
	return p.tok.Type == token.Name
}

// expectPunc consumes lit, a Punc token, or raises "missing expected
// punctuation".
func (p *Parser) expectPunc(lit string) {
	if !p.isPunc(lit) {
		p.errorf("Unexpected token, expected punctuation '" + lit + "'")
		return
	}
	p.next()
}

// expectKeyword consumes lit, a Keyword token, or raises an error.
func (p *Parser) expectKeyword(lit string) {
	if !p.isKeyword(lit) {
		p.errorf("Unexpected token, expected keyword '" + lit + "'")
		return
	}
	p.next()
}

// expectName consumes and returns a Name token's literal, or raises an
// error.
func (p *Parser) expectName() string {
	if !p.isName() {
		p.errorf("Unexpected token " + p.tok.Type.String() + ", expected an identifier")
		return ""
	}
	name := p.tok.Lit()
	p.next()
	return name
}

// semicolon consumes a statement terminator, applying automatic
// semicolon insertion in lenient mode.
func (p *Parser) semicolon() {
	if p.isPunc(";") {
		p.next()
		return
	}
	if p.exigent {
		p.errorf("Unexpected token, expected ';'")
		return
	}
	if p.tok.NLB || p.tok.IsEOF() || p.isPunc("}") {
		return
	}
	p.errorf("Unexpected token, expected ';'")
}

func (p *Parser) hasLabel(name string) bool {
	for _, l := range p.labels {
		if l == name {
			return true
		}
	}
	return false
}
