// Package ecma3 exposes the module's two public operations: Tokenize, a
// lazy token stream, and Parse, a full recursive-descent parse into
// package ast's tagged tree.
package ecma3

import (
	"ecma3/ast"
	"ecma3/lexer"
	"ecma3/parser"
)

// Token is the scanner's token record, re-exported so callers of
// Tokenize don't need to import package lexer directly.
type Token = lexer.Token

// ParseError is the one error kind every failure in this module surfaces
// as.
type ParseError = lexer.ParseError

// WarnFunc is the injectable sink invoked for a `@cc_on` conditional
// comment; pass nil to ignore them silently.
type WarnFunc = lexer.WarnFunc

// Tokenizer wraps a Scanner with a simple pull API: repeated NextToken
// calls return tokens, terminated by an eof token.
type Tokenizer struct {
	sc *lexer.Scanner
}

// Tokenize returns a Tokenizer over text.
func Tokenize(text string, warn WarnFunc) *Tokenizer {
	return &Tokenizer{sc: lexer.New(text, warn)}
}

// NextToken returns the next token, or the eof token once text is
// exhausted.
func (t *Tokenizer) NextToken() (Token, error) {
	return t.sc.NextToken()
}

// Parse runs the full grammar over text and returns the toplevel
// program, or the first ParseError encountered. exigent selects strict
// parsing; embedTokens additionally records on each statement node
// (function declarations included, function expressions not) its
// originating token span.
func Parse(text string, exigent, embedTokens bool) (*ast.Program, error) {
	return parser.Parse(text, exigent, embedTokens)
}

// ParseWithWarn is Parse with an explicit @cc_on warning sink.
func ParseWithWarn(text string, exigent, embedTokens bool, warn WarnFunc) (*ast.Program, error) {
	return parser.ParseWithWarn(text, exigent, embedTokens, warn)
}
