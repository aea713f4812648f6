// Package token defines the token type tags the lexer and parser agree
// on and the fixed keyword/operator tables that classify a scanned
// lexeme into one of them.
package token

import "strconv"

// Type is the token type tag: one of the closed set {num, string,
// regexp, name, keyword, atom, operator, punc, comment1, comment2,
// eof}.
type Type int

const (
	Illegal Type = iota
	EOF
	Comment1 // // line comment (trivia)
	Comment2 // /* block */ comment (trivia)
	Num
	String
	Regexp
	Name
	Keyword
	Atom
	Operator
	Punc
)

var typeNames = [...]string{
	Illegal:  "illegal",
	EOF:      "eof",
	Comment1: "comment1",
	Comment2: "comment2",
	Num:      "num",
	String:   "string",
	Regexp:   "regexp",
	Name:     "name",
	Keyword:  "keyword",
	Atom:     "atom",
	Operator: "operator",
	Punc:     "punc",
}

func (t Type) String() string {
	if t >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "type(" + strconv.Itoa(int(t)) + ")"
}

// IsTrivia reports whether a token of this type is scanner trivia: it is
// buffered onto the following token's CommentsBefore rather than ever
// being returned directly from NextToken.
func (t Type) IsTrivia() bool {
	return t == Comment1 || t == Comment2
}

// keywords is the fixed ES3 reserved-word set. Membership here is what
// makes an identifier-shaped lexeme classify as Keyword, Operator, or
// Atom instead of Name.
var keywords = map[string]bool{
	"break": true, "case": true, "catch": true, "const": true,
	"continue": true, "debugger": true, "default": true, "delete": true,
	"do": true, "else": true, "finally": true, "for": true,
	"function": true, "if": true, "in": true, "instanceof": true,
	"new": true, "return": true, "switch": true, "throw": true,
	"try": true, "typeof": true, "var": true, "void": true,
	"while": true, "with": true,
}

// operatorKeywords is the subset of keywords classified as Operator
// tokens so the parser treats them uniformly with punctuation operators.
var operatorKeywords = map[string]bool{
	"in": true, "instanceof": true, "typeof": true,
	"new": true, "void": true, "delete": true,
}

// atoms is the keyword-adjacent literal set classified as Atom tokens.
var atoms = map[string]bool{
	"false": true, "null": true, "true": true, "undefined": true,
}

// Lookup classifies an already-scanned identifier-shaped lexeme, returning
// the type it should carry. Unrecognized identifiers,
// including ES5+ reserved-future words like "class" or "enum", classify
// as Name: reserved future words are not reserved in this grammar.
func Lookup(lit string) Type {
	if atoms[lit] {
		return Atom
	}
	if operatorKeywords[lit] {
		return Operator
	}
	if keywords[lit] {
		return Keyword
	}
	return Name
}

// precedence is the fixed binary-operator precedence table, lowest (1)
// to highest. `in` is listed at the same level as the relational
// operators; the parser demotes it to unusable when no_in is set, it
// does not lower its precedence.
var precedence = map[string]int{
	"||": 1,
	"&&": 2,
	"|":  3,
	"^":  4,
	"&":  5,
	"==": 6, "===": 6, "!=": 6, "!==": 6,
	"<": 7, ">": 7, "<=": 7, ">=": 7, "in": 7, "instanceof": 7,
	">>": 8, "<<": 8, ">>>": 8,
	"+": 9, "-": 9,
	"*": 10, "/": 10, "%": 10,
}

// Precedence returns the binary-operator precedence of op, or 0 if op is
// not a binary operator.
func Precedence(op string) int {
	return precedence[op]
}

// assignmentOps maps a compound assignment operator's full lexeme to the
// stripped operator the `assign` node carries (e.g. "+=" -> "+"). Plain
// "=" is not in this table; the parser represents it with the boolean
// sentinel true instead of a string.
var assignmentOps = map[string]string{
	"+=": "+", "-=": "-", "*=": "*", "/=": "/", "%=": "%",
	"<<=": "<<", ">>=": ">>", ">>>=": ">>>",
	"&=": "&", "|=": "|", "^=": "^",
}

// IsAssignmentOp reports whether op is any assignment operator, "=" or
// compound, and returns the node-level operator value for an `assign`
// node (true for "=", the stripped op string for a compound operator).
func IsAssignmentOp(op string) (value any, ok bool) {
	if op == "=" {
		return true, true
	}
	if stripped, found := assignmentOps[op]; found {
		return stripped, true
	}
	return nil, false
}

// unaryPrefixOps is the set of operators/keywords usable as a unary
// prefix operator.
var unaryPrefixOps = map[string]bool{
	"typeof": true, "void": true, "delete": true,
	"++": true, "--": true, "!": true, "~": true, "-": true, "+": true,
}

// IsUnaryPrefixOp reports whether op may introduce a unary-prefix
// expression.
func IsUnaryPrefixOp(op string) bool {
	return unaryPrefixOps[op]
}

// IsIncDec reports whether op is the postfix/prefix increment or
// decrement operator.
func IsIncDec(op string) bool {
	return op == "++" || op == "--"
}

// exprLeadKeywords is the set of keywords after which a `/` must start a
// regular-expression literal rather than a division operator (the
// regex_allowed after-emit rule).
var exprLeadKeywords = map[string]bool{
	"return": true, "new": true, "delete": true,
	"throw": true, "else": true, "case": true,
}

// IsExprLeadKeyword reports whether kw is a keyword that legitimately
// precedes an expression, per the regex_allowed after-emit rule.
func IsExprLeadKeyword(kw string) bool {
	return exprLeadKeywords[kw]
}

// StatementsWithLabels is the set of statement tags a label may
// legitimately wrap in exigent mode, and the set of loop-like
// constructs `break`'s bare form is valid inside.
var StatementsWithLabels = map[string]bool{
	"for": true, "do": true, "while": true, "switch": true,
}
