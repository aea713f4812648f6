// Package lexer implements a demand-driven ES3 tokenizer: a scanner
// that lazily emits one token per call, carrying source positions,
// newline-before trivia, and the regex_allowed side channel the parser
// leans on to disambiguate `/` from a regex literal.
package lexer

import (
	"strings"

	"ecma3/internal/runeclass"
	"ecma3/token"
)

// WarnFunc is an injectable warning sink: it is invoked for a `@cc_on`
// conditional comment and otherwise never used. The default is a
// no-op.
type WarnFunc func(msg string, line, col, pos int)

// Scanner is the single mutable scan-state record.
type Scanner struct {
	r *reader

	tokpos, tokline, tokcol int
	newlineBefore           bool
	regexAllowed            bool
	warn                    WarnFunc

	stats Stats
}

// New creates a Scanner over src. warn may be nil, in which case `@cc_on`
// comments are silently ignored.
func New(src string, warn WarnFunc) *Scanner {
	if warn == nil {
		warn = func(string, int, int, int) {}
	}
	s := &Scanner{
		r:            newReader(src),
		regexAllowed: true, // an expression may legally start at position 0
		warn:         warn,
	}
	s.stats.Bytes = len(s.r.src)
	return s
}

func (s *Scanner) err(msg string) error {
	return &ParseError{Msg: msg, Line: s.r.line, Col: s.r.col, Pos: s.r.offset}
}

func (s *Scanner) errAt(line, col, pos int, msg string) error {
	return &ParseError{Msg: msg, Line: line, Col: col, Pos: pos}
}

// NextToken returns the next token, or the eof sentinel once the input is
// exhausted. It never returns both a non-nil error and a usable token:
// on error the returned Token is the zero value.
func (s *Scanner) NextToken() (Token, error) {
	var comments []Token
	for {
		s.skipWhitespace()

		if s.r.ch == '/' && (s.r.peek() == '/' || s.r.peek() == '*') {
			c, err := s.scanComment()
			if err != nil {
				return Token{}, err
			}
			comments = append(comments, c)
			continue
		}
		break
	}

	s.tokpos, s.tokline, s.tokcol = s.r.offset, s.r.line, s.r.col
	tok, err := s.scanOne()
	if err != nil {
		return Token{}, err
	}
	tok.Line, tok.Col, tok.Pos = s.tokline, s.tokcol, s.tokpos
	tok.NLB = s.newlineBefore
	tok.CommentsBefore = comments

	s.newlineBefore = false
	s.regexAllowed = regexAllowedAfter(tok)
	s.stats.Tokens++
	return tok, nil
}

// skipWhitespace advances over runs of whitespace and line terminators,
// setting newlineBefore when at least one line terminator is crossed
// (the nlb flag is sticky until the next token is emitted).
func (s *Scanner) skipWhitespace() {
	for {
		switch {
		case s.r.ch == '\n':
			s.newlineBefore = true
			s.r.next()
		case runeclass.IsWhitespace(s.r.ch):
			s.r.next()
		default:
			return
		}
	}
}

// scanOne dispatches on the current character and returns a token with
// Type/Value populated; position/nlb/comments are filled in by the
// caller.
func (s *Scanner) scanOne() (Token, error) {
	ch := s.r.ch

	switch {
	case ch == eof:
		return Token{Type: token.EOF}, nil
	case runeclass.IsIdentifierStart(ch):
		return s.scanIdentifier(), nil
	case runeclass.IsDigit(ch):
		return s.scanNumber()
	case ch == '.' && runeclass.IsDigit(s.r.peek()):
		return s.scanNumber()
	case ch == '"' || ch == '\'':
		return s.scanString()
	case ch == '/':
		if s.regexAllowed {
			return s.scanRegexp()
		}
		return s.scanOperator(), nil
	}

	if strings.ContainsRune("[]{}(),;:.", ch) {
		s.r.next()
		return Token{Type: token.Punc, Value: string(ch)}, nil
	}
	if strings.ContainsRune("+-*&%=<>!?|~^", ch) {
		return s.scanOperator(), nil
	}

	lit := string(ch)
	s.r.next()
	return Token{}, s.errAt(s.tokline, s.tokcol, s.tokpos, "Unexpected character '"+lit+"'")
}

// scanIdentifier consumes an identifier-shaped lexeme and classifies it
// via token.Lookup into Name, Keyword, Atom, or Operator.
func (s *Scanner) scanIdentifier() Token {
	var b strings.Builder
	for runeclass.IsIdentifierPart(s.r.ch) {
		b.WriteRune(s.r.ch)
		s.r.next()
	}
	lit := b.String()
	return Token{Type: token.Lookup(lit), Value: lit}
}

// scanOperator greedily matches the longest operator lexeme starting at
// the current character.
func (s *Scanner) scanOperator() Token {
	ch := s.r.ch
	s.r.next()

	lit := string(ch)
	grow := func(next rune) bool {
		if s.r.ch == next {
			lit += string(next)
			s.r.next()
			return true
		}
		return false
	}

	switch ch {
	case '=':
		if !grow('=') {
			break
		}
		grow('=') // ==, ===
	case '!':
		if !grow('=') {
			break
		}
		grow('=') // !=, !==
	case '<':
		if grow('<') {
			grow('=') // <<, <<=
		} else {
			grow('=') // <, <=
		}
	case '>':
		if grow('>') {
			if grow('>') {
				grow('=') // >>>, >>>=
			} else {
				grow('=') // >>, >>=
			}
		} else {
			grow('=') // >, >=
		}
	case '+':
		if !grow('+') {
			grow('=') // +, ++, +=
		}
	case '-':
		if !grow('-') {
			grow('=') // -, --, -=
		}
	case '*', '%', '^':
		grow('=')
	case '&':
		if !grow('&') {
			grow('=') // &, &&, &=
		}
	case '|':
		if !grow('|') {
			grow('=') // |, ||, |=
		}
	case '/':
		grow('=') // / or /=
	case '?', '~':
		// no compound forms in ES3
	}

	return Token{Type: token.Operator, Value: lit}
}

// regexAllowedAfter applies the after-emit rule: true iff the
// just-emitted token legitimately precedes an expression.
func regexAllowedAfter(t Token) bool {
	switch t.Type {
	case token.Operator:
		lit, _ := t.Value.(string)
		if token.IsIncDec(lit) {
			return false
		}
		return true
	case token.Keyword:
		lit, _ := t.Value.(string)
		return token.IsExprLeadKeyword(lit)
	case token.Punc:
		lit, _ := t.Value.(string)
		return strings.Contains("[{}(,.;:", lit)
	}
	return false
}

// ReinterpretAsRegex is the back-door a caller uses after it has
// Restore()d the scanner to the state captured immediately before a
// '/'-leading token it misclassified as division: this forces that
// same position to be scanned as a regular-expression literal,
// regardless of regexAllowed. Whitespace and comments ahead of the '/'
// are skipped first, as NextToken does.
func (s *Scanner) ReinterpretAsRegex() (Token, error) {
	var comments []Token
	for {
		s.skipWhitespace()
		if s.r.ch == '/' && (s.r.peek() == '/' || s.r.peek() == '*') {
			c, err := s.scanComment()
			if err != nil {
				return Token{}, err
			}
			comments = append(comments, c)
			continue
		}
		break
	}

	s.tokpos, s.tokline, s.tokcol = s.r.offset, s.r.line, s.r.col
	tok, err := s.scanRegexp()
	if err != nil {
		return Token{}, err
	}
	tok.Line, tok.Col, tok.Pos = s.tokline, s.tokcol, s.tokpos
	tok.NLB = s.newlineBefore
	tok.CommentsBefore = comments
	s.newlineBefore = false
	s.regexAllowed = regexAllowedAfter(tok)
	s.stats.Tokens++
	return tok, nil
}

// Stats returns running counts of what this scanner has produced so far.
func (s *Scanner) Stats() Stats { return s.stats }
