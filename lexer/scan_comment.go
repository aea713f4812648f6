package lexer

import (
	"strings"

	"ecma3/token"
)

// scanComment consumes either a "//"-line comment or a "/* */" block
// comment and returns it as a trivia token (never surfaced on the main
// token stream; NextToken folds it into the following token's
// CommentsBefore). A block comment that spans a line terminator sets
// newlineBefore, mirroring what a real line terminator would have done.
// A conditional-compilation comment such as "/*@cc_on ... @*/" or
// "//@cc_on" is reported through the scanner's WarnFunc rather than
// treated as an error.
func (s *Scanner) scanComment() (Token, error) {
	startLine, startCol, startPos := s.r.line, s.r.col, s.r.offset
	s.r.next() // consume first '/'

	var b strings.Builder
	isBlock := s.r.ch == '*'
	s.r.next() // consume second '/' or '*'

	if isBlock {
		for {
			switch s.r.ch {
			case eof:
				return Token{}, s.errAt(startLine, startCol, startPos, "Unterminated comment")
			case '\n':
				s.newlineBefore = true
				b.WriteRune(s.r.ch)
				s.r.next()
			case '*':
				if s.r.peek() == '/' {
					s.r.next()
					s.r.next()
					goto done
				}
				b.WriteRune(s.r.ch)
				s.r.next()
			default:
				b.WriteRune(s.r.ch)
				s.r.next()
			}
		}
	} else {
		for s.r.ch != eof && s.r.ch != '\n' {
			b.WriteRune(s.r.ch)
			s.r.next()
		}
	}
done:

	text := b.String()
	if isCCOn(text) {
		s.warn("conditional-compilation comment ignored", startLine, startCol, startPos)
	}

	typ := token.Comment1
	if isBlock {
		typ = token.Comment2
	}
	return Token{Type: typ, Value: text, Line: startLine, Col: startCol, Pos: startPos}, nil
}

func isCCOn(text string) bool {
	return strings.Contains(strings.ToLower(text), "@cc_on")
}
