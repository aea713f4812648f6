package lexer

import (
	"strings"

	"ecma3/internal/runeclass"
	"ecma3/token"
)

// scanRegexp consumes a '/'-delimited regular-expression literal body,
// respecting bracketed character classes (where an unescaped '/' does not
// terminate the literal) and backslash-escaping, then consumes any
// trailing identifier-part flag characters. The opening '/' has not yet
// been consumed when this is called.
func (s *Scanner) scanRegexp() (Token, error) {
	openLine, openCol, openPos := s.r.line, s.r.col, s.r.offset
	s.r.next() // consume opening '/'

	var pattern strings.Builder
	inClass := false
	for {
		switch s.r.ch {
		case eof, '\n':
			return Token{}, s.errAt(openLine, openCol, openPos, "Unterminated regular expression literal")
		case '\\':
			pattern.WriteRune(s.r.ch)
			s.r.next()
			if s.r.ch == eof || s.r.ch == '\n' {
				return Token{}, s.errAt(openLine, openCol, openPos, "Unterminated regular expression literal")
			}
			pattern.WriteRune(s.r.ch)
			s.r.next()
		case '[':
			inClass = true
			pattern.WriteRune(s.r.ch)
			s.r.next()
		case ']':
			inClass = false
			pattern.WriteRune(s.r.ch)
			s.r.next()
		case '/':
			if inClass {
				pattern.WriteRune(s.r.ch)
				s.r.next()
				continue
			}
			s.r.next()
			flags := s.scanRegexpFlags()
			return Token{Type: token.Regexp, Value: RegexpValue{Pattern: pattern.String(), Flags: flags}}, nil
		default:
			pattern.WriteRune(s.r.ch)
			s.r.next()
		}
	}
}

func (s *Scanner) scanRegexpFlags() string {
	var b strings.Builder
	for isRegexpFlagChar(s.r.ch) {
		b.WriteRune(s.r.ch)
		s.r.next()
	}
	return b.String()
}

func isRegexpFlagChar(ch rune) bool {
	return runeclass.IsIdentifierPart(ch)
}
