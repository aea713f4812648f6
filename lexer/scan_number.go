package lexer

import (
	"math/big"
	"regexp"
	"strings"

	"ecma3/internal/runeclass"
	"ecma3/token"

	"github.com/shopspring/decimal"
)

var (
	octalPattern   = regexp.MustCompile(`^0[0-7]+$`)
	decimalPattern = regexp.MustCompile(`^(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)
)

// scanNumber greedily consumes identifier-continue characters (plus a
// dot, plus an exponent sign right after e/E) after a digit or dot
// start, then validates the whole captured lexeme against the
// hex/octal/decimal shapes. Anything else is "Invalid syntax".
func (s *Scanner) scanNumber() (Token, error) {
	var b strings.Builder

	hasDot := s.r.ch == '.'
	isHex := false
	b.WriteRune(s.r.ch)
	s.r.next()

	if !hasDot && b.String() == "0" && (s.r.ch == 'x' || s.r.ch == 'X') {
		isHex = true
		b.WriteRune(s.r.ch)
		s.r.next()
	}

	for {
		ch := s.r.ch
		switch {
		case runeclass.IsIdentifierPart(ch):
			b.WriteRune(ch)
			s.r.next()
		case ch == '.' && !hasDot && !isHex:
			hasDot = true
			b.WriteRune(ch)
			s.r.next()
		case (ch == '+' || ch == '-') && endsInExponentMarker(b.String()):
			b.WriteRune(ch)
			s.r.next()
		default:
			goto done
		}
	}
done:

	lit := b.String()
	val, err := numberValue(lit, isHex)
	if err != nil {
		return Token{}, s.errAt(s.tokline, s.tokcol, s.tokpos, err.Error())
	}
	return Token{Type: token.Num, Value: val}, nil
}

func endsInExponentMarker(s string) bool {
	return len(s) > 0 && (s[len(s)-1] == 'e' || s[len(s)-1] == 'E')
}

// numberValue validates lit against the three recognized literal shapes
// and returns its exact value. Octal and hex literals lose their radix
// once converted — a source literal like 010 and a literal 8 both
// arrive downstream as the same decimal.Decimal, which is preserved
// deliberately rather than threading a separate radix field through
// the AST.
func numberValue(lit string, isHex bool) (decimal.Decimal, error) {
	switch {
	case isHex:
		bi, ok := new(big.Int).SetString(lit[2:], 16)
		if !ok {
			return decimal.Decimal{}, invalidSyntax
		}
		return decimal.NewFromBigInt(bi, 0), nil
	case octalPattern.MatchString(lit):
		bi, ok := new(big.Int).SetString(lit[1:], 8)
		if !ok {
			return decimal.Decimal{}, invalidSyntax
		}
		return decimal.NewFromBigInt(bi, 0), nil
	case decimalPattern.MatchString(lit):
		d, err := decimal.NewFromString(normalizeDecimalLit(lit))
		if err != nil {
			return decimal.Decimal{}, invalidSyntax
		}
		return d, nil
	}
	return decimal.Decimal{}, invalidSyntax
}

// normalizeDecimalLit pads the "1." and ".5" shapes the number grammar
// allows into something decimal.NewFromString accepts unambiguously.
func normalizeDecimalLit(lit string) string {
	if strings.HasPrefix(lit, ".") {
		lit = "0" + lit
	}
	if strings.HasSuffix(lit, ".") {
		lit += "0"
	}
	if i := strings.IndexAny(lit, "eE"); i >= 0 && strings.Contains(lit[:i], ".") {
		mantissa, exp := lit[:i], lit[i:]
		if strings.HasSuffix(mantissa, ".") {
			mantissa += "0"
		}
		lit = mantissa + exp
	}
	return lit
}

type syntaxError string

func (e syntaxError) Error() string { return string(e) }

const invalidSyntax = syntaxError("Invalid syntax")
