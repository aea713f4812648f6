package lexer_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"ecma3/lexer"
	"ecma3/token"
)

func scanAll(t *testing.T, src string) []lexer.Token {
	t.Helper()
	sc := lexer.New(src, nil)
	var toks []lexer.Token
	for {
		tok, err := sc.NextToken()
		require.NoError(t, err)
		toks = append(toks, tok)
		if tok.IsEOF() {
			return toks
		}
	}
}

func TestScanner_Punctuation(t *testing.T) {
	toks := scanAll(t, "(a,b);")
	require.Equal(t, []token.Type{
		token.Punc, token.Name, token.Punc, token.Name, token.Punc, token.Punc, token.EOF,
	}, typesOf(toks))
}

func typesOf(toks []lexer.Token) []token.Type {
	out := make([]token.Type, len(toks))
	for i, t := range toks {
		out[i] = t.Type
	}
	return out
}

func TestScanner_KeywordsAtomsNames(t *testing.T) {
	toks := scanAll(t, "var x = true")
	require.Equal(t, token.Keyword, toks[0].Type)
	require.Equal(t, token.Name, toks[1].Type)
	require.Equal(t, token.Operator, toks[2].Type)
	require.Equal(t, token.Atom, toks[3].Type)
	require.Equal(t, "true", toks[3].Lit())
}

func TestScanner_NumberLiterals(t *testing.T) {
	cases := map[string]string{
		"0":       "0",
		"42":      "42",
		"3.14":    "3.14",
		".5":      "0.5",
		"1.":      "1",
		"1e3":     "1000",
		"0x1F":    "31",
		"010":     "8",
	}
	for src, want := range cases {
		toks := scanAll(t, src)
		require.Equal(t, token.Num, toks[0].Type, src)
		d, ok := toks[0].Value.(decimal.Decimal)
		require.True(t, ok, src)
		require.Equal(t, want, d.String(), src)
	}
}

func TestScanner_StringEscapes(t *testing.T) {
	toks := scanAll(t, `"a\nb\t\x41B"`)
	require.Equal(t, token.String, toks[0].Type)
	require.Equal(t, "a\nb\tAB", toks[0].Lit())
}

func TestScanner_UnterminatedString(t *testing.T) {
	sc := lexer.New(`"abc`, nil)
	_, err := sc.NextToken()
	require.Error(t, err)
	var pe *lexer.ParseError
	require.ErrorAs(t, err, &pe)
}

func TestScanner_RegexVsDivision(t *testing.T) {
	toks := scanAll(t, "a / b / c")
	require.Equal(t, []token.Type{
		token.Name, token.Operator, token.Name, token.Operator, token.Name, token.EOF,
	}, typesOf(toks))

	toks = scanAll(t, "return /abc/.test(x)")
	require.Equal(t, token.Regexp, toks[1].Type)
}

func TestScanner_CommentsBefore(t *testing.T) {
	toks := scanAll(t, "// leading\nx")
	require.Equal(t, token.Name, toks[0].Type)
	require.Len(t, toks[0].CommentsBefore, 1)
	require.Equal(t, token.Comment1, toks[0].CommentsBefore[0].Type)
}

func TestScanner_NLB(t *testing.T) {
	toks := scanAll(t, "a\nb")
	require.False(t, toks[0].NLB)
	require.True(t, toks[1].NLB)
}

func TestScanner_PositionsMonotonic(t *testing.T) {
	toks := scanAll(t, "var x = 1 + 2;")
	for i := 1; i < len(toks); i++ {
		require.GreaterOrEqual(t, toks[i].Pos, toks[i-1].Pos)
	}
}

func TestScanner_CCOnWarning(t *testing.T) {
	var got string
	sc := lexer.New("/*@cc_on @*/x", func(msg string, line, col, pos int) {
		got = msg
	})
	_, err := sc.NextToken() // the comment, folded into the next token
	require.NoError(t, err)
	require.NotEmpty(t, got)
}

func TestScanner_EmptySource(t *testing.T) {
	toks := scanAll(t, "")
	require.Len(t, toks, 1)
	require.True(t, toks[0].IsEOF())
}

func TestScanAll_ContinuesPastError(t *testing.T) {
	toks, errs := lexer.ScanAll("x # y", nil)
	require.Len(t, errs, 1)
	require.NotEmpty(t, toks)
	require.Equal(t, "x", toks[0].Lit())
	require.Equal(t, "y", toks[len(toks)-2].Lit())
}
