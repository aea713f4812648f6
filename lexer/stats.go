package lexer

import "github.com/dustin/go-humanize"

// Stats is a running tally of what a Scanner has produced, useful for
// debug logging around large inputs. It has no bearing on parsing.
type Stats struct {
	Bytes  int
	Tokens int
}

func (s Stats) String() string {
	return humanize.Comma(int64(s.Bytes)) + " bytes, " + humanize.Comma(int64(s.Tokens)) + " tokens"
}
