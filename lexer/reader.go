package lexer

import "unicode/utf8"

// reader is the low-level character cursor the Scanner sits on top of. It
// owns the normalized source bytes and exposes the current rune plus the
// absolute offset/line/col of that rune: a single mutable struct advanced
// rune-by-rune, no buffering; peek and peekAt look ahead without
// consuming.
type reader struct {
	src      []byte
	ch       rune // rune at offset, or -1 at EOF
	offset   int
	rdOffset int
	line     int
	col      int
}

const eof rune = -1

// normalize collapses every ES3 line terminator to '\n' and strips a
// leading BOM before scanning begins.
func normalize(src string) []byte {
	b := make([]byte, 0, len(src))
	runes := []rune(src)
	if len(runes) > 0 && runes[0] == '\uFEFF' {
		runes = runes[1:]
	}
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch r {
		case '\r':
			if i+1 < len(runes) && runes[i+1] == '\n' {
				i++
			}
			b = append(b, '\n')
		case ' ', ' ':
			b = append(b, '\n')
		default:
			b = utf8.AppendRune(b, r)
		}
	}
	return b
}

func newReader(src string) *reader {
	r := &reader{src: normalize(src), col: -1}
	r.next()
	return r
}

// next advances to the following rune, maintaining 0-based line/col of
// the new current rune.
func (r *reader) next() {
	if r.ch == '\n' {
		r.line++
		r.col = 0
	} else {
		r.col++
	}

	if r.rdOffset < len(r.src) {
		r.offset = r.rdOffset
		ch, w := utf8.DecodeRune(r.src[r.rdOffset:])
		r.rdOffset += w
		r.ch = ch
	} else {
		r.offset = len(r.src)
		r.ch = eof
	}
}

// peek returns the rune following the current one without consuming it,
// or eof.
func (r *reader) peek() rune {
	if r.rdOffset >= len(r.src) {
		return eof
	}
	ch, _ := utf8.DecodeRune(r.src[r.rdOffset:])
	return ch
}

// peekAt returns the rune n runes ahead of rdOffset (peekAt(0) ==
// peek()), or eof if that runs past the end.
func (r *reader) peekAt(n int) rune {
	off := r.rdOffset
	var ch rune
	for i := 0; i <= n; i++ {
		if off >= len(r.src) {
			return eof
		}
		var w int
		ch, w = utf8.DecodeRune(r.src[off:])
		off += w
	}
	return ch
}
