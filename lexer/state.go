package lexer

// State is an opaque snapshot of a Scanner's position, suitable for
// Restore. The parser uses this to implement one-token lookahead and the
// regex-reinterpretation back-door: snapshot before calling NextToken,
// and if the returned token turns out to have been misscanned as
// division, Restore and call ReinterpretAsRegex instead.
type State struct {
	ch            rune
	offset        int
	rdOffset      int
	line          int
	col           int
	newlineBefore bool
	regexAllowed  bool
}

// Snapshot captures the scanner's current position.
func (s *Scanner) Snapshot() State {
	return State{
		ch:            s.r.ch,
		offset:        s.r.offset,
		rdOffset:      s.r.rdOffset,
		line:          s.r.line,
		col:           s.r.col,
		newlineBefore: s.newlineBefore,
		regexAllowed:  s.regexAllowed,
	}
}

// Restore rewinds the scanner to a previously captured State.
func (s *Scanner) Restore(st State) {
	s.r.ch = st.ch
	s.r.offset = st.offset
	s.r.rdOffset = st.rdOffset
	s.r.line = st.line
	s.r.col = st.col
	s.newlineBefore = st.newlineBefore
	s.regexAllowed = st.regexAllowed
}
