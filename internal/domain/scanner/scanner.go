// Package scanner provides the brace-depth, string-literal aware character
// walker shared by the span extractor and the section tooling.
package scanner

import "errors"

// ErrUnbalanced is returned when a closing brace appears at depth zero.
var ErrUnbalanced = errors.New("unbalanced closing brace")

// State is the observable scanner state.
type State struct {
	Depth     int
	InString  bool
	Delimiter byte // meaningful only while InString
	Escaped   bool
}

// Scanner walks text one byte at a time. It knows nothing about comments.
type Scanner struct {
	state     State
	underflow bool
}

// New returns a scanner starting at the given brace depth.
func New(depth int) *Scanner {
	return &Scanner{state: State{Depth: depth}}
}

// State returns a copy of the current state.
func (s *Scanner) State() State {
	return s.state
}

// Depth returns the current brace depth.
func (s *Scanner) Depth() int {
	return s.state.Depth
}

// InString reports whether the scanner is inside a string literal.
func (s *Scanner) InString() bool {
	return s.state.InString
}

// Underflow reports whether depth ever went below zero.
func (s *Scanner) Underflow() bool {
	return s.underflow
}

// Step consumes one byte. It returns ErrUnbalanced when a closing brace
// takes the depth below zero; the depth is not clamped.
func (s *Scanner) Step(c byte) error {
	st := &s.state

	if st.InString {
		switch {
		case st.Escaped:
			st.Escaped = false
		case c == '\\':
			st.Escaped = true
		case c == st.Delimiter:
			st.InString = false
			st.Delimiter = 0
		}

		return nil
	}

	switch c {
	case '{':
		st.Depth++
	case '}':
		st.Depth--
		if st.Depth < 0 {
			s.underflow = true
			return ErrUnbalanced
		}
	case '"', '\'', '`':
		st.InString = true
		st.Delimiter = c
	}

	return nil
}

// Closing scans text from offset from with the given starting depth and
// returns the offset of the brace that brings the depth back to zero outside
// a string literal. It returns -1 when the input ends first or when the text
// is malformed.
func Closing(text string, from int, depth int) int {
	if from < 0 {
		from = 0
	}

	s := New(depth)

	for i := from; i < len(text); i++ {
		c := text[i]
		if err := s.Step(c); err != nil {
			return -1
		}

		if c == '}' && !s.InString() && s.Depth() == 0 {
			return i
		}
	}

	return -1
}

// MaxDepth returns the deepest brace nesting reached while scanning text,
// ignoring braces inside string literals.
func MaxDepth(text string) int {
	s := New(0)
	deepest := 0

	for i := 0; i < len(text); i++ {
		if err := s.Step(text[i]); err != nil {
			return deepest
		}

		if s.Depth() > deepest {
			deepest = s.Depth()
		}
	}

	return deepest
}
