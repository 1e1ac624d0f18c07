package model

// Span is the exact text range of one named definition within a source text.
// Offsets are byte offsets; EndOffset is exclusive.
type Span struct {
	StartOffset int
	EndOffset   int
	Text        string
}

// Len returns the span length in bytes.
func (s Span) Len() int {
	return s.EndOffset - s.StartOffset
}
