package scanner

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feed(t *testing.T, s *Scanner, text string) {
	t.Helper()

	for i := 0; i < len(text); i++ {
		require.NoError(t, s.Step(text[i]), "byte %d of %q", i, text)
	}
}

func TestScanner_Depth(t *testing.T) {
	s := New(0)
	feed(t, s, "{ { } ")

	assert.Equal(t, 1, s.Depth())
	assert.False(t, s.InString())
}

func TestScanner_BracesInsideStringsAreIgnored(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "double quotes", text: `{ "}}" `},
		{name: "single quotes", text: `{ '}' `},
		{name: "back quotes", text: "{ `}` "},
		{name: "escaped delimiter", text: `{ "a\"}" `},
		{name: "escaped backslash", text: `{ "a\\" `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(0)
			feed(t, s, tt.text)

			assert.Equal(t, 1, s.Depth())
			assert.False(t, s.InString())
		})
	}
}

func TestScanner_StringState(t *testing.T) {
	s := New(0)
	feed(t, s, `x = "ab\`)

	st := s.State()
	assert.True(t, st.InString)
	assert.Equal(t, byte('"'), st.Delimiter)
	assert.True(t, st.Escaped)

	require.NoError(t, s.Step('"'))
	st = s.State()
	assert.True(t, st.InString, "escaped delimiter must not close the string")
	assert.False(t, st.Escaped)

	require.NoError(t, s.Step('"'))
	assert.False(t, s.InString())
}

func TestScanner_OtherQuoteInsideStringIsLiteral(t *testing.T) {
	s := New(0)
	feed(t, s, `"it's" {`)

	assert.False(t, s.InString())
	assert.Equal(t, 1, s.Depth())
}

func TestScanner_Underflow(t *testing.T) {
	s := New(0)

	err := s.Step('}')
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnbalanced))
	assert.True(t, s.Underflow())
	assert.Equal(t, -1, s.Depth(), "depth is not clamped")
}

func TestClosing(t *testing.T) {
	text := `{ return "}"; }`

	assert.Equal(t, len(text)-1, Closing(text, 1, 1))
	assert.Equal(t, -1, Closing(`{ if (x) { `, 1, 1))
	assert.Equal(t, -1, Closing(`{ "}`, 1, 1), "closing brace only inside an unterminated string")
}

func TestMaxDepth(t *testing.T) {
	assert.Equal(t, 0, MaxDepth("plain"))
	assert.Equal(t, 3, MaxDepth("{ { { } } }"))
	assert.Equal(t, 1, MaxDepth(`{ "{{{" }`))
}
