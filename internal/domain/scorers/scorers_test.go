package scorers

import (
	"testing"

	m "github.com/mouse-blink/splice/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInput_HeadBody(t *testing.T) {
	in := Input{Text: "/** @param {string} a */\nfunction f(a = {}) { return a; }"}

	assert.Equal(t, "/** @param {string} a */\nfunction f(a = {}) ", in.Head())
	assert.Equal(t, "{ return a; }", in.Body())

	bare := Input{Text: "no body here"}
	assert.Equal(t, "no body here", bare.Head())
	assert.Empty(t, bare.Body())
}

func TestLength(t *testing.T) {
	assert.InDelta(t, 0.3, Length(Input{Text: "a\nb\nc"}), 1e-9)
	assert.Zero(t, Length(Input{}))
}

func TestNesting(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{name: "flat", text: "function f() { return 1; }", want: 0},
		{name: "two levels", text: "function f() { if (a) { while (b) { } } }", want: 4},
		{name: "braces in strings", text: `function f() { return "{{{"; }`, want: 0},
		{name: "no body", text: "function f()", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Nesting(Input{Text: tt.text}), 1e-9)
		})
	}
}

func TestParams(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want float64
	}{
		{name: "none", in: Input{Name: "f", Text: "function f() {}"}, want: 0},
		{name: "defaults with braces", in: Input{Name: "f", Text: "function f(a, b = {x: 1, y: 2}, c) {}"}, want: 3},
		{name: "go method", in: Input{Name: "Handle", Text: "func (s *Srv) Handle(w http.ResponseWriter, r *http.Request) error {}"}, want: 2},
		{name: "rust generics", in: Input{Name: "map", Text: "fn map<T, U>(items: Vec<T>, f: impl Fn(T) -> U) -> Vec<U> {}"}, want: 2},
		{name: "class", in: Input{Name: "Foo", Text: "class Foo extends Bar {}"}, want: 0},
		{name: "doc mentions name", in: Input{Name: "g", Text: "/** g is used by h */\nfunction g(x) {}"}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Params(tt.in), 1e-9)
		})
	}
}

func TestBranches(t *testing.T) {
	in := Input{Text: "function f() { if (a && b) { } else if (c) { } for (;;) {} }"}

	assert.InDelta(t, 4, Branches(in), 1e-9)
	assert.Zero(t, Branches(Input{Text: "function iffy() { return verify; }"}))
}

func TestDocs(t *testing.T) {
	assert.Zero(t, Docs(Input{Text: "/** doc */\nfunction f() {}"}))
	assert.InDelta(t, 2, Docs(Input{Text: "function f() {}"}), 1e-9)
	assert.InDelta(t, 2, Docs(Input{Text: "function f() { /* inside */ }"}), 1e-9)
}

func TestSelect(t *testing.T) {
	idx, err := NewCallIndex(nil, 0)
	require.NoError(t, err)

	t.Run("all by default", func(t *testing.T) {
		selected, err := Select(idx)
		require.NoError(t, err)

		names := make([]m.ScorerName, 0, len(selected))
		for _, s := range selected {
			names = append(names, s.Name())
		}

		assert.Equal(t, Names(), names)
	})

	t.Run("subset", func(t *testing.T) {
		selected, err := Select(idx, m.ScorerDocs)
		require.NoError(t, err)
		require.Len(t, selected, 1)
		assert.InDelta(t, 2, selected[0].Score(Input{Text: "fn a() {}"}), 1e-9)
	})

	t.Run("unknown scorer", func(t *testing.T) {
		_, err := Select(idx, "magic")
		assert.ErrorContains(t, err, "unsupported scorer")
	})

	t.Run("callers without index", func(t *testing.T) {
		_, err := Select(nil, m.ScorerCallers)
		assert.Error(t, err)
	})
}
