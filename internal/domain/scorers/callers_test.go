package scorers

import (
	"testing"

	m "github.com/mouse-blink/splice/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallIndex_Count(t *testing.T) {
	idx, err := NewCallIndex(map[m.Path]string{
		"a.js": "function foo() {}\nfoo();\nbar.foo(1);\nfoobar();\n",
		"b.go": "func (r *T) foo() {}\nx := foo ()\n",
		"c.py": "def foo(x):\n    pass\n",
	}, 8)
	require.NoError(t, err)

	assert.Equal(t, 3, idx.Count("foo"))
	assert.Equal(t, 1, idx.Count("foobar"))
	assert.Equal(t, 0, idx.Count("missing"))
	assert.Equal(t, 3, idx.Len())
}

func TestCallIndex_Score(t *testing.T) {
	idx, err := NewCallIndex(map[m.Path]string{"a.js": "a(); a(); a();"}, 0)
	require.NoError(t, err)

	assert.InDelta(t, 2, idx.Score(Input{Name: "a"}), 1e-9)
	assert.Zero(t, idx.Score(Input{Name: "b"}))
}

func TestCallIndex_Isolated(t *testing.T) {
	first, err := NewCallIndex(map[m.Path]string{"a.js": "x();"}, 0)
	require.NoError(t, err)

	second, err := NewCallIndex(map[m.Path]string{"a.js": "y();"}, 0)
	require.NoError(t, err)

	assert.Equal(t, 1, first.Count("x"))
	assert.Equal(t, 0, second.Count("x"))
}
