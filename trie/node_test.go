package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChildIndex_WithGet(t *testing.T) {
	t.Parallel()

	var (
		ci   childIndex
		a    = &node{edge: []rune("a")}
		z    = &node{edge: []rune("z")}
		m    = &node{edge: []rune("m")}
		wide = &node{edge: []rune("日")}
	)

	ci = ci.with('z', z)
	ci = ci.with('a', a)
	ci = ci.with('m', m)
	ci = ci.with('日', wide)

	assert.Equal(t, 4, ci.size())
	assert.Same(t, a, ci.get('a'))
	assert.Same(t, m, ci.get('m'))
	assert.Same(t, z, ci.get('z'))
	assert.Same(t, wide, ci.get('日'))
	assert.Nil(t, ci.get('b'))
	assert.Nil(t, ci.get('本'))
}

func TestChildIndex_Replace(t *testing.T) {
	t.Parallel()

	var (
		ci  childIndex
		old = &node{edge: []rune("a")}
		upd = &node{edge: []rune("ab")}
	)

	ci = ci.with('a', old)
	next := ci.with('a', upd)

	assert.Equal(t, 1, next.size())
	assert.Same(t, upd, next.get('a'))
	// the original index still sees the old child
	assert.Same(t, old, ci.get('a'))
}

func TestChildIndex_IterOrder(t *testing.T) {
	t.Parallel()

	var ci childIndex
	for _, r := range []rune{'z', '0', 'λ', 'a', '日', 'A'} {
		ci = ci.with(r, &node{edge: []rune{r}})
	}

	var got []rune
	full := ci.iter(func(c *node) bool {
		got = append(got, c.edge[0])
		return true
	})

	assert.True(t, full)
	assert.Equal(t, []rune{'0', 'A', 'a', 'z', 'λ', '日'}, got)
}

func TestChildIndex_IterAbort(t *testing.T) {
	t.Parallel()

	var ci childIndex
	for _, r := range []rune{'a', 'b', 'c'} {
		ci = ci.with(r, &node{edge: []rune{r}})
	}

	count := 0
	full := ci.iter(func(*node) bool {
		count++
		return false
	})

	assert.False(t, full)
	assert.Equal(t, 1, count)
}

func TestCommonPrefixLen(t *testing.T) {
	t.Parallel()

	for _, tcase := range []*struct {
		A, B string
		Exp  int
	}{
		{"", "", 0},
		{"a", "", 0},
		{"abc", "abc", 3},
		{"abc", "abd", 2},
		{"abc", "abcdef", 3},
		{"xyz", "abc", 0},
		{"日本語", "日本", 2},
	} {
		tcase := tcase

		assert.Equal(t, tcase.Exp, commonPrefixLen([]rune(tcase.A), []rune(tcase.B)),
			"%q/%q", tcase.A, tcase.B)
	}
}

func TestNewBranch(t *testing.T) {
	t.Parallel()

	rdx := newBranch([]rune("abc"), Radix)
	assert.Equal(t, "abc", string(rdx.edge))
	assert.True(t, rdx.terminal)
	assert.Equal(t, 0, rdx.children.size())

	std := newBranch([]rune("abc"), Standard)
	require.Equal(t, "a", string(std.edge))
	assert.False(t, std.terminal)

	b := std.child('b')
	require.NotNil(t, b)
	assert.Equal(t, "b", string(b.edge))

	c := b.child('c')
	require.NotNil(t, c)
	assert.Equal(t, "c", string(c.edge))
	assert.True(t, c.terminal)
}

func TestAdd_SharesSiblings(t *testing.T) {
	t.Parallel()

	tr := NewRadix("alpha", "beta")

	before := tr.root.child('b')
	tr.Add("alpine")
	after := tr.root.child('b')

	// the untouched sibling subtree is reused by reference
	assert.Same(t, before, after)
}

func TestAdd_DoesNotMutateOldRoot(t *testing.T) {
	t.Parallel()

	tr := NewRadix("alpha")

	oldRoot := tr.root
	tr.Add("beta")

	assert.Nil(t, oldRoot.child('b'))
	assert.NotNil(t, tr.root.child('b'))
}
