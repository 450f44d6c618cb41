package trie

import (
	"sort"

	"github.com/hideo55/go-popcount"
)

// denseLimit is the first code point kept in the overflow map instead of
// the bitmap-ranked dense slice.
const denseLimit = 256

// childIndex maps the first code point of a child's edge to the child.
// Code points below denseLimit live in a dense slice ordered by code point,
// located by popcount rank over a 256-bit presence bitmap; the rest live in
// the wide map.
type childIndex struct {
	bitmap [4]uint64
	dense  []*node
	wide   map[rune]*node
}

func (ci *childIndex) size() int {
	return len(ci.dense) + len(ci.wide)
}

// rank counts the children keyed below r.
func (ci *childIndex) rank(r rune) int {
	ofs := int(r >> 6)
	cnt := popcount.Count(ci.bitmap[ofs] & (1<<(uint(r)&0x3F) - 1))
	for j := 0; j < ofs; j++ {
		cnt += popcount.Count(ci.bitmap[j])
	}
	return int(cnt)
}

func (ci *childIndex) get(r rune) *node {
	if r < denseLimit {
		if ci.bitmap[r>>6]&(1<<(uint(r)&0x3F)) == 0 {
			return nil
		}
		return ci.dense[ci.rank(r)]
	}
	return ci.wide[r]
}

// with returns a copy of the index with r bound to child. The receiver and
// anything sharing its slices is left untouched.
func (ci childIndex) with(r rune, child *node) childIndex {
	if r < denseLimit {
		ofs, bit := r>>6, uint64(1)<<(uint(r)&0x3F)
		idx := ci.rank(r)
		if ci.bitmap[ofs]&bit != 0 {
			// replace in place of the old child
			dense := make([]*node, len(ci.dense))
			copy(dense, ci.dense)
			dense[idx] = child
			ci.dense = dense
			return ci
		}
		dense := make([]*node, len(ci.dense)+1)
		copy(dense[:idx], ci.dense[:idx])
		dense[idx] = child
		copy(dense[idx+1:], ci.dense[idx:])
		ci.bitmap[ofs] |= bit
		ci.dense = dense
		return ci
	}
	wide := make(map[rune]*node, len(ci.wide)+1)
	for k, v := range ci.wide {
		wide[k] = v
	}
	wide[r] = child
	ci.wide = wide
	return ci
}

// iter visits the children in code-point order. The handler can continue
// with true or abort with false; iter reports whether all children were
// visited.
func (ci *childIndex) iter(handler func(*node) bool) bool {
	for _, c := range ci.dense {
		if !handler(c) {
			return false
		}
	}
	if len(ci.wide) != 0 {
		keys := make([]rune, 0, len(ci.wide))
		for r := range ci.wide {
			keys = append(keys, r)
		}
		sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
		for _, r := range keys {
			if !handler(ci.wide[r]) {
				return false
			}
		}
	}
	return true
}

// node is one vertex of the tree. The zero value is a fresh root.
type node struct {
	// edge is the label consumed from the parent; empty only at the root
	edge     []rune
	terminal bool
	children childIndex
}

func (n *node) child(r rune) *node {
	return n.children.get(r)
}

// withChild returns a new node with r bound to c, sharing all other
// children with the receiver.
func (n *node) withChild(r rune, c *node) *node {
	return &node{edge: n.edge, terminal: n.terminal, children: n.children.with(r, c)}
}

func (n *node) withTerminal() *node {
	return &node{edge: n.edge, terminal: true, children: n.children}
}

// commonPrefixLen returns the length of the shared prefix of a and b.
func commonPrefixLen(a, b []rune) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	k := 0
	for k < n && a[k] == b[k] {
		k++
	}
	return k
}

// newBranch builds a fresh terminal branch spelling word. The Radix kind
// stores it as a single edge; the Standard kind as a chain of one-code-point
// nodes.
func newBranch(word []rune, kind Kind) *node {
	if kind == Radix {
		return &node{edge: word, terminal: true}
	}
	n := &node{edge: word[len(word)-1:], terminal: true}
	for i := len(word) - 2; i >= 0; i-- {
		p := &node{edge: word[i : i+1]}
		p.children = p.children.with(word[i+1], n)
		n = p
	}
	return n
}

// add inserts the remaining word suffix below n and returns the new subtree
// root, or (n, false) when the word was already present. n itself is never
// modified; the changed path is rebuilt and everything else is shared.
func add(n *node, word []rune, kind Kind) (*node, bool) {
	if len(word) == 0 {
		if n.terminal {
			return n, false
		}
		return n.withTerminal(), true
	}
	c := n.child(word[0])
	if c == nil {
		return n.withChild(word[0], newBranch(word, kind)), true
	}
	k := commonPrefixLen(c.edge, word)
	if k == len(c.edge) {
		nc, added := add(c, word[k:], kind)
		if !added {
			return n, false
		}
		return n.withChild(word[0], nc), true
	}
	// diverged inside the edge: split it at k
	head := &node{edge: c.edge[:k]}
	tail := &node{edge: c.edge[k:], terminal: c.terminal, children: c.children}
	head.children = head.children.with(tail.edge[0], tail)
	if k == len(word) {
		head.terminal = true
	} else {
		head.children = head.children.with(word[k], newBranch(word[k:], kind))
	}
	return n.withChild(word[0], head), true
}
