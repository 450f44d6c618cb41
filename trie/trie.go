package trie

// Kind selects the edge representation of a Trie.
type Kind uint8

const (
	// Standard tries carry one code point per edge.
	Standard Kind = iota
	// Radix tries compress single-child chains into multi-code-point edges.
	Radix
)

func (k Kind) String() string {
	switch k {
	case Standard:
		return "standard"
	case Radix:
		return "radix"
	}
	return "unknown"
}

// Trie is a mutable prefix-indexed set of strings.
type Trie struct {
	kind Kind
	root *node
}

// Empty is the canonical trie with no words. It is compared by identity:
// SubTrie and Filter return Empty itself (never a structural twin) on a
// miss from Empty. Mutating Empty panics.
var Empty = &Trie{root: &node{}}

// Init resets a trie in place to the given kind and seed words. Returns it.
func Init(t *Trie, kind Kind, words ...string) *Trie {
	t.mutable()
	*t = Trie{kind: kind, root: &node{}}
	for _, w := range words {
		t.Add(w)
	}
	return t
}

// New returns a trie of the given kind holding the seed words.
func New(kind Kind, words ...string) *Trie {
	return Init(&Trie{}, kind, words...)
}

func NewStandard(words ...string) *Trie { return New(Standard, words...) }

func NewRadix(words ...string) *Trie { return New(Radix, words...) }

func InitStandard(t *Trie, words ...string) *Trie { return Init(t, Standard, words...) }

func InitRadix(t *Trie, words ...string) *Trie { return Init(t, Radix, words...) }

// Kind returns the edge representation of the trie.
func (t *Trie) Kind() Kind {
	return t.kind
}

func (t *Trie) mutable() {
	if t == Empty {
		panic("trie: mutation of the Empty sentinel")
	}
}

// zeroNode backs reads on a zero-value Trie whose root was never allocated.
// Nothing ever mutates nodes in place, so sharing it is safe.
var zeroNode node

func (t *Trie) rootNode() *node {
	if t.root == nil {
		return &zeroNode
	}
	return t.root
}

// Add stores a word (the empty string included) and reports whether the
// set changed. Re-adding a stored word is a no-op.
func (t *Trie) Add(word string) bool {
	t.mutable()
	root, added := add(t.rootNode(), []rune(word), t.kind)
	if added {
		t.root = root
	}
	return added
}

// walk consumes prefix from the root. It returns the node the walk ended
// at and the unconsumed remainder of that node's edge: an empty remainder
// means the prefix ended exactly at a node boundary. A nil node means no
// stored word starts with the prefix path.
func (t *Trie) walk(prefix []rune) (*node, []rune) {
	n := t.rootNode()
	for len(prefix) > 0 {
		c := n.child(prefix[0])
		if c == nil {
			return nil, nil
		}
		k := commonPrefixLen(c.edge, prefix)
		switch {
		case k == len(prefix):
			return c, c.edge[k:]
		case k == len(c.edge):
			n, prefix = c, prefix[k:]
		default:
			// diverged inside the edge
			return nil, nil
		}
	}
	return n, nil
}

// Has reports whether the word is stored. The walk has to end exactly at
// a terminal node boundary, not inside an edge.
func (t *Trie) Has(word string) bool {
	n, rest := t.walk([]rune(word))
	return n != nil && len(rest) == 0 && n.terminal
}

// HasPrefix reports whether at least one stored word starts with prefix.
// Ending inside an edge counts as a match.
func (t *Trie) HasPrefix(prefix string) bool {
	if prefix == "" {
		root := t.rootNode()
		return root.terminal || root.children.size() != 0
	}
	n, _ := t.walk([]rune(prefix))
	return n != nil
}

// SubTrie returns the trie of word suffixes reachable after consuming
// prefix: s is stored in SubTrie(p) exactly when p+s is stored in t.
// An empty prefix returns t itself; an unmatched prefix returns Empty.
// The result shares subtrees with t, it is not a copy.
func (t *Trie) SubTrie(prefix string) *Trie {
	if t == Empty {
		return Empty
	}
	if prefix == "" {
		return t
	}
	n, rest := t.walk([]rune(prefix))
	if n == nil {
		return Empty
	}
	root := &node{}
	if len(rest) == 0 {
		root.terminal = n.terminal
		root.children = n.children
	} else {
		// the prefix stopped inside n's edge: hang the remainder under a
		// fresh root, children still shared with n
		sub := &node{edge: rest, terminal: n.terminal, children: n.children}
		root.children = root.children.with(rest[0], sub)
	}
	return &Trie{kind: t.kind, root: root}
}

// Merge adds every word of other into t and returns t. The word set of t
// becomes the union; other is left untouched. A nil other is a no-op.
func (t *Trie) Merge(other *Trie) *Trie {
	t.mutable()
	if other != nil {
		other.Iter("", func(word string) bool {
			t.Add(word)
			return true
		})
	}
	return t
}

// Filter returns a new trie of the same kind holding the words keep
// accepts. The receiver is never modified. Filtering Empty returns Empty
// itself.
func (t *Trie) Filter(keep func(string) bool) *Trie {
	if t == Empty {
		return Empty
	}
	out := New(t.kind)
	t.Iter("", func(word string) bool {
		if keep(word) {
			out.Add(word)
		}
		return true
	})
	return out
}

// Equal reports whether both tries store the same word set. The kinds may
// differ.
func (t *Trie) Equal(other *Trie) bool {
	if other == nil {
		return false
	}
	count := 0
	same := t.Iter("", func(word string) bool {
		count++
		return other.Has(word)
	})
	return same && count == other.Len()
}
