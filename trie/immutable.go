package trie

// ImmutableTrie is a read-only facade over a Trie. It is a live view, not
// a snapshot: it shares the node graph with its source, so words added to
// the source later are visible through the view. Reads through a view must
// not overlap mutation of the source.
type ImmutableTrie struct {
	src *Trie
}

// Immutable returns a read-only view sharing t's nodes.
func (t *Trie) Immutable() *ImmutableTrie {
	return &ImmutableTrie{src: t}
}

func (v *ImmutableTrie) Kind() Kind { return v.src.Kind() }

func (v *ImmutableTrie) Has(word string) bool { return v.src.Has(word) }

func (v *ImmutableTrie) HasPrefix(prefix string) bool { return v.src.HasPrefix(prefix) }

func (v *ImmutableTrie) Len() int { return v.src.Len() }

func (v *ImmutableTrie) NodeCount() int { return v.src.NodeCount() }

func (v *ImmutableTrie) Depth() int { return v.src.Depth() }

func (v *ImmutableTrie) Iter(prefix string, handler func(string) bool) bool {
	return v.src.Iter(prefix, handler)
}

func (v *ImmutableTrie) Words() []string { return v.src.Words() }

func (v *ImmutableTrie) WordsWithPrefix(prefix string) []string {
	return v.src.WordsWithPrefix(prefix)
}

func (v *ImmutableTrie) WordSet() map[string]struct{} { return v.src.WordSet() }

func (v *ImmutableTrie) CountWithPrefix(prefix string) int { return v.src.CountWithPrefix(prefix) }

func (v *ImmutableTrie) IterBranches(handler func(string) bool) bool {
	return v.src.IterBranches(handler)
}

func (v *ImmutableTrie) Branches() []string { return v.src.Branches() }

func (v *ImmutableTrie) LongestCommonPrefix() string { return v.src.LongestCommonPrefix() }

func (v *ImmutableTrie) IterNGrams(n int, handler func(string) bool) bool {
	return v.src.IterNGrams(n, handler)
}

func (v *ImmutableTrie) NGrams(n int) []string { return v.src.NGrams(n) }

// SubTrie returns a read-only view of the suffixes after prefix. The view
// of an unmatched prefix wraps Empty.
func (v *ImmutableTrie) SubTrie(prefix string) *ImmutableTrie {
	return v.src.SubTrie(prefix).Immutable()
}

// Filter returns a fresh mutable trie of the accepted words; the source is
// never modified, so filtering through the view is safe.
func (v *ImmutableTrie) Filter(keep func(string) bool) *Trie { return v.src.Filter(keep) }

func (v *ImmutableTrie) Equal(other *Trie) bool { return v.src.Equal(other) }

func (v *ImmutableTrie) String() string { return v.src.String() }

func (v *ImmutableTrie) MarshalJSON() ([]byte, error) { return v.src.MarshalJSON() }
