package trie

// Iter calls the handler for every stored word starting with prefix, in
// code-point order, shortest first. The handler can continue the process
// by returning true or abort with false; Iter reports whether all words
// were visited. Each call re-traverses from the root, so iteration is
// restartable and reflects the state at call time.
func (t *Trie) Iter(prefix string, handler func(string) bool) bool {
	n, rest := t.walk([]rune(prefix))
	if n == nil {
		return true
	}
	path := append([]rune(prefix), rest...)
	return iterate(n, path, handler)
}

// iterate emits path at every terminal node of the subtree rooted at n.
// path already includes n's edge.
func iterate(n *node, path []rune, handler func(string) bool) bool {
	if n.terminal && !handler(string(path)) {
		return false
	}
	return n.children.iter(func(c *node) bool {
		return iterate(c, append(path[:len(path):len(path)], c.edge...), handler)
	})
}

// Words returns every stored word in code-point order.
func (t *Trie) Words() []string {
	return t.WordsWithPrefix("")
}

// WordsWithPrefix returns the stored words starting with prefix, in
// code-point order.
func (t *Trie) WordsWithPrefix(prefix string) (words []string) {
	t.Iter(prefix, func(word string) bool {
		words = append(words, word)
		return true
	})
	return
}

// WordSet returns the stored words as a set.
func (t *Trie) WordSet() map[string]struct{} {
	set := make(map[string]struct{})
	t.Iter("", func(word string) bool {
		set[word] = struct{}{}
		return true
	})
	return set
}

// CountWithPrefix returns the number of stored words starting with prefix.
func (t *Trie) CountWithPrefix(prefix string) (count int) {
	t.Iter(prefix, func(string) bool {
		count++
		return true
	})
	return
}
