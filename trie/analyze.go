package trie

// Len returns the number of stored words. Recomputed by a full traversal
// on every call; nothing is cached on the nodes.
func (t *Trie) Len() int {
	return countTerminals(t.rootNode())
}

func countTerminals(n *node) int {
	count := 0
	if n.terminal {
		count++
	}
	n.children.iter(func(c *node) bool {
		count += countTerminals(c)
		return true
	})
	return count
}

// NodeCount returns the number of nodes, the root included. Empty has
// zero nodes.
func (t *Trie) NodeCount() int {
	if t == Empty {
		return 0
	}
	return countNodes(t.rootNode())
}

func countNodes(n *node) int {
	count := 1
	n.children.iter(func(c *node) bool {
		count += countNodes(c)
		return true
	})
	return count
}

// Depth returns the number of edges on the longest root-to-leaf path.
// It depends on the representation: a radix trie is never deeper than a
// standard trie over the same words.
func (t *Trie) Depth() int {
	return depth(t.rootNode())
}

func depth(n *node) int {
	max := 0
	n.children.iter(func(c *node) bool {
		if d := depth(c) + 1; d > max {
			max = d
		}
		return true
	})
	return max
}

// IterBranches calls the handler with the prefix spelled at every node
// that is a branch point (two or more children) or terminal, in code-point
// order. The root's empty prefix is included when the root itself
// qualifies. Abortable like Iter.
func (t *Trie) IterBranches(handler func(string) bool) bool {
	return branches(t.rootNode(), nil, handler)
}

func branches(n *node, path []rune, handler func(string) bool) bool {
	if (n.terminal || n.children.size() >= 2) && !handler(string(path)) {
		return false
	}
	return n.children.iter(func(c *node) bool {
		return branches(c, append(path[:len(path):len(path)], c.edge...), handler)
	})
}

// Branches returns the prefixes at every branch point or word boundary.
func (t *Trie) Branches() (prefixes []string) {
	t.IterBranches(func(prefix string) bool {
		prefixes = append(prefixes, prefix)
		return true
	})
	return
}

// LongestCommonPrefix returns the prefix shared by every stored word:
// the concatenation of edges walked while exactly one child exists and no
// word boundary has been passed. Empty when the root already branches or
// is terminal.
func (t *Trie) LongestCommonPrefix() string {
	var lcp []rune
	n := t.rootNode()
	for !n.terminal && n.children.size() == 1 {
		var only *node
		n.children.iter(func(c *node) bool {
			only = c
			return false
		})
		lcp = append(lcp, only.edge...)
		n = only
	}
	return string(lcp)
}

// IterNGrams calls the handler with every contiguous length-n window of
// every stored word, sliding over the whole word. Words are visited in
// code-point order, windows left to right; duplicates are not collapsed.
// n <= 0 yields nothing. Abortable like Iter.
func (t *Trie) IterNGrams(n int, handler func(string) bool) bool {
	if n <= 0 {
		return true
	}
	return t.Iter("", func(word string) bool {
		runes := []rune(word)
		for i := 0; i+n <= len(runes); i++ {
			if !handler(string(runes[i : i+n])) {
				return false
			}
		}
		return true
	})
}

// NGrams returns every length-n window of every stored word.
func (t *Trie) NGrams(n int) (grams []string) {
	t.IterNGrams(n, func(gram string) bool {
		grams = append(grams, gram)
		return true
	})
	return
}
