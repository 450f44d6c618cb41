// Package trie implements a prefix-indexed set of strings in two
// interchangeable representations sharing one node layout and one
// insertion algorithm:
//
//   - Standard - one code point per edge;
//   - Radix    - maximally compressed, edges carry multi-code-point labels.
//
// Node layout:
// -----------
//
// Every node holds an edge label (the code points consumed on the way from
// its parent), a terminal flag (the path down to this node spells a stored
// word) and a child index keyed by the first code point of each child's
// edge. The child index packs code points below 256 into a 256-bit bitmap
// with a popcount-ranked dense slice; wider code points go to an overflow
// map.
//
// Radix invariants (the Standard variant satisfies them trivially):
//
//  1. every non-root node has a non-empty edge;
//  2. sibling edges start with pairwise-distinct code points;
//  3. a non-terminal non-root node has at least two children
//     (no node exists solely to pass through);
//  4. duplicate insertion is a no-op.
//
// Nodes are persistent values: a mutation rebuilds the nodes along the
// changed path and reuses every untouched subtree by reference, then the
// Trie reassigns its root pointer. Untouched siblings are therefore shared
// between a trie, its sub-tries and its immutable views.
//
// Example radix trie containing "alpha", "alphabet", "beta":
//
//	(root) --+-- [alpha:*] -- [bet:*]
//	         |
//	         `-- [beta:*]
//
// The package is not safe for concurrent use: a mutating call (Add, Merge,
// UnmarshalJSON) must not overlap any other call on the same trie or on a
// view sharing its nodes.
package trie
