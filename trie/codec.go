package trie

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformed reports structurally invalid serialized trie data. Every
// decoding failure wraps it; errors.Is(err, ErrMalformed) matches them all.
var ErrMalformed = errors.New("malformed trie data")

// record is the wire form of one node: a terminal flag, an edge label
// (radix only; the child key already spells a standard edge) and children
// keyed by the first code point of their edge. The root record carries the
// kind discriminator and no edge.
type record struct {
	Kind     string             `json:"kind,omitempty"`
	Edge     string             `json:"edge,omitempty"`
	Terminal bool               `json:"terminal"`
	Children map[string]*record `json:"children,omitempty"`
}

// MarshalJSON encodes the trie as a nested record tree.
func (t *Trie) MarshalJSON() ([]byte, error) {
	rec := encode(t.rootNode(), t.kind, true)
	rec.Kind = t.kind.String()
	return json.Marshal(rec)
}

func encode(n *node, kind Kind, root bool) *record {
	rec := &record{Terminal: n.terminal}
	if !root && kind == Radix {
		rec.Edge = string(n.edge)
	}
	if n.children.size() != 0 {
		rec.Children = make(map[string]*record, n.children.size())
		n.children.iter(func(c *node) bool {
			rec.Children[string(c.edge[0])] = encode(c, kind, false)
			return true
		})
	}
	return rec
}

// UnmarshalJSON decodes a record tree, validating the structural
// invariants of the declared kind. On failure the receiver is left
// untouched and the error wraps ErrMalformed.
func (t *Trie) UnmarshalJSON(data []byte) error {
	t.mutable()
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	var kind Kind
	switch rec.Kind {
	case "standard":
		kind = Standard
	case "radix":
		kind = Radix
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrMalformed, rec.Kind)
	}
	root, err := decode(&rec, kind, true)
	if err != nil {
		return err
	}
	*t = Trie{kind: kind, root: root}
	return nil
}

func decode(rec *record, kind Kind, root bool) (*node, error) {
	n := &node{terminal: rec.Terminal}
	for key, crec := range rec.Children {
		kr := []rune(key)
		if len(kr) != 1 {
			return nil, fmt.Errorf("%w: child key %q is not a single code point", ErrMalformed, key)
		}
		edge := []rune(crec.Edge)
		switch kind {
		case Standard:
			if crec.Edge != "" {
				return nil, fmt.Errorf("%w: standard child %q carries an edge label", ErrMalformed, key)
			}
			edge = kr
		case Radix:
			if len(edge) == 0 {
				return nil, fmt.Errorf("%w: radix child %q has an empty edge", ErrMalformed, key)
			}
			if edge[0] != kr[0] {
				return nil, fmt.Errorf("%w: child key %q does not start edge %q", ErrMalformed, key, crec.Edge)
			}
		}
		c, err := decode(crec, kind, false)
		if err != nil {
			return nil, err
		}
		c.edge = edge
		n.children = n.children.with(kr[0], c)
	}
	if !root && !n.terminal {
		// a non-terminal leaf spells no word; a single-child non-terminal
		// radix node would have been compressed into its parent
		if n.children.size() == 0 || (kind == Radix && n.children.size() < 2) {
			return nil, fmt.Errorf("%w: non-terminal node with %d children", ErrMalformed, n.children.size())
		}
	}
	return n, nil
}
