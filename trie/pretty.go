package trie

import (
	"fmt"
	"strings"
)

// String renders the node tree, one node per line, terminal nodes marked
// with an asterisk. Children are indented under their parent in code-point
// order.
func (t *Trie) String() string {
	if t == Empty {
		return "(empty)"
	}
	var buf strings.Builder
	fmt.Fprintf(&buf, "%v trie, %d words\n", t.kind, t.Len())
	dump(&buf, t.rootNode(), "")
	return buf.String()
}

func dump(buf *strings.Builder, n *node, indent string) {
	label := string(n.edge)
	if label == "" {
		label = "."
	}
	buf.WriteString(indent)
	buf.WriteString(label)
	if n.terminal {
		buf.WriteString(" *")
	}
	buf.WriteByte('\n')
	n.children.iter(func(c *node) bool {
		dump(buf, c, indent+"  ")
		return true
	})
}
