package avltree

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ddirect/orderedset/fifo"
)

// WriteDot renders the tree in Graphviz format, level by level: each node
// is labelled with its key and height, child edges are solid and parent
// links dashed.
func (t *Tree[K]) WriteDot(w io.Writer) error {
	var b bytes.Buffer
	b.WriteString("digraph BST {\n")
	b.WriteString("  node [shape=circle]\n")

	var q fifo.Fifo[uint32]
	if t.root != 0 {
		q.Enqueue(t.root)
	}
	for {
		id, ok := q.Dequeue()
		if !ok {
			break
		}
		n := t.n(id)
		fmt.Fprintf(&b, "  n%d [label=\"%v\\nheight=%d\"]\n", id, n.key, n.height)
		if n.parent != 0 {
			fmt.Fprintf(&b, "  n%d -> n%d [style=dashed, constraint=false]\n", id, n.parent)
		}
		if n.left != 0 {
			fmt.Fprintf(&b, "  n%d -> n%d [label=left]\n", id, n.left)
			q.Enqueue(n.left)
		}
		if n.right != 0 {
			fmt.Fprintf(&b, "  n%d -> n%d [label=right]\n", id, n.right)
			q.Enqueue(n.right)
		}
	}

	b.WriteString("}\n")
	if _, err := w.Write(b.Bytes()); err != nil {
		return fmt.Errorf("write dot: %w", err)
	}
	return nil
}
