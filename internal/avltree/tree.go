// Package avltree is an arena based AVL tree with parent links.
//
// Nodes never move in memory relative to each other: they are addressed by
// slot, so rotations and splices only rewrite indexes. Removing a key
// releases exactly one slot, the one of the removed node; every other
// Handle stays valid, which allows deleting while iterating.
//
// A tree is not safe for concurrent use.
package avltree

import (
	"math"

	"github.com/ddirect/orderedset"
	"github.com/ddirect/orderedset/fifo"
)

const maxNodes = math.MaxUint32 - 1

type Tree[K orderedset.Key] struct {
	nodes []node[K]
	free  fifo.Fifo[uint32]
	root  uint32
	count int
}

func New[K orderedset.Key]() *Tree[K] {
	return &Tree[K]{}
}

func (t *Tree[K]) Len() int {
	return t.count
}

// Height of the whole tree, zero when empty.
func (t *Tree[K]) Height() int {
	return int(t.height(t.root))
}

// Clear removes every key; outstanding handles become stale.
func (t *Tree[K]) Clear() {
	for i := range t.nodes {
		if t.nodes[i].live {
			t.release(uint32(i + 1))
		}
	}
	t.root = 0
	t.count = 0
}

// Clone returns a deep copy with the same shape and heights.
func (t *Tree[K]) Clone() *Tree[K] {
	c := New[K]()
	c.copyFrom(t)
	return c
}

// CopyFrom replaces the content of t with a deep copy of src.
func (t *Tree[K]) CopyFrom(src *Tree[K]) {
	if t == src {
		return
	}
	t.Clear()
	t.copyFrom(src)
}

func (t *Tree[K]) copyFrom(src *Tree[K]) {
	t.root = t.copySubtree(src, src.root, 0)
	t.count = src.count
}

func (t *Tree[K]) copySubtree(src *Tree[K], from, parent uint32) uint32 {
	if from == 0 {
		return 0
	}
	sn := src.n(from)
	id := t.alloc(sn.key, parent)
	t.n(id).height = sn.height
	// alloc may grow t.nodes: resolve the node again after every call
	l := t.copySubtree(src, sn.left, id)
	t.n(id).left = l
	r := t.copySubtree(src, sn.right, id)
	t.n(id).right = r
	return id
}
