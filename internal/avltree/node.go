package avltree

import (
	"fmt"

	"github.com/ddirect/orderedset"
)

// links are slot indexes plus 1 - zero means the link is absent
type node[K orderedset.Key] struct {
	key    K
	height int32
	left   uint32
	right  uint32
	parent uint32
	gen    uint32 // bumped every time the slot is released
	live   bool
}

// Handle is a checked reference to a node: it stops being live once the
// node is removed, even if its slot is later reused.
type Handle struct {
	id  uint32
	gen uint32
}

func (t *Tree[K]) n(id uint32) *node[K] {
	return &t.nodes[id-1]
}

func (t *Tree[K]) handle(id uint32) Handle {
	return Handle{id, t.nodes[id-1].gen}
}

// Live reports whether h still references a node of the tree.
func (t *Tree[K]) Live(h Handle) bool {
	if h.id == 0 || int(h.id) > len(t.nodes) {
		return false
	}
	n := t.n(h.id)
	return n.live && n.gen == h.gen
}

func (t *Tree[K]) resolve(h Handle) uint32 {
	if !t.Live(h) {
		panic(fmt.Errorf("avltree: stale handle %d/%d", h.id, h.gen))
	}
	return h.id
}

// Key returns the key of a live handle; it panics if the node was removed.
func (t *Tree[K]) Key(h Handle) K {
	return t.n(t.resolve(h)).key
}

func (t *Tree[K]) alloc(key K, parent uint32) uint32 {
	if id, ok := t.free.Dequeue(); ok {
		n := t.n(id)
		*n = node[K]{
			key:    key,
			height: 1,
			parent: parent,
			gen:    n.gen,
			live:   true,
		}
		return id
	}
	if uint64(len(t.nodes)) >= maxNodes {
		panic(fmt.Errorf("avltree: node limit %d reached", maxNodes))
	}
	t.nodes = append(t.nodes, node[K]{
		key:    key,
		height: 1,
		parent: parent,
		live:   true,
	})
	return uint32(len(t.nodes))
}

func (t *Tree[K]) release(id uint32) {
	n := t.n(id)
	*n = node[K]{gen: n.gen + 1}
	t.free.Enqueue(id)
}

func (t *Tree[K]) height(id uint32) int32 {
	if id == 0 {
		return 0
	}
	return t.n(id).height
}

func (t *Tree[K]) fixHeight(id uint32) {
	n := t.n(id)
	n.height = 1 + max(t.height(n.left), t.height(n.right))
}

func (t *Tree[K]) balance(id uint32) int32 {
	n := t.n(id)
	return t.height(n.left) - t.height(n.right)
}

// replaceChild points the link that referenced old (in parent, or the
// root slot if parent is zero) at nu.
func (t *Tree[K]) replaceChild(parent, old, nu uint32) {
	if parent == 0 {
		t.root = nu
		return
	}
	p := t.n(parent)
	if p.left == old {
		p.left = nu
	} else {
		p.right = nu
	}
}

func (t *Tree[K]) leftmost(id uint32) uint32 {
	for id != 0 {
		l := t.n(id).left
		if l == 0 {
			break
		}
		id = l
	}
	return id
}

func (t *Tree[K]) rightmost(id uint32) uint32 {
	for id != 0 {
		r := t.n(id).right
		if r == 0 {
			break
		}
		id = r
	}
	return id
}
