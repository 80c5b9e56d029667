package avltree

// First returns the node with the lowest key.
func (t *Tree[K]) First() (Handle, bool) {
	return t.found(t.leftmost(t.root))
}

// Last returns the node with the highest key.
func (t *Tree[K]) Last() (Handle, bool) {
	return t.found(t.rightmost(t.root))
}

// Next returns the in-order successor of h, climbing parent links when h
// has no right subtree. It panics if h is stale.
func (t *Tree[K]) Next(h Handle) (Handle, bool) {
	id := t.resolve(h)
	if r := t.n(id).right; r != 0 {
		return t.found(t.leftmost(r))
	}
	for {
		p := t.n(id).parent
		if p == 0 || t.n(p).right != id {
			return t.found(p)
		}
		id = p
	}
}

// Prev returns the in-order predecessor of h. It panics if h is stale.
func (t *Tree[K]) Prev(h Handle) (Handle, bool) {
	id := t.resolve(h)
	if l := t.n(id).left; l != 0 {
		return t.found(t.rightmost(l))
	}
	for {
		p := t.n(id).parent
		if p == 0 || t.n(p).left != id {
			return t.found(p)
		}
		id = p
	}
}
