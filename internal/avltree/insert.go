package avltree

// Insert adds key to the tree. It returns the handle of the node holding
// key and whether the node was created; inserting a present key changes
// nothing.
func (t *Tree[K]) Insert(key K) (Handle, bool) {
	var parent uint32
	cur := t.root
	for cur != 0 {
		n := t.n(cur)
		switch {
		case key < n.key:
			parent, cur = cur, n.left
		case key > n.key:
			parent, cur = cur, n.right
		default:
			return t.handle(cur), false
		}
	}

	id := t.alloc(key, parent)
	if parent == 0 {
		t.root = id
	} else if p := t.n(parent); key < p.key {
		p.left = id
	} else {
		p.right = id
	}
	t.count++

	for p := parent; p != 0; {
		p = t.n(t.rebalanceInserted(p, key)).parent
	}
	return t.handle(id), true
}

// rebalanceInserted restores the balance of id after key was inserted
// below it, using the position of key to tell straight from zig-zag
// imbalance. It returns the root of the subtree.
func (t *Tree[K]) rebalanceInserted(id uint32, key K) uint32 {
	t.fixHeight(id)
	n := t.n(id)
	switch bal := t.balance(id); {
	case bal > 1 && key < t.n(n.left).key: // left left
		return t.rotateRight(id)
	case bal > 1: // left right
		t.rotateLeft(n.left)
		return t.rotateRight(id)
	case bal < -1 && key > t.n(n.right).key: // right right
		return t.rotateLeft(id)
	case bal < -1: // right left
		t.rotateRight(n.right)
		return t.rotateLeft(id)
	}
	return id
}
