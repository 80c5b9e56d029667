package avltree

// Delete removes key from the tree, reporting whether it was present.
func (t *Tree[K]) Delete(key K) bool {
	id := t.find(key)
	if id == 0 {
		return false
	}
	t.remove(id)
	return true
}

// Remove deletes the node referenced by h; it panics if h is stale.
func (t *Tree[K]) Remove(h Handle) {
	t.remove(t.resolve(h))
}

func (t *Tree[K]) remove(id uint32) {
	z := t.n(id)
	var start uint32 // lowest node whose subtree changed

	if z.left == 0 || z.right == 0 {
		child := z.left
		if child == 0 {
			child = z.right
		}
		t.replaceChild(z.parent, id, child)
		if child != 0 {
			t.n(child).parent = z.parent
		}
		start = z.parent
	} else {
		// the in-order successor has no left child: unlink it from the
		// right subtree, then move the node itself into z's position
		s := t.leftmost(z.right)
		sn := t.n(s)
		if sn.parent == id {
			start = s
		} else {
			sp := sn.parent
			t.n(sp).left = sn.right
			if sn.right != 0 {
				t.n(sn.right).parent = sp
			}
			sn.right = z.right
			t.n(z.right).parent = s
			start = sp
		}
		sn.left = z.left
		t.n(z.left).parent = s
		sn.parent = z.parent
		sn.height = z.height
		t.replaceChild(z.parent, id, s)
	}

	t.release(id)
	t.count--

	for p := start; p != 0; {
		p = t.n(t.rebalanceRemoved(p)).parent
	}
}

// rebalanceRemoved restores the balance of id after a removal below it.
// The removed key is no longer available so the cases are told apart by
// the balance of the heavier child. It returns the root of the subtree.
func (t *Tree[K]) rebalanceRemoved(id uint32) uint32 {
	t.fixHeight(id)
	n := t.n(id)
	switch bal := t.balance(id); {
	case bal > 1 && t.balance(n.left) >= 0:
		return t.rotateRight(id)
	case bal > 1:
		t.rotateLeft(n.left)
		return t.rotateRight(id)
	case bal < -1 && t.balance(n.right) <= 0:
		return t.rotateLeft(id)
	case bal < -1:
		t.rotateRight(n.right)
		return t.rotateLeft(id)
	}
	return id
}
