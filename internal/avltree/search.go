package avltree

func (t *Tree[K]) find(key K) uint32 {
	cur := t.root
	for cur != 0 {
		n := t.n(cur)
		switch {
		case key < n.key:
			cur = n.left
		case key > n.key:
			cur = n.right
		default:
			return cur
		}
	}
	return 0
}

func (t *Tree[K]) Contains(key K) bool {
	return t.find(key) != 0
}

// Find returns the handle of the node holding key.
func (t *Tree[K]) Find(key K) (Handle, bool) {
	return t.found(t.find(key))
}

// LowerBound returns the first node whose key is not less than key.
func (t *Tree[K]) LowerBound(key K) (Handle, bool) {
	var cand uint32
	cur := t.root
	for cur != 0 {
		n := t.n(cur)
		if n.key < key {
			cur = n.right
		} else {
			cand, cur = cur, n.left
		}
	}
	return t.found(cand)
}

// UpperBound returns the first node whose key is greater than key.
func (t *Tree[K]) UpperBound(key K) (Handle, bool) {
	var cand uint32
	cur := t.root
	for cur != 0 {
		n := t.n(cur)
		if n.key <= key {
			cur = n.right
		} else {
			cand, cur = cur, n.left
		}
	}
	return t.found(cand)
}

func (t *Tree[K]) found(id uint32) (Handle, bool) {
	if id == 0 {
		return Handle{}, false
	}
	return t.handle(id), true
}
