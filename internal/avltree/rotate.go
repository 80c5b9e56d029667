package avltree

// |                                         |
// |    x                             y      |
// |   / \      rotateLeft(x)        / \     |
// |  T1   y       ------->         x   T3   |
// |      / \                      / \       |
// |     T2  T3                   T1  T2     |
// |                                         |
// rotateLeft requires x to have a right child; it returns the new subtree root.
func (t *Tree[K]) rotateLeft(x uint32) uint32 {
	xn := t.n(x)
	y := xn.right
	yn := t.n(y)
	t2 := yn.left
	p := xn.parent

	yn.left = x
	xn.right = t2
	if t2 != 0 {
		t.n(t2).parent = x
	}
	yn.parent = p
	xn.parent = y
	t.replaceChild(p, x, y)

	// y's height depends on x's
	t.fixHeight(x)
	t.fixHeight(y)
	return y
}

// |                                         |
// |      x                         y        |
// |     / \     rotateRight(x)    / \       |
// |    y   T3      ------->      T1   x     |
// |   / \                            / \    |
// |  T1  T2                         T2  T3  |
// |                                         |
// rotateRight requires x to have a left child; it returns the new subtree root.
func (t *Tree[K]) rotateRight(x uint32) uint32 {
	xn := t.n(x)
	y := xn.left
	yn := t.n(y)
	t2 := yn.right
	p := xn.parent

	yn.right = x
	xn.left = t2
	if t2 != 0 {
		t.n(t2).parent = x
	}
	yn.parent = p
	xn.parent = y
	t.replaceChild(p, x, y)

	t.fixHeight(x)
	t.fixHeight(y)
	return y
}
