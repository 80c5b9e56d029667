package avltree

import (
	"errors"
	"fmt"
)

var ErrCorrupt = errors.New("avltree: corrupt tree")

// Check walks the whole tree verifying ordering, heights, balance, parent
// links and the element count.
func (t *Tree[K]) Check() error {
	if t.root != 0 && t.n(t.root).parent != 0 {
		return fmt.Errorf("%w: root %v has a parent", ErrCorrupt, t.n(t.root).key)
	}
	reached := 0
	if _, err := t.check(t.root, 0, nil, nil, &reached); err != nil {
		return err
	}
	if reached != t.count {
		return fmt.Errorf("%w: count %d but %d nodes reachable", ErrCorrupt, t.count, reached)
	}
	return nil
}

func (t *Tree[K]) check(id, parent uint32, lo, hi *K, reached *int) (int32, error) {
	if id == 0 {
		return 0, nil
	}
	if int(id) > len(t.nodes) {
		return 0, fmt.Errorf("%w: link to slot %d outside arena", ErrCorrupt, id)
	}
	n := t.n(id)
	switch {
	case !n.live:
		return 0, fmt.Errorf("%w: released slot %d still linked", ErrCorrupt, id)
	case n.parent != parent:
		return 0, fmt.Errorf("%w: node %v has parent slot %d, expected %d", ErrCorrupt, n.key, n.parent, parent)
	case lo != nil && n.key <= *lo, hi != nil && n.key >= *hi:
		return 0, fmt.Errorf("%w: node %v out of order", ErrCorrupt, n.key)
	}
	*reached++

	lh, err := t.check(n.left, id, lo, &n.key, reached)
	if err != nil {
		return 0, err
	}
	rh, err := t.check(n.right, id, &n.key, hi, reached)
	if err != nil {
		return 0, err
	}
	if h := 1 + max(lh, rh); n.height != h {
		return 0, fmt.Errorf("%w: node %v has height %d, expected %d", ErrCorrupt, n.key, n.height, h)
	}
	if d := lh - rh; d > 1 || d < -1 {
		return 0, fmt.Errorf("%w: node %v unbalanced by %d", ErrCorrupt, n.key, d)
	}
	return n.height, nil
}
