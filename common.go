package orderedset

import "cmp"

// Key is satisfied by the element types an ordered set can hold.
type Key interface {
	cmp.Ordered
}
