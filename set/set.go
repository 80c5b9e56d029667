// Package set is an ordered set of unique keys kept in an AVL tree.
//
// Iterators reference tree nodes directly and advance by following parent
// links, so they stay valid while other keys are inserted or removed. An
// iterator whose own key has been removed is stale: dereferencing or
// advancing it panics.
//
// A Set must not be copied by value; use Clone.
package set

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/ddirect/orderedset"
	"github.com/ddirect/orderedset/internal/avltree"
)

type Set[K orderedset.Key] struct {
	t avltree.Tree[K]
}

func New[K orderedset.Key]() *Set[K] {
	return new(Set[K])
}

// Of returns a set holding keys, duplicates collapsed.
func Of[K orderedset.Key](keys ...K) *Set[K] {
	s := New[K]()
	for _, k := range keys {
		s.Insert(k)
	}
	return s
}

// Insert adds k, reporting whether it was not already present.
func (s *Set[K]) Insert(k K) bool {
	_, added := s.t.Insert(k)
	return added
}

// Delete removes k, reporting whether it was present.
func (s *Set[K]) Delete(k K) bool {
	return s.t.Delete(k)
}

// Erase removes the key referenced by it and returns an iterator to the
// following key. it must not be used afterwards.
func (s *Set[K]) Erase(it Iterator[K]) Iterator[K] {
	s.own(it)
	if it.end {
		panic(errEraseEnd)
	}
	next := it
	next.Next()
	s.t.Remove(it.h)
	return next
}

func (s *Set[K]) Contains(k K) bool {
	return s.t.Contains(k)
}

func (s *Set[K]) Len() int {
	return s.t.Len()
}

func (s *Set[K]) Empty() bool {
	return s.t.Len() == 0
}

// Height of the underlying tree, zero when empty.
func (s *Set[K]) Height() int {
	return s.t.Height()
}

func (s *Set[K]) Clear() {
	s.t.Clear()
}

// Clone returns a deep copy of s.
func (s *Set[K]) Clone() *Set[K] {
	c := New[K]()
	c.t.CopyFrom(&s.t)
	return c
}

// Assign replaces the content of s with a deep copy of o. Iterators on s
// become stale.
func (s *Set[K]) Assign(o *Set[K]) {
	s.t.CopyFrom(&o.t)
}

// Equal reports whether both sets hold the same keys.
func (s *Set[K]) Equal(o *Set[K]) bool {
	if s.Len() != o.Len() {
		return false
	}
	a, b := s.Begin(), o.Begin()
	for !a.AtEnd() {
		if a.Key() != b.Key() {
			return false
		}
		a.Next()
		b.Next()
	}
	return true
}

// Values iterates over the keys in ascending order.
func (s *Set[K]) Values() iter.Seq[K] {
	return func(yield func(K) bool) {
		for it := s.Begin(); !it.AtEnd(); it.Next() {
			if !yield(it.Key()) {
				return
			}
		}
	}
}

// Backward iterates over the keys in descending order.
func (s *Set[K]) Backward() iter.Seq[K] {
	return func(yield func(K) bool) {
		h, ok := s.t.Last()
		for ok {
			if !yield(s.t.Key(h)) {
				return
			}
			h, ok = s.t.Prev(h)
		}
	}
}

func (s *Set[K]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for k := range s.Values() {
		if b.Len() > 1 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, k)
	}
	b.WriteByte('}')
	return b.String()
}

// WriteGraphviz dumps the tree structure for debugging.
func (s *Set[K]) WriteGraphviz(w io.Writer) error {
	return s.t.WriteDot(w)
}

// Check verifies the tree invariants.
func (s *Set[K]) Check() error {
	return s.t.Check()
}
