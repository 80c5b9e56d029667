package set

import (
	"errors"

	"github.com/ddirect/orderedset"
	"github.com/ddirect/orderedset/internal/avltree"
)

var (
	errDerefEnd  = errors.New("set: dereferencing the end iterator")
	errAdvance   = errors.New("set: advancing the end iterator")
	errEraseEnd  = errors.New("set: erasing the end iterator")
	errStale     = errors.New("set: iterator references a removed key")
	errOtherTree = errors.New("set: iterator belongs to another set")
)

// Iterator is a forward cursor over a set: either positioned on a key or
// at the end. The zero value is an end iterator of no set.
type Iterator[K orderedset.Key] struct {
	t   *avltree.Tree[K]
	h   avltree.Handle
	end bool
}

func (s *Set[K]) iterator(h avltree.Handle, ok bool) Iterator[K] {
	if !ok {
		return s.End()
	}
	return Iterator[K]{t: &s.t, h: h}
}

func (s *Set[K]) own(it Iterator[K]) {
	if it.t != &s.t {
		panic(errOtherTree)
	}
}

// Begin returns an iterator to the lowest key, or End if the set is empty.
func (s *Set[K]) Begin() Iterator[K] {
	return s.iterator(s.t.First())
}

func (s *Set[K]) End() Iterator[K] {
	return Iterator[K]{t: &s.t, end: true}
}

// Find returns an iterator to k, or End if k is not present.
func (s *Set[K]) Find(k K) Iterator[K] {
	return s.iterator(s.t.Find(k))
}

// LowerBound returns an iterator to the first key not less than k.
func (s *Set[K]) LowerBound(k K) Iterator[K] {
	return s.iterator(s.t.LowerBound(k))
}

// UpperBound returns an iterator to the first key greater than k.
func (s *Set[K]) UpperBound(k K) Iterator[K] {
	return s.iterator(s.t.UpperBound(k))
}

func (it Iterator[K]) AtEnd() bool {
	return it.t == nil || it.end
}

// Valid reports whether the iterator can be dereferenced.
func (it Iterator[K]) Valid() bool {
	return !it.AtEnd() && it.t.Live(it.h)
}

func (it Iterator[K]) Key() K {
	if it.AtEnd() {
		panic(errDerefEnd)
	}
	if !it.t.Live(it.h) {
		panic(errStale)
	}
	return it.t.Key(it.h)
}

// Next moves the iterator to the following key, or to the end.
func (it *Iterator[K]) Next() {
	if it.AtEnd() {
		panic(errAdvance)
	}
	if !it.t.Live(it.h) {
		panic(errStale)
	}
	h, ok := it.t.Next(it.h)
	it.h, it.end = h, !ok
}

// Equal reports whether both iterators are at the end, or both reference
// the same node.
func (it Iterator[K]) Equal(o Iterator[K]) bool {
	if it.AtEnd() || o.AtEnd() {
		return it.AtEnd() && o.AtEnd()
	}
	return it.t == o.t && it.h == o.h
}
