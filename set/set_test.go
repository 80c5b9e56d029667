package set_test

import (
	"bytes"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/ddirect/orderedset/set"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var values = []int{20, 10, 30, 5, 14, 26, 40, 2, 7, 12, 19, 21, 28, 35, 50, 1, 6, 8, 11, 13, 17, 24, 27, 29}

func sorted(s []int) []int {
	c := slices.Clone(s)
	slices.Sort(c)
	return c
}

func collect(s *set.Set[int]) []int {
	res := []int{}
	for it := s.Begin(); !it.Equal(s.End()); it.Next() {
		res = append(res, it.Key())
	}
	return res
}

func Test_Empty(t *testing.T) {
	var s set.Set[int]
	assert.True(t, s.Empty())
	assert.Equal(t, 0, s.Len())
	assert.True(t, s.Begin().Equal(s.End()))
	assert.True(t, s.Begin().AtEnd())
	assert.False(t, s.Contains(0))
	assert.Equal(t, "{}", s.String())
}

func Test_InsertErase(t *testing.T) {
	s := set.New[int]()
	for i, v := range values {
		assert.True(t, s.Insert(v))
		assert.Equal(t, i+1, s.Len())
		assert.Equal(t, sorted(values[:i+1]), collect(s))
		require.NoError(t, s.Check())
	}

	for i, v := range values {
		assert.True(t, s.Delete(v))
		assert.Equal(t, len(values)-i-1, s.Len())
		assert.Equal(t, sorted(values[i+1:]), collect(s))
		require.NoError(t, s.Check())
	}
	assert.True(t, s.Empty())
}

func Test_EraseValue(t *testing.T) {
	s := set.Of(values...)
	remaining := slices.Clone(values)
	for _, v := range []int{29, 2, 20, 14} {
		assert.True(t, s.Delete(v))
		remaining = slices.DeleteFunc(remaining, func(x int) bool { return x == v })
		for _, r := range remaining {
			assert.True(t, s.Contains(r))
		}
		assert.False(t, s.Contains(v))
		assert.Equal(t, len(remaining), s.Len())
	}
}

func Test_IdempotentInsert(t *testing.T) {
	s := set.Of(values...)
	before := collect(s)
	assert.False(t, s.Insert(14))
	assert.Equal(t, len(values), s.Len())
	assert.Equal(t, before, collect(s))
}

func Test_EraseAbsent(t *testing.T) {
	s := set.Of(values...)
	assert.False(t, s.Delete(1000))
	assert.Equal(t, len(values), s.Len())
	assert.Equal(t, sorted(values), collect(s))
}

func Test_RoundTrip(t *testing.T) {
	for range 20 {
		var in []int
		for range rand.IntN(200) + 1 {
			in = append(in, rand.IntN(100))
		}
		s := set.Of(in...)
		want := slices.Compact(sorted(in))
		assert.Equal(t, len(want), s.Len())
		assert.Equal(t, want, slices.Collect(s.Values()))
		require.NoError(t, s.Check())
	}
}

func Test_Iterator(t *testing.T) {
	s := set.Of(5, 2, 3, 4, 1, 10, 20)

	it := s.Begin()
	assert.Equal(t, 1, it.Key())
	assert.True(t, it.Equal(s.Begin()))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 10, 20}, collect(s))

	// postfix: copy, then advance
	old := it
	it.Next()
	assert.Equal(t, 1, old.Key())
	assert.Equal(t, 2, it.Key())
	it.Next()
	assert.Equal(t, 3, it.Key())
	assert.False(t, it.Equal(old))

	assert.Equal(t, []int{20, 10, 5, 4, 3, 2, 1}, slices.Collect(s.Backward()))
}

func Test_ValuesBreak(t *testing.T) {
	s := set.Of(values...)
	var got []int
	for v := range s.Values() {
		if v > 7 {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2, 5, 6, 7}, got)

	got = got[:0]
	for v := range s.Backward() {
		if v < 35 {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{50, 40, 35}, got)
}

func Test_Find(t *testing.T) {
	s := set.Of(values...)

	it := s.Find(50)
	require.False(t, it.AtEnd())
	assert.Equal(t, 50, it.Key())
	it.Next()
	assert.True(t, it.Equal(s.End()))

	for _, v := range values {
		it := s.Find(v)
		require.False(t, it.AtEnd())
		assert.Equal(t, v, it.Key())
	}
	assert.True(t, s.Find(1000).Equal(s.End()))
}

func Test_Bounds(t *testing.T) {
	s := set.Of(values...)

	assert.Equal(t, 14, s.LowerBound(14).Key())
	assert.Equal(t, 17, s.UpperBound(14).Key())
	assert.Equal(t, 17, s.LowerBound(15).Key())
	assert.Equal(t, 1, s.LowerBound(0).Key())
	assert.Equal(t, 1, s.UpperBound(0).Key())
	assert.True(t, s.LowerBound(51).AtEnd())
	assert.True(t, s.UpperBound(50).AtEnd())
	assert.Equal(t, 50, s.LowerBound(50).Key())
}

func Test_EraseIterator(t *testing.T) {
	s := set.New[int]()
	for _, v := range values {
		s.Insert(v)
	}

	remaining := slices.Clone(values)
	for len(remaining) > 0 {
		k := remaining[0]
		it := s.Find(k)
		next := s.Erase(it)
		remaining = remaining[1:]

		assert.Equal(t, len(remaining), s.Len())
		assert.Equal(t, sorted(remaining), collect(s))
		require.NoError(t, s.Check())

		// the returned iterator sits on the successor of the erased key
		assert.True(t, next.Equal(s.UpperBound(k)))
		if !next.AtEnd() {
			assert.True(t, next.Valid())
			assert.Greater(t, next.Key(), k)
		}
		assert.False(t, it.Valid())
	}
	assert.True(t, s.Empty())
}

func Test_EraseWhileIterating(t *testing.T) {
	s := set.New[int]()
	for k := range 100 {
		s.Insert(k)
	}
	for it := s.Begin(); !it.AtEnd(); {
		if it.Key()%3 == 0 {
			it = s.Erase(it)
		} else {
			it.Next()
		}
	}
	for k := range s.Values() {
		assert.NotZero(t, k%3)
	}
	assert.Equal(t, 66, s.Len())
	assert.NoError(t, s.Check())
}

func Test_StaleIterator(t *testing.T) {
	s := set.Of(1, 2, 3)
	it := s.Find(2)
	other := s.Find(3)
	s.Delete(2)

	assert.False(t, it.Valid())
	assert.PanicsWithError(t, "set: iterator references a removed key", func() { it.Key() })
	assert.Panics(t, func() { it.Next() })
	assert.Panics(t, func() { s.Erase(it) })

	// slot reuse must not revive the old iterator
	s.Insert(7)
	assert.False(t, it.Valid())
	assert.True(t, other.Valid())
	assert.Equal(t, 3, other.Key())
}

func Test_EndIterator(t *testing.T) {
	s := set.Of(1)
	end := s.End()
	assert.False(t, end.Valid())
	assert.PanicsWithError(t, "set: dereferencing the end iterator", func() { end.Key() })
	assert.PanicsWithError(t, "set: advancing the end iterator", func() { end.Next() })
	assert.PanicsWithError(t, "set: erasing the end iterator", func() { s.Erase(end) })

	var zero set.Iterator[int]
	assert.True(t, zero.AtEnd())
	assert.PanicsWithError(t, "set: iterator belongs to another set", func() { s.Erase(zero) })
	assert.Panics(t, func() { s.Erase(set.Of(1).Begin()) })
}

func Test_Equal(t *testing.T) {
	a := set.Of(values...)
	b := set.New[int]()
	for _, v := range slices.Backward(values) {
		b.Insert(v)
	}
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))

	b.Delete(50)
	assert.False(t, a.Equal(b))
	b.Insert(51)
	assert.False(t, a.Equal(b))
	assert.True(t, set.New[int]().Equal(set.Of[int]()))
}

func Test_CloneAssign(t *testing.T) {
	a := set.Of(values...)
	b := a.Clone()
	require.NoError(t, b.Check())
	assert.True(t, a.Equal(b))

	b.Insert(100)
	a.Delete(20)
	assert.True(t, b.Contains(20))
	assert.False(t, a.Contains(100))

	c := set.Of(-1, -2)
	it := c.Begin()
	c.Assign(a)
	assert.True(t, c.Equal(a))
	assert.False(t, it.Valid())
	require.NoError(t, c.Check())

	c.Assign(c)
	assert.True(t, c.Equal(a))

	c.Clear()
	assert.True(t, c.Empty())
	assert.Equal(t, len(values)-1, a.Len())
}

func Test_String(t *testing.T) {
	assert.Equal(t, "{1 2 3 10}", set.Of(10, 3, 2, 1, 3).String())
	assert.Equal(t, "{a b}", set.Of("b", "a").String())
}

func Test_Graphviz(t *testing.T) {
	var b bytes.Buffer
	s := set.Of(values...)
	require.NoError(t, s.WriteGraphviz(&b))
	out := b.String()
	assert.True(t, strings.HasPrefix(out, "digraph BST {\n"))
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.Equal(t, len(values)-1, strings.Count(out, "[label=left]")+strings.Count(out, "[label=right]"))
	assert.Equal(t, len(values)-1, strings.Count(out, "style=dashed"))
	assert.Contains(t, out, `label="50\nheight=1"`)
}

func Test_Sequential(t *testing.T) {
	const n = 100000
	s := set.New[int]()
	for i := range n {
		s.Insert(i)
	}
	assert.Equal(t, n, s.Len())
	require.NoError(t, s.Check())
	i := 0
	for k := range s.Values() {
		require.Equal(t, i, k)
		i++
	}
}
