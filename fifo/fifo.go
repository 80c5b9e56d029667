package fifo

type Fifo[T any] struct {
	s    []T
	head int
}

func (f *Fifo[T]) Enqueue(t T) {
	f.s = append(f.s, t)
}

func (f *Fifo[T]) Dequeue() (t T, ok bool) {
	if f.head < len(f.s) {
		t = f.s[f.head]
		var zero T
		f.s[f.head] = zero
		f.head++
		ok = true
		if f.head == len(f.s) {
			// drained: rewind so the backing array is reused
			f.s = f.s[:0]
			f.head = 0
		}
	}
	return
}

func (f *Fifo[T]) Len() int {
	return len(f.s) - f.head
}

func (f *Fifo[T]) Clear() {
	clear(f.s)
	f.s = f.s[:0]
	f.head = 0
}

// Clone returns an independent copy holding the queued items in the same order.
func (f *Fifo[T]) Clone() Fifo[T] {
	return Fifo[T]{s: append([]T(nil), f.s[f.head:]...)}
}
