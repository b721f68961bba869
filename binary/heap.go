package binary

import (
	"container/heap"

	"github.com/navijation/njheap/util"
)

// Heap is a comparator-parameterized binary heap over a contiguous slice,
// wrapping the standard library's container/heap. It is the baseline the
// binomial heap's benchmarks compare against.
type Heap[T any] struct {
	wrapper heapWrapper[T]
}

// NewHeap heapifies items in place in O(n), the bulk-build counterpart of
// repeated Push.
func NewHeap[T any](comparator func(a, b T) int, items ...T) Heap[T] {
	out := Heap[T]{
		wrapper: heapWrapper[T]{
			comparator: comparator,
			items:      items,
		},
	}
	heap.Init(&out.wrapper)
	return out
}

func (me *Heap[T]) Size() int {
	return len(me.wrapper.items)
}

func (me *Heap[T]) Empty() bool {
	return len(me.wrapper.items) == 0
}

// Peek returns the least item; it panics on an empty heap.
func (me *Heap[T]) Peek() T {
	return me.wrapper.items[0]
}

// TryPeek returns the least item, or None on an empty heap.
func (me *Heap[T]) TryPeek() util.Optional[T] {
	if me.Empty() {
		return util.None[T]()
	}
	return util.Some(me.wrapper.items[0])
}

func (me *Heap[T]) Pop() T {
	return heap.Pop(&me.wrapper).(T)
}

func (me *Heap[T]) Push(value T) {
	heap.Push(&me.wrapper, value)
}
