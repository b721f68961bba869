package heapsort

import "github.com/navijation/njheap/binomial"

// Sort sorts items in place into ascending comparator order by loading them
// into a binomial heap and extracting them back out. O(n log n), not stable.
func Sort[T any](items []T, compare func(a, b T) int) {
	heap := binomial.New(compare)
	heap.MultiInsert(items...)
	for i := range items {
		items[i], _ = heap.Extract()
	}
}
