package binomial

// Handle is an opaque reference to one element instance in a heap, issued by
// Insert and Find. It stays attached to its element across decrease-key
// bubbling and merges, and goes stale once the element is extracted or
// removed; stale use surfaces ErrStaleHandle rather than corrupting the
// forest. A handle must only be passed back to the heap that currently owns
// its element.
type Handle[T any] struct {
	elem *element[T]
}

// Key returns the element's current key.
func (me Handle[T]) Key() (out T, _ error) {
	if !me.Valid() {
		return out, ErrStaleHandle
	}
	return me.elem.key, nil
}

// Valid reports whether the handle still refers to a live element.
func (me Handle[T]) Valid() bool {
	return me.elem != nil && me.elem.node != nil
}
