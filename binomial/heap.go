package binomial

import (
	"fmt"
	"io"
	"iter"
	"slices"

	"github.com/google/uuid"
	"github.com/navijation/njheap/util"
	"github.com/pkg/errors"
)

// Heap is a binomial forest heap: an ordered sequence of binomial tree roots,
// at most one per order between operations, with a cached pointer to the root
// holding the least key. Ordering is defined by a three-way comparator
// captured at construction; keys that compare equal are equivalent and may be
// returned in either order.
//
// A Heap is not safe for concurrent use; callers sharing one across
// goroutines must serialize access themselves.
type Heap[T any] struct {
	compare func(a, b T) int

	// roots is kept ascending by tree order
	roots []*node[T]
	min   *node[T]
	size  int
	id    uuid.UUID
}

func New[T any](compare func(a, b T) int) *Heap[T] {
	return &Heap[T]{
		compare: compare,
		id:      uuid.New(),
	}
}

// ID identifies this heap. It is stable across merges: the receiver keeps its
// identity while the donor is emptied.
func (me *Heap[T]) ID() uuid.UUID {
	return me.id
}

func (me *Heap[T]) Size() int {
	return me.size
}

func (me *Heap[T]) Empty() bool {
	return me.size == 0
}

// Front returns the least key without removing it.
func (me *Heap[T]) Front() (out T, _ error) {
	if me.min == nil {
		return out, ErrEmptyHeap
	}
	return me.min.key(), nil
}

// Min is Front under its other common name.
func (me *Heap[T]) Min() (T, error) {
	return me.Front()
}

// Find returns a handle to the first element whose key is equivalent to key,
// scanning trees in root order and depth-first within each tree. This is the
// slow path: linear in heap size. Prefer keeping the handle Insert returned.
func (me *Heap[T]) Find(key T) (Handle[T], error) {
	for _, root := range me.roots {
		found := root.search(key, me.compare)
		if n, ok := found.Unpack(); ok {
			return Handle[T]{elem: n.elem}, nil
		}
	}
	return Handle[T]{}, ErrNotFound
}

// Insert adds key as a fresh order-0 tree at the front of the root sequence
// and collapses the carry chain the collision may start. Amortized O(1).
func (me *Heap[T]) Insert(key T) Handle[T] {
	fresh := newNode(key)
	me.roots = slices.Insert(me.roots, 0, fresh)
	if me.min == nil || me.compare(fresh.key(), me.min.key()) < 0 {
		me.min = fresh
	}
	me.size++
	me.fastZip()
	return Handle[T]{elem: fresh.elem}
}

// MultiInsert inserts every key and returns one handle per key, in input
// order.
func (me *Heap[T]) MultiInsert(keys ...T) []Handle[T] {
	out := make([]Handle[T], 0, len(keys))
	for _, key := range keys {
		out = append(out, me.Insert(key))
	}
	return out
}

// Extract removes and returns the least key.
func (me *Heap[T]) Extract() (out T, _ error) {
	if me.min == nil {
		return out, ErrEmptyHeap
	}
	return me.extractRoot(me.min), nil
}

// Merge moves every element of other into this heap: the donor's roots are
// spliced in by order, equal-order collisions are zipped away, and the new
// minimum is the lesser of the two former minimums. other is reset to a valid
// empty heap with the same comparator and identity. Both heaps must order
// keys the same way.
func (me *Heap[T]) Merge(other *Heap[T]) {
	if other == nil || other == me {
		return
	}
	me.mergeRoots(other.roots)
	me.zip()
	me.setMin()
	me.size += other.size

	other.roots = nil
	other.min = nil
	other.size = 0
}

// DecreaseKey lowers the key of the element h refers to and restores heap
// order by swapping the element up its ancestor chain. Tree shape never
// changes, so the forest invariant is untouched. newKey must not order after
// the element's current key.
func (me *Heap[T]) DecreaseKey(h Handle[T], newKey T) error {
	n, err := me.liveNode(h)
	if err != nil {
		return err
	}
	if me.compare(newKey, n.elem.key) > 0 {
		return errors.WithMessage(ErrInvalidArgument, "new key orders after current key")
	}

	n.elem.key = newKey
	top := me.bubbleUp(n, false)
	if me.compare(top.key(), me.min.key()) < 0 {
		me.min = top
	}
	return nil
}

// Remove deletes exactly the element h refers to, regardless of key, and
// returns the key it held. The element is hoisted to its tree root as if its
// key were below every other, then extracted through the same
// splice-and-zip path Extract uses. Equivalent elements elsewhere in the
// heap are unaffected.
func (me *Heap[T]) Remove(h Handle[T]) (out T, _ error) {
	n, err := me.liveNode(h)
	if err != nil {
		return out, err
	}
	out = n.key()
	root := me.bubbleUp(n, true)
	me.extractRoot(root)
	return out, nil
}

// Clone deep-copies the heap. The copy shares nothing with the original, so
// mutating one never affects the other. Handles keep referring to the heap
// they were issued by; the clone gets a fresh identity.
func (me *Heap[T]) Clone() *Heap[T] {
	out := New[T](me.compare)
	out.size = me.size
	out.roots = util.CloneSliceFunc(me.roots, func(root *node[T]) *node[T] {
		return root.clone()
	})
	out.setMin()
	return out
}

// Take transfers the heap's contents to a new heap, leaving the receiver a
// valid empty heap with the same comparator and identity. Handles follow
// their elements into the returned heap.
func (me *Heap[T]) Take() *Heap[T] {
	out := &Heap[T]{
		compare: me.compare,
		roots:   me.roots,
		min:     me.min,
		size:    me.size,
		id:      uuid.New(),
	}
	me.roots = nil
	me.min = nil
	me.size = 0
	return out
}

// Keys iterates over every contained key, visiting trees in root order and
// each tree depth-first. The heap must not be mutated during iteration.
func (me *Heap[T]) Keys() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, root := range me.roots {
			if !root.yieldKeys(yield) {
				return
			}
		}
	}
}

// Dump writes an indented rendering of the forest, one tree per root in
// sequence order.
func (me *Heap[T]) Dump(w io.Writer) {
	for _, root := range me.roots {
		fmt.Fprintf(w, "- order %d:\n", root.order())
		root.dump(w, 4)
	}
}

// extractRoot removes one root's element from the forest: the root leaves the
// sequence, each of its children becomes a root of its own, and the forest is
// renormalized.
func (me *Heap[T]) extractRoot(root *node[T]) T {
	idx := slices.Index(me.roots, root)
	me.roots = slices.Delete(me.roots, idx, idx+1)

	children := root.children
	for _, child := range children {
		child.parent = nil
	}
	out := root.key()
	root.detach()

	me.mergeRoots(children)
	me.zip()
	me.setMin()
	me.size--
	return out
}

// bubbleUp moves n's element toward the root of its tree by swapping elements
// with the parent while the child's key orders first, or unconditionally to
// the top when force is set. Returns the node finally holding the element.
func (me *Heap[T]) bubbleUp(n *node[T], force bool) *node[T] {
	for n.parent != nil && (force || me.compare(n.elem.key, n.parent.elem.key) < 0) {
		parent := n.parent
		n.elem, parent.elem = parent.elem, n.elem
		n.elem.node = n
		parent.elem.node = parent
		n = parent
	}
	return n
}

// setMin rescans the root sequence for the least key. Linear in the number of
// roots; used whenever the root set changes wholesale.
func (me *Heap[T]) setMin() {
	me.min = nil
	for _, root := range me.roots {
		if me.min == nil || me.compare(root.key(), me.min.key()) < 0 {
			me.min = root
		}
	}
}

func (me *Heap[T]) liveNode(h Handle[T]) (*node[T], error) {
	if h.elem == nil || h.elem.node == nil {
		return nil, ErrStaleHandle
	}
	return h.elem.node, nil
}
