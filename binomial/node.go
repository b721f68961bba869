package binomial

import (
	"fmt"
	"io"

	"github.com/navijation/njheap/util"
)

// element is the unit of identity a Handle refers to. Decrease-key bubbling
// moves keys between nodes without restructuring trees, so the key lives
// behind one extra indirection; element and its current node point at each
// other.
type element[T any] struct {
	key  T
	node *node[T] // nil once the element has been extracted or removed
}

// node is a vertex of a binomial tree. Its order is len(children); children
// are kept in promotion order, so children[i] roots a subtree of order i.
type node[T any] struct {
	elem     *element[T]
	children []*node[T]
	parent   *node[T]
}

func newNode[T any](key T) *node[T] {
	out := &node[T]{}
	out.elem = &element[T]{key: key, node: out}
	return out
}

func (me *node[T]) order() int {
	return len(me.children)
}

func (me *node[T]) key() T {
	return me.elem.key
}

// promote combines two trees of equal order into one tree of the next order.
// The root that orders first under compare survives; the other becomes its
// last child.
func (me *node[T]) promote(other *node[T], compare func(a, b T) int) *node[T] {
	winner, loser := me, other
	if compare(loser.key(), winner.key()) < 0 {
		winner, loser = loser, winner
	}
	loser.parent = winner
	winner.children = append(winner.children, loser)
	return winner
}

// search returns the first node in this subtree whose key is equivalent to
// target under compare. Depth-first and linear in subtree size; Find
// documents this as the slow path.
func (me *node[T]) search(target T, compare func(a, b T) int) util.Optional[*node[T]] {
	if compare(target, me.key()) == 0 {
		return util.Some(me)
	}
	for _, child := range me.children {
		if found := child.search(target, compare); found.IsSome() {
			return found
		}
	}
	return util.None[*node[T]]()
}

// clone deep-copies this subtree. Copies get fresh elements, so handles into
// the original keep referring to the original.
func (me *node[T]) clone() *node[T] {
	out := newNode(me.key())
	out.children = util.CloneSliceFunc(me.children, func(child *node[T]) *node[T] {
		childCopy := child.clone()
		childCopy.parent = out
		return childCopy
	})
	return out
}

// detach releases the node's element and bookkeeping, making handles to the
// element detectably stale. Children must already have been spliced away.
func (me *node[T]) detach() {
	me.elem.node = nil
	me.elem = nil
	me.parent = nil
	me.children = nil
}

func (me *node[T]) yieldKeys(yield func(T) bool) bool {
	if !yield(me.key()) {
		return false
	}
	for _, child := range me.children {
		if !child.yieldKeys(yield) {
			return false
		}
	}
	return true
}

func (me *node[T]) dump(w io.Writer, indent int) {
	fmt.Fprintf(w, "%*s%v\n", indent, "", me.key())
	for _, child := range me.children {
		child.dump(w, indent+2)
	}
}
