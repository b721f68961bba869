package binomial

// fastZip collapses the carry chain a single insertion can start at the front
// of the root sequence: the fresh order-0 root colliding with an existing
// order-0 root, cascading like a binary counter increment, stopping at the
// first order gap.
func (me *Heap[T]) fastZip() {
	for len(me.roots) >= 2 && me.roots[0].order() == me.roots[1].order() {
		a, b := me.roots[0], me.roots[1]
		merged := a.promote(b, me.compare)
		if me.min == a || me.min == b {
			me.min = merged
		}
		me.roots[1] = merged
		me.roots = me.roots[1:]
	}
}

// zip fully normalizes the root sequence after an extract or merge: repairs
// out-of-order neighbors, then promotes adjacent equal-order roots until at
// most one tree of each order remains. When three consecutive roots share an
// order, the leading one is skipped so the trailing pair combines first,
// keeping the sequence ascending. After a promotion the merged tree is
// re-examined against its new neighbor, so carries cascade.
func (me *Heap[T]) zip() {
	i := 0
	for i+1 < len(me.roots) {
		a, b := me.roots[i], me.roots[i+1]
		switch {
		case a.order() < b.order():
			i++
		case a.order() > b.order():
			me.roots[i], me.roots[i+1] = b, a
			if i > 0 {
				i--
			}
		case i+2 < len(me.roots) && me.roots[i+2].order() == a.order():
			i++
		default:
			merged := a.promote(b, me.compare)
			if me.min == a || me.min == b {
				me.min = merged
			}
			me.roots[i] = merged
			me.roots = append(me.roots[:i+1], me.roots[i+2:]...)
		}
	}
}

// mergeRoots splices another ascending-order root sequence into this one,
// keeping the combined sequence ascending. Equal orders interleave with the
// receiver's tree first; zip resolves the collisions.
func (me *Heap[T]) mergeRoots(other []*node[T]) {
	if len(other) == 0 {
		return
	}
	merged := make([]*node[T], 0, len(me.roots)+len(other))
	i, j := 0, 0
	for i < len(me.roots) && j < len(other) {
		if me.roots[i].order() <= other[j].order() {
			merged = append(merged, me.roots[i])
			i++
		} else {
			merged = append(merged, other[j])
			j++
		}
	}
	merged = append(merged, me.roots[i:]...)
	merged = append(merged, other[j:]...)
	me.roots = merged
}
