package fibheap

// A ring is a non-empty circular doubly-linked list of siblings (spec.md
// section 4.2, invariant 2). A lone node is a ring of one: its own left
// and right neighbor. These four operations are the only ways any ring
// in this package is ever mutated; every other structural function
// (adopt, cut, meld, consolidate, deep copy) is built from them.
//
// Grounded on other_examples/platinasystems-goes__fibheap.go's
// linkAfter/unlink/addRoot (circular splicing) and on
// storage/brodal/node.go's rogue (detach and self-heal), generalized from
// that file's sentinel-rooted, index-addressed ring to a representative-
// pointer, pointer-addressed ring — the shape
// other_examples/lintang-b-s-navigatorX__fibonacci_heap.go's mergeLists
// already uses for exactly this purpose.

func ringSingleton[K any, V any](n *node[K, V]) {
	n.left = n
	n.right = n
}

// ringInsertRight splices n into at's ring immediately to at's right.
func ringInsertRight[K any, V any](at, n *node[K, V]) {
	n.left = at
	n.right = at.right
	at.right.left = n
	at.right = n
}

// ringRemove detaches n from its ring, leaving n a singleton ring of one.
// It returns a surviving member of the old ring to use as a new anchor,
// or nil if n was the ring's only member.
func ringRemove[K any, V any](n *node[K, V]) *node[K, V] {
	next := n.right
	if next == n {
		return nil
	}
	n.left.right = next
	next.left = n.left
	ringSingleton(n)
	return next
}

// ringConcat merges b's ring into a's ring in O(1) by swapping two pairs
// of sibling pointers. a and b must be representatives of two disjoint
// rings; afterward both point into the single merged ring.
func ringConcat[K any, V any](a, b *node[K, V]) {
	aRight := a.right
	bLeft := b.left
	a.right = b
	b.left = a
	aRight.left = bLeft
	bLeft.right = aRight
}

// ringToSlice collects a ring into a slice, snapshotting membership
// before any caller mutates it mid-walk. Grounded on
// storage/brodal/node.go's childrenIterator/subqueueIterator, whose own
// comment explains why: "we can't trust traversing the … linked-list
// because the operations that may be performed can modify this list".
func ringToSlice[K any, V any](head *node[K, V]) []*node[K, V] {
	if head == nil {
		return nil
	}
	out := make([]*node[K, V], 0, 8)
	n := head
	for {
		out = append(out, n)
		n = n.right
		if n == head {
			break
		}
	}
	return out
}
