package fibheap

// Clone returns a deep copy of h: every node is duplicated, links are
// reconstructed so the new forest is isomorphic to the original, and
// the new heap's handles are entirely disjoint from h's (spec.md
// section 4.5). O(n).
//
// No corpus example implements Fibonacci-heap deep copy, so this
// follows spec.md section 4.5 directly; the collect-into-a-slice-before-
// recursing shape is grounded on storage/brodal/node.go's
// childrenIterator/subqueueIterator, whose own comment is the reason:
// mutating a ring while walking it loses members.
func (h *Heap[K, V]) Clone() *Heap[K, V] {
	nh := New[K, V](h.cmp)
	nh.len = h.len
	if h.min.n == nil {
		return nh
	}

	oldRoots := ringToSlice(h.min.n)
	newRoots := make([]*node[K, V], len(oldRoots))
	var newMin *node[K, V]
	for i, old := range oldRoots {
		newRoots[i] = cloneTree(nh, old)
		if old == h.min.n {
			newMin = newRoots[i]
		}
	}
	spliceSiblingRing(newRoots)
	nh.min = Handle[K, V]{n: newMin}
	return nh
}

// cloneTree duplicates old and its entire subtree, owned by the new
// heap, and returns the duplicate (with parent left unset — the caller
// links it into its new parent's child ring, or leaves it a root).
func cloneTree[K any, V any](owner *Heap[K, V], old *node[K, V]) *node[K, V] {
	nn := newNode(owner, old.key, old.value)
	nn.degree = old.degree
	nn.mark = old.mark

	if old.child == nil {
		return nn
	}
	oldChildren := ringToSlice(old.child)
	newChildren := make([]*node[K, V], len(oldChildren))
	for i, oc := range oldChildren {
		nc := cloneTree(owner, oc)
		nc.parent = nn
		newChildren[i] = nc
	}
	spliceSiblingRing(newChildren)
	nn.child = newChildren[0]
	return nn
}

// spliceSiblingRing links a slice of freshly-created singleton nodes
// into one ring, in slice order.
func spliceSiblingRing[K any, V any](nodes []*node[K, V]) {
	prev := nodes[0]
	for _, n := range nodes[1:] {
		ringInsertRight(prev, n)
		prev = n
	}
}
