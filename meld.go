package fibheap

// Meld merges other into h in O(1): the two root rings are spliced
// together, the minima reconciled, and other is left empty. Handles
// previously issued for other become valid handles into h (spec.md
// section 4.4).
//
// Grounded on storage/brodal/heap.go's Merge (bq.size += other.size,
// re-home the other heap's root), generalized from Brodal-Okasaki's
// lazy "re-insert as singleton" merge to a true O(1) Fibonacci-heap ring
// splice. Ownership transfer is O(1) too: rather than walking every
// transferred node to update its owner (which would make this an O(n)
// operation, contradicting spec.md's own complexity bound), other's
// ownerCell is redirected to h's in a single pointer write — see
// ownerCell in heap.go.
func (h *Heap[K, V]) Meld(other *Heap[K, V]) {
	if other.len == 0 {
		return
	}

	other.cell.redirect = h.cell

	if h.len == 0 {
		h.min = other.min
		h.len = other.len
	} else {
		ringConcat(h.min.n, other.min.n)
		if h.cmp.less(other.min.n.key, h.min.n.key) {
			h.min = other.min
		}
		h.len += other.len
	}

	other.min = Handle[K, V]{}
	other.len = 0
}
