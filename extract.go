package fibheap

// ExtractMin removes and returns the minimum-key (key, value) pair, or
// the zero values and false if the heap is empty. Amortized O(log n)
// (spec.md section 4.4).
//
// Grounded on storage/brodal/heap.go's Pop: decrement size up front,
// return the stored value, then promote/consolidate. The consolidation
// pass itself follows
// other_examples/lintang-b-s-navigatorX__fibonacci_heap.go's ExtractMin
// (a growable degree-indexed table) rather than
// other_examples/platinasystems-goes__fibheap.go's fixed-size MaxNSub
// array — see SPEC_FULL.md section 5.3 for why.
func (h *Heap[K, V]) ExtractMin() (K, V, bool) {
	if h.len == 0 {
		var zk K
		var zv V
		return zk, zv, false
	}
	z := h.min.n
	k, v := z.key, z.value
	h.removeRootNode(z)
	return k, v, true
}

// removeRootNode detaches a node that is currently a root (n.parent ==
// nil) from the heap entirely: its children are promoted to roots, it
// is spliced out of the root ring, and the root ring is consolidated.
// Shared by ExtractMin (on h.min) and Delete (on an arbitrary node,
// after it has first been cut up to root level).
func (h *Heap[K, V]) removeRootNode(n *node[K, V]) {
	if n.child != nil {
		for _, c := range ringToSlice(n.child) {
			c.parent = nil
			c.mark = false
		}
		ringConcat(n, n.child)
		n.child = nil
		n.degree = 0
	}

	next := ringRemove(n)
	h.len--
	n.removed = true

	if h.len == 0 {
		h.min = Handle[K, V]{}
		return
	}
	if h.min.n == n {
		h.min = Handle[K, V]{n: next}
	}
	h.consolidate()
}

// consolidate repeatedly links equal-degree roots until every root
// degree is unique, then rescans to find the new minimum (spec.md
// section 4.4 step 5-6, invariant 8).
func (h *Heap[K, V]) consolidate() {
	if h.min.n == nil {
		return
	}

	roots := ringToSlice(h.min.n)
	table := make([]*node[K, V], 0, 8)

	for _, w := range roots {
		if w.parent != nil {
			// Already absorbed as a child earlier in this same pass.
			continue
		}
		x := w
		d := x.degree
		for d >= len(table) {
			table = append(table, nil)
		}
		for table[d] != nil {
			y := table[d]
			if h.cmp.less(y.key, x.key) {
				x, y = y, x
			}
			h.linkRoot(x, y)
			table[d] = nil
			d++
			for d >= len(table) {
				table = append(table, nil)
			}
		}
		table[d] = x
	}

	h.rebuildRootsFromTable(table)
}

// linkRoot implements spec.md section 4.3's Link(a, b) for the
// consolidation pass: b is removed from the root ring and made a child
// of a.
func (h *Heap[K, V]) linkRoot(parent, child *node[K, V]) {
	ringRemove(child)
	parent.adopt(child)
}

func (h *Heap[K, V]) rebuildRootsFromTable(table []*node[K, V]) {
	var first, min *node[K, V]
	for _, n := range table {
		if n == nil {
			continue
		}
		ringSingleton(n)
		if first == nil {
			first = n
			min = n
			continue
		}
		ringInsertRight(first, n)
		if h.cmp.less(n.key, min.key) {
			min = n
		}
	}
	if first == nil {
		h.min = Handle[K, V]{}
		return
	}
	h.min = Handle[K, V]{n: min}
}
