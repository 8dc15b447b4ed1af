package fibheap

// DecreaseKey lowers handle's key to newKey, which must not worsen the
// key under the heap's comparator (spec.md section 4.4). On success, if
// decreasing the key violates the min-heap property against the node's
// parent, the node is cut free and promoted to a root, triggering a
// cascading cut up through any marked ancestors. Amortized O(1).
//
// Grounded on
// other_examples/lintang-b-s-navigatorX__fibonacci_heap.go's
// decreaseUnchecked/cutNode, decomposed into the smaller single-purpose
// methods storage/brodal/node.go favors (adopt/rogue) rather than one
// monolithic function.
func (h *Heap[K, V]) DecreaseKey(handle Handle[K, V], newKey K) error {
	n, err := handle.resolve(h)
	if err != nil {
		return err
	}
	if h.cmp(newKey, n.key) > 0 {
		return withStack(ErrInvalidKey)
	}
	n.key = newKey

	if n.parent != nil && h.cmp.less(n.key, n.parent.key) {
		p := n.parent
		n.detachFromParent()
		h.spliceIntoRoots(n)
		h.cascadingCut(p)
	}
	if h.cmp.less(n.key, h.min.n.key) {
		h.min = Handle[K, V]{n: n}
	}
	return nil
}

// cascadingCut implements spec.md section 4.3's CascadingCut: walk up
// from p, cutting each marked ancestor and promoting it to a root, until
// either a root or an unmarked node (which gets marked instead) is
// reached.
//
// Grounded on
// other_examples/platinasystems-goes__fibheap.go's Del cascading loop
// (iterative, walking sup chain via wasMarked), rewritten against this
// package's cut/splice primitives.
func (h *Heap[K, V]) cascadingCut(p *node[K, V]) {
	for p.parent != nil {
		if !p.mark {
			p.mark = true
			return
		}
		gp := p.parent
		p.detachFromParent()
		h.spliceIntoRoots(p)
		p = gp
	}
}

// Delete removes handle's node from the heap entirely. Conceptually
// equivalent to decreasing its key below every other key and then
// extracting it; implemented structurally instead, per spec.md section
// 9's guidance for key types with no natural sentinel: cut the node up
// to root level (running the same cascading cut DecreaseKey would), then
// remove it exactly as ExtractMin would remove the minimum. Amortized
// O(log n).
func (h *Heap[K, V]) Delete(handle Handle[K, V]) error {
	n, err := handle.resolve(h)
	if err != nil {
		return err
	}

	if n.parent != nil {
		p := n.parent
		n.detachFromParent()
		h.spliceIntoRoots(n)
		h.cascadingCut(p)
	}

	h.removeRootNode(n)
	return nil
}
