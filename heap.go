// Package fibheap implements a generic mergeable priority queue on top of
// a Fibonacci heap: a forest of heap-ordered min-trees with lazy
// consolidation on extract-min and cascading cuts on decrease-key.
// Insert, Peek, Meld, and DecreaseKey run in amortized O(1); ExtractMin
// and Delete run in amortized O(log n).
//
// The structure and its invariants are described in full in spec.md and
// SPEC_FULL.md at the repository root; this file holds the type's
// construction and the handful of operations that never touch the
// consolidation or cut machinery.
package fibheap

import "fmt"

// Heap is a mergeable priority queue over keys K ordered by a
// user-supplied Comparator, holding arbitrary payloads V. The zero value
// is not usable; construct with New or NewFromSlice.
//
// Grounded on storage/brodal/heap.go's Heap{root *HeapNode, size int}
// wrapper, generalized from a single skew-binomial root to a full root
// ring plus an explicit min pointer (spec.md section 3, Entities: Heap).
type Heap[K any, V any] struct {
	min  Handle[K, V]
	cmp  Comparator[K]
	len  int
	cell *ownerCell[K, V]
}

// ownerCell is the indirection a node's owner pointer goes through.
// Meld transfers ownership of an entire forest in O(1) by redirecting a
// single cell rather than walking every transferred node — see meld.go.
type ownerCell[K any, V any] struct {
	target   *Heap[K, V]
	redirect *ownerCell[K, V]
}

func resolveOwner[K any, V any](c *ownerCell[K, V]) *Heap[K, V] {
	for c.redirect != nil {
		c = c.redirect
	}
	return c.target
}

// New constructs an empty heap ordered by cmp.
func New[K any, V any](cmp Comparator[K]) *Heap[K, V] {
	h := &Heap[K, V]{cmp: cmp}
	h.cell = &ownerCell[K, V]{target: h}
	return h
}

// NewFromSlice constructs a heap from a finite sequence of (key, value)
// pairs, semantically equivalent to constructing empty and calling
// Insert on each pair in order (spec.md section 6).
func NewFromSlice[K any, V any](cmp Comparator[K], pairs []Pair[K, V]) *Heap[K, V] {
	h := New[K, V](cmp)
	for _, p := range pairs {
		h.Insert(p.Key, p.Value)
	}
	return h
}

// Pair is one (key, value) entry, used by NewFromSlice.
type Pair[K any, V any] struct {
	Key   K
	Value V
}

// Len returns the number of elements currently in the heap. O(1).
func (h *Heap[K, V]) Len() int { return h.len }

// IsEmpty reports whether the heap has no elements. O(1).
func (h *Heap[K, V]) IsEmpty() bool { return h.len == 0 }

// Insert adds (key, value) to the heap and returns a Handle usable for
// later DecreaseKey/Delete calls. O(1) amortized (spec.md section 4.4).
func (h *Heap[K, V]) Insert(key K, value V) Handle[K, V] {
	n := newNode(h, key, value)
	h.spliceIntoRoots(n)
	h.len++
	return Handle[K, V]{n: n}
}

// Peek returns a Handle to the minimum-key element, or the zero Handle
// and false if the heap is empty. Does not mutate the heap. O(1).
func (h *Heap[K, V]) Peek() (Handle[K, V], bool) {
	if h.len == 0 {
		return Handle[K, V]{}, false
	}
	return h.min, true
}

// String reports a short diagnostic summary, grounded on
// other_examples/platinasystems-goes__fibheap.go's (*FibHeap) String().
func (h *Heap[K, V]) String() string {
	roots := 0
	if !h.IsEmpty() {
		roots = len(ringToSlice(h.min.n))
	}
	return fmt.Sprintf("fibheap: %d elements, %d root trees", h.len, roots)
}

// spliceIntoRoots inserts a singleton node into the root ring and fixes
// up min if necessary. Shared by Insert and by the promote-to-root step
// of DecreaseKey, cascadingCut and Delete.
func (h *Heap[K, V]) spliceIntoRoots(n *node[K, V]) {
	if h.min.n == nil {
		h.min = Handle[K, V]{n: n}
		return
	}
	ringInsertRight(h.min.n, n)
	if h.cmp.less(n.key, h.min.n.key) {
		h.min = Handle[K, V]{n: n}
	}
}
