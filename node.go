package fibheap

// node is one inserted item. Field layout follows
// storage/brodal/node.go's HeapNode (value, parent, sibling pointers,
// rank) generalized to a generic key/value pair and a circular sibling
// ring (spec.md section 3, Entities: Node).
type node[K any, V any] struct {
	key   K
	value V

	degree int
	mark   bool

	parent *node[K, V]
	child  *node[K, V]
	left   *node[K, V]
	right  *node[K, V]

	// removed marks a node that has left the heap via ExtractMin or
	// Delete. A live Handle whose node carries this flag reports
	// ErrStaleHandle instead of touching heap state.
	removed bool

	// cell identifies which Heap this node currently belongs to, for
	// ErrForeignHandle detection. Indirected through an ownerCell so
	// Meld can transfer ownership of an entire forest by redirecting
	// one cell in O(1), instead of walking every node (see meld.go).
	cell *ownerCell[K, V]
}

func newNode[K any, V any](owner *Heap[K, V], key K, value V) *node[K, V] {
	n := &node[K, V]{key: key, value: value, cell: owner.cell}
	ringSingleton(n)
	return n
}

// adopt makes other a child of n: spec.md section 4.3's Link, minus the
// precondition check (its caller, consolidation's linkRoot, establishes
// equal-degree-and-min-root itself, so adopt does not enforce that
// precondition).
func (n *node[K, V]) adopt(other *node[K, V]) {
	other.parent = n
	other.mark = false
	if n.child == nil {
		ringSingleton(other)
		n.child = other
	} else {
		ringInsertRight(n.child, other)
	}
	n.degree++
}

// detachFromParent implements Cut (spec.md section 4.3): remove n from
// its parent's child ring, fix the parent's degree and child pointer,
// and clear n's own parent/mark. n is left as a singleton ring, ready
// to be spliced into the root ring by the caller.
func (n *node[K, V]) detachFromParent() {
	p := n.parent
	next := ringRemove(n)
	if p.child == n {
		p.child = next
	}
	p.degree--
	n.parent = nil
	n.mark = false
}

// Handle is an opaque, stable reference to a node, usable for
// DecreaseKey and Delete across arbitrary intervening operations on the
// same heap (spec.md section 4.1). Handles compare by node identity and
// are not transferable between heaps.
type Handle[K any, V any] struct {
	n *node[K, V]
}

// Key returns the handle's current key.
func (h Handle[K, V]) Key() K { return h.n.key }

// Value returns the handle's current value.
func (h Handle[K, V]) Value() V { return h.n.value }

// SetValue overwrites the handle's payload without affecting heap order.
func (h Handle[K, V]) SetValue(v V) { h.n.value = v }

// IsZero reports whether h is the zero Handle (never issued by Insert).
func (h Handle[K, V]) IsZero() bool { return h.n == nil }

func (h Handle[K, V]) resolve(owner *Heap[K, V]) (*node[K, V], error) {
	if h.n == nil || resolveOwner(h.n.cell) != owner {
		return nil, withStack(ErrForeignHandle)
	}
	if h.n.removed {
		return nil, withStack(ErrStaleHandle)
	}
	return h.n, nil
}
