package fibheap

import (
	"fmt"
	"math"

	"github.com/heapkit/fibheap/util"
)

// phi is the golden ratio, the base of the degree bound a Fibonacci
// heap's structure guarantees (spec.md section 3 invariant 8).
const phi = 1.6180339887498949

// MaxDegree returns an upper bound on any single node's degree in a
// Fibonacci heap holding n elements. Spec.md section 3 invariant 8 only
// requires "any valid upper bound — the implementation may choose a
// looser one" rather than the tightest possible value, so this adds a
// small constant margin on top of the textbook floor(log_phi(n)) bound
// rather than chasing an exact ceiling.
//
// Grounded directly on original_source/test.cpp's
// data_structure_consistency_test, which checks exactly this bound
// (fh.max_degree(), test.cpp:192-198) against every root's degree; that
// file declares but never defines max_degree() in the retrieved header,
// so the bound itself is derived from the standard Fibonacci-heap
// analysis rather than copied.
func MaxDegree(n int) int {
	if n < 1 {
		return 0
	}
	return int(math.Log(float64(n))/math.Log(phi)) + 2
}

// CheckInvariants walks the entire forest and reports every violation of
// spec.md section 8's structural invariants it finds. It does not
// mutate the heap. Intended for tests and for ValidateOrFatal; an
// application's hot path should not call this on every operation (it is
// O(n), unlike the operations it checks).
//
// Grounded directly on original_source/test.cpp's
// data_structure_consistency_test (SPEC_FULL.md section 3.5), whose own
// comment lists the eight things it checks; this is that function's Go
// counterpart. It returns the problems as strings; ValidateOrFatal is
// what reports them through util.Logger, the way the teacher's
// util.DumpProcessTrace/MemoryUsage report diagnostics.
func (h *Heap[K, V]) CheckInvariants() []string {
	var problems []string

	if h.len == 0 {
		if h.min.n != nil {
			problems = append(problems, "len is 0 but min is set")
		}
		return problems
	}
	if h.min.n == nil {
		return append(problems, "len is nonzero but min is nil")
	}

	maxDeg := MaxDegree(h.len)
	roots := ringToSlice(h.min.n)
	var minKey K
	haveMinKey := false
	seen := 0

	for _, r := range roots {
		if r.parent != nil {
			problems = append(problems, "root has a non-nil parent")
		}
		if r.mark {
			problems = append(problems, "root node is marked")
		}
		if !haveMinKey || h.cmp.less(r.key, minKey) {
			minKey = r.key
			haveMinKey = true
		}
		seen += h.checkSubtree(r, maxDeg, &problems)
	}

	if h.cmp(h.min.n.key, minKey) != 0 {
		problems = append(problems, "min pointer does not refer to the smallest root key")
	}
	if seen != h.len {
		problems = append(problems, fmt.Sprintf("len mismatch: len=%d reachable=%d", h.len, seen))
	}

	return problems
}

func (h *Heap[K, V]) checkSubtree(n *node[K, V], maxDeg int, problems *[]string) int {
	if n.left.right != n || n.right.left != n {
		*problems = append(*problems, "broken sibling ring pointers")
	}
	if n.removed {
		*problems = append(*problems, "removed node is still reachable from the forest")
	}
	if n.degree > maxDeg {
		*problems = append(*problems, fmt.Sprintf("degree %d exceeds max-degree bound %d", n.degree, maxDeg))
	}

	count := 1
	if n.child == nil {
		if n.degree != 0 {
			*problems = append(*problems, "degree is nonzero with no children")
		}
		return count
	}

	children := ringToSlice(n.child)
	if len(children) != n.degree {
		*problems = append(*problems, "degree does not match child ring length")
	}
	for _, c := range children {
		if c.parent != n {
			*problems = append(*problems, "child's parent pointer does not point back to parent")
		}
		if h.cmp(n.key, c.key) > 0 {
			*problems = append(*problems, "min-tree property violated: parent key greater than child key")
		}
		count += h.checkSubtree(c, maxDeg, problems)
	}
	return count
}

// ValidateOrFatal logs and aborts via log.Fatal if the heap's invariants
// are violated. Spec.md section 7: "internal invariant violations (a
// bug) are fatal — the implementation may abort rather than attempt
// recovery, because a corrupted heap cannot be safely used."
func (h *Heap[K, V]) ValidateOrFatal(log util.Logger) {
	problems := h.CheckInvariants()
	if len(problems) == 0 {
		return
	}
	for _, p := range problems {
		log.Error(p)
	}
	log.Fatal("fibheap: invariant violation, aborting")
}
