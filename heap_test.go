package fibheap

import "testing"

// Test names and style (Test_snake_case, direct t.Errorf checks) follow
// storage/brodal/heap_test.go; these cover spec.md section 8's six
// concrete scenarios.

func Test_empty_heap(t *testing.T) {
	h := New[int, string](Natural[int]())

	if _, _, ok := h.ExtractMin(); ok {
		t.Errorf("expected extract-min on empty heap to report not-ok")
	}
	if h.Len() != 0 {
		t.Errorf("expected len 0, got %d", h.Len())
	}
	if !h.IsEmpty() {
		t.Errorf("expected IsEmpty")
	}
}

func Test_single_insert_extract(t *testing.T) {
	h := New[int, string](Natural[int]())

	h.Insert(5, "a")

	min, ok := h.Peek()
	if !ok || min.Key() != 5 {
		t.Errorf("expected peek key 5, got %v ok=%v", min.Key(), ok)
	}

	k, v, ok := h.ExtractMin()
	if !ok || k != 5 || v != "a" {
		t.Errorf("expected (5, a), got (%d, %s) ok=%v", k, v, ok)
	}
	if !h.IsEmpty() {
		t.Errorf("expected IsEmpty after extracting the only element")
	}
}

func Test_ordered_extraction(t *testing.T) {
	h := New[int, string](Natural[int]())

	pairs := []struct {
		k int
		v string
	}{
		{3, "c"}, {1, "a"}, {4, "d"}, {1, "b"},
		{5, "e"}, {9, "f"}, {2, "g"}, {6, "h"},
	}
	for _, p := range pairs {
		h.Insert(p.k, p.v)
	}

	want := []int{1, 1, 2, 3, 4, 5, 6, 9}
	for i, wantKey := range want {
		k, _, ok := h.ExtractMin()
		if !ok {
			t.Fatalf("extraction %d: expected ok", i)
		}
		if k != wantKey {
			t.Errorf("extraction %d: expected key %d, got %d", i, wantKey, k)
		}
	}
	if !h.IsEmpty() {
		t.Errorf("expected heap to be empty after draining all inserts")
	}
}

func Test_decrease_key_triggers_cut(t *testing.T) {
	h := New[int, string](Natural[int]())

	h.Insert(10, "ten")
	h.Insert(20, "twenty")
	h.Insert(30, "thirty")
	h40 := h.Insert(40, "forty")

	// Removing 10 forces consolidation, nesting 40 under some sibling.
	if k, _, _ := h.ExtractMin(); k != 10 {
		t.Fatalf("expected first extract to remove key 10, got %d", k)
	}

	if err := h.DecreaseKey(h40, 5); err != nil {
		t.Fatalf("decrease-key failed: %v", err)
	}

	min, ok := h.Peek()
	if !ok || min.Key() != 5 {
		t.Errorf("expected peek key 5 after decrease-key, got %v ok=%v", min.Key(), ok)
	}
}

func Test_meld_then_extract(t *testing.T) {
	h1 := New[int, string](Natural[int]())
	h2 := New[int, string](Natural[int]())

	for _, k := range []int{2, 4, 6} {
		h1.Insert(k, "")
	}
	for _, k := range []int{1, 3, 5} {
		h2.Insert(k, "")
	}

	h1.Meld(h2)

	if !h2.IsEmpty() {
		t.Errorf("expected h2 to be empty after being melded away")
	}

	want := []int{1, 2, 3, 4, 5, 6}
	for i, wantKey := range want {
		k, _, ok := h1.ExtractMin()
		if !ok || k != wantKey {
			t.Errorf("extraction %d: expected %d, got %d ok=%v", i, wantKey, k, ok)
		}
	}
	if h1.Len() != 0 {
		t.Errorf("expected h1.Len() == 0 at end, got %d", h1.Len())
	}
}

func Test_deep_copy_independence(t *testing.T) {
	h := New[int, string](Natural[int]())
	for _, k := range []int{7, 3, 9, 1} {
		h.Insert(k, "")
	}

	h2 := h.Clone()

	wantAll := func(heap *Heap[int, string]) []int {
		var got []int
		for {
			k, _, ok := heap.ExtractMin()
			if !ok {
				break
			}
			got = append(got, k)
		}
		return got
	}

	want := []int{1, 3, 7, 9}
	got1 := wantAll(h)
	if !intSliceEqual(got1, want) {
		t.Errorf("h extraction: got %v, want %v", got1, want)
	}

	got2 := wantAll(h2)
	if !intSliceEqual(got2, want) {
		t.Errorf("h2 extraction: got %v, want %v", got2, want)
	}
}

func intSliceEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func Test_foreign_handle_rejected(t *testing.T) {
	h1 := New[int, string](Natural[int]())
	h2 := New[int, string](Natural[int]())

	hnd := h1.Insert(1, "a")

	if err := h2.DecreaseKey(hnd, 0); err == nil {
		t.Errorf("expected ErrForeignHandle when using h1's handle against h2")
	}
}

func Test_stale_handle_rejected(t *testing.T) {
	h := New[int, string](Natural[int]())
	hnd := h.Insert(1, "a")

	if _, _, ok := h.ExtractMin(); !ok {
		t.Fatalf("expected extraction to succeed")
	}

	if err := h.DecreaseKey(hnd, 0); err == nil {
		t.Errorf("expected ErrStaleHandle after the node was extracted")
	}
	if err := h.Delete(hnd); err == nil {
		t.Errorf("expected ErrStaleHandle on delete of an already-removed node")
	}
}

func Test_new_from_slice(t *testing.T) {
	pairs := []Pair[int, string]{
		{Key: 5, Value: "e"},
		{Key: 2, Value: "b"},
		{Key: 8, Value: "h"},
	}
	h := NewFromSlice(Natural[int](), pairs)

	if h.Len() != 3 {
		t.Fatalf("expected len 3, got %d", h.Len())
	}
	k, _, _ := h.ExtractMin()
	if k != 2 {
		t.Errorf("expected min key 2, got %d", k)
	}
}

func Test_string_diagnostic(t *testing.T) {
	h := New[int, string](Natural[int]())
	h.Insert(1, "a")
	h.Insert(2, "b")

	s := h.String()
	if s == "" {
		t.Errorf("expected a non-empty diagnostic string")
	}
}

func Test_invalid_key_rejected(t *testing.T) {
	h := New[int, string](Natural[int]())
	hnd := h.Insert(5, "a")

	if err := h.DecreaseKey(hnd, 6); err == nil {
		t.Errorf("expected ErrInvalidKey when new key worsens priority")
	}
	if hnd.Key() != 5 {
		t.Errorf("expected key to remain unchanged after a rejected decrease-key, got %d", hnd.Key())
	}
}
