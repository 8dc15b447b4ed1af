package fibheap

import "github.com/pkg/errors"

// Sentinel errors surfaced to callers per spec.md section 7. Each is
// wrapped with a stack trace at the point it's detected, the same
// error-plus-stack shape the teacher's worqError gave by hand — here
// produced by pkg/errors instead.
var (
	// ErrInvalidKey is returned by DecreaseKey when the new key would
	// worsen the node's priority under the heap's comparator.
	ErrInvalidKey = errors.New("fibheap: new key does not improve on current key")

	// ErrStaleHandle is returned when a Handle's node has already been
	// removed from its heap (by ExtractMin or Delete).
	ErrStaleHandle = errors.New("fibheap: handle refers to a removed node")

	// ErrForeignHandle is returned when a Handle is used against a Heap
	// it was not issued by.
	ErrForeignHandle = errors.New("fibheap: handle does not belong to this heap")
)

func withStack(sentinel error) error {
	return errors.WithStack(sentinel)
}
