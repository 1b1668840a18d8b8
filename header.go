package tendril

import "github.com/scigolib/tendril/internal/overflow"

// header is the heap block a owned or shared Tendril points at. It carries
// the pieces of state the spec's "Heap block layout" (§3.3) prefixes onto
// a raw buffer: a refcount and a capacity word, immediately followed by
// the content region. Go has no safe way to place those two words directly
// in front of a byte slice's backing array, so they are ordinary struct
// fields instead of a byte offset computed against pointer_size+4 — the
// three pieces of state are identical, only their physical layout differs.
//
// refcount is non-atomic and thread-confined, matching §5: every
// increment (clone, owned->shared promotion) must be paired with exactly
// one decrement (destroy, clear), and the decrement that drives it to
// zero frees the block.
type header struct {
	refcount uint32
	capacity uint32 // authoritative only once a Tendril referencing this header is shared
	buf      []byte // len(buf) == capacity; content occupies buf[:usedLen] per the owning Tendril's own length/offset
}

// newHeader allocates a header with at least the given capacity, ready to
// be referenced by a single owned Tendril (refcount starts at 1).
func newHeader(capacity uint32) *header {
	return &header{
		refcount: 1,
		capacity: capacity,
		buf:      make([]byte, capacity),
	}
}

// retain increments the refcount. Every call must be matched by exactly
// one release.
func (h *header) retain() {
	h.refcount++
}

// release decrements the refcount and reports whether it reached zero,
// i.e. whether the caller was holding the last reference and the block
// should be considered freed. Go's garbage collector reclaims the backing
// array once nothing holds the *header anymore; this bookkeeping exists so
// the observable refcount invariants in spec.md §8 hold independent of GC
// timing.
func (h *header) release() bool {
	h.refcount--
	return h.refcount == 0
}

// ensureCapacity grows h.buf to at least need bytes, doubling per
// spec.md §4.5's recommended policy: it allocates a larger buffer, copies
// the old content into it, and updates h.capacity. The header itself stays
// the same, so Tendrils referencing it keep the same *header. Only valid to call on a header whose
// sole referencing Tendril is owned.
func (h *header) ensureCapacity(need uint32) error {
	if h.capacity >= need {
		return nil
	}
	next, err := overflow.NextCapacity(h.capacity, need)
	if err != nil {
		return wrapf("grow", ErrOutOfMemory)
	}
	grown := make([]byte, next)
	copy(grown, h.buf)
	h.buf = grown
	h.capacity = next
	return nil
}
