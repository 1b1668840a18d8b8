package tendril

import (
	"bytes"
	"unsafe"

	"github.com/scigolib/tendril/internal/overflow"
)

// Tendril is the compact, reference-counted, non-interned byte-string
// value described by this package's design documentation. Its zero value
// is already a valid, empty Tendril — Init exists only for parity with the
// boundary-layer operation table and for re-initializing memory a C caller
// owns.
type Tendril struct {
	form   form
	hdr    *header
	length uint32 // spec's `a`: content length for every non-empty form
	aux    uint32 // spec's `b`: owned capacity, or shared-form offset
	inline [maxInline]byte
}

// New returns a Tendril already in the empty form.
func New() *Tendril {
	return &Tendril{}
}

// Init sets t to the empty form. Any prior heap reference held by t is NOT
// released — callers that might be re-initializing a live value must
// Destroy it first. Init exists for memory a caller is handing to the
// boundary layer for the first time.
func (t *Tendril) Init() {
	*t = Tendril{}
}

// Len returns the content length, 0 through 2^32-1.
func (t *Tendril) Len() uint32 {
	return t.length
}

// Form reports which of the four shapes t currently occupies. It exists
// for tests and DebugDescribe; ordinary callers should not branch on it.
func (t *Tendril) Form() string {
	return t.form.String()
}

// Data returns a pointer to the first byte of t's backing storage. For the
// shared form this follows the non-offset-adding convention named in
// SPEC_FULL.md §4: it points at the start of the shared header's
// buffer, not at this Tendril's own [offset, offset+len) window. Callers
// that need a ready-to-use view should call Bytes instead; Data exists
// only for parity with the boundary-layer contract in spec.md §6.1 and for
// the cgo boundary in package capi.
func (t *Tendril) Data() unsafe.Pointer {
	if t.form.heapBacked() {
		if len(t.hdr.buf) == 0 {
			return nil
		}
		return unsafe.Pointer(&t.hdr.buf[0])
	}
	return unsafe.Pointer(&t.inline[0])
}

// Bytes returns t's content as a slice, with the shared-form offset
// already applied. The slice aliases t's storage and is only valid until
// the next mutating call on t (or, for a shared Tendril, on any Tendril
// sharing its header).
func (t *Tendril) Bytes() []byte {
	switch t.form {
	case formEmpty:
		return nil
	case formInline:
		return t.inline[:t.length]
	case formOwned:
		return t.hdr.buf[:t.length]
	case formShared:
		return t.hdr.buf[t.aux : t.aux+t.length]
	default:
		return nil
	}
}

// Destroy releases t's storage, if any, and leaves t in the empty form.
// Destroy is idempotent: destroying an already-empty or inline Tendril is
// a no-op.
func (t *Tendril) Destroy() {
	if t.form.heapBacked() {
		t.hdr.release()
		t.hdr = nil
	}
	t.form = formEmpty
	t.length = 0
	t.aux = 0
}

// Clear truncates t to length 0. An owned Tendril keeps its allocation; a
// shared Tendril releases its reference (it cannot truncate storage it
// does not own); an inline or empty Tendril becomes empty.
func (t *Tendril) Clear() {
	switch t.form {
	case formEmpty:
		return
	case formInline:
		t.form = formEmpty
		t.length = 0
	case formOwned:
		t.length = 0
	case formShared:
		t.hdr.release()
		t.hdr = nil
		t.form = formEmpty
		t.length = 0
		t.aux = 0
	}
}

// Clone replaces dst (destroying any prior contents) with a value equal to
// src, sharing src's heap storage when src is heap-backed. An owned src is
// first promoted to shared, per spec.md §4.3: its capacity is written into
// the header (stale until now) and its own offset field becomes 0.
func Clone(dst, src *Tendril) {
	dst.Destroy()
	switch src.form {
	case formEmpty:
		// dst is already empty.
	case formInline:
		dst.form = formInline
		dst.length = src.length
		dst.inline = src.inline
	case formOwned:
		src.hdr.capacity = src.aux
		src.aux = 0
		src.form = formShared
		src.hdr.retain()
		dst.form = formShared
		dst.hdr = src.hdr
		dst.length = src.length
		dst.aux = 0
	case formShared:
		src.hdr.retain()
		dst.form = formShared
		dst.hdr = src.hdr
		dst.length = src.length
		dst.aux = src.aux
	}
}

// Sub replaces dst with a view of src covering [offset, offset+length).
// Results of length <= maxInline are copied into a fresh inline Tendril
// regardless of the source's form (spec.md §9 Open Question (a)); longer
// results share src's storage, promoting an owned src to shared exactly as
// Clone does.
func Sub(dst, src *Tendril, offset, length uint32) error {
	end, err := overflow.SafeAdd(offset, length)
	if err != nil || end > src.Len() {
		return wrapf("sub", ErrOutOfBounds)
	}

	dst.Destroy()
	if length == 0 {
		return nil
	}

	if length <= maxInline {
		dst.form = formInline
		dst.length = length
		copy(dst.inline[:length], src.Bytes()[offset:end])
		return nil
	}

	if src.form == formOwned {
		src.hdr.capacity = src.aux
		src.aux = 0
		src.form = formShared
	}
	src.hdr.retain()
	dst.form = formShared
	dst.hdr = src.hdr
	dst.length = length
	dst.aux = src.aux + offset
	return nil
}

// Equal reports whether a and b hold identical content, independent of
// form: an inline "ab" and a shared "ab" compare equal.
func Equal(a, b *Tendril) bool {
	if a.Len() != b.Len() {
		return false
	}
	return bytes.Equal(a.Bytes(), b.Bytes())
}
