package tendril

import (
	"github.com/scigolib/tendril/internal/arena"
	"github.com/scigolib/tendril/internal/overflow"
)

// growForAppend implements the promotion-on-write protocol of spec.md
// §4.5: it puts t into a form that can hold oldLen+n bytes uniquely, sets
// t's length to the new total, and returns a slice over t's full content
// (length newLen) so the caller can fill in the appended tail. The first
// oldLen bytes of the returned slice are always t's prior content; the
// trailing n bytes are uninitialized.
func (t *Tendril) growForAppend(n uint32) ([]byte, error) {
	oldLen := t.Len()
	newLen, err := overflow.SafeAdd(oldLen, n)
	if err != nil {
		return nil, wrapf("push", ErrOverflow)
	}
	if n == 0 {
		return t.Bytes(), nil
	}

	switch t.form {
	case formEmpty, formInline:
		if newLen <= maxInline {
			t.form = formInline
			t.length = newLen
			return t.inline[:newLen], nil
		}
		newCap, capErr := overflow.NextCapacity(0, newLen)
		if capErr != nil {
			return nil, wrapf("push", ErrOutOfMemory)
		}
		h := newHeader(newCap)
		copy(h.buf, t.inline[:oldLen])
		t.form = formOwned
		t.hdr = h
		t.length = newLen
		t.aux = newCap
		return h.buf[:newLen], nil

	case formShared:
		newCap, capErr := overflow.NextCapacity(0, newLen)
		if capErr != nil {
			return nil, wrapf("push", ErrOutOfMemory)
		}
		h := newHeader(newCap)
		copy(h.buf, t.hdr.buf[t.aux:t.aux+t.length])
		t.hdr.release()
		t.hdr = h
		t.form = formOwned
		t.length = newLen
		t.aux = newCap
		return h.buf[:newLen], nil

	case formOwned:
		if newLen <= t.aux {
			t.length = newLen
			return t.hdr.buf[:newLen], nil
		}
		if err := t.hdr.ensureCapacity(newLen); err != nil {
			return nil, wrapf("push", err)
		}
		t.aux = t.hdr.capacity
		t.length = newLen
		return t.hdr.buf[:newLen], nil
	}
	return nil, wrapf("push", ErrOutOfMemory)
}

// PushBuffer appends the contents of buf to t, growing and/or promoting t
// to unique ownership as needed.
func (t *Tendril) PushBuffer(buf []byte) error {
	n := uint32(len(buf))
	if n == 0 {
		return nil
	}
	tail, err := t.growForAppend(n)
	if err != nil {
		return err
	}
	copy(tail[len(tail)-int(n):], buf)
	return nil
}

// PushUninit grows t by n bytes, leaving their content unspecified.
// Callers must initialize the new tail (via Bytes()) before any observer
// reads it.
func (t *Tendril) PushUninit(n uint32) error {
	_, err := t.growForAppend(n)
	return err
}

// PushTendril appends src's content to t. It is safe when src == t: the
// source content is snapshotted into a scratch buffer before t grows, so
// a self-append doubles t's content exactly once rather than racing
// against its own reallocation.
func (t *Tendril) PushTendril(src *Tendril) error {
	n := src.Len()
	if n == 0 {
		return nil
	}
	scratch := arena.Get(int(n))
	scratch = append(scratch, src.Bytes()...)
	defer arena.Put(scratch)
	return t.PushBuffer(scratch)
}
