// Package fmtadapter is a reference implementation of the "formatter
// adapter" external collaborator named in spec.md §6.3: something that
// builds content into a Tendril using only the boundary operations Len,
// PushUninit, Data, and PopBack, suitable for backing fmt.Fprintf and
// similar formatted-printing APIs.
package fmtadapter

import (
	"unsafe"

	"github.com/scigolib/tendril"
)

// Writer adapts a *tendril.Tendril to io.Writer, growing it in place as
// content is written.
type Writer struct {
	t *tendril.Tendril
}

// New wraps t. t must already be initialized (its zero value is fine).
func New(t *tendril.Tendril) *Writer {
	return &Writer{t: t}
}

// Write appends p to the wrapped Tendril, growing it via PushUninit and
// then copying through the raw Data pointer rather than through Bytes, to
// exercise exactly the operation set spec.md §6.3 names for this
// collaborator. Every growth call re-reads Data after the fact: an
// adapter that cached a pointer from before the PushUninit call would be
// reading storage that growth may have invalidated.
func (w *Writer) Write(p []byte) (int, error) {
	n := uint32(len(p))
	if n == 0 {
		return 0, nil
	}
	start := w.t.Len()
	if err := w.t.PushUninit(n); err != nil {
		return 0, err
	}
	base := unsafe.Slice((*byte)(w.t.Data()), w.t.Len())
	copy(base[start:], p)
	return len(p), nil
}

// Truncate drops the last n written bytes via PopBack.
func (w *Writer) Truncate(n uint32) error {
	return w.t.PopBack(n)
}

// Len reports how many bytes have been written so far.
func (w *Writer) Len() uint32 {
	return w.t.Len()
}
