// Package capi is the stable, C-callable boundary spec.md §1 and §6.1
// require the core to expose to other-language collaborators (the
// formatter adapter, stdio sinks, and higher-level rope structures named
// in §6.3, when those are implemented outside this Go module).
//
// Every Tendril crossing this boundary is represented by an opaque
// tendril_handle (a runtime/cgo.Handle value) rather than a raw pointer:
// a bare Go pointer handed to C and held across calls violates the cgo
// pointer-passing rules, since the garbage collector may move or reclaim
// Go memory a C caller cannot see roots into. A handle keeps the *Tendril
// reachable for exactly as long as the C side holds the handle, and
// tendril_destroy releases both the Tendril's own storage and the handle
// itself.
package capi

/*
#include <stdint.h>
#include <stddef.h>

typedef uintptr_t tendril_handle;
*/
import "C"

import (
	"runtime/cgo"
	"unsafe"

	"github.com/scigolib/tendril"
)

func handle(h C.tendril_handle) *tendril.Tendril {
	return cgo.Handle(h).Value().(*tendril.Tendril)
}

//export tendril_init
func tendril_init() C.tendril_handle {
	return C.tendril_handle(cgo.NewHandle(tendril.New()))
}

//export tendril_destroy
func tendril_destroy(h C.tendril_handle) {
	handle(h).Destroy()
	cgo.Handle(h).Delete()
}

//export tendril_clear
func tendril_clear(h C.tendril_handle) {
	handle(h).Clear()
}

//export tendril_len
func tendril_len(h C.tendril_handle) C.uint32_t {
	return C.uint32_t(handle(h).Len())
}

// tendril_data returns a pointer to the first content byte, with the
// shared-form offset already applied, so that C callers (which cannot see
// the offset behind the opaque handle) can pair it with tendril_len.
//
//export tendril_data
func tendril_data(h C.tendril_handle) unsafe.Pointer {
	t := handle(h)
	if b := t.Bytes(); len(b) > 0 {
		return unsafe.Pointer(&b[0])
	}
	return t.Data()
}

//export tendril_clone
func tendril_clone(dst, src C.tendril_handle) {
	tendril.Clone(handle(dst), handle(src))
}

//export tendril_sub
func tendril_sub(dst, src C.tendril_handle, offset, length C.uint32_t) C.int {
	if err := tendril.Sub(handle(dst), handle(src), uint32(offset), uint32(length)); err != nil {
		return -1
	}
	return 0
}

//export tendril_push_buffer
func tendril_push_buffer(h C.tendril_handle, data unsafe.Pointer, n C.uint32_t) C.int {
	buf := unsafe.Slice((*byte)(data), uint32(n))
	if err := handle(h).PushBuffer(buf); err != nil {
		return -1
	}
	return 0
}

//export tendril_push_tendril
func tendril_push_tendril(dst, src C.tendril_handle) C.int {
	if err := handle(dst).PushTendril(handle(src)); err != nil {
		return -1
	}
	return 0
}

//export tendril_push_uninit
func tendril_push_uninit(h C.tendril_handle, n C.uint32_t) C.int {
	if err := handle(h).PushUninit(uint32(n)); err != nil {
		return -1
	}
	return 0
}

//export tendril_pop_front
func tendril_pop_front(h C.tendril_handle, n C.uint32_t) C.int {
	if err := handle(h).PopFront(uint32(n)); err != nil {
		return -1
	}
	return 0
}

//export tendril_pop_back
func tendril_pop_back(h C.tendril_handle, n C.uint32_t) C.int {
	if err := handle(h).PopBack(uint32(n)); err != nil {
		return -1
	}
	return 0
}

//export tendril_debug_describe
func tendril_debug_describe(dst, src C.tendril_handle) C.int {
	if err := tendril.DebugDescribe(handle(dst), handle(src)); err != nil {
		return -1
	}
	return 0
}
