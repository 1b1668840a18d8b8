// Package arena provides pooled scratch byte buffers for operations, such
// as PushTendril, that need a short-lived working copy before committing
// content into a Tendril.
package arena

import "sync"

var bufferPool = sync.Pool{
	New: func() interface{} {
		return make([]byte, 0, 64)
	},
}

// Get returns a zero-length scratch slice with capacity at least size.
func Get(size int) []byte {
	buf := bufferPool.Get().([]byte)
	if cap(buf) < size {
		return make([]byte, 0, size)
	}
	return buf[:0]
}

// Put returns buf to the pool for reuse.
func Put(buf []byte) {
	//nolint:staticcheck // SA6002: slice descriptor copy is acceptable for sync.Pool
	bufferPool.Put(buf[:0])
}
