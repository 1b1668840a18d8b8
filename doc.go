// Package tendril implements a compact, reference-counted, non-interned
// byte-string container designed for zero-copy tokenization and streaming
// text workloads.
//
// A Tendril holds up to 2^32-1 bytes with three optimizations: strings of
// 0 through 8 bytes are stored inline with no heap traffic, multiple
// Tendrils may share one heap-allocated buffer via a thread-confined,
// non-atomic refcount, and a uniquely owned Tendril may be appended to and
// reallocated in place.
//
// Every exported function and method takes *Tendril, never Tendril, for
// the same reason the spec this package implements requires values to be
// passed "by address, never by value": a value copy would duplicate an
// owned Tendril's fields without incrementing the header's refcount,
// breaking the accounting invariant every operation in this package
// otherwise preserves. Use Clone or Sub to make a second reference.
//
// A Tendril is not safe for concurrent use: the refcount it shares with
// other Tendrils is updated without synchronization, by design, and may
// only be touched from the thread that owns it.
package tendril
