// Package bindings hosts the thin cgo layer that links the Go API to the
// native libeep library. No other package in this repository imports "C".
//
// # Design Principles
//
// 1. Isolation: ALL cgo code lives in this package, behind build tags, so
// the rest of the repository compiles without cgo.
//
// 2. One native call per function: every exported function maps to exactly
// one libeep entry point and does nothing beyond argument and result
// marshalling.
//
// 3. Memory management: the only native allocations this layer touches are
// the transient sample buffers. A buffer obtained from GetSamples is owned
// by the caller until its Free method runs; the buffer passed to AddSamples
// is allocated, filled and released inside the call on every path.
//
// 4. Error convention: libeep reports failure through its C conventions, a
// negative handle or a NULL pointer. This layer preserves those sentinels
// instead of inventing richer error values; the public package maps them to
// Go errors.
//
// 5. Absent values: a NULL string pointer from a getter becomes a nil byte
// slice, never an empty string. Metadata fields are device-written and not
// guaranteed to be valid UTF-8, so they cross the boundary as raw bytes.
//
// # Threading
//
// libeep's per-handle state is not reentrant. Callers must not issue calls
// that share a handle from multiple goroutines.
package bindings
