// Package libeep provides Go bindings for the libeep CNT continuous-
// recording library used by ANT Neuro EEG amplifiers.
//
// The package is a call-translation surface over the native handle API:
// every operation marshals its arguments, makes exactly one native call and
// marshals the result back. File parsing, trigger storage, channel tables
// and sample compression all live inside the native library and are
// addressed through opaque handles.
//
// # Handles
//
// Open recordings and channel-table builders live in two distinct handle
// namespaces. FileHandle and ChannelInfoHandle are separate types so the
// compiler rejects a builder handle where a recording handle is expected.
// The native library owns and validates handle state; this package keeps no
// per-handle state of its own.
//
// # Metadata and absent values
//
// String-valued metadata getters return ([]byte, bool). The boolean is
// false when the native field is unset (a NULL pointer), which is distinct
// from an empty string. Values are raw bytes because amplifier-written
// fields are not guaranteed to be valid UTF-8; callers pick the decoding.
//
// # Sample buffers
//
// ExportSamples copies the requested range into a fresh Go slice and
// releases the native buffer before returning. ExportSamplesView wraps the
// native buffer directly in a read-only SampleView, trading the copy for a
// lifetime obligation: the view must be closed, and its slice must not be
// retained or written through. Either way the native allocation is released
// exactly once.
//
// # Threading
//
// All calls are synchronous and uninterruptible. The native library's
// per-handle state is not reentrant: do not issue calls that share a handle
// from multiple goroutines without external synchronization. Independent
// handles are unrelated and need no coordination.
package libeep
