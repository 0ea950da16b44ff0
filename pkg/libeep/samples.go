package libeep

import "runtime"

func checkRange(op string, from, to int64) error {
	if from < 0 || to < from {
		return errorf(op, "%w: [%d, %d)", ErrInvalidRange, from, to)
	}
	return nil
}

func bufferUnavailable(op string, h FileHandle, from, to int64) error {
	return errorf(op, "%w: handle %d range [%d, %d)", ErrBufferUnavailable, h, from, to)
}

// ExportSamples returns the samples in [from, to) as a freshly allocated
// slice, row-major by sample then channel, length (to-from) × channel
// count. The native buffer is copied and released before the call returns,
// so the result is safe to retain.
func ExportSamples(h FileHandle, from, to int64) ([]float32, error) {
	if err := checkRange("ExportSamples", from, to); err != nil {
		return nil, err
	}
	buf := lib.GetSamples(int32(h), from, to)
	if buf == nil {
		return nil, bufferUnavailable("ExportSamples", h, from, to)
	}
	src := buf.Float32s()
	out := make([]float32, len(src))
	copy(out, src)
	buf.Free()
	return out, nil
}

// SampleView is a read-only view over a native sample buffer obtained with
// ExportSamplesView. The view owns the native allocation; Close releases it.
type SampleView struct {
	buf sampleBuffer
}

// ExportSamplesView returns the samples in [from, to) as a zero-copy view
// over the native buffer. This trades the copy of ExportSamples for a
// lifetime obligation: the caller must Close the view and must not use or
// mutate the slice afterwards. A finalizer backstops views that become
// unreachable without Close, so the native allocation is released exactly
// once either way.
func ExportSamplesView(h FileHandle, from, to int64) (*SampleView, error) {
	if err := checkRange("ExportSamplesView", from, to); err != nil {
		return nil, err
	}
	buf := lib.GetSamples(int32(h), from, to)
	if buf == nil {
		return nil, bufferUnavailable("ExportSamplesView", h, from, to)
	}
	v := &SampleView{buf: buf}
	runtime.SetFinalizer(v, func(v *SampleView) { _ = v.Close() })
	return v, nil
}

// Float32s returns the viewed samples without copying. The slice aliases
// native memory: treat it as read-only and do not retain it past Close.
// Returns nil once the view is closed.
func (v *SampleView) Float32s() []float32 {
	if v == nil || v.buf == nil {
		return nil
	}
	return v.buf.Float32s()
}

// Len returns the number of samples in the view, zero once closed.
func (v *SampleView) Len() int {
	if v == nil || v.buf == nil {
		return 0
	}
	return v.buf.Len()
}

// Close releases the native buffer. The first call releases; later calls
// report ErrViewReleased without touching the buffer again.
func (v *SampleView) Close() error {
	if v == nil {
		return nil
	}
	if v.buf == nil {
		return ErrViewReleased
	}
	runtime.SetFinalizer(v, nil)
	v.buf.Free()
	v.buf = nil
	return nil
}

// IngestSamples appends values to a writable handle. The row count is the
// truncating division len(values) / channelCount; trailing values that do
// not fill a complete row are dropped, matching the row-count argument the
// native append call receives. The staging buffer on the native side is
// released on every path, including allocation failure.
func IngestSamples(h FileHandle, values []float32, channelCount int) error {
	if channelCount <= 0 {
		return errorf("IngestSamples", "%w: %d", ErrInvalidChannelCount, channelCount)
	}
	rows := len(values) / channelCount
	if rows == 0 {
		return nil
	}
	if err := lib.AddSamples(int32(h), values, int32(rows)); err != nil {
		return &Error{Op: "IngestSamples", Err: err}
	}
	return nil
}
