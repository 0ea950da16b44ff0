package libeep

// Writer wraps a writable recording handle together with the channel count
// fixed at creation time, so appended sample slices can be split into rows
// without repeating the count at every call.
type Writer struct {
	h        FileHandle
	channels int
	closed   bool
}

// NewWriter creates a CNT file using the channel table accumulated in b.
// The builder stays usable (and must still be closed) afterwards; its
// channel count at this moment becomes the writer's row width.
func NewWriter(path string, sampleRate int, b *ChannelInfoBuilder, rf64 bool) (*Writer, error) {
	if b == nil || b.closed {
		return nil, &Error{Op: "NewWriter", Err: ErrBuilderClosed}
	}
	if b.Count() == 0 {
		return nil, errorf("NewWriter", "%w: builder has no channels", ErrInvalidChannelCount)
	}
	h, err := WriteCnt(path, sampleRate, b.Handle(), rf64)
	if err != nil {
		return nil, err
	}
	return &Writer{h: h, channels: b.Count()}, nil
}

// Handle exposes the underlying recording handle for raw operations.
func (w *Writer) Handle() FileHandle {
	return w.h
}

// ChannelCount returns the row width fixed at creation time.
func (w *Writer) ChannelCount() int {
	return w.channels
}

// Append ingests values as complete rows. Trailing values that do not fill
// a row are dropped, matching IngestSamples.
func (w *Writer) Append(values []float32) error {
	if w.closed {
		return ErrWriterClosed
	}
	return IngestSamples(w.h, values, w.channels)
}

// Close finalizes the file and releases the handle. The second and later
// calls report ErrWriterClosed.
func (w *Writer) Close() error {
	if w == nil {
		return nil
	}
	if w.closed {
		return ErrWriterClosed
	}
	Close(w.h)
	w.closed = true
	return nil
}
