package libeep

// CreateChannelInfo allocates a fresh channel-table builder in the native
// library. The handle is only a valid argument to AddChannel, WriteCnt and
// CloseChannelInfo; using it after CloseChannelInfo is a caller error
// detected by the native library.
func CreateChannelInfo() (ChannelInfoHandle, error) {
	h := ChannelInfoHandle(lib.CreateChannelInfo())
	if h < 0 {
		return h, &Error{Op: "CreateChannelInfo", Err: ErrBuilderUnavailable}
	}
	return h, nil
}

// CloseChannelInfo releases a channel-table builder handle.
func CloseChannelInfo(h ChannelInfoHandle) {
	lib.CloseChannelInfo(int32(h))
}

// AddChannel appends a channel definition to the builder.
func AddChannel(h ChannelInfoHandle, label, referenceLabel, unit string) {
	lib.AddChannel(int32(h), label, referenceLabel, unit)
}

// ChannelInfoBuilder wraps a ChannelInfoHandle with lifecycle guards and a
// running channel count, for use with NewWriter.
type ChannelInfoBuilder struct {
	h      ChannelInfoHandle
	count  int
	closed bool
}

// NewChannelInfoBuilder allocates a builder in the native library.
func NewChannelInfoBuilder() (*ChannelInfoBuilder, error) {
	h, err := CreateChannelInfo()
	if err != nil {
		return nil, err
	}
	return &ChannelInfoBuilder{h: h}, nil
}

// Add appends a channel definition.
func (b *ChannelInfoBuilder) Add(label, referenceLabel, unit string) error {
	if b.closed {
		return ErrBuilderClosed
	}
	AddChannel(b.h, label, referenceLabel, unit)
	b.count++
	return nil
}

// Handle returns the underlying builder handle for use with WriteCnt.
func (b *ChannelInfoBuilder) Handle() ChannelInfoHandle {
	return b.h
}

// Count returns the number of channels added so far.
func (b *ChannelInfoBuilder) Count() int {
	return b.count
}

// Close releases the builder. The second and later calls report
// ErrBuilderClosed.
func (b *ChannelInfoBuilder) Close() error {
	if b == nil {
		return nil
	}
	if b.closed {
		return ErrBuilderClosed
	}
	CloseChannelInfo(b.h)
	b.closed = true
	return nil
}
