package libeep

// FileHandle identifies an open recording inside the native library. A
// negative value is the native failure sentinel. The handle is owned and
// validated by the native library; this package never stores it beyond a
// single call.
type FileHandle int32

// ChannelInfoHandle identifies a channel-table builder used while creating
// a new file. It lives in a namespace distinct from FileHandle, so the two
// cannot be mixed at compile time.
type ChannelInfoHandle int32

// Version returns the version string reported by the native library.
func Version() string {
	return lib.Version()
}

// OpenForReading opens a CNT file with external trigger support. The
// returned handle is negative and the error wraps ErrOpenFailed when the
// native library rejects the file.
func OpenForReading(filename string) (FileHandle, error) {
	if filename == "" {
		return -1, &Error{Op: "OpenForReading", Err: ErrEmptyFilename}
	}
	h := FileHandle(lib.OpenForReading(filename))
	if h < 0 {
		return h, errorf("OpenForReading", "%w: %q", ErrOpenFailed, filename)
	}
	return h, nil
}

// WriteCnt creates a CNT file for writing. The channel table comes from a
// builder handle assembled with CreateChannelInfo and AddChannel. Setting
// rf64 selects the 64-bit RIFF container for recordings that may exceed
// 4 GiB.
func WriteCnt(filename string, sampleRate int, chanInfo ChannelInfoHandle, rf64 bool) (FileHandle, error) {
	if filename == "" {
		return -1, &Error{Op: "WriteCnt", Err: ErrEmptyFilename}
	}
	if sampleRate <= 0 {
		return -1, errorf("WriteCnt", "%w: %d", ErrInvalidSampleRate, sampleRate)
	}
	var rf int32
	if rf64 {
		rf = 1
	}
	h := FileHandle(lib.WriteCnt(filename, int32(sampleRate), int32(chanInfo), rf))
	if h < 0 {
		return h, errorf("WriteCnt", "%w: %q", ErrCreateFailed, filename)
	}
	return h, nil
}

// Close releases an open recording handle. Further use of the handle is a
// caller error detected by the native library.
func Close(h FileHandle) {
	lib.CloseFile(int32(h))
}

// ChannelCount returns the number of channels in the recording.
func ChannelCount(h FileHandle) int {
	return int(lib.ChannelCount(int32(h)))
}

// present converts the bindings layer's nil-for-NULL convention into the
// ([]byte, bool) form used across the public API.
func present(b []byte) ([]byte, bool) {
	return b, b != nil
}

// ChannelLabel returns the label of the channel at index. The boolean is
// false when the field is unset or the index is out of range; an unset
// field is never reported as an empty string.
func ChannelLabel(h FileHandle, index int) ([]byte, bool) {
	return present(lib.ChannelLabel(int32(h), int32(index)))
}

// ChannelStatus returns the status of the channel at index.
func ChannelStatus(h FileHandle, index int) ([]byte, bool) {
	return present(lib.ChannelStatus(int32(h), int32(index)))
}

// ChannelType returns the type of the channel at index.
func ChannelType(h FileHandle, index int) ([]byte, bool) {
	return present(lib.ChannelType(int32(h), int32(index)))
}

// ChannelUnit returns the measurement unit of the channel at index.
func ChannelUnit(h FileHandle, index int) ([]byte, bool) {
	return present(lib.ChannelUnit(int32(h), int32(index)))
}

// ChannelReference returns the reference label of the channel at index.
func ChannelReference(h FileHandle, index int) ([]byte, bool) {
	return present(lib.ChannelReference(int32(h), int32(index)))
}

// SampleFrequency returns the sampling rate of the recording in Hz.
func SampleFrequency(h FileHandle) int {
	return int(lib.SampleFrequency(int32(h)))
}

// SampleCount returns the total number of samples, one sample covering all
// channels.
func SampleCount(h FileHandle) int64 {
	return lib.SampleCount(int32(h))
}

// TriggerCount returns the number of triggers in the recording.
func TriggerCount(h FileHandle) int {
	return int(lib.TriggerCount(int32(h)))
}
