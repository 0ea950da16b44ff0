package libeep

import (
	"errors"
	"fmt"

	"github.com/eegtools/libeep-go/internal/bindings"
)

var (
	// ErrNotBuilt reports that the native bindings were not linked into the
	// current binary (cgo disabled or Windows build).
	ErrNotBuilt = bindings.ErrNotBuilt

	// ErrEmptyFilename indicates an empty filename argument, rejected
	// before any native call.
	ErrEmptyFilename = errors.New("libeep: filename must not be empty")

	// ErrUnsupportedExtension indicates a filename without the .cnt suffix.
	ErrUnsupportedExtension = errors.New("libeep: unsupported file extension")

	// ErrOpenFailed indicates the native library could not open the file
	// for reading.
	ErrOpenFailed = errors.New("libeep: open for reading failed")

	// ErrCreateFailed indicates the native library could not create the
	// file for writing.
	ErrCreateFailed = errors.New("libeep: cnt create failed")

	// ErrBuilderUnavailable indicates the native library could not allocate
	// a channel-table builder.
	ErrBuilderUnavailable = errors.New("libeep: channel info builder unavailable")

	// ErrBufferUnavailable indicates the native library could not produce a
	// sample buffer for the requested range. No partial result exists and
	// nothing needs to be released.
	ErrBufferUnavailable = errors.New("libeep: sample buffer unavailable")

	// ErrInvalidRange indicates a sample range with from > to or a negative
	// bound, rejected before any native call.
	ErrInvalidRange = errors.New("libeep: invalid sample range")

	// ErrInvalidChannelCount indicates a non-positive channel count.
	ErrInvalidChannelCount = errors.New("libeep: channel count must be positive")

	// ErrInvalidSampleRate indicates a non-positive sampling rate.
	ErrInvalidSampleRate = errors.New("libeep: sample rate must be positive")

	// ErrIndexOutOfRange indicates a channel or trigger index outside the
	// counts reported by the native library.
	ErrIndexOutOfRange = errors.New("libeep: index out of range")

	// ErrViewReleased indicates a SampleView whose native buffer was
	// already released.
	ErrViewReleased = errors.New("libeep: sample view already released")

	// ErrReaderClosed indicates a Reader that was already closed.
	ErrReaderClosed = errors.New("libeep: reader closed")

	// ErrWriterClosed indicates a Writer that was already closed.
	ErrWriterClosed = errors.New("libeep: writer closed")

	// ErrBuilderClosed indicates a ChannelInfoBuilder that was already
	// closed.
	ErrBuilderClosed = errors.New("libeep: channel info builder closed")
)

// Error wraps an underlying error with the operation that produced it.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("libeep.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func errorf(op string, format string, args ...any) error {
	return &Error{Op: op, Err: fmt.Errorf(format, args...)}
}
