package bindings

import "errors"

var (
	// ErrNotBuilt reports that the native bindings were not linked into the
	// current binary.
	ErrNotBuilt = errors.New("libeep/internal/bindings: native bindings not built")

	// ErrNoMemory reports that a transient native buffer could not be
	// allocated. Allocation is checked explicitly rather than assumed to
	// succeed.
	ErrNoMemory = errors.New("libeep/internal/bindings: native buffer allocation failed")
)

// TriggerExtension carries the optional metadata attached to a trigger.
// Condition, Description and Impedances are nil when the native record has
// no value for them.
type TriggerExtension struct {
	DurationInSamples int64
	Condition         []byte
	Description       []byte
	Impedances        []byte
}
