package libeep

// TriggerRecord is the flattened trigger-with-extensions record. The field
// order is part of the contract consumed by callers: code, sample offset,
// duration, condition, description, impedances.
//
// Condition, Description and Impedances are nil when the native record has
// no value for them; Impedances holds space-separated impedance readings
// when present.
type TriggerRecord struct {
	Code              string
	SampleOffset      uint64
	DurationInSamples int64
	Condition         []byte
	Description       []byte
	Impedances        []byte
}

// Trigger returns the trigger at index. A single native call retrieves the
// code, the sample offset and the extension record. Index validity is the
// caller's concern (see Reader.Trigger for a checked variant); an invalid
// index yields a zero record.
func Trigger(h FileHandle, index int) TriggerRecord {
	code, sample, ext := lib.Trigger(int32(h), int32(index))
	return TriggerRecord{
		Code:              string(code),
		SampleOffset:      sample,
		DurationInSamples: ext.DurationInSamples,
		Condition:         ext.Condition,
		Description:       ext.Description,
		Impedances:        ext.Impedances,
	}
}
