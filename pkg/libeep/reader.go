package libeep

import (
	"os"
	"path/filepath"
	"time"
)

// Channel groups the descriptor fields of one channel. Each field is nil
// when the native table has no value for it.
type Channel struct {
	Label     []byte
	Unit      []byte
	Reference []byte
	Status    []byte
	Type      []byte
}

// MachineInfo groups the amplifier metadata fields.
type MachineInfo struct {
	Make         []byte
	Model        []byte
	SerialNumber []byte
}

// PatientInfo groups the patient metadata fields. Sex is zero when unset.
// BirthDate is the zero time when the stored year, month or day fields do
// not form a valid date (zero is their initial value in new files).
type PatientInfo struct {
	Name      []byte
	ID        []byte
	Sex       byte
	BirthDate time.Time
}

// Reader wraps an open recording handle with index and range validation on
// top of the raw operation surface. Invalid arguments fail locally before
// any native call.
type Reader struct {
	h      FileHandle
	closed bool
}

// OpenReader opens a CNT file for reading. The file must exist and carry
// the .cnt extension.
func OpenReader(path string) (*Reader, error) {
	if filepath.Ext(path) != ".cnt" {
		return nil, errorf("OpenReader", "%w: %q", ErrUnsupportedExtension, filepath.Ext(path))
	}
	if _, err := os.Stat(path); err != nil {
		return nil, errorf("OpenReader", "%w: %v", ErrOpenFailed, err)
	}
	h, err := OpenForReading(path)
	if err != nil {
		return nil, err
	}
	return &Reader{h: h}, nil
}

// Handle exposes the underlying recording handle for raw operations.
func (r *Reader) Handle() FileHandle {
	return r.h
}

// Close releases the recording handle. The second and later calls report
// ErrReaderClosed.
func (r *Reader) Close() error {
	if r == nil {
		return nil
	}
	if r.closed {
		return ErrReaderClosed
	}
	Close(r.h)
	r.closed = true
	return nil
}

// ChannelCount returns the number of channels.
func (r *Reader) ChannelCount() int {
	return ChannelCount(r.h)
}

// Channel returns the descriptor of the channel at index, validating the
// index against the current channel count first.
func (r *Reader) Channel(index int) (Channel, error) {
	if index < 0 {
		return Channel{}, errorf("Channel", "%w: %d", ErrIndexOutOfRange, index)
	}
	if n := r.ChannelCount(); index >= n {
		return Channel{}, errorf("Channel", "%w: %d of %d", ErrIndexOutOfRange, index, n)
	}
	label, _ := ChannelLabel(r.h, index)
	unit, _ := ChannelUnit(r.h, index)
	ref, _ := ChannelReference(r.h, index)
	status, _ := ChannelStatus(r.h, index)
	typ, _ := ChannelType(r.h, index)
	return Channel{Label: label, Unit: unit, Reference: ref, Status: status, Type: typ}, nil
}

// SampleFrequency returns the sampling rate in Hz.
func (r *Reader) SampleFrequency() int {
	return SampleFrequency(r.h)
}

// SampleCount returns the total number of samples.
func (r *Reader) SampleCount() int64 {
	return SampleCount(r.h)
}

func (r *Reader) checkSampleRange(op string, from, to int64) error {
	if err := checkRange(op, from, to); err != nil {
		return err
	}
	if n := r.SampleCount(); to > n {
		return errorf(op, "%w: end %d exceeds sample count %d", ErrInvalidRange, to, n)
	}
	return nil
}

// Samples returns the samples in [from, to) as an owned slice, validating
// the range against the current sample count first.
func (r *Reader) Samples(from, to int64) ([]float32, error) {
	if err := r.checkSampleRange("Samples", from, to); err != nil {
		return nil, err
	}
	return ExportSamples(r.h, from, to)
}

// SamplesView returns the samples in [from, to) as a zero-copy view. The
// caller must Close the view; see SampleView.
func (r *Reader) SamplesView(from, to int64) (*SampleView, error) {
	if err := r.checkSampleRange("SamplesView", from, to); err != nil {
		return nil, err
	}
	return ExportSamplesView(r.h, from, to)
}

// StartTime returns the acquisition start time in UTC.
func (r *Reader) StartTime() time.Time {
	return StartTimeUTC(r.h)
}

// StartTimeAndFraction returns the sub-second acquisition start time, false
// when the stored EXCEL date is invalid.
func (r *Reader) StartTimeAndFraction() (time.Time, bool) {
	return StartTimeAndFraction(r.h)
}

// Hospital returns the hospital field, false when unset.
func (r *Reader) Hospital() ([]byte, bool) {
	return Hospital(r.h)
}

// MachineInfo returns the amplifier make, model and serial number.
func (r *Reader) MachineInfo() MachineInfo {
	mk, _ := MachineMake(r.h)
	model, _ := MachineModel(r.h)
	serial, _ := MachineSerialNumber(r.h)
	return MachineInfo{Make: mk, Model: model, SerialNumber: serial}
}

// PatientInfo returns the patient metadata with the raw date-of-birth
// fields resolved to a time.Time when they form a valid date.
func (r *Reader) PatientInfo() PatientInfo {
	name, _ := PatientName(r.h)
	id, _ := PatientID(r.h)
	info := PatientInfo{Name: name, ID: id, Sex: PatientSex(r.h)}
	year, month, day := DateOfBirth(r.h)
	if d, ok := birthDate(year, month, day); ok {
		info.BirthDate = d
	}
	return info
}

// birthDate validates the raw date-of-birth fields. Zero is the initial
// value of each field in new files and does not form a valid date.
func birthDate(year, month, day int) (time.Time, bool) {
	if year < 1 || month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range days (Feb 30 becomes Mar 1);
	// reject fields that did not survive the round trip.
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}

// TriggerCount returns the number of triggers.
func (r *Reader) TriggerCount() int {
	return TriggerCount(r.h)
}

// Trigger returns the trigger at index, validating the index against the
// current trigger count first.
func (r *Reader) Trigger(index int) (TriggerRecord, error) {
	if index < 0 {
		return TriggerRecord{}, errorf("Trigger", "%w: %d", ErrIndexOutOfRange, index)
	}
	if n := r.TriggerCount(); index >= n {
		return TriggerRecord{}, errorf("Trigger", "%w: %d of %d", ErrIndexOutOfRange, index, n)
	}
	return Trigger(r.h, index), nil
}
