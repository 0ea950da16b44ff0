package libeep

import "github.com/eegtools/libeep-go/internal/bindings"

// sampleBuffer is a native sample allocation. Float32s aliases the native
// memory and is invalid after Free.
type sampleBuffer interface {
	Float32s() []float32
	Len() int
	Free()
}

// native mirrors the libeep entry points this package consumes, one method
// per native call. The indirection exists so tests can substitute an
// in-memory implementation with a counting allocator; production code
// always goes through internal/bindings.
type native interface {
	Init()
	Version() string
	OpenForReading(path string) int32
	WriteCnt(path string, rate, chanInfo, rf64 int32) int32
	CloseFile(h int32)
	ChannelCount(h int32) int32
	ChannelLabel(h, index int32) []byte
	ChannelStatus(h, index int32) []byte
	ChannelType(h, index int32) []byte
	ChannelUnit(h, index int32) []byte
	ChannelReference(h, index int32) []byte
	SampleFrequency(h int32) int32
	SampleCount(h int32) int64
	GetSamples(h int32, from, to int64) sampleBuffer
	AddSamples(h int32, values []float32, rows int32) error
	TriggerCount(h int32) int32
	Trigger(h, index int32) (code []byte, sample uint64, ext bindings.TriggerExtension)
	StartTime(h int32) int64
	StartDateAndFraction(h int32) (date, fraction float64)
	Hospital(h int32) []byte
	MachineMake(h int32) []byte
	MachineModel(h int32) []byte
	MachineSerialNumber(h int32) []byte
	PatientID(h int32) []byte
	PatientName(h int32) []byte
	PatientSex(h int32) byte
	DateOfBirth(h int32) (year, month, day int32)
	CreateChannelInfo() int32
	CloseChannelInfo(h int32)
	AddChannel(h int32, label, refLabel, unit string)
}

// nativeLib routes every call to the cgo bindings layer.
type nativeLib struct{}

func (nativeLib) Init()                  { bindings.Init() }
func (nativeLib) Version() string        { return bindings.Version() }
func (nativeLib) OpenForReading(path string) int32 { return bindings.OpenForReading(path) }

func (nativeLib) WriteCnt(path string, rate, chanInfo, rf64 int32) int32 {
	return bindings.WriteCnt(path, rate, chanInfo, rf64)
}

func (nativeLib) CloseFile(h int32)                     { bindings.CloseFile(h) }
func (nativeLib) ChannelCount(h int32) int32            { return bindings.ChannelCount(h) }
func (nativeLib) ChannelLabel(h, index int32) []byte    { return bindings.ChannelLabel(h, index) }
func (nativeLib) ChannelStatus(h, index int32) []byte   { return bindings.ChannelStatus(h, index) }
func (nativeLib) ChannelType(h, index int32) []byte     { return bindings.ChannelType(h, index) }
func (nativeLib) ChannelUnit(h, index int32) []byte     { return bindings.ChannelUnit(h, index) }
func (nativeLib) ChannelReference(h, index int32) []byte {
	return bindings.ChannelReference(h, index)
}
func (nativeLib) SampleFrequency(h int32) int32 { return bindings.SampleFrequency(h) }
func (nativeLib) SampleCount(h int32) int64     { return bindings.SampleCount(h) }

func (nativeLib) GetSamples(h int32, from, to int64) sampleBuffer {
	s := bindings.GetSamples(h, from, to)
	if s == nil {
		return nil
	}
	return s
}

func (nativeLib) AddSamples(h int32, values []float32, rows int32) error {
	return bindings.AddSamples(h, values, rows)
}

func (nativeLib) TriggerCount(h int32) int32 { return bindings.TriggerCount(h) }

func (nativeLib) Trigger(h, index int32) ([]byte, uint64, bindings.TriggerExtension) {
	return bindings.Trigger(h, index)
}

func (nativeLib) StartTime(h int32) int64 { return bindings.StartTime(h) }

func (nativeLib) StartDateAndFraction(h int32) (float64, float64) {
	return bindings.StartDateAndFraction(h)
}

func (nativeLib) Hospital(h int32) []byte     { return bindings.Hospital(h) }
func (nativeLib) MachineMake(h int32) []byte  { return bindings.MachineMake(h) }
func (nativeLib) MachineModel(h int32) []byte { return bindings.MachineModel(h) }
func (nativeLib) MachineSerialNumber(h int32) []byte {
	return bindings.MachineSerialNumber(h)
}
func (nativeLib) PatientID(h int32) []byte   { return bindings.PatientID(h) }
func (nativeLib) PatientName(h int32) []byte { return bindings.PatientName(h) }
func (nativeLib) PatientSex(h int32) byte    { return bindings.PatientSex(h) }

func (nativeLib) DateOfBirth(h int32) (int32, int32, int32) {
	return bindings.DateOfBirth(h)
}

func (nativeLib) CreateChannelInfo() int32  { return bindings.CreateChannelInfo() }
func (nativeLib) CloseChannelInfo(h int32)  { bindings.CloseChannelInfo(h) }
func (nativeLib) AddChannel(h int32, label, refLabel, unit string) {
	bindings.AddChannel(h, label, refLabel, unit)
}

// lib is the active native implementation. Tests swap it for a fake.
var lib native = nativeLib{}

// The native library must be initialized exactly once before any other
// call. Doing it at package init keeps every exported operation reachable
// only after initialization.
func init() {
	lib.Init()
}
