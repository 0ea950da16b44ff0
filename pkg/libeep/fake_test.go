package libeep

import (
	"testing"

	"github.com/eegtools/libeep-go/internal/bindings"
)

type fakeChannel struct {
	label, status, typ, unit, ref []byte
}

type fakeTrigger struct {
	code        []byte
	sample      uint64
	duration    int64
	condition   []byte
	description []byte
	impedances  []byte
}

type fakeRecording struct {
	channels []fakeChannel
	samples  []float32 // row-major by sample then channel
	rate     int32
	triggers []fakeTrigger

	startTime     int64
	startDate     float64
	startFraction float64

	hospital      []byte
	machineMake   []byte
	machineModel  []byte
	machineSerial []byte
	patientID     []byte
	patientName   []byte
	patientSex    byte
	dobYear       int32
	dobMonth      int32
	dobDay        int32
}

func (r *fakeRecording) sampleTotal() int64 {
	if len(r.channels) == 0 {
		return 0
	}
	return int64(len(r.samples) / len(r.channels))
}

type fakeBuilder struct {
	channels []fakeChannel
	closed   bool
}

// fakeNative is an in-memory stand-in for the native library. Sample
// buffers come from a counting allocator so tests can assert on exactly one
// release per allocation.
type fakeNative struct {
	t *testing.T

	recordings map[string]*fakeRecording // openable by path
	files      map[int32]*fakeRecording
	builders   map[int32]*fakeBuilder
	nextFile   int32
	nextBuild  int32

	inits  int
	opens  int
	allocs int
	frees  int

	failSamples bool
	ingestErr   error
}

func newFakeNative(t *testing.T) *fakeNative {
	return &fakeNative{
		t:          t,
		recordings: map[string]*fakeRecording{},
		files:      map[int32]*fakeRecording{},
		builders:   map[int32]*fakeBuilder{},
		nextFile:   1,
		nextBuild:  1,
	}
}

// withFake swaps the native implementation for an in-memory fake for the
// duration of the test.
func withFake(t *testing.T) *fakeNative {
	t.Helper()
	f := newFakeNative(t)
	prev := lib
	lib = f
	t.Cleanup(func() { lib = prev })
	return f
}

func (f *fakeNative) addRecording(path string, rec *fakeRecording) {
	f.recordings[path] = rec
}

// open registers a recording and opens it directly, for tests that do not
// go through a filesystem path.
func (f *fakeNative) open(rec *fakeRecording) FileHandle {
	h := f.nextFile
	f.nextFile++
	f.files[h] = rec
	return FileHandle(h)
}

func (f *fakeNative) Init() { f.inits++ }

func (f *fakeNative) Version() string { return "3.3.177" }

func (f *fakeNative) OpenForReading(path string) int32 {
	f.opens++
	rec, ok := f.recordings[path]
	if !ok {
		return -1
	}
	h := f.nextFile
	f.nextFile++
	f.files[h] = rec
	return h
}

func (f *fakeNative) WriteCnt(path string, rate, chanInfo, rf64 int32) int32 {
	b, ok := f.builders[chanInfo]
	if !ok || b.closed || len(b.channels) == 0 || rate <= 0 {
		return -1
	}
	rec := &fakeRecording{
		channels: append([]fakeChannel(nil), b.channels...),
		rate:     rate,
	}
	h := f.nextFile
	f.nextFile++
	f.files[h] = rec
	f.recordings[path] = rec
	return h
}

func (f *fakeNative) CloseFile(h int32) {
	delete(f.files, h)
}

func (f *fakeNative) ChannelCount(h int32) int32 {
	rec, ok := f.files[h]
	if !ok {
		return -1
	}
	return int32(len(rec.channels))
}

func (f *fakeNative) channelAt(h, index int32) *fakeChannel {
	rec, ok := f.files[h]
	if !ok || index < 0 || int(index) >= len(rec.channels) {
		return nil
	}
	return &rec.channels[index]
}

func (f *fakeNative) ChannelLabel(h, index int32) []byte {
	if ch := f.channelAt(h, index); ch != nil {
		return ch.label
	}
	return nil
}

func (f *fakeNative) ChannelStatus(h, index int32) []byte {
	if ch := f.channelAt(h, index); ch != nil {
		return ch.status
	}
	return nil
}

func (f *fakeNative) ChannelType(h, index int32) []byte {
	if ch := f.channelAt(h, index); ch != nil {
		return ch.typ
	}
	return nil
}

func (f *fakeNative) ChannelUnit(h, index int32) []byte {
	if ch := f.channelAt(h, index); ch != nil {
		return ch.unit
	}
	return nil
}

func (f *fakeNative) ChannelReference(h, index int32) []byte {
	if ch := f.channelAt(h, index); ch != nil {
		return ch.ref
	}
	return nil
}

func (f *fakeNative) SampleFrequency(h int32) int32 {
	rec, ok := f.files[h]
	if !ok {
		return -1
	}
	return rec.rate
}

func (f *fakeNative) SampleCount(h int32) int64 {
	rec, ok := f.files[h]
	if !ok {
		return -1
	}
	return rec.sampleTotal()
}

type fakeBuffer struct {
	f     *fakeNative
	data  []float32
	freed bool
}

func (b *fakeBuffer) Float32s() []float32 {
	if b.freed {
		return nil
	}
	return b.data
}

func (b *fakeBuffer) Len() int {
	if b.freed {
		return 0
	}
	return len(b.data)
}

func (b *fakeBuffer) Free() {
	if b.freed {
		b.f.t.Error("double free of sample buffer")
		return
	}
	b.freed = true
	b.f.frees++
}

func (f *fakeNative) GetSamples(h int32, from, to int64) sampleBuffer {
	if f.failSamples {
		return nil
	}
	rec, ok := f.files[h]
	if !ok || len(rec.channels) == 0 {
		return nil
	}
	if from < 0 || to < from || to > rec.sampleTotal() {
		return nil
	}
	cc := int64(len(rec.channels))
	data := make([]float32, (to-from)*cc)
	copy(data, rec.samples[from*cc:to*cc])
	f.allocs++
	return &fakeBuffer{f: f, data: data}
}

func (f *fakeNative) AddSamples(h int32, values []float32, rows int32) error {
	if f.ingestErr != nil {
		return f.ingestErr
	}
	rec, ok := f.files[h]
	if !ok {
		return nil
	}
	cc := len(rec.channels)
	rec.samples = append(rec.samples, values[:int(rows)*cc]...)
	return nil
}

func (f *fakeNative) TriggerCount(h int32) int32 {
	rec, ok := f.files[h]
	if !ok {
		return -1
	}
	return int32(len(rec.triggers))
}

func (f *fakeNative) Trigger(h, index int32) ([]byte, uint64, bindings.TriggerExtension) {
	rec, ok := f.files[h]
	if !ok || index < 0 || int(index) >= len(rec.triggers) {
		return nil, 0, bindings.TriggerExtension{}
	}
	tr := rec.triggers[index]
	return tr.code, tr.sample, bindings.TriggerExtension{
		DurationInSamples: tr.duration,
		Condition:         tr.condition,
		Description:       tr.description,
		Impedances:        tr.impedances,
	}
}

func (f *fakeNative) StartTime(h int32) int64 {
	if rec, ok := f.files[h]; ok {
		return rec.startTime
	}
	return 0
}

func (f *fakeNative) StartDateAndFraction(h int32) (float64, float64) {
	if rec, ok := f.files[h]; ok {
		return rec.startDate, rec.startFraction
	}
	return 0, 0
}

func (f *fakeNative) Hospital(h int32) []byte {
	if rec, ok := f.files[h]; ok {
		return rec.hospital
	}
	return nil
}

func (f *fakeNative) MachineMake(h int32) []byte {
	if rec, ok := f.files[h]; ok {
		return rec.machineMake
	}
	return nil
}

func (f *fakeNative) MachineModel(h int32) []byte {
	if rec, ok := f.files[h]; ok {
		return rec.machineModel
	}
	return nil
}

func (f *fakeNative) MachineSerialNumber(h int32) []byte {
	if rec, ok := f.files[h]; ok {
		return rec.machineSerial
	}
	return nil
}

func (f *fakeNative) PatientID(h int32) []byte {
	if rec, ok := f.files[h]; ok {
		return rec.patientID
	}
	return nil
}

func (f *fakeNative) PatientName(h int32) []byte {
	if rec, ok := f.files[h]; ok {
		return rec.patientName
	}
	return nil
}

func (f *fakeNative) PatientSex(h int32) byte {
	if rec, ok := f.files[h]; ok {
		return rec.patientSex
	}
	return 0
}

func (f *fakeNative) DateOfBirth(h int32) (int32, int32, int32) {
	if rec, ok := f.files[h]; ok {
		return rec.dobYear, rec.dobMonth, rec.dobDay
	}
	return 0, 0, 0
}

func (f *fakeNative) CreateChannelInfo() int32 {
	h := f.nextBuild
	f.nextBuild++
	f.builders[h] = &fakeBuilder{}
	return h
}

func (f *fakeNative) CloseChannelInfo(h int32) {
	if b, ok := f.builders[h]; ok {
		b.closed = true
	}
}

func (f *fakeNative) AddChannel(h int32, label, refLabel, unit string) {
	b, ok := f.builders[h]
	if !ok || b.closed {
		return
	}
	b.channels = append(b.channels, fakeChannel{
		label: []byte(label),
		ref:   []byte(refLabel),
		unit:  []byte(unit),
	})
}

// fourChannelRecording builds the canonical test fixture: 4 channels, 100
// samples per channel, deterministic values.
func fourChannelRecording() *fakeRecording {
	rec := &fakeRecording{
		channels: []fakeChannel{
			{label: []byte("Fp1"), unit: []byte("uV"), ref: []byte("CPz")},
			{label: []byte("Fp2"), unit: []byte("uV"), ref: []byte("CPz")},
			{label: []byte("Cz"), unit: []byte("uV"), ref: []byte("CPz")},
			{label: []byte("Oz"), unit: []byte("uV"), ref: []byte("CPz")},
		},
		rate:      512,
		startTime: 1700000000,
	}
	rec.samples = make([]float32, 4*100)
	for i := range rec.samples {
		rec.samples[i] = float32(i) * 0.25
	}
	return rec
}
