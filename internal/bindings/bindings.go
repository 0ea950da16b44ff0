//go:build cgo && !windows

package bindings

/*
#cgo CFLAGS: -I/usr/local/include
#cgo LDFLAGS: -L/usr/local/lib -leep
#include <stdlib.h>
#include <string.h>
#include <v4/eep.h>
*/
import "C"

import (
	"sync"
	"unsafe"
)

var initOnce sync.Once

// Init performs the process-wide libeep initialization. The native library
// must be initialized before any other call; the sync.Once gate makes
// repeated calls no-ops.
func Init() {
	initOnce.Do(func() {
		C.libeep_init()
	})
}

// Version returns the version string reported by the native library.
func Version() string {
	return C.GoString(C.libeep_get_version())
}

// optBytes copies a native string into Go memory. A NULL pointer maps to a
// nil slice, the absent-value representation used everywhere above this
// layer. The bytes are copied verbatim: device-written metadata is not
// guaranteed to be valid UTF-8.
func optBytes(s *C.char) []byte {
	if s == nil {
		return nil
	}
	n := int(C.strlen(s))
	if n == 0 {
		return []byte{}
	}
	return C.GoBytes(unsafe.Pointer(s), C.int(n))
}

// OpenForReading opens a CNT file. The returned handle is negative when the
// native library could not open the file.
func OpenForReading(path string) int32 {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))
	return int32(C.libeep_read_with_external_triggers(cpath))
}

// WriteCnt creates a CNT file for writing using the channel table
// accumulated in chanInfo. The returned handle is negative on failure.
func WriteCnt(path string, rate int32, chanInfo int32, rf64 int32) int32 {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))
	return int32(C.libeep_write_cnt(cpath, C.int(rate), C.chaninfo_t(chanInfo), C.int(rf64)))
}

// CloseFile releases an open recording handle.
func CloseFile(h int32) {
	C.libeep_close(C.cntfile_t(h))
}

func ChannelCount(h int32) int32 {
	return int32(C.libeep_get_channel_count(C.cntfile_t(h)))
}

func ChannelLabel(h, index int32) []byte {
	return optBytes(C.libeep_get_channel_label(C.cntfile_t(h), C.int(index)))
}

func ChannelStatus(h, index int32) []byte {
	return optBytes(C.libeep_get_channel_status(C.cntfile_t(h), C.int(index)))
}

func ChannelType(h, index int32) []byte {
	return optBytes(C.libeep_get_channel_type(C.cntfile_t(h), C.int(index)))
}

func ChannelUnit(h, index int32) []byte {
	return optBytes(C.libeep_get_channel_unit(C.cntfile_t(h), C.int(index)))
}

func ChannelReference(h, index int32) []byte {
	return optBytes(C.libeep_get_channel_reference(C.cntfile_t(h), C.int(index)))
}

func SampleFrequency(h int32) int32 {
	return int32(C.libeep_get_sample_frequency(C.cntfile_t(h)))
}

func SampleCount(h int32) int64 {
	return int64(C.libeep_get_sample_count(C.cntfile_t(h)))
}

// Samples is a native sample allocation returned by GetSamples. It stays
// valid until Free runs.
type Samples struct {
	data *C.float
	n    int
}

// GetSamples asks the native library for the samples in [from, to). The
// channel count is queried fresh on every call because it can change on a
// writable handle. Returns nil when the native library could not produce
// the buffer.
func GetSamples(h int32, from, to int64) *Samples {
	p := C.libeep_get_samples(C.cntfile_t(h), C.long(from), C.long(to))
	if p == nil {
		return nil
	}
	n := int(to-from) * int(C.libeep_get_channel_count(C.cntfile_t(h)))
	return &Samples{data: p, n: n}
}

// Float32s exposes the native buffer as a float32 slice without copying.
// The slice aliases C memory and must not be used after Free.
func (s *Samples) Float32s() []float32 {
	if s == nil || s.data == nil {
		return nil
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(s.data)), s.n)
}

// Len returns the number of float32 values in the buffer.
func (s *Samples) Len() int {
	if s == nil || s.data == nil {
		return 0
	}
	return s.n
}

// Free releases the native allocation. Calling Free twice is a no-op.
func (s *Samples) Free() {
	if s == nil || s.data == nil {
		return
	}
	C.libeep_free_samples(s.data)
	s.data = nil
	s.n = 0
}

// AddSamples appends rows complete sample rows from values to a writable
// handle. The values are staged in a transient C buffer that is released on
// every path out of this function.
func AddSamples(h int32, values []float32, rows int32) error {
	if rows <= 0 || len(values) == 0 {
		return nil
	}
	size := C.size_t(len(values)) * C.size_t(unsafe.Sizeof(C.float(0)))
	buf := C.malloc(size)
	if buf == nil {
		return ErrNoMemory
	}
	defer C.free(buf)
	C.memcpy(buf, unsafe.Pointer(&values[0]), size)
	C.libeep_add_samples(C.cntfile_t(h), (*C.float)(buf), C.int(rows))
	return nil
}

func TriggerCount(h int32) int32 {
	return int32(C.libeep_get_trigger_count(C.cntfile_t(h)))
}

// Trigger retrieves the trigger at index together with its extension
// record in a single native call.
func Trigger(h, index int32) (code []byte, sample uint64, ext TriggerExtension) {
	var cSample C.uint64_t
	var te C.struct_libeep_trigger_extension
	c := C.libeep_get_trigger_with_extensions(C.cntfile_t(h), C.int(index), &cSample, &te)
	code = optBytes(c)
	sample = uint64(cSample)
	ext = TriggerExtension{
		DurationInSamples: int64(te.duration_in_samples),
		Condition:         optBytes(te.condition),
		Description:       optBytes(te.description),
		Impedances:        optBytes(te.impedances),
	}
	return code, sample, ext
}

func StartTime(h int32) int64 {
	return int64(C.libeep_get_start_time(C.cntfile_t(h)))
}

func StartDateAndFraction(h int32) (float64, float64) {
	var date, fraction C.double
	C.libeep_get_start_date_and_fraction(C.cntfile_t(h), &date, &fraction)
	return float64(date), float64(fraction)
}

func Hospital(h int32) []byte {
	return optBytes(C.libeep_get_hospital(C.cntfile_t(h)))
}

func MachineMake(h int32) []byte {
	return optBytes(C.libeep_get_machine_make(C.cntfile_t(h)))
}

func MachineModel(h int32) []byte {
	return optBytes(C.libeep_get_machine_model(C.cntfile_t(h)))
}

func MachineSerialNumber(h int32) []byte {
	return optBytes(C.libeep_get_machine_serial_number(C.cntfile_t(h)))
}

func PatientID(h int32) []byte {
	return optBytes(C.libeep_get_patient_id(C.cntfile_t(h)))
}

func PatientName(h int32) []byte {
	return optBytes(C.libeep_get_patient_name(C.cntfile_t(h)))
}

// PatientSex returns the single-character sex field. A NUL byte means the
// field is unset.
func PatientSex(h int32) byte {
	return byte(C.libeep_get_patient_sex(C.cntfile_t(h)))
}

func DateOfBirth(h int32) (year, month, day int32) {
	var y, m, d C.int
	C.libeep_get_date_of_birth(C.cntfile_t(h), &y, &m, &d)
	return int32(y), int32(m), int32(d)
}

// CreateChannelInfo allocates a channel-table builder. The returned handle
// lives in a namespace distinct from recording handles and is only a valid
// argument to WriteCnt, AddChannel and CloseChannelInfo.
func CreateChannelInfo() int32 {
	return int32(C.libeep_create_channel_info())
}

func CloseChannelInfo(h int32) {
	C.libeep_close_channel_info(C.chaninfo_t(h))
}

// AddChannel appends a channel definition to a builder handle.
func AddChannel(h int32, label, refLabel, unit string) {
	cLabel := C.CString(label)
	defer C.free(unsafe.Pointer(cLabel))
	cRef := C.CString(refLabel)
	defer C.free(unsafe.Pointer(cRef))
	cUnit := C.CString(unit)
	defer C.free(unsafe.Pointer(cUnit))
	C.libeep_add_channel(C.chaninfo_t(h), cLabel, cRef, cUnit)
}
