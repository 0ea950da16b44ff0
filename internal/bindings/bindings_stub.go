//go:build !cgo || windows

package bindings

// Stub implementations for non-cgo builds or Windows. These keep the
// package compiling; calls report failure through the same sentinels the
// native library uses (negative handles, nil buffers) or ErrNotBuilt.

func Init() {}

func Version() string { return "" }

func OpenForReading(string) int32 { return -1 }

func WriteCnt(string, int32, int32, int32) int32 { return -1 }

func CloseFile(int32) {}

func ChannelCount(int32) int32 { return -1 }

func ChannelLabel(int32, int32) []byte { return nil }

func ChannelStatus(int32, int32) []byte { return nil }

func ChannelType(int32, int32) []byte { return nil }

func ChannelUnit(int32, int32) []byte { return nil }

func ChannelReference(int32, int32) []byte { return nil }

func SampleFrequency(int32) int32 { return -1 }

func SampleCount(int32) int64 { return -1 }

// Samples mirrors the cgo buffer type so callers compile unchanged.
type Samples struct{}

func GetSamples(int32, int64, int64) *Samples { return nil }

func (s *Samples) Float32s() []float32 { return nil }

func (s *Samples) Len() int { return 0 }

func (s *Samples) Free() {}

func AddSamples(int32, []float32, int32) error { return ErrNotBuilt }

func TriggerCount(int32) int32 { return -1 }

func Trigger(int32, int32) ([]byte, uint64, TriggerExtension) {
	return nil, 0, TriggerExtension{}
}

func StartTime(int32) int64 { return 0 }

func StartDateAndFraction(int32) (float64, float64) { return 0, 0 }

func Hospital(int32) []byte { return nil }

func MachineMake(int32) []byte { return nil }

func MachineModel(int32) []byte { return nil }

func MachineSerialNumber(int32) []byte { return nil }

func PatientID(int32) []byte { return nil }

func PatientName(int32) []byte { return nil }

func PatientSex(int32) byte { return 0 }

func DateOfBirth(int32) (int32, int32, int32) { return 0, 0, 0 }

func CreateChannelInfo() int32 { return -1 }

func CloseChannelInfo(int32) {}

func AddChannel(int32, string, string, string) {}
