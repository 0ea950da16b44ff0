package libeep

import (
	"math"
	"time"
)

// The recording start date travels in EXCEL serial-date format: fractional
// days since 1899-12-30. Values outside this window are not valid dates.
const (
	excelDateMin    = 27538.0
	excelDateMax    = 2958464.0
	excelEpochShift = 2209161600 // seconds between 1899-12-30 and the UNIX epoch
)

// StartTime returns the acquisition start time as UNIX epoch seconds.
func StartTime(h FileHandle) int64 {
	return lib.StartTime(int32(h))
}

// StartTimeUTC returns the acquisition start time as a UTC time.Time.
func StartTimeUTC(h FileHandle) time.Time {
	return time.Unix(StartTime(h), 0).UTC()
}

// StartDateAndFraction returns the raw EXCEL-format start date and the
// sub-second fraction stored alongside it.
func StartDateAndFraction(h FileHandle) (date, fraction float64) {
	return lib.StartDateAndFraction(int32(h))
}

// StartTimeAndFraction resolves the EXCEL-format start date plus fraction
// into a UTC time. The boolean is false when the stored date is outside the
// valid EXCEL window.
func StartTimeAndFraction(h FileHandle) (time.Time, bool) {
	date, fraction := StartDateAndFraction(h)
	if date < excelDateMin || excelDateMax < date {
		return time.Time{}, false
	}
	secs := int64(math.Round(date*86400.0)) - excelEpochShift
	t := time.Unix(secs, 0).Add(time.Duration(fraction * float64(time.Second)))
	return t.UTC(), true
}

// Hospital returns the hospital field. The boolean is false when the field
// is unset.
func Hospital(h FileHandle) ([]byte, bool) {
	return present(lib.Hospital(int32(h)))
}

// MachineMake returns the amplifier make.
func MachineMake(h FileHandle) ([]byte, bool) {
	return present(lib.MachineMake(int32(h)))
}

// MachineModel returns the amplifier model.
func MachineModel(h FileHandle) ([]byte, bool) {
	return present(lib.MachineModel(int32(h)))
}

// MachineSerialNumber returns the amplifier serial number.
func MachineSerialNumber(h FileHandle) ([]byte, bool) {
	return present(lib.MachineSerialNumber(int32(h)))
}

// PatientID returns the patient identifier.
func PatientID(h FileHandle) ([]byte, bool) {
	return present(lib.PatientID(int32(h)))
}

// PatientName returns the patient name.
func PatientName(h FileHandle) ([]byte, bool) {
	return present(lib.PatientName(int32(h)))
}

// PatientSex returns the single-character sex field. A NUL byte means the
// field is unset.
func PatientSex(h FileHandle) byte {
	return lib.PatientSex(int32(h))
}

// DateOfBirth returns the raw year, month and day fields. Any of them may
// be zero when unset; see Reader.PatientInfo for the resolved form.
func DateOfBirth(h FileHandle) (year, month, day int) {
	y, m, d := lib.DateOfBirth(int32(h))
	return int(y), int(m), int(d)
}
