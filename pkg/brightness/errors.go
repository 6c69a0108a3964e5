package brightness

import "fmt"

// Code is a host error code. The values are fixed by the platform
// channel contract and must not be renumbered.
type Code int

const (
	CodeChangeVerification Code = -1
	CodeNullParameter      Code = -2
	CodeMissingValue       Code = -9
	CodeActivityBinding    Code = -10
	CodeSettingLookup      Code = -11
)

// HostError is a coded failure reported by the host capability. It is
// surfaced to callers unchanged: no retry, no fallback value.
type HostError struct {
	Code    Code
	Message string
}

func (e *HostError) Error() string {
	return fmt.Sprintf("brightness host error %d: %s", e.Code, e.Message)
}

// Is matches any HostError carrying the same code, so callers can use
// errors.Is with the exported sentinels below.
func (e *HostError) Is(target error) bool {
	t, ok := target.(*HostError)
	return ok && t.Code == e.Code
}

var (
	ErrChangeVerification = &HostError{CodeChangeVerification, "Unable to change screen brightness"}
	ErrNullParameter      = &HostError{CodeNullParameter, "Unexpected error on null brightness"}
	ErrMissingValue       = &HostError{CodeMissingValue, "Brightness value returns null"}
	ErrActivityBinding    = &HostError{CodeActivityBinding, "Unexpected error on activity binding"}
	ErrSettingLookup      = &HostError{CodeSettingLookup, "Could not find system setting screen brightness value"}
)

// OutOfRangeError reports a brightness value outside [Min, Max].
type OutOfRangeError struct {
	Value float64
	Min   float64
	Max   float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("brightness value %v out of range [%v, %v]", e.Value, e.Min, e.Max)
}
