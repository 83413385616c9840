package weight

import (
	"fmt"
)

// Returned when a weighting scheme is constructed with a malformed
// normalization string, an unknown normalization variant or a
// non-positive parameter. No scheme is created.
type InvalidArgumentError struct {
	Msg string
}

func (err *InvalidArgumentError) Error() string {
	return err.Msg
}

func newInvalidArgumentError(format string, args ...interface{}) *InvalidArgumentError {
	return &InvalidArgumentError{fmt.Sprintf(format, args...)}
}

// Returned when serialized scheme parameters are truncated, carry
// trailing bytes or name a variant this build does not know.
type SerializationError struct {
	Msg string
	Err error
}

func (err *SerializationError) Error() string {
	if err.Err != nil {
		return fmt.Sprintf("%v: %v", err.Msg, err.Err)
	}
	return err.Msg
}

func (err *SerializationError) Unwrap() error {
	return err.Err
}

// Returned by the registry when no scheme is registered under a name.
type UnknownWeightError struct {
	Name string
}

func (err *UnknownWeightError) Error() string {
	return fmt.Sprintf("unknown weighting scheme: %q", err.Name)
}

func assertTrue(ok bool) {
	if !ok {
		panic("assert fail")
	}
}
