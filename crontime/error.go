package crontime

import (
	"errors"
	"fmt"
)

// Errors
var (
	ErrInputType      = errors.New("invalid input type")
	ErrStructure      = errors.New("invalid structure")
	ErrRange          = errors.New("out of range")
	ErrInversedRange  = errors.New("inversed values")
	ErrDateConversion = errors.New("value must be convertible into a date")
	ErrTriggerExpired = errors.New("trigger has expired")
)

// inputTypeError returns an input type error with a custom error message,
// which unwraps to ErrInputType.
func inputTypeError(message string) error {
	return fmt.Errorf("%w: %s", ErrInputType, message)
}

// structureError returns a structure error with a custom error message,
// which unwraps to ErrStructure.
func structureError(message string) error {
	return fmt.Errorf("%w: %s", ErrStructure, message)
}

// rangeError returns an out of range error with a custom error message,
// which unwraps to ErrRange.
func rangeError(message string) error {
	return fmt.Errorf("%w: %s", ErrRange, message)
}

// inversedRangeError returns an inversed range error with a custom error
// message, which unwraps to ErrInversedRange.
func inversedRangeError(message string) error {
	return fmt.Errorf("%w: %s", ErrInversedRange, message)
}

// dateConversionError returns a date conversion error with a custom error
// message, which unwraps to ErrDateConversion.
func dateConversionError(message string) error {
	return fmt.Errorf("%w: %s", ErrDateConversion, message)
}
