package colorconv

import (
	"errors"
	"fmt"
)

var (
	// ErrRange is matched by every *RangeError.
	ErrRange = errors.New("value out of range")
	// ErrFormat is matched by every *FormatError.
	ErrFormat = errors.New("invalid color format")
	// ErrMaximum is matched by every *MaximumError.
	ErrMaximum = errors.New("invalid maximum")
)

// RangeError reports an input channel outside [0, Max].
type RangeError struct {
	Func    string
	Channel string
	Value   float64
	Max     float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: %s = %g is outside [0, %g]", e.Func, e.Channel, e.Value, e.Max)
}

func (e *RangeError) Is(target error) bool {
	return target == ErrRange
}

// FormatError reports a string that cannot be parsed as a color.
type FormatError struct {
	Func   string
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: invalid color %q: %s", e.Func, e.Input, e.Reason)
}

func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

// MaximumError reports a channel maximum that is not a finite positive number.
type MaximumError struct {
	Channel string
	Value   float64
}

func (e *MaximumError) Error() string {
	return fmt.Sprintf("maximum for %s must be a finite positive number, got %g", e.Channel, e.Value)
}

func (e *MaximumError) Is(target error) bool {
	return target == ErrMaximum
}
