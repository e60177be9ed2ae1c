package store

import (
	"errors"
	"fmt"
)

// ErrNotFound reports an operation referencing a customer, session or
// timer id the store does not hold. Callers wrap it with the id.
var ErrNotFound = errors.New("not found")

// ErrNoTimeRemaining reports a bank-as-credit call with less than one
// whole minute left on the timer. Nothing is mutated; the caller
// surfaces it as a notice, not a failure.
var ErrNoTimeRemaining = errors.New("no time remaining to bank")

// ValidationError rejects malformed input before any state changes.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func validationf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// FormatError rejects an import payload that is not the exported
// three-key document shape.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return e.Reason
}
