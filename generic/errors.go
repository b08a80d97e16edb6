/*
errors.go - Centralized error types for the pay engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  Domain packages should wrap these errors with additional context.

ERROR CATEGORIES:
  1. Validation errors - Caller supplied an impossible shift or rate table
  2. Input errors - The adapter could not parse the request document
  3. Lookup errors - A named resource (scenario) does not exist

USAGE:
  Callers branch on the sentinel, not on the message:

    if errors.Is(err, generic.ErrInvalidShift) {
        return http.StatusBadRequest
    }

SEE ALSO:
  - payroll/calculator.go: Raises shift and rate errors
  - factory/input.go: Raises MalformedInputError
*/
package generic

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidShift is returned when a shift does not start strictly before it ends.
	ErrInvalidShift = errors.New("invalid shift: start must precede end")

	// ErrInvalidRateWindow is returned when day/night windows are not
	// complementary or a window carries an unusable value.
	ErrInvalidRateWindow = errors.New("invalid rate window")

	// ErrInvalidBreakPolicy is returned for a non-positive work span or a
	// negative break span.
	ErrInvalidBreakPolicy = errors.New("invalid break policy")

	// ErrMalformedInput is returned when an input document cannot be parsed.
	ErrMalformedInput = errors.New("malformed input")

	// ErrScenarioNotFound is returned when a referenced scenario doesn't exist.
	ErrScenarioNotFound = errors.New("scenario not found")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InvalidShiftError reports the offending interval.
type InvalidShiftError struct {
	Start TimePoint
	End   TimePoint
}

func (e *InvalidShiftError) Error() string {
	return fmt.Sprintf("%q to %q: shift must start before it ends", e.Start, e.End)
}

func (e *InvalidShiftError) Unwrap() error {
	return ErrInvalidShift
}

// InvalidRateWindowError names the window and what is wrong with it.
type InvalidRateWindowError struct {
	Window string // e.g. "standardNight"
	Reason string
}

func (e *InvalidRateWindowError) Error() string {
	return fmt.Sprintf("invalid rate window %s: %s", e.Window, e.Reason)
}

func (e *InvalidRateWindowError) Unwrap() error {
	return ErrInvalidRateWindow
}

// MalformedInputError wraps the parse failure with the field it happened on.
type MalformedInputError struct {
	Field string // JSON path, e.g. "shift.start"; empty for whole-document errors
	Err   error
}

func (e *MalformedInputError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("malformed input: %v", e.Err)
	}
	return fmt.Sprintf("malformed input at %s: %v", e.Field, e.Err)
}

// Unwrap exposes both the sentinel and the underlying cause.
func (e *MalformedInputError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMalformedInput}
	}
	return []error{ErrMalformedInput, e.Err}
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid client input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidShift) ||
		errors.Is(err, ErrInvalidRateWindow) ||
		errors.Is(err, ErrMalformedInput)
}

// IsNotFound returns true if the error indicates a missing resource.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrScenarioNotFound)
}

// ErrorCode maps an error to the short code used in API responses.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrInvalidShift):
		return "invalid_shift"
	case errors.Is(err, ErrInvalidRateWindow):
		return "invalid_rate_window"
	case errors.Is(err, ErrMalformedInput):
		return "malformed_input"
	case errors.Is(err, ErrInvalidBreakPolicy):
		return "invalid_break_policy"
	case errors.Is(err, ErrScenarioNotFound):
		return "not_found"
	default:
		return "internal"
	}
}
