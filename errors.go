package solve

import (
	"errors"
	"fmt"
)

// ErrValidation is the sentinel wrapped by every [ValidationError].
var ErrValidation = errors.New("validation failed")

// ValidationError reports input that was rejected before any computation took
// place: a coefficient list of the wrong length or an invalid sign token.
type ValidationError struct {
	// Op is the name of the operation that rejected its input.
	Op string
	// Msg describes what was wrong, including the offending count or token.
	Msg string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("solve: %s: %s", e.Op, e.Msg)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func validationErrorf(op, format string, args ...any) error {
	return &ValidationError{Op: op, Msg: fmt.Sprintf(format, args...)}
}

// checkArity verifies that coeffs holds exactly want coefficients.
func checkArity(op string, coeffs []float64, want int, wantWord string) error {
	if len(coeffs) != want {
		return validationErrorf(op, "must be %s coefficients, your list has %d coefficients", wantWord, len(coeffs))
	}
	return nil
}
