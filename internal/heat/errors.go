package heat

import (
	"errors"
	"fmt"
)

// Error categories. Every error returned by this package matches one of
// them with errors.Is.
var (
	// ErrConfiguration indicates invalid construction parameters.
	ErrConfiguration = errors.New("heat: invalid configuration")

	// ErrNumerical indicates the update operator could not be built.
	ErrNumerical = errors.New("heat: numerical failure")
)

// Specific failures, each wrapping its category.
var (
	// ErrUnknownScheme indicates a scheme other than Explicit or Implicit.
	ErrUnknownScheme = fmt.Errorf("%w: unknown scheme", ErrConfiguration)

	// ErrResolution indicates a grid too small for a second-order operator.
	ErrResolution = fmt.Errorf("%w: grid resolution too small", ErrConfiguration)

	// ErrDimensionMismatch indicates an operator or vector of the wrong size.
	ErrDimensionMismatch = fmt.Errorf("%w: dimension mismatch", ErrConfiguration)

	// ErrStepSize indicates a non-positive spacing, safety factor or step.
	ErrStepSize = fmt.Errorf("%w: invalid step size input", ErrConfiguration)

	// ErrMaxTime indicates a non-positive or non-finite end time.
	ErrMaxTime = fmt.Errorf("%w: max time must be positive and finite", ErrConfiguration)

	// ErrSingular indicates the implicit system matrix could not be inverted.
	ErrSingular = fmt.Errorf("%w: singular implicit operator", ErrNumerical)
)

// ValidateMaxTime reports whether t is a usable end time for RunUntil.
func ValidateMaxTime(t float64) error {
	if !isPositiveFinite(t) {
		return fmt.Errorf("%w, got %v", ErrMaxTime, t)
	}
	return nil
}
