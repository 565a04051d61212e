package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrInvalidCondition indicates condition parameters violating a
	// geometric invariant (Rmax < Rmin, non-positive duration, ...).
	ErrInvalidCondition = errors.New("dynamo: invalid condition")

	// ErrInvalidState indicates a state vector containing NaN or Inf.
	ErrInvalidState = errors.New("dynamo: invalid state (NaN or Inf detected)")

	// ErrStepTooSmall indicates the adaptive timestep fell below minimum.
	ErrStepTooSmall = errors.New("dynamo: adaptive timestep below minimum")

	// ErrEmptyGrid indicates a time grid with fewer than two points.
	ErrEmptyGrid = errors.New("dynamo: time grid needs at least two points")

	// ErrUnknownSeries indicates a label not present in a trajectory.
	ErrUnknownSeries = errors.New("dynamo: unknown series label")
)

// SimError wraps a failure with the step and simulated time it occurred at.
type SimError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *SimError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *SimError) Unwrap() error {
	return e.Wrapped
}
