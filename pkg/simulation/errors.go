package simulation

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig indicates an environment that cannot be simulated.
	ErrInvalidConfig = errors.New("simulation: invalid environment")

	// ErrInvalidTimeScale indicates a time scale that is not a positive finite number.
	ErrInvalidTimeScale = errors.New("simulation: time scale must be positive")
)

// StepError wraps a failure with the clock state it was detected at.
type StepError struct {
	Step    int
	Elapsed float64
	Err     error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.0fs): %v", e.Step, e.Elapsed, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
