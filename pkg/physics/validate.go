package physics

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrNoBodies         = errors.New("physics: no bodies")
	ErrNonPositiveMass  = errors.New("physics: mass must be positive and finite")
	ErrCoincidentBodies = errors.New("physics: two bodies share a position")
	ErrNonFinite        = errors.New("physics: non-finite position or velocity")
)

// Validate checks the preconditions of the force law: at least one body,
// positive finite masses and pairwise distinct positions.
func Validate(bodies []Body) error {
	if len(bodies) == 0 {
		return ErrNoBodies
	}
	for i, b := range bodies {
		if !(b.Mass > 0) || math.IsInf(b.Mass, 0) {
			return fmt.Errorf("body %d mass %g: %w", i, b.Mass, ErrNonPositiveMass)
		}
	}
	for i := range bodies {
		for j := i + 1; j < len(bodies); j++ {
			if bodies[i].Pos == bodies[j].Pos {
				return fmt.Errorf("bodies %d and %d: %w", i, j, ErrCoincidentBodies)
			}
		}
	}
	return nil
}

// CheckFinite reports the first body whose position or velocity holds NaN
// or ±Inf.
func CheckFinite(bodies []Body) error {
	for i, b := range bodies {
		for _, v := range [...]float64{b.Pos.X, b.Pos.Y, b.Pos.Z, b.Vel.X, b.Vel.Y, b.Vel.Z} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("body %d: %w", i, ErrNonFinite)
			}
		}
	}
	return nil
}
