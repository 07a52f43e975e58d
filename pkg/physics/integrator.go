package physics

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// IntegrateEulerSymplectic advances every body by dt using semi-implicit
// Euler. forces[i] must hold the net force on bodies[i].
func IntegrateEulerSymplectic(bodies []Body, forces []r3.Vec, dt float64) {
	for i := range bodies {
		b := &bodies[i]
		f := forces[i]
		b.Acc = r3.Vec{X: f.X / b.Mass, Y: f.Y / b.Mass, Z: f.Z / b.Mass}

		// Velocity first, then position from the new velocity.
		b.Vel = r3.Add(b.Vel, r3.Scale(dt, b.Acc))
		b.Pos = r3.Add(b.Pos, r3.Scale(dt, b.Vel))
	}
}
