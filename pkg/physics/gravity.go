package physics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// G is the CODATA gravitational constant in m³/(kg·s²).
	G = 6.674e-11
	// LegacyG is the constant the historical solar system runs used.
	LegacyG = 6.67e-11
)

// PairForce returns the force exerted by b on a:
// g * ma * mb * (pb - pa) / |pb - pa|³.
// Every axis is scaled by the same 1/|r|³ factor.
func PairForce(a, b Body, g float64) r3.Vec {
	delta := r3.Sub(b.Pos, a.Pos)
	dist := math.Sqrt(delta.X*delta.X + delta.Y*delta.Y + delta.Z*delta.Z)
	f := g * a.Mass * b.Mass / (dist * dist * dist)
	return r3.Vec{X: f * delta.X, Y: f * delta.Y, Z: f * delta.Z}
}

// AccumulateForces sums the pairwise forces acting on every body using the
// full double loop, so each unordered pair is evaluated twice. The forces
// slice is reused when it has enough capacity.
func AccumulateForces(bodies []Body, g float64, forces []r3.Vec) []r3.Vec {
	forces = resetForces(forces, len(bodies))
	for i := range bodies {
		for j := range bodies {
			if i == j {
				continue
			}
			forces[i] = r3.Add(forces[i], PairForce(bodies[i], bodies[j], g))
		}
	}
	return forces
}

// AccumulateForcesSymmetric evaluates each unordered pair once and applies
// the reaction to the other body.
func AccumulateForcesSymmetric(bodies []Body, g float64, forces []r3.Vec) []r3.Vec {
	forces = resetForces(forces, len(bodies))
	for i := range bodies {
		for j := i + 1; j < len(bodies); j++ {
			f := PairForce(bodies[i], bodies[j], g)
			forces[i] = r3.Add(forces[i], f)
			forces[j] = r3.Sub(forces[j], f)
		}
	}
	return forces
}

func resetForces(forces []r3.Vec, n int) []r3.Vec {
	if cap(forces) < n {
		return make([]r3.Vec, n)
	}
	forces = forces[:n]
	for i := range forces {
		forces[i] = r3.Vec{}
	}
	return forces
}

// CircularVelocity returns the speed of a circular orbit of radius r around
// centralMass: v = sqrt(g*M/r).
func CircularVelocity(centralMass, r, g float64) float64 {
	return math.Sqrt(g * centralMass / r)
}

// CircularOrbitVelocity returns the velocity body needs for a circular orbit
// around center. The orbit is prograde about +Z; a radius parallel to Z
// falls back to rotating about +Y.
func CircularOrbitVelocity(center, body Body, g float64) r3.Vec {
	rel := r3.Sub(body.Pos, center.Pos)
	r := r3.Norm(rel)
	if r == 0 {
		return center.Vel
	}
	axis := r3.Vec{Z: 1}
	tangent := r3.Cross(axis, rel)
	if r3.Norm(tangent) == 0 {
		tangent = r3.Cross(r3.Vec{Y: 1}, rel)
	}
	v := CircularVelocity(center.Mass, r, g)
	return r3.Add(center.Vel, r3.Scale(v, r3.Unit(tangent)))
}
