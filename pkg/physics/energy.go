package physics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// KineticEnergy returns Σ ½ m v².
func KineticEnergy(bodies []Body) float64 {
	var e float64
	for _, b := range bodies {
		e += 0.5 * b.Mass * r3.Norm2(b.Vel)
	}
	return e
}

// PotentialEnergy returns -Σ g mi mj / rij over unordered pairs.
func PotentialEnergy(bodies []Body, g float64) float64 {
	var e float64
	for i := range bodies {
		for j := i + 1; j < len(bodies); j++ {
			e -= g * bodies[i].Mass * bodies[j].Mass / bodies[i].DistanceTo(bodies[j])
		}
	}
	return e
}

// TotalEnergy is kinetic plus potential energy.
func TotalEnergy(bodies []Body, g float64) float64 {
	return KineticEnergy(bodies) + PotentialEnergy(bodies, g)
}

// Momentum returns Σ m v.
func Momentum(bodies []Body) r3.Vec {
	var p r3.Vec
	for _, b := range bodies {
		p = r3.Add(p, r3.Scale(b.Mass, b.Vel))
	}
	return p
}

// CenterOfMass returns the mass weighted mean position.
func CenterOfMass(bodies []Body) r3.Vec {
	var (
		sum   r3.Vec
		total float64
	)
	for _, b := range bodies {
		sum = r3.Add(sum, r3.Scale(b.Mass, b.Pos))
		total += b.Mass
	}
	if total == 0 {
		return r3.Vec{}
	}
	return r3.Scale(1/total, sum)
}

// RelativeDrift returns |e - ref| / |ref|, or |e| when ref is zero.
func RelativeDrift(e, ref float64) float64 {
	if ref == 0 {
		return math.Abs(e)
	}
	return math.Abs((e - ref) / ref)
}
