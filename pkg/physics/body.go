package physics

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// --- Body ---

// Body is a point mass. Radius is carried for display only and never
// enters the force calculation.
type Body struct {
	Mass   float64
	Radius float64
	Pos    r3.Vec
	Vel    r3.Vec
	Acc    r3.Vec
}

// Speed returns |Vel|.
func (b Body) Speed() float64 {
	return r3.Norm(b.Vel)
}

// DistanceTo returns the distance between the centers of b and o.
func (b Body) DistanceTo(o Body) float64 {
	return r3.Norm(r3.Sub(o.Pos, b.Pos))
}
