package view

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/bitwizeshift/glut-solar-system-simulation/pkg/physics"
)

// Trails keeps the last few world positions of every body.
type Trails struct {
	max    int
	points [][]r3.Vec
}

func NewTrails(bodies, max int) *Trails {
	return &Trails{max: max, points: make([][]r3.Vec, bodies)}
}

// Record appends the current position of every body, dropping the oldest
// once a trail is full.
func (t *Trails) Record(bodies []physics.Body) {
	for i := range bodies {
		if i >= len(t.points) {
			break
		}
		trail := append(t.points[i], bodies[i].Pos)
		if len(trail) > t.max {
			trail = trail[len(trail)-t.max:]
		}
		t.points[i] = trail
	}
}

// Points returns body i's trail, oldest first.
func (t *Trails) Points(i int) []r3.Vec {
	if i < 0 || i >= len(t.points) {
		return nil
	}
	return t.points[i]
}

func (t *Trails) Reset() {
	for i := range t.points {
		t.points[i] = t.points[i][:0]
	}
}
