// Package view holds the presentation side of the simulator: which body
// the camera follows, how world positions land on a screen, and how bodies
// are sized and colored. Nothing here feeds back into the physics.
package view

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	DefaultZoom = 10.0
	MinZoom     = 2.0
	MaxZoom     = 100.0
	ZoomStep    = 0.1

	// DefaultFOV is the vertical field of view in radians (30°).
	DefaultFOV = math.Pi / 6

	nearPlane = 0.01
)

// Camera follows one body from a distance of Zoom display radii, tilted by
// YRot about the X axis.
type Camera struct {
	Active int
	Zoom   float64
	YRot   float64
	FOV    float64

	count int

	// zoom eases toward Zoom so key presses do not jump.
	zoom    float64
	zoomVel float64
	spring  harmonica.Spring
}

// NewCamera returns a camera over count bodies, eased for the given frame
// rate.
func NewCamera(count, fps int) *Camera {
	if fps <= 0 {
		fps = 60
	}
	return &Camera{
		Zoom:   DefaultZoom,
		FOV:    DefaultFOV,
		count:  count,
		zoom:   DefaultZoom,
		spring: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0),
	}
}

func (c *Camera) Next() {
	if c.count == 0 {
		return
	}
	c.Active = (c.Active + 1) % c.count
}

func (c *Camera) Prev() {
	if c.count == 0 {
		return
	}
	c.Active = (c.Active - 1 + c.count) % c.count
}

// Follow selects body i; out-of-range indices are ignored.
func (c *Camera) Follow(i int) bool {
	if i < 0 || i >= c.count {
		return false
	}
	c.Active = i
	return true
}

// ZoomIn moves the eye closer.
func (c *Camera) ZoomIn() {
	if c.Zoom > MinZoom {
		c.Zoom = math.Max(MinZoom, roundTenth(c.Zoom-ZoomStep))
	}
}

// ZoomOut moves the eye away.
func (c *Camera) ZoomOut() {
	if c.Zoom < MaxZoom {
		c.Zoom = math.Min(MaxZoom, roundTenth(c.Zoom+ZoomStep))
	}
}

// Rotate tilts the view by a mouse drag of dy pixels.
func (c *Camera) Rotate(dy float64) {
	c.YRot = math.Mod(c.YRot+dy/100, 2*math.Pi)
	if c.YRot < 0 {
		c.YRot += 2 * math.Pi
	}
}

// Recenter resets tilt and zoom. The followed body and the simulation are
// left alone.
func (c *Camera) Recenter() {
	c.YRot = 0
	c.Zoom = DefaultZoom
}

// Update advances the zoom easing by one frame.
func (c *Camera) Update() {
	c.zoom, c.zoomVel = c.spring.Update(c.zoom, c.zoomVel, c.Zoom)
}

// CurrentZoom is the eased zoom factor used for projection.
func (c *Camera) CurrentZoom() float64 {
	return c.zoom
}

// Projection is a body placed on screen.
type Projection struct {
	X, Y   float64
	Radius float64
	Depth  float64
}

// Project maps pos (world meters) to a w×h screen. target is the followed
// body position, targetRadius its display radius; scale converts meters to
// display units. Points behind the eye are not visible.
func (c *Camera) Project(target r3.Vec, targetRadius float64, pos r3.Vec, radius, scale float64, w, h int) (Projection, bool) {
	rel := r3.Scale(scale, r3.Sub(pos, target))
	rel = r3.Rotate(rel, c.YRot, r3.Vec{X: 1})

	dist := c.zoom * targetRadius
	depth := dist - rel.Z
	if depth <= nearPlane {
		return Projection{}, false
	}

	f := 1 / math.Tan(c.FOV/2) / depth * float64(h) / 2
	return Projection{
		X:      float64(w)/2 + rel.X*f,
		Y:      float64(h)/2 - rel.Y*f,
		Radius: radius * f,
		Depth:  depth,
	}, true
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
