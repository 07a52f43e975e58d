package view

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/bitwizeshift/glut-solar-system-simulation/pkg/simulation"
)

// DisplayRadius scales a physical radius for drawing. Body 0 is the star
// and gets its own multiplier.
func DisplayRadius(d simulation.DisplayConfig, index int, radius float64) float64 {
	if index == 0 {
		return radius * d.Scale * d.StarMultiplier
	}
	return radius * d.Scale * d.PlanetMultiplier
}

// Sprite is one projected body ready to draw.
type Sprite struct {
	Index int
	Projection
	Color color.RGBA
}

// Scene projects every body through cam and returns the visible ones
// sorted far to near.
func Scene(sim *simulation.Simulator, cam *Camera, w, h int) []Sprite {
	if len(sim.Bodies) == 0 {
		return nil
	}
	active := cam.Active
	if active >= len(sim.Bodies) {
		active = 0
	}
	target := sim.Bodies[active]
	targetRadius := DisplayRadius(sim.Display, active, target.Radius)

	sprites := make([]Sprite, 0, len(sim.Bodies))
	for i, b := range sim.Bodies {
		p, ok := cam.Project(target.Pos, targetRadius, b.Pos, DisplayRadius(sim.Display, i, b.Radius), sim.Display.Scale, w, h)
		if !ok {
			continue
		}
		sprites = append(sprites, Sprite{Index: i, Projection: p, Color: sim.Colors[i]})
	}
	sort.SliceStable(sprites, func(a, b int) bool {
		return sprites[a].Depth > sprites[b].Depth
	})
	return sprites
}

// Shade darkens c by t in [0,1] in Lab space.
func Shade(c color.RGBA, t float64) color.RGBA {
	base, _ := colorful.MakeColor(c)
	r, g, b := base.BlendLab(colorful.Color{}, clamp01(t)).Clamped().RGB255()
	return color.RGBA{r, g, b, c.A}
}

// Highlight lightens c by t in [0,1] in Lab space.
func Highlight(c color.RGBA, t float64) color.RGBA {
	base, _ := colorful.MakeColor(c)
	r, g, b := base.BlendLab(colorful.Color{R: 1, G: 1, B: 1}, clamp01(t)).Clamped().RGB255()
	return color.RGBA{r, g, b, c.A}
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Diagnostics is the status line the front-ends show and log.
func Diagnostics(sim *simulation.Simulator, cam *Camera) string {
	return fmt.Sprintf("Speed Multiplier: %.1fx | Time Elapsed: %.3f s, %.3f d, %.3f y | Active Camera: %d (%s) | Scale Factor: %.1f",
		sim.TimeScale, sim.Elapsed, sim.Days(), sim.Years(), cam.Active, sim.Label(cam.Active), cam.Zoom)
}
