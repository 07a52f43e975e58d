package view

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/bitwizeshift/glut-solar-system-simulation/pkg/simulation"
)

// DrawTerminal renders the scene onto a tcell screen. Terminal cells are
// about twice as tall as they are wide, so projection runs on a canvas of
// doubled height and rows are halved afterwards.
func DrawTerminal(s tcell.Screen, sim *simulation.Simulator, cam *Camera) {
	s.Clear()
	cols, rows := s.Size()
	if cols == 0 || rows < 2 {
		return
	}

	for _, sp := range Scene(sim, cam, cols, rows*2) {
		x := int(math.Round(sp.X))
		y := int(math.Round(sp.Y / 2))
		if x < 0 || x >= cols || y < 1 || y >= rows {
			continue
		}
		glyph := '·'
		switch {
		case sp.Radius >= 2:
			glyph = '@'
		case sp.Radius >= 0.5:
			glyph = 'o'
		}
		c := sp.Color
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
		if sp.Index == cam.Active {
			style = style.Bold(true)
		}
		s.SetContent(x, y, glyph, nil, style)
		drawText(s, x+2, y, sim.Label(sp.Index), tcell.StyleDefault.Foreground(tcell.ColorGray))
	}

	status := fmt.Sprintf(" %.1fx  %.1f d  %s  zoom %.1f ", sim.TimeScale, sim.Days(), sim.Label(cam.Active), cam.Zoom)
	drawText(s, 0, 0, status, tcell.StyleDefault.Reverse(true))
	s.Show()
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	cols, _ := s.Size()
	for _, r := range text {
		if x >= cols {
			return
		}
		if x >= 0 {
			s.SetContent(x, y, r, nil, style)
		}
		x++
	}
}
