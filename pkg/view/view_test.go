package view

import (
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/bitwizeshift/glut-solar-system-simulation/pkg/physics"
	"github.com/bitwizeshift/glut-solar-system-simulation/pkg/simulation"
)

func loadSolar(t *testing.T) *simulation.Simulator {
	t.Helper()
	sim, err := simulation.LoadEnvironment("solar")
	if err != nil {
		t.Fatal(err)
	}
	return sim
}

func TestCameraCycle(t *testing.T) {
	cam := NewCamera(10, 60)
	cam.Prev()
	if cam.Active != 9 {
		t.Errorf("Prev from 0 = %d, want 9", cam.Active)
	}
	cam.Next()
	cam.Next()
	if cam.Active != 1 {
		t.Errorf("Next twice from 9 = %d, want 1", cam.Active)
	}
	if cam.Follow(10) || cam.Active != 1 {
		t.Errorf("Follow(10) accepted, Active = %d", cam.Active)
	}
	if !cam.Follow(3) || cam.Active != 3 {
		t.Errorf("Follow(3) = %d", cam.Active)
	}

	empty := NewCamera(0, 0)
	empty.Next()
	empty.Prev()
	if empty.Active != 0 {
		t.Errorf("empty camera Active = %d", empty.Active)
	}
}

func TestCameraZoomBounds(t *testing.T) {
	cam := NewCamera(10, 60)
	for i := 0; i < 200; i++ {
		cam.ZoomIn()
	}
	if cam.Zoom != MinZoom {
		t.Errorf("Zoom = %g, want %g", cam.Zoom, MinZoom)
	}
	for i := 0; i < 2000; i++ {
		cam.ZoomOut()
	}
	if cam.Zoom != MaxZoom {
		t.Errorf("Zoom = %g, want %g", cam.Zoom, MaxZoom)
	}

	cam.Rotate(-50)
	if cam.YRot < 0 || cam.YRot >= 2*math.Pi {
		t.Errorf("YRot = %g outside [0, 2π)", cam.YRot)
	}
	cam.Follow(4)
	cam.Recenter()
	if cam.YRot != 0 || cam.Zoom != DefaultZoom || cam.Active != 4 {
		t.Errorf("after Recenter: %+v", cam)
	}
}

func TestCameraZoomEases(t *testing.T) {
	cam := NewCamera(10, 60)
	cam.Zoom = 20
	cam.Update()
	if z := cam.CurrentZoom(); z <= DefaultZoom || z >= 20 {
		t.Errorf("first frame zoom = %g, want between %g and 20", z, DefaultZoom)
	}
	for i := 0; i < 600; i++ {
		cam.Update()
	}
	if z := cam.CurrentZoom(); math.Abs(z-20) > 1e-3 {
		t.Errorf("settled zoom = %g, want 20", z)
	}
}

func TestProject(t *testing.T) {
	cam := NewCamera(2, 60)
	const w, h = 800, 600

	center, ok := cam.Project(r3.Vec{}, 1, r3.Vec{}, 1, 1, w, h)
	if !ok || center.X != w/2 || center.Y != h/2 {
		t.Fatalf("target projection = %+v, %v", center, ok)
	}

	right, _ := cam.Project(r3.Vec{}, 1, r3.Vec{X: 1}, 1, 1, w, h)
	up, _ := cam.Project(r3.Vec{}, 1, r3.Vec{Y: 1}, 1, 1, w, h)
	if right.X <= center.X || right.Y != center.Y {
		t.Errorf("+X projected to %+v", right)
	}
	if up.Y >= center.Y {
		t.Errorf("+Y projected to %+v, want above center", up)
	}

	if _, ok := cam.Project(r3.Vec{}, 1, r3.Vec{Z: 50}, 1, 1, w, h); ok {
		t.Error("point behind the eye reported visible")
	}

	cam.YRot = math.Pi / 2
	tilted, ok := cam.Project(r3.Vec{}, 1, r3.Vec{Y: 1}, 1, 1, w, h)
	if !ok || math.Abs(tilted.X-w/2) > 1e-9 || math.Abs(tilted.Y-h/2) > 1e-9 {
		t.Errorf("tilted +Y projected to %+v, want center", tilted)
	}
	if tilted.Radius <= center.Radius {
		t.Errorf("closer body radius %g not larger than %g", tilted.Radius, center.Radius)
	}
}

func TestDisplayRadius(t *testing.T) {
	d := simulation.DisplayConfig{Scale: 5e-11, StarMultiplier: 50, PlanetMultiplier: 100}
	if r := DisplayRadius(d, 0, 695500000); math.Abs(r-695500000*5e-11*50) > 1e-12 {
		t.Errorf("sun radius = %g", r)
	}
	if r := DisplayRadius(d, 3, 6378100); math.Abs(r-6378100*5e-11*100) > 1e-12 {
		t.Errorf("earth radius = %g", r)
	}
}

func TestSceneSortedFarToNear(t *testing.T) {
	sim := loadSolar(t)
	cam := NewCamera(len(sim.Bodies), 60)
	cam.YRot = 1.0

	sprites := Scene(sim, cam, 1024, 768)
	if len(sprites) == 0 {
		t.Fatal("no visible bodies")
	}
	for i := 1; i < len(sprites); i++ {
		if sprites[i-1].Depth < sprites[i].Depth {
			t.Fatalf("sprites not sorted far to near at %d", i)
		}
	}
	var sawSun bool
	for _, sp := range sprites {
		if sp.Index == 0 {
			sawSun = true
			if sp.Color != sim.Colors[0] {
				t.Errorf("sun color = %+v", sp.Color)
			}
		}
	}
	if !sawSun {
		t.Error("followed body not visible")
	}
}

func TestShadeAndHighlight(t *testing.T) {
	c := color.RGBA{200, 100, 50, 255}
	if got := Shade(c, 0); got != c {
		t.Errorf("Shade(c, 0) = %+v", got)
	}
	if got := Shade(c, 1); got.R != 0 || got.G != 0 || got.B != 0 || got.A != 255 {
		t.Errorf("Shade(c, 1) = %+v, want black", got)
	}
	if got := Highlight(c, 1); got.R != 255 || got.G != 255 || got.B != 255 {
		t.Errorf("Highlight(c, 1) = %+v, want white", got)
	}
	if got := Shade(c, 0.5); got.R >= c.R {
		t.Errorf("Shade(c, 0.5) = %+v, not darker", got)
	}
}

func TestTrails(t *testing.T) {
	tr := NewTrails(2, 3)
	bodies := []physics.Body{{Mass: 1}, {Mass: 1}}
	for i := 0; i < 5; i++ {
		bodies[0].Pos.X = float64(i)
		bodies[1].Pos.Y = float64(i)
		tr.Record(bodies)
	}
	pts := tr.Points(0)
	if len(pts) != 3 || pts[0].X != 2 || pts[2].X != 4 {
		t.Errorf("trail = %+v", pts)
	}
	if tr.Points(7) != nil {
		t.Error("Points(7) not nil")
	}
	tr.Reset()
	if len(tr.Points(1)) != 0 {
		t.Error("Reset left points behind")
	}
}

func TestDiagnostics(t *testing.T) {
	sim := loadSolar(t)
	cam := NewCamera(len(sim.Bodies), 60)
	cam.Follow(3)
	if _, err := sim.Step(1); err != nil {
		t.Fatal(err)
	}

	line := Diagnostics(sim, cam)
	for _, want := range []string{"Speed Multiplier: 1.0x", "86400.000 s", "1.000 d", "Active Camera: 3 (earth)", "Scale Factor: 10.0"} {
		if !strings.Contains(line, want) {
			t.Errorf("Diagnostics() = %q, missing %q", line, want)
		}
	}
}

func TestDrawTerminal(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(80, 24)

	sim := loadSolar(t)
	cam := NewCamera(len(sim.Bodies), 30)
	cam.Zoom = MaxZoom
	for i := 0; i < 600; i++ {
		cam.Update()
	}
	DrawTerminal(screen, sim, cam)

	var status strings.Builder
	for x := 0; x < 80; x++ {
		r, _, _, _ := screen.GetContent(x, 0)
		status.WriteRune(r)
	}
	if !strings.Contains(status.String(), "sun") {
		t.Errorf("status line = %q", status.String())
	}

	var bodies int
	for y := 1; y < 24; y++ {
		for x := 0; x < 80; x++ {
			r, _, _, _ := screen.GetContent(x, y)
			if r == '@' || r == 'o' || r == '·' {
				bodies++
			}
		}
	}
	if bodies == 0 {
		t.Error("no bodies drawn")
	}
}
