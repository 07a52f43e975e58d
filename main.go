package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"golang.org/x/image/font/basicfont"

	"github.com/bitwizeshift/glut-solar-system-simulation/pkg/simulation"
	"github.com/bitwizeshift/glut-solar-system-simulation/pkg/view"
)

const (
	screenWidth  = 1280
	screenHeight = 800

	maxTrailPoints = 360 // one simulated year at 1x
	minSpriteR     = 1.5 // keep far planets visible
)

var trailColor = color.RGBA{90, 90, 120, 160}

// Game ---
type Game struct {
	sim    *simulation.Simulator
	cam    *view.Camera
	trails *view.Trails
	paused bool

	dragging bool
	lastY    int

	logEvery int

	shortcutsVisible bool
}

func newGame(sim *simulation.Simulator, logEvery int) *Game {
	g := &Game{
		sim:              sim,
		cam:              view.NewCamera(len(sim.Bodies), ebiten.TPS()),
		trails:           view.NewTrails(len(sim.Bodies), maxTrailPoints),
		logEvery:         logEvery,
		shortcutsVisible: true,
	}
	g.trails.Record(sim.Bodies)
	return g
}

// Update ---
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.shortcutsVisible = !g.shortcutsVisible
	}

	// time scale
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.sim.TimeScale = simulation.IncreaseTimeScale(g.sim.TimeScale)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.sim.TimeScale = simulation.DecreaseTimeScale(g.sim.TimeScale)
	}

	// camera
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.cam.Prev()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.cam.Next()
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.cam.ZoomIn()
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.cam.ZoomOut()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.cam.Recenter()
	}
	for k := ebiten.Key0; k <= ebiten.Key9; k++ {
		if inpututil.IsKeyJustPressed(k) {
			g.cam.Follow(int(k - ebiten.Key0))
		}
	}

	// drag to tilt
	_, my := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if g.dragging {
			g.cam.Rotate(float64(my - g.lastY))
		}
		g.dragging = true
	} else {
		g.dragging = false
	}
	g.lastY = my

	g.cam.Update()

	if g.paused {
		if inpututil.IsKeyJustPressed(ebiten.KeyN) {
			return g.advanceOneStep()
		}
		return nil
	}
	return g.advanceOneStep()
}

// advanceOneStep ---
func (g *Game) advanceOneStep() error {
	if err := g.sim.Update(); err != nil {
		return err
	}
	if err := g.sim.CheckFinite(); err != nil {
		log.Printf("simulation diverged: %v", err)
		g.paused = true
	}
	g.trails.Record(g.sim.Bodies)

	if g.logEvery > 0 && g.sim.Steps%g.logEvery == 0 {
		log.Print(view.Diagnostics(g.sim, g.cam))
	}
	return nil
}

// Draw ---
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.drawTrails(screen)

	for _, sp := range view.Scene(g.sim, g.cam, screenWidth, screenHeight) {
		r := math.Max(sp.Radius, minSpriteR)
		if sp.X+r < 0 || sp.X-r > screenWidth || sp.Y+r < 0 || sp.Y-r > screenHeight {
			continue
		}
		drawSphere(screen, sp.X, sp.Y, r, sp.Color)
		if sp.Index == g.cam.Active {
			vector.StrokeCircle(screen, float32(sp.X), float32(sp.Y), float32(r+4), 1, color.RGBA{255, 255, 255, 160}, true)
		}
		text.Draw(screen, g.sim.Label(sp.Index), basicfont.Face7x13, int(sp.X+r)+4, int(sp.Y)-4, color.RGBA{200, 200, 200, 200})
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("Env: %s\nSpeed: %.1fx\nElapsed: %.3f d (%.3f y)\nCamera: %d %s\nZoom: %.1f\nPaused: %v",
		g.sim.Name, g.sim.TimeScale, g.sim.Days(), g.sim.Years(), g.cam.Active, g.sim.Label(g.cam.Active), g.cam.Zoom, g.paused))
	if g.shortcutsVisible {
		drawShortcuts(screen)
	}
}

func (g *Game) drawTrails(screen *ebiten.Image) {
	active := g.sim.Bodies[g.cam.Active]
	targetR := view.DisplayRadius(g.sim.Display, g.cam.Active, active.Radius)
	for i := range g.sim.Bodies {
		pts := g.trails.Points(i)
		var prev view.Projection
		var havePrev bool
		for _, p := range pts {
			cur, ok := g.cam.Project(active.Pos, targetR, p, 0, g.sim.Display.Scale, screenWidth, screenHeight)
			if ok && havePrev {
				vector.StrokeLine(screen, float32(prev.X), float32(prev.Y), float32(cur.X), float32(cur.Y), 1, trailColor, true)
			}
			prev, havePrev = cur, ok
		}
	}
}

// drawSphere fakes lighting with a darker rim and an offset highlight.
func drawSphere(screen *ebiten.Image, x, y, r float64, c color.RGBA) {
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r), view.Shade(c, 0.35), true)
	vector.DrawFilledCircle(screen, float32(x-r*0.15), float32(y-r*0.15), float32(r*0.8), c, true)
	if r > 4 {
		vector.DrawFilledCircle(screen, float32(x-r*0.35), float32(y-r*0.35), float32(r*0.25), view.Highlight(c, 0.5), true)
	}
}

var shortcuts = []string{
	"q / a     speed up / slow down",
	"<- / ->   previous / next body",
	"up / down zoom in / out",
	"0-9       follow body",
	"drag      tilt view",
	"c, RMB    recenter camera",
	"p / n     pause / single step",
	"h         hide this panel",
	"Esc       quit",
}

func drawShortcuts(screen *ebiten.Image) {
	const lineH = 16
	w, h := 300, len(shortcuts)*lineH+12
	x, y := screenWidth-w-12, 12
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), color.RGBA{12, 12, 24, 200}, false)
	for i, l := range shortcuts {
		text.Draw(screen, l, basicfont.Face7x13, x+10, y+20+i*lineH, color.RGBA{220, 220, 220, 255})
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	envName := flag.String("env", "solar", "bundled environment (solar, twobody)")
	configPath := flag.String("config", "", "environment JSON file; overrides -env")
	logEvery := flag.Int("log-every", 60, "log diagnostics every N steps (0 disables)")
	flag.Parse()

	var (
		sim *simulation.Simulator
		err error
	)
	if *configPath != "" {
		sim, err = simulation.LoadConfig(*configPath)
	} else {
		sim, err = simulation.LoadEnvironment(*envName)
	}
	if err != nil {
		log.Fatalf("load environment: %v", err)
	}

	game := newGame(sim, *logEvery)
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Solar System - " + sim.Name)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
