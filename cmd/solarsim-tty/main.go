// Command solarsim-tty draws the solar system simulation in a terminal.
package main

import (
	"flag"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/bitwizeshift/glut-solar-system-simulation/pkg/simulation"
	"github.com/bitwizeshift/glut-solar-system-simulation/pkg/view"
)

const fps = 30

type app struct {
	sim    *simulation.Simulator
	cam    *view.Camera
	screen tcell.Screen
	paused bool

	dragging bool
	lastY    int

	logEvery int
}

// handle applies one input event. It returns false when the user quits.
func (a *app) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			a.cam.Prev()
		case tcell.KeyRight:
			a.cam.Next()
		case tcell.KeyUp:
			a.cam.ZoomIn()
		case tcell.KeyDown:
			a.cam.ZoomOut()
		case tcell.KeyRune:
			a.handleRune(ev.Rune())
		}
	case *tcell.EventMouse:
		_, y := ev.Position()
		switch {
		case ev.Buttons()&tcell.Button1 != 0:
			if a.dragging {
				// one row of drag is worth several pixels
				a.cam.Rotate(float64(y-a.lastY) * 8)
			}
			a.dragging = true
		case ev.Buttons()&tcell.Button2 != 0:
			a.cam.Recenter()
			a.dragging = false
		default:
			a.dragging = false
		}
		a.lastY = y
	}
	return true
}

func (a *app) handleRune(r rune) {
	switch {
	case r == 'q':
		a.sim.TimeScale = simulation.IncreaseTimeScale(a.sim.TimeScale)
	case r == 'a':
		a.sim.TimeScale = simulation.DecreaseTimeScale(a.sim.TimeScale)
	case r == 'c':
		a.cam.Recenter()
	case r == 'p':
		a.paused = !a.paused
	case r == 'n' && a.paused:
		a.step()
	case r >= '0' && r <= '9':
		a.cam.Follow(int(r - '0'))
	}
}

func (a *app) step() {
	if err := a.sim.Update(); err != nil {
		log.Printf("step: %v", err)
		a.paused = true
		return
	}
	if err := a.sim.CheckFinite(); err != nil {
		log.Printf("simulation diverged: %v", err)
		a.paused = true
	}
	if a.logEvery > 0 && a.sim.Steps%a.logEvery == 0 {
		log.Print(view.Diagnostics(a.sim, a.cam))
	}
}

func (a *app) loop() {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / fps)
	defer ticker.Stop()
	for {
		select {
		case ev, ok := <-events:
			if !ok || !a.handle(ev) {
				return
			}
		case <-ticker.C:
			if !a.paused {
				a.step()
			}
			a.cam.Update()
			view.DrawTerminal(a.screen, a.sim, a.cam)
		}
	}
}

func main() {
	envName := flag.String("env", "solar", "bundled environment (solar, twobody)")
	configPath := flag.String("config", "", "environment JSON file; overrides -env")
	logFile := flag.String("log", "", "write diagnostics to this file (discarded when empty)")
	logEvery := flag.Int("log-every", 30, "log diagnostics every N steps (0 disables)")
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

	// the screen owns stdout and stderr while running
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("open log: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("terminal: %v", err)
	}
	screen.EnableMouse()

	a := &app{
		sim:      sim,
		cam:      view.NewCamera(len(sim.Bodies), fps),
		screen:   screen,
		logEvery: *logEvery,
	}
	a.loop()
	screen.Fini()

	log.SetOutput(os.Stderr)
	log.Print(view.Diagnostics(sim, a.cam))
}
