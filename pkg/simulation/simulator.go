package simulation

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/bitwizeshift/glut-solar-system-simulation/pkg/physics"
)

const (
	secondsPerDay = 86400.0
	daysPerYear   = 365.25
)

// Simulator owns the body set and the simulation clock. It is not safe for
// concurrent use; Step must run to completion before anything else touches
// the bodies.
type Simulator struct {
	Name      string
	Interval  float64 // base step in seconds, scaled by the time scale
	G         float64
	Pairing   string
	TimeScale float64
	Elapsed   float64
	Steps     int

	Bodies  []physics.Body
	Names   []string
	Colors  []color.RGBA
	Display DisplayConfig

	index         map[string]int
	forces        []r3.Vec
	initialEnergy float64
	metrics       *Metrics
}

// --- Building the simulator from configuration ---
func NewSimulator(cfg EnvironmentConfig) (*Simulator, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	bodies := make([]physics.Body, len(cfg.Bodies))
	names := make([]string, len(cfg.Bodies))
	colors := make([]color.RGBA, len(cfg.Bodies))
	index := make(map[string]int, len(cfg.Bodies))

	for i, b := range cfg.Bodies {
		bodies[i] = b.body()
		names[i] = b.Name
		colors[i] = parseColor(b.Color)
		if b.Name != "" {
			if _, dup := index[b.Name]; dup {
				return nil, fmt.Errorf("duplicate body name %q: %w", b.Name, ErrInvalidConfig)
			}
			index[b.Name] = i
		}
	}
	if err := physics.Validate(bodies); err != nil {
		return nil, fmt.Errorf("environment %q: %w", cfg.Name, err)
	}

	return &Simulator{
		Name:          cfg.Name,
		Interval:      cfg.Interval,
		G:             cfg.GravityConstant,
		Pairing:       cfg.Pairing,
		TimeScale:     1.0,
		Bodies:        bodies,
		Names:         names,
		Colors:        colors,
		Display:       cfg.Display,
		index:         index,
		forces:        make([]r3.Vec, len(bodies)),
		initialEnergy: physics.TotalEnergy(bodies, cfg.GravityConstant),
	}, nil
}

func (b BodyConfig) body() physics.Body {
	return physics.Body{
		Mass:   b.Mass,
		Radius: b.Radius,
		Pos:    r3.Vec{X: b.Pos[0], Y: b.Pos[1], Z: b.Pos[2]},
		Vel:    r3.Vec{X: b.Vel[0], Y: b.Vel[1], Z: b.Vel[2]},
	}
}

// --- Stepping ---

// Step advances the system by Interval*timeScale seconds and returns the
// new elapsed time. A non-positive or non-finite timeScale is rejected
// without touching any state.
func (s *Simulator) Step(timeScale float64) (float64, error) {
	if !(timeScale > 0) || math.IsInf(timeScale, 0) {
		return s.Elapsed, fmt.Errorf("time scale %g: %w", timeScale, ErrInvalidTimeScale)
	}
	interval := s.Interval * timeScale

	if s.Pairing == PairingSymmetric {
		s.forces = physics.AccumulateForcesSymmetric(s.Bodies, s.G, s.forces)
	} else {
		s.forces = physics.AccumulateForces(s.Bodies, s.G, s.forces)
	}
	physics.IntegrateEulerSymplectic(s.Bodies, s.forces, interval)

	s.Elapsed += interval
	s.Steps++
	if s.metrics != nil {
		s.metrics.observe(s, timeScale)
	}
	return s.Elapsed, nil
}

// Update steps with the simulator's own TimeScale.
func (s *Simulator) Update() error {
	_, err := s.Step(s.TimeScale)
	return err
}

// CheckFinite reports numerical divergence after a step.
func (s *Simulator) CheckFinite() error {
	if err := physics.CheckFinite(s.Bodies); err != nil {
		return &StepError{Step: s.Steps, Elapsed: s.Elapsed, Err: err}
	}
	return nil
}

// --- Clock ---

func (s *Simulator) Days() float64 {
	return s.Elapsed / secondsPerDay
}

func (s *Simulator) Years() float64 {
	return s.Days() / daysPerYear
}

// --- Diagnostics ---

// Energy returns the current total energy of the system.
func (s *Simulator) Energy() float64 {
	return physics.TotalEnergy(s.Bodies, s.G)
}

// EnergyDrift is the relative change in total energy since construction.
func (s *Simulator) EnergyDrift() float64 {
	return physics.RelativeDrift(s.Energy(), s.initialEnergy)
}

// Index maps a body name to its stable index.
func (s *Simulator) Index(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

// Label returns the name of body i, or its index when unnamed.
func (s *Simulator) Label(i int) string {
	if i >= 0 && i < len(s.Names) && s.Names[i] != "" {
		return s.Names[i]
	}
	return fmt.Sprintf("#%d", i)
}
