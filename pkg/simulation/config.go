package simulation

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/bitwizeshift/glut-solar-system-simulation/pkg/assets"
	"github.com/bitwizeshift/glut-solar-system-simulation/pkg/physics"
)

const (
	// DefaultInterval is one simulated day in seconds.
	DefaultInterval = 86400.0

	PairingFull      = "full"
	PairingSymmetric = "symmetric"
)

// defaultColor is used for bodies without a valid "color".
var defaultColor = color.RGBA{200, 200, 255, 255}

// --- Environment configuration ---
type EnvironmentConfig struct {
	Name            string        `json:"name"`
	Interval        float64       `json:"interval,omitempty"`
	GravityConstant float64       `json:"gravity_constant,omitempty"`
	Pairing         string        `json:"pairing,omitempty"`
	AutoOrbit       bool          `json:"auto_orbit,omitempty"`
	Display         DisplayConfig `json:"display"`
	Bodies          []BodyConfig  `json:"bodies"`
}

// DisplayConfig scales physical radii into something visible: radius *
// Scale * StarMultiplier for body 0, radius * Scale * PlanetMultiplier for
// the rest.
type DisplayConfig struct {
	Scale            float64 `json:"scale,omitempty"`
	StarMultiplier   float64 `json:"star_multiplier,omitempty"`
	PlanetMultiplier float64 `json:"planet_multiplier,omitempty"`
}

type BodyConfig struct {
	Name   string     `json:"name"`
	Mass   float64    `json:"mass"`
	Radius float64    `json:"radius"`
	Pos    [3]float64 `json:"pos"`
	Vel    [3]float64 `json:"vel"`
	Color  string     `json:"color"`
}

func (c *EnvironmentConfig) applyDefaults() {
	if c.Interval == 0 {
		c.Interval = DefaultInterval
	}
	if c.GravityConstant == 0 {
		c.GravityConstant = physics.G
	}
	if c.Pairing == "" {
		c.Pairing = PairingFull
	}
	if c.Display.Scale == 0 {
		c.Display.Scale = 5e-11
	}
	if c.Display.StarMultiplier == 0 {
		c.Display.StarMultiplier = 50
	}
	if c.Display.PlanetMultiplier == 0 {
		c.Display.PlanetMultiplier = 100
	}
}

func (c *EnvironmentConfig) validate() error {
	if c.Interval < 0 {
		return fmt.Errorf("interval %g: %w", c.Interval, ErrInvalidConfig)
	}
	if c.GravityConstant < 0 {
		return fmt.Errorf("gravity_constant %g: %w", c.GravityConstant, ErrInvalidConfig)
	}
	switch c.Pairing {
	case PairingFull, PairingSymmetric:
	default:
		return fmt.Errorf("pairing %q: %w", c.Pairing, ErrInvalidConfig)
	}
	return nil
}

// SetOrbitalVelocities gives every body that starts at rest a circular
// orbit around body 0.
func SetOrbitalVelocities(cfg *EnvironmentConfig) {
	if len(cfg.Bodies) == 0 {
		return
	}
	central := cfg.Bodies[0].body()
	for i := 1; i < len(cfg.Bodies); i++ {
		b := &cfg.Bodies[i]
		if b.Vel != [3]float64{} {
			continue
		}
		v := physics.CircularOrbitVelocity(central, b.body(), cfg.GravityConstant)
		b.Vel = [3]float64{v.X, v.Y, v.Z}
	}
}

// ParseConfig decodes and normalizes an environment.
func ParseConfig(data []byte) (*EnvironmentConfig, error) {
	var env EnvironmentConfig
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	env.applyDefaults()
	if err := env.validate(); err != nil {
		return nil, err
	}
	if env.AutoOrbit {
		SetOrbitalVelocities(&env)
	}
	return &env, nil
}

// LoadConfig builds a simulator from an environment file on disk.
func LoadConfig(path string) (*Simulator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	return load(data)
}

// LoadEnvironment builds a simulator from a bundled environment.
func LoadEnvironment(name string) (*Simulator, error) {
	data, err := assets.Read(name)
	if err != nil {
		return nil, fmt.Errorf("environment %q: %w", name, err)
	}
	return load(data)
}

func load(data []byte) (*Simulator, error) {
	env, err := ParseConfig(data)
	if err != nil {
		return nil, err
	}
	return NewSimulator(*env)
}

// parseColor accepts "#rrggbb" and falls back to defaultColor.
func parseColor(hex string) color.RGBA {
	c, err := colorful.Hex(hex)
	if err != nil {
		return defaultColor
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}
}
