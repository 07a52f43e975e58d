package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/bitwizeshift/glut-solar-system-simulation/pkg/simulation"
)

func newSolar(t *testing.T) *simulation.Simulator {
	t.Helper()
	sim, err := simulation.LoadEnvironment("solar")
	if err != nil {
		t.Fatal(err)
	}
	return sim
}

func TestRunFixedSteps(t *testing.T) {
	sim := newSolar(t)
	rep, err := run(context.Background(), sim, runOptions{Steps: 50, TimeScale: 1, Samples: 10})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if rep.Steps != 50 || sim.Steps != 50 {
		t.Errorf("steps = %d / %d, want 50", rep.Steps, sim.Steps)
	}
	if sim.Elapsed != 50*86400 {
		t.Errorf("elapsed = %g", sim.Elapsed)
	}
	if len(rep.Drift) > 10 {
		t.Errorf("kept %d drift samples, want at most 10", len(rep.Drift))
	}
}

func TestRunClampsTimeScale(t *testing.T) {
	sim := newSolar(t)
	if _, err := run(context.Background(), sim, runOptions{Steps: 2, TimeScale: 7}); err != nil {
		t.Fatal(err)
	}
	if sim.TimeScale != simulation.MaxTimeScale || sim.Elapsed != 2*2*86400 {
		t.Errorf("time scale %g, elapsed %g", sim.TimeScale, sim.Elapsed)
	}
}

func TestRunPacedStopsOnCancel(t *testing.T) {
	sim := newSolar(t)
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	rep, err := run(ctx, sim, runOptions{Steps: 0, TimeScale: 1, Rate: 50})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if rep.Steps == 0 || rep.Steps > 20 {
		t.Errorf("paced run took %d steps in 100ms at 50/s", rep.Steps)
	}
}

func TestRunCancelledBeforeStart(t *testing.T) {
	sim := newSolar(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rep, err := run(ctx, sim, runOptions{Steps: 10, TimeScale: 1})
	if err != nil {
		t.Fatal(err)
	}
	if rep.Steps != 0 || sim.Elapsed != 0 {
		t.Errorf("cancelled run stepped %d times", rep.Steps)
	}
}

func TestReportWrite(t *testing.T) {
	sim := newSolar(t)
	rep, err := run(context.Background(), sim, runOptions{Steps: 30, TimeScale: 1, Samples: 30})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := rep.write(&buf, sim, true); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"solar: 30 steps", "earth", "pluto", "energy drift", "relative energy drift"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestBodiesCommand(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"bodies", "--env", "solar"})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"10 bodies", "sun", "jupiter", "1.990e+30"} {
		if !strings.Contains(out, want) {
			t.Errorf("bodies output missing %q:\n%s", want, out)
		}
	}
}
