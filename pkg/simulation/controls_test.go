package simulation

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestTimeScaleControls(t *testing.T) {
	v := 1.0
	for i := 0; i < 20; i++ {
		v = IncreaseTimeScale(v)
	}
	if v != MaxTimeScale {
		t.Errorf("after 20 increases = %g, want %g", v, MaxTimeScale)
	}
	for i := 0; i < 30; i++ {
		v = DecreaseTimeScale(v)
	}
	if v != MinTimeScale {
		t.Errorf("after 30 decreases = %g, want %g", v, MinTimeScale)
	}

	tests := []struct{ in, want float64 }{
		{0, MinTimeScale},
		{0.94, 0.9},
		{1.26, 1.3},
		{5, MaxTimeScale},
	}
	for _, tt := range tests {
		if got := ClampTimeScale(tt.in); got != tt.want {
			t.Errorf("ClampTimeScale(%g) = %g, want %g", tt.in, got, tt.want)
		}
	}
}

func TestMetricsObserveSteps(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	sim := loadSolar(t)
	sim.SetMetrics(m)
	for i := 0; i < 3; i++ {
		if _, err := sim.Step(0.5); err != nil {
			t.Fatal(err)
		}
	}

	if got := testutil.ToFloat64(m.steps); got != 3 {
		t.Errorf("steps = %g, want 3", got)
	}
	if got := testutil.ToFloat64(m.elapsed); got != 3*43200 {
		t.Errorf("elapsed = %g, want %g", got, 3*43200.0)
	}
	if got := testutil.ToFloat64(m.timeScale); got != 0.5 {
		t.Errorf("time scale = %g, want 0.5", got)
	}
	if got := testutil.ToFloat64(m.energy); got >= 0 {
		t.Errorf("energy = %g, want bound system (< 0)", got)
	}
	if got := testutil.ToFloat64(m.speed.WithLabelValues("earth")); got <= 0 {
		t.Errorf("earth speed = %g", got)
	}
	if n := testutil.CollectAndCount(m.speed); n != 10 {
		t.Errorf("speed series = %d, want 10", n)
	}

	sim.SetMetrics(nil)
	if _, err := sim.Step(1); err != nil {
		t.Fatal(err)
	}
	if got := testutil.ToFloat64(m.steps); got != 3 {
		t.Errorf("detached metrics still counted: %g", got)
	}
}
