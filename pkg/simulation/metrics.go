package simulation

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bitwizeshift/glut-solar-system-simulation/pkg/physics"
)

// Metrics publishes simulation progress. Values are written by Step only.
type Metrics struct {
	steps       prometheus.Counter
	elapsed     prometheus.Gauge
	timeScale   prometheus.Gauge
	energy      prometheus.Gauge
	energyDrift prometheus.Gauge
	speed       *prometheus.GaugeVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		steps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "solarsim_steps_total",
			Help: "Integration steps taken",
		}),
		elapsed: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "solarsim_elapsed_seconds",
			Help: "Simulated time since start",
		}),
		timeScale: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "solarsim_time_scale",
			Help: "Time scale used by the last step",
		}),
		energy: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "solarsim_total_energy_joules",
			Help: "Kinetic plus potential energy",
		}),
		energyDrift: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "solarsim_energy_drift_ratio",
			Help: "Relative energy change since start",
		}),
		speed: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "solarsim_body_speed_meters_per_second",
			Help: "Speed of each body",
		}, []string{"body"}),
	}

	reg.MustRegister(m.steps, m.elapsed, m.timeScale, m.energy, m.energyDrift, m.speed)
	return m
}

// SetMetrics attaches m to the simulator; nil detaches.
func (s *Simulator) SetMetrics(m *Metrics) {
	s.metrics = m
}

func (m *Metrics) observe(s *Simulator, timeScale float64) {
	m.steps.Inc()
	m.elapsed.Set(s.Elapsed)
	m.timeScale.Set(timeScale)

	e := s.Energy()
	m.energy.Set(e)
	m.energyDrift.Set(physics.RelativeDrift(e, s.initialEnergy))
	for i, b := range s.Bodies {
		m.speed.WithLabelValues(s.Label(i)).Set(b.Speed())
	}
}

// ServeMetrics exposes the registry on addr until the server fails.
func ServeMetrics(addr string, g prometheus.Gatherer) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	return http.ListenAndServe(addr, mux)
}
