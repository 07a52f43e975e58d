package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/guptarohit/asciigraph"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/bitwizeshift/glut-solar-system-simulation/pkg/simulation"
	"github.com/bitwizeshift/glut-solar-system-simulation/pkg/view"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Step the simulation and report energy drift",
	Long: `Step the simulation a fixed number of times (or until interrupted when
--steps is 0). --rate paces stepping like a display refresh loop; without
it steps run back to back.`,
	Example: `  solarsim run --steps 3650
  solarsim run --steps 0 --rate 60 --metrics-addr :9090
  solarsim run --env twobody --time-scale 0.5`,
	Args: cobra.NoArgs,
	RunE: runSimulation,
}

type runOptions struct {
	Steps       int
	TimeScale   float64
	Rate        float64
	LogEvery    int
	MetricsAddr string
	Plot        bool
	Samples     int
}

var runOpts runOptions

func init() {
	f := runCmd.Flags()
	f.IntVar(&runOpts.Steps, "steps", 365, "steps to run, 0 runs until interrupted")
	f.Float64Var(&runOpts.TimeScale, "time-scale", 1.0, "multiplier on the one-day step, clamped to [0.1, 2.0]")
	f.Float64Var(&runOpts.Rate, "rate", 0, "steps per second, 0 for unpaced")
	f.IntVar(&runOpts.LogEvery, "log-every", 30, "log diagnostics every N steps (0 disables)")
	f.StringVar(&runOpts.MetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	f.BoolVar(&runOpts.Plot, "plot", true, "plot energy drift when done")
	f.IntVar(&runOpts.Samples, "samples", 120, "energy drift samples kept for the plot")
}

func runSimulation(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	sim, err := loadSimulator()
	if err != nil {
		return err
	}

	if runOpts.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		sim.SetMetrics(simulation.NewMetrics(reg))
		go func() {
			if err := simulation.ServeMetrics(runOpts.MetricsAddr, reg); err != nil {
				log.Printf("metrics server: %v", err)
			}
		}()
		log.Printf("serving metrics on %s/metrics", runOpts.MetricsAddr)
	}

	rep, err := run(ctx, sim, runOpts)
	if err != nil {
		return err
	}
	return rep.write(cmd.OutOrStdout(), sim, runOpts.Plot)
}

type report struct {
	Steps int
	Drift []float64
}

// run steps sim on the calling goroutine. Cancellation and deadlines are
// honored between steps only and end the run without error.
func run(ctx context.Context, sim *simulation.Simulator, opts runOptions) (*report, error) {
	scale := simulation.ClampTimeScale(opts.TimeScale)
	if scale != opts.TimeScale {
		log.Printf("time scale %g clamped to %.1f", opts.TimeScale, scale)
	}
	sim.TimeScale = scale

	var limiter *rate.Limiter
	if opts.Rate > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.Rate), 1)
	}

	every := 1
	if opts.Steps > 0 && opts.Samples > 0 && opts.Steps > opts.Samples {
		every = opts.Steps / opts.Samples
	}

	cam := view.NewCamera(len(sim.Bodies), 0)
	rep := &report{Drift: []float64{0}}
	for opts.Steps == 0 || rep.Steps < opts.Steps {
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				break
			}
		} else if ctx.Err() != nil {
			break
		}

		if err := sim.Update(); err != nil {
			return rep, err
		}
		rep.Steps++
		if err := sim.CheckFinite(); err != nil {
			return rep, err
		}

		if rep.Steps%every == 0 {
			rep.Drift = append(rep.Drift, sim.EnergyDrift())
			if opts.Samples > 0 && len(rep.Drift) > opts.Samples {
				rep.Drift = rep.Drift[len(rep.Drift)-opts.Samples:]
			}
		}
		if opts.LogEvery > 0 && rep.Steps%opts.LogEvery == 0 {
			log.Print(view.Diagnostics(sim, cam))
		}
	}

	if err := ctx.Err(); err != nil {
		log.Printf("stopped after %d steps: %v", rep.Steps, err)
	}
	return rep, nil
}

func (r *report) write(w io.Writer, sim *simulation.Simulator, plot bool) error {
	if _, err := fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s: %d steps, %.2f days (%.3f years)", sim.Name, r.Steps, sim.Days(), sim.Years()))); err != nil {
		return err
	}
	if err := writeBodies(w, sim, false); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s %.3e\n", labelStyle.Render("energy drift"), sim.EnergyDrift()); err != nil {
		return err
	}
	if plot && len(r.Drift) > 1 {
		_, err := fmt.Fprintln(w, asciigraph.Plot(r.Drift, asciigraph.Height(10), asciigraph.Width(60), asciigraph.Caption("relative energy drift")))
		return err
	}
	return nil
}
