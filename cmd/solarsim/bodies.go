package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/bitwizeshift/glut-solar-system-simulation/pkg/simulation"
)

const au = 1.495978707e11

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

var bodiesCmd = &cobra.Command{
	Use:   "bodies",
	Short: "List the initial conditions of an environment",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		sim, err := loadSimulator()
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		if _, err := fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s: %d bodies, G=%g, step %gs", sim.Name, len(sim.Bodies), sim.G, sim.Interval))); err != nil {
			return err
		}
		return writeBodies(w, sim, true)
	},
}

// writeBodies prints one row per body. Positions are in AU and speeds in
// km/s; withMass adds mass and radius columns.
func writeBodies(w io.Writer, sim *simulation.Simulator, withMass bool) error {
	header := fmt.Sprintf("%-3s %-10s %28s %10s", "#", "body", "position (AU)", "km/s")
	if withMass {
		header += fmt.Sprintf(" %11s %11s", "mass kg", "radius m")
	}
	if _, err := fmt.Fprintln(w, headerStyle.Render(header)); err != nil {
		return err
	}

	for i, b := range sim.Bodies {
		row := fmt.Sprintf("%-3d %-10s %8.3f %8.3f %8.3f  %10.3f", i, sim.Label(i), b.Pos.X/au, b.Pos.Y/au, b.Pos.Z/au, b.Speed()/1000)
		if withMass {
			row += fmt.Sprintf(" %11.3e %11.3e", b.Mass, b.Radius)
		}
		if _, err := fmt.Fprintln(w, valueStyle.Render(row)); err != nil {
			return err
		}
	}
	return nil
}
