// Command solarsim runs the solar system simulation without a window.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bitwizeshift/glut-solar-system-simulation/pkg/assets"
)

var rootCmd = &cobra.Command{
	Use:   "solarsim",
	Short: "Headless solar system gravity simulation",
	Long: `Advance a star and its planets under Newtonian gravity with a fixed,
time-scaled one-day step (semi-implicit Euler), logging diagnostics and
optionally exposing Prometheus metrics.`,
	SilenceUsage: true,
}

var (
	envName    string
	configPath string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&envName, "env", "solar", fmt.Sprintf("bundled environment (%s)", strings.Join(assets.Names(), ", ")))
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "environment JSON file; overrides --env")

	rootCmd.AddCommand(runCmd, bodiesCmd)
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
