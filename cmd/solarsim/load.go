package main

import (
	"github.com/bitwizeshift/glut-solar-system-simulation/pkg/simulation"
)

func loadSimulator() (*simulation.Simulator, error) {
	if configPath != "" {
		return simulation.LoadConfig(configPath)
	}
	return simulation.LoadEnvironment(envName)
}
