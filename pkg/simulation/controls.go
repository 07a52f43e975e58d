package simulation

import "math"

const (
	MinTimeScale  = 0.1
	MaxTimeScale  = 2.0
	TimeScaleStep = 0.1
)

// IncreaseTimeScale raises v by one step, capped at MaxTimeScale.
func IncreaseTimeScale(v float64) float64 {
	return ClampTimeScale(v + TimeScaleStep)
}

// DecreaseTimeScale lowers v by one step, floored at MinTimeScale.
func DecreaseTimeScale(v float64) float64 {
	return ClampTimeScale(v - TimeScaleStep)
}

// ClampTimeScale rounds v to one decimal and clamps it to
// [MinTimeScale, MaxTimeScale].
func ClampTimeScale(v float64) float64 {
	v = math.Round(v*10) / 10
	return math.Max(MinTimeScale, math.Min(MaxTimeScale, v))
}
