package metrics

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Metric reduces a solution profile to a single number.
type Metric interface {
	Name() string
	Compute(grid, u []float64) float64
}

type Midpoint struct{}

func (Midpoint) Name() string { return "midpoint" }

func (Midpoint) Compute(_, u []float64) float64 {
	if len(u) == 0 {
		return 0
	}
	return u[len(u)/2]
}

// MaxAbs is the largest absolute value in the profile.
type MaxAbs struct{}

func (MaxAbs) Name() string { return "max_abs" }

func (MaxAbs) Compute(_, u []float64) float64 {
	if len(u) == 0 {
		return 0
	}
	return floats.Norm(u, math.Inf(1))
}

// L2 is the discrete L2 norm sqrt(Σ u_i² · dx).
type L2 struct{}

func (L2) Name() string { return "l2" }

func (L2) Compute(grid, u []float64) float64 {
	if len(grid) < 2 || len(u) == 0 {
		return 0
	}
	dx := grid[1] - grid[0]
	return floats.Norm(u, 2) * math.Sqrt(dx)
}

// Heat is the total heat content Σ u_i · dx.
type Heat struct{}

func (Heat) Name() string { return "heat" }

func (Heat) Compute(grid, u []float64) float64 {
	if len(grid) < 2 {
		return 0
	}
	return floats.Sum(u) * (grid[1] - grid[0])
}

// SineDecayError compares u against the decaying mode A·e^{-k²t}·sin(kx)
// on the interior points and returns the largest deviation.
type SineDecayError struct {
	Amplitude  float64
	Wavenumber float64
	Time       float64
}

func (SineDecayError) Name() string { return "sine_decay_error" }

func (m SineDecayError) Compute(grid, u []float64) float64 {
	decay := m.Amplitude * math.Exp(-m.Wavenumber*m.Wavenumber*m.Time)
	worst := 0.0
	for i := 1; i < len(u)-1 && i < len(grid); i++ {
		d := math.Abs(u[i] - decay*math.Sin(m.Wavenumber*grid[i]))
		worst = math.Max(worst, d)
	}
	return worst
}

// Default returns the metrics recorded for every run.
func Default() []Metric {
	return []Metric{Midpoint{}, MaxAbs{}, L2{}, Heat{}}
}

// Summary evaluates each metric on the profile.
func Summary(grid, u []float64, ms ...Metric) map[string]float64 {
	if len(ms) == 0 {
		ms = Default()
	}
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Compute(grid, u)
	}
	return out
}
