package metrics

import (
	"math"
	"testing"
)

func TestSummary(t *testing.T) {
	grid := []float64{0, 0.5, 1.0, 1.5, 2.0}
	u := []float64{0, 3, -4, 0, 0}

	got := Summary(grid, u)

	expected := map[string]float64{
		"midpoint": -4,
		"max_abs":  4,
		"l2":       5 * math.Sqrt(0.5),
		"heat":     -0.5,
	}
	for name, want := range expected {
		if math.Abs(got[name]-want) > 1e-12 {
			t.Errorf("%s: expected %f, got %f", name, want, got[name])
		}
	}
	if len(got) != len(expected) {
		t.Errorf("expected %d metrics, got %d", len(expected), len(got))
	}
}

func TestSummaryEmpty(t *testing.T) {
	got := Summary(nil, nil)
	for name, v := range got {
		if v != 0 {
			t.Errorf("%s: expected 0 for empty profile, got %f", name, v)
		}
	}
}

func TestSineDecayError(t *testing.T) {
	const k, tm = 0.5, 1.0
	grid := make([]float64, 20)
	u := make([]float64, 20)
	for i := range grid {
		grid[i] = float64(i) * 0.3
		u[i] = math.Exp(-k*k*tm) * math.Sin(k*grid[i])
	}

	m := SineDecayError{Amplitude: 1, Wavenumber: k, Time: tm}
	if got := m.Compute(grid, u); got > 1e-15 {
		t.Errorf("expected zero error for exact solution, got %g", got)
	}

	u[10] += 0.25
	u[0] += 10 // boundary points are ignored
	if got := m.Compute(grid, u); math.Abs(got-0.25) > 1e-12 {
		t.Errorf("expected 0.25, got %g", got)
	}

	got := Summary(grid, u, m)
	if _, ok := got["sine_decay_error"]; !ok || len(got) != 1 {
		t.Errorf("unexpected summary: %v", got)
	}
}
