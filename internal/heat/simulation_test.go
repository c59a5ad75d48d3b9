package heat

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/heatsim/internal/spectral"
)

func sineHalf(x float64) float64 { return math.Sin(0.5 * x) }

func TestSimulationMidpointDecay(t *testing.T) {
	for _, scheme := range Schemes {
		t.Run(scheme.String(), func(t *testing.T) {
			sim, err := New(80, scheme)
			if err != nil {
				t.Fatalf("construct failed: %v", err)
			}
			sim.Apply(sineHalf)

			if err := sim.RunUntil(1.0); err != nil {
				t.Fatalf("run failed: %v", err)
			}

			mid := sim.Midpoint()
			if mid <= 0.75 || mid >= 0.80 {
				t.Errorf("midpoint after t=1: got %.6f, want in (0.75, 0.80)", mid)
			}
		})
	}
}

func TestSimulationSchemesAgree(t *testing.T) {
	mids := make(map[Scheme]float64)
	for _, scheme := range Schemes {
		sim, err := New(80, scheme)
		if err != nil {
			t.Fatal(err)
		}
		sim.Apply(sineHalf)
		if err := sim.RunUntil(1.0); err != nil {
			t.Fatal(err)
		}
		mids[scheme] = sim.Midpoint()
	}

	if diff := math.Abs(mids[Explicit] - mids[Implicit]); diff > 0.05 {
		t.Errorf("explicit %.5f and implicit %.5f differ by %.5f", mids[Explicit], mids[Implicit], diff)
	}
}

func TestSimulationConstruct(t *testing.T) {
	sim, err := New(10, Implicit)
	if err != nil {
		t.Fatal(err)
	}

	if sim.Time() != 0 || sim.Steps() != 0 {
		t.Errorf("expected fresh state, got time=%v steps=%d", sim.Time(), sim.Steps())
	}
	if sim.N() != 10 || sim.Scheme() != Implicit {
		t.Errorf("unexpected n=%d scheme=%v", sim.N(), sim.Scheme())
	}
	for i, v := range sim.Solution() {
		if v != 0 {
			t.Errorf("u[%d] = %v, want 0", i, v)
		}
	}

	dx, _ := spectral.Spacing(sim.Grid())
	want, _ := StableStep(dx, ImplicitSafety)
	if sim.Dt() != want {
		t.Errorf("dt = %v, want %v", sim.Dt(), want)
	}
}

func TestSimulationInvalidConstruct(t *testing.T) {
	tests := []struct {
		name   string
		n      int
		scheme Scheme
		want   error
	}{
		{"two points", 2, Explicit, ErrResolution},
		{"zero points", 0, Implicit, ErrResolution},
		{"unknown scheme", 80, Scheme(0), ErrUnknownScheme},
		{"unknown scheme small n", 2, Scheme(5), ErrUnknownScheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim, err := New(tt.n, tt.scheme)
			if sim != nil {
				t.Error("expected nil simulation")
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
			if !errors.Is(err, ErrConfiguration) {
				t.Errorf("expected configuration error, got %v", err)
			}
		})
	}
}

func TestNewFromLabel(t *testing.T) {
	if _, err := NewFromLabel(8, "Explicit"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := NewFromLabel(8, "Runge-Kutta"); !errors.Is(err, ErrUnknownScheme) {
		t.Errorf("expected ErrUnknownScheme, got %v", err)
	}
	_, err := NewFromLabel(2, "Implicit")
	if !errors.Is(err, spectral.ErrTooFewPoints) {
		t.Errorf("expected wrapped spectral error, got %v", err)
	}
}

func TestSimulationSetSolution(t *testing.T) {
	sim, err := New(5, Explicit)
	if err != nil {
		t.Fatal(err)
	}

	if err := sim.SetSolution([]float64{1, 2}); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}

	in := []float64{0, 1, 2, 3, 4}
	if err := sim.SetSolution(in); err != nil {
		t.Fatal(err)
	}
	in[2] = 99
	if sim.Solution()[2] != 2 {
		t.Error("SetSolution must copy its input")
	}

	out := sim.Solution()
	out[1] = 42
	if sim.Solution()[1] != 1 {
		t.Error("Solution must return a copy")
	}
}

func TestSimulationRunUntilInvalid(t *testing.T) {
	sim, err := New(8, Explicit)
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range []float64{0, -1, math.NaN()} {
		if err := sim.RunUntil(v); !errors.Is(err, ErrMaxTime) {
			t.Errorf("RunUntil(%v): expected ErrMaxTime, got %v", v, err)
		}
	}
	if sim.Steps() != 0 {
		t.Errorf("invalid max time must not step, got %d steps", sim.Steps())
	}
}

type recordingSink struct {
	times []float64
}

func (r *recordingSink) Report(t float64) { r.times = append(r.times, t) }

func TestSimulationProgress(t *testing.T) {
	sim, err := New(16, Implicit)
	if err != nil {
		t.Fatal(err)
	}
	rec := &recordingSink{}
	sim.SetProgress(rec)

	if err := sim.RunUntil(0.5); err != nil {
		t.Fatal(err)
	}

	if len(rec.times) != sim.Steps() {
		t.Fatalf("expected %d reports, got %d", sim.Steps(), len(rec.times))
	}
	for i, v := range rec.times {
		if i > 0 && v <= rec.times[i-1] {
			t.Errorf("report %d not increasing: %v after %v", i, v, rec.times[i-1])
		}
	}
	if last := rec.times[len(rec.times)-1]; last != sim.Time() {
		t.Errorf("last report %v, time %v", last, sim.Time())
	}

	sim.SetProgress(nil)
	sim.Step()
	if err := sim.RunUntil(sim.Time()); err != nil {
		t.Fatal(err)
	}
	if len(rec.times) != sim.Steps()-2 {
		t.Error("nil progress sink should disable reporting")
	}
}

func TestSimulationRender(t *testing.T) {
	sim, err := New(6, Explicit)
	if err != nil {
		t.Fatal(err)
	}
	sim.Apply(func(x float64) float64 { return x })

	var gotX, gotU []float64
	err = sim.Render(PlotFunc(func(grid, u []float64) error {
		gotX, gotU = grid, u
		u[0] = 123
		return nil
	}))
	if err != nil {
		t.Fatal(err)
	}
	if len(gotX) != 6 || len(gotU) != 6 {
		t.Fatalf("unexpected snapshot sizes %d, %d", len(gotX), len(gotU))
	}
	if sim.Solution()[0] == 123 {
		t.Error("plot sink mutated simulation state")
	}

	want := errors.New("render failed")
	if err := sim.Render(PlotFunc(func(_, _ []float64) error { return want })); !errors.Is(err, want) {
		t.Errorf("expected sink error, got %v", err)
	}
}

func TestSimulationReset(t *testing.T) {
	sim, err := New(12, Explicit)
	if err != nil {
		t.Fatal(err)
	}
	sim.Apply(sineHalf)
	if err := sim.RunUntil(0.05); err != nil {
		t.Fatal(err)
	}

	sim.Reset()
	if sim.Time() != 0 || sim.Steps() != 0 {
		t.Errorf("expected fresh state, got time=%v steps=%d", sim.Time(), sim.Steps())
	}
	for i, v := range sim.Solution() {
		if v != 0 {
			t.Errorf("u[%d] = %v after reset", i, v)
		}
	}
}
