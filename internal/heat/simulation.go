package heat

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/heatsim/internal/spectral"
)

// BoundaryValue is the fixed Dirichlet value at both ends of the domain.
const BoundaryValue = 0.0

// Simulation holds the state of one heat equation run.
type Simulation struct {
	scheme   Scheme
	grid     []float64
	u        *mat.VecDense
	scratch  *mat.VecDense
	op       *mat.Dense
	dt       float64
	time     float64
	steps    int
	progress ProgressSink
}

// New builds a simulation on n collocation points with the given scheme.
// The solution starts at zero everywhere; use Apply or SetSolution to set
// an initial condition before stepping.
func New(n int, scheme Scheme) (*Simulation, error) {
	if !scheme.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownScheme, scheme)
	}

	grid, d2, err := spectral.Build(n)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrResolution, err)
	}

	dx, err := spectral.Spacing(grid)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrResolution, err)
	}

	dt, err := StableStep(dx, scheme.Safety())
	if err != nil {
		return nil, err
	}

	op, err := Assemble(scheme, n, d2, dt)
	if err != nil {
		return nil, err
	}

	return &Simulation{
		scheme:   scheme,
		grid:     grid,
		u:        mat.NewVecDense(n, nil),
		scratch:  mat.NewVecDense(n, nil),
		op:       op,
		dt:       dt,
		progress: Discard,
	}, nil
}

// NewFromLabel is New with the scheme given as a label.
func NewFromLabel(n int, label string) (*Simulation, error) {
	scheme, err := ParseScheme(label)
	if err != nil {
		return nil, err
	}
	return New(n, scheme)
}

// SetProgress installs the sink RunUntil reports to. A nil sink disables
// reporting.
func (s *Simulation) SetProgress(p ProgressSink) {
	if p == nil {
		p = Discard
	}
	s.progress = p
}

// Apply sets u[i] = f(x[i]) for every grid point.
func (s *Simulation) Apply(f func(x float64) float64) {
	for i, x := range s.grid {
		s.u.SetVec(i, f(x))
	}
}

// SetSolution copies u into the solution vector.
func (s *Simulation) SetSolution(u []float64) error {
	if len(u) != len(s.grid) {
		return fmt.Errorf("%w: solution has %d values, grid has %d", ErrDimensionMismatch, len(u), len(s.grid))
	}
	for i, v := range u {
		s.u.SetVec(i, v)
	}
	return nil
}

// Reset returns to time zero with an all-zero solution. The grid and
// operator are kept.
func (s *Simulation) Reset() {
	s.u.Zero()
	s.scratch.Zero()
	s.time = 0
	s.steps = 0
}

// Step advances the solution by one time step.
func (s *Simulation) Step() {
	s.scratch.MulVec(s.op, s.u)
	s.u, s.scratch = s.scratch, s.u

	n := s.u.Len()
	s.u.SetVec(0, BoundaryValue)
	s.u.SetVec(n-1, BoundaryValue)

	s.time += s.dt
	s.steps++
}

// RunUntil steps until the simulated time exceeds maxTime. The check runs
// after each step, so at least one step is always taken and the final time
// overshoots maxTime by less than one step. Calling it again with the same
// maxTime therefore takes exactly one more step.
func (s *Simulation) RunUntil(maxTime float64) error {
	if err := ValidateMaxTime(maxTime); err != nil {
		return err
	}
	for {
		s.Step()
		s.progress.Report(s.time)
		if s.time > maxTime {
			return nil
		}
	}
}

// Render hands a snapshot of the grid and solution to p.
func (s *Simulation) Render(p PlotSink) error {
	return p.Render(s.Grid(), s.Solution())
}

func (s *Simulation) Scheme() Scheme { return s.scheme }
func (s *Simulation) N() int         { return len(s.grid) }
func (s *Simulation) Dt() float64    { return s.dt }
func (s *Simulation) Time() float64  { return s.time }
func (s *Simulation) Steps() int     { return s.steps }

// Grid returns a copy of the collocation points.
func (s *Simulation) Grid() []float64 {
	return append([]float64(nil), s.grid...)
}

// Solution returns a copy of the current solution.
func (s *Simulation) Solution() []float64 {
	return append([]float64(nil), s.u.RawVector().Data...)
}

// Midpoint returns u[n/2].
func (s *Simulation) Midpoint() float64 {
	return s.u.AtVec(len(s.grid) / 2)
}

// Operator returns the update operator. It must not be modified.
func (s *Simulation) Operator() mat.Matrix {
	return s.op
}
