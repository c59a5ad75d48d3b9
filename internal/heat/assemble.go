package heat

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/heatsim/internal/spectral"
)

// Assemble builds the n×n update operator M for one time step of size dt.
//
// Explicit: M = I + dt·D2.
// Implicit: M = A⁻¹ where A = I − dt·D2 with its first and last rows
// replaced by identity rows, so the boundary values pass through the
// inversion unchanged.
//
// The scheme is validated before anything else is looked at.
func Assemble(scheme Scheme, n int, d2 mat.Matrix, dt float64) (*mat.Dense, error) {
	if !scheme.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownScheme, scheme)
	}
	if n < spectral.MinPoints {
		return nil, fmt.Errorf("%w: n=%d", ErrResolution, n)
	}
	if d2 == nil {
		return nil, fmt.Errorf("%w: nil differentiation matrix", ErrDimensionMismatch)
	}
	if r, c := d2.Dims(); r != n || c != n {
		return nil, fmt.Errorf("%w: differentiation matrix is %dx%d, want %dx%d", ErrDimensionMismatch, r, c, n, n)
	}
	if !isPositiveFinite(dt) {
		return nil, fmt.Errorf("%w: dt=%v", ErrStepSize, dt)
	}

	var scaled mat.Dense
	scaled.Scale(dt, d2)
	m := identity(n)

	if scheme == Explicit {
		m.Add(m, &scaled)
		return m, nil
	}

	m.Sub(m, &scaled)
	for _, row := range []int{0, n - 1} {
		for j := 0; j < n; j++ {
			m.Set(row, j, 0)
		}
		m.Set(row, row, 1)
	}

	var inv mat.Dense
	if err := inv.Inverse(m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}
	return &inv, nil
}

func identity(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}
