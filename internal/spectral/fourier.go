package spectral

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// MinPoints is the smallest grid a second-order operator can be built on.
const MinPoints = 3

var (
	// ErrTooFewPoints indicates a resolution below MinPoints.
	ErrTooFewPoints = errors.New("spectral: too few collocation points")

	// ErrShortGrid indicates a grid with no spacing to measure.
	ErrShortGrid = errors.New("spectral: grid needs at least two points")
)

// Grid returns the n Fourier collocation points 2πj/n, j = 0..n-1.
func Grid(n int) []float64 {
	if n <= 0 {
		return nil
	}
	h := 2 * math.Pi / float64(n)
	x := make([]float64, n)
	for j := range x {
		x[j] = h * float64(j)
	}
	return x
}

// SecondDerivative returns the n×n Fourier second-derivative matrix.
func SecondDerivative(n int) (*mat.Dense, error) {
	if n < MinPoints {
		return nil, fmt.Errorf("%w: n=%d, need at least %d", ErrTooFewPoints, n, MinPoints)
	}
	return toeplitz(secondDerivativeColumn(n)), nil
}

// Build returns the collocation grid and second-derivative matrix for n points.
func Build(n int) ([]float64, *mat.Dense, error) {
	d2, err := SecondDerivative(n)
	if err != nil {
		return nil, nil, err
	}
	return Grid(n), d2, nil
}

// Spacing returns the distance between the first two grid points.
func Spacing(grid []float64) (float64, error) {
	if len(grid) < 2 {
		return 0, ErrShortGrid
	}
	return grid[1] - grid[0], nil
}

// secondDerivativeColumn is the first column of the symmetric Toeplitz D2.
// Even and odd n differ because the Nyquist mode only exists for even n.
func secondDerivativeColumn(n int) []float64 {
	h := 2 * math.Pi / float64(n)
	col := make([]float64, n)

	if n%2 == 0 {
		col[0] = -math.Pi*math.Pi/(3*h*h) - 1.0/6.0
		for k := 1; k < n; k++ {
			s := math.Sin(float64(k) * h / 2)
			col[k] = -0.5 * alternating(k) / (s * s)
		}
		return col
	}

	col[0] = -math.Pi*math.Pi/(3*h*h) + 1.0/12.0
	for k := 1; k < n; k++ {
		half := float64(k) * h / 2
		col[k] = -0.5 * alternating(k) / math.Tan(half) / math.Sin(half)
	}
	return col
}

// alternating returns (-1)^k.
func alternating(k int) float64 {
	if k%2 == 0 {
		return 1
	}
	return -1
}

func toeplitz(col []float64) *mat.Dense {
	n := len(col)
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			k := i - j
			if k < 0 {
				k = -k
			}
			data[i*n+j] = col[k]
		}
	}
	return mat.NewDense(n, n, data)
}
