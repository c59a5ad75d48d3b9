// Package spectral builds Fourier collocation grids and the matching
// spectral differentiation matrices.
//
// The grid has n equispaced points x_j = 2πj/n on [0, 2π). Unlike a finite
// difference stencil, every row of a spectral differentiation matrix couples
// all n points:
//
//	grid, d2, err := spectral.Build(80)
//	// d2·u approximates u'' at the grid points
//
// Matrices are returned as gonum [mat.Dense] values and are never mutated by
// this package after construction.
package spectral
