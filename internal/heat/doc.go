// Package heat integrates the one-dimensional heat equation u_t = k·u_xx
// with homogeneous Dirichlet boundaries on a Fourier collocation grid.
//
// Construction does all the work that can fail:
//
//   - [spectral.Build] produces the grid and the second-derivative matrix
//   - [StableStep] picks the time step from the grid spacing
//   - [Assemble] builds the per-scheme update operator
//
// After [New] returns, [Simulation.Step] and [Simulation.RunUntil] cannot
// fail. Two schemes are offered:
//
//   - [Explicit]: u ← (I + dt·D2)·u, cheap per step, conditionally stable
//   - [Implicit]: u ← (I − dt·D2)⁻¹·u, one inversion at setup, allows
//     much larger steps
//
// # Example
//
//	sim, err := heat.New(80, heat.Explicit)
//	if err != nil {
//	    return err
//	}
//	sim.Apply(func(x float64) float64 { return math.Sin(0.5 * x) })
//	if err := sim.RunUntil(1.0); err != nil {
//	    return err
//	}
//	fmt.Println(sim.Midpoint())
//
// # Thread Safety
//
// A Simulation owns its grid, solution and operator and is NOT safe for
// concurrent use. Run independent instances for batches.
package heat
