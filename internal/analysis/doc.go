// Package analysis provides post-processing for solution profiles.
//
// Available analyses:
//
//   - [Spectrum]: Fourier mode amplitudes of a profile on [0, 2π)
//   - [DominantMode]: the non-constant mode with the largest amplitude
//   - [DecayRate]: exponential decay rate between two samples
//
// Mode k of the spectrum corresponds to wavenumber k because the
// collocation grid spans one 2π period.
package analysis
