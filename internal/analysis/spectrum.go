package analysis

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// Spectrum returns the amplitudes of modes 0..n/2 of u, scaled so that
// A·sin(kx) sampled on the grid gives amplitude A at mode k.
func Spectrum(u []float64) []float64 {
	n := len(u)
	if n == 0 {
		return nil
	}

	coeffs := fft.FFTReal(u)
	amps := make([]float64, n/2+1)
	for k := range amps {
		a := cmplx.Abs(coeffs[k]) / float64(n)
		if k != 0 && !(n%2 == 0 && k == n/2) {
			a *= 2
		}
		amps[k] = a
	}
	return amps
}

// DominantMode returns the index and amplitude of the strongest mode k ≥ 1.
func DominantMode(u []float64) (int, float64) {
	amps := Spectrum(u)
	best, bestAmp := 0, 0.0
	for k := 1; k < len(amps); k++ {
		if amps[k] > bestAmp {
			best, bestAmp = k, amps[k]
		}
	}
	return best, bestAmp
}

// DecayRate returns λ such that v1 = v0·e^{-λ(t1-t0)}.
func DecayRate(v0, v1, t0, t1 float64) float64 {
	if v0 == 0 || v1 == 0 || t1 == t0 || (v0 > 0) != (v1 > 0) {
		return math.NaN()
	}
	return -math.Log(v1/v0) / (t1 - t0)
}
