package heat

import (
	"fmt"
	"math"
)

// Diffusivity is the heat equation coefficient k.
const Diffusivity = 1.0

// StableStep returns safety·dx²/(2k).
func StableStep(dx, safety float64) (float64, error) {
	if !isPositiveFinite(dx) {
		return 0, fmt.Errorf("%w: dx=%v", ErrStepSize, dx)
	}
	if !isPositiveFinite(safety) {
		return 0, fmt.Errorf("%w: safety=%v", ErrStepSize, safety)
	}
	return safety * dx * dx / (2 * Diffusivity), nil
}

func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
