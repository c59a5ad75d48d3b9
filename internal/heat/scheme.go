package heat

import (
	"fmt"
	"strings"
)

// Scheme selects the time-stepping method.
type Scheme int

const (
	// Explicit is forward Euler in time.
	Explicit Scheme = iota + 1
	// Implicit is backward Euler in time.
	Implicit
)

// Recommended step size safety factors. Forward stepping of a diffusion
// operator is only stable for dt ≤ dx²/2.
const (
	ExplicitSafety = 0.4
	ImplicitSafety = 20.0
)

// Schemes lists the valid schemes in display order.
var Schemes = []Scheme{Explicit, Implicit}

// ParseScheme maps a label to a Scheme. Matching is exact apart from case
// and surrounding whitespace.
func ParseScheme(label string) (Scheme, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "explicit":
		return Explicit, nil
	case "implicit":
		return Implicit, nil
	}
	return 0, fmt.Errorf("%w %q (want Explicit or Implicit)", ErrUnknownScheme, label)
}

// Valid reports whether s is one of the defined schemes.
func (s Scheme) Valid() bool {
	return s == Explicit || s == Implicit
}

// Safety returns the recommended step size safety factor, or 0 for an
// invalid scheme.
func (s Scheme) Safety() float64 {
	switch s {
	case Explicit:
		return ExplicitSafety
	case Implicit:
		return ImplicitSafety
	}
	return 0
}

func (s Scheme) String() string {
	switch s {
	case Explicit:
		return "Explicit"
	case Implicit:
		return "Implicit"
	}
	return fmt.Sprintf("Scheme(%d)", int(s))
}
