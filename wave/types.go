package wave

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wavestring/shape"
)

// Config holds the immutable inputs of a simulation.
//
// Fields:
//   - Shape — initial displacement f(x); called once per interior point at t = 0.
//   - L     — string length, > 0.
//   - C     — wave speed, > 0.
//   - Dt    — time step, > 0.
//   - N     — number of spatial intervals, ≥ 2 (N+1 grid points).
//   - Nt    — number of time steps, ≥ 1 (Nt+1 time levels).
//   - Label — free-form description, used only by renderers.
type Config struct {
	Shape shape.Func
	L     float64
	C     float64
	Dt    float64
	N     int
	Nt    int
	Label string
}

// Validate reports the first invalid field wrapped in ErrInvalidConfiguration.
func (c Config) Validate() error {
	switch {
	case c.Shape == nil:
		return fmt.Errorf("%w: Shape is nil", ErrInvalidConfiguration)
	case !positive(c.L):
		return fmt.Errorf("%w: L=%g must be finite and > 0", ErrInvalidConfiguration, c.L)
	case !positive(c.C):
		return fmt.Errorf("%w: C=%g must be finite and > 0", ErrInvalidConfiguration, c.C)
	case !positive(c.Dt):
		return fmt.Errorf("%w: Dt=%g must be finite and > 0", ErrInvalidConfiguration, c.Dt)
	case c.N < 2:
		return fmt.Errorf("%w: N=%d must be >= 2", ErrInvalidConfiguration, c.N)
	case c.Nt < 1:
		return fmt.Errorf("%w: Nt=%d must be >= 1", ErrInvalidConfiguration, c.Nt)
	}

	return nil
}

// Dx returns the spatial step L/N.
func (c Config) Dx() float64 { return c.L / float64(c.N) }

// Courant returns r = c²·dt²/dx², the weight of the spatial stencil.
func (c Config) Courant() float64 {
	dx := c.Dx()
	return c.C * c.C * c.Dt * c.Dt / (dx * dx)
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// FirstStep selects how ψ[:,1] is derived from ψ[:,0] under zero initial velocity.
//
//   - TaylorStart  — standard second-order start:
//     ψ[i,1] = r/2·(ψ[i+1,0] − 2ψ[i,0] + ψ[i−1,0]) + ψ[i,0].
//
//   - LiteralStart — the general stencil with the not-yet-computed ψ[i,1]
//     (still zero) substituted for the n−1 term:
//     ψ[i,1] = r·(ψ[i+1,0] − 2ψ[i,0] + ψ[i−1,0]) + 2ψ[i,0] − 0.
//     It starts the string with a non-zero velocity ψ[:,0]/dt, so the
//     amplitude grows linearly.
//
// Neither scheme evaluates the stencil in place on row 1, reading ψ[:,1]
// while writing it. That sweep collapses to ψ[i,1] = r·ψ[i−1,1] − ψ[i,0],
// feeding each point from its freshly written left neighbour, and gives
// neither of the rows above.
type FirstStep int

const (
	// TaylorStart is the default zero-velocity start.
	TaylorStart FirstStep = iota

	// LiteralStart is the zero-substituted start.
	LiteralStart
)

// String implements fmt.Stringer.
func (s FirstStep) String() string {
	switch s {
	case TaylorStart:
		return "taylor"
	case LiteralStart:
		return "literal"
	default:
		return fmt.Sprintf("FirstStep(%d)", int(s))
	}
}

// ParseFirstStep maps "taylor" or "literal" to a FirstStep.
func ParseFirstStep(s string) (FirstStep, error) {
	switch s {
	case "taylor", "":
		return TaylorStart, nil
	case "literal":
		return LiteralStart, nil
	}

	return 0, fmt.Errorf("wave: unknown first step scheme %q", s)
}
