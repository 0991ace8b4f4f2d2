// Package scenario defines the reference vibrating-string runs and loads
// their shared discretization parameters.
//
// The three built-in scenarios share N=100, Nt=200, L=1, c=1, dt=0.001
// and differ only in the initial shape:
//
//	Bi   — ψ(x,0) = sin(2πx)
//	Bii  — ψ(x,0) = sin(5πx)
//	Biii — ψ(x,0) = sin(5πx) on 1/5 < x < 2/5, 0 elsewhere
package scenario

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/wavestring/shape"
	"github.com/katalvlaran/wavestring/wave"
)

var (
	// ErrUnknownScenario indicates a name not present in the registry.
	ErrUnknownScenario = errors.New("scenario: unknown scenario")

	// ErrBadParams indicates parameters that cannot form a valid wave.Config.
	ErrBadParams = errors.New("scenario: invalid parameters")
)

// Params are the discretization parameters shared by a batch of scenarios.
type Params struct {
	N  int
	Nt int
	L  float64
	C  float64
	Dt float64
}

// Defaults returns the reference parameters.
func Defaults() Params {
	return Params{N: 100, Nt: 200, L: 1, C: 1, Dt: 0.001}
}

// Scenario pairs an initial shape with its display label.
type Scenario struct {
	Name  string
	Label string
	Shape shape.Func
}

// Config combines s with p into a solver configuration.
func (s Scenario) Config(p Params) wave.Config {
	return wave.Config{
		Shape: s.Shape,
		L:     p.L,
		C:     p.C,
		Dt:    p.Dt,
		N:     p.N,
		Nt:    p.Nt,
		Label: s.Label,
	}
}

// Solve builds the solver for s under p.
func (s Scenario) Solve(p Params, opts ...wave.Option) (*wave.Solver, error) {
	solver, err := wave.New(s.Config(p), opts...)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", s.Name, err)
	}

	return solver, nil
}

// Builtin returns the three reference scenarios in order.
func Builtin() []Scenario {
	return []Scenario{
		{
			Name:  "Bi",
			Label: "Ψ(x,t=0)=sin(2πx)",
			Shape: shape.Sine(2, 1),
		},
		{
			Name:  "Bii",
			Label: "Ψ(x,t=0)=sin(5πx)",
			Shape: shape.Sine(5, 1),
		},
		{
			Name:  "Biii",
			Label: "Ψ(x,t=0)=sin(5πx) if 1/5<x<2/5, else Ψ=0",
			Shape: shape.Window(shape.Sine(5, 1), 1.0/5, 2.0/5),
		},
	}
}

// Select returns the built-in scenarios with the given names, in the order
// requested. No names selects all of them.
func Select(names ...string) ([]Scenario, error) {
	all := Builtin()
	if len(names) == 0 {
		return all, nil
	}
	byName := make(map[string]Scenario, len(all))
	for _, s := range all {
		byName[s.Name] = s
	}

	out := make([]Scenario, 0, len(names))
	for _, n := range names {
		s, ok := byName[n]
		if !ok {
			return nil, fmt.Errorf("%w: %q (known: %v)", ErrUnknownScenario, n, Names())
		}
		out = append(out, s)
	}

	return out, nil
}

// Names lists the built-in scenario names, sorted.
func Names() []string {
	all := Builtin()
	names := make([]string, len(all))
	for i, s := range all {
		names[i] = s.Name
	}
	sort.Strings(names)

	return names
}

// Validate checks p against the solver preconditions without running it.
func (p Params) Validate() error {
	cfg := Scenario{Shape: shape.Zero}.Config(p)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrBadParams, err)
	}

	return nil
}

// Courant returns c·dt/dx squared for p. Values above 1 diverge.
func (p Params) Courant() float64 {
	dx := p.L / float64(p.N)
	return math.Pow(p.C*p.Dt/dx, 2)
}
