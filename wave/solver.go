package wave

import (
	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"

	"github.com/katalvlaran/wavestring/field"
)

// Solver owns one finished simulation: the grid and the displacement field.
// It is immutable after New returns and safe for concurrent readers.
type Solver struct {
	cfg       Config
	firstStep FirstStep
	dx        float64
	r         float64
	x         []float64
	psi       *field.Dense
}

// New validates cfg, allocates the (N+1)×(Nt+1) field and runs the whole
// time march before returning.
//
// Algorithm Outline:
//  1. Validate cfg; on failure return ErrInvalidConfiguration before allocating.
//  2. Build the grid x_i = i·dx, i = 0..N.
//  3. ψ[i,0] = f(x_i) for interior i; ψ[0,0] = ψ[N,0] = 0.
//  4. ψ[:,1] per the FirstStep scheme; ends pinned.
//  5. For n = 1..Nt−1 compute the full interior of ψ[:,n+1] from ψ[:,n] and
//     ψ[:,n−1] into a separate buffer; ends pinned.
//
// A panic raised by cfg.Shape propagates to the caller.
// The Courant condition r ≤ 1 is not checked; see Courant and Stable.
func New(cfg Config, opts ...Option) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	psi, err := field.NewDense(cfg.N+1, cfg.Nt+1)
	if err != nil {
		return nil, err
	}
	if err = run(cfg, o, psi.SetStep); err != nil {
		return nil, err
	}

	s := &Solver{
		cfg:       cfg,
		firstStep: o.firstStep,
		dx:        cfg.Dx(),
		r:         cfg.Courant(),
		x:         Grid(cfg.L, cfg.N),
		psi:       psi,
	}
	level.Debug(log.With(o.logger, "component", "wave")).Log(
		"msg", "march complete",
		"label", cfg.Label,
		"N", cfg.N,
		"Nt", cfg.Nt,
		"dx", s.dx,
		"courant", s.r,
		"first_step", o.firstStep,
		"workers", o.workers,
	)

	return s, nil
}

// Grid returns the n+1 coordinates i·(l/n), i = 0..n.
func Grid(l float64, n int) []float64 {
	dx := l / float64(n)
	x := make([]float64, n+1)
	for i := range x {
		x[i] = float64(i) * dx
	}

	return x
}

// Config returns the configuration the solver was built from.
func (s *Solver) Config() Config { return s.cfg }

// Label returns the display label of the scenario.
func (s *Solver) Label() string { return s.cfg.Label }

// FirstStep returns the scheme used for ψ[:,1].
func (s *Solver) FirstStep() FirstStep { return s.firstStep }

// X returns a copy of the spatial coordinates (length N+1).
func (s *Solver) X() []float64 {
	out := make([]float64, len(s.x))
	copy(out, s.x)

	return out
}

// Psi returns the finished field, shape (N+1)×(Nt+1), read-only.
func (s *Solver) Psi() field.Field { return s.psi }

// Dx returns the spatial step.
func (s *Solver) Dx() float64 { return s.dx }

// Dt returns the time step.
func (s *Solver) Dt() float64 { return s.cfg.Dt }

// Time returns the physical time n·dt of time level n.
func (s *Solver) Time(n int) float64 { return float64(n) * s.cfg.Dt }

// Courant returns r = c²·dt²/dx².
func (s *Solver) Courant() float64 { return s.r }

// Stable reports whether r ≤ 1.
func (s *Solver) Stable() bool { return s.r <= 1 }
