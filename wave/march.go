package wave

import (
	"golang.org/x/sync/errgroup"
)

// marcher advances the field one time level at a time over three rolling rows.
// prev, curr and next are always distinct slices, so a sweep reads only
// finished rows and writes only the fresh one.
type marcher struct {
	r       float64
	workers int
}

// stencil writes the centered-difference update for interior indices [lo, hi).
func (m marcher) stencil(next, curr, prev []float64, lo, hi int) {
	r := m.r
	for i := lo; i < hi; i++ {
		next[i] = r*(curr[i+1]-2*curr[i]+curr[i-1]) + 2*curr[i] - prev[i]
	}
}

// taylor writes the zero-velocity start for interior indices [lo, hi).
func (m marcher) taylor(next, curr []float64, lo, hi int) {
	h := m.r / 2
	for i := lo; i < hi; i++ {
		next[i] = h*(curr[i+1]-2*curr[i]+curr[i-1]) + curr[i]
	}
}

// sweep runs kernel over the interior of a row of length points, either
// inline or split into contiguous chunks, and returns once every chunk is
// done with the first kernel error, if any.
func (m marcher) sweep(points int, kernel func(lo, hi int) error) error {
	interior := points - 2
	if m.workers <= 1 || interior < 2*minChunk {
		return kernel(1, points-1)
	}

	chunk := (interior + m.workers - 1) / m.workers
	if chunk < minChunk {
		chunk = minChunk
	}
	var g errgroup.Group
	for lo := 1; lo < points-1; lo += chunk {
		lo, hi := lo, min(lo+chunk, points-1)
		g.Go(func() error { return kernel(lo, hi) })
	}

	return g.Wait()
}

// run performs the full march and hands every time level to emit in order.
// The row passed to emit is only valid for the duration of the call.
func run(cfg Config, o Options, emit func(n int, row []float64) error) error {
	points := cfg.N + 1
	m := marcher{r: cfg.Courant(), workers: o.workers}
	dx := cfg.Dx()

	prev := make([]float64, points)
	curr := make([]float64, points)
	next := make([]float64, points)

	// n = 0: interior from f, ends pinned.
	for i := 1; i < cfg.N; i++ {
		curr[i] = cfg.Shape(float64(i) * dx)
	}
	if err := emit(0, curr); err != nil {
		return err
	}

	// n = 1: prev is still all zeros here, which LiteralStart relies on.
	first := func(lo, hi int) error {
		m.taylor(next, curr, lo, hi)
		return nil
	}
	if o.firstStep == LiteralStart {
		first = func(lo, hi int) error {
			m.stencil(next, curr, prev, lo, hi)
			return nil
		}
	}
	if err := m.sweep(points, first); err != nil {
		return err
	}
	next[0], next[cfg.N] = 0, 0
	if err := emit(1, next); err != nil {
		return err
	}
	prev, curr, next = curr, next, prev

	for n := 1; n < cfg.Nt; n++ {
		p, c, nx := prev, curr, next
		err := m.sweep(points, func(lo, hi int) error {
			m.stencil(nx, c, p, lo, hi)
			return nil
		})
		if err != nil {
			return err
		}
		next[0], next[cfg.N] = 0, 0
		if err := emit(n+1, next); err != nil {
			return err
		}
		prev, curr, next = curr, next, prev
	}

	return nil
}
