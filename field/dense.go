// SPDX-License-Identifier: MIT

// Package field - Dense storage (time-major) & safe accessors.
//
// Purpose:
//   - Keep every time step ψ[:,n] contiguous so the solver can fill a whole
//     step with one copy and renderers can sample a step with one copy.
//   - Guarantee safety at the public surface: At/Step return errors instead of panicking.
//   - Keep determinism (fixed loop orders, no map iteration).

package field

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"      // method tag used in error wrappers
	ctxStep    = "Step"    // method tag used in error wrappers
	ctxSetStep = "SetStep" // method tag used in error wrappers
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, point, step int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, point, step, err)
}

// Field is the read-only view of a displacement grid handed to consumers.
// Implementations never expose their backing storage.
type Field interface {
	// Points returns the number of spatial grid points (N+1).
	Points() int
	// Steps returns the number of stored time levels (Nt+1).
	Steps() int
	// At returns ψ[point, step].
	At(point, step int) (float64, error)
	// Step returns a copy of ψ[:, step].
	Step(step int) ([]float64, error)
}

// Dense is a concrete time-major field.
//   - points, steps hold dimensions.
//   - data is a flat buffer of length points*steps (offset = step*points + point).
type Dense struct {
	points, steps int
	data          []float64
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Field        = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates a points×steps zero field.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate points>0 && steps>0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled flat buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(points*steps), Space O(points*steps).
func NewDense(points, steps int) (*Dense, error) {
	if points <= 0 || steps <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{
		points: points,
		steps:  steps,
		data:   make([]float64, points*steps), // make() zero-fills deterministically
	}, nil
}

// Points returns the number of spatial points. Complexity: O(1).
func (d *Dense) Points() int { return d.points }

// Steps returns the number of time levels. Complexity: O(1).
func (d *Dense) Steps() int { return d.steps }

// Shape packs Points() and Steps() into a single call.
func (d *Dense) Shape() (points, steps int) { return d.points, d.steps }

// offset computes the flat offset of (point, step) or returns ErrOutOfRange.
func (d *Dense) offset(point, step int) (int, error) {
	if point < 0 || point >= d.points {
		return 0, ErrOutOfRange
	}
	if step < 0 || step >= d.steps {
		return 0, ErrOutOfRange
	}

	return step*d.points + point, nil
}

// At returns ψ[point, step] or ErrOutOfRange.
// Never panics on out-of-range; the sentinel is wrapped with coordinates.
// Complexity: O(1).
func (d *Dense) At(point, step int) (float64, error) {
	off, err := d.offset(point, step)
	if err != nil {
		return 0, denseErrorf(ctxAt, point, step, err)
	}

	return d.data[off], nil
}

// Step returns a fresh copy of ψ[:, step].
// MAIN DESCRIPTION:
//   - Snapshot accessor used by plot and animation renderers.
//
// Behavior highlights:
//   - The returned slice is owned by the caller; mutating it never affects the field.
//
// Errors:
//   - ErrOutOfRange for step outside [0, Steps()).
//
// Complexity:
//   - Time O(points), Space O(points).
func (d *Dense) Step(step int) ([]float64, error) {
	if step < 0 || step >= d.steps {
		return nil, denseErrorf(ctxStep, 0, step, ErrOutOfRange)
	}
	out := make([]float64, d.points)
	copy(out, d.data[step*d.points:(step+1)*d.points])

	return out, nil
}

// SetStep copies row into ψ[:, step].
// MAIN DESCRIPTION:
//   - Bulk writer used by the producer while the field is being filled.
//
// Errors:
//   - ErrOutOfRange for step outside [0, Steps()).
//   - ErrLengthMismatch when len(row) != Points().
//
// Notes:
//   - No finite-value policy: a diverging scheme (Courant number > 1) is allowed
//     to store ±Inf/NaN so callers can observe the blow-up.
func (d *Dense) SetStep(step int, row []float64) error {
	if step < 0 || step >= d.steps {
		return denseErrorf(ctxSetStep, 0, step, ErrOutOfRange)
	}
	if len(row) != d.points {
		return denseErrorf(ctxSetStep, len(row), step, ErrLengthMismatch)
	}
	copy(d.data[step*d.points:(step+1)*d.points], row)

	return nil
}

// Do visits every value in step-major, point-minor order.
// The callback returns false to stop early.
// Complexity: O(points*steps), Space O(1).
func (d *Dense) Do(f func(point, step int, v float64) bool) {
	var i, n, base int
	for n = 0; n < d.steps; n++ {
		base = n * d.points
		for i = 0; i < d.points; i++ {
			if !f(i, n, d.data[base+i]) {
				return
			}
		}
	}
}

// Clone returns a deep copy with an independent buffer.
func (d *Dense) Clone() *Dense {
	cp := make([]float64, len(d.data))
	copy(cp, d.data)

	return &Dense{points: d.points, steps: d.steps, data: cp}
}

// String renders one line per time step; intended for diagnostics on small fields.
func (d *Dense) String() string {
	var b strings.Builder
	for n := 0; n < d.steps; n++ {
		b.WriteString("[")
		base := n * d.points
		for i := 0; i < d.points; i++ {
			b.WriteString(fmt.Sprintf("%g", d.data[base+i]))
			if i+1 < d.points {
				b.WriteString(", ")
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}
