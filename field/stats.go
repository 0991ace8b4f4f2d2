// SPDX-License-Identifier: MIT

package field

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// MinMax returns the smallest and largest values stored in f.
// Animation renderers use it to fix the vertical axis once for all frames.
//
// Errors:
//   - ErrNilField when f is nil.
//   - any error returned by f.Step.
//
// Complexity:
//   - Time O(points*steps), Space O(points).
func MinMax(f Field) (lo, hi float64, err error) {
	if isNil(f) {
		return 0, 0, ErrNilField
	}
	// Dense fast path: scan the flat buffer directly.
	if d, ok := f.(*Dense); ok {
		return floats.Min(d.data), floats.Max(d.data), nil
	}

	lo, hi = math.Inf(1), math.Inf(-1)
	for n := 0; n < f.Steps(); n++ {
		row, err := f.Step(n)
		if err != nil {
			return 0, 0, err
		}
		lo = math.Min(lo, floats.Min(row))
		hi = math.Max(hi, floats.Max(row))
	}

	return lo, hi, nil
}

// MaxAbs returns max |ψ| over the whole grid.
// A value far above max|f| signals a diverging scheme.
func MaxAbs(f Field) (float64, error) {
	lo, hi, err := MinMax(f)
	if err != nil {
		return 0, err
	}

	return math.Max(math.Abs(lo), math.Abs(hi)), nil
}

// StepNorm returns the L2 norm of ψ[:, step].
func StepNorm(f Field, step int) (float64, error) {
	if isNil(f) {
		return 0, ErrNilField
	}
	row, err := f.Step(step)
	if err != nil {
		return 0, err
	}

	return floats.Norm(row, 2), nil
}

// isNil reports an untyped nil as well as a nil *Dense stored in f.
func isNil(f Field) bool {
	if f == nil {
		return true
	}
	d, ok := f.(*Dense)

	return ok && d == nil
}
