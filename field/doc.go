// SPDX-License-Identifier: MIT

// Package field stores the displacement field ψ of a vibrating string.
//
// 🚀 What is a Field?
//
//	A Field is the finished space-time grid produced by the wave solver:
//	ψ[i,n] is the displacement at spatial point x_i and time n·dt, with
//	i = 0..Points()-1 and n = 0..Steps()-1.
//
// ✨ Key features:
//   - time-major flat storage: each time step is one contiguous slice
//     (offset = n*points + i), so a snapshot ψ[:,n] is a single copy;
//   - read-only public surface (Field interface): At/Step never expose the
//     backing buffer;
//   - safe accessors: out-of-range indices return ErrOutOfRange, never panic;
//   - statistics over the whole grid (MinMax, MaxAbs) for axis limits and
//     divergence checks.
//
// ⚙️ Usage:
//
//	d, err := field.NewDense(points, steps)
//	_ = d.SetStep(0, initialRow)
//	v, err := d.At(i, n)
//	col, err := d.Step(n) // copy of ψ[:,n]
//
// Complexity:
//
//   - NewDense: O(points·steps) zero-init; At: O(1); Step/SetStep: O(points).
package field
