// SPDX-License-Identifier: MIT
// Package field: sentinel error set.
// Every message is prefixed with "field: ..." and public methods wrap the
// sentinel with fmt.Errorf("ctx: %w") so callers match via errors.Is.

package field

import "errors"

var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("field: dimensions must be > 0")

	// ErrOutOfRange indicates that a point or step index is outside valid bounds.
	ErrOutOfRange = errors.New("field: index out of range")

	// ErrLengthMismatch indicates that a row slice does not have Points() values.
	ErrLengthMismatch = errors.New("field: row length mismatch")

	// ErrNilField indicates that a nil Field was passed where data was required.
	ErrNilField = errors.New("field: nil field")
)
