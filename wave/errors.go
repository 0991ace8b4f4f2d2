package wave

import "errors"

var (
	// ErrInvalidConfiguration indicates a Config outside the solver's domain
	// (non-positive or non-finite L, C, Dt; N < 2; Nt < 1; nil Shape).
	// Returned before any allocation.
	ErrInvalidConfiguration = errors.New("wave: invalid configuration")

	// ErrStopped wraps the error returned by a Stream callback that ended the march early.
	ErrStopped = errors.New("wave: stream stopped")
)
