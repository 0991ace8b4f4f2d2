package wave

import "fmt"

// Stream runs the same march as New without keeping the field: fn receives
// every time level n = 0..Nt in order. Values are bit-identical to New's.
//
// The row slice is reused between calls; fn must copy it to retain it.
// A non-nil error from fn stops the march and is returned wrapped in ErrStopped.
func Stream(cfg Config, fn func(n int, row []float64) error, opts ...Option) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if fn == nil {
		return fmt.Errorf("%w: nil stream callback", ErrInvalidConfiguration)
	}
	o := gatherOptions(opts...)

	return run(cfg, o, func(n int, row []float64) error {
		if err := fn(n, row); err != nil {
			return fmt.Errorf("%w at step %d: %w", ErrStopped, n, err)
		}
		return nil
	})
}
