// Package render prepares a finished displacement field for the downstream
// visualization collaborators and defines the interface they implement.
//
// Two consumers are modelled:
//
//	Plot      — five snapshots ψ[:,n] at n = 0, Nt/4, Nt/2, 3Nt/4, Nt
//	Animation — every column ψ[:,0..Nt] in order, one frame per interval
//
// Both treat x and ψ as read-only.
package render

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/wavestring/field"
)

var (
	// ErrNilSource indicates that no solver output was supplied.
	ErrNilSource = errors.New("render: nil source")

	// ErrBadInterval indicates a non-positive animation frame interval.
	ErrBadInterval = errors.New("render: frame interval must be > 0")
)

// DefaultInterval is the animation frame interval.
const DefaultInterval = 30 * time.Millisecond

//go:generate mockgen -destination=mock_renderer_test.go -package=render_test github.com/katalvlaran/wavestring/render Renderer

// Source is the solver output consumed by renderers. *wave.Solver implements it.
type Source interface {
	X() []float64
	Psi() field.Field
	Dt() float64
	Label() string
}

// Renderer turns prepared plots and animations into artifacts.
type Renderer interface {
	RenderPlot(p Plot) error
	RenderAnimation(a Animation) error
}

// Series is one snapshot curve of a Plot.
type Series struct {
	Step   int
	Time   float64
	Legend string
	Values []float64
}

// Plot is the five-snapshot time-evolution figure.
type Plot struct {
	Title  string
	X      []float64
	Series []Series
}

// SnapshotIndices returns the sampled time levels 0, nt/4, nt/2, 3nt/4, nt
// (integer division).
func SnapshotIndices(nt int) []int {
	return []int{0, nt / 4, nt / 2, 3 * nt / 4, nt}
}

// TimeLegend formats the legend entry of step n.
func TimeLegend(n int, dt float64) string {
	return fmt.Sprintf("t=%.3f", float64(n)*dt)
}

// NewPlot samples src at SnapshotIndices.
func NewPlot(src Source) (Plot, error) {
	if src == nil || src.Psi() == nil {
		return Plot{}, ErrNilSource
	}
	psi := src.Psi()
	nt := psi.Steps() - 1

	idx := SnapshotIndices(nt)
	series := make([]Series, 0, len(idx))
	for _, n := range idx {
		values, err := psi.Step(n)
		if err != nil {
			return Plot{}, fmt.Errorf("render: snapshot %d: %w", n, err)
		}
		series = append(series, Series{
			Step:   n,
			Time:   float64(n) * src.Dt(),
			Legend: TimeLegend(n, src.Dt()),
			Values: values,
		})
	}

	return Plot{
		Title:  "Time evolution of vibrating string\n" + src.Label(),
		X:      src.X(),
		Series: series,
	}, nil
}

// Animation iterates every time level of a field as frames.
type Animation struct {
	Title    string
	Label    string
	X        []float64
	Length   float64
	YMin     float64
	YMax     float64
	Interval time.Duration
	Dt       float64

	psi field.Field
}

// NewAnimation prepares src for frame-by-frame rendering. The vertical range
// is fixed to the global min/max of ψ.
func NewAnimation(src Source, interval time.Duration) (Animation, error) {
	if src == nil || src.Psi() == nil {
		return Animation{}, ErrNilSource
	}
	if interval <= 0 {
		return Animation{}, ErrBadInterval
	}
	lo, hi, err := field.MinMax(src.Psi())
	if err != nil {
		return Animation{}, err
	}
	x := src.X()

	return Animation{
		Title:    "Vibrating string animation\n" + src.Label(),
		Label:    src.Label(),
		X:        x,
		Length:   x[len(x)-1],
		YMin:     lo,
		YMax:     hi,
		Interval: interval,
		Dt:       src.Dt(),
		psi:      src.Psi(),
	}, nil
}

// FrameCount returns Nt+1.
func (a Animation) FrameCount() int {
	if a.psi == nil {
		return 0
	}
	return a.psi.Steps()
}

// FrameTitle returns the per-frame title shown at step n.
func (a Animation) FrameTitle(n int) string {
	return fmt.Sprintf("Vibrating string at t = %.3f\n%s", float64(n)*a.Dt, a.Label)
}

// Frames calls fn for every time level in order. fn receives its own copy
// of ψ[:,n]; returning an error stops the iteration.
func (a Animation) Frames(fn func(n int, values []float64) error) error {
	for n := 0; n < a.FrameCount(); n++ {
		values, err := a.psi.Step(n)
		if err != nil {
			return err
		}
		if err = fn(n, values); err != nil {
			return err
		}
	}

	return nil
}

// Publish builds the plot and the animation of src and hands both to r.
func Publish(r Renderer, src Source, interval time.Duration) error {
	p, err := NewPlot(src)
	if err != nil {
		return err
	}
	if err = r.RenderPlot(p); err != nil {
		return fmt.Errorf("render: plot: %w", err)
	}

	a, err := NewAnimation(src, interval)
	if err != nil {
		return err
	}
	if err = r.RenderAnimation(a); err != nil {
		return fmt.Errorf("render: animation: %w", err)
	}

	return nil
}
