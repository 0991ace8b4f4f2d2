// Package shape provides initial displacement profiles ψ(x, t=0) for the
// wave solver. A profile is a pure function of position; the solver calls it
// once per interior grid point at t = 0 and never on the string ends.
package shape

import "math"

// Func is an initial-shape function f: ℝ → ℝ. Implementations must be pure.
type Func func(x float64) float64

// Zero is the identically zero profile. A string started from Zero stays at rest.
func Zero(float64) float64 { return 0 }

// Sine returns f(x) = amp·sin(k·π·x).
// With k integer and string length 1 this is the k-th normal mode.
func Sine(k, amp float64) Func {
	return func(x float64) float64 {
		return amp * math.Sin(k*math.Pi*x)
	}
}

// Mode returns the k-th normal mode of a string of length l: sin(k·π·x/l).
func Mode(k int, l float64) Func {
	kf := float64(k)
	return func(x float64) float64 {
		return math.Sin(kf * math.Pi * x / l)
	}
}

// Window restricts f to the open interval (lo, hi) and is zero elsewhere.
// The bounds themselves map to zero.
func Window(f Func, lo, hi float64) Func {
	return func(x float64) float64 {
		if x > lo && x < hi {
			return f(x)
		}
		return 0
	}
}

// Pluck returns a triangular profile of height h peaked at p, 0 < p < l,
// vanishing at both ends: the shape of a plucked string.
func Pluck(p, h, l float64) Func {
	return func(x float64) float64 {
		switch {
		case x <= 0 || x >= l:
			return 0
		case x <= p:
			return h * x / p
		default:
			return h * (l - x) / (l - p)
		}
	}
}

// Scale multiplies f by a constant factor.
func Scale(f Func, a float64) Func {
	return func(x float64) float64 { return a * f(x) }
}

// Sum superposes several profiles.
func Sum(fs ...Func) Func {
	return func(x float64) float64 {
		var s float64
		for _, f := range fs {
			s += f(x)
		}
		return s
	}
}

// Reflect mirrors f about the midpoint of a string of length l: g(x) = f(l − x).
func Reflect(f Func, l float64) Func {
	return func(x float64) float64 { return f(l - x) }
}
