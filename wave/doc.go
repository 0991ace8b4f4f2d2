// Package wave solves the 1-D wave equation for a string with fixed ends.
//
// 🚀 What is solved?
//
//	∂²ψ/∂t² = c²·∂²ψ/∂x²,  0 ≤ x ≤ L,  ψ(0,t) = ψ(L,t) = 0,  ψ(x,0) = f(x)
//
//	The string is discretized into N intervals (dx = L/N) and Nt time steps
//	of size dt. The explicit centered-difference scheme advances one time
//	level from the two previous ones:
//
//	  ψ[i,n+1] = r·(ψ[i+1,n] − 2ψ[i,n] + ψ[i−1,n]) + 2ψ[i,n] − ψ[i,n−1]
//
//	with the Courant number r = c²·dt²/dx². The scheme is stable iff r ≤ 1;
//	the solver exposes r (Courant, Stable) but does not enforce it.
//
// ✨ Key features:
//   - eager solver (New): the whole (N+1)×(Nt+1) field is computed at
//     construction and exposed read-only (Psi, X);
//   - streaming producer (Stream): the same march over three rolling rows,
//     O(N) memory, bit-identical values;
//   - two first-step schemes (TaylorStart, LiteralStart), see FirstStep;
//   - optional parallel spatial sweep (WithWorkers) with a barrier per time
//     step; results are bit-identical to the serial sweep.
//
// ⚙️ Usage:
//
//	s, err := wave.New(wave.Config{
//	  Shape: shape.Sine(2, 1),
//	  L: 1, C: 1, Dt: 0.001, N: 100, Nt: 200,
//	})
//	if err != nil {
//	  // errors.Is(err, wave.ErrInvalidConfiguration)
//	}
//	x, psi := s.X(), s.Psi()
//
// Complexity:
//
//   - Time:   O(N·Nt)
//   - Memory: O(N·Nt) (New) or O(N) (Stream)
package wave
