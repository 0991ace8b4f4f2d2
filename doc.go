// Package wavestring is a small numerical toolkit for the vibrating string:
// the 1-D wave equation with fixed ends, solved by the explicit
// centered-difference time march.
//
// 🚀 What is inside?
//
//	wave/     — the solver: validation, grid, first step, time march, streaming
//	field/    — time-major storage of ψ[i,n] with safe read-only accessors
//	shape/    — initial displacement profiles (sine modes, windows, plucks)
//	scenario/ — the reference runs and their parameters (viper)
//	render/   — snapshot/animation sampling and a CSV renderer
//	record/   — SQLite recording of whole fields
//	cmd/      — the wavestring CLI
//
// ✨ Stability:
//
//	The scheme is stable iff the Courant number r = c²·dt²/dx² ≤ 1.
//	The solver exposes r but never rejects a configuration because of it.
//
// Quick start:
//
//	s, _ := wave.New(wave.Config{Shape: shape.Sine(2, 1), L: 1, C: 1, Dt: 0.001, N: 100, Nt: 200})
//	psi := s.Psi() // (N+1)×(Nt+1)
//
//	go run ./cmd/wavestring run --out out --db runs.sqlite3
package wavestring
