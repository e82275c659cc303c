// Package lmfit solves box-bounded nonlinear least-squares problems with a
// Levenberg-Marquardt iteration.
//
// 🚀 What does it solve?
//
//	Given a scalar model y = f(x; p), paired data (x_i, y_i) and a box
//	lower ≤ p ≤ upper, lmfit minimizes
//
//	  S(p) = Σ_i ( f(x_i; p) − y_i )²
//
//	over the box. Box constraints are honored by projecting every candidate
//	step onto [lower, upper] — no re-parameterization tricks, so reported
//	parameter values are the model's own.
//
// ✨ Key features:
//   - Marquardt diagonal damping with adaptive growth/shrink
//   - forward finite-difference Jacobian that flips to a backward step at
//     the upper bound, so the model is never evaluated outside the box
//   - start points exactly on a bound are legal
//   - optional per-step ∞-norm cap on the parameter change (MaxStep)
//   - deterministic: no randomized restarts, identical inputs give
//     identical results
//
// Stopping:
//
//	The fit converges when the relative improvement of S(p) on an accepted
//	step falls below Options.FuncTol, or when damping saturates (a
//	stationary point of the projected problem). Exhausting MaxIterations or
//	MaxEvaluations is a soft failure: the best parameters found are still
//	returned with Result.Converged == false, and callers decide how much to
//	trust them.
//
// Goodness of fit:
//
//	Result.RSquared = 1 − S(p) / Σ (y_i − ȳ)². For nonlinear models fitted
//	under constraints this value is not guaranteed to lie in [0, 1]; it is
//	reported as computed, never clamped.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/hsicurve/lmfit"
//
//	model := func(x float64, p []float64) float64 {
//	  return p[0] * math.Exp(-p[1]*x)
//	}
//	b := lmfit.Bounds{
//	  Lower: []float64{0, 0},
//	  Upper: []float64{10, 10},
//	  Start: []float64{1, 1},
//	}
//	res, err := lmfit.Fit(model, xs, ys, b, lmfit.DefaultOptions())
//
// Complexity per iteration: O(m·n) model evaluations for the Jacobian plus
// one O(n³) dense solve, with m data points and n parameters.
package lmfit
