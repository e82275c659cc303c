// Package hsi fits closed-form habitat-suitability models to empirical
// preference curves.
//
// 🚀 What does it do?
//
//	Given an empirical suitability curve (see suitability/), hsi derives
//	box constraints and a start point for a parametric model directly from
//	the curve's shape, runs the box-bounded least-squares solver (see
//	lmfit/), and wraps the fitted parameters into a callable model with an
//	R² goodness-of-fit.
//
// Two model families are supported:
//
//	Gaussian (depth-like variables, 3 parameters a1, b1, c1):
//
//	  y = a1·exp(−((x−b1)/c1)²) + (1−a1)
//
//	Gamma-like (velocity-like variables, 4 parameters a, b, d, e):
//
//	  y = (1−d)·(E/a)^a·((x+e)/b)^a·exp(−(x+e)/b) + d
//
//	where E is Euler's number and the parameter e is the shift of the
//	decay; both appear in the formula at the same time by design. The
//	leading (E/a)^a factor normalizes the peak of the decay term to 1, so
//	the model tops out at exactly 1 regardless of parameters.
//
// Bound heuristics (they look unusual on purpose; they are part of the
// method, not tuning knobs):
//
//   - Gaussian: the a1 bracket comes from the first and last *score
//     values* below 0.2 — magnitudes, not x-positions — and b1 from the
//     first and last grid positions scoring above 0.95. c1 is free.
//   - Gamma-like: the curve is first restricted to points scoring ≥ 0.4;
//     the restricted points are also the data the model is fitted to.
//
// The four canonical runs (adult/juvenile × depth/velocity) are one
// parameterized pipeline: DefaultRunConfigs returns their exact per-run
// constants and Run executes a single (table, config) pair. Runs share no
// state and may execute concurrently.
//
// Errors:
//   - ErrNoLowScores / ErrNoPeakScores — the Gaussian threshold heuristics
//     found no qualifying points; the curve does not match the family.
//   - ErrUnderdetermined — fewer restricted points than Gamma parameters.
//   - ErrBadFloor, ErrUnknownFamily, ErrBadParams — configuration misuse.
//
// Solver non-convergence is never an error: FittedModel.Converged carries
// the low-confidence signal alongside valid parameters and R².
package hsi
