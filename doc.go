// Package hsicurve turns tabulated species-preference ranges into smooth,
// closed-form habitat-suitability curves.
//
// 🚀 What is hsicurve?
//
//	A small, focused library that takes per-reference acceptable and optimal
//	intervals of a physical variable (water depth, flow velocity, …) and:
//	  • aggregates them into a normalized empirical suitability curve (HSI)
//	    over a regular grid — see suitability/
//	  • fits a parametric model to that curve with a box-bounded
//	    Levenberg-Marquardt solver — see lmfit/
//	  • picks bounds and start points straight from the empirical curve's
//	    shape and wraps the fit into a callable model with R² — see hsi/
//
// ✨ Why choose hsicurve?
//
//   - Deterministic — no randomized restarts, identical inputs give
//     identical fits
//   - Stateless — the four canonical runs (adult/juvenile × depth/velocity)
//     share nothing and may run concurrently
//   - Honest diagnostics — solver non-convergence is reported, never hidden
//
// Under the hood, everything is organized under three subpackages:
//
//	suitability/ — preference-range aggregation into empirical HSI curves
//	lmfit/       — generic box-bounded nonlinear least squares
//	hsi/         — model families (Gaussian, Gamma-like), bound heuristics,
//	               and the per-run fitting pipeline
//
// A thin CLI lives in cmd/hsicurve for loading CSV preference tables,
// running the four canonical fits and exporting figures.
//
//	go get github.com/katalvlaran/hsicurve
package hsicurve
