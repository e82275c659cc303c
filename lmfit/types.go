package lmfit

// Model is a scalar model function y = f(x; p) evaluated at a single
// abscissa x with the parameter vector p. The solver never calls a Model
// with parameters outside the configured box.
type Model func(x float64, p []float64) float64

// Bounds is the box constraint and start point of a fit, one entry per
// model parameter, in the model's parameter order. Lower entries may be
// −Inf and Upper entries +Inf for unconstrained parameters. Start entries
// may sit exactly on a bound; a Start outside the box is projected onto it
// before the first evaluation.
type Bounds struct {
	Lower []float64
	Upper []float64
	Start []float64
}

// Options configures the solver.
//
// MaxIterations  – cap on Levenberg-Marquardt iterations. Must be > 0.
// MaxEvaluations – cap on residual-vector evaluations (each Jacobian
//
//	column counts as one). Must be > 0.
//
// FuncTol        – relative sum-of-squares improvement below which an
//
//	accepted step is declared converged. Must be > 0.
//
// MaxStep        – optional cap on the ∞-norm of a single parameter step;
//
//	0 disables the cap. Must be ≥ 0.
type Options struct {
	MaxIterations  int
	MaxEvaluations int
	FuncTol        float64
	MaxStep        float64
}

// DefaultOptions returns the canonical solver configuration:
// 1e5 iterations, 1e4 evaluations, function tolerance 1e-8, no step cap.
func DefaultOptions() Options {
	return Options{
		MaxIterations:  100000,
		MaxEvaluations: 10000,
		FuncTol:        1e-8,
		MaxStep:        0,
	}
}

// Result is the outcome of a fit.
//
// Converged is false when the iteration or evaluation cap was exhausted
// before the tolerance was met; Params, SSR and RSquared are still the best
// values found and remain valid diagnostics — treat them as low-confidence.
type Result struct {
	Params      []float64 // fitted parameters, inside the box
	SSR         float64   // sum of squared residuals at Params
	RSquared    float64   // 1 − SSR/TSS; may fall outside [0,1], never clamped
	Converged   bool      // tolerance met (or damping saturated) before hitting a cap
	Iterations  int       // Levenberg-Marquardt iterations performed
	Evaluations int       // residual-vector evaluations consumed
}
