package lmfit

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	dampingInit   = 1e-3 // initial Marquardt damping factor
	dampingGrow   = 10.0 // growth on a rejected step
	dampingShrink = 0.1  // shrink on an accepted step
	dampingFloor  = 1e-12
	dampingMax    = 1e12 // saturation: the projected problem is stationary
	fdRel         = 1.5e-8
)

// Fit — box-bounded Levenberg-Marquardt least squares
//
// Description:
//
//	Fit minimizes Σ (model(x_i; p) − y_i)² over lower ≤ p ≤ upper starting
//	from b.Start. The box is enforced by projecting every candidate step
//	onto [lower, upper]; parameters are reported in the model's own scale.
//
// Algorithm Outline:
//  1. Project the start point into the box; evaluate the residual vector.
//  2. Per iteration: build the finite-difference Jacobian J (one residual
//     evaluation per parameter, differencing inward at an upper bound),
//     then solve (JᵀJ + λ·diag(JᵀJ))·δ = Jᵀr and try p' = Π(p − δ), where
//     Π projects onto the box and, if Options.MaxStep > 0, the step's
//     ∞-norm is capped first.
//  3. Accept p' when it lowers the sum of squares: shrink λ, and declare
//     convergence when the relative improvement drops below FuncTol.
//     Reject otherwise: grow λ and retry; λ saturating at 1e12 means no
//     descent is possible and also counts as convergence.
//  4. Hitting MaxIterations or MaxEvaluations first is a soft failure:
//     the best point found is returned with Converged=false.
//
// Errors:
//   - ErrNoData / ErrDimensionMismatch — malformed data vectors.
//   - ErrBadBounds — empty, unequal-length or inverted bounds, or NaN.
//   - ErrBadConfig — non-positive caps or tolerance, negative MaxStep.
//
// Deterministic given identical inputs and configuration.
func Fit(model Model, xs, ys []float64, b Bounds, opts Options) (Result, error) {
	if err := validate(xs, ys, b, opts); err != nil {
		return Result{}, err
	}

	m, n := len(xs), len(b.Start)
	p := make([]float64, n)
	copy(p, b.Start)
	project(p, b)

	evals := 0
	residuals := func(params, dst []float64) {
		for i, x := range xs {
			dst[i] = model(x, params) - ys[i]
		}
		evals++
	}

	f := make([]float64, m)
	residuals(p, f)
	ssr := floats.Dot(f, f)
	if ssr == 0 {
		return Result{Params: p, SSR: 0, RSquared: rSquared(ys, 0), Converged: true, Evaluations: evals}, nil
	}

	var (
		jac    = mat.NewDense(m, n, nil)
		jtj    = mat.NewDense(n, n, nil)
		damped = mat.NewDense(n, n, nil)
		grad   = mat.NewVecDense(n, nil)
		step   mat.VecDense
		fVec   = mat.NewVecDense(m, f)
		fTrial = make([]float64, m)
		pTrial = make([]float64, n)
	)

	lambda := dampingInit
	converged := false
	needJacobian := true
	iterations := 0

	for ; iterations < opts.MaxIterations && evals < opts.MaxEvaluations; iterations++ {
		if needJacobian {
			fillJacobian(model, xs, ys, p, f, b, jac, &evals)
			jtj.Mul(jac.T(), jac)
			grad.MulVec(jac.T(), fVec)
			needJacobian = false
		}

		damped.Copy(jtj)
		for j := 0; j < n; j++ {
			d := jtj.At(j, j)
			if d <= 0 {
				d = 1 // frozen or flat parameter: damp against unit curvature
			}
			damped.Set(j, j, jtj.At(j, j)+lambda*d)
		}
		if err := step.SolveVec(damped, grad); err != nil {
			lambda *= dampingGrow
			if lambda > dampingMax {
				converged = true

				break
			}

			continue
		}

		for j := 0; j < n; j++ {
			pTrial[j] = p[j] - step.AtVec(j)
		}
		if opts.MaxStep > 0 {
			capStep(p, pTrial, opts.MaxStep)
		}
		project(pTrial, b)

		residuals(pTrial, fTrial)
		ssrTrial := floats.Dot(fTrial, fTrial)

		if ssrTrial < ssr { // NaN trials fail this comparison and are rejected
			improvement := (ssr - ssrTrial) / ssr
			copy(p, pTrial)
			copy(f, fTrial)
			ssr = ssrTrial
			lambda = math.Max(lambda*dampingShrink, dampingFloor)
			needJacobian = true
			if improvement < opts.FuncTol {
				converged = true

				break
			}

			continue
		}

		lambda *= dampingGrow
		if lambda > dampingMax {
			converged = true

			break
		}
	}

	return Result{
		Params:      p,
		SSR:         ssr,
		RSquared:    rSquared(ys, ssr),
		Converged:   converged,
		Iterations:  iterations,
		Evaluations: evals,
	}, nil
}

// fillJacobian writes the m×n finite-difference Jacobian of the residual
// vector into dst. Columns use a forward difference, flipped to a backward
// difference when the forward probe would leave the box, so the model is
// never evaluated outside [Lower, Upper]. Each column consumes one
// residual-vector evaluation.
func fillJacobian(model Model, xs, ys, p, f []float64, b Bounds, dst *mat.Dense, evals *int) {
	n := len(p)
	probe := make([]float64, n)
	copy(probe, p)
	for j := 0; j < n; j++ {
		h := fdRel * math.Max(1, math.Abs(p[j]))
		if p[j]+h > b.Upper[j] {
			h = -h
		}
		probe[j] = p[j] + h
		if probe[j] < b.Lower[j] {
			probe[j] = b.Lower[j]
		}
		hEff := probe[j] - p[j]
		if hEff == 0 {
			// Degenerate box (Lower == Upper): the parameter is pinned.
			for i := range xs {
				dst.Set(i, j, 0)
			}
			probe[j] = p[j]

			continue
		}
		for i, x := range xs {
			dst.Set(i, j, (model(x, probe)-(f[i]+ys[i]))/hEff)
		}
		*evals++
		probe[j] = p[j]
	}
}

// project clamps p componentwise onto [b.Lower, b.Upper] in place.
func project(p []float64, b Bounds) {
	for j := range p {
		if p[j] < b.Lower[j] {
			p[j] = b.Lower[j]
		}
		if p[j] > b.Upper[j] {
			p[j] = b.Upper[j]
		}
	}
}

// capStep rescales pTrial toward p so the step ∞-norm does not exceed
// maxStep.
func capStep(p, pTrial []float64, maxStep float64) {
	norm := 0.0
	for j := range p {
		norm = math.Max(norm, math.Abs(pTrial[j]-p[j]))
	}
	if norm <= maxStep || norm == 0 {
		return
	}
	scale := maxStep / norm
	for j := range p {
		pTrial[j] = p[j] + scale*(pTrial[j]-p[j])
	}
}

// rSquared computes 1 − SSR/TSS. NaN when the data has zero variance.
// The value is reported as computed: constrained nonlinear fits can
// legitimately produce R² outside [0, 1].
func rSquared(ys []float64, ssr float64) float64 {
	mean := floats.Sum(ys) / float64(len(ys))
	tss := 0.0
	for _, y := range ys {
		d := y - mean
		tss += d * d
	}
	if tss == 0 {
		return math.NaN()
	}

	return 1 - ssr/tss
}

// validate reports the first malformed input, or nil.
func validate(xs, ys []float64, b Bounds, opts Options) error {
	if len(xs) == 0 || len(ys) == 0 {
		return ErrNoData
	}
	if len(xs) != len(ys) {
		return ErrDimensionMismatch
	}
	n := len(b.Start)
	if n == 0 || len(b.Lower) != n || len(b.Upper) != n {
		return ErrBadBounds
	}
	for j := 0; j < n; j++ {
		if math.IsNaN(b.Lower[j]) || math.IsNaN(b.Upper[j]) || math.IsNaN(b.Start[j]) {
			return ErrBadBounds
		}
		if b.Lower[j] > b.Upper[j] {
			return ErrBadBounds
		}
	}
	if opts.MaxIterations <= 0 || opts.MaxEvaluations <= 0 || opts.FuncTol <= 0 || opts.MaxStep < 0 {
		return ErrBadConfig
	}

	return nil
}
