package hsi

import (
	"fmt"

	"github.com/katalvlaran/hsicurve/lmfit"
	"github.com/katalvlaran/hsicurve/suitability"
)

// DefaultRunConfigs returns the four canonical runs with their exact
// per-run constants:
//
//   - adult depth / juvenile depth — Gaussian family, default solver.
//   - adult velocity — Gamma-like, floor d ≤ 0.2, 1e5 iterations / 1e4
//     evaluations, per-step cap 1e-4.
//   - juvenile velocity — Gamma-like, floor d ≤ 0.1, 4000 iterations /
//     6000 evaluations, per-step cap 1e-4.
//
// All runs aggregate with weight 0.5 / weightOpt 1.0 on a 0.1 grid and use
// function tolerance 1e-8.
func DefaultRunConfigs() []RunConfig {
	velocityAdult := lmfit.DefaultOptions()
	velocityAdult.MaxStep = 1e-4

	velocityJuvenile := lmfit.Options{
		MaxIterations:  4000,
		MaxEvaluations: 6000,
		FuncTol:        1e-8,
		MaxStep:        1e-4,
	}

	return []RunConfig{
		{Stage: StageAdult, Variable: VarDepth, Family: Gaussian,
			Weight: 0.5, WeightOpt: 1.0, GridStep: 0.1, Solver: lmfit.DefaultOptions()},
		{Stage: StageJuvenile, Variable: VarDepth, Family: Gaussian,
			Weight: 0.5, WeightOpt: 1.0, GridStep: 0.1, Solver: lmfit.DefaultOptions()},
		{Stage: StageAdult, Variable: VarVelocity, Family: GammaLike,
			Weight: 0.5, WeightOpt: 1.0, GridStep: 0.1, FloorMax: 0.2, Solver: velocityAdult},
		{Stage: StageJuvenile, Variable: VarVelocity, Family: GammaLike,
			Weight: 0.5, WeightOpt: 1.0, GridStep: 0.1, FloorMax: 0.1, Solver: velocityJuvenile},
	}
}

// Run — one complete (life stage, variable) pipeline execution
//
// Description:
//
//	Aggregates the preference table into an empirical curve, derives the
//	family's bounds and start point from the curve's shape, fits the model
//	with the box-bounded solver and wraps the outcome into a FittedModel.
//
// Data flow:
//
//	RangeTable → Aggregate → EmpiricalCurve → Estimate*Bounds →
//	lmfit.Fit → FittedModel (params, R², Converged, Evaluate)
//
// Aggregation and bound-estimation failures abort this run only; callers
// running several configurations proceed with the rest. Solver
// non-convergence is not an error: the model is returned with
// Converged=false and the caller decides whether to trust it.
//
// Run is stateless; concurrent calls with distinct tables and configs need
// no synchronization.
func Run(table suitability.RangeTable, cfg RunConfig) (Result, error) {
	aggOpts := suitability.Options{
		Weight:    cfg.Weight,
		WeightOpt: cfg.WeightOpt,
		GridStep:  cfg.GridStep,
	}
	curve, err := suitability.Aggregate(table, aggOpts)
	if err != nil {
		return Result{}, fmt.Errorf("aggregate %s %s: %w", cfg.Stage, cfg.Variable, err)
	}

	var (
		bounds lmfit.Bounds
		xs     = curve.Grid
		ys     = curve.Normalized
	)
	switch cfg.Family {
	case Gaussian:
		bounds, err = EstimateGaussianBounds(curve)
	case GammaLike:
		bounds, xs, ys, err = EstimateGammaBounds(curve, cfg.FloorMax)
	default:
		err = ErrUnknownFamily
	}
	if err != nil {
		return Result{}, fmt.Errorf("estimate bounds %s %s: %w", cfg.Stage, cfg.Variable, err)
	}

	model, err := ModelFunc(cfg.Family)
	if err != nil {
		return Result{}, err
	}

	fit, err := lmfit.Fit(model, xs, ys, bounds, cfg.Solver)
	if err != nil {
		return Result{}, fmt.Errorf("fit %s %s: %w", cfg.Stage, cfg.Variable, err)
	}

	evaluate, err := MakeEvaluator(cfg.Family, fit.Params)
	if err != nil {
		return Result{}, err
	}

	names := ParamNames(cfg.Family)
	params := make(map[string]float64, len(names))
	for i, name := range names {
		params[name] = fit.Params[i]
	}

	return Result{
		Curve: curve,
		Model: FittedModel{
			Family:    cfg.Family,
			Params:    params,
			RSquared:  fit.RSquared,
			Converged: fit.Converged,
			Evaluate:  evaluate,
		},
	}, nil
}
