package lmfit_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/hsicurve/lmfit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// expModel is y = p0·exp(−p1·x), a well-conditioned two-parameter test
// problem.
func expModel(x float64, p []float64) float64 {
	return p[0] * math.Exp(-p[1]*x)
}

// linModel is y = p0 + p1·x; finite differences are exact on it.
func linModel(x float64, p []float64) float64 {
	return p[0] + p[1]*x
}

// sample evaluates model on a regular grid and returns (xs, ys).
func sample(model lmfit.Model, p []float64, from, to, step float64) ([]float64, []float64) {
	var xs, ys []float64
	for x := from; x <= to+1e-9; x += step {
		xs = append(xs, x)
		ys = append(ys, model(x, p))
	}

	return xs, ys
}

// unbounded returns ±Inf bounds for n parameters with the given start.
func unbounded(start ...float64) lmfit.Bounds {
	n := len(start)
	lower := make([]float64, n)
	upper := make([]float64, n)
	for j := 0; j < n; j++ {
		lower[j] = math.Inf(-1)
		upper[j] = math.Inf(1)
	}

	return lmfit.Bounds{Lower: lower, Upper: upper, Start: start}
}

// TestFit_ValidationErrors covers the input-validation sentinels.
func TestFit_ValidationErrors(t *testing.T) {
	good := lmfit.Bounds{Lower: []float64{0}, Upper: []float64{1}, Start: []float64{0.5}}
	opts := lmfit.DefaultOptions()

	_, err := lmfit.Fit(linModel, nil, nil, good, opts)
	assert.ErrorIs(t, err, lmfit.ErrNoData, "empty data must error")

	_, err = lmfit.Fit(linModel, []float64{1, 2}, []float64{1}, good, opts)
	assert.ErrorIs(t, err, lmfit.ErrDimensionMismatch, "unpaired data must error")

	bad := lmfit.Bounds{Lower: []float64{1}, Upper: []float64{0}, Start: []float64{0.5}}
	_, err = lmfit.Fit(linModel, []float64{1}, []float64{1}, bad, opts)
	assert.ErrorIs(t, err, lmfit.ErrBadBounds, "inverted bounds must error")

	bad = lmfit.Bounds{Lower: []float64{0, 0}, Upper: []float64{1}, Start: []float64{0.5}}
	_, err = lmfit.Fit(linModel, []float64{1}, []float64{1}, bad, opts)
	assert.ErrorIs(t, err, lmfit.ErrBadBounds, "unequal bound lengths must error")

	bad = lmfit.Bounds{Lower: []float64{math.NaN()}, Upper: []float64{1}, Start: []float64{0.5}}
	_, err = lmfit.Fit(linModel, []float64{1}, []float64{1}, bad, opts)
	assert.ErrorIs(t, err, lmfit.ErrBadBounds, "NaN bound must error")

	opts.MaxIterations = 0
	_, err = lmfit.Fit(linModel, []float64{1}, []float64{1}, good, opts)
	assert.ErrorIs(t, err, lmfit.ErrBadConfig, "zero iteration cap must error")
}

// TestFit_Linear recovers an exact linear model: the solver must converge
// with parameters at the true values and R² at 1.
func TestFit_Linear(t *testing.T) {
	truth := []float64{2, 3}
	xs, ys := sample(linModel, truth, 0, 5, 0.25)

	res, err := lmfit.Fit(linModel, xs, ys, unbounded(0, 0), lmfit.DefaultOptions())
	require.NoError(t, err)

	assert.True(t, res.Converged, "linear problem must converge")
	assert.InDelta(t, truth[0], res.Params[0], 1e-6, "intercept")
	assert.InDelta(t, truth[1], res.Params[1], 1e-6, "slope")
	assert.InDelta(t, 1.0, res.RSquared, 1e-9, "perfect data gives R²=1")
}

// TestFit_Exponential recovers a nonlinear decay from a generic start.
func TestFit_Exponential(t *testing.T) {
	truth := []float64{2.5, 1.3}
	xs, ys := sample(expModel, truth, 0, 3, 0.1)
	b := lmfit.Bounds{
		Lower: []float64{0, 0},
		Upper: []float64{10, 10},
		Start: []float64{1, 1},
	}

	res, err := lmfit.Fit(expModel, xs, ys, b, lmfit.DefaultOptions())
	require.NoError(t, err)

	assert.True(t, res.Converged, "clean exponential data must converge")
	assert.InDelta(t, truth[0], res.Params[0], 1e-4, "amplitude")
	assert.InDelta(t, truth[1], res.Params[1], 1e-4, "decay rate")
	assert.Greater(t, res.RSquared, 0.999999, "near-perfect fit")
}

// TestFit_ActiveBound pins the optimum outside the box: the solver must
// settle exactly on the bound, not near it.
func TestFit_ActiveBound(t *testing.T) {
	slope := func(x float64, p []float64) float64 { return p[0] * x }
	xs, ys := sample(slope, []float64{2}, 0, 4, 0.5)
	b := lmfit.Bounds{
		Lower: []float64{0},
		Upper: []float64{1.5},
		Start: []float64{0.5},
	}

	res, err := lmfit.Fit(slope, xs, ys, b, lmfit.DefaultOptions())
	require.NoError(t, err)

	assert.True(t, res.Converged, "projected problem is stationary at the bound")
	assert.Equal(t, 1.5, res.Params[0], "parameter must sit exactly on the upper bound")
	assert.Less(t, res.RSquared, 1.0, "the constrained fit cannot be perfect")
}

// TestFit_StartOnBound verifies a start point exactly on its lower bounds
// is legal and still reaches an interior optimum.
func TestFit_StartOnBound(t *testing.T) {
	truth := []float64{2.5, 1.3}
	xs, ys := sample(expModel, truth, 0, 3, 0.1)
	b := lmfit.Bounds{
		Lower: []float64{1, 0.5},
		Upper: []float64{10, 10},
		Start: []float64{1, 0.5}, // both components on the lower bound
	}

	res, err := lmfit.Fit(expModel, xs, ys, b, lmfit.DefaultOptions())
	require.NoError(t, err)

	assert.True(t, res.Converged)
	assert.InDelta(t, truth[0], res.Params[0], 1e-4)
	assert.InDelta(t, truth[1], res.Params[1], 1e-4)
}

// TestFit_BudgetExhaustion caps the solver at one iteration: the fit must
// report Converged=false while still returning usable parameters.
func TestFit_BudgetExhaustion(t *testing.T) {
	truth := []float64{2.5, 1.3}
	xs, ys := sample(expModel, truth, 0, 3, 0.1)
	b := lmfit.Bounds{
		Lower: []float64{0, 0},
		Upper: []float64{10, 10},
		Start: []float64{1, 1},
	}
	opts := lmfit.DefaultOptions()
	opts.MaxIterations = 1

	res, err := lmfit.Fit(expModel, xs, ys, b, lmfit.DefaultOptions())
	require.NoError(t, err)
	full := res

	res, err = lmfit.Fit(expModel, xs, ys, b, opts)
	require.NoError(t, err)

	assert.False(t, res.Converged, "one iteration cannot meet the tolerance")
	assert.Len(t, res.Params, 2, "best-so-far parameters are still returned")
	for j, v := range res.Params {
		assert.GreaterOrEqual(t, v, b.Lower[j], "params stay inside the box")
		assert.LessOrEqual(t, v, b.Upper[j], "params stay inside the box")
	}
	assert.GreaterOrEqual(t, full.RSquared, res.RSquared, "the full fit is at least as good")
}

// TestFit_MaxStepCap verifies the per-step ∞-norm cap: reaching an optimum
// 3 units away with MaxStep 0.5 needs at least six accepted steps.
func TestFit_MaxStepCap(t *testing.T) {
	slope := func(x float64, p []float64) float64 { return p[0] * x }
	xs, ys := sample(slope, []float64{3}, 0, 4, 0.5)
	b := lmfit.Bounds{
		Lower: []float64{0},
		Upper: []float64{10},
		Start: []float64{0},
	}
	opts := lmfit.DefaultOptions()
	opts.MaxStep = 0.5

	res, err := lmfit.Fit(slope, xs, ys, b, opts)
	require.NoError(t, err)

	assert.True(t, res.Converged)
	assert.InDelta(t, 3.0, res.Params[0], 1e-6, "cap slows but does not divert the fit")
	assert.GreaterOrEqual(t, res.Iterations, 6, "3 units of travel at ≤0.5 per step")
}

// TestFit_RSquaredRecomputable recomputes R² independently from the
// returned parameters; it must match the reported value within 1e-6.
func TestFit_RSquaredRecomputable(t *testing.T) {
	truth := []float64{2.5, 1.3}
	xs, ys := sample(expModel, truth, 0, 3, 0.1)
	b := lmfit.Bounds{
		Lower: []float64{0, 0},
		Upper: []float64{10, 10},
		Start: []float64{1, 1},
	}

	res, err := lmfit.Fit(expModel, xs, ys, b, lmfit.DefaultOptions())
	require.NoError(t, err)

	ssr, mean := 0.0, 0.0
	for _, y := range ys {
		mean += y
	}
	mean /= float64(len(ys))
	tss := 0.0
	for i, x := range xs {
		r := expModel(x, res.Params) - ys[i]
		ssr += r * r
		d := ys[i] - mean
		tss += d * d
	}

	assert.InDelta(t, res.SSR, ssr, 1e-9, "reported SSR matches recomputation")
	assert.InDelta(t, res.RSquared, 1-ssr/tss, 1e-6, "reported R² matches recomputation")
}

// TestFit_Deterministic ensures two identical fits return identical results
// field by field — no randomized restarts, no hidden state.
func TestFit_Deterministic(t *testing.T) {
	truth := []float64{2.5, 1.3}
	xs, ys := sample(expModel, truth, 0, 3, 0.1)
	b := lmfit.Bounds{
		Lower: []float64{0, 0},
		Upper: []float64{10, 10},
		Start: []float64{1, 1},
	}

	first, err := lmfit.Fit(expModel, xs, ys, b, lmfit.DefaultOptions())
	require.NoError(t, err)
	second, err := lmfit.Fit(expModel, xs, ys, b, lmfit.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, first, second, "identical inputs must give identical results")
}

// TestFit_ZeroVarianceData documents R² on constant data: TSS is zero, so
// RSquared is NaN rather than a clamped or invented value.
func TestFit_ZeroVarianceData(t *testing.T) {
	constant := func(_ float64, p []float64) float64 { return p[0] }
	xs := []float64{0, 1, 2, 3}
	ys := []float64{5, 5, 5, 5}
	b := lmfit.Bounds{Lower: []float64{0}, Upper: []float64{10}, Start: []float64{1}}

	res, err := lmfit.Fit(constant, xs, ys, b, lmfit.DefaultOptions())
	require.NoError(t, err)

	assert.InDelta(t, 5.0, res.Params[0], 1e-6, "the constant is recovered")
	assert.True(t, math.IsNaN(res.RSquared), "zero-variance data has no defined R²")
}
