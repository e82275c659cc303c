package hsi

import (
	"math"

	"github.com/katalvlaran/hsicurve/lmfit"
)

// Parameter vectors are ordered as ParamNames reports; the solver, the
// estimators and the evaluators all share that order.
var (
	gaussianNames = []string{"a1", "b1", "c1"}
	gammaNames    = []string{"a", "b", "d", "e"}
)

// ParamNames returns the parameter names of a family in fit order:
// Gaussian a1 (amplitude), b1 (center), c1 (width); Gamma-like a (shape),
// b (scale), d (floor), e (shift).
func ParamNames(f Family) []string {
	switch f {
	case Gaussian:
		return append([]string(nil), gaussianNames...)
	case GammaLike:
		return append([]string(nil), gammaNames...)
	default:
		return nil
	}
}

// gaussianModel evaluates y = a1·exp(−((x−b1)/c1)²) + (1−a1).
// At x = b1 the value is exactly 1 for any parameters.
func gaussianModel(x float64, p []float64) float64 {
	z := (x - p[1]) / p[2]

	return p[0]*math.Exp(-z*z) + (1 - p[0])
}

// gammaModel evaluates y = (1−d)·(E/a)^a·((x+e)/b)^a·exp(−(x+e)/b) + d
// with p = (a, b, d, e). E is Euler's number; e is the shift parameter —
// the formula uses both at once by design. The (E/a)^a factor normalizes
// the decay term's peak (at x = a·b − e) to exactly 1.
func gammaModel(x float64, p []float64) float64 {
	a, b, d, e := p[0], p[1], p[2], p[3]
	t := (x + e) / b

	return (1-d)*math.Pow(math.E/a, a)*math.Pow(t, a)*math.Exp(-t) + d
}

// ModelFunc returns the family's model function in lmfit form.
func ModelFunc(f Family) (lmfit.Model, error) {
	switch f {
	case Gaussian:
		return gaussianModel, nil
	case GammaLike:
		return gammaModel, nil
	default:
		return nil, ErrUnknownFamily
	}
}

// MakeEvaluator wraps fitted parameters into a pure closed-form evaluator
// y(x). No symbolic machinery: the closure applies the family's formula
// directly. params must be in fit order (see ParamNames).
func MakeEvaluator(f Family, params []float64) (func(x float64) float64, error) {
	model, err := ModelFunc(f)
	if err != nil {
		return nil, err
	}
	if len(params) != len(ParamNames(f)) {
		return nil, ErrBadParams
	}

	p := append([]float64(nil), params...)

	return func(x float64) float64 { return model(x, p) }, nil
}
