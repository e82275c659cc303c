package hsi

import (
	"errors"

	"github.com/katalvlaran/hsicurve/lmfit"
	"github.com/katalvlaran/hsicurve/suitability"
)

// Sentinel errors returned by bound estimation and the pipeline.
var (
	// ErrNoLowScores indicates no normalized score fell below 0.2, so the
	// Gaussian a1 bracket cannot be derived.
	ErrNoLowScores = errors.New("hsi: no normalized score below 0.2")

	// ErrNoPeakScores indicates no normalized score exceeded 0.95, so the
	// Gaussian b1 bracket cannot be derived.
	ErrNoPeakScores = errors.New("hsi: no normalized score above 0.95")

	// ErrUnderdetermined indicates the ≥0.4 restriction left fewer points
	// than the Gamma-like family has parameters.
	ErrUnderdetermined = errors.New("hsi: fewer restricted points than model parameters")

	// ErrBadFloor indicates a non-positive floor upper bound for the
	// Gamma-like family.
	ErrBadFloor = errors.New("hsi: floor upper bound must be positive")

	// ErrUnknownFamily indicates a Family value outside the enum.
	ErrUnknownFamily = errors.New("hsi: unknown model family")

	// ErrBadParams indicates a parameter vector whose length does not match
	// the family.
	ErrBadParams = errors.New("hsi: parameter count does not match model family")
)

// Family selects the parametric model fitted to an empirical curve.
type Family int

const (
	// Gaussian is the depth-family bell curve with a baseline:
	// y = a1·exp(−((x−b1)/c1)²) + (1−a1).
	Gaussian Family = iota

	// GammaLike is the velocity-family shifted decay with a floor:
	// y = (1−d)·(E/a)^a·((x+e)/b)^a·exp(−(x+e)/b) + d.
	GammaLike
)

// String implements fmt.Stringer.
func (f Family) String() string {
	switch f {
	case Gaussian:
		return "gaussian"
	case GammaLike:
		return "gamma-like"
	default:
		return "unknown"
	}
}

// Stage is the life stage a preference table describes.
type Stage int

const (
	StageAdult Stage = iota
	StageJuvenile
)

// String implements fmt.Stringer.
func (s Stage) String() string {
	if s == StageJuvenile {
		return "juvenile"
	}

	return "adult"
}

// Variable is the physical variable a preference table describes.
type Variable int

const (
	VarDepth Variable = iota
	VarVelocity
)

// String implements fmt.Stringer.
func (v Variable) String() string {
	if v == VarVelocity {
		return "velocity"
	}

	return "depth"
}

// RunConfig is the complete per-run configuration of one pipeline
// execution. DefaultRunConfigs returns the four canonical runs; any field
// may be adjusted before calling Run.
type RunConfig struct {
	Stage    Stage
	Variable Variable
	Family   Family

	// Aggregation constants (suitability.Options equivalents).
	Weight    float64
	WeightOpt float64
	GridStep  float64

	// FloorMax is the upper bound of the Gamma-like floor parameter d.
	// Ignored by the Gaussian family.
	FloorMax float64

	// Solver is the bounded least-squares configuration for this run.
	Solver lmfit.Options
}

// FittedModel is the terminal artifact of a run: the fitted parameters by
// name, the goodness of fit, the convergence flag and a callable evaluator
// closing over the parameters. It has no shared mutable state; the caller
// owns it outright.
type FittedModel struct {
	Family    Family
	Params    map[string]float64
	RSquared  float64
	Converged bool
	Evaluate  func(x float64) float64
}

// Result pairs a run's empirical curve with its fitted model, ready for
// plotting or reporting.
type Result struct {
	Curve suitability.EmpiricalCurve
	Model FittedModel
}
