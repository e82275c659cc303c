// Package suitability defines the preference-range data model and
// aggregation options.
package suitability

import "errors"

// Sentinel errors returned by Aggregate.
var (
	// ErrEmptyTable indicates the range table has no rows.
	ErrEmptyTable = errors.New("suitability: range table is empty")

	// ErrNoSupport indicates no grid point satisfied any preference row,
	// so the raw maximum is zero and normalization is impossible.
	ErrNoSupport = errors.New("suitability: no grid point supported by any preference row")

	// ErrBadWeight indicates a negative Weight or WeightOpt.
	ErrBadWeight = errors.New("suitability: weights must be non-negative")

	// ErrBadStep indicates GridStep was zero or negative.
	ErrBadStep = errors.New("suitability: grid step must be positive")
)

// PreferenceRow is one literature reference's judgment for a single
// physical variable: the interval the species tolerates (acceptable) and
// the interval it prefers (optimal). The optimal interval is expected, but
// not required, to lie inside the acceptable one; membership in the optimal
// interval always earns full weight regardless.
//
// Rows are read-only inputs; duplicates are valid and additive.
type PreferenceRow struct {
	Reference     string  // opaque identifier of the source, used only for reporting
	AcceptableMin float64 // lower bound of the acceptable interval
	AcceptableMax float64 // upper bound of the acceptable interval
	OptimalMin    float64 // lower bound of the optimal interval
	OptimalMax    float64 // upper bound of the optimal interval
}

// RangeTable is the ordered set of preference rows for one
// (life stage, variable) pair.
type RangeTable []PreferenceRow

// EmpiricalCurve is the aggregation result: a regular grid of the variable
// with the raw (summed) and normalized suitability score at every point.
// Invariants: Grid is strictly increasing with uniform spacing;
// max(Normalized) == 1 exactly; all three slices have equal length.
// The curve is immutable once computed.
type EmpiricalCurve struct {
	Grid       []float64 // variable values, 0 .. max bound, uniform step
	Raw        []float64 // summed weights per grid point, componentwise ≥ 0
	Normalized []float64 // Raw / max(Raw), in [0, 1]
}

// Options configures aggregation.
//
// Weight    – contribution of a row whose acceptable range (only) covers a
//
//	grid point. Must be ≥ 0. Default 0.5.
//
// WeightOpt – contribution of a row whose optimal range covers a grid
//
//	point, whether or not the acceptable range does. Must be ≥ 0.
//	Default 1.0.
//
// GridStep  – spacing of the sampling grid. Must be > 0. Default 0.1.
type Options struct {
	Weight    float64
	WeightOpt float64
	GridStep  float64
}

// Option represents a functional option for configuring aggregation.
type Option func(*Options)

// WithWeight sets the acceptable-only contribution per row.
func WithWeight(w float64) Option {
	return func(o *Options) { o.Weight = w }
}

// WithWeightOpt sets the optimal-range contribution per row.
func WithWeightOpt(w float64) Option {
	return func(o *Options) { o.WeightOpt = w }
}

// WithGridStep sets the sampling-grid spacing.
func WithGridStep(step float64) Option {
	return func(o *Options) { o.GridStep = step }
}

// DefaultOptions returns the canonical aggregation configuration:
// Weight 0.5, WeightOpt 1.0, GridStep 0.1.
func DefaultOptions(opts ...Option) Options {
	o := Options{Weight: 0.5, WeightOpt: 1.0, GridStep: 0.1}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// validate reports the first configuration error, or nil.
func (o Options) validate() error {
	if o.Weight < 0 || o.WeightOpt < 0 {
		return ErrBadWeight
	}
	if o.GridStep <= 0 {
		return ErrBadStep
	}

	return nil
}
