// Package suitability aggregates per-reference species-preference ranges
// into a single empirical habitat-suitability curve.
//
// 🚀 What is range aggregation?
//
//	Field studies report, per literature reference, an acceptable interval
//	and an optimal interval of a physical variable (depth, velocity, …).
//	Aggregation overlays all references on a regular grid of the variable
//	and scores every grid point:
//	  • a point inside a reference's optimal range earns that reference's
//	    full weight (WeightOpt),
//	  • a point inside the acceptable range only earns the partial weight
//	    (Weight),
//	  • a point outside both earns nothing.
//	Contributions are additive across references — expert elicitation is
//	summed, not averaged — and the resulting raw curve is normalized so its
//	maximum is exactly 1.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/hsicurve/suitability"
//
//	table := suitability.RangeTable{
//	  {Reference: "Smith 1998", AcceptableMin: 0, AcceptableMax: 10,
//	   OptimalMin: 3, OptimalMax: 7},
//	}
//	curve, err := suitability.Aggregate(table, suitability.DefaultOptions())
//
// Complexity:
//
//   - Time:   O(|grid| · |rows|)
//   - Memory: O(|grid|)
//
// Errors:
//   - ErrEmptyTable — the range table has no rows.
//   - ErrNoSupport  — no grid point satisfied any row; the raw maximum is
//     zero and the curve cannot be normalized.
//   - ErrBadWeight / ErrBadStep — invalid Options.
package suitability
