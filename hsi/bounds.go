package hsi

import (
	"math"

	"github.com/katalvlaran/hsicurve/lmfit"
	"github.com/katalvlaran/hsicurve/suitability"
)

// Threshold constants of the bound heuristics. They bracket parameters
// from the empirical curve's shape and are part of the method, not tuning
// knobs.
const (
	gaussianLowCut  = 0.2  // scores below this bracket the amplitude a1
	gaussianPeakCut = 0.95 // scores above this bracket the center b1
	gammaRestrict   = 0.4  // Gamma fits use only points scoring at least this
	gammaShiftMax   = 50.0 // upper bound of the shift parameter e
)

// EstimateGaussianBounds — depth-family bound heuristic
//
// Description:
//
//	Derives the Gaussian fit box and start point from the empirical curve:
//	  a1 — bracketed by the first and last normalized *score values* below
//	       0.2 (magnitudes, not positions; the spread of the low tail says
//	       how far the baseline 1−a1 sits above zero). The lower bound and
//	       the start are the midpoint of that bracket, the upper bound 1.
//	  b1 — bracketed by the first and last grid positions whose score
//	       exceeds 0.95 (the plateau of the peak). Start 1.
//	  c1 — unconstrained (±Inf). Start 1.
//
// Errors:
//   - ErrNoLowScores  — no score below 0.2: the curve has no low tail.
//   - ErrNoPeakScores — no score above 0.95: the curve has no clear peak.
//
// Either failure means the curve's shape does not match the Gaussian
// family and the run must be abandoned.
func EstimateGaussianBounds(curve suitability.EmpiricalCurve) (lmfit.Bounds, error) {
	var low []float64
	for _, s := range curve.Normalized {
		if s < gaussianLowCut {
			low = append(low, s)
		}
	}
	if len(low) == 0 {
		return lmfit.Bounds{}, ErrNoLowScores
	}

	var peakX []float64
	for i, s := range curve.Normalized {
		if s > gaussianPeakCut {
			peakX = append(peakX, curve.Grid[i])
		}
	}
	if len(peakX) == 0 {
		return lmfit.Bounds{}, ErrNoPeakScores
	}

	aMid := (low[0] + low[len(low)-1]) / 2
	inf := math.Inf(1)

	return lmfit.Bounds{
		Lower: []float64{aMid, peakX[0], -inf},
		Upper: []float64{1, peakX[len(peakX)-1], inf},
		Start: []float64{aMid, 1, 1},
	}, nil
}

// EstimateGammaBounds — velocity-family bound heuristic
//
// Description:
//
//	Restricts the curve to points with normalized score ≥ 0.4 (grid and
//	scores filtered together, pairing preserved) and returns both the fit
//	box and the restricted data: the Gamma-like model is fitted to the
//	restricted points only, not the full curve.
//
//	Box: a ∈ [1, ∞), b ∈ [0, ∞), d ∈ [0, floorMax], e ∈ [0, 50].
//	Start: a=1, b=1, d=0.1, e=10. floorMax carries the per-life-stage
//	tuning of the floor (0.2 vs 0.1 across the canonical runs).
//
// Errors:
//   - ErrBadFloor        — floorMax ≤ 0.
//   - ErrUnderdetermined — fewer than 4 restricted points: the fit would
//     be under-determined.
func EstimateGammaBounds(curve suitability.EmpiricalCurve, floorMax float64) (lmfit.Bounds, []float64, []float64, error) {
	if floorMax <= 0 {
		return lmfit.Bounds{}, nil, nil, ErrBadFloor
	}

	var xs, ys []float64
	for i, s := range curve.Normalized {
		if s >= gammaRestrict {
			xs = append(xs, curve.Grid[i])
			ys = append(ys, s)
		}
	}
	if len(xs) < len(gammaNames) {
		return lmfit.Bounds{}, nil, nil, ErrUnderdetermined
	}

	inf := math.Inf(1)
	bounds := lmfit.Bounds{
		Lower: []float64{1, 0, 0, 0},
		Upper: []float64{inf, inf, floorMax, gammaShiftMax},
		Start: []float64{1, 1, 0.1, 10},
	}

	return bounds, xs, ys, nil
}
