package suitability

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Aggregate — empirical suitability-curve construction
//
// Description:
//
//	Aggregate overlays every preference row of table on a regular grid of
//	the physical variable and sums per-row contributions at each grid
//	point, then normalizes the summed curve by its maximum.
//
// Algorithm Outline:
//  1. upper = max over rows of (AcceptableMax, OptimalMax); grid spans
//     [0, upper] inclusive at Options.GridStep.
//  2. For each grid point x and each row:
//     – x inside the row's optimal interval   → add WeightOpt
//     – else x inside the acceptable interval → add Weight
//     – else                                  → add 0
//     Optimal membership wins even when the row's acceptable bounds do not
//     contain x; references are additive, never averaged.
//  3. Normalized[i] = Raw[i] / max(Raw). ErrNoSupport if max(Raw) == 0.
//
// Complexity:
//
//	Time   = O(|grid| · |rows|)
//	Memory = O(|grid|)
//
// Deterministic and side-effect free: identical inputs always produce an
// identical EmpiricalCurve.
func Aggregate(table RangeTable, opts Options) (EmpiricalCurve, error) {
	if len(table) == 0 {
		return EmpiricalCurve{}, ErrEmptyTable
	}
	if err := opts.validate(); err != nil {
		return EmpiricalCurve{}, err
	}

	grid := buildGrid(upperBound(table), opts.GridStep)

	raw := make([]float64, len(grid))
	for i, x := range grid {
		var score float64
		for _, row := range table {
			switch {
			case x >= row.OptimalMin && x <= row.OptimalMax:
				score += opts.WeightOpt
			case x >= row.AcceptableMin && x <= row.AcceptableMax:
				score += opts.Weight
			}
		}
		raw[i] = score
	}

	peak := floats.Max(raw)
	if peak == 0 {
		return EmpiricalCurve{}, ErrNoSupport
	}

	normalized := make([]float64, len(raw))
	for i, v := range raw {
		normalized[i] = v / peak
	}

	return EmpiricalCurve{Grid: grid, Raw: raw, Normalized: normalized}, nil
}

// upperBound returns the largest acceptable/optimal maximum across rows,
// floored at zero so the grid always contains the origin.
func upperBound(table RangeTable) float64 {
	upper := 0.0
	for _, row := range table {
		upper = math.Max(upper, math.Max(row.AcceptableMax, row.OptimalMax))
	}

	return upper
}

// buildGrid samples [0, upper] inclusive at the given step. Points are
// computed as i·step (not by accumulation) so spacing stays exactly
// uniform; the last point never exceeds upper beyond rounding noise.
func buildGrid(upper, step float64) []float64 {
	n := int(math.Floor(upper/step + 0.5))
	if float64(n)*step > upper+step*1e-9 {
		n--
	}
	if n < 0 {
		n = 0
	}
	grid := make([]float64, n+1)
	for i := range grid {
		grid[i] = float64(i) * step
	}

	return grid
}
