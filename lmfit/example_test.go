package lmfit_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hsicurve/lmfit"
)

// ExampleFit demonstrates recovering an exponential decay y = a·exp(−b·x)
// under box constraints.
//
// Scenario:
//
//	Noise-free data from a=2.5, b=1.3 on x ∈ [0,3]; the solver starts at
//	(1,1) inside the box [0,10]².
func ExampleFit() {
	model := func(x float64, p []float64) float64 {
		return p[0] * math.Exp(-p[1]*x)
	}

	var xs, ys []float64
	for x := 0.0; x <= 3.0+1e-9; x += 0.1 {
		xs = append(xs, x)
		ys = append(ys, model(x, []float64{2.5, 1.3}))
	}

	b := lmfit.Bounds{
		Lower: []float64{0, 0},
		Upper: []float64{10, 10},
		Start: []float64{1, 1},
	}

	res, err := lmfit.Fit(model, xs, ys, b, lmfit.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("a=%.2f b=%.2f converged=%v\n", res.Params[0], res.Params[1], res.Converged)
	// Output:
	// a=2.50 b=1.30 converged=true
}
