// Package report renders fitted suitability runs as text summaries and
// PNG figures.
package report

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/hsicurve/hsi"
)

const plotSamples = 400

// WriteSummary prints one run's fitted parameters, goodness of fit and
// convergence flag in fit order.
func WriteSummary(w io.Writer, cfg hsi.RunConfig, res hsi.Result) error {
	if _, err := fmt.Fprintf(w, "%s %s (%s)\n", cfg.Stage, cfg.Variable, res.Model.Family); err != nil {
		return err
	}
	for _, name := range hsi.ParamNames(res.Model.Family) {
		if _, err := fmt.Fprintf(w, "  %-2s = %.6g\n", name, res.Model.Params[name]); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "  R² = %.6f  converged=%v\n", res.Model.RSquared, res.Model.Converged)

	return err
}

// SavePlot writes a PNG with the empirical curve as points and the fitted
// model as a dense line over the same x range.
func SavePlot(path string, cfg hsi.RunConfig, res hsi.Result) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s %s — %s fit", cfg.Stage, cfg.Variable, res.Model.Family)
	p.X.Label.Text = cfg.Variable.String()
	p.Y.Label.Text = "HSI"

	empirical := make(plotter.XYs, len(res.Curve.Grid))
	for i, x := range res.Curve.Grid {
		empirical[i].X = x
		empirical[i].Y = res.Curve.Normalized[i]
	}
	scatter, err := plotter.NewScatter(empirical)
	if err != nil {
		return fmt.Errorf("report: scatter: %w", err)
	}

	upper := res.Curve.Grid[len(res.Curve.Grid)-1]
	fitted := make(plotter.XYs, plotSamples+1)
	for i := 0; i <= plotSamples; i++ {
		x := upper * float64(i) / plotSamples
		fitted[i].X = x
		fitted[i].Y = res.Model.Evaluate(x)
	}
	line, err := plotter.NewLine(fitted)
	if err != nil {
		return fmt.Errorf("report: line: %w", err)
	}

	p.Add(scatter, line)
	p.Legend.Add("empirical", scatter)
	p.Legend.Add("fitted", line)
	p.Legend.Top = true

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("report: save: %w", err)
	}

	return nil
}
