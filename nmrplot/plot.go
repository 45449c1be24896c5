/*
 * plot.go, part of gonmr.
 * Diagnostic plots for shielding calculations.
 *
 */

//Package nmrplot renders quick diagnostic plots for shielding
//calculations: the residual history of the coupled-perturbed iteration and
//a per-nucleus comparison of isotropic shieldings.
package nmrplot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//Convergence plots the per-cycle residuals of a coupled-perturbed solve
//and saves the figure under plotname (the extension selects the format).
func Convergence(residuals []float64, title, plotname string) error {
	if residuals == nil {
		return fmt.Errorf("goNMR/nmrplot.Convergence: nil data given")
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "cycle"
	p.Y.Label.Text = "residual"
	p.Add(plotter.NewGrid())
	pts := make(plotter.XYs, len(residuals))
	for i, r := range residuals {
		pts[i].X = float64(i + 1)
		pts[i].Y = r
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)
	return p.Save(10*vg.Centimeter, 10*vg.Centimeter, plotname)
}

//Isotropic draws a bar chart of isotropic shieldings, one bar per nucleus.
//labels, when not nil, must have one entry per value.
func Isotropic(iso []float64, labels []string, title, plotname string) error {
	if iso == nil {
		return fmt.Errorf("goNMR/nmrplot.Isotropic: nil data given")
	}
	if labels != nil && len(labels) != len(iso) {
		return fmt.Errorf("goNMR/nmrplot.Isotropic: %d labels for %d values", len(labels), len(iso))
	}
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "isotropic shielding / ppm"
	bars, err := plotter.NewBarChart(plotter.Values(iso), vg.Points(20))
	if err != nil {
		return err
	}
	p.Add(bars)
	if labels == nil {
		labels = make([]string, len(iso))
		for i := range labels {
			labels[i] = fmt.Sprintf("%d", i)
		}
	}
	p.NominalX(labels...)
	return p.Save(10*vg.Centimeter, 10*vg.Centimeter, plotname)
}
