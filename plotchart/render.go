package plotchart

import (
	"errors"
	"fmt"
	"image/color"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Curve is one predicted-response series to overlay on the observed scatter.
type Curve struct {
	// Name labels the curve in the legend.
	Name string
	// Values holds the predicted response, aligned with the x values of the
	// scatter.
	Values []float64
}

// linePalette cycles through the curve colors.
var linePalette = []color.RGBA{
	{B: 255, A: 255},
	{R: 255, A: 255},
	{G: 160, A: 255},
}

// RenderFit draws the observed (x, y) points as a scatter with the fitted
// line overlaid, and saves the chart to path.
func RenderFit(path, title, xLabel, yLabel string, xs, ys, fitted []float64) error {
	return CompareFits(path, title, xLabel, yLabel, xs, ys, []Curve{{Name: "fitted", Values: fitted}})
}

// CompareFits draws the observed scatter with one line per curve. Each curve
// carries its own model's predictions, so comparing e.g. with-intercept and
// without-intercept fits shows two genuinely distinct lines.
func CompareFits(path, title, xLabel, yLabel string, xs, ys []float64, curves []Curve) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("x has %d values, y has %d", len(xs), len(ys))
	}
	if len(xs) == 0 {
		return errors.New("no data points to plot")
	}
	for _, c := range curves {
		if len(c.Values) != len(xs) {
			return fmt.Errorf("curve %q has %d values, expected %d", c.Name, len(c.Values), len(xs))
		}
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())

	scatter, err := plotter.NewScatter(xyPoints(xs, ys))
	if err != nil {
		return fmt.Errorf("build scatter: %w", err)
	}
	p.Add(scatter)
	p.Legend.Add("observed", scatter)

	for i, c := range curves {
		line, err := plotter.NewLine(sortedXYPoints(xs, c.Values))
		if err != nil {
			return fmt.Errorf("build line %q: %w", c.Name, err)
		}
		line.Color = linePalette[i%len(linePalette)]
		p.Add(line)
		p.Legend.Add(c.Name, line)
	}
	p.Legend.Top = true
	p.Legend.Left = true

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("save chart: %w", err)
	}

	return nil
}

// xyPoints pairs x and y slices into plotter points.
func xyPoints(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}

	return pts
}

// sortedXYPoints pairs x and y and sorts by x so the line draws left to
// right regardless of row order.
func sortedXYPoints(xs, ys []float64) plotter.XYs {
	pts := xyPoints(xs, ys)
	sort.Slice(pts, func(i, j int) bool { return pts[i].X < pts[j].X })

	return pts
}
