// Package render binds ranked category counts and raw numeric values to
// concrete PNG figures. Bar and histogram rendering use gonum/plot; pie
// rendering uses go-chart, since gonum/plot has no pie plotter.
package render

import (
	"bytes"
	"fmt"

	chartlib "github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"datalens/domain/chart"
	"datalens/internal/stats"
)

const (
	chartWidth  = 8 * vg.Inch
	chartHeight = 5 * vg.Inch
	pieSize     = 600
)

// Bar renders a horizontal bar chart of ranked categories: bar length is the
// count, bar label the category value. Categories are drawn top-down in rank
// order.
func Bar(title, countLabel, valueLabel string, cats []chart.CategoryCount) ([]byte, error) {
	if len(cats) == 0 {
		return nil, fmt.Errorf("no categories to plot")
	}

	// NominalY labels bottom-up, so reverse to put the top-ranked value on top.
	values := make(plotter.Values, len(cats))
	labels := make([]string, len(cats))
	for i, c := range cats {
		j := len(cats) - 1 - i
		values[j] = float64(c.Count)
		labels[j] = c.Value
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = countLabel
	p.Y.Label.Text = valueLabel

	bars, err := plotter.NewBarChart(values, vg.Points(18))
	if err != nil {
		return nil, fmt.Errorf("failed to build bar chart: %w", err)
	}
	bars.Horizontal = true
	bars.Color = plotutil.Color(0)
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalY(labels...)

	return encodePNG(p)
}

// Histogram renders a unit-area histogram of values with an overlaid
// Gaussian-KDE density curve estimated from the same values.
func Histogram(title, valueLabel, freqLabel string, values []float64, bins int) ([]byte, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("no values to plot")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = valueLabel
	p.Y.Label.Text = freqLabel

	hist, err := plotter.NewHist(plotter.Values(values), bins)
	if err != nil {
		return nil, fmt.Errorf("failed to build histogram: %w", err)
	}
	// Normalize to unit area so the density curve shares the y scale.
	hist.Normalize(1)
	hist.FillColor = plotutil.Color(0)
	p.Add(hist)

	if pts := stats.GaussianKDE(values, 200); len(pts) > 0 {
		xys := make(plotter.XYs, len(pts))
		for i, pt := range pts {
			xys[i].X = pt.X
			xys[i].Y = pt.Y
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("failed to build density curve: %w", err)
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = plotutil.Color(1)
		p.Add(line)
	}

	return encodePNG(p)
}

// Pie renders ranked categories as pie slices sized by count. Each slice is
// labeled with its value and its percentage of the plotted subset's total;
// values outside the ranking are omitted, not folded into an "other" slice.
func Pie(title string, cats []chart.CategoryCount) ([]byte, error) {
	if len(cats) == 0 {
		return nil, fmt.Errorf("no categories to plot")
	}

	total := 0
	for _, c := range cats {
		total += c.Count
	}
	if total == 0 {
		return nil, fmt.Errorf("no observations to plot")
	}

	slices := make([]chartlib.Value, len(cats))
	for i, c := range cats {
		pct := 100 * float64(c.Count) / float64(total)
		slices[i] = chartlib.Value{
			Value: float64(c.Count),
			Label: fmt.Sprintf("%s (%.1f%%)", c.Value, pct),
		}
	}

	pie := chartlib.PieChart{
		Title:  title,
		Width:  pieSize,
		Height: pieSize,
		Values: slices,
	}

	var buf bytes.Buffer
	if err := pie.Render(chartlib.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render pie chart: %w", err)
	}
	return buf.Bytes(), nil
}

func encodePNG(p *plot.Plot) ([]byte, error) {
	wt, err := p.WriterTo(chartWidth, chartHeight, "png")
	if err != nil {
		return nil, fmt.Errorf("failed to encode chart: %w", err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode chart: %w", err)
	}
	return buf.Bytes(), nil
}
