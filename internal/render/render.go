// Package render rasterizes prepared chart data to PNG images.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"sort"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/leapstack-labs/sqlchart/internal/chartdata"
	"github.com/leapstack-labs/sqlchart/internal/trend"
)

// Logical chart dimensions; the output image is deviceScale times larger.
const (
	chartWidth  = 1200
	chartHeight = 800
	deviceScale = 2
)

// maxTicks caps labeled axis ticks so dense series stay legible.
const maxTicks = 12

// ErrNoData is returned when there is nothing to plot.
var ErrNoData = errors.New("no points to plot")

// Renderer draws one chart per call. It is stateless and safe to reuse.
type Renderer struct{}

// New creates a renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render draws the series, and the trend line when present, returning PNG
// bytes. Rendering failures are per-chart: the caller substitutes a textual
// summary and continues.
func (r *Renderer) Render(title string, data chartdata.PlotData, line *trend.Line) ([]byte, error) {
	if len(data.X) == 0 {
		return nil, ErrNoData
	}

	series := []chart.Series{
		chart.ContinuousSeries{
			Name:    title,
			XValues: data.X,
			YValues: data.Y,
			Style: chart.Style{
				StrokeColor: chart.ColorBlue,
				StrokeWidth: 2,
				DotColor:    chart.ColorBlue,
				DotWidth:    3,
			},
		},
	}

	if line != nil {
		xs, ys := line.Endpoints()
		series = append(series, chart.ContinuousSeries{
			Name:    "Trend",
			XValues: xs[:],
			YValues: ys[:],
			Style: chart.Style{
				StrokeColor:     chart.ColorRed,
				StrokeWidth:     1.5,
				StrokeDashArray: []float64{5, 5},
			},
		})
	}

	graph := chart.Chart{
		Title:  title,
		Width:  chartWidth * deviceScale,
		Height: chartHeight * deviceScale,
		DPI:    chart.DefaultDPI * deviceScale,
		XAxis: chart.XAxis{
			Ticks: buildTicks(data),
		},
		Series: series,
	}
	padDegenerateRanges(&graph, data)

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart rasterization failed: %w", err)
	}
	return buf.Bytes(), nil
}

// buildTicks labels the X axis with the series' display labels, thinned to
// at most maxTicks. The last point is always labeled.
func buildTicks(data chartdata.PlotData) []chart.Tick {
	n := len(data.X)
	step := 1
	if n > maxTicks {
		step = (n + maxTicks - 1) / maxTicks
	}

	var ticks []chart.Tick
	for i := 0; i < n; i += step {
		ticks = append(ticks, chart.Tick{Value: data.X[i], Label: data.Labels[i]})
	}
	if last := n - 1; last%step != 0 {
		ticks = append(ticks, chart.Tick{Value: data.X[last], Label: data.Labels[last]})
	}
	// Display order may be descending; the axis wants ascending values.
	sort.Slice(ticks, func(i, j int) bool { return ticks[i].Value < ticks[j].Value })
	return ticks
}

// padDegenerateRanges widens zero-width axis ranges (single point, constant
// values) so go-chart can still lay the plot out.
func padDegenerateRanges(graph *chart.Chart, data chartdata.PlotData) {
	xMin, xMax := minMax(data.X)
	if xMin == xMax {
		graph.XAxis.Range = &chart.ContinuousRange{Min: xMin - 1, Max: xMax + 1}
	}
	yMin, yMax := minMax(data.Y)
	if yMin == yMax {
		graph.YAxis.Range = &chart.ContinuousRange{Min: yMin - 1, Max: yMax + 1}
	}
}

func minMax(vs []float64) (min, max float64) {
	min, max = vs[0], vs[0]
	for _, v := range vs[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
