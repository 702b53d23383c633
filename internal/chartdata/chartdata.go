// Package chartdata maps classified, sorted point series into the numeric
// coordinates and tick labels the chart renderer consumes.
package chartdata

import (
	"time"

	"github.com/leapstack-labs/sqlchart/internal/dataset"
)

// categoricalLabelMax caps categorical tick labels for axis legibility.
const categoricalLabelMax = 10

// PlotData is a plot-ready view of one series: parallel numeric X/Y arrays
// plus the display label for each point, in display order.
type PlotData struct {
	Kind   dataset.Kind
	X      []float64
	Y      []float64
	Labels []string
}

// Prepare maps a series to plot coordinates.
//
// Time series X is the number of days elapsed since the earliest date in
// the series, so gaps between observations keep their true width on the
// axis. Categorical X is the zero-based display index, which preserves
// order only. Empty input yields empty arrays.
func Prepare(s dataset.Series) PlotData {
	data := PlotData{
		Kind:   s.Kind,
		X:      make([]float64, 0, len(s.Points)),
		Y:      make([]float64, 0, len(s.Points)),
		Labels: make([]string, 0, len(s.Points)),
	}
	if len(s.Points) == 0 {
		return data
	}

	if s.Kind == dataset.TimeSeries {
		origin, ok := earliestDay(s.Points)
		if !ok {
			return data
		}
		for _, p := range s.Points {
			day, ok := dataset.ParseDay(p.X)
			if !ok {
				continue
			}
			data.X = append(data.X, day.Sub(origin).Hours()/24)
			data.Y = append(data.Y, p.Y)
			data.Labels = append(data.Labels, p.X)
		}
		return data
	}

	for i, p := range s.Points {
		data.X = append(data.X, float64(i))
		data.Y = append(data.Y, p.Y)
		data.Labels = append(data.Labels, truncateLabel(p.X))
	}
	return data
}

func earliestDay(points []dataset.Point) (min time.Time, ok bool) {
	first := true
	for _, p := range points {
		day, parsed := dataset.ParseDay(p.X)
		if !parsed {
			continue
		}
		if first || day.Before(min) {
			min = day
		}
		first = false
	}
	return min, !first
}

func truncateLabel(label string) string {
	runes := []rune(label)
	if len(runes) <= categoricalLabelMax {
		return label
	}
	return string(runes[:categoricalLabelMax])
}
