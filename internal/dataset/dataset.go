// Package dataset turns raw query results into classified, ordered point
// collections ready for charting. It owns value coercion, series
// classification, canonical ordering, and calendar-day gap filling.
package dataset

import (
	"sort"
	"time"
)

// Kind tags a series as a time series or a categorical set.
type Kind int

const (
	// Categorical series are ordered ascending lexicographic by label.
	Categorical Kind = iota
	// TimeSeries series are ordered descending by date (most recent first).
	TimeSeries
)

// String returns the kind name for diagnostics.
func (k Kind) String() string {
	if k == TimeSeries {
		return "time_series"
	}
	return "categorical"
}

// Point is one chartable observation: a string label and a finite value.
type Point struct {
	X string
	Y float64
}

// Series is an ordered point collection with its classification.
type Series struct {
	Kind   Kind
	Points []Point
}

// DateLayout is the one calendar-date format the pipeline accepts. The
// classifier, the gap filler and the chart preparer all share it; they must
// never disagree on what counts as a date.
const DateLayout = "2006-01-02"

// IsDate reports whether the label is a calendar date in DateLayout.
// The format-and-compare round trip rejects inputs time.Parse would be
// lenient about.
func IsDate(label string) bool {
	_, ok := ParseDay(label)
	return ok
}

// ParseDay parses a label as a calendar date in DateLayout.
func ParseDay(label string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, label)
	if err != nil || t.Format(DateLayout) != label {
		return time.Time{}, false
	}
	return t, true
}

// Classify determines the series kind from the labels and returns the
// points in the kind's canonical display order. The input is not mutated.
// A set is a time series only when every label parses as a calendar date.
func Classify(points []Point) Series {
	kind := TimeSeries
	for _, p := range points {
		if !IsDate(p.X) {
			kind = Categorical
			break
		}
	}

	sorted := make([]Point, len(points))
	copy(sorted, points)

	switch kind {
	case TimeSeries:
		sort.Slice(sorted, func(i, j int) bool {
			di, _ := ParseDay(sorted[i].X)
			dj, _ := ParseDay(sorted[j].X)
			return dj.Before(di)
		})
	default:
		sort.Slice(sorted, func(i, j int) bool {
			return sorted[i].X < sorted[j].X
		})
	}

	return Series{Kind: kind, Points: sorted}
}

// FillGaps densifies a time series to one point per calendar day across its
// inclusive date range, synthesizing zero-valued points for missing days.
// Categorical and empty series pass through unchanged.
//
// When several points share a day, the last one processed wins. That
// tie-break is inherited behavior, kept deliberately; see the package tests.
//
// The output is ascending chronological. That is a working order for
// downstream computation, not the display order; callers re-sort via
// Classify before rendering.
func FillGaps(s Series) Series {
	if s.Kind != TimeSeries || len(s.Points) == 0 {
		return s
	}

	byDay := make(map[time.Time]float64, len(s.Points))
	var minDay, maxDay time.Time
	first := true
	for _, p := range s.Points {
		day, ok := ParseDay(p.X)
		if !ok {
			continue
		}
		byDay[day] = p.Y
		if first || day.Before(minDay) {
			minDay = day
		}
		if first || day.After(maxDay) {
			maxDay = day
		}
		first = false
	}
	if first {
		return s
	}

	var filled []Point
	for day := minDay; !day.After(maxDay); day = day.AddDate(0, 0, 1) {
		filled = append(filled, Point{X: day.Format(DateLayout), Y: byDay[day]})
	}

	return Series{Kind: TimeSeries, Points: filled}
}
