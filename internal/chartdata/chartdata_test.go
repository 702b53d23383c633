package chartdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlchart/internal/dataset"
)

func TestPrepare_TimeSeriesUsesElapsedDays(t *testing.T) {
	// Display order is descending; the ordinal is measured from the
	// earliest date so temporal gaps keep their true width.
	s := dataset.Classify([]dataset.Point{
		{X: "2025-01-01", Y: 5},
		{X: "2025-01-04", Y: 9},
	})
	require.Equal(t, dataset.TimeSeries, s.Kind)

	data := Prepare(s)

	require.Len(t, data.X, 2)
	assert.Equal(t, []float64{3, 0}, data.X)
	assert.Equal(t, []float64{9, 5}, data.Y)
	assert.Equal(t, []string{"2025-01-04", "2025-01-01"}, data.Labels)
}

func TestPrepare_CategoricalUsesDisplayIndex(t *testing.T) {
	s := dataset.Classify([]dataset.Point{
		{X: "b", Y: 2},
		{X: "a", Y: 1},
		{X: "c", Y: 3},
	})
	require.Equal(t, dataset.Categorical, s.Kind)

	data := Prepare(s)

	assert.Equal(t, []float64{0, 1, 2}, data.X)
	assert.Equal(t, []float64{1, 2, 3}, data.Y)
	assert.Equal(t, []string{"a", "b", "c"}, data.Labels)
}

func TestPrepare_CategoricalLabelsTruncated(t *testing.T) {
	s := dataset.Series{Kind: dataset.Categorical, Points: []dataset.Point{
		{X: "a very long category name", Y: 1},
		{X: "short", Y: 2},
	}}

	data := Prepare(s)

	assert.Equal(t, "a very lon", data.Labels[0])
	assert.Equal(t, "short", data.Labels[1])
}

func TestPrepare_TimeSeriesLabelsNotTruncated(t *testing.T) {
	s := dataset.Series{Kind: dataset.TimeSeries, Points: []dataset.Point{
		{X: "2025-01-01", Y: 1},
	}}

	data := Prepare(s)

	assert.Equal(t, "2025-01-01", data.Labels[0])
}

func TestPrepare_EmptyInput(t *testing.T) {
	data := Prepare(dataset.Series{Kind: dataset.TimeSeries})

	assert.Empty(t, data.X)
	assert.Empty(t, data.Y)
	assert.Empty(t, data.Labels)
}
