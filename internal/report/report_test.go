package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlchart/internal/dataset"
)

func TestFallbackListing_Empty(t *testing.T) {
	assert.Equal(t, "(no data points)", FallbackListing(nil))
}

func TestFallbackListing_ShowsPairs(t *testing.T) {
	out := FallbackListing([]dataset.Point{
		{X: "a", Y: 1.5},
		{X: "b", Y: 2},
	})

	assert.Contains(t, out, "a")
	assert.Contains(t, out, "1.5")
	assert.Contains(t, out, "b")
	assert.NotContains(t, out, "more")
}

func TestFallbackListing_OverflowCount(t *testing.T) {
	var points []dataset.Point
	for i := 0; i < 14; i++ {
		points = append(points, dataset.Point{X: strings.Repeat("x", i+1), Y: float64(i)})
	}

	out := FallbackListing(points)

	assert.Contains(t, out, "... and 4 more")
	// Only the first ten labels appear.
	assert.NotContains(t, out, strings.Repeat("x", 11))
}

func TestWrite_ProducesPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")

	err := Write(path, []Entry{
		{Title: "Fallback page", Points: []dataset.Point{{X: "a", Y: 1}}},
		{Title: "Empty page"},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}
