package dataset

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlchart/internal/diag"
)

// queryRows runs a mock query and hands back its rows for coercion.
func queryRows(t *testing.T, rows *sqlmock.Rows) (*diag.Collector, []Point, error) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT").WillReturnRows(rows)

	sqlRows, err := db.Query("SELECT x, y FROM t")
	require.NoError(t, err)
	defer sqlRows.Close()

	collector := &diag.Collector{}
	points, err := NewCoercer(collector).CoerceRows(sqlRows, "test")
	return collector, points, err
}

func TestCoerceRows_BasicNumericRows(t *testing.T) {
	rows := sqlmock.NewRows([]string{"x", "y"}).
		AddRow("a", 1.5).
		AddRow("b", int64(2))

	collector, points, err := queryRows(t, rows)

	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, Point{X: "a", Y: 1.5}, points[0])
	assert.Equal(t, Point{X: "b", Y: 2}, points[1])
	assert.Empty(t, collector.Events)
}

func TestCoerceRows_CaseInsensitiveColumns(t *testing.T) {
	rows := sqlmock.NewRows([]string{"X", "Y"}).AddRow("a", 1)

	_, points, err := queryRows(t, rows)

	require.NoError(t, err)
	require.Len(t, points, 1)
}

func TestCoerceRows_MissingYColumn(t *testing.T) {
	rows := sqlmock.NewRows([]string{"x", "value"}).AddRow("a", 1)

	collector, points, err := queryRows(t, rows)

	require.ErrorIs(t, err, ErrSchemaMismatch)
	assert.Empty(t, points)
	assert.Equal(t, 1, collector.Count(diag.KindSchemaMismatch))
}

func TestCoerceRows_DateXFormatsToISO(t *testing.T) {
	day := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"x", "y"}).AddRow(day, 10)

	_, points, err := queryRows(t, rows)

	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, "2025-03-14", points[0].X)
}

func TestCoerceRows_NullXBecomesEmptyLabel(t *testing.T) {
	rows := sqlmock.NewRows([]string{"x", "y"}).AddRow(nil, 4)

	_, points, err := queryRows(t, rows)

	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, "", points[0].X)
}

func TestCoerceRows_NullYDropsRow(t *testing.T) {
	rows := sqlmock.NewRows([]string{"x", "y"}).
		AddRow("a", nil).
		AddRow("b", 2)

	collector, points, err := queryRows(t, rows)

	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, "b", points[0].X)
	assert.Equal(t, 1, collector.Count(diag.KindNullNumeric))
}

func TestCoerceRows_DateYDropsRowAsTypeMismatch(t *testing.T) {
	// A date-typed Y strongly suggests the X and Y columns are swapped;
	// the drop must be diagnosable, not silent.
	rows := sqlmock.NewRows([]string{"x", "y"}).
		AddRow(42.0, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	collector, points, err := queryRows(t, rows)

	require.NoError(t, err)
	assert.Empty(t, points)
	assert.Equal(t, 1, collector.Count(diag.KindTypeMismatch))
}

func TestCoerceRows_NonNumericYDropsRow(t *testing.T) {
	rows := sqlmock.NewRows([]string{"x", "y"}).
		AddRow("a", "not a number").
		AddRow("b", "3.25")

	collector, points, err := queryRows(t, rows)

	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, Point{X: "b", Y: 3.25}, points[0])
	assert.Equal(t, 1, collector.Count(diag.KindNonNumeric))
}

func TestCoerceRows_NumericStringBytes(t *testing.T) {
	rows := sqlmock.NewRows([]string{"x", "y"}).
		AddRow([]byte("label"), []byte(" 7 "))

	_, points, err := queryRows(t, rows)

	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, Point{X: "label", Y: 7}, points[0])
}

func TestCoerceRows_NumericXStringifies(t *testing.T) {
	rows := sqlmock.NewRows([]string{"x", "y"}).AddRow(int64(12), 1)

	_, points, err := queryRows(t, rows)

	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, "12", points[0].X)
}
