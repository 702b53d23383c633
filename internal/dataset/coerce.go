package dataset

import (
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/leapstack-labs/sqlchart/internal/diag"
)

// ErrSchemaMismatch reports a result set that lacks an X or Y column.
// The caller drops the whole query's dataset and continues the run.
var ErrSchemaMismatch = errors.New("result set has no X/Y columns")

// Coercer converts raw result rows into points. Row-level problems drop the
// row with a diagnostic and never abort the batch.
type Coercer struct {
	sink diag.Sink
}

// NewCoercer creates a coercer reporting to the given sink.
func NewCoercer(sink diag.Sink) *Coercer {
	if sink == nil {
		sink = diag.Discard{}
	}
	return &Coercer{sink: sink}
}

// CoerceRows drains a result set into points. Column names "X" and "Y" are
// matched case-insensitively; if either is absent the whole dataset is
// dropped with ErrSchemaMismatch. Any error from the cursor itself is
// returned as-is for the caller to treat as a connection fault.
func (c *Coercer) CoerceRows(rows *sql.Rows, title string) ([]Point, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read result columns: %w", err)
	}

	xIdx, yIdx := -1, -1
	for i, col := range cols {
		switch {
		case strings.EqualFold(col, "x") && xIdx < 0:
			xIdx = i
		case strings.EqualFold(col, "y") && yIdx < 0:
			yIdx = i
		}
	}
	if xIdx < 0 || yIdx < 0 {
		diag.Emitf(c.sink, diag.SeverityWarn, diag.KindSchemaMismatch,
			"query result lacks X or Y column, dataset dropped",
			"title", title, "columns", strings.Join(cols, ","))
		return nil, ErrSchemaMismatch
	}

	var points []Point
	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			diag.Emitf(c.sink, diag.SeverityWarn, diag.KindCoercionFault,
				"row scan failed, row dropped",
				"title", title, "error", err.Error())
			continue
		}

		p, ok := c.coercePoint(values[xIdx], values[yIdx], title)
		if ok {
			points = append(points, p)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("result cursor failed: %w", err)
	}

	return points, nil
}

// coercePoint builds a point from one row's raw X and Y values, emitting a
// diagnostic and dropping the row when Y cannot become a finite number.
func (c *Coercer) coercePoint(xv, yv any, title string) (Point, bool) {
	x := coerceLabel(xv)

	if yv == nil {
		diag.Emitf(c.sink, diag.SeverityWarn, diag.KindNullNumeric,
			"NULL Y value, row dropped", "title", title, "x", x)
		return Point{}, false
	}
	if _, isTime := yv.(time.Time); isTime {
		diag.Emitf(c.sink, diag.SeverityWarn, diag.KindTypeMismatch,
			"date-typed Y value, row dropped (are the X and Y columns swapped?)",
			"title", title, "x", x)
		return Point{}, false
	}

	y, err := toFloat(yv)
	switch {
	case errors.Is(err, errNonNumeric):
		diag.Emitf(c.sink, diag.SeverityWarn, diag.KindNonNumeric,
			"non-numeric Y value, row dropped",
			"title", title, "x", x, "y", fmt.Sprintf("%v", yv))
		return Point{}, false
	case err != nil:
		diag.Emitf(c.sink, diag.SeverityWarn, diag.KindCoercionFault,
			"Y coercion failed, row dropped",
			"title", title, "x", x, "error", err.Error())
		return Point{}, false
	}

	return Point{X: x, Y: y}, true
}

// coerceLabel turns a raw X value into its label. Dates format to
// DateLayout, NULL becomes empty, everything else stringifies naturally.
func coerceLabel(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case time.Time:
		return x.Format(DateLayout)
	case string:
		return x
	case []byte:
		return string(x)
	default:
		return fmt.Sprintf("%v", x)
	}
}

var errNonNumeric = errors.New("value is not numeric")

// toFloat converts the driver value types database/sql can hand back into a
// finite float64.
func toFloat(v any) (float64, error) {
	var f float64
	switch y := v.(type) {
	case float64:
		f = y
	case float32:
		f = float64(y)
	case int:
		f = float64(y)
	case int8:
		f = float64(y)
	case int16:
		f = float64(y)
	case int32:
		f = float64(y)
	case int64:
		f = float64(y)
	case uint:
		f = float64(y)
	case uint8:
		f = float64(y)
	case uint16:
		f = float64(y)
	case uint32:
		f = float64(y)
	case uint64:
		f = float64(y)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(y), 64)
		if err != nil {
			return 0, errNonNumeric
		}
		f = parsed
	case []byte:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(string(y)), 64)
		if err != nil {
			return 0, errNonNumeric
		}
		f = parsed
	default:
		return 0, fmt.Errorf("unsupported value type %T", v)
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("non-finite value %v", f)
	}
	return f, nil
}
