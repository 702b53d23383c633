package engine

// run.go - execution orchestration for report runs

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/leapstack-labs/sqlchart/internal/chartdata"
	"github.com/leapstack-labs/sqlchart/internal/dataset"
	"github.com/leapstack-labs/sqlchart/internal/diag"
	"github.com/leapstack-labs/sqlchart/internal/report"
	"github.com/leapstack-labs/sqlchart/internal/script"
	"github.com/leapstack-labs/sqlchart/internal/trend"
)

// Run executes every directive in order and returns one report entry per
// directive. Data-shape problems (bad rows, missing columns, render
// failures, degenerate trends) are isolated to their directive; only a
// database fault aborts the run.
func (e *Engine) Run(ctx context.Context, directives []script.Directive) ([]report.Entry, error) {
	runID := uuid.NewString()

	// Collect alongside the caller's sink so the summary can count drops.
	collector := &diag.Collector{}
	sink := diag.Tee{e.sink, collector}
	coercer := dataset.NewCoercer(sink)

	entries := make([]report.Entry, 0, len(directives))
	for _, d := range directives {
		entry, err := e.runDirective(ctx, coercer, sink, d)
		if err != nil {
			diag.Emitf(e.sink, diag.SeverityError, diag.KindConnectionFault,
				"database fault, run aborted",
				"run_id", runID, "title", d.Title, "error", err.Error())
			return nil, err
		}
		entries = append(entries, entry)
	}

	rowsDropped := collector.Count(diag.KindNullNumeric) +
		collector.Count(diag.KindTypeMismatch) +
		collector.Count(diag.KindNonNumeric) +
		collector.Count(diag.KindCoercionFault)
	charts := 0
	for _, entry := range entries {
		if len(entry.Image) > 0 {
			charts++
		}
	}
	diag.Emitf(e.sink, diag.SeverityInfo, diag.KindRunSummary, "run completed",
		"run_id", runID,
		"directives", len(directives),
		"charts_rendered", charts,
		"fallbacks", len(entries)-charts,
		"datasets_dropped", collector.Count(diag.KindSchemaMismatch),
		"rows_dropped", rowsDropped)

	return entries, nil
}

// runDirective executes one directive end to end. A non-nil error means a
// connection-level fault; everything else resolves to an entry.
func (e *Engine) runDirective(ctx context.Context, coercer *dataset.Coercer, sink diag.Sink, d script.Directive) (report.Entry, error) {
	rows, err := e.db.Query(ctx, d.Statement)
	if err != nil {
		return report.Entry{}, fmt.Errorf("query %q failed: %w", d.Title, err)
	}
	defer rows.Close()

	points, err := coercer.CoerceRows(rows, d.Title)
	if errors.Is(err, dataset.ErrSchemaMismatch) {
		// Whole dataset dropped; the page still exists, listing nothing.
		return report.Entry{Title: d.Title}, nil
	}
	if err != nil {
		return report.Entry{}, err
	}

	series := dataset.Classify(points)
	if e.opts.FillGaps {
		// FillGaps emits ascending working order; re-sort for display.
		series = dataset.Classify(dataset.FillGaps(series).Points)
	}

	data := chartdata.Prepare(series)

	var line *trend.Line
	if fitted, ok := trend.Fit(data.X, data.Y); ok {
		line = &fitted
	} else if len(data.X) >= 2 {
		diag.Emitf(sink, diag.SeverityInfo, diag.KindDegenerateTrend,
			"zero X variance, trend omitted", "title", d.Title)
	}

	img, err := e.render(d.Title, data, line)
	if err != nil {
		diag.Emitf(sink, diag.SeverityWarn, diag.KindRenderFault,
			"chart rendering failed, falling back to textual summary",
			"title", d.Title, "error", err.Error())
		img = nil
	}

	return report.Entry{Title: d.Title, Image: img, Points: series.Points}, nil
}
