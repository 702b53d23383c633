// Package engine orchestrates a report run: it executes each directive in
// script order, pushes the results through coercion, classification,
// optional gap filling, coordinate mapping and trend fitting, and collects
// one report entry per directive.
package engine

import (
	"context"
	"database/sql"

	"github.com/leapstack-labs/sqlchart/internal/chartdata"
	"github.com/leapstack-labs/sqlchart/internal/diag"
	"github.com/leapstack-labs/sqlchart/internal/trend"
)

// Database is the externally-owned connection the run executes against.
// adapter.Adapter satisfies it.
type Database interface {
	Query(ctx context.Context, sqlStr string) (*sql.Rows, error)
}

// RenderFunc rasterizes one chart. A failure is per-chart, never fatal.
type RenderFunc func(title string, data chartdata.PlotData, line *trend.Line) ([]byte, error)

// Options configure a run.
type Options struct {
	// FillGaps densifies time series to one point per calendar day.
	FillGaps bool
}

// Engine runs directives strictly in script order against one connection.
// There is no parallelism and no shared state between directives.
type Engine struct {
	db     Database
	render RenderFunc
	sink   diag.Sink
	opts   Options
}

// New creates an engine. A nil sink discards diagnostics.
func New(db Database, render RenderFunc, sink diag.Sink, opts Options) *Engine {
	if sink == nil {
		sink = diag.Discard{}
	}
	return &Engine{
		db:     db,
		render: render,
		sink:   sink,
		opts:   opts,
	}
}
