package adapter

import (
	"context"
	"log/slog"

	_ "github.com/marcboeker/go-duckdb" // duckdb driver
)

func init() {
	Register("duckdb", func(logger *slog.Logger) Adapter { return NewDuckDB(logger) })
}

// DuckDBAdapter runs statements against a DuckDB database file, or an
// in-memory database when the DSN is empty or ":memory:".
type DuckDBAdapter struct {
	BaseSQLAdapter
}

// NewDuckDB creates a new DuckDB adapter instance.
func NewDuckDB(logger *slog.Logger) *DuckDBAdapter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &DuckDBAdapter{BaseSQLAdapter: BaseSQLAdapter{Logger: logger}}
}

// DriverName returns the registered type name.
func (a *DuckDBAdapter) DriverName() string {
	return "duckdb"
}

// Connect opens the DuckDB database at the DSN path.
func (a *DuckDBAdapter) Connect(ctx context.Context, dsn string) error {
	if dsn == "" {
		dsn = ":memory:"
	}
	a.Logger.Debug("connecting to duckdb", slog.String("path", dsn))
	return a.open(ctx, "duckdb", dsn)
}
