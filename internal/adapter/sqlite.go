package adapter

import (
	"context"
	"log/slog"

	_ "modernc.org/sqlite" // cgo-free sqlite driver
)

func init() {
	Register("sqlite", func(logger *slog.Logger) Adapter { return NewSQLite(logger) })
}

// SQLiteAdapter runs statements against a SQLite database file.
type SQLiteAdapter struct {
	BaseSQLAdapter
}

// NewSQLite creates a new SQLite adapter instance.
func NewSQLite(logger *slog.Logger) *SQLiteAdapter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SQLiteAdapter{BaseSQLAdapter: BaseSQLAdapter{Logger: logger}}
}

// DriverName returns the registered type name.
func (a *SQLiteAdapter) DriverName() string {
	return "sqlite"
}

// Connect opens the SQLite database at the DSN path.
func (a *SQLiteAdapter) Connect(ctx context.Context, dsn string) error {
	if dsn == "" {
		dsn = ":memory:"
	}
	a.Logger.Debug("connecting to sqlite", slog.String("path", dsn))
	return a.open(ctx, "sqlite", dsn)
}
