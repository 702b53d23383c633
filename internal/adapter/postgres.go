package adapter

import (
	"context"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx database/sql driver
)

func init() {
	Register("postgres", func(logger *slog.Logger) Adapter { return NewPostgres(logger) })
}

// PostgresAdapter runs statements against PostgreSQL via the pgx stdlib
// driver. The DSN is a standard postgres:// URL or key=value string.
type PostgresAdapter struct {
	BaseSQLAdapter
}

// NewPostgres creates a new PostgreSQL adapter instance.
func NewPostgres(logger *slog.Logger) *PostgresAdapter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &PostgresAdapter{BaseSQLAdapter: BaseSQLAdapter{Logger: logger}}
}

// DriverName returns the registered type name.
func (a *PostgresAdapter) DriverName() string {
	return "postgres"
}

// Connect opens a PostgreSQL connection.
func (a *PostgresAdapter) Connect(ctx context.Context, dsn string) error {
	a.Logger.Debug("connecting to postgres")
	return a.open(ctx, "pgx", dsn)
}
