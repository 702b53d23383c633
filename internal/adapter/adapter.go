// Package adapter provides database adapters for executing report
// statements. Adapters wrap database/sql drivers behind one query-oriented
// interface and register themselves by target type.
package adapter

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// Adapter is the database collaborator: it runs one statement at a time and
// returns a row cursor with named columns.
type Adapter interface {
	// Connect establishes the connection from a driver DSN.
	Connect(ctx context.Context, dsn string) error

	// Close closes the connection and releases resources.
	Close() error

	// Query executes a statement that returns rows.
	Query(ctx context.Context, sqlStr string) (*sql.Rows, error)

	// DriverName returns the adapter's registered type name.
	DriverName() string
}

// BaseSQLAdapter provides the common database/sql plumbing. Concrete
// adapters embed it and implement Connect and DriverName.
type BaseSQLAdapter struct {
	DB     *sql.DB
	Logger *slog.Logger
}

// Close closes the database connection.
func (b *BaseSQLAdapter) Close() error {
	if b.DB != nil {
		if b.Logger != nil {
			b.Logger.Debug("closing database connection")
		}
		return b.DB.Close()
	}
	return nil
}

// Query executes a SQL statement that returns rows.
func (b *BaseSQLAdapter) Query(ctx context.Context, sqlStr string) (*sql.Rows, error) {
	if b.DB == nil {
		return nil, fmt.Errorf("database connection not established")
	}
	//nolint:rowserrcheck // rows.Err() must be checked by caller after iteration completes
	rows, err := b.DB.QueryContext(ctx, sqlStr)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	return rows, nil
}

// IsConnected returns true if the database connection is established.
func (b *BaseSQLAdapter) IsConnected() bool {
	return b.DB != nil
}

// open opens a database/sql handle and verifies it with a ping.
func (b *BaseSQLAdapter) open(ctx context.Context, driver, dsn string) error {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return fmt.Errorf("failed to open %s connection: %w", driver, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping %s: %w", driver, err)
	}
	b.DB = db
	return nil
}
