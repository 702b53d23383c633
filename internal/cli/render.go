package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlchart/internal/adapter"
	"github.com/leapstack-labs/sqlchart/internal/config"
	"github.com/leapstack-labs/sqlchart/internal/diag"
	"github.com/leapstack-labs/sqlchart/internal/engine"
	"github.com/leapstack-labs/sqlchart/internal/render"
	"github.com/leapstack-labs/sqlchart/internal/report"
	"github.com/leapstack-labs/sqlchart/internal/script"
)

// NewRenderCommand creates the render command.
func NewRenderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <target> <script.sql>",
		Short: "Execute a script and write the chart report",
		Long: `Execute every titled statement in the script, in order, and write a PDF
report with one chart page per statement.

The target is a connection descriptor (duckdb:analytics.db,
sqlite:state.db, postgres://user@host/db) or the name of a target defined
in sqlchart.yaml.`,
		Example: `  # Charts from a DuckDB file
  sqlchart render duckdb:analytics.db report.sql

  # Against postgres, densifying time series to one point per day
  sqlchart render postgres://app@localhost/metrics daily.sql --fill-gaps

  # Named target from sqlchart.yaml, custom output path
  sqlchart render analytics report.sql -o weekly.pdf`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args)
		},
	}

	cmd.Flags().Bool("fill-gaps", false, "fill calendar-day gaps in time series with zero-valued points")
	cmd.Flags().StringP("output", "o", config.DefaultOutput, "report file path")

	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	sink := diag.NewSlogSink(logger)

	targetType, dsn, err := resolveTarget(cfg, args[0])
	if err != nil {
		return err
	}

	directives, err := script.NewExtractor(sink).ParseFile(args[1])
	if err != nil {
		return err
	}
	if len(directives) == 0 {
		return fmt.Errorf("no statements found in %s", args[1])
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	db, err := adapter.New(targetType, logger)
	if err != nil {
		return err
	}
	if err := db.Connect(ctx, dsn); err != nil {
		return fmt.Errorf("failed to connect to %s target: %w", targetType, err)
	}
	defer func() { _ = db.Close() }()

	eng := engine.New(db, render.New().Render, sink, engine.Options{FillGaps: cfg.FillGaps})
	entries, err := eng.Run(ctx, directives)
	if err != nil {
		return err
	}

	if err := report.Write(cfg.Output, entries); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "report written to %s (%d pages)\n", cfg.Output, len(entries))
	return nil
}

// resolveTarget turns the positional target argument into an adapter type
// and DSN: either a connection descriptor, or a named target from config.
func resolveTarget(cfg *config.Config, arg string) (targetType, dsn string, err error) {
	targetType, dsn, err = adapter.ParseDescriptor(arg)
	if err == nil {
		return targetType, dsn, nil
	}
	if !errors.Is(err, adapter.ErrNotDescriptor) {
		return "", "", err
	}

	t, ok := cfg.Targets[arg]
	if !ok {
		return "", "", fmt.Errorf("target %q is neither a connection descriptor nor defined in config", arg)
	}
	if !adapter.IsRegistered(t.Type) {
		return "", "", &adapter.UnknownAdapterError{Type: t.Type, Available: adapter.ListAdapters()}
	}
	return t.Type, t.DSN, nil
}
