// Package config provides sqlchart's configuration types and loading.
// Configuration merges, lowest precedence first: built-in defaults, an
// optional sqlchart.yaml, SQLCHART_-prefixed environment variables, and
// CLI flags.
package config

import "fmt"

// Config holds all run configuration.
type Config struct {
	// Targets are named connection targets usable in place of a
	// connection descriptor on the command line.
	Targets map[string]TargetConfig `koanf:"targets"`

	// FillGaps densifies time series to one point per calendar day.
	FillGaps bool `koanf:"fill_gaps"`

	// Output is the report file path.
	Output string `koanf:"output"`

	// Verbose enables debug-level diagnostics.
	Verbose bool `koanf:"verbose"`
}

// TargetConfig identifies one database target.
type TargetConfig struct {
	// Type is the adapter type: duckdb, postgres, sqlite.
	Type string `koanf:"type"`

	// DSN is the driver connection string (a file path for file-based
	// databases, a URL or key=value string for postgres).
	DSN string `koanf:"dsn"`
}

// Default configuration values.
const (
	DefaultOutput = "report.pdf"
)

// ApplyDefaults fills zero-valued fields with defaults.
func (c *Config) ApplyDefaults() {
	if c.Output == "" {
		c.Output = DefaultOutput
	}
}

// Validate checks the configuration for problems that would only surface
// mid-run otherwise.
func (c *Config) Validate() error {
	for name, t := range c.Targets {
		if t.Type == "" {
			return fmt.Errorf("target %q has no type", name)
		}
	}
	return nil
}
