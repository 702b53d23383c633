package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.False(t, cfg.FillGaps)
	assert.False(t, cfg.Verbose)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := writeConfig(t, `
output: charts.pdf
fill_gaps: true
targets:
  analytics:
    type: duckdb
    dsn: analytics.db
`)

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "charts.pdf", cfg.Output)
	assert.True(t, cfg.FillGaps)
	require.Contains(t, cfg.Targets, "analytics")
	assert.Equal(t, "duckdb", cfg.Targets["analytics"].Type)
	assert.Equal(t, "analytics.db", cfg.Targets["analytics"].DSN)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "output: from-file.pdf\n")
	t.Setenv("SQLCHART_OUTPUT", "from-env.pdf")

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "from-env.pdf", cfg.Output)
}

func TestLoad_FlagOverridesEnv(t *testing.T) {
	t.Setenv("SQLCHART_FILL_GAPS", "false")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Bool("fill-gaps", false, "")
	flags.String("output", DefaultOutput, "")
	require.NoError(t, flags.Parse([]string{"--fill-gaps"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)

	assert.True(t, cfg.FillGaps)
}

func TestLoad_RejectsTargetWithoutType(t *testing.T) {
	path := writeConfig(t, `
targets:
  broken:
    dsn: somewhere.db
`)

	_, err := Load(path, nil)

	assert.ErrorContains(t, err, "broken")
}

func TestLoad_UnchangedFlagDoesNotOverride(t *testing.T) {
	path := writeConfig(t, "output: from-file.pdf\n")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("output", DefaultOutput, "")
	require.NoError(t, flags.Parse(nil))

	cfg, err := Load(path, flags)
	require.NoError(t, err)

	assert.Equal(t, "from-file.pdf", cfg.Output)
}
