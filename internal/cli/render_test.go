package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlchart/internal/config"
)

func TestRenderCommand_RequiresTwoArgs(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetArgs([]string{"render", "only-one-arg"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()

	assert.Error(t, err)
}

func TestResolveTarget_Descriptor(t *testing.T) {
	cfg := &config.Config{}

	targetType, dsn, err := resolveTarget(cfg, "duckdb:analytics.db")

	require.NoError(t, err)
	assert.Equal(t, "duckdb", targetType)
	assert.Equal(t, "analytics.db", dsn)
}

func TestResolveTarget_NamedTarget(t *testing.T) {
	cfg := &config.Config{Targets: map[string]config.TargetConfig{
		"analytics": {Type: "sqlite", DSN: "state.db"},
	}}

	targetType, dsn, err := resolveTarget(cfg, "analytics")

	require.NoError(t, err)
	assert.Equal(t, "sqlite", targetType)
	assert.Equal(t, "state.db", dsn)
}

func TestResolveTarget_UnknownName(t *testing.T) {
	cfg := &config.Config{}

	_, _, err := resolveTarget(cfg, "nonexistent")

	assert.ErrorContains(t, err, "nonexistent")
}

func TestResolveTarget_NamedTargetBadType(t *testing.T) {
	cfg := &config.Config{Targets: map[string]config.TargetConfig{
		"legacy": {Type: "oracle", DSN: "whatever"},
	}}

	_, _, err := resolveTarget(cfg, "legacy")

	assert.ErrorContains(t, err, "oracle")
}
