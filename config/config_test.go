package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"positionSizer/internal/adapters/logger"
	"positionSizer/internal/adapters/params"
	"positionSizer/internal/domain"
	"positionSizer/internal/ports"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.True(t, cfg.MetricsEnabled)
	assert.Equal(t, params.LockPolicyClamp, cfg.LockPolicy)
	assert.Equal(t, logger.LevelInfo, cfg.LogLevel)
	assert.Equal(t, domain.SampleDefaults(), cfg.Defaults)
}

func TestLoadConfig_Overrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "defaults.yaml")
	require.NoError(t, os.WriteFile(path, []byte("entry: 50\nstop_loss: 48\ntake_profit: 56\ncapital: 5000\n"), 0o644))

	t.Setenv("DEFAULTS_FILE", path)
	t.Setenv("DEFAULT_CAPITAL", "2500")
	t.Setenv("LOCK_CEILING_POLICY", "off")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("HTTP_ADDR", ":9090")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, params.LockPolicyOff, cfg.LockPolicy)
	assert.Equal(t, logger.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 50.0, cfg.Defaults.Entry)
	assert.Equal(t, 48.0, cfg.Defaults.StopLoss)
	assert.Equal(t, 56.0, cfg.Defaults.TakeProfit)
	assert.Equal(t, 2500.0, cfg.Defaults.Capital, "env overrides the YAML file")
	assert.Equal(t, domain.DefaultRiskPercent, cfg.Defaults.RiskPercent, "keys missing from YAML keep the sample value")
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "0")
	t.Setenv("LOCK_CEILING_POLICY", "sometimes")
	t.Setenv("DEFAULT_MAX_LEVERAGE", "-2")
	t.Setenv("DEFAULT_ENTRY", "abc")
	t.Setenv("DEFAULTS_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := LoadConfig()
	require.Error(t, err)
	assert.ErrorIs(t, err, ports.ErrConfigurationError)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT_SECONDS")
	assert.Contains(t, err.Error(), "sometimes")
	assert.Contains(t, err.Error(), "max leverage")
	assert.Contains(t, err.Error(), "DEFAULT_ENTRY")
	assert.Contains(t, err.Error(), "missing.yaml")
}
