package config

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

var configEnv = []string{
	"CATALOG_FILE",
	"CATALOG_AUTOLOAD",
	"LOG_FILE",
	"LOG_LEVEL",
	"LOG_CONTROLLER_ENABLED",
	"LOG_USECASE_ENABLED",
	"LOG_REPO_ENABLED",
	"LOG_TRANSACTOR_ENABLED",
	"METRICS_PORT",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range configEnv {
		t.Setenv(name, "")
	}
}

func TestNewConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := NewConfig()
	require.NoError(t, err)

	require.Equal(t, defaultCatalogFile, cfg.Catalog.File)
	require.False(t, cfg.Catalog.AutoLoad)
	require.Equal(t, defaultLogFile, cfg.Log.File)
	require.Equal(t, zapcore.InfoLevel, cfg.Log.Level)
	require.True(t, cfg.Log.LogController)
	require.True(t, cfg.Log.LogUseCase)
	require.True(t, cfg.Log.LogRepo)
	require.True(t, cfg.Log.LogTransactor)
	require.Empty(t, cfg.Observability.MetricsPort)
}

func TestNewConfigFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("CATALOG_FILE", "/tmp/books.json")
	t.Setenv("CATALOG_AUTOLOAD", "true")
	t.Setenv("LOG_FILE", "/tmp/catalog.log")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_REPO_ENABLED", "false")
	t.Setenv("METRICS_PORT", "9090")

	cfg, err := NewConfig()
	require.NoError(t, err)

	require.Equal(t, "/tmp/books.json", cfg.Catalog.File)
	require.True(t, cfg.Catalog.AutoLoad)
	require.Equal(t, "/tmp/catalog.log", cfg.Log.File)
	require.Equal(t, zapcore.DebugLevel, cfg.Log.Level)
	require.False(t, cfg.Log.LogRepo)
	require.True(t, cfg.Log.LogUseCase)
	require.Equal(t, "9090", cfg.Observability.MetricsPort)
}

func TestNewConfigInvalid(t *testing.T) {
	tests := []struct {
		name  string
		env   string
		value string
	}{
		{name: "unknown log level", env: "LOG_LEVEL", value: "loud"},
		{name: "metrics port is not a number", env: "METRICS_PORT", value: "http"},
		{name: "metrics port out of range", env: "METRICS_PORT", value: "70000"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(test.env, test.value)

			cfg, err := NewConfig()
			require.Error(t, err)
			require.Nil(t, cfg)
		})
	}
}
