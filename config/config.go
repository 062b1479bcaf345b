package config

import (
	"fmt"
	"strconv"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

const (
	defaultCatalogFile = "library.json"
	defaultAutoLoad    = false
	defaultLogFile     = "logs/catalog.log"
	defaultLogLevel    = "info"
	defaultLogValue    = true
	maxPort            = 65535
)

type (
	Config struct {
		Catalog struct {
			File     string `env:"CATALOG_FILE"`
			AutoLoad bool   `env:"CATALOG_AUTOLOAD"`
		}

		Log struct {
			File          string        `env:"LOG_FILE"`
			Level         zapcore.Level `env:"LOG_LEVEL"`
			LogController bool          `env:"LOG_CONTROLLER_ENABLED"`
			LogUseCase    bool          `env:"LOG_USECASE_ENABLED"`
			LogRepo       bool          `env:"LOG_REPO_ENABLED"`
			LogTransactor bool          `env:"LOG_TRANSACTOR_ENABLED"`
		}

		Observability struct {
			MetricsPort string `env:"METRICS_PORT"`
		}
	}
)

func NewConfig() (*Config, error) {
	cfg := &Config{}

	var err error
	v := viper.New()

	if cfg.Catalog.File, err = parseEnvString(v, "catalog_file", "CATALOG_FILE", defaultCatalogFile); err != nil {
		return nil, err
	}

	if cfg.Catalog.AutoLoad, err = parseEnvBool(v, "catalog_autoload", "CATALOG_AUTOLOAD", defaultAutoLoad); err != nil {
		return nil, err
	}

	if cfg.Log.File, err = parseEnvString(v, "log_file", "LOG_FILE", defaultLogFile); err != nil {
		return nil, err
	}

	level, err := parseEnvString(v, "log_level", "LOG_LEVEL", defaultLogLevel)
	if err != nil {
		return nil, err
	}
	if cfg.Log.Level, err = zapcore.ParseLevel(level); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	if cfg.Log.LogController, err = parseEnvBool(v, "log_controller", "LOG_CONTROLLER_ENABLED", defaultLogValue); err != nil {
		return nil, err
	}

	if cfg.Log.LogUseCase, err = parseEnvBool(v, "log_usecase", "LOG_USECASE_ENABLED", defaultLogValue); err != nil {
		return nil, err
	}

	if cfg.Log.LogRepo, err = parseEnvBool(v, "log_repo", "LOG_REPO_ENABLED", defaultLogValue); err != nil {
		return nil, err
	}

	if cfg.Log.LogTransactor, err = parseEnvBool(v, "log_transactor", "LOG_TRANSACTOR_ENABLED", defaultLogValue); err != nil {
		return nil, err
	}

	if cfg.Observability.MetricsPort, err = parseEnvString(v, "metrics_port", "METRICS_PORT"); err != nil {
		return nil, err
	}

	if cfg.Observability.MetricsPort != "" {
		port, err := parseInt(cfg.Observability.MetricsPort)
		if err != nil || port <= 0 || port > maxPort {
			return nil, fmt.Errorf("invalid METRICS_PORT %q", cfg.Observability.MetricsPort)
		}
	}

	return cfg, nil
}

func parseInt(s string) (int, error) {
	str, err := strconv.ParseInt(s, 10, 64)

	if err != nil {
		return 0, err
	}

	return int(str), nil
}

func parseEnvBool(v *viper.Viper, key, envVar string, defaultValue ...bool) (bool, error) {
	err := v.BindEnv(key, envVar)
	if err != nil {
		if len(defaultValue) > 0 {
			return defaultValue[0], err
		}
		return false, err
	}
	if len(defaultValue) > 0 {
		v.SetDefault(key, defaultValue[0])
	}
	return v.GetBool(key), nil
}

func parseEnvString(v *viper.Viper, key, envVar string, defaultValue ...string) (string, error) {
	err := v.BindEnv(key, envVar)
	if err != nil {
		if len(defaultValue) > 0 {
			return defaultValue[0], err
		}
		return "", err
	}
	if len(defaultValue) > 0 {
		v.SetDefault(key, defaultValue[0])
	}
	return v.GetString(key), nil
}
