package main

import (
	"os"
	"path/filepath"

	"github.com/project/catalog/config"
	"github.com/project/catalog/internal/app"
	log "github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	cfg, err := config.NewConfig()

	if err != nil {
		log.Fatalf("can not get application config: %s", err)
	}

	var logger *zap.Logger

	logger, err = NewFileLogger(cfg)

	if err != nil {
		log.Fatalf("can not initialize logger: %s", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	app.Run(logger, cfg)
}

// NewFileLogger writes JSON logs to the configured file so they stay off the console.
func NewFileLogger(cfg *config.Config) (*zap.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Log.File), 0o755); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)

	if err != nil {
		return nil, err
	}

	writeSyncer := zapcore.AddSync(file)
	encoderCfg := zap.NewProductionEncoderConfig()
	encoder := zapcore.NewJSONEncoder(encoderCfg)

	core := zapcore.NewCore(encoder, writeSyncer, cfg.Log.Level)

	return zap.New(core), nil
}
