// Package logger holds helpers over a *zap.Logger that may be nil when
// logging is switched off for a layer.
package logger

import "go.uber.org/zap"

// CheckError logs msg at error level when err is not nil and reports whether it was.
func CheckError(err error, logger *zap.Logger, msg string, fields ...zap.Field) bool {
	if err != nil {
		if logger != nil {
			logger.Error(msg, fields...)
		}
		return true
	}
	return false
}

func MakeInfo(logger *zap.Logger, msg string, fields ...zap.Field) {
	if logger != nil {
		logger.Info(msg, fields...)
	}
}

func MakeWarn(logger *zap.Logger, msg string, fields ...zap.Field) {
	if logger != nil {
		logger.Warn(msg, fields...)
	}
}

func MakeDebug(logger *zap.Logger, msg string, fields ...zap.Field) {
	if logger != nil {
		logger.Debug(msg, fields...)
	}
}

// Enabled returns logger, or nil when the layer's logging is switched off.
func Enabled(logger *zap.Logger, enabled bool) *zap.Logger {
	if !enabled {
		return nil
	}
	return logger
}
