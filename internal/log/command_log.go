package log

import (
	"github.com/project/catalog/pkg/logger"
	"go.uber.org/zap"
)

func InfoCommand(l *zap.Logger, msg string, command string, fields ...zap.Field) {
	logger.MakeInfo(l, msg, append([]zap.Field{
		zap.String("command", command),
		zap.String("action", ReadCommand),
	}, fields...)...)
}

func ErrorCommand(l *zap.Logger, err error, msg string, command string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("command", command),
		zap.Error(err),
		zap.String("action", ReadCommand))
}
