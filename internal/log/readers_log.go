package log

import (
	"github.com/project/catalog/pkg/logger"
	"go.uber.org/zap"
)

func InfoAddReader(l *zap.Logger, msg string, name string, added bool) {
	logger.MakeInfo(l, msg,
		zap.String("reader_name", name),
		zap.Bool("added", added),
		zap.String("action", AddReader))
}

func InfoRemoveReader(l *zap.Logger, msg string, name string, removed bool, outstanding int) {
	if outstanding > 0 {
		logger.MakeWarn(l, msg,
			zap.String("reader_name", name),
			zap.Bool("removed", removed),
			zap.Int("outstanding_loans", outstanding),
			zap.String("action", RemoveReader))
		return
	}
	logger.MakeInfo(l, msg,
		zap.String("reader_name", name),
		zap.Bool("removed", removed),
		zap.String("action", RemoveReader))
}
