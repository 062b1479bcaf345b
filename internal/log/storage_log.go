package log

import (
	"github.com/project/catalog/pkg/logger"
	"go.uber.org/zap"
)

func InfoExport(l *zap.Logger, msg string, traceID, path string, sortBooks, sortReaders bool, counts ...int) {
	fields := []zap.Field{
		zap.String("trace_id", traceID),
		zap.String("path", path),
		zap.Bool("sort_books", sortBooks),
		zap.Bool("sort_readers", sortReaders),
		zap.String("action", ExportCatalog),
	}
	if len(counts) == 2 {
		fields = append(fields, zap.Int("books", counts[0]), zap.Int("readers", counts[1]))
	}
	logger.MakeInfo(l, msg, fields...)
}

func ErrorExport(l *zap.Logger, err error, msg string, traceID, path string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("path", path),
		zap.Error(err),
		zap.String("action", ExportCatalog))
}

func InfoImport(l *zap.Logger, msg string, traceID, path string, counts ...int) {
	if len(counts) != 2 {
		logger.MakeInfo(l, msg,
			zap.String("trace_id", traceID),
			zap.String("path", path),
			zap.String("action", ImportCatalog))
		return
	}
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.String("path", path),
		zap.Int("books", counts[0]),
		zap.Int("readers", counts[1]),
		zap.String("action", ImportCatalog))
}

func WarnImport(l *zap.Logger, msg string, traceID, path string, fields ...zap.Field) {
	logger.MakeWarn(l, msg, append([]zap.Field{
		zap.String("trace_id", traceID),
		zap.String("path", path),
		zap.String("action", ImportCatalog),
	}, fields...)...)
}

func ErrorImport(l *zap.Logger, err error, msg string, traceID, path string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("path", path),
		zap.Error(err),
		zap.String("action", ImportCatalog))
}
