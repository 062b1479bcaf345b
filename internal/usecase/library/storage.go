package library

import (
	"context"

	"github.com/project/catalog/internal/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Export writes the whole catalog to path. Books are ordered by title when
// sortBooks is set and readers by name when sortReaders is set; otherwise both
// keep insertion order. The file is replaced atomically.
func (l *catalogImpl) Export(ctx context.Context, path string, sortBooks, sortReaders bool) error {
	ctx, span := tracer.Start(ctx, "catalog.Export")
	defer span.End()

	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(
		attribute.String("path", path),
		attribute.Bool("sort_books", sortBooks),
		attribute.Bool("sort_readers", sortReaders),
	)
	log.InfoExport(l.logger, "Start of catalog export", traceID, path, sortBooks, sortReaders)

	snapshot := l.snapshot(sortBooks, sortReaders)
	err := l.transactor.WithTx(ctx, path, func(ctx context.Context) error {
		return l.snapshotRepository.Save(ctx, path, snapshot)
	})

	if log.ErrorExport(l.logger, err, "Failed catalog export", traceID, path) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(
		attribute.Int("books", len(snapshot.Books)),
		attribute.Int("readers", len(snapshot.Readers)),
	)
	log.InfoExport(l.logger, "Exported the catalog", traceID, path, sortBooks, sortReaders,
		len(snapshot.Books), len(snapshot.Readers))
	return nil
}

// Import replaces the catalog with the content of path. On error the catalog
// is left as it was.
func (l *catalogImpl) Import(ctx context.Context, path string) error {
	ctx, span := tracer.Start(ctx, "catalog.Import")
	defer span.End()

	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.String("path", path))
	log.InfoImport(l.logger, "Start of catalog import", traceID, path)

	snapshot, err := l.snapshotRepository.Load(ctx, path)
	if log.ErrorImport(l.logger, err, "Failed reading catalog", traceID, path) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	restored, err := l.restore(traceID, path, snapshot)
	if log.ErrorImport(l.logger, err, "Failed restoring catalog", traceID, path) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	l.holdings = restored

	span.SetAttributes(
		attribute.Int("books", len(restored.bookKeys)),
		attribute.Int("readers", len(restored.readerNames)),
	)
	log.InfoImport(l.logger, "Imported the catalog", traceID, path,
		len(restored.bookKeys), len(restored.readerNames))
	return nil
}
