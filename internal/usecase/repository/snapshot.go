package repository

import (
	"bytes"
	"context"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/project/catalog/internal/entity"
	"github.com/project/catalog/pkg/logger"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const (
	indent   = "  "
	fileMode = 0o644
)

var json = jsoniter.ConfigFastest

var _ SnapshotRepository = (*fileRepository)(nil)

type fileRepository struct {
	logger *zap.Logger
	fs     afero.Fs
}

func New(logger *zap.Logger, fs afero.Fs) *fileRepository {
	return &fileRepository{
		logger: logger,
		fs:     fs,
	}
}

// Save writes the snapshot into the staged file of a running transaction for
// the same path, or straight to path otherwise.
func (f *fileRepository) Save(ctx context.Context, path string, snapshot entity.Snapshot) error {
	data, err := json.MarshalIndent(snapshot, "", indent)
	if err != nil {
		return fmt.Errorf("%w: can not encode catalog: %w", entity.ErrStorage, err)
	}
	data = append(data, '\n')

	if tx, txErr := extractTx(ctx); txErr == nil && tx.target == path {
		_, err = tx.Write(data)
	} else {
		err = afero.WriteFile(f.fs, path, data, fileMode)
	}

	if err != nil {
		return fmt.Errorf("%w: can not write %s: %w", entity.ErrStorage, path, err)
	}

	logger.MakeDebug(f.logger, "catalog snapshot written",
		zap.String("path", path),
		zap.Int("bytes", len(data)),
		zap.Int("books", len(snapshot.Books)),
		zap.Int("readers", len(snapshot.Readers)))
	return nil
}

func (f *fileRepository) Load(_ context.Context, path string) (entity.Snapshot, error) {
	data, err := afero.ReadFile(f.fs, path)
	if err != nil {
		return entity.Snapshot{}, fmt.Errorf("%w: can not read %s: %w", entity.ErrStorage, path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return entity.Snapshot{}, fmt.Errorf("%w: %s is empty", entity.ErrMalformedCatalog, path)
	}

	var snapshot entity.Snapshot
	if err = json.Unmarshal(data, &snapshot); err != nil {
		return entity.Snapshot{}, fmt.Errorf("%w: %s: %w", entity.ErrMalformedCatalog, path, err)
	}

	logger.MakeDebug(f.logger, "catalog snapshot read",
		zap.String("path", path),
		zap.Int("books", len(snapshot.Books)),
		zap.Int("readers", len(snapshot.Readers)))
	return snapshot, nil
}
