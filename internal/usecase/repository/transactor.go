package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/project/catalog/internal/entity"
	"github.com/project/catalog/pkg/logger"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const stagedFileMode = 0o644

var _ Transactor = (*transactorImpl)(nil)

// transactorImpl replaces a file atomically: writes made inside WithTx go to a
// staged sibling file which is renamed over the target on success.
type transactorImpl struct {
	logger *zap.Logger
	fs     afero.Fs
}

func NewTransactor(logger *zap.Logger, fs afero.Fs) *transactorImpl {
	return &transactorImpl{
		logger: logger,
		fs:     fs,
	}
}

func (t *transactorImpl) WithTx(ctx context.Context, path string, function func(ctx context.Context) error) (txErr error) {
	ctxWithTx, tx, err := injectTx(ctx, t.fs, path)

	if err != nil {
		return fmt.Errorf("%w: can not stage file for %s: %w", entity.ErrStorage, path, err)
	}

	defer func() {
		if txErr != nil {
			err = tx.rollback()
			logger.CheckError(err, t.logger, "failed rollback of staged file",
				zap.String("path", path), zap.String("staged", tx.name()), zap.Error(err))
			return
		}

		err = tx.commit()
		if logger.CheckError(err, t.logger, "failed commit of staged file",
			zap.String("path", path), zap.String("staged", tx.name()), zap.Error(err)) {
			txErr = fmt.Errorf("%w: can not commit staged file for %s: %w", entity.ErrStorage, path, err)
			return
		}
		logger.MakeDebug(t.logger, "staged file committed", zap.String("path", path))
	}()

	err = function(ctxWithTx)

	if err != nil {
		return fmt.Errorf("function execution error: %w", err)
	}

	return nil
}

type stagedFile struct {
	fs     afero.Fs
	file   afero.File
	target string
}

func (s *stagedFile) name() string {
	return s.file.Name()
}

func (s *stagedFile) Write(p []byte) (int, error) {
	return s.file.Write(p)
}

func (s *stagedFile) commit() error {
	if err := s.file.Sync(); err != nil {
		return errors.Join(err, s.rollback())
	}

	if err := s.file.Close(); err != nil {
		return errors.Join(err, s.fs.Remove(s.name()))
	}

	if err := s.fs.Rename(s.name(), s.target); err != nil {
		return errors.Join(err, s.fs.Remove(s.name()))
	}

	return nil
}

func (s *stagedFile) rollback() error {
	return errors.Join(s.file.Close(), s.fs.Remove(s.name()))
}

func stagedName(target string) string {
	return filepath.Join(filepath.Dir(target), "."+filepath.Base(target)+"."+uuid.NewString()+".tmp")
}

type txInjector struct{}

var ErrTxNotFound = errors.New("tx not found in context")

func injectTx(ctx context.Context, fs afero.Fs, target string) (context.Context, *stagedFile, error) {
	file, err := fs.OpenFile(stagedName(target), os.O_WRONLY|os.O_CREATE|os.O_EXCL, stagedFileMode)

	if err != nil {
		return nil, nil, err
	}

	tx := &stagedFile{
		fs:     fs,
		file:   file,
		target: target,
	}

	return context.WithValue(ctx, txInjector{}, tx), tx, nil
}

func extractTx(ctx context.Context) (*stagedFile, error) {
	tx, ok := ctx.Value(txInjector{}).(*stagedFile)

	if !ok {
		return nil, ErrTxNotFound
	}

	return tx, nil
}
