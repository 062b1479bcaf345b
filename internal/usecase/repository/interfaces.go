package repository

import (
	"context"

	"github.com/project/catalog/internal/entity"
)

type (
	SnapshotRepository interface {
		Save(ctx context.Context, path string, snapshot entity.Snapshot) error
		Load(ctx context.Context, path string) (entity.Snapshot, error)
	}

	Transactor interface {
		WithTx(ctx context.Context, path string, function func(ctx context.Context) error) error
	}
)
