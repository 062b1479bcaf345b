package library

import (
	"context"

	"github.com/project/catalog/internal/entity"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

//go:generate mockgen -source=usecases.go -destination=mocks/mock_usecases.go -package=mocks

type (
	SnapshotRepository interface {
		Save(ctx context.Context, path string, snapshot entity.Snapshot) error
		Load(ctx context.Context, path string) (entity.Snapshot, error)
	}

	Transactor interface {
		WithTx(ctx context.Context, path string, function func(ctx context.Context) error) error
	}
)

var tracer = otel.Tracer("github.com/project/catalog/internal/usecase/library")

var _ BooksUseCase = (*catalogImpl)(nil)
var _ ReadersUseCase = (*catalogImpl)(nil)
var _ StorageUseCase = (*catalogImpl)(nil)

// catalogImpl is the library catalog. It is not safe for concurrent use.
type catalogImpl struct {
	logger             *zap.Logger
	snapshotRepository SnapshotRepository
	transactor         Transactor
	holdings           holdings
}

func New(
	logger *zap.Logger,
	snapshotRepository SnapshotRepository,
	transactor Transactor,
) *catalogImpl {
	return &catalogImpl{
		logger:             logger,
		snapshotRepository: snapshotRepository,
		transactor:         transactor,
		holdings:           newHoldings(),
	}
}
