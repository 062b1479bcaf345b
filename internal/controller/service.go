package controller

import (
	"context"
	"errors"

	"github.com/project/catalog/internal/entity"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

type (
	BooksUseCase interface {
		AddBook(book *entity.Book) bool
		RemoveBook(book *entity.Book) bool
		FindBook(title, author string) (*entity.Book, bool)
		FindAvailableBook(title string) (*entity.Book, bool)
		AvailableBooks() []*entity.Book
	}

	ReadersUseCase interface {
		AddReader(reader *entity.Reader) bool
		RemoveReader(reader *entity.Reader) bool
		FindReader(name string) (*entity.Reader, bool)
		FindBorrowedBook(reader *entity.Reader, title string) (*entity.Book, bool)
		Readers() []*entity.Reader
		Lend(reader *entity.Reader, book *entity.Book) bool
		AcceptReturn(reader *entity.Reader, book *entity.Book) bool
	}

	StorageUseCase interface {
		Export(ctx context.Context, path string, sortBooks, sortReaders bool) error
		Import(ctx context.Context, path string) error
	}
)

type implementation struct {
	logger         *zap.Logger
	booksUseCase   BooksUseCase
	readersUseCase ReadersUseCase
	storageUseCase StorageUseCase
	defaultFile    string
}

func New(
	logger *zap.Logger,
	booksUseCase BooksUseCase,
	readersUseCase ReadersUseCase,
	storageUseCase StorageUseCase,
	defaultFile string,
) *implementation {
	return &implementation{
		logger:         logger,
		booksUseCase:   booksUseCase,
		readersUseCase: readersUseCase,
		storageUseCase: storageUseCase,
		defaultFile:    defaultFile,
	}
}

// path resolves the file name typed by the user, empty meaning the configured file.
func (i *implementation) path(name string) string {
	if name == "" {
		return i.defaultFile
	}
	return name
}

func (i *implementation) convertErr(err error) string {
	switch {
	case errors.Is(err, entity.ErrMalformedCatalog):
		return "the file is not a valid catalog: " + err.Error()
	case errors.Is(err, entity.ErrStorage):
		return "the file can not be accessed: " + err.Error()
	default:
		return "unexpected error: " + err.Error()
	}
}
