package library

import (
	"context"

	"github.com/project/catalog/internal/entity"
)

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
