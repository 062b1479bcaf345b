package library

import (
	"github.com/project/catalog/internal/entity"
	"github.com/project/catalog/internal/log"
	"github.com/samber/lo"
)

// AddBook registers the book. A book with the same title and author already
// present is kept and false is returned. A book whose key is still held by a
// reader is registered as lent to that reader.
func (l *catalogImpl) AddBook(book *entity.Book) bool {
	added := l.holdings.addBook(book)
	if added {
		holder, held := lo.Find(l.holdings.readerList(), func(reader *entity.Reader) bool {
			return reader.Holds(book.Key())
		})
		if held {
			entity.RestoreLoan(holder, book)
		}
	}
	log.InfoAddBook(l.logger, "Add book", book.Title(), book.Author(), added)
	return added
}

// RemoveBook drops the book from the catalog. Readers holding it keep it.
func (l *catalogImpl) RemoveBook(book *entity.Book) bool {
	removed := l.holdings.removeBook(book.Key())
	log.InfoRemoveBook(l.logger, "Remove book", book.Title(), book.Author(), removed)
	return removed
}

func (l *catalogImpl) FindBook(title, author string) (*entity.Book, bool) {
	book, ok := l.holdings.books[entity.BookKey{Title: title, Author: author}]
	return book, ok
}

// FindAvailableBook returns the first available book with the given title.
func (l *catalogImpl) FindAvailableBook(title string) (*entity.Book, bool) {
	return lo.Find(l.AvailableBooks(), func(book *entity.Book) bool {
		return book.Title() == title
	})
}

func (l *catalogImpl) AvailableBooks() []*entity.Book {
	return lo.Filter(l.holdings.bookList(), func(book *entity.Book, _ int) bool {
		return book.Available()
	})
}
