package library

import (
	"github.com/project/catalog/internal/entity"
	"github.com/project/catalog/internal/log"
	"github.com/samber/lo"
)

func (l *catalogImpl) AddReader(reader *entity.Reader) bool {
	added := l.holdings.addReader(reader)
	log.InfoAddReader(l.logger, "Add reader", reader.Name(), added)
	return added
}

// RemoveReader drops the reader. Books the reader holds stay unavailable.
func (l *catalogImpl) RemoveReader(reader *entity.Reader) bool {
	removed := l.holdings.removeReader(reader.Name())
	log.InfoRemoveReader(l.logger, "Remove reader", reader.Name(), removed, len(reader.Borrowed()))
	return removed
}

func (l *catalogImpl) FindReader(name string) (*entity.Reader, bool) {
	reader, ok := l.holdings.readers[name]
	return reader, ok
}

// FindBorrowedBook returns the book with the given title held by reader. When
// the catalog no longer lists that book a detached unavailable copy is returned,
// so it can still be handed back.
func (l *catalogImpl) FindBorrowedBook(reader *entity.Reader, title string) (*entity.Book, bool) {
	key, ok := lo.Find(reader.Borrowed(), func(key entity.BookKey) bool {
		return key.Title == title
	})
	if !ok {
		return nil, false
	}

	if book, ok := l.holdings.books[key]; ok {
		return book, true
	}
	return entity.RestoreBook(key.Title, key.Author, false), true
}

func (l *catalogImpl) Readers() []*entity.Reader {
	return l.holdings.readerList()
}

// Lend does not check that reader and book belong to this catalog.
func (l *catalogImpl) Lend(reader *entity.Reader, book *entity.Book) bool {
	lent := reader.Borrow(book)
	log.InfoLendBook(l.logger, "Lend book", reader.Name(), book.Title(), book.Author(), lent)
	return lent
}

func (l *catalogImpl) AcceptReturn(reader *entity.Reader, book *entity.Book) bool {
	returned := reader.Return(book)
	log.InfoAcceptReturn(l.logger, "Accept returned book", reader.Name(), book.Title(), book.Author(), returned)
	return returned
}
