package library

import (
	"github.com/project/catalog/internal/entity"
	"github.com/samber/lo"
)

// holdings is the single owned collection of books and readers. Both sets keep
// insertion order. Readers refer to books by key only.
type holdings struct {
	books       map[entity.BookKey]*entity.Book
	bookKeys    []entity.BookKey
	readers     map[string]*entity.Reader
	readerNames []string
}

func newHoldings() holdings {
	return holdings{
		books:   make(map[entity.BookKey]*entity.Book),
		readers: make(map[string]*entity.Reader),
	}
}

func (h *holdings) addBook(book *entity.Book) bool {
	key := book.Key()
	if _, ok := h.books[key]; ok {
		return false
	}
	h.books[key] = book
	h.bookKeys = append(h.bookKeys, key)
	return true
}

func (h *holdings) removeBook(key entity.BookKey) bool {
	if _, ok := h.books[key]; !ok {
		return false
	}
	delete(h.books, key)
	h.bookKeys = lo.Without(h.bookKeys, key)
	return true
}

func (h *holdings) addReader(reader *entity.Reader) bool {
	name := reader.Name()
	if _, ok := h.readers[name]; ok {
		return false
	}
	h.readers[name] = reader
	h.readerNames = append(h.readerNames, name)
	return true
}

func (h *holdings) removeReader(name string) bool {
	if _, ok := h.readers[name]; !ok {
		return false
	}
	delete(h.readers, name)
	h.readerNames = lo.Without(h.readerNames, name)
	return true
}

func (h *holdings) bookList() []*entity.Book {
	return lo.Map(h.bookKeys, func(key entity.BookKey, _ int) *entity.Book {
		return h.books[key]
	})
}

func (h *holdings) readerList() []*entity.Reader {
	return lo.Map(h.readerNames, func(name string, _ int) *entity.Reader {
		return h.readers[name]
	})
}
