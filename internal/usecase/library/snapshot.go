package library

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/project/catalog/internal/entity"
	"github.com/project/catalog/internal/log"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

func compareBooks(a, b *entity.Book) int {
	return cmp.Or(
		cmp.Compare(a.Title(), b.Title()),
		cmp.Compare(a.Author(), b.Author()),
	)
}

func compareReaders(a, b *entity.Reader) int {
	return cmp.Compare(a.Name(), b.Name())
}

func (l *catalogImpl) snapshot(sortBooks, sortReaders bool) entity.Snapshot {
	books := l.holdings.bookList()
	if sortBooks {
		slices.SortStableFunc(books, compareBooks)
	}

	readers := l.holdings.readerList()
	if sortReaders {
		slices.SortStableFunc(readers, compareReaders)
	}

	return entity.Snapshot{
		Books: lo.Map(books, func(book *entity.Book, _ int) entity.BookRecord {
			return entity.BookRecord{
				Title:     book.Title(),
				Author:    book.Author(),
				Available: book.Available(),
			}
		}),
		Readers: lo.Map(readers, func(reader *entity.Reader, _ int) entity.ReaderRecord {
			return entity.ReaderRecord{
				Name: reader.Name(),
				BorrowedBooks: lo.Map(reader.Borrowed(), func(key entity.BookKey, _ int) entity.BookRecord {
					return entity.BookRecord{Title: key.Title, Author: key.Author, Available: false}
				}),
			}
		}),
	}
}

// restore rebuilds holdings from a snapshot. Borrowed entries are resolved by
// key to the one Book instance of the restored catalog, so a held book is
// unavailable no matter what its own record says.
func (l *catalogImpl) restore(traceID, path string, snapshot entity.Snapshot) (holdings, error) {
	h := newHoldings()

	for _, record := range snapshot.Books {
		if !h.addBook(entity.RestoreBook(record.Title, record.Author, record.Available)) {
			log.WarnImport(l.logger, "Duplicate book record skipped", traceID, path,
				zap.String("book_title", record.Title),
				zap.String("book_author", record.Author))
		}
	}

	holders := make(map[entity.BookKey]string)
	for _, record := range snapshot.Readers {
		reader := entity.NewReader(record.Name)
		if !h.addReader(reader) {
			log.WarnImport(l.logger, "Duplicate reader record skipped", traceID, path,
				zap.String("reader_name", record.Name))
			continue
		}

		for _, borrowed := range record.BorrowedBooks {
			key := borrowed.Key()
			if holder, ok := holders[key]; ok {
				if holder == record.Name {
					continue
				}
				return holdings{}, fmt.Errorf("%w: book %q by %q is lent to both %q and %q",
					entity.ErrMalformedCatalog, key.Title, key.Author, holder, record.Name)
			}
			holders[key] = record.Name

			book, ok := h.books[key]
			if !ok {
				log.WarnImport(l.logger, "Borrowed book is not in the catalog", traceID, path,
					zap.String("reader_name", record.Name),
					zap.String("book_title", key.Title),
					zap.String("book_author", key.Author))
				book = entity.RestoreBook(key.Title, key.Author, false)
			}
			entity.RestoreLoan(reader, book)
		}
	}

	return h, nil
}
