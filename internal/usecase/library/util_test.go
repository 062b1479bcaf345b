package library

import (
	"os"
	"testing"

	"github.com/project/catalog/internal/entity"
	"github.com/project/catalog/internal/usecase/repository"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testDir  = "/data"
	testPath = testDir + "/library.json"

	readerName = "Petro Petrenko"
	bookTitle  = "Effective Java"
	bookAuthor = "Joshua Bloch"
)

func newTestLogger(t *testing.T) *zap.Logger {
	t.Helper()
	logger, err := zap.NewProduction()
	if err != nil {
		t.Fatal("assertion error: " + err.Error())
	}
	return logger
}

// initCatalogTest returns a catalog backed by an in-memory filesystem holding
// one reader and one book.
func initCatalogTest(t *testing.T) (afero.Fs, *catalogImpl, *entity.Reader, *entity.Book) {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(testDir, os.ModePerm))

	c := newFileCatalog(t, fs)
	reader := entity.NewReader(readerName)
	book := entity.NewBook(bookTitle, bookAuthor)
	require.True(t, c.AddReader(reader))
	require.True(t, c.AddBook(book))
	return fs, c, reader, book
}

func newFileCatalog(t *testing.T, fs afero.Fs) *catalogImpl {
	t.Helper()
	logger := newTestLogger(t)
	return New(logger, repository.New(logger, fs), repository.NewTransactor(logger, fs))
}

func requireAvailabilityInvariant(t *testing.T, c *catalogImpl) {
	t.Helper()
	for _, book := range c.holdings.bookList() {
		holders := lo.Filter(c.Readers(), func(reader *entity.Reader, _ int) bool {
			return reader.Holds(book.Key())
		})
		require.LessOrEqual(t, len(holders), 1, "book %q held twice", book.Title())
		require.Equal(t, len(holders) == 0, book.Available(), "book %q", book.Title())
	}
}

func titles(books []*entity.Book) []string {
	return lo.Map(books, func(book *entity.Book, _ int) string {
		return book.Title()
	})
}

func names(readers []*entity.Reader) []string {
	return lo.Map(readers, func(reader *entity.Reader, _ int) string {
		return reader.Name()
	})
}
