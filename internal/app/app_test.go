package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/project/catalog/internal/usecase/library"
	"github.com/project/catalog/internal/usecase/repository"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const catalogPath = "/data/library.json"

func newCatalog(fs afero.Fs) interface {
	library.BooksUseCase
	library.StorageUseCase
} {
	return library.New(nil, repository.New(nil, fs), repository.NewTransactor(nil, fs))
}

func TestAutoLoad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		books   int
	}{
		{name: "existing file",
			content: `{"books":[{"title":"Dune","author":"Frank Herbert","available":true}],"readers":[]}`,
			books:   1},
		{name: "missing file", books: 0},
		{name: "malformed file", content: `{"books":`, books: 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			fs := afero.NewMemMapFs()
			require.NoError(t, fs.MkdirAll("/data", os.ModePerm))
			if test.content != "" {
				require.NoError(t, afero.WriteFile(fs, catalogPath, []byte(test.content), 0o644))
			}

			catalog := newCatalog(fs)
			autoLoad(context.Background(), zap.NewNop(), fs, catalog, catalogPath)
			require.Len(t, catalog.AvailableBooks(), test.books)
		})
	}
}

func TestMetricsServer(t *testing.T) {
	t.Parallel()

	server := newMetricsServer("9090")
	require.Equal(t, ":9090", server.Addr)

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{name: "metrics", path: "/metrics", status: http.StatusOK},
		{name: "unknown route", path: "/books", status: http.StatusNotFound},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, test.path, nil))
			require.Equal(t, test.status, rec.Code)
		})
	}
}

func TestTracingGivesLogsTraceIDs(t *testing.T) {
	tp := setupTracing()
	t.Cleanup(func() {
		shutdownTracing(zap.NewNop(), tp)
	})

	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/data", os.ModePerm))
	catalog := library.New(logger, repository.New(nil, fs), repository.NewTransactor(nil, fs))
	require.NoError(t, catalog.Export(context.Background(), catalogPath, false, false))

	entries := logs.FilterField(zap.String("action", "ExportCatalog")).All()
	require.NotEmpty(t, entries)
	for _, entry := range entries {
		traceID, ok := entry.ContextMap()["trace_id"].(string)
		require.True(t, ok)
		id, err := trace.TraceIDFromHex(traceID)
		require.NoError(t, err)
		require.True(t, id.IsValid())
	}
}
