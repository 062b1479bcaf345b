package controller

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/project/catalog/internal/controller/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const defaultFile = "library.json"

var (
	errInternal = errors.New("internal error")
	tooLongName = strings.Repeat("Too long name", 40)
)

type shellMocks struct {
	books   *mocks.MockBooksUseCase
	readers *mocks.MockReadersUseCase
	storage *mocks.MockStorageUseCase
}

func initShellTest(t *testing.T) (*shellMocks, *implementation) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &shellMocks{
		books:   mocks.NewMockBooksUseCase(ctrl),
		readers: mocks.NewMockReadersUseCase(ctrl),
		storage: mocks.NewMockStorageUseCase(ctrl),
	}
	logger, err := zap.NewProduction()
	if err != nil {
		t.Fatal("assertion error: " + err.Error())
	}
	service := New(logger, m.books, m.readers, m.storage, defaultFile)
	return m, service
}

// runShell feeds lines to the shell and returns everything it printed.
func runShell(t *testing.T, service *implementation, lines ...string) string {
	t.Helper()
	in := strings.NewReader(strings.Join(lines, "\n"))
	out := &bytes.Buffer{}
	require.NoError(t, service.Run(context.Background(), in, out))
	return out.String()
}
