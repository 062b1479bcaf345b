package repository

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const (
	testDir  = "/data"
	testPath = testDir + "/catalog.json"
)

type errLayer uint

const (
	null errLayer = iota
	f
	commitTx
)

var errInternal = errors.New("internal error")

// renameFailFs fails every rename, which is how a staged file is committed.
type renameFailFs struct {
	afero.Fs
}

func (renameFailFs) Rename(_, _ string) error {
	return errInternal
}

func newTestFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(testDir, os.ModePerm))
	return fs
}

func dirEntries(t *testing.T, fs afero.Fs, dir string) []string {
	t.Helper()
	infos, err := afero.ReadDir(fs, dir)
	require.NoError(t, err)

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, filepath.Join(dir, info.Name()))
	}
	return names
}
