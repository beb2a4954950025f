package res

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/eikit/errs"
)

func TestArchive_ReadEntries(t *testing.T) {
	a, err := NewArchive(bytes.NewReader(sampleArchive(t)))
	require.NoError(t, err)
	defer a.Close()

	data, err := a.ReadFile("A.TXT")
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, data)

	r, err := a.OpenEntry("sub/b.bin")
	require.NoError(t, err)
	data, err = io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, bytes.Repeat([]byte{7}, 40), data)

	e, ok := a.Lookup(`sub\b.bin`)
	require.True(t, ok)
	require.Equal(t, time.Unix(20, 0).UTC(), e.ModTime)
	require.Equal(t, 2, a.Directory().Len())
}

func TestArchive_FileBacked(t *testing.T) {
	f := newFileBuffer(t)
	writeArchive(t, f, []testFile{
		{name: "full.bin", data: []byte("content"), modTime: time.Unix(30, 0)},
		{name: "empty.bin", modTime: time.Unix(40, 0)},
	})
	require.NoError(t, f.Close())

	a, err := Open(f.Name())
	require.NoError(t, err)
	defer a.Close()

	data, err := a.ReadFile("empty.bin")
	require.NoError(t, err)
	require.Empty(t, data)

	data, err = a.ReadFile("FULL.bin")
	require.NoError(t, err)
	require.Equal(t, "content", string(data))
}

func TestArchive_Missing(t *testing.T) {
	a, err := NewArchive(bytes.NewReader(sampleArchive(t)))
	require.NoError(t, err)

	_, err = a.ReadFile("nope")
	require.ErrorIs(t, err, errs.ErrEntryNotFound)
	require.ErrorIs(t, err, errs.ErrCorruptData)

	_, err = a.OpenEntry("nope")
	require.ErrorIs(t, err, errs.ErrEntryNotFound)
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.res")
	require.NoError(t, os.WriteFile(path, sampleArchive(t), 0o600))

	a, err := Open(path)
	require.NoError(t, err)

	data, err := a.ReadFile("a.txt")
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, data)

	require.NoError(t, a.Close())
	require.NoError(t, a.Close())
}

func TestOpen_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.res")
	require.NoError(t, os.WriteFile(path, []byte("definitely not an archive"), 0o600))

	_, err := Open(path)
	require.ErrorIs(t, err, errs.ErrInvalidSignature)

	_, err = Open(filepath.Join(t.TempDir(), "missing.res"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func newFileBuffer(t *testing.T) *os.File {
	t.Helper()

	f, err := os.Create(filepath.Join(t.TempDir(), "tmp.res"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	return f
}
