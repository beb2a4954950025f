package res

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/arloliu/eikit/errs"
)

// ReadSeekerAt is a stream an Archive can both index and read entries from.
type ReadSeekerAt interface {
	io.ReadSeeker
	io.ReaderAt
}

// Archive provides random access to the entries of an archive.
//
// Entry readers use ReadAt, so several entries may be read concurrently when
// the underlying stream supports it.
type Archive struct {
	r      io.ReaderAt
	closer io.Closer
	dir    *Directory
}

// NewArchive indexes the archive at the current position of r.
func NewArchive(r ReadSeekerAt) (*Archive, error) {
	dir, err := ListEntries(r)
	if err != nil {
		return nil, err
	}

	return &Archive{r: r, dir: dir}, nil
}

// Open opens the archive file at path. The caller must Close it.
func Open(path string) (*Archive, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	a, err := NewArchive(f)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("open archive %s: %w", path, err), f.Close())
	}
	a.closer = f

	return a, nil
}

// Close releases the file opened by Open. It is a no-op for archives created by NewArchive.
func (a *Archive) Close() error {
	if a.closer == nil {
		return nil
	}
	err := a.closer.Close()
	a.closer = nil

	return err
}

// Directory returns the entry table.
func (a *Archive) Directory() *Directory {
	return a.dir
}

// Lookup finds the entry named name.
func (a *Archive) Lookup(name string) (Entry, bool) {
	return a.dir.Lookup(name)
}

// OpenEntry returns a reader over the data of the entry named name.
func (a *Archive) OpenEntry(name string) (*io.SectionReader, error) {
	e, ok := a.dir.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("entry %q: %w", name, errs.ErrEntryNotFound)
	}

	return io.NewSectionReader(a.r, e.Position, e.Size), nil
}

// ReadFile returns the data of the entry named name.
func (a *Archive) ReadFile(name string) ([]byte, error) {
	e, ok := a.dir.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("entry %q: %w", name, errs.ErrEntryNotFound)
	}

	data := make([]byte, e.Size)
	if e.Size == 0 {
		return data, nil
	}
	if n, err := a.r.ReadAt(data, e.Position); err != nil && (n < len(data) || !errors.Is(err, io.EOF)) {
		return nil, fmt.Errorf("read entry %q: %w", name, truncated(err))
	}

	return data, nil
}
