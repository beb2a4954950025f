package mpr

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/arloliu/eikit/errs"
	"github.com/arloliu/eikit/internal/options"
	"github.com/arloliu/eikit/internal/pool"
	"github.com/arloliu/eikit/res"
)

// SaveConfig configures Save and SaveTo.
type SaveConfig struct {
	zone    string
	modTime time.Time
}

// SaveOption is a functional option for Save and SaveTo.
type SaveOption = options.Option[*SaveConfig]

// WithZoneName sets the base name of the archive entries. Save defaults to
// the target file name without its extension; SaveTo requires it.
func WithZoneName(zone string) SaveOption {
	return options.New(func(c *SaveConfig) error {
		if zone == "" {
			return fmt.Errorf("empty zone name: %w", errs.ErrInvalidName)
		}
		c.zone = zone

		return nil
	})
}

// WithModTime sets the timestamp stored for every entry. Defaults to the
// time of the save.
func WithModTime(t time.Time) SaveOption {
	return options.NoError(func(c *SaveConfig) {
		c.modTime = t
	})
}

// Save writes m to a new archive at path.
//
// The archive is built in memory and written to a temporary file that
// replaces path only on success. On failure path is left untouched.
func (m *Map) Save(path string, opts ...SaveOption) (err error) {
	opts = append([]SaveOption{WithZoneName(ZoneName(path))}, opts...)

	buf := pool.GetArchiveBuffer()
	defer pool.PutArchiveBuffer(buf)

	if err := m.SaveTo(buf, opts...); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	if err := writeFileAtomic(path, buf); err != nil {
		return fmt.Errorf("save %s: %s: %w", path, stageCommit, err)
	}

	return nil
}

func writeFileAtomic(path string, src io.WriterTo) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, tmp.Close(), os.Remove(tmp.Name()))
		}
	}()

	if _, err := src.WriteTo(tmp); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}

// SaveTo writes m as an archive at the current position of w. Every value is
// encoded before the first byte is written, so an unencodable map leaves w
// untouched.
func (m *Map) SaveTo(w io.WriteSeeker, opts ...SaveOption) error {
	cfg := &SaveConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return err
	}
	if cfg.zone == "" {
		return fmt.Errorf("no zone name: %w", errs.ErrInvalidName)
	}
	if cfg.modTime.IsZero() {
		cfg.modTime = time.Now()
	}

	entries, staging, st, err := m.encode(cfg.zone)
	defer pool.PutArchiveBuffer(staging)
	if err != nil {
		return fmt.Errorf("%s: %s: %w", cfg.zone, st, err)
	}

	if err := writeArchive(w, entries, staging.Bytes(), cfg.modTime); err != nil {
		return fmt.Errorf("%s: %s: %w", cfg.zone, stageArchive, err)
	}

	return nil
}

// encodedEntry is one staged archive entry.
type encodedEntry struct {
	name       string
	start, end int
}

// encode stages the .mp entry followed by every sector, y outer and x inner,
// into one buffer.
func (m *Map) encode(zone string) ([]encodedEntry, *pool.ByteBuffer, stage, error) {
	staging := pool.GetArchiveBuffer()
	if err := m.checkGrids(); err != nil {
		return nil, staging, stageHeader, err
	}
	if err := res.ValidateName(HeaderName(zone)); err != nil {
		return nil, staging, stageHeader, err
	}

	entries := make([]encodedEntry, 0, 1+m.SectorsX*m.SectorsY)
	add := func(name string, fn func() error) error {
		start := staging.Len()
		if err := fn(); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		entries = append(entries, encodedEntry{name: name, start: start, end: staging.Len()})

		return nil
	}

	if err := add(HeaderName(zone), func() error { return m.encodeTables(staging) }); err != nil {
		return nil, staging, stageTables, err
	}

	staging.Grow(m.SectorsX * m.SectorsY * sectorSize(true))
	var s sector
	for y := 0; y < m.SectorsY; y++ {
		for x := 0; x < m.SectorsX; x++ {
			err := add(SectorName(zone, x, y), func() error {
				if err := m.slice(&s, x, y); err != nil {
					return err
				}

				return s.encode(staging)
			})
			if err != nil {
				return nil, staging, stageSectors, err
			}
		}
	}

	return entries, staging, stageSectors, nil
}

func writeArchive(w io.WriteSeeker, entries []encodedEntry, data []byte, modTime time.Time) (err error) {
	aw, err := res.NewWriter(w)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, aw.Close())
	}()

	for _, e := range entries {
		if err := aw.AddEntry(e.name, modTime); err != nil {
			return err
		}
		if _, err := aw.Write(data[e.start:e.end]); err != nil {
			return err
		}
	}

	return nil
}
