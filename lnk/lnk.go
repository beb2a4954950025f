// Package lnk reads and writes link tables: flat lists of child/parent name
// pairs.
//
// Layout, little-endian:
//
//	count u32
//	count × { childLen i32, child [childLen]byte, parentLen i32, parent [parentLen]byte }
//
// Names are codepage 1251. A non-empty name is stored with one trailing NUL,
// counted in its length; an empty name is stored as length 0.
package lnk

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/arloliu/eikit/codec"
	"github.com/arloliu/eikit/endian"
	"github.com/arloliu/eikit/errs"
	"github.com/arloliu/eikit/internal/pool"
)

var engine = endian.GetLittleEndianEngine()

// Record links a child name to its parent name.
type Record struct {
	Child  string
	Parent string
}

// File is a link table.
type File struct {
	Records []Record
}

// Load reads the link table at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	return f, nil
}

// Read reads a whole link table from r.
func Read(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

// Parse decodes a link table. One trailing NUL is trimmed from every name.
func Parse(data []byte) (*File, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("record count: %w", errs.ErrTruncated)
	}
	count := engine.Uint32(data)
	data = data[4:]

	// every record takes at least two length fields
	if uint64(count)*8 > uint64(len(data)) {
		return nil, fmt.Errorf("%d records in %d bytes: %w", count, len(data), errs.ErrSizeOverrun)
	}

	f := &File{Records: make([]Record, 0, count)}
	for i := uint32(0); i < count; i++ {
		var rec Record
		var err error
		if rec.Child, data, err = readName(data); err != nil {
			return nil, fmt.Errorf("record %d child: %w", i, err)
		}
		if rec.Parent, data, err = readName(data); err != nil {
			return nil, fmt.Errorf("record %d parent: %w", i, err)
		}
		f.Records = append(f.Records, rec)
	}
	if len(data) != 0 {
		return nil, fmt.Errorf("%d bytes after last record: %w", len(data), errs.ErrTrailingBytes)
	}

	return f, nil
}

func readName(data []byte) (string, []byte, error) {
	if len(data) < 4 {
		return "", nil, errs.ErrTruncated
	}
	n := int32(engine.Uint32(data)) //nolint: gosec
	data = data[4:]
	if n < 0 || int64(n) > int64(len(data)) {
		return "", nil, fmt.Errorf("name length %d: %w", n, errs.ErrSizeOverrun)
	}

	raw := data[:n]
	if len(raw) > 0 && raw[len(raw)-1] == 0 {
		raw = raw[:len(raw)-1]
	}

	return codec.Decode(raw), data[n:], nil
}

// Bytes encodes the table.
func (f *File) Bytes() ([]byte, error) {
	return f.appendTo(nil)
}

// WriteTo encodes the table to w. Every name is encoded before anything is
// written.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	buf := pool.GetRecordBuffer()
	defer pool.PutRecordBuffer(buf)

	var err error
	if buf.B, err = f.appendTo(buf.B[:0]); err != nil {
		return 0, err
	}
	n, err := w.Write(buf.B)

	return int64(n), err
}

func (f *File) appendTo(out []byte) ([]byte, error) {
	if uint64(len(f.Records)) > math.MaxUint32 {
		return nil, fmt.Errorf("%d records: %w", len(f.Records), errs.ErrValueOutOfRange)
	}

	out = engine.AppendUint32(out, uint32(len(f.Records)))
	for i, rec := range f.Records {
		var err error
		if out, err = appendName(out, rec.Child); err != nil {
			return nil, fmt.Errorf("record %d child: %w", i, err)
		}
		if out, err = appendName(out, rec.Parent); err != nil {
			return nil, fmt.Errorf("record %d parent: %w", i, err)
		}
	}

	return out, nil
}

func appendName(out []byte, name string) ([]byte, error) {
	if name == "" {
		return engine.AppendUint32(out, 0), nil
	}

	b, err := codec.Encode(name)
	if err != nil {
		return out, err
	}
	if len(b) >= math.MaxInt32 {
		return out, fmt.Errorf("name of %d bytes: %w", len(b), errs.ErrValueOutOfRange)
	}

	out = engine.AppendUint32(out, uint32(len(b)+1)) //nolint: gosec
	out = append(out, b...)

	return append(out, 0), nil
}

// Save writes the table to path.
func (f *File) Save(path string) error {
	data, err := f.Bytes()
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	return os.WriteFile(path, data, 0o644) //nolint: gosec
}
