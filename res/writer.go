package res

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/arloliu/eikit/codec"
	"github.com/arloliu/eikit/errs"
	"github.com/arloliu/eikit/internal/collision"
)

var zeroPadding [Alignment]byte

// Writer builds an archive on a seekable stream.
//
// The Writer owns the stream until Close returns. It is not safe for concurrent use.
type Writer struct {
	stream  io.WriteSeeker
	start   int64
	entries []pendingEntry
	names   *collision.Tracker
	closed  bool
}

var _ io.WriteCloser = (*Writer)(nil)

// NewWriter writes a placeholder header at the current stream position and
// returns a Writer that appends entries after it.
func NewWriter(stream io.WriteSeeker) (*Writer, error) {
	if stream == nil {
		return nil, errs.ErrNilStream
	}

	start, err := stream.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("locate archive start: %w", err)
	}

	header := Header{Signature: Signature}
	if _, err := stream.Write(header.Bytes()); err != nil {
		return nil, fmt.Errorf("write placeholder header: %w", err)
	}

	return &Writer{
		stream: stream,
		start:  start,
		names:  collision.NewTracker(),
	}, nil
}

// AddEntry finalizes the previous entry and starts a new one named name at the
// next 16-byte boundary. Forward slashes in name are stored as backslashes.
//
// Names must be non-empty, free of reserved path characters, unique under ASCII
// case folding, representable in codepage 1251 and at most MaxNameLength bytes
// once encoded. modTime is stored with one-second resolution.
func (w *Writer) AddEntry(name string, modTime time.Time) error {
	if w.closed {
		return errs.ErrWriterClosed
	}
	if err := ValidateName(name); err != nil {
		return err
	}

	name = strings.ReplaceAll(name, "/", `\`)
	encoded, err := codec.Encode(name)
	if err != nil {
		return err
	}

	ts, err := Timestamp(modTime)
	if err != nil {
		return fmt.Errorf("entry %q timestamp %v: %w", name, modTime, err)
	}

	if w.names.Contains(name) {
		return fmt.Errorf("entry %q: %w", name, errs.ErrNameExists)
	}

	if err := w.completePrevious(); err != nil {
		return err
	}

	pos, err := w.stream.Seek(0, io.SeekCurrent)
	if err != nil {
		return err
	}

	if err := w.names.TrackName(name); err != nil {
		return err
	}
	w.entries = append(w.entries, pendingEntry{
		name:     name,
		encoded:  encoded,
		position: pos,
		modTime:  ts,
	})

	return nil
}

// Write appends p to the current entry.
func (w *Writer) Write(p []byte) (int, error) {
	if w.closed {
		return 0, errs.ErrWriterClosed
	}
	if len(w.entries) == 0 {
		return 0, errs.ErrNoEntry
	}

	return w.stream.Write(p)
}

// Len returns the number of entries added so far.
func (w *Writer) Len() int {
	return len(w.entries)
}

// Close finalizes the archive: it completes the last entry, appends the hash
// table and names buffer and rewrites the header. The stream is left positioned
// at the end of the archive and is not closed.
//
// Close is idempotent. An archive with no entries keeps its placeholder header,
// which reads back as an empty archive.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if len(w.entries) == 0 {
		return nil
	}

	if err := w.completePrevious(); err != nil {
		return err
	}

	tablePos, err := w.stream.Seek(0, io.SeekCurrent)
	if err != nil {
		return err
	}

	slots, names, err := buildHashTable(w.entries, w.start)
	if err != nil {
		return err
	}

	table := make([]byte, 0, len(slots)*SlotSize+len(names))
	for i := range slots {
		table, _ = codec.AppendRecord(table, &slots[i])
	}
	table = append(table, names...)
	if _, err := w.stream.Write(table); err != nil {
		return fmt.Errorf("write hash table: %w", err)
	}

	tableOffset := tablePos - w.start
	if tableOffset > int64(^uint32(0)) {
		return fmt.Errorf("table offset %d: %w", tableOffset, errs.ErrValueOutOfRange)
	}

	header := Header{
		Signature:   Signature,
		TableSize:   uint32(len(slots)),  //nolint: gosec
		TableOffset: uint32(tableOffset), //nolint: gosec
		NamesLength: uint32(len(names)),  //nolint: gosec
	}

	end, err := w.stream.Seek(0, io.SeekCurrent)
	if err != nil {
		return err
	}
	if _, err := w.stream.Seek(w.start, io.SeekStart); err != nil {
		return err
	}
	if _, err := w.stream.Write(header.Bytes()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	_, err = w.stream.Seek(end, io.SeekStart)

	return err
}

// completePrevious records the size of the last entry and pads the stream to
// the next alignment boundary with zero bytes.
func (w *Writer) completePrevious() error {
	if len(w.entries) == 0 {
		return nil
	}

	pos, err := w.stream.Seek(0, io.SeekCurrent)
	if err != nil {
		return err
	}

	last := &w.entries[len(w.entries)-1]
	last.size = pos - last.position

	pad := (Alignment - (pos-w.start)%Alignment) % Alignment
	if pad == 0 {
		return nil
	}
	_, err = w.stream.Write(zeroPadding[:pad])

	return err
}

// ValidateName checks that name is non-empty, free of reserved path characters
// (control characters and any of `"<>|`) and encodable in at most MaxNameLength
// codepage bytes.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("empty name: %w", errs.ErrInvalidName)
	}

	for _, r := range name {
		if r < 0x20 || strings.ContainsRune(`"<>|`, r) {
			return fmt.Errorf("name %q contains %q: %w", name, r, errs.ErrInvalidName)
		}
	}

	n, err := codec.EncodedLen(name)
	if err != nil {
		return err
	}
	if n > MaxNameLength {
		return fmt.Errorf("name of %d bytes: %w", n, errs.ErrNameTooLong)
	}

	return nil
}
