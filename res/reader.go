package res

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/arloliu/eikit/codec"
	"github.com/arloliu/eikit/errs"
	"github.com/arloliu/eikit/internal/collision"
	"github.com/arloliu/eikit/internal/hash"
)

// Directory is the decoded entry table of an archive.
//
// Lookups compare names case-insensitively for ASCII letters. A Directory is
// immutable and safe for concurrent reads.
type Directory struct {
	entries []Entry          // slot order
	index   map[uint64][]int // NameID → positions in entries
}

func newDirectory(capacity int) *Directory {
	return &Directory{
		entries: make([]Entry, 0, capacity),
		index:   make(map[uint64][]int, capacity),
	}
}

func (d *Directory) add(e Entry) {
	id := hash.NameID(e.Name)
	d.index[id] = append(d.index[id], len(d.entries))
	d.entries = append(d.entries, e)
}

// Len returns the number of entries.
func (d *Directory) Len() int {
	return len(d.entries)
}

// Entries returns all entries in table order.
func (d *Directory) Entries() []Entry {
	return d.entries
}

// Names returns the entry names sorted by their folded form.
func (d *Directory) Names() []string {
	names := make([]string, len(d.entries))
	for i := range d.entries {
		names[i] = d.entries[i].Name
	}
	sort.Slice(names, func(i, j int) bool {
		return codec.FoldASCII(names[i]) < codec.FoldASCII(names[j])
	})

	return names
}

// Lookup finds the entry named name. Forward slashes match stored backslashes.
func (d *Directory) Lookup(name string) (Entry, bool) {
	name = strings.ReplaceAll(name, "/", `\`)
	for _, i := range d.index[hash.NameID(name)] {
		if codec.EqualFold(d.entries[i].Name, name) {
			return d.entries[i], true
		}
	}

	return Entry{}, false
}

// ListEntries reads the archive starting at the current position of r and
// returns its directory. Entry positions are absolute positions in r.
//
// The stream is rejected with errs.ErrCorruptData on a bad signature, a table
// or names buffer that does not fit the stream, an entry range exceeding the
// stream length or duplicate names.
func ListEntries(r io.ReadSeeker) (*Directory, error) {
	if r == nil {
		return nil, errs.ErrNilStream
	}

	start, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, err
	}
	length, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, err
	}
	if _, err := r.Seek(start, io.SeekStart); err != nil {
		return nil, err
	}
	available := length - start

	var header Header
	if err := codec.ReadRecord(r, &header); err != nil {
		return nil, fmt.Errorf("read archive header: %w", err)
	}
	if err := header.validate(); err != nil {
		return nil, err
	}

	tableBytes := int64(header.TableSize)*SlotSize + int64(header.NamesLength)
	if int64(header.TableOffset)+tableBytes > available {
		return nil, fmt.Errorf("hash table of %d slots at %d: %w", header.TableSize, header.TableOffset, errs.ErrSizeOverrun)
	}

	if _, err := r.Seek(start+int64(header.TableOffset), io.SeekStart); err != nil {
		return nil, err
	}
	table := make([]byte, tableBytes)
	if _, err := io.ReadFull(r, table); err != nil {
		return nil, fmt.Errorf("read hash table: %w", truncated(err))
	}
	names := table[int64(header.TableSize)*SlotSize:]

	dir := newDirectory(int(header.TableSize))
	tracker := collision.NewTracker()
	for i := range int(header.TableSize) {
		var slot Slot
		if err := slot.Parse(table[i*SlotSize:]); err != nil {
			return nil, err
		}

		nameEnd := uint64(slot.NameOffset) + uint64(slot.NameLength)
		if nameEnd > uint64(len(names)) {
			return nil, fmt.Errorf("slot %d name range: %w", i, errs.ErrSizeOverrun)
		}
		if int64(slot.DataOffset)+int64(slot.DataSize) > available {
			return nil, fmt.Errorf("slot %d data range [%d, +%d): %w", i, slot.DataOffset, slot.DataSize, errs.ErrSizeOverrun)
		}

		name := codec.Decode(names[slot.NameOffset:nameEnd])
		if err := tracker.TrackName(name); err != nil {
			return nil, fmt.Errorf("entry %q: %w", name, errs.ErrDuplicateEntry)
		}

		dir.add(Entry{
			Name:     name,
			Position: start + int64(slot.DataOffset),
			Size:     int64(slot.DataSize),
			ModTime:  ModTime(slot.LastWriteTime),
		})
	}

	return dir, nil
}

func truncated(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return errs.ErrTruncated
	}

	return err
}
