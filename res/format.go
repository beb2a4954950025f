package res

import (
	"fmt"
	"time"

	"github.com/arloliu/eikit/codec"
	"github.com/arloliu/eikit/endian"
	"github.com/arloliu/eikit/errs"
)

var engine = endian.GetLittleEndianEngine()

const (
	// Signature identifies an archive header.
	Signature uint32 = 0x019CE23C

	// HeaderSize is the packed size of Header.
	HeaderSize = 16
	// SlotSize is the packed size of Slot.
	SlotSize = 22
	// Alignment is the boundary, measured from the header, every entry's data starts on.
	Alignment = 16
	// MaxNameLength is the longest encoded entry name a slot can describe.
	MaxNameLength = 0xFFFF

	// NoNext terminates a slot chain.
	NoNext uint32 = 0xFFFFFFFF
)

// Header is the fixed archive header.
type Header struct {
	Signature   uint32
	TableSize   uint32 // number of hash slots, equal to the entry count
	TableOffset uint32 // offset of the first slot
	NamesLength uint32 // byte length of the names buffer
}

// Parse parses the header from a byte slice of at least HeaderSize bytes.
func (h *Header) Parse(data []byte) error {
	if _, err := codec.Unmarshal(data, h); err != nil {
		return err
	}

	return h.validate()
}

func (h *Header) validate() error {
	if h.Signature != Signature {
		return fmt.Errorf("archive signature 0x%08X: %w", h.Signature, errs.ErrInvalidSignature)
	}

	return nil
}

// Bytes serializes the header.
func (h *Header) Bytes() []byte {
	b, _ := codec.Marshal(h)
	return b
}

// Slot is one hash table record.
type Slot struct {
	NextIndex     uint32 // next slot of the collision chain, or NoNext
	DataSize      uint32
	DataOffset    uint32
	LastWriteTime uint32 // Unix seconds
	NameLength    uint16
	NameOffset    uint32 // offset into the names buffer
}

// Parse parses the slot from a byte slice of at least SlotSize bytes.
func (s *Slot) Parse(data []byte) error {
	_, err := codec.Unmarshal(data, s)
	return err
}

// Bytes serializes the slot.
func (s *Slot) Bytes() []byte {
	b, _ := codec.Marshal(s)
	return b
}

// Entry describes one archived file.
type Entry struct {
	// Name uses backslash as the path separator.
	Name string
	// Position is the absolute stream position of the first data byte.
	Position int64
	Size     int64
	ModTime  time.Time
}

// Timestamp converts t to the on-disk Unix seconds, truncating sub-second precision.
// Times before 1970 or past 2106 are not representable.
func Timestamp(t time.Time) (uint32, error) {
	sec := t.Unix()
	if sec < 0 || sec > int64(^uint32(0)) {
		return 0, errs.ErrValueOutOfRange
	}

	return uint32(sec), nil
}

// ModTime converts on-disk Unix seconds to a UTC time.
func ModTime(ts uint32) time.Time {
	return time.Unix(int64(ts), 0).UTC()
}

// IsArchive reports whether b starts with the archive signature.
func IsArchive(b []byte) bool {
	return len(b) >= 4 && engine.Uint32(b) == Signature
}
