package res

import (
	"fmt"
	"math"

	"github.com/arloliu/eikit/codec"
	"github.com/arloliu/eikit/errs"
)

// pendingEntry is an entry recorded by the Writer, awaiting finalization.
type pendingEntry struct {
	name     string
	encoded  []byte // codepage 1251 name
	position int64  // absolute stream position
	size     int64
	modTime  uint32
}

// placeSlots assigns every hash to a table slot of a table with len(hashes) slots.
//
// A hash whose primary slot is taken is appended to the chain through that slot,
// using the highest-indexed free slot. It returns the slot of each hash and the
// next links of the table.
func placeSlots(hashes []uint32) (slotOf []uint32, next []uint32) {
	n := uint32(len(hashes)) //nolint: gosec
	slotOf = make([]uint32, n)
	next = make([]uint32, n)
	used := make([]bool, n)
	for i := range next {
		next[i] = NoNext
	}

	lastFree := int64(n) - 1
	for i, h := range hashes {
		index := h % n
		if used[index] {
			for next[index] != NoNext {
				index = next[index]
			}
			for used[lastFree] {
				lastFree--
			}

			next[index] = uint32(lastFree) //nolint: gosec
			index = uint32(lastFree)       //nolint: gosec
			lastFree--
		}

		used[index] = true
		slotOf[i] = index
	}

	return slotOf, next
}

// buildHashTable lays out the slots and names buffer for entries written after
// a header at position start.
func buildHashTable(entries []pendingEntry, start int64) ([]Slot, []byte, error) {
	size := uint32(len(entries)) //nolint: gosec

	hashes := make([]uint32, len(entries))
	for i := range entries {
		h, err := codec.Hash32(entries[i].name, size)
		if err != nil {
			return nil, nil, err
		}
		hashes[i] = h
	}

	slotOf, next := placeSlots(hashes)

	slots := make([]Slot, size)
	names := make([]byte, 0, 16*len(entries))
	for i := range entries {
		e := &entries[i]

		offset := e.position - start
		if offset < 0 || offset > math.MaxUint32 || e.size > math.MaxUint32 {
			return nil, nil, fmt.Errorf("entry %q at offset %d: %w", e.name, offset, errs.ErrValueOutOfRange)
		}
		if uint64(len(names)) > math.MaxUint32 {
			return nil, nil, fmt.Errorf("names buffer: %w", errs.ErrValueOutOfRange)
		}

		slots[slotOf[i]] = Slot{
			NextIndex:     NoNext,
			DataSize:      uint32(e.size), //nolint: gosec
			DataOffset:    uint32(offset), //nolint: gosec
			LastWriteTime: e.modTime,
			NameLength:    uint16(len(e.encoded)), //nolint: gosec
			NameOffset:    uint32(len(names)),     //nolint: gosec
		}
		names = append(names, e.encoded...)
	}

	for i := range slots {
		slots[i].NextIndex = next[i]
	}

	return slots, names, nil
}
