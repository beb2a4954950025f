package collision

import (
	"github.com/arloliu/eikit/codec"
	"github.com/arloliu/eikit/errs"
	"github.com/arloliu/eikit/internal/hash"
)

// Tracker detects duplicate archive entry names under the case-insensitive
// name policy. Names are bucketed by their folded xxHash64; hash collisions
// between different names are resolved by full comparison.
type Tracker struct {
	names map[uint64][]string // ID → names sharing that ID
}

// NewTracker creates a new name tracker.
func NewTracker() *Tracker {
	return &Tracker{names: make(map[uint64][]string)}
}

// TrackName records name and returns errs.ErrNameExists if an equal name
// (ASCII case-insensitive) was already tracked.
func (t *Tracker) TrackName(name string) error {
	if t.Contains(name) {
		return errs.ErrNameExists
	}

	id := hash.NameID(name)
	t.names[id] = append(t.names[id], name)

	return nil
}

// Contains reports whether an equal name was tracked.
func (t *Tracker) Contains(name string) bool {
	for _, existing := range t.names[hash.NameID(name)] {
		if codec.EqualFold(existing, name) {
			return true
		}
	}

	return false
}
