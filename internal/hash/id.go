package hash

import (
	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/eikit/codec"
)

// NameID computes the xxHash64 of an archive entry name after ASCII case folding,
// so names that compare equal under codec.EqualFold share an ID.
func NameID(name string) uint64 {
	return xxhash.Sum64String(codec.FoldASCII(name))
}
