package mpr

import (
	"fmt"

	"github.com/arloliu/eikit/errs"
)

const (
	// MaxTileIndex is the largest encodable tile index.
	MaxTileIndex = 0x3FFF
	// MaxTileRotation is the largest encodable rotation, in quarter turns.
	MaxTileRotation = 3

	tileRotationShift = 14
)

// Tile references a texture tile with a rotation in quarter turns.
type Tile struct {
	Index    uint16
	Rotation uint8
}

// DecodeTile splits a tile code into its 14-bit index and 2-bit rotation.
func DecodeTile(code uint16) Tile {
	return Tile{
		Index:    code & MaxTileIndex,
		Rotation: uint8(code >> tileRotationShift),
	}
}

// Encode packs t into a tile code.
func (t Tile) Encode() (uint16, error) {
	if t.Index > MaxTileIndex || t.Rotation > MaxTileRotation {
		return 0, fmt.Errorf("tile index %d rotation %d: %w", t.Index, t.Rotation, errs.ErrTileOutOfRange)
	}

	return uint16(t.Rotation)<<tileRotationShift | t.Index, nil
}
