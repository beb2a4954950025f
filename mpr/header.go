package mpr

import (
	"fmt"
	"io"
	"math"

	"github.com/arloliu/eikit/codec"
	"github.com/arloliu/eikit/errs"
	"github.com/arloliu/eikit/format"
)

const (
	mpHeaderSize   = 38
	mpMaterialSize = 44
	tileTypeSize   = 4
	animTileSize   = 4
)

// decodeTables parses the .mp entry into m's scalar fields and tables.
// Grids are left untouched.
func (m *Map) decodeTables(data []byte) (stage, error) {
	var hdr mpHeader
	off, err := codec.Unmarshal(data, &hdr)
	if err != nil {
		return stageHeader, err
	}
	if hdr.Signature != MpSignature {
		return stageHeader, fmt.Errorf("map signature 0x%08X: %w", hdr.Signature, errs.ErrInvalidSignature)
	}
	if hdr.SectorsX == 0 || hdr.SectorsY == 0 {
		return stageHeader, fmt.Errorf("%dx%d sectors: %w", hdr.SectorsX, hdr.SectorsY, errs.ErrInvalidDimensions)
	}

	need := int64(hdr.MaterialsCount)*mpMaterialSize +
		int64(hdr.TilesCount)*tileTypeSize +
		int64(hdr.AnimTilesCount)*animTileSize
	if need > int64(len(data)-off) {
		return stageTables, fmt.Errorf("tables need %d bytes, have %d: %w", need, len(data)-off, errs.ErrSizeOverrun)
	}

	materials := make([]mpMaterial, hdr.MaterialsCount)
	tileTypes := make([]format.TileType, hdr.TilesCount)
	animTiles := make([]AnimTile, hdr.AnimTilesCount)
	for _, p := range []any{materials, tileTypes, animTiles} {
		if codec.RecordSize(p) == 0 {
			continue
		}
		n, err := codec.Unmarshal(data[off:], p)
		if err != nil {
			return stageTables, err
		}
		off += n
	}
	if off != len(data) {
		return stageTables, fmt.Errorf("map entry consumed %d of %d bytes: %w", off, len(data), errs.ErrSizeMismatch)
	}

	m.MaxZ = hdr.MaxZ
	m.SectorsX = int(hdr.SectorsX)
	m.SectorsY = int(hdr.SectorsY)
	m.TexturesCount = hdr.TexturesCount
	m.TextureSize = hdr.TextureSize
	m.TileSize = hdr.TileSize
	m.Materials = make([]Material, len(materials))
	for i, r := range materials {
		m.Materials[i] = materialFromRecord(r)
	}
	m.TileTypes = tileTypes
	m.AnimTiles = animTiles

	return stageTables, nil
}

// encodeTables writes the .mp entry of m to w.
func (m *Map) encodeTables(w io.Writer) error {
	if len(m.Materials) > math.MaxUint16 {
		return fmt.Errorf("%d materials: %w", len(m.Materials), errs.ErrValueOutOfRange)
	}
	if uint64(len(m.TileTypes)) > math.MaxUint32 || uint64(len(m.AnimTiles)) > math.MaxUint32 {
		return fmt.Errorf("table length: %w", errs.ErrValueOutOfRange)
	}

	hdr := mpHeader{
		Signature:      MpSignature,
		MaxZ:           m.MaxZ,
		SectorsX:       uint32(m.SectorsX),
		SectorsY:       uint32(m.SectorsY),
		TexturesCount:  m.TexturesCount,
		TextureSize:    m.TextureSize,
		TilesCount:     uint32(len(m.TileTypes)),
		TileSize:       m.TileSize,
		MaterialsCount: uint16(len(m.Materials)),
		AnimTilesCount: uint32(len(m.AnimTiles)),
	}
	if err := codec.WriteRecord(w, &hdr); err != nil {
		return err
	}

	materials := make([]mpMaterial, len(m.Materials))
	for i, mat := range m.Materials {
		materials[i] = mat.record()
	}
	for _, p := range []any{materials, m.TileTypes, m.AnimTiles} {
		if codec.RecordSize(p) == 0 {
			continue
		}
		if err := codec.WriteRecord(w, p); err != nil {
			return err
		}
	}

	return nil
}
