package mpr

import "github.com/arloliu/eikit/format"

const (
	// MpSignature identifies the global .mp entry.
	MpSignature uint32 = 0xce4af672
	// SecSignature identifies a .sec sector entry.
	SecSignature uint32 = 0xcf4bf774

	// SectorVertexSide is the number of vertices along a sector edge.
	SectorVertexSide = 33
	// SectorVertexCount is the number of vertices of one sector layer.
	SectorVertexCount = SectorVertexSide * SectorVertexSide
	// SectorTileSide is the number of tiles along a sector edge.
	SectorTileSide = 16
	// SectorTileCount is the number of tiles of one sector layer.
	SectorTileCount = SectorTileSide * SectorTileSide

	// SectorTypeWater marks a sector that stores a water layer.
	SectorTypeWater uint8 = 3
	// SectorTypeLand marks a sector without a water layer.
	SectorTypeLand uint8 = 0

	// NoWater is the water material of a cell without water.
	NoWater = -1

	noWaterAllow uint16 = 0xFFFF
)

// mpHeader is the packed header of the .mp entry.
type mpHeader struct {
	Signature      uint32
	MaxZ           float32
	SectorsX       uint32
	SectorsY       uint32
	TexturesCount  uint32
	TextureSize    uint32
	TilesCount     uint32
	TileSize       uint32
	MaterialsCount uint16
	AnimTilesCount uint32
}

// mpMaterial is the packed material record.
type mpMaterial struct {
	Type           format.MaterialType
	R, G, B, A     float32
	SelfIllum      float32
	WaveMultiplier float32
	WarpSpeed      float32
	Reserved       [3]float32
}

// secHeader is the packed header of a .sec entry.
type secHeader struct {
	Signature uint32
	Type      uint8
}

// secVertex is the packed vertex record.
type secVertex struct {
	OffsetX      int8
	OffsetY      int8
	Z            uint16
	PackedNormal uint32
}

// Material describes how a terrain or water surface is drawn.
type Material struct {
	Type           format.MaterialType
	R, G, B, A     float32 // diffuse colour
	SelfIllum      float32
	WaveMultiplier float32
	WarpSpeed      float32
}

func (m Material) record() mpMaterial {
	return mpMaterial{
		Type:           m.Type,
		R:              m.R,
		G:              m.G,
		B:              m.B,
		A:              m.A,
		SelfIllum:      m.SelfIllum,
		WaveMultiplier: m.WaveMultiplier,
		WarpSpeed:      m.WarpSpeed,
	}
}

func materialFromRecord(r mpMaterial) Material {
	return Material{
		Type:           r.Type,
		R:              r.R,
		G:              r.G,
		B:              r.B,
		A:              r.A,
		SelfIllum:      r.SelfIllum,
		WaveMultiplier: r.WaveMultiplier,
		WarpSpeed:      r.WarpSpeed,
	}
}

// AnimTile is an animated tile: PhasesCount consecutive tile-type entries
// starting at TileIndex.
type AnimTile struct {
	TileIndex   uint16
	PhasesCount uint16
}
