package mpr

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arloliu/eikit/errs"
	"github.com/arloliu/eikit/format"
	"github.com/arloliu/eikit/res"
)

// Map is a fully assembled terrain map.
//
// Vertex grids are (SectorsX*32+1)×(SectorsY*32+1); tile grids are
// (SectorsX*16)×(SectorsY*16).
type Map struct {
	MaxZ          float32 // world height of the raw height 65535
	SectorsX      int
	SectorsY      int
	TexturesCount uint32
	TextureSize   uint32
	TileSize      uint32

	Materials []Material
	TileTypes []format.TileType
	AnimTiles []AnimTile

	LandVertices  *Grid[Vertex]
	WaterVertices *Grid[Vertex]
	LandTiles     *Grid[Tile]
	WaterTiles    *Grid[Tile]
	// WaterMaterials holds an index into Materials per tile, or NoWater.
	WaterMaterials *Grid[int32]
}

// NewMap creates a flat, dry map of sectorsX×sectorsY sectors.
func NewMap(sectorsX, sectorsY int) (*Map, error) {
	if sectorsX <= 0 || sectorsY <= 0 {
		return nil, fmt.Errorf("%dx%d sectors: %w", sectorsX, sectorsY, errs.ErrInvalidOperation)
	}

	m := &Map{SectorsX: sectorsX, SectorsY: sectorsY}
	m.allocGrids()

	return m, nil
}

// VertexSize returns the vertex grid dimensions.
func (m *Map) VertexSize() (width, height int) {
	return m.SectorsX*(SectorVertexSide-1) + 1, m.SectorsY*(SectorVertexSide-1) + 1
}

// TileGridSize returns the tile grid dimensions.
func (m *Map) TileGridSize() (width, height int) {
	return m.SectorsX * SectorTileSide, m.SectorsY * SectorTileSide
}

func (m *Map) allocGrids() {
	vw, vh := m.VertexSize()
	tw, th := m.TileGridSize()
	m.LandVertices = NewGrid[Vertex](vw, vh)
	m.WaterVertices = NewGrid[Vertex](vw, vh)
	m.WaterVertices.Fill(DryWaterVertex)
	m.LandTiles = NewGrid[Tile](tw, th)
	m.WaterTiles = NewGrid[Tile](tw, th)
	m.WaterMaterials = NewGrid[int32](tw, th)
	m.WaterMaterials.Fill(NoWater)
}

// checkGrids fails unless every grid matches the sector counts.
func (m *Map) checkGrids() error {
	if m.SectorsX <= 0 || m.SectorsY <= 0 {
		return fmt.Errorf("%dx%d sectors: %w", m.SectorsX, m.SectorsY, errs.ErrInvalidOperation)
	}

	vw, vh := m.VertexSize()
	tw, th := m.TileGridSize()
	checks := []error{
		m.LandVertices.checkSize("land vertex", vw, vh),
		m.WaterVertices.checkSize("water vertex", vw, vh),
		m.LandTiles.checkSize("land tile", tw, th),
		m.WaterTiles.checkSize("water tile", tw, th),
		m.WaterMaterials.checkSize("water material", tw, th),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}

	return nil
}

// ZoneName returns the zone base name of a map path: its file name without
// the extension.
func ZoneName(path string) string {
	base := filepath.Base(path)

	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Load reads the map archive at path. Entry names are derived from the file
// name without its extension.
func Load(path string) (*Map, error) {
	a, err := res.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %s: %w", path, stageOpen, err)
	}
	defer a.Close()

	return LoadFrom(a, ZoneName(path))
}

// LoadFrom assembles the map of zone from an open archive.
func LoadFrom(a *res.Archive, zone string) (*Map, error) {
	m := &Map{}
	if st, err := m.load(a, zone); err != nil {
		return nil, fmt.Errorf("load %s: %s: %w", zone, st, err)
	}

	return m, nil
}

func (m *Map) load(a *res.Archive, zone string) (stage, error) {
	data, err := readEntry(a, HeaderName(zone))
	if err != nil {
		return stageHeader, err
	}
	if st, err := m.decodeTables(data); err != nil {
		return st, err
	}

	// Every sector needs its own entry; this bounds the grid allocation by
	// the archive directory.
	if sectors := int64(m.SectorsX) * int64(m.SectorsY); sectors > int64(a.Directory().Len()-1) {
		return stageSectors, fmt.Errorf("%dx%d sectors in %d entries: %w",
			m.SectorsX, m.SectorsY, a.Directory().Len(), errs.ErrInvalidDimensions)
	}
	m.allocGrids()

	var s sector
	for y := 0; y < m.SectorsY; y++ {
		for x := 0; x < m.SectorsX; x++ {
			name := SectorName(zone, x, y)
			data, err := readEntry(a, name)
			if err != nil {
				return stageSectors, err
			}
			if err := s.decode(data); err != nil {
				return stageSectors, fmt.Errorf("sector %s: %w", name, err)
			}
			m.stitch(&s, x, y)
		}
	}

	return stageSectors, nil
}

func readEntry(a *res.Archive, name string) ([]byte, error) {
	data, err := a.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("entry %s: %w", name, err)
	}

	return data, nil
}

// stitch copies sector (x, y) into the global grids. Shared boundary
// vertices are overwritten by the later sector.
func (m *Map) stitch(s *sector, x, y int) {
	vx, vy := x*(SectorVertexSide-1), y*(SectorVertexSide-1)
	tx, ty := x*SectorTileSide, y*SectorTileSide
	materials := len(m.Materials)

	copyIn(m.LandVertices, vx, vy, SectorVertexSide, s.land[:], vertexFromRecord)
	copyIn(m.WaterVertices, vx, vy, SectorVertexSide, s.waterVerts[:], vertexFromRecord)
	copyIn(m.LandTiles, tx, ty, SectorTileSide, s.landTiles[:], DecodeTile)
	copyIn(m.WaterTiles, tx, ty, SectorTileSide, s.waterTiles[:], DecodeTile)
	copyIn(m.WaterMaterials, tx, ty, SectorTileSide, s.waterAllow[:], func(code uint16) int32 {
		if int(code) < materials {
			return int32(code)
		}

		return NoWater
	})
}

// slice fills s from the global grids at sector (x, y), packing every value.
func (m *Map) slice(s *sector, x, y int) error {
	vx, vy := x*(SectorVertexSide-1), y*(SectorVertexSide-1)
	tx, ty := x*SectorTileSide, y*SectorTileSide

	s.water = false
	err := copyOut(m.WaterMaterials, tx, ty, SectorTileSide, s.waterAllow[:], func(mat int32) (uint16, error) {
		switch {
		case mat == NoWater:
			return noWaterAllow, nil
		case mat < 0 || mat >= int32(noWaterAllow):
			return 0, fmt.Errorf("water material %d: %w", mat, errs.ErrValueOutOfRange)
		default:
			s.water = true
			return uint16(mat), nil
		}
	})
	if err != nil {
		return err
	}

	if err := copyOut(m.LandVertices, vx, vy, SectorVertexSide, s.land[:], Vertex.record); err != nil {
		return fmt.Errorf("land vertex: %w", err)
	}
	if err := copyOut(m.LandTiles, tx, ty, SectorTileSide, s.landTiles[:], Tile.Encode); err != nil {
		return fmt.Errorf("land tile: %w", err)
	}
	if !s.water {
		return nil
	}

	if err := copyOut(m.WaterVertices, vx, vy, SectorVertexSide, s.waterVerts[:], Vertex.record); err != nil {
		return fmt.Errorf("water vertex: %w", err)
	}
	if err := copyOut(m.WaterTiles, tx, ty, SectorTileSide, s.waterTiles[:], Tile.Encode); err != nil {
		return fmt.Errorf("water tile: %w", err)
	}

	return nil
}
