package mpr

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/eikit/format"
	"github.com/arloliu/eikit/internal/pool"
	"github.com/arloliu/eikit/res"
)

// sampleMap builds a 2×2 map with distinct vertices and tiles everywhere and
// water in sector (1, 1) only.
func sampleMap(t *testing.T) *Map {
	t.Helper()

	m, err := NewMap(2, 2)
	require.NoError(t, err)

	m.MaxZ = 120
	m.TexturesCount = 4
	m.TextureSize = 256
	m.TileSize = 64
	m.Materials = []Material{
		{Type: format.MaterialTerrain, R: 1, G: 1, B: 1, A: 1},
		{Type: format.MaterialWater, R: 0.1, G: 0.3, B: 0.8, A: 0.5, WaveMultiplier: 2, WarpSpeed: 0.5},
	}
	m.TileTypes = []format.TileType{format.TileGrass, format.TileSand, format.TileWater, format.TileRock}
	m.AnimTiles = []AnimTile{{TileIndex: 2, PhasesCount: 1}}

	for y := 0; y < m.LandVertices.Height; y++ {
		for x := 0; x < m.LandVertices.Width; x++ {
			m.LandVertices.Set(x, y, Vertex{
				OffsetX: int8(x % 7),
				OffsetY: -int8(y % 5),
				Z:       uint16(x*100 + y),
				Normal:  UnpackNormal(uint32(900+x)<<normalZShift | uint32(1000+y)<<normalXShift | uint32(1000-x)),
			})
		}
	}
	for y := 0; y < m.LandTiles.Height; y++ {
		for x := 0; x < m.LandTiles.Width; x++ {
			m.LandTiles.Set(x, y, Tile{Index: uint16((x + y) % 4), Rotation: uint8(x % 4)})
		}
	}
	for y := 16; y < 32; y++ {
		for x := 16; x < 32; x++ {
			m.WaterTiles.Set(x, y, Tile{Index: 2, Rotation: 1})
			m.WaterMaterials.Set(x, y, 1)
		}
	}
	for y := 32; y < 65; y++ {
		for x := 32; x < 65; x++ {
			m.WaterVertices.Set(x, y, Vertex{Z: 5000, Normal: Normal{Z: 1}})
		}
	}

	return m
}

// saveMap writes m into dir as name and returns the path.
func saveMap(t *testing.T, m *Map, dir, name string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, m.Save(path, WithModTime(time.Unix(1_000_000, 0))))

	return path
}

type rawEntry struct {
	name string
	data []byte
}

// buildArchive writes entries into an in-memory archive.
func buildArchive(t *testing.T, entries ...rawEntry) *res.Archive {
	t.Helper()

	buf := pool.NewByteBuffer(0)
	w, err := res.NewWriter(buf)
	require.NoError(t, err)
	for _, e := range entries {
		require.NoError(t, w.AddEntry(e.name, time.Unix(1, 0)))
		_, err := w.Write(e.data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	a, err := res.NewArchive(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	return a
}

// encodeSector encodes a sector with the given water flag and zero content.
func encodeSector(t *testing.T, water bool) []byte {
	t.Helper()

	s := sector{water: water}
	var b bytes.Buffer
	require.NoError(t, s.encode(&b))

	return b.Bytes()
}

// encodeTables encodes the .mp entry of m.
func encodeTables(t *testing.T, m *Map) []byte {
	t.Helper()

	var b bytes.Buffer
	require.NoError(t, m.encodeTables(&b))

	return b.Bytes()
}
