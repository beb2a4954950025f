package mpr

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/eikit/format"
)

func TestRepairTileTypes_UsedBadType(t *testing.T) {
	m := sampleMap(t)
	m.TileTypes = []format.TileType{format.TileGrass, 16, format.TileWater, format.TileHighrock}

	r := m.RepairTileTypes()
	require.True(t, r.Repaired())
	require.Equal(t, []int{1}, r.BadIndices)
	require.True(t, r.Used)
	require.Equal(t, []format.TileType{format.TileGrass, format.TileRoad, format.TileWater, format.TileHighrock}, m.TileTypes)

	path := saveMap(t, m, t.TempDir(), "fixed.mpr")
	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, m.TileTypes, got.TileTypes)
}

func TestRepairTileTypes_UnusedBadType(t *testing.T) {
	m := sampleMap(t)
	m.TileTypes = append(m.TileTypes, 99, 0xFFFFFFFF)

	r := m.RepairTileTypes()
	require.Equal(t, []int{4, 5}, r.BadIndices)
	require.False(t, r.Used)
	require.Equal(t, format.TileRoad, m.TileTypes[4])
	require.Equal(t, format.TileRoad, m.TileTypes[5])
}

func TestRepairTileTypes_Clean(t *testing.T) {
	m := sampleMap(t)
	before := append([]format.TileType(nil), m.TileTypes...)

	r := m.RepairTileTypes()
	require.False(t, r.Repaired())
	require.False(t, r.Used)
	require.Equal(t, before, m.TileTypes)
}
