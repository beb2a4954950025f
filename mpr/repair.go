package mpr

import (
	"github.com/arloliu/eikit/format"
)

// TileTypeRepair reports what RepairTileTypes changed.
type TileTypeRepair struct {
	// BadIndices lists the tile-type table indices that held invalid types.
	BadIndices []int
	// Used is true when some land tile references one of BadIndices.
	Used bool
}

// Repaired reports whether any tile type was changed.
func (r TileTypeRepair) Repaired() bool {
	return len(r.BadIndices) > 0
}

// RepairTileTypes replaces every tile type outside the known range with
// format.TileRoad.
func (m *Map) RepairTileTypes() TileTypeRepair {
	var r TileTypeRepair
	bad := make(map[uint16]struct{})
	for i, t := range m.TileTypes {
		if t.Valid() {
			continue
		}
		m.TileTypes[i] = format.TileRoad
		r.BadIndices = append(r.BadIndices, i)
		if i <= MaxTileIndex {
			bad[uint16(i)] = struct{}{}
		}
	}
	if len(bad) == 0 || m.LandTiles == nil {
		return r
	}

	for _, t := range m.LandTiles.Cells {
		if _, ok := bad[t.Index]; ok {
			r.Used = true
			break
		}
	}

	return r
}
