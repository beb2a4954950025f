// Package mpr loads and saves .mpr terrain maps.
//
// A map is an archive (see package res) holding one global "<zone>.mp" entry
// with the header, material, tile-type and animated-tile tables, plus one
// "<zone><x:03><y:03>.sec" entry per sector. Each sector stores a 33×33 vertex
// patch and a 16×16 tile patch:
//
//	sector (x, y) vertices → global columns 32x..32x+32, rows 32y..32y+32
//	sector (x, y) tiles    → global columns 16x..16x+15, rows 16y..16y+15
//
// Adjacent sectors share their boundary vertex row or column. Load assembles
// the sectors into five global grids; Save slices them back.
//
// Encodable domains on save:
//   - Normal components: X and Y in [-1, 1], Z in [0, 1]
//   - Tile index: 0..0x3FFF, rotation: 0..3
//   - Water material: -1 (no water) up to 0xFFFE
//
// A value outside its domain fails the save before anything is written.
package mpr
