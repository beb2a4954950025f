// Package format declares the enumerations shared by the eikit codecs.
package format

import "fmt"

type (
	SectionType     uint8
	TileType        uint32
	MaterialType    uint32
	CompressionType uint8
)

// Section types. Record sections hold child sections; every other type is a leaf.
const (
	SectionUnknown SectionType = iota
	SectionNull
	SectionRecord
	SectionByte
	SectionDword
	SectionFloat
	SectionString
	SectionStringArray
	SectionPlot

	// Opaque structures, passed through as bytes.
	SectionAiGraph
	SectionStringEncrypted
	SectionDiplomacy
	SectionLeverStats
	SectionPlot2DArray
	SectionAreaArray
	SectionQuaternion
	SectionUnitStats
	SectionRectangle
)

var sectionTypeNames = [...]string{
	SectionUnknown:         "Unknown",
	SectionNull:            "Null",
	SectionRecord:          "Record",
	SectionByte:            "Byte",
	SectionDword:           "Dword",
	SectionFloat:           "Float",
	SectionString:          "String",
	SectionStringArray:     "StringArray",
	SectionPlot:            "Plot",
	SectionAiGraph:         "AiGraph",
	SectionStringEncrypted: "StringEncrypted",
	SectionDiplomacy:       "Diplomacy",
	SectionLeverStats:      "LeverStats",
	SectionPlot2DArray:     "Plot2DArray",
	SectionAreaArray:       "AreaArray",
	SectionQuaternion:      "Quaternion",
	SectionUnitStats:       "UnitStats",
	SectionRectangle:       "Rectangle",
}

func (t SectionType) String() string {
	if int(t) < len(sectionTypeNames) {
		return sectionTypeNames[t]
	}

	return "Unknown"
}

// FixedSize returns the payload size of fixed-size leaf types, or 0 for variable-size ones.
func (t SectionType) FixedSize() int {
	switch t {
	case SectionByte:
		return 1
	case SectionDword, SectionFloat:
		return 4
	case SectionPlot:
		return 12
	case SectionQuaternion:
		return 16
	default:
		return 0
	}
}

// Tile types stored in the terrain tile-type table.
const (
	TileGrass     TileType = 0
	TileGround    TileType = 1
	TileStone     TileType = 2
	TileSand      TileType = 3
	TileRock      TileType = 4
	TileField     TileType = 5
	TileWater     TileType = 6
	TileRoad      TileType = 7
	TileUndefined TileType = 8
	TileSnow      TileType = 9
	TileIce       TileType = 10
	TileDrygrass  TileType = 11
	TileSnowballs TileType = 12
	TileLava      TileType = 13
	TileSwamp     TileType = 14
	TileHighrock  TileType = 15
	// TileLast is the exclusive upper bound of valid tile types.
	TileLast TileType = 16
)

var tileTypeNames = [...]string{
	"Grass", "Ground", "Stone", "Sand", "Rock", "Field", "Water", "Road",
	"Undefined", "Snow", "Ice", "Drygrass", "Snowballs", "Lava", "Swamp", "Highrock",
}

// Valid reports whether t is a known tile type.
func (t TileType) Valid() bool {
	return t < TileLast
}

func (t TileType) String() string {
	if t.Valid() {
		return tileTypeNames[t]
	}

	return fmt.Sprintf("TileType(%d)", uint32(t))
}

// Material types of terrain materials.
const (
	MaterialUndefined           MaterialType = 0
	MaterialTerrain             MaterialType = 1
	MaterialWaterWithoutTexture MaterialType = 2
	MaterialWater               MaterialType = 3
	MaterialGrass               MaterialType = 4
)

func (m MaterialType) String() string {
	switch m {
	case MaterialUndefined:
		return "Undefined"
	case MaterialTerrain:
		return "Terrain"
	case MaterialWaterWithoutTexture:
		return "WaterWithoutTexture"
	case MaterialWater:
		return "Water"
	case MaterialGrass:
		return "Grass"
	default:
		return fmt.Sprintf("MaterialType(%d)", uint32(m))
	}
}

const (
	CompressionNone CompressionType = 0x1 // CompressionNone stores data as is.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompressionType maps a case-sensitive lower-case name to a CompressionType.
func ParseCompressionType(name string) (CompressionType, bool) {
	switch name {
	case "none":
		return CompressionNone, true
	case "zstd":
		return CompressionZstd, true
	case "s2":
		return CompressionS2, true
	case "lz4":
		return CompressionLZ4, true
	default:
		return 0, false
	}
}
