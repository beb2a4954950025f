package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSectionType(t *testing.T) {
	require.Equal(t, "Record", SectionRecord.String())
	require.Equal(t, "StringEncrypted", SectionStringEncrypted.String())
	require.Equal(t, "Unknown", SectionType(200).String())

	require.Equal(t, 1, SectionByte.FixedSize())
	require.Equal(t, 4, SectionDword.FixedSize())
	require.Equal(t, 4, SectionFloat.FixedSize())
	require.Equal(t, 12, SectionPlot.FixedSize())
	require.Equal(t, 16, SectionQuaternion.FixedSize())
	require.Equal(t, 0, SectionString.FixedSize())
}

func TestTileType(t *testing.T) {
	require.True(t, TileHighrock.Valid())
	require.False(t, TileLast.Valid())
	require.Equal(t, "Road", TileRoad.String())
	require.Equal(t, "Undefined", TileUndefined.String())
	require.Equal(t, "TileType(16)", TileLast.String())
}

func TestCompressionType(t *testing.T) {
	for _, name := range []string{"none", "zstd", "s2", "lz4"} {
		ct, ok := ParseCompressionType(name)
		require.True(t, ok, name)
		require.NotEqual(t, "Unknown", ct.String())
	}

	_, ok := ParseCompressionType("gzip")
	require.False(t, ok)
}
