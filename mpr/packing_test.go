package mpr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/eikit/errs"
)

func TestUnpackNormal(t *testing.T) {
	packed := uint32(800)<<22 | uint32(1500)<<11 | uint32(750)
	n := UnpackNormal(packed)

	require.InDelta(t, 0.5, n.X, 1e-6)
	require.InDelta(t, -0.25, n.Y, 1e-6)
	require.InDelta(t, 0.8, n.Z, 1e-6)

	back, err := n.Pack()
	require.NoError(t, err)
	require.Equal(t, packed, back)
}

func TestNormal_PackRoundTrip(t *testing.T) {
	for x := uint32(0); x <= 2000; x += 37 {
		for z := uint32(0); z <= 1000; z += 53 {
			packed := z<<22 | x<<11 | (2000 - x)
			got, err := UnpackNormal(packed).Pack()
			require.NoError(t, err)
			require.Equal(t, packed, got, "x=%d z=%d", x, z)
		}
	}
}

func TestNormal_PackBounds(t *testing.T) {
	tests := []struct {
		name string
		n    Normal
		ok   bool
	}{
		{name: "up", n: Normal{Z: 1}, ok: true},
		{name: "extremes", n: Normal{X: -1, Y: 1, Z: 0}, ok: true},
		{name: "x just above one", n: Normal{X: 1.0004, Z: 1}},
		{name: "y just below minus one", n: Normal{Y: -1.0004, Z: 1}},
		{name: "z just below zero", n: Normal{Z: -0.0004}},
		{name: "z just above one", n: Normal{Z: 1.0004}},
		{name: "x too large", n: Normal{X: 1.01, Z: 0.5}},
		{name: "y too small", n: Normal{Y: -1.2}},
		{name: "negative z", n: Normal{Z: -0.01}},
		{name: "z too large", n: Normal{Z: 1.02}},
		{name: "nan", n: Normal{X: float32(math.NaN())}},
		{name: "inf", n: Normal{Z: float32(math.Inf(1))}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.n.Pack()
			if tt.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, errs.ErrNormalOutOfRange)
			require.ErrorIs(t, err, errs.ErrUnencodable)
		})
	}
}

func TestTile_Codes(t *testing.T) {
	tests := []struct {
		code uint16
		tile Tile
	}{
		{code: 0x0000, tile: Tile{}},
		{code: 0x0005, tile: Tile{Index: 5}},
		{code: 0xC005, tile: Tile{Index: 5, Rotation: 3}},
		{code: 0x7FFF, tile: Tile{Index: 0x3FFF, Rotation: 1}},
		{code: 0xFFFF, tile: Tile{Index: MaxTileIndex, Rotation: MaxTileRotation}},
	}
	for _, tt := range tests {
		require.Equal(t, tt.tile, DecodeTile(tt.code), "code 0x%04X", tt.code)

		code, err := tt.tile.Encode()
		require.NoError(t, err)
		require.Equal(t, tt.code, code)
	}
}

func TestTile_EncodeOutOfRange(t *testing.T) {
	for _, tile := range []Tile{{Index: 0x4000}, {Rotation: 4}, {Index: 0xFFFF, Rotation: 0xFF}} {
		_, err := tile.Encode()
		require.ErrorIs(t, err, errs.ErrTileOutOfRange, "%+v", tile)
	}
}
