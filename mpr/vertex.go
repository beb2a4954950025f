package mpr

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/arloliu/eikit/errs"
)

const (
	normalScale  = 1000
	normalBias   = 1000
	normalXYMask = 0x7FF
	normalXShift = 11
	normalZShift = 22
)

// Normal is a unit surface normal. Z points up.
type Normal struct {
	X, Y, Z float32
}

// UnpackNormal splits a packed normal: bits 22..31 hold Z, bits 11..21 hold X
// and bits 0..10 hold Y, each in thousandths.
func UnpackNormal(packed uint32) Normal {
	return Normal{
		X: float32(int32((packed>>normalXShift)&normalXYMask)-normalBias) / normalScale,
		Y: float32(int32(packed&normalXYMask)-normalBias) / normalScale,
		Z: float32(packed>>normalZShift) / normalScale,
	}
}

// Pack packs n in thousandths. X and Y must lie in [-1, 1] and Z in [0, 1].
func (n Normal) Pack() (uint32, error) {
	x, err := packComponent("x", n.X, -1)
	if err != nil {
		return 0, err
	}
	y, err := packComponent("y", n.Y, -1)
	if err != nil {
		return 0, err
	}
	z, err := packComponent("z", n.Z, 0)
	if err != nil {
		return 0, err
	}

	return z<<normalZShift | x<<normalXShift | y, nil
}

// packComponent maps v in [lo, 1] to its biased thousandths, rounding half away from zero.
func packComponent(axis string, v float32, lo float32) (uint32, error) {
	// NaN fails both comparisons.
	if !(v >= lo && v <= 1) {
		return 0, fmt.Errorf("normal %s=%v: %w", axis, v, errs.ErrNormalOutOfRange)
	}

	r := math32.Floor(math32.Abs(v)*normalScale + 0.5)
	if v < 0 {
		r = -r
	}
	if lo < 0 {
		r += normalBias
	}

	return uint32(r), nil
}

// Vertex is one terrain vertex.
type Vertex struct {
	OffsetX int8   // horizontal displacement
	OffsetY int8   // vertical displacement
	Z       uint16 // raw height, scaled by the map's MaxZ
	Normal  Normal
}

// DryWaterVertex is the water vertex of a sector without a water layer: the
// zero record, whose packed normal decodes to (-1, -1, 0).
var DryWaterVertex = vertexFromRecord(secVertex{})

func vertexFromRecord(r secVertex) Vertex {
	return Vertex{
		OffsetX: r.OffsetX,
		OffsetY: r.OffsetY,
		Z:       r.Z,
		Normal:  UnpackNormal(r.PackedNormal),
	}
}

func (v Vertex) record() (secVertex, error) {
	packed, err := v.Normal.Pack()
	if err != nil {
		return secVertex{}, err
	}

	return secVertex{
		OffsetX:      v.OffsetX,
		OffsetY:      v.OffsetY,
		Z:            v.Z,
		PackedNormal: packed,
	}, nil
}
