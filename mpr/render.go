package mpr

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"
)

// ColorVec is a linear RGB colour with components in [0, 1].
type ColorVec [3]float32

var palette = [...]ColorVec{
	RGB(0, 50, 115),    // deep water
	RGB(0, 75, 130),    // shallow water
	RGB(194, 178, 128), // sand
	RGB(90, 180, 30),   // grass
	RGB(105, 110, 115), // rock
	Gray(220),          // peaks
}

// light is the normalized direction towards the sun.
var light = func() Normal {
	x, y, z := float32(-1), float32(-1), float32(2)
	l := math32.Sqrt(x*x + y*y + z*z)

	return Normal{X: x / l, Y: y / l, Z: z / l}
}()

// Render draws a shaded elevation preview, one pixel per vertex. Heights are
// coloured relative to the lowest and highest land vertex. Vertices covered
// by water are drawn in blue, darker with depth.
func (m *Map) Render() *image.RGBA {
	g := m.LandVertices
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	if len(g.Cells) == 0 {
		return img
	}

	lo, hi := g.Cells[0].Z, g.Cells[0].Z
	for _, v := range g.Cells {
		lo = min(lo, v.Z)
		hi = max(hi, v.Z)
	}
	span := max(float32(hi-lo), 1)

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			v := g.At(x, y)
			h := float32(v.Z-lo) / span

			var c ColorVec
			switch {
			case h <= 0.1:
				c = palette[2]
			case h <= 0.4:
				c = palette[2].Lerp(palette[3], clamp((h-0.1)/0.3))
			case h <= 0.75:
				c = palette[3].Lerp(palette[4], clamp((h-0.4)/0.35))
			default:
				c = palette[4].Lerp(palette[5], clamp((h-0.75)/0.25))
			}
			c = c.Mul(shade(v.Normal))

			if depth, ok := m.waterDepth(x, y); ok {
				c = palette[1].Lerp(palette[0], clamp(depth/span*8)).Lerp(c, 0.2)
			}

			img.SetRGBA(x, y, c.Color())
		}
	}

	return img
}

// waterDepth returns how far the water surface lies above the land vertex
// (x, y), if the vertex touches a tile with a water material.
func (m *Map) waterDepth(x, y int) (float32, bool) {
	if m.WaterMaterials == nil || m.WaterVertices == nil {
		return 0, false
	}
	tx := min(x/2, m.WaterMaterials.Width-1)
	ty := min(y/2, m.WaterMaterials.Height-1)
	if m.WaterMaterials.At(tx, ty) == NoWater {
		return 0, false
	}

	land, water := m.LandVertices.At(x, y).Z, m.WaterVertices.At(x, y).Z
	if water <= land {
		return 0, false
	}

	return float32(water - land), true
}

// shade returns the diffuse light factor of a surface with normal n.
func shade(n Normal) float32 {
	l := math32.Sqrt(n.X*n.X + n.Y*n.Y + n.Z*n.Z)
	if l == 0 {
		return 1
	}
	d := (n.X*light.X + n.Y*light.Y + n.Z*light.Z) / l

	return 0.55 + 0.45*clamp(d)
}

// Gray returns the gray colour of intensity v.
func Gray(v byte) ColorVec {
	return RGB(v, v, v)
}

// RGB converts 8-bit components to a ColorVec.
func RGB(r, g, b byte) ColorVec {
	const factor = 1.0 / 255
	return ColorVec{float32(r) * factor, float32(g) * factor, float32(b) * factor}
}

// Mul scales every component by v.
func (vec ColorVec) Mul(v float32) ColorVec {
	vec[0] *= v
	vec[1] *= v
	vec[2] *= v
	return vec
}

// Lerp interpolates from vec towards other by factor.
func (vec ColorVec) Lerp(other ColorVec, factor float32) ColorVec {
	for i := range vec {
		vec[i] += (other[i] - vec[i]) * factor
	}
	return vec
}

// Color converts vec to an opaque RGBA colour.
func (vec ColorVec) Color() color.RGBA {
	return color.RGBA{R: floatToByte(vec[0]), G: floatToByte(vec[1]), B: floatToByte(vec[2]), A: 255}
}

func clamp(f float32) float32 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func floatToByte(f float32) byte {
	if f < 0 {
		return 0
	}
	if f > 1.0 {
		return 255
	}
	return byte(f * 255)
}
