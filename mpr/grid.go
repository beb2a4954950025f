package mpr

import (
	"fmt"

	"github.com/arloliu/eikit/errs"
)

// Grid is a row-major 2D array.
type Grid[T any] struct {
	Width  int
	Height int
	Cells  []T
}

// NewGrid allocates a width×height grid of zero values.
func NewGrid[T any](width, height int) *Grid[T] {
	return &Grid[T]{
		Width:  width,
		Height: height,
		Cells:  make([]T, width*height),
	}
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.Cells {
		g.Cells[i] = v
	}
}

// At returns the cell at column x, row y. It panics when out of range.
func (g *Grid[T]) At(x, y int) T {
	return g.Cells[g.index(x, y)]
}

// Set stores v at column x, row y. It panics when out of range.
func (g *Grid[T]) Set(x, y int, v T) {
	g.Cells[g.index(x, y)] = v
}

func (g *Grid[T]) index(x, y int) int {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		panic(fmt.Sprintf("grid index (%d, %d) out of range %dx%d", x, y, g.Width, g.Height))
	}

	return y*g.Width + x
}

// checkSize fails unless g is width×height.
func (g *Grid[T]) checkSize(name string, width, height int) error {
	if g == nil || g.Width != width || g.Height != height || len(g.Cells) != width*height {
		return fmt.Errorf("%s grid is not %dx%d: %w", name, width, height, errs.ErrInvalidOperation)
	}

	return nil
}

// copyIn writes the side×side row-major patch src into g at (ox, oy).
func copyIn[S, T any](g *Grid[T], ox, oy, side int, src []S, conv func(S) T) {
	for y := 0; y < side; y++ {
		row := g.Cells[(oy+y)*g.Width+ox:]
		for x := 0; x < side; x++ {
			row[x] = conv(src[y*side+x])
		}
	}
}

// copyOut reads the side×side patch of g at (ox, oy) into dst, stopping at
// the first conversion error.
func copyOut[S, T any](g *Grid[T], ox, oy, side int, dst []S, conv func(T) (S, error)) error {
	for y := 0; y < side; y++ {
		row := g.Cells[(oy+y)*g.Width+ox:]
		for x := 0; x < side; x++ {
			v, err := conv(row[x])
			if err != nil {
				return fmt.Errorf("cell (%d, %d): %w", ox+x, oy+y, err)
			}
			dst[y*side+x] = v
		}
	}

	return nil
}
