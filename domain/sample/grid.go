package sample

import (
	"image"

	"github.com/soocke/pixel-picker-go/domain/colorspace"
)

// Grid is a row-major buffer of sampled pixel colors plus the cell the cursor
// occupies. It is an immutable snapshot; each capture produces a fresh Grid.
type Grid struct {
	Width, Height int
	// Center is the cell nearest the cursor, valid even after the region was
	// shifted away from a monitor edge.
	Center image.Point
	cells  []colorspace.Color
}

// NewGridFromImage reshapes a captured RGBA buffer into a Grid.
func NewGridFromImage(img *image.RGBA, center image.Point) *Grid {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	g := &Grid{Width: w, Height: h, Center: center, cells: make([]colorspace.Color, w*h)}
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < w; x++ {
			off := x * 4
			g.cells[y*w+x] = colorspace.FromRGB(row[off], row[off+1], row[off+2])
		}
	}
	return g
}

// At returns the color at cell (x, y). Out-of-range cells are black.
func (g *Grid) At(x, y int) colorspace.Color {
	if g == nil || x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return colorspace.Color{A: 255}
	}
	return g.cells[y*g.Width+x]
}

// CenterColor returns the color under the cursor.
func (g *Grid) CenterColor() colorspace.Color {
	if g == nil {
		return colorspace.Color{A: 255}
	}
	return g.At(g.Center.X, g.Center.Y)
}
