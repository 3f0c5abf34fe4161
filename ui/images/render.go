package images

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/disintegration/imaging"

	"github.com/soocke/pixel-picker-go/domain/colorspace"
	"github.com/soocke/pixel-picker-go/domain/sample"
)

// EncodePNG encodes an image to PNG bytes. Errors are ignored and may return an empty slice.
func EncodePNG(img image.Image) []byte {
	if img == nil {
		return nil
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

// RenderGrid draws the magnified pixel grid: every sampled cell becomes a
// cellSize x cellSize block (nearest-neighbour, no smoothing) and the center
// cell is outlined with a white-outside/black-inside crosshair so it reads on
// both dark and light content.
func RenderGrid(g *sample.Grid, cellSize int) *image.NRGBA {
	if g == nil || g.Width <= 0 || g.Height <= 0 {
		return nil
	}
	if cellSize < 1 {
		cellSize = 1
	}
	base := image.NewNRGBA(image.Rect(0, 0, g.Width, g.Height))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := g.At(x, y)
			off := y*base.Stride + x*4
			base.Pix[off], base.Pix[off+1], base.Pix[off+2], base.Pix[off+3] = c.R, c.G, c.B, 255
		}
	}
	out := imaging.Resize(base, g.Width*cellSize, g.Height*cellSize, imaging.NearestNeighbor)

	cell := image.Rect(
		g.Center.X*cellSize, g.Center.Y*cellSize,
		(g.Center.X+1)*cellSize, (g.Center.Y+1)*cellSize,
	)
	strokeRect(out, cell.Inset(-2), 2, color.NRGBA{255, 255, 255, 255})
	strokeRect(out, cell, 1, color.NRGBA{0, 0, 0, 255})
	return out
}

// Swatch renders a solid color chip with a 1px neutral border.
func Swatch(c colorspace.Color, w, h int) *image.NRGBA {
	if w < 3 {
		w = 3
	}
	if h < 3 {
		h = 3
	}
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.NRGBA{c.R, c.G, c.B, 255}), image.Point{}, draw.Src)
	strokeRect(img, img.Bounds(), 1, color.NRGBA{128, 128, 128, 255})
	return img
}

// strokeRect draws a rectangle outline of the given thickness inside r,
// clipped to the image bounds.
func strokeRect(img *image.NRGBA, r image.Rectangle, thickness int, c color.NRGBA) {
	b := img.Bounds()
	for t := 0; t < thickness; t++ {
		edge := r.Inset(t)
		if edge.Empty() {
			return
		}
		for x := edge.Min.X; x < edge.Max.X; x++ {
			setClipped(img, b, x, edge.Min.Y, c)
			setClipped(img, b, x, edge.Max.Y-1, c)
		}
		for y := edge.Min.Y; y < edge.Max.Y; y++ {
			setClipped(img, b, edge.Min.X, y, c)
			setClipped(img, b, edge.Max.X-1, y, c)
		}
	}
}

func setClipped(img *image.NRGBA, bounds image.Rectangle, x, y int, c color.NRGBA) {
	if (image.Point{x, y}).In(bounds) {
		img.SetNRGBA(x, y, c)
	}
}
