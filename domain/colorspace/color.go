package colorspace

import (
	"fmt"
	"image/color"
	"strings"
)

// Color is an 8-bit RGBA value. It is immutable and freely copyable; derived
// representations (HSV, HSL, CMYK, OKLCH) are computed on demand and never
// stored alongside it.
type Color struct {
	R, G, B, A uint8
}

// FromRGB returns an opaque Color.
func FromRGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 255} }

// FromStdColor converts any image/color.Color to an 8-bit Color.
func FromStdColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	return Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// Equal reports exact channel equality including alpha.
func (c Color) Equal(o Color) bool { return c == o }

// Hex returns the color as "#rrggbb". Alpha is not encoded.
func (c Color) Hex() string { return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B) }

func (c Color) String() string { return c.Hex() }

// ParseHex parses "#rrggbb" or "rrggbb" (case-insensitive) into an opaque Color.
func ParseHex(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 7 {
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(strings.ToLower(s), "#%02x%02x%02x", &r, &g, &b); err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return FromRGB(r, g, b), nil
}
