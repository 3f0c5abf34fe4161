package colorspace

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// HSV holds hue in degrees [0,360) and saturation/value in [0,1].
type HSV struct {
	H, S, V float64
}

// HSL holds hue in degrees [0,360) and saturation/lightness in [0,1].
type HSL struct {
	H, S, L float64
}

// CMYK holds all four components in [0,1].
type CMYK struct {
	C, M, Y, K float64
}

// Conversions normalize channels to [0,1] before any math so chained
// conversions do not compound 8-bit rounding error. Achromatic inputs
// (max == min) always yield hue 0, never NaN.

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(cc colorful.Color) Color {
	r, g, b := cc.Clamped().RGB255()
	return FromRGB(r, g, b)
}

// HSV converts to hue/saturation/value.
func (c Color) HSV() HSV {
	h, s, v := c.colorful().Hsv()
	return HSV{H: h, S: s, V: v}
}

// RGB converts back to an 8-bit color, the inverse of Color.HSV up to rounding.
func (h HSV) RGB() Color { return fromColorful(colorful.Hsv(h.H, h.S, h.V)) }

// HSL converts to hue/saturation/lightness.
func (c Color) HSL() HSL {
	h, s, l := c.colorful().Hsl()
	return HSL{H: h, S: s, L: l}
}

// RGB converts back to an 8-bit color, the inverse of Color.HSL up to rounding.
func (h HSL) RGB() Color { return fromColorful(colorful.Hsl(h.H, h.S, h.L)) }

// CMYK converts using K = 1-max(R,G,B). Pure black yields C=M=Y=0, K=1
// rather than dividing by zero.
func (c Color) CMYK() CMYK {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255
	k := 1 - math.Max(r, math.Max(g, b))
	if k >= 1 {
		return CMYK{K: 1}
	}
	return CMYK{
		C: (1 - r - k) / (1 - k),
		M: (1 - g - k) / (1 - k),
		Y: (1 - b - k) / (1 - k),
		K: k,
	}
}

// RGB converts back to an 8-bit color, the inverse of Color.CMYK up to rounding.
func (c CMYK) RGB() Color {
	r := (1 - c.C) * (1 - c.K)
	g := (1 - c.M) * (1 - c.K)
	b := (1 - c.Y) * (1 - c.K)
	return FromRGB(round255(r), round255(g), round255(b))
}

func round255(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}
