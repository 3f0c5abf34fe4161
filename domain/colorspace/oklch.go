package colorspace

import "math"

// OKLCH is the cylindrical form of OKLab: perceptual lightness L in [0,1],
// chroma C >= 0, hue H in degrees [0,360). The sRGB transform below uses the
// published OKLab matrix constants so values are reproducible across runs.
type OKLCH struct {
	L, C, H float64
}

// OKLCH converts via the OKLab intermediate space.
func (c Color) OKLCH() OKLCH {
	rl := srgbToLinear(float64(c.R) / 255)
	gl := srgbToLinear(float64(c.G) / 255)
	bl := srgbToLinear(float64(c.B) / 255)

	// linear sRGB -> LMS
	l := 0.4122214708*rl + 0.5363325363*gl + 0.0514459929*bl
	m := 0.2119034982*rl + 0.6806995451*gl + 0.1073969566*bl
	s := 0.0883024619*rl + 0.2817188376*gl + 0.6299787005*bl

	l = math.Cbrt(l)
	m = math.Cbrt(m)
	s = math.Cbrt(s)

	lightness := 0.2104542553*l + 0.7936177850*m - 0.0040720468*s
	a := 1.9779984951*l - 2.4285922050*m + 0.4505937099*s
	b := 0.0259040371*l + 0.7827717662*m - 0.8086757660*s

	h := math.Atan2(b, a) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return OKLCH{L: lightness, C: math.Hypot(a, b), H: h}
}

// RGB maps back to sRGB with clamping. The mapping is display-oriented:
// out-of-gamut chroma saturates at the gamut edge, so it is not an exact
// inverse of Color.OKLCH for clipped values.
func (o OKLCH) RGB() Color {
	hr := o.H * math.Pi / 180
	a := o.C * math.Cos(hr)
	b := o.C * math.Sin(hr)

	l := o.L + 0.3963377774*a + 0.2158037573*b
	m := o.L - 0.1055613458*a - 0.0638541728*b
	s := o.L - 0.0894841775*a - 1.2914855480*b

	l = l * l * l
	m = m * m * m
	s = s * s * s

	rl := +4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	gl := -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	bl := -0.0041960863*l - 0.7034186147*m + 1.7076147010*s

	return FromRGB(
		round255(linearToSrgb(rl)),
		round255(linearToSrgb(gl)),
		round255(linearToSrgb(bl)),
	)
}

func srgbToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

func linearToSrgb(c float64) float64 {
	if c <= 0.0031308 {
		return 12.92 * c
	}
	return 1.055*math.Pow(c, 1.0/2.4) - 0.055
}
