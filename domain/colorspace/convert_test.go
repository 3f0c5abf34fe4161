package colorspace

import (
	"math"
	"testing"
)

func absDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	return d
}

func assertClose(t *testing.T, name string, got, want Color) {
	t.Helper()
	if absDiff(got.R, want.R) > 1 || absDiff(got.G, want.G) > 1 || absDiff(got.B, want.B) > 1 {
		t.Fatalf("%s round-trip: got %v want %v", name, got, want)
	}
}

var roundTripColors = []Color{
	FromRGB(0, 0, 0),
	FromRGB(255, 255, 255),
	FromRGB(255, 0, 0),
	FromRGB(0, 255, 0),
	FromRGB(0, 0, 255),
	FromRGB(128, 128, 128),
	FromRGB(12, 200, 77),
	FromRGB(240, 17, 99),
	FromRGB(1, 2, 3),
	FromRGB(250, 250, 1),
}

func TestHSVRoundTrip(t *testing.T) {
	for _, c := range roundTripColors {
		assertClose(t, "hsv", c.HSV().RGB(), c)
	}
}

func TestHSLRoundTrip(t *testing.T) {
	for _, c := range roundTripColors {
		assertClose(t, "hsl", c.HSL().RGB(), c)
	}
}

func TestCMYKRoundTrip(t *testing.T) {
	for _, c := range roundTripColors {
		assertClose(t, "cmyk", c.CMYK().RGB(), c)
	}
}

func TestAchromaticHueIsZero(t *testing.T) {
	for _, c := range []Color{FromRGB(0, 0, 0), FromRGB(255, 255, 255), FromRGB(90, 90, 90)} {
		hsv := c.HSV()
		if math.IsNaN(hsv.H) || hsv.H != 0 {
			t.Fatalf("HSV hue of %v = %v, want 0", c, hsv.H)
		}
		hsl := c.HSL()
		if math.IsNaN(hsl.H) || hsl.H != 0 {
			t.Fatalf("HSL hue of %v = %v, want 0", c, hsl.H)
		}
	}
}

func TestCMYKPureBlack(t *testing.T) {
	cmyk := FromRGB(0, 0, 0).CMYK()
	if cmyk.C != 0 || cmyk.M != 0 || cmyk.Y != 0 || cmyk.K != 1 {
		t.Fatalf("CMYK of black = %+v, want C=M=Y=0 K=1", cmyk)
	}
}

func TestCMYKKnownValues(t *testing.T) {
	cases := []struct {
		in   Color
		want CMYK
	}{
		{FromRGB(255, 255, 255), CMYK{0, 0, 0, 0}},
		{FromRGB(255, 0, 0), CMYK{0, 1, 1, 0}},
		{FromRGB(0, 255, 0), CMYK{1, 0, 1, 0}},
		{FromRGB(0, 0, 255), CMYK{1, 1, 0, 0}},
	}
	for _, tc := range cases {
		got := tc.in.CMYK()
		if math.Abs(got.C-tc.want.C) > 1e-9 || math.Abs(got.M-tc.want.M) > 1e-9 ||
			math.Abs(got.Y-tc.want.Y) > 1e-9 || math.Abs(got.K-tc.want.K) > 1e-9 {
			t.Fatalf("CMYK of %v = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestHSVKnownValues(t *testing.T) {
	hsv := FromRGB(255, 0, 0).HSV()
	if hsv.H != 0 || hsv.S != 1 || hsv.V != 1 {
		t.Fatalf("HSV of red = %+v, want H=0 S=1 V=1", hsv)
	}
	hsv = FromRGB(0, 255, 0).HSV()
	if hsv.H != 120 || hsv.S != 1 || hsv.V != 1 {
		t.Fatalf("HSV of green = %+v, want H=120 S=1 V=1", hsv)
	}
}
