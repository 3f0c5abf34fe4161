package view

import (
	"github.com/soocke/pixel-picker-go/domain/colorspace"
	"github.com/soocke/pixel-picker-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ReadoutView displays the sampled position, a color swatch, and every
// derived representation of the current color.
type ReadoutView interface {
	SetSwatch(c colorspace.Color)
	SetPosition(text string)
	SetColorValues(hex, rgb, hsv, hsl, cmyk, oklch string)
}

type readoutView struct {
	posLbl      *LabelWidget
	swatchLbl   *LabelWidget
	swatchPhoto *Img
	valueLbls   map[string]*LabelWidget
}

const (
	swatchW = 72
	swatchH = 28
)

// NewReadoutView builds the readout column starting at the given grid row and
// returns the view together with the next free row.
func NewReadoutView(startRow int) (ReadoutView, int) {
	v := &readoutView{valueLbls: make(map[string]*LabelWidget)}
	row := startRow

	v.posLbl = Label(Txt("(-, -)"), Anchor("w"))
	Grid(v.posLbl, Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))

	v.swatchPhoto = NewPhoto(Data(images.EncodePNG(images.Swatch(colorspace.Color{A: 255}, swatchW, swatchH))))
	v.swatchLbl = Label(Image(v.swatchPhoto), Borderwidth(1), Relief("ridge"))
	Grid(v.swatchLbl, Row(row), Column(1), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
	row++

	for _, id := range []string{"hex", "rgb", "hsv", "hsl", "cmyk", "oklch"} {
		lbl := Label(Txt(""), Anchor("w"))
		Grid(lbl, Row(row), Column(0), Columnspan(2), Sticky("w"), Padx("0.4m"), Pady("0.1m"))
		v.valueLbls[id] = lbl
		row++
	}
	return v, row
}

func (v *readoutView) SetSwatch(c colorspace.Color) {
	if v.swatchLbl == nil {
		return
	}
	if v.swatchPhoto != nil {
		v.swatchPhoto.Delete()
	}
	v.swatchPhoto = NewPhoto(Data(images.EncodePNG(images.Swatch(c, swatchW, swatchH))))
	v.swatchLbl.Configure(Image(v.swatchPhoto))
}

func (v *readoutView) SetPosition(text string) {
	if v.posLbl != nil {
		v.posLbl.Configure(Txt(text))
	}
}

func (v *readoutView) SetColorValues(hex, rgb, hsv, hsl, cmyk, oklch string) {
	set := func(id, text string) {
		if lbl := v.valueLbls[id]; lbl != nil {
			lbl.Configure(Txt(text))
		}
	}
	set("hex", hex)
	set("rgb", rgb)
	set("hsv", hsv)
	set("hsl", hsl)
	set("cmyk", cmyk)
	set("oklch", oklch)
}
