package view

import (
	"image"

	"github.com/soocke/pixel-picker-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// GridView shows the magnified pixel grid with the crosshair. It owns one
// LabelWidget and swaps its photo on update.
type GridView interface {
	UpdateGrid(img image.Image)
	Reset()
}

type gridView struct {
	label     *LabelWidget
	prevPhoto *Img // last Tk photo instance, disposed before replacement
}

const placeholderSide = 180

// NewGridView creates the preview label and grids it at the given row,
// spanning the full layout width.
func NewGridView(row int) GridView {
	placeholder := image.NewRGBA(image.Rect(0, 0, placeholderSide, placeholderSide))
	photo := NewPhoto(Data(images.EncodePNG(placeholder)))
	label := Label(Image(photo), Borderwidth(1), Relief("sunken"))
	Grid(label, Row(row), Column(0), Columnspan(4), Padx("0.4m"), Pady("0.4m"))
	return &gridView{label: label, prevPhoto: photo}
}

func (v *gridView) UpdateGrid(img image.Image) {
	if v.label == nil || img == nil {
		return
	}
	pngBytes := images.EncodePNG(img)
	// Replace the previous photo to avoid retaining obsolete pixel buffers.
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	newPhoto := NewPhoto(Data(pngBytes))
	v.prevPhoto = newPhoto
	v.label.Configure(Image(newPhoto))
}

func (v *gridView) Reset() {
	if v.label == nil {
		return
	}
	placeholder := image.NewRGBA(image.Rect(0, 0, placeholderSide, placeholderSide))
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	v.prevPhoto = NewPhoto(Data(images.EncodePNG(placeholder)))
	v.label.Configure(Image(v.prevPhoto))
}
