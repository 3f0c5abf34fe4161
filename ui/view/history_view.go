package view

import (
	"github.com/soocke/pixel-picker-go/domain/colorspace"
	"github.com/soocke/pixel-picker-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// HistoryView shows previously captured colors as clickable swatches,
// most recent first.
type HistoryView interface {
	SetHistory(colors []colorspace.Color)
}

type historyView struct {
	frame    *FrameWidget
	onSelect func(colorspace.Color)
	buttons  []*ButtonWidget
	photos   []*Img
}

const (
	historyChipW  = 34
	historyChipH  = 22
	historyPerRow = 6
)

// NewHistoryView builds an empty swatch strip at the given row. onSelect is
// invoked with the clicked swatch's color.
func NewHistoryView(row int, onSelect func(colorspace.Color)) HistoryView {
	frame := Frame()
	Grid(frame, Row(row), Column(0), Columnspan(4), Sticky("w"), Padx("0.4m"), Pady("0.3m"))
	return &historyView{frame: frame, onSelect: onSelect}
}

// SetHistory rebuilds the swatch buttons. The history is small and changes
// only on freeze, so teardown-and-rebuild stays cheap.
func (v *historyView) SetHistory(colors []colorspace.Color) {
	if v.frame == nil {
		return
	}
	for _, b := range v.buttons {
		if b != nil {
			func() { defer func() { _ = recover() }(); Destroy(b) }()
		}
	}
	for _, p := range v.photos {
		if p != nil {
			p.Delete()
		}
	}
	v.buttons = v.buttons[:0]
	v.photos = v.photos[:0]

	for i, c := range colors {
		c := c
		photo := NewPhoto(Data(images.EncodePNG(images.Swatch(c, historyChipW, historyChipH))))
		btn := Button(Image(photo), Command(func() {
			if v.onSelect != nil {
				v.onSelect(c)
			}
		}))
		Grid(btn, In(v.frame), Row(i/historyPerRow), Column(i%historyPerRow), Padx("0.15m"), Pady("0.15m"))
		v.buttons = append(v.buttons, btn)
		v.photos = append(v.photos, photo)
	}
}
