package presenter

import (
	"fmt"
	"image"
	"log/slog"
	"strings"
	"time"

	"github.com/soocke/pixel-picker-go/domain/colorspace"
	"github.com/soocke/pixel-picker-go/domain/picker"
	"github.com/soocke/pixel-picker-go/domain/sample"
	"github.com/soocke/pixel-picker-go/ui/images"
	"github.com/soocke/pixel-picker-go/ui/model"
)

// PickerView receives the rendered grid and the formatted color readout.
type PickerView interface {
	UpdateGrid(img image.Image)
	SetSwatch(c colorspace.Color)
	SetPosition(text string)
	SetColorValues(hex, rgb, hsv, hsl, cmyk, oklch string)
}

// PickerPresenter drives the capture session each tick and pushes the
// magnified grid plus the derived color representations to the view.
type PickerPresenter struct {
	session picker.SessionContract
	zoom    *model.ZoomModel
	view    PickerView
	logger  *slog.Logger

	// render cache: grids are immutable, so a repeated pointer with the same
	// cell size means the preview is already current.
	lastGrid  *sample.Grid
	lastCell  int
	lastColor colorspace.Color
	rendered  bool
}

// NewPickerPresenter returns a presenter bound to session and view.
func NewPickerPresenter(session picker.SessionContract, zoom *model.ZoomModel, view PickerView, logger *slog.Logger) *PickerPresenter {
	return &PickerPresenter{session: session, zoom: zoom, view: view, logger: logger}
}

// Tick advances the session and refreshes the view when anything changed.
func (p *PickerPresenter) Tick(now time.Time) {
	if p == nil || p.session == nil || p.view == nil {
		return
	}
	p.session.Tick(now)

	grid := p.session.CurrentGrid()
	cell := p.zoom.CellSize()
	if grid != nil && (grid != p.lastGrid || cell != p.lastCell) {
		if img := images.RenderGrid(grid, cell); img != nil {
			p.view.UpdateGrid(img)
		}
		p.lastGrid, p.lastCell = grid, cell
	}

	c := p.session.Current()
	if !p.rendered || c != p.lastColor {
		p.lastColor, p.rendered = c, true
		p.view.SetSwatch(c)
		p.view.SetColorValues(formatColorValues(c))
	}
	pos := p.session.CursorPosition()
	p.view.SetPosition(fmt.Sprintf("(%d, %d)", pos.X, pos.Y))
}

// Freeze pins the current color. Safe to call from UI callbacks.
func (p *PickerPresenter) Freeze() {
	if p == nil || p.session == nil {
		return
	}
	p.session.Freeze()
}

// Unfreeze resumes live tracking.
func (p *PickerPresenter) Unfreeze() {
	if p == nil || p.session == nil {
		return
	}
	p.session.Unfreeze()
}

// Toggle flips between live and frozen (Space key).
func (p *PickerPresenter) Toggle() {
	if p == nil || p.session == nil {
		return
	}
	p.session.ToggleFreeze()
}

// formatColorValues renders all derived representations for display.
func formatColorValues(c colorspace.Color) (hex, rgb, hsv, hsl, cmyk, oklch string) {
	hex = strings.ToUpper(c.Hex())
	rgb = fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
	v := c.HSV()
	hsv = fmt.Sprintf("hsv(%.0f, %.0f%%, %.0f%%)", v.H, v.S*100, v.V*100)
	l := c.HSL()
	hsl = fmt.Sprintf("hsl(%.0f, %.0f%%, %.0f%%)", l.H, l.S*100, l.L*100)
	k := c.CMYK()
	cmyk = fmt.Sprintf("cmyk(%.0f%%, %.0f%%, %.0f%%, %.0f%%)", k.C*100, k.M*100, k.Y*100, k.K*100)
	o := c.OKLCH()
	oklch = fmt.Sprintf("oklch(%.3f %.3f %.1f)", o.L, o.C, o.H)
	return
}
