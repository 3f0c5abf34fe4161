package presenter

import (
	"log/slog"
	"time"

	"github.com/soocke/pixel-picker-go/domain/colorspace"
	"github.com/soocke/pixel-picker-go/domain/picker"
)

// HistoryView displays the ordered color history.
type HistoryView interface {
	SetHistory(colors []colorspace.Color)
}

// HistoryPresenter mirrors the session's history into the view and routes
// swatch clicks back into the session.
type HistoryPresenter struct {
	session picker.SessionContract
	view    HistoryView
	logger  *slog.Logger
	shown   []colorspace.Color
}

func NewHistoryPresenter(session picker.SessionContract, view HistoryView, logger *slog.Logger) *HistoryPresenter {
	return &HistoryPresenter{session: session, view: view, logger: logger}
}

// Tick pushes the history to the view when it changed since the last tick.
func (p *HistoryPresenter) Tick(now time.Time) {
	if p == nil || p.session == nil || p.view == nil {
		return
	}
	colors := p.session.HistoryColors()
	if equalColors(colors, p.shown) {
		return
	}
	p.shown = colors
	p.view.SetHistory(colors)
}

// Select pins a history color: the session freezes on it without reordering
// the history.
func (p *HistoryPresenter) Select(c colorspace.Color) {
	if p == nil || p.session == nil {
		return
	}
	p.session.SelectFromHistory(c)
	if p.logger != nil {
		p.logger.Debug("history color selected", "color", c.Hex())
	}
}

func equalColors(a, b []colorspace.Color) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
