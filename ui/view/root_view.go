package view

import (
	"image"
	"log/slog"
	"time"

	"github.com/soocke/pixel-picker-go/config"
	"github.com/soocke/pixel-picker-go/domain/colorspace"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the top-level application layout and wires UI callbacks.
// It owns high-level subviews but exposes minimal exported fields for presenters.
type RootView struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger

	// Subviews
	Grid     GridView
	Readout  ReadoutView
	History  HistoryView
	Session  SessionStats
	Settings SettingsPanel

	// Widgets
	StateLabel *LabelWidget
}

// UI abstracts the subset of view operations needed by presenters, enabling
// decoupling from the concrete RootView implementation.
type UI interface {
	UpdateGrid(img image.Image)
	SetSwatch(c colorspace.Color)
	SetPosition(text string)
	SetColorValues(hex, rgb, hsv, hsl, cmyk, oklch string)
	SetStateLabel(text string)
	SetHistory(colors []colorspace.Color)
	SetSession(live, total time.Duration)
}

func NewRootView(cfg *config.Config, cfgPath string, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, cfgPath: cfgPath, logger: logger}
}

// Build constructs the layout. Handlers are invoked on user actions.
func (rv *RootView) Build(onToggleFreeze func(), onUnfreeze func(), onExit func(), onHistorySelect func(colorspace.Color), onSettingsApplied func(*config.Config)) {
	if rv == nil {
		return
	}
	// Row 0: state label plus session durations.
	rv.StateLabel = Label(Txt("State: <none>"), Borderwidth(1), Relief("ridge"))
	Grid(rv.StateLabel, Row(0), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	rv.Session = NewSessionStats(0, 2)

	// Row 1: action buttons.
	btnFrame := Frame()
	Grid(btnFrame, Row(1), Column(0), Columnspan(4), Sticky("we"), Padx("0.3m"), Pady("0.2m"))
	freezeBtn := Button(Txt("Freeze / Resume"), Command(onToggleFreeze))
	Grid(freezeBtn, In(btnFrame), Row(0), Column(0), Sticky("we"), Padx("0.2m"))
	resumeBtn := Button(Txt("Resume Live"), Command(onUnfreeze))
	Grid(resumeBtn, In(btnFrame), Row(0), Column(1), Sticky("we"), Padx("0.2m"))
	exitBtn := Button(Txt("Exit"), Command(onExit))
	Grid(exitBtn, In(btnFrame), Row(0), Column(2), Sticky("we"), Padx("0.2m"))

	// Row 2: magnified grid preview.
	rv.Grid = NewGridView(2)

	// Rows 3..: readout, history, settings.
	readout, row := NewReadoutView(3)
	rv.Readout = readout
	rv.History = NewHistoryView(row, onHistorySelect)
	row++
	rv.Settings = NewSettingsPanel(rv.cfg, rv.cfgPath, rv.logger, onSettingsApplied)
	rv.Settings.Build(row)
}

// SetStateLabel updates the state label text.
func (rv *RootView) SetStateLabel(text string) {
	if rv != nil && rv.StateLabel != nil {
		rv.StateLabel.Configure(Txt(text))
	}
}

// UpdateGrid proxies to the grid preview.
func (rv *RootView) UpdateGrid(img image.Image) {
	if rv != nil && rv.Grid != nil {
		rv.Grid.UpdateGrid(img)
	}
}

// SetSwatch proxies to the readout swatch.
func (rv *RootView) SetSwatch(c colorspace.Color) {
	if rv != nil && rv.Readout != nil {
		rv.Readout.SetSwatch(c)
	}
}

// SetPosition proxies to the readout position label.
func (rv *RootView) SetPosition(text string) {
	if rv != nil && rv.Readout != nil {
		rv.Readout.SetPosition(text)
	}
}

// SetColorValues proxies all derived color representations to the readout.
func (rv *RootView) SetColorValues(hex, rgb, hsv, hsl, cmyk, oklch string) {
	if rv != nil && rv.Readout != nil {
		rv.Readout.SetColorValues(hex, rgb, hsv, hsl, cmyk, oklch)
	}
}

// SetHistory proxies to the history strip.
func (rv *RootView) SetHistory(colors []colorspace.Color) {
	if rv != nil && rv.History != nil {
		rv.History.SetHistory(colors)
	}
}

// SetSession updates both live and total tracking durations.
func (rv *RootView) SetSession(live, total time.Duration) {
	if rv != nil && rv.Session != nil {
		rv.Session.SetSession(live, total)
	}
}

// SetConfigEditable toggles the settings panel editability.
func (rv *RootView) SetConfigEditable(enabled bool) {
	if rv != nil && rv.Settings != nil {
		rv.Settings.SetEditable(enabled)
	}
}
