package view

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/soocke/pixel-picker-go/config"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// SettingsPanel encapsulates the sampling configuration form and apply logic.
// It owns its widgets and writes back into *config.Config on ApplyChanges.
type SettingsPanel interface {
	Build(startRow int) (endRow int) // constructs widgets starting at startRow, returns next free row
	SetEditable(enabled bool)
	ApplyChanges() // parses widget text into underlying config and persists
}

type settingsPanel struct {
	cfg       *config.Config
	cfgPath   string
	logger    *slog.Logger
	onApplied func(*config.Config)
	applyBtn  *ButtonWidget
	widgets   map[string]*TextWidget // keyed by internal field id
}

// NewSettingsPanel creates the view bound to cfg. onApplied fires after a
// successful apply so the shell can propagate radius/zoom/interval changes.
func NewSettingsPanel(cfg *config.Config, cfgPath string, logger *slog.Logger, onApplied func(*config.Config)) SettingsPanel {
	return &settingsPanel{cfg: cfg, cfgPath: cfgPath, logger: logger, onApplied: onApplied, widgets: make(map[string]*TextWidget)}
}

func (v *settingsPanel) Build(startRow int) (row int) {
	c := v.cfg
	row = startRow
	makeRow := func(id, label, value string) {
		lbl := Label(Txt(label), Anchor("w"))
		Grid(lbl, Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		w := Text(Height(1), Width(16))
		Grid(w, Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		w.Delete("1.0", END)
		w.Insert("1.0", value)
		v.widgets[id] = w
		row++
	}
	makeRow("gridRadius", fmt.Sprintf("Grid Radius (%d-%d)", config.MinGridRadius, config.MaxGridRadius), fmt.Sprintf("%d", c.GridRadius))
	makeRow("cellSize", fmt.Sprintf("Zoom Cell Px (%d-%d)", config.MinCellSize, config.MaxCellSize), fmt.Sprintf("%d", c.CellSize))
	makeRow("tickMillis", fmt.Sprintf("Tick Interval ms (%d-%d)", config.MinTickMillis, config.MaxTickMillis), fmt.Sprintf("%d", c.TickMillis))
	makeRow("historyCapacity", fmt.Sprintf("History Size (%d-%d)", config.MinHistoryCap, config.MaxHistoryCap), fmt.Sprintf("%d", c.HistoryCapacity))
	v.applyBtn = Button(Txt("Apply Changes"), Command(func() { v.ApplyChanges() }))
	Grid(v.applyBtn, Row(row), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	row++
	return row
}

func (v *settingsPanel) SetEditable(enabled bool) {
	state := "disabled"
	if enabled {
		state = "normal"
	}
	for _, w := range v.widgets {
		if w != nil {
			w.Configure(State(state))
		}
	}
	if v.applyBtn != nil {
		v.applyBtn.Configure(State(state))
	}
}

func (v *settingsPanel) text(w *TextWidget) string {
	if w == nil {
		return ""
	}
	parts := w.Get("1.0", END)
	return strings.Join(parts, "")
}

func (v *settingsPanel) ApplyChanges() {
	if v.cfg == nil {
		return
	}
	cfg := *v.cfg // copy
	assignInt := func(id string, dst *int) {
		w := v.widgets[id]
		if w == nil {
			return
		}
		if i, ok := parseIntField(v.text(w)); ok {
			*dst = i
		}
	}
	assignInt("gridRadius", &cfg.GridRadius)
	assignInt("cellSize", &cfg.CellSize)
	assignInt("tickMillis", &cfg.TickMillis)
	assignInt("historyCapacity", &cfg.HistoryCapacity)
	// Validate clamps rather than rejecting, so an applied config is always usable.
	_ = cfg.Validate()
	*v.cfg = cfg
	if err := v.cfg.Save(v.cfgPath); err != nil {
		if v.logger != nil {
			v.logger.Error("config save failed", "error", err)
		}
	} else if v.logger != nil {
		v.logger.Info("config saved", "path", v.cfgPath)
	}
	if v.onApplied != nil {
		v.onApplied(v.cfg)
	}
}

// parsing helpers (unexported)
func parseIntField(s string) (int, bool) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return i, true
}
