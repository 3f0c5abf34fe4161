package app

import (
	"fmt"
	"log/slog"
	"time"

	. "modernc.org/tk9.0"

	"github.com/soocke/pixel-picker-go/config"
	"github.com/soocke/pixel-picker-go/ui/theme"
)

type app struct {
	container *AppContainer
	cfg       *config.Config
	cfgPath   string
	logger    *slog.Logger
	width     int
	height    int
	afterID   string
}

// NewApp sets up the top-level window and builds the component container.
func NewApp(title string, width, height int, cfg *config.Config, logger *slog.Logger, cfgPath string) *app {
	a := &app{cfg: cfg, cfgPath: cfgPath, logger: logger, width: width, height: height}

	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", width, height))

	a.container = BuildContainer(cfg, logger, cfgPath)
	return a
}

// Start builds the view, binds keys, launches the cursor watcher and the
// update loop, then blocks in the Tk event loop until the window closes.
func (a *app) Start() {
	theme.SetDark(a.cfg.Dark)

	c := a.container
	c.RootView.Build(
		c.PickerPresenter.Toggle,
		c.PickerPresenter.Unfreeze,
		a.exitHandler,
		c.HistoryPresenter.Select,
		a.onSettingsApplied,
	)

	// Space toggles freeze, Escape always resumes live tracking.
	Bind(App, "<space>", Command(func() { c.PickerPresenter.Toggle() }))
	Bind(App, "<Escape>", Command(func() { c.PickerPresenter.Unfreeze() }))

	c.Watcher.Start()
	c.Loop.Schedule = a.scheduleUpdate

	a.scheduleUpdate()

	App.Wait()
}

// scheduleUpdate queues the next presenter tick on Tk's event loop thread.
func (a *app) scheduleUpdate() {
	interval := time.Duration(a.cfg.TickMillis) * time.Millisecond
	a.afterID = TclAfter(interval, func() { a.container.Loop.Tick() })
}

// onSettingsApplied propagates a saved settings change into the running
// session. The watcher keeps its startup poll interval.
func (a *app) onSettingsApplied(cfg *config.Config) {
	a.container.Picker.SetRadius(cfg.GridRadius)
	a.container.Zoom.SetCellSize(cfg.CellSize)
	a.logger.Info("settings applied",
		"grid_radius", cfg.GridRadius,
		"cell_size", cfg.CellSize,
		"tick_ms", cfg.TickMillis,
	)
}

func (a *app) exitHandler() {
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
		a.afterID = ""
	}
	a.container.Watcher.Stop()

	// Persist the color history alongside the rest of the config.
	a.cfg.SetHistory(a.container.Picker.HistoryColors())
	if err := a.cfg.Save(a.cfgPath); err != nil {
		a.logger.Error("config save on exit failed", "error", err)
	}

	stats := a.container.Picker.Stats()
	polls, misses := a.container.Watcher.Stats()
	a.logger.Info("session finished",
		"ticks", stats.Ticks,
		"skipped", stats.Skipped,
		"freezes", stats.Freezes,
		"avg_tick", stats.AvgTick.String(),
		"cursor_polls", polls,
		"cursor_misses", misses,
	)
	Destroy(App)
}
