package app

import (
	"log/slog"
	"time"

	"github.com/soocke/pixel-picker-go/capture"
	"github.com/soocke/pixel-picker-go/config"
	"github.com/soocke/pixel-picker-go/domain/history"
	"github.com/soocke/pixel-picker-go/domain/picker"
	"github.com/soocke/pixel-picker-go/domain/sample"
	"github.com/soocke/pixel-picker-go/ui/model"
	"github.com/soocke/pixel-picker-go/ui/presenter"
	"github.com/soocke/pixel-picker-go/ui/view"
)

// AppContainer assembles models, domain services, presenters and the root view.
type AppContainer struct {
	Config  *config.Config
	Logger  *slog.Logger
	Zoom    *model.ZoomModel
	Session *model.SessionModel
	Watcher *capture.CursorWatcher
	Picker  *picker.Session
	History *history.History

	RootView *view.RootView
	UI       view.UI

	// Presenters
	PickerPresenter  *presenter.PickerPresenter
	StatePresenter   *presenter.StatePresenter
	HistoryPresenter *presenter.HistoryPresenter
	SessionPresenter *presenter.SessionPresenter
	Loop             *presenter.Loop
}

// BuildContainer constructs all components. The cursor watcher is created but
// not started; the app wrapper starts it alongside the Tk event loop. The
// presenter loop's scheduler is likewise wired by the app wrapper, since it
// depends on the Tk after mechanism.
func BuildContainer(cfg *config.Config, logger *slog.Logger, cfgPath string) *AppContainer {
	c := &AppContainer{Config: cfg, Logger: logger}
	c.Zoom = model.NewZoomModel(cfg.CellSize)
	c.Session = model.NewSessionModel()

	screen := capture.NewDisplayScreen()
	sampler := sample.NewSampler(screen, logger)
	c.Watcher = capture.NewCursorWatcher(capture.CursorPosition, time.Duration(cfg.TickMillis)*time.Millisecond/2, logger)

	c.History = history.New(cfg.HistoryCapacity)
	c.History.Restore(cfg.HistoryColors())
	c.Picker = picker.NewSession(sampler, c.Watcher.Position, cfg.GridRadius, c.History, logger)

	// View
	c.RootView = view.NewRootView(cfg, cfgPath, logger)
	c.UI = c.RootView

	// Presenters
	c.PickerPresenter = presenter.NewPickerPresenter(c.Picker, c.Zoom, c.UI, logger)
	c.StatePresenter = presenter.NewStatePresenter(c.UI)
	c.HistoryPresenter = presenter.NewHistoryPresenter(c.Picker, c.UI, logger)
	c.SessionPresenter = presenter.NewSessionPresenter(c.Session, c.Picker, c.UI)
	c.Picker.AddListener(c.StatePresenter.OnState)

	// Loop scheduling resolved by the app wrapper.
	c.Loop = presenter.NewLoop(c.PickerPresenter, c.StatePresenter, c.HistoryPresenter, c.SessionPresenter, nil)
	return c
}
