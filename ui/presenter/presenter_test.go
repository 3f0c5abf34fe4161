package presenter

import (
	"image"
	"testing"
	"time"

	"github.com/soocke/pixel-picker-go/domain/colorspace"
	"github.com/soocke/pixel-picker-go/domain/history"
	"github.com/soocke/pixel-picker-go/domain/picker"
	"github.com/soocke/pixel-picker-go/domain/sample"
	"github.com/soocke/pixel-picker-go/ui/model"
)

// stubSession is a hand-rolled picker.SessionContract for presenter tests.
type stubSession struct {
	state    picker.State
	current  colorspace.Color
	grid     *sample.Grid
	pos      image.Point
	hist     *history.History
	ticks    int
	selected []colorspace.Color
}

func newStubSession() *stubSession {
	return &stubSession{hist: history.New(8)}
}

func (s *stubSession) Tick(now time.Time)                { s.ticks++ }
func (s *stubSession) Freeze()                           { s.state = picker.StateFrozen; s.hist.Push(s.current) }
func (s *stubSession) Unfreeze()                         { s.state = picker.StateLive }
func (s *stubSession) ToggleFreeze()                     {}
func (s *stubSession) State() picker.State               { return s.state }
func (s *stubSession) Current() colorspace.Color         { return s.current }
func (s *stubSession) CurrentGrid() *sample.Grid         { return s.grid }
func (s *stubSession) CursorPosition() image.Point       { return s.pos }
func (s *stubSession) HistoryColors() []colorspace.Color { return s.hist.Colors() }
func (s *stubSession) AddListener(picker.StateListener)  {}
func (s *stubSession) Stats() picker.Stats               { return picker.Stats{} }
func (s *stubSession) SelectFromHistory(c colorspace.Color) {
	s.selected = append(s.selected, c)
	s.state = picker.StateFrozen
	s.current = c
}

type fakeView struct {
	gridUpdates  int
	swatch       colorspace.Color
	position     string
	hex          string
	stateLabel   string
	histSets     [][]colorspace.Color
	sessionLive  time.Duration
	sessionTotal time.Duration
}

func (v *fakeView) UpdateGrid(img image.Image)       { v.gridUpdates++ }
func (v *fakeView) SetSwatch(c colorspace.Color)     { v.swatch = c }
func (v *fakeView) SetPosition(text string)          { v.position = text }
func (v *fakeView) SetStateLabel(text string)        { v.stateLabel = text }
func (v *fakeView) SetHistory(c []colorspace.Color)  { v.histSets = append(v.histSets, c) }
func (v *fakeView) SetSession(live, t time.Duration) { v.sessionLive, v.sessionTotal = live, t }

func (v *fakeView) SetColorValues(hex, rgb, hsv, hsl, cmyk, oklch string) { v.hex = hex }

func gridOf(t *testing.T, c colorspace.Color) *sample.Grid {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 3, 3))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, 255
	}
	return sample.NewGridFromImage(img, image.Pt(1, 1))
}

func TestPickerPresenterRendersOncePerGrid(t *testing.T) {
	sess := newStubSession()
	view := &fakeView{}
	p := NewPickerPresenter(sess, model.NewZoomModel(8), view, nil)

	sess.grid = gridOf(t, colorspace.FromRGB(9, 9, 9))
	sess.current = colorspace.FromRGB(9, 9, 9)
	p.Tick(time.Now())
	p.Tick(time.Now()) // same immutable grid: no re-render
	if view.gridUpdates != 1 {
		t.Fatalf("grid updates = %d, want 1 for an unchanged grid", view.gridUpdates)
	}
	if sess.ticks != 2 {
		t.Fatalf("session ticks = %d, want 2", sess.ticks)
	}

	sess.grid = gridOf(t, colorspace.FromRGB(1, 1, 1))
	p.Tick(time.Now())
	if view.gridUpdates != 2 {
		t.Fatalf("grid updates = %d after new grid, want 2", view.gridUpdates)
	}
}

func TestPickerPresenterRerendersOnZoomChange(t *testing.T) {
	sess := newStubSession()
	view := &fakeView{}
	zoom := model.NewZoomModel(8)
	p := NewPickerPresenter(sess, zoom, view, nil)

	sess.grid = gridOf(t, colorspace.FromRGB(5, 5, 5))
	p.Tick(time.Now())
	zoom.SetCellSize(16)
	p.Tick(time.Now())
	if view.gridUpdates != 2 {
		t.Fatalf("grid updates = %d after zoom change, want 2", view.gridUpdates)
	}
}

func TestPickerPresenterFormatsReadout(t *testing.T) {
	sess := newStubSession()
	view := &fakeView{}
	p := NewPickerPresenter(sess, model.NewZoomModel(8), view, nil)

	sess.current = colorspace.FromRGB(0xa1, 0xb2, 0xc3)
	sess.pos = image.Pt(12, 34)
	p.Tick(time.Now())
	if view.hex != "#A1B2C3" {
		t.Fatalf("hex readout = %q, want #A1B2C3", view.hex)
	}
	if view.position != "(12, 34)" {
		t.Fatalf("position readout = %q", view.position)
	}
	if view.swatch != sess.current {
		t.Fatalf("swatch = %v, want %v", view.swatch, sess.current)
	}
}

func TestFormatColorValues(t *testing.T) {
	_, rgb, hsv, hsl, cmyk, oklch := formatColorValues(colorspace.FromRGB(255, 0, 0))
	if rgb != "rgb(255, 0, 0)" {
		t.Fatalf("rgb = %q", rgb)
	}
	if hsv != "hsv(0, 100%, 100%)" {
		t.Fatalf("hsv = %q", hsv)
	}
	if hsl != "hsl(0, 100%, 50%)" {
		t.Fatalf("hsl = %q", hsl)
	}
	if cmyk != "cmyk(0%, 100%, 100%, 0%)" {
		t.Fatalf("cmyk = %q", cmyk)
	}
	if oklch != "oklch(0.628 0.258 29.2)" {
		t.Fatalf("oklch = %q", oklch)
	}
}

func TestStatePresenterFlushesLatestTransition(t *testing.T) {
	view := &fakeView{}
	p := NewStatePresenter(view)
	p.Tick(time.Now()) // initial label
	if view.stateLabel != "Live (Space freezes)" {
		t.Fatalf("initial label = %q", view.stateLabel)
	}
	p.OnState(picker.StateLive, picker.StateFrozen)
	p.OnState(picker.StateFrozen, picker.StateLive)
	p.OnState(picker.StateLive, picker.StateFrozen)
	p.Tick(time.Now())
	if view.stateLabel != "Frozen (Esc resumes)" {
		t.Fatalf("label = %q, want the latest queued state", view.stateLabel)
	}
}

func TestHistoryPresenterPushesOnChangeOnly(t *testing.T) {
	sess := newStubSession()
	view := &fakeView{}
	p := NewHistoryPresenter(sess, view, nil)

	p.Tick(time.Now()) // empty == empty: no push
	if len(view.histSets) != 0 {
		t.Fatalf("history pushed %d times for empty history", len(view.histSets))
	}

	sess.current = colorspace.FromRGB(3, 3, 3)
	sess.Freeze()
	p.Tick(time.Now())
	p.Tick(time.Now())
	if len(view.histSets) != 1 {
		t.Fatalf("history pushed %d times, want 1", len(view.histSets))
	}
	if got := view.histSets[0]; len(got) != 1 || got[0] != colorspace.FromRGB(3, 3, 3) {
		t.Fatalf("history view = %v", got)
	}
}

func TestHistoryPresenterSelectFreezesSession(t *testing.T) {
	sess := newStubSession()
	p := NewHistoryPresenter(sess, &fakeView{}, nil)
	c := colorspace.FromRGB(7, 8, 9)
	p.Select(c)
	if len(sess.selected) != 1 || sess.selected[0] != c {
		t.Fatalf("selected = %v", sess.selected)
	}
	if sess.state != picker.StateFrozen {
		t.Fatalf("state = %v, want frozen", sess.state)
	}
}

func TestSessionPresenterTracksLiveTime(t *testing.T) {
	sess := newStubSession()
	view := &fakeView{}
	p := NewSessionPresenter(model.NewSessionModel(), sess, view)
	base := time.Unix(0, 0)
	p.Tick(base)
	p.Tick(base.Add(3 * time.Second))
	if view.sessionLive < 3*time.Second {
		t.Fatalf("live duration = %v, want >= 3s", view.sessionLive)
	}
	sess.state = picker.StateFrozen
	p.Tick(base.Add(5 * time.Second))
	frozenLive := view.sessionLive
	p.Tick(base.Add(9 * time.Second))
	if view.sessionLive != frozenLive {
		t.Fatalf("live duration advanced while frozen: %v -> %v", frozenLive, view.sessionLive)
	}
}

func TestLoopTicksAllAndReschedules(t *testing.T) {
	sess := newStubSession()
	view := &fakeView{}
	scheduled := 0
	loop := NewLoop(
		NewPickerPresenter(sess, model.NewZoomModel(8), view, nil),
		NewStatePresenter(view),
		NewHistoryPresenter(sess, view, nil),
		NewSessionPresenter(model.NewSessionModel(), sess, view),
		func() { scheduled++ },
	)
	loop.Tick()
	if sess.ticks != 1 {
		t.Fatalf("session ticks = %d, want 1", sess.ticks)
	}
	if scheduled != 1 {
		t.Fatalf("schedule calls = %d, want 1", scheduled)
	}
	if view.stateLabel == "" {
		t.Fatalf("state label not initialized by loop tick")
	}
}
