package picker

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/soocke/pixel-picker-go/domain/colorspace"
	"github.com/soocke/pixel-picker-go/domain/history"
	"github.com/soocke/pixel-picker-go/domain/sample"
)

var discardLogger = slog.New(slog.NewTextHandler(&discardWriter{}, nil))

type discardWriter struct{}

func (d *discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// solidScreen answers every read with one solid color, switchable per test.
type solidScreen struct {
	bounds  image.Rectangle
	color   color.RGBA
	readErr error
}

func (f *solidScreen) Displays() []image.Rectangle { return []image.Rectangle{f.bounds} }

func (f *solidScreen) ReadPixels(region image.Rectangle) (*image.RGBA, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	out := image.NewRGBA(image.Rect(0, 0, region.Dx(), region.Dy()))
	for i := 0; i < len(out.Pix); i += 4 {
		out.Pix[i], out.Pix[i+1], out.Pix[i+2], out.Pix[i+3] = f.color.R, f.color.G, f.color.B, 255
	}
	return out, nil
}

type testRig struct {
	screen  *solidScreen
	session *Session
	cursor  image.Point
	lost    bool
}

func newTestRig(t *testing.T) *testRig {
	t.Helper()
	r := &testRig{
		screen: &solidScreen{bounds: image.Rect(0, 0, 1920, 1080), color: color.RGBA{R: 10, G: 20, B: 30}},
		cursor: image.Pt(500, 500),
	}
	sampler := sample.NewSampler(r.screen, discardLogger)
	r.session = NewSession(sampler, func() (image.Point, bool) { return r.cursor, !r.lost }, 2, history.New(8), discardLogger)
	return r
}

func (r *testRig) tick() { r.session.Tick(time.Now()) }

func TestTickUpdatesCurrentColor(t *testing.T) {
	r := newTestRig(t)
	r.tick()
	if got := r.session.Current(); got != colorspace.FromRGB(10, 20, 30) {
		t.Fatalf("current = %v, want screen color", got)
	}
	g := r.session.CurrentGrid()
	if g == nil || g.Width != 5 || g.Height != 5 {
		t.Fatalf("grid = %+v, want 5x5", g)
	}
}

func TestFreezePinsColorAgainstScreenChanges(t *testing.T) {
	r := newTestRig(t)
	r.tick()
	r.session.Freeze()
	if r.session.State() != StateFrozen {
		t.Fatalf("state = %v, want frozen", r.session.State())
	}
	pinned := r.session.Current()

	r.screen.color = color.RGBA{R: 200, G: 0, B: 0}
	r.tick() // no-op while frozen
	if got := r.session.Current(); got != pinned {
		t.Fatalf("frozen color drifted: %v -> %v", pinned, got)
	}
}

func TestFreezeUnfreezeTickShowsLiveSample(t *testing.T) {
	r := newTestRig(t)
	r.tick()
	r.session.Freeze()
	r.screen.color = color.RGBA{R: 99, G: 88, B: 77}
	r.session.Unfreeze()
	r.tick()
	if r.session.State() != StateLive {
		t.Fatalf("state = %v, want live", r.session.State())
	}
	if got := r.session.Current(); got != colorspace.FromRGB(99, 88, 77) {
		t.Fatalf("current = %v, want the latest live sample", got)
	}
}

func TestFreezeAppendsToHistoryWithDedup(t *testing.T) {
	r := newTestRig(t)
	r.tick()
	r.session.Freeze()
	r.session.Unfreeze()
	r.tick()
	r.session.Freeze() // same color again
	if got := r.session.HistoryColors(); len(got) != 1 {
		t.Fatalf("history = %v, want a single deduplicated entry", got)
	}

	r.session.Unfreeze()
	r.screen.color = color.RGBA{R: 1, G: 2, B: 3}
	r.tick()
	r.session.Freeze()
	got := r.session.HistoryColors()
	if len(got) != 2 || got[0] != colorspace.FromRGB(1, 2, 3) {
		t.Fatalf("history = %v, want newest first", got)
	}
}

func TestSelectFromHistoryFreezesWithoutReorder(t *testing.T) {
	r := newTestRig(t)
	colors := []color.RGBA{{R: 1}, {R: 2}, {R: 3}}
	for _, c := range colors {
		r.screen.color = c
		r.session.Unfreeze()
		r.tick()
		r.session.Freeze()
	}
	before := r.session.HistoryColors()

	oldest := before[len(before)-1]
	r.session.SelectFromHistory(oldest)
	if r.session.State() != StateFrozen {
		t.Fatalf("state = %v, want frozen after selection", r.session.State())
	}
	if got := r.session.Current(); got != oldest {
		t.Fatalf("current = %v, want re-selected %v", got, oldest)
	}
	after := r.session.HistoryColors()
	for i := range before {
		if after[i] != before[i] {
			t.Fatalf("selection reordered history: %v -> %v", before, after)
		}
	}
}

func TestFailedTickRetainsPreviousGrid(t *testing.T) {
	r := newTestRig(t)
	r.tick()
	prevColor := r.session.Current()

	r.cursor = image.Pt(5000, 5000) // off every display
	r.tick()
	if got := r.session.Current(); got != prevColor {
		t.Fatalf("current changed across a failed tick: %v -> %v", prevColor, got)
	}
	if r.session.CurrentGrid() == nil {
		t.Fatalf("previous grid dropped on failed tick")
	}

	r.cursor = image.Pt(100, 100)
	r.screen.readErr = fmt.Errorf("capture denied")
	r.tick()
	if got := r.session.Current(); got != prevColor {
		t.Fatalf("current changed across an unavailable capture: %v -> %v", prevColor, got)
	}
	stats := r.session.Stats()
	if stats.Skipped != 2 || !stats.LastSkipped {
		t.Fatalf("stats = %+v, want 2 skipped ticks", stats)
	}
}

func TestCursorLostSkipsTick(t *testing.T) {
	r := newTestRig(t)
	r.lost = true
	r.tick()
	if stats := r.session.Stats(); stats.Ticks != 0 || stats.Skipped != 1 {
		t.Fatalf("stats = %+v, want one skipped and no successful ticks", stats)
	}
}

func TestToggleFreeze(t *testing.T) {
	r := newTestRig(t)
	r.tick()
	r.session.ToggleFreeze()
	if r.session.State() != StateFrozen {
		t.Fatalf("state = %v after first toggle, want frozen", r.session.State())
	}
	r.session.ToggleFreeze()
	if r.session.State() != StateLive {
		t.Fatalf("state = %v after second toggle, want live", r.session.State())
	}
}

func TestListenersSeeTransitions(t *testing.T) {
	r := newTestRig(t)
	var mu sync.Mutex
	var seq []State
	r.session.AddListener(func(prev, next State) {
		mu.Lock()
		seq = append(seq, next)
		mu.Unlock()
	})
	r.tick()
	r.session.Freeze()
	r.session.Freeze() // no-op, no event
	r.session.Unfreeze()
	mu.Lock()
	defer mu.Unlock()
	if len(seq) != 2 || seq[0] != StateFrozen || seq[1] != StateLive {
		t.Fatalf("listener sequence = %v, want [frozen live]", seq)
	}
}

func TestRestoredHistoryIsVisible(t *testing.T) {
	h := history.New(4)
	h.Restore([]colorspace.Color{colorspace.FromRGB(5, 5, 5), colorspace.FromRGB(6, 6, 6)})
	screen := &solidScreen{bounds: image.Rect(0, 0, 100, 100), color: color.RGBA{R: 1}}
	s := NewSession(sample.NewSampler(screen, discardLogger), func() (image.Point, bool) {
		return image.Pt(50, 50), true
	}, 2, h, discardLogger)
	got := s.HistoryColors()
	if len(got) != 2 || got[0] != colorspace.FromRGB(5, 5, 5) {
		t.Fatalf("restored history = %v", got)
	}
}

func TestSetRadiusResizesNextGrid(t *testing.T) {
	r := newTestRig(t)
	r.tick()
	if g := r.session.CurrentGrid(); g == nil || g.Width != 5 {
		t.Fatalf("grid width = %+v, want 5", g)
	}
	r.session.SetRadius(4)
	r.tick()
	if g := r.session.CurrentGrid(); g == nil || g.Width != 9 || g.Height != 9 {
		t.Fatalf("grid after radius change = %+v, want 9x9", g)
	}
	r.session.SetRadius(0) // ignored
	r.tick()
	if g := r.session.CurrentGrid(); g == nil || g.Width != 9 {
		t.Fatalf("grid after invalid radius = %+v, want 9x9", g)
	}
}
