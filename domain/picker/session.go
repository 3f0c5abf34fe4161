package picker

import (
	"errors"
	"image"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/soocke/pixel-picker-go/domain/colorspace"
	"github.com/soocke/pixel-picker-go/domain/history"
	"github.com/soocke/pixel-picker-go/domain/sample"
)

// Session orchestrates periodic captures and the live/frozen state machine.
// All transitions and the tick serialize on one mutex: ticks arrive from the
// UI scheduler while freeze/unfreeze/select arrive from input callbacks, and
// neither may observe a half-updated grid or state flag. Each operation is
// short and bounded (at most one OS read), so no finer locking is needed.
type Session struct {
	mu      sync.Mutex
	state   State
	sampler *sample.Sampler
	cursor  CursorFunc
	radius  int
	grid    *sample.Grid
	current colorspace.Color
	pos     image.Point
	hist    *history.History
	logger  *slog.Logger

	listeners []StateListener

	ticks     atomic.Uint64
	skipped   atomic.Uint64
	freezes   atomic.Uint64
	tickNanos atomic.Uint64
	lastTick  atomic.Int64 // unix nanos
	lastSkip  atomic.Bool
}

// NewSession returns a Session in StateLive. radius must already be validated
// by configuration; hist may be pre-populated from persisted settings.
func NewSession(sampler *sample.Sampler, cursor CursorFunc, radius int, hist *history.History, logger *slog.Logger) *Session {
	if hist == nil {
		hist = history.New(history.DefaultCapacity)
	}
	return &Session{
		state:   StateLive,
		sampler: sampler,
		cursor:  cursor,
		radius:  radius,
		hist:    hist,
		logger:  logger,
	}
}

// Tick refreshes the grid and displayed color from the live cursor position.
// A no-op while frozen. Failed captures (off-screen cursor, denied read) skip
// the tick and retain the previous grid.
func (s *Session) Tick(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateLive {
		return
	}
	start := time.Now()
	pos, ok := s.cursor()
	if !ok {
		s.skip()
		return
	}
	grid, err := s.sampler.Capture(pos, s.radius)
	if err != nil {
		if s.logger != nil && !errors.Is(err, sample.ErrNoMonitorFound) {
			s.logger.Debug("tick skipped", "error", err)
		}
		s.skip()
		return
	}
	s.grid = grid
	s.current = grid.CenterColor()
	s.pos = pos
	s.ticks.Add(1)
	s.tickNanos.Add(uint64(time.Since(start).Nanoseconds()))
	s.lastTick.Store(now.UnixNano())
	s.lastSkip.Store(false)
}

func (s *Session) skip() {
	s.skipped.Add(1)
	s.lastSkip.Store(true)
}

// Freeze pins the currently displayed color and records it in the history
// (front insert, or move to front when already present). A no-op while
// already frozen.
func (s *Session) Freeze() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateLive {
		return
	}
	s.hist.Push(s.current)
	s.freezes.Add(1)
	s.transition(StateFrozen)
}

// Unfreeze resumes live tracking. A no-op while already live.
func (s *Session) Unfreeze() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateFrozen {
		return
	}
	s.transition(StateLive)
}

// ToggleFreeze flips between live and frozen.
func (s *Session) ToggleFreeze() {
	s.mu.Lock()
	frozen := s.state == StateFrozen
	s.mu.Unlock()
	if frozen {
		s.Unfreeze()
	} else {
		s.Freeze()
	}
}

// SelectFromHistory pins c as the displayed color and freezes, without
// capturing a new region. History ordering is left untouched; only a fresh
// Freeze moves entries to the front.
func (s *Session) SelectFromHistory(c colorspace.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = c
	if s.state != StateFrozen {
		s.transition(StateFrozen)
	}
}

// transition fires listeners; callers hold the mutex.
func (s *Session) transition(next State) {
	prev := s.state
	if prev == next {
		return
	}
	s.state = next
	if s.logger != nil {
		s.logger.Debug("session state transition", "from", prev.String(), "to", next.String())
	}
	for _, l := range s.listeners {
		l(prev, next)
	}
}

// SetRadius changes the capture radius for subsequent ticks. The current
// grid stays displayed until the next live tick replaces it.
func (s *Session) SetRadius(radius int) {
	if radius < 1 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.radius = radius
}

// AddListener registers a transition listener. Listeners run inside the
// session's critical section and must not call back into the session.
func (s *Session) AddListener(l StateListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// State returns the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Current returns the displayed color: the live center sample, or the pinned
// color while frozen.
func (s *Session) Current() colorspace.Color {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// CurrentGrid returns the most recent sample grid, which may be nil before
// the first successful tick. Grids are immutable snapshots.
func (s *Session) CurrentGrid() *sample.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid
}

// CursorPosition returns the screen position of the last successful sample.
// While frozen this is the position the pinned sample came from.
func (s *Session) CursorPosition() image.Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos
}

// HistoryColors returns the history most-recent-first.
func (s *Session) HistoryColors() []colorspace.Color {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hist.Colors()
}

// Stats reports tick instrumentation.
func (s *Session) Stats() Stats {
	ticks := s.ticks.Load()
	total := s.tickNanos.Load()
	var avg time.Duration
	if ticks > 0 {
		avg = time.Duration(total / ticks)
	}
	var last time.Time
	if n := s.lastTick.Load(); n != 0 {
		last = time.Unix(0, n)
	}
	return Stats{
		Ticks:       ticks,
		Skipped:     s.skipped.Load(),
		Freezes:     s.freezes.Load(),
		AvgTick:     avg,
		LastTick:    last,
		LastSkipped: s.lastSkip.Load(),
	}
}

var _ SessionContract = (*Session)(nil)
