package capture

import (
	"image"
	"log/slog"
	"sync/atomic"
	"time"
)

// CursorWatcher polls the OS pointer position on its own goroutine and keeps
// the latest sample in an atomic slot, so the session's tick never blocks on
// an OS query racing the UI thread. Start/Stop are idempotent.
type CursorWatcher struct {
	source   func() (image.Point, bool)
	interval time.Duration
	logger   *slog.Logger
	running  atomic.Bool
	done     chan struct{}
	latest   atomic.Pointer[cursorSample]
	polls    atomic.Uint64
	misses   atomic.Uint64
}

type cursorSample struct {
	pos image.Point
	ok  bool
}

// NewCursorWatcher constructs a watcher polling source at interval.
func NewCursorWatcher(source func() (image.Point, bool), interval time.Duration, logger *slog.Logger) *CursorWatcher {
	if interval <= 0 {
		interval = 15 * time.Millisecond
	}
	return &CursorWatcher{source: source, interval: interval, logger: logger}
}

// Start launches the polling goroutine.
func (w *CursorWatcher) Start() {
	if w.running.Load() {
		return
	}
	w.done = make(chan struct{})
	w.running.Store(true)
	go w.loop()
}

// Stop terminates polling. The last observed position stays readable.
func (w *CursorWatcher) Stop() {
	if !w.running.Load() {
		return
	}
	close(w.done)
	w.running.Store(false)
}

// Running reports whether the poll loop is active.
func (w *CursorWatcher) Running() bool { return w.running.Load() }

// Position returns the latest observed cursor position. ok is false before
// the first successful poll or when the OS query failed.
func (w *CursorWatcher) Position() (image.Point, bool) {
	s := w.latest.Load()
	if s == nil {
		return image.Point{}, false
	}
	return s.pos, s.ok
}

func (w *CursorWatcher) loop() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			w.poll()
		case <-w.done:
			return
		}
	}
}

func (w *CursorWatcher) poll() {
	pos, ok := w.source()
	w.polls.Add(1)
	if !ok {
		w.misses.Add(1)
	}
	w.latest.Store(&cursorSample{pos: pos, ok: ok})
}

// Stats returns poll and miss counts for the debug log.
func (w *CursorWatcher) Stats() (polls, misses uint64) {
	return w.polls.Load(), w.misses.Load()
}
