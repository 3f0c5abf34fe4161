package picker

import (
	"image"
	"time"

	"github.com/soocke/pixel-picker-go/domain/colorspace"
	"github.com/soocke/pixel-picker-go/domain/sample"
)

// State enumerates the finite states of a capture session.
type State int

const (
	// StateLive tracks the cursor: every tick refreshes the grid and the
	// displayed color.
	StateLive State = iota
	// StateFrozen pins the displayed color until an explicit unfreeze.
	StateFrozen
)

func (s State) String() string {
	switch s {
	case StateLive:
		return "live"
	case StateFrozen:
		return "frozen"
	default:
		return "unknown"
	}
}

// StateListener is called on each successful state transition.
type StateListener func(prev, next State)

// CursorFunc reports the current cursor position in virtual-screen
// coordinates. ok is false when the position is unknown (e.g. during monitor
// reconfiguration); the session skips the tick.
type CursorFunc func() (image.Point, bool)

// Stats summarises session tick behaviour for instrumentation.
type Stats struct {
	Ticks       uint64
	Skipped     uint64
	Freezes     uint64
	AvgTick     time.Duration
	LastTick    time.Time
	LastSkipped bool
}

// StateSource exposes read access for presenters.
type StateSource interface {
	State() State
	Current() colorspace.Color
	CurrentGrid() *sample.Grid
	CursorPosition() image.Point
}

// HistorySource exposes the ordered history view.
type HistorySource interface {
	HistoryColors() []colorspace.Color
}

// Transitions groups the four session operations the UI may invoke.
type Transitions interface {
	Freeze()
	Unfreeze()
	ToggleFreeze()
	SelectFromHistory(colorspace.Color)
}

// SessionContract aggregates the session surface for DI.
type SessionContract interface {
	StateSource
	HistorySource
	Transitions
	Tick(now time.Time)
	AddListener(StateListener)
	Stats() Stats
}
