package model

import (
	"time"
)

// SessionModel tracks how long the picker has been live-tracking in the
// current stretch and in total (frozen time does not count). It is decoupled
// from the UI; presenters should poll Values() and update views.
// The zero value is ready to use.
type SessionModel struct {
	active           bool
	liveStart        time.Time
	lastLiveDuration time.Duration
	accumulated      time.Duration
}

// NewSessionModel returns a pointer to a ready-to-use SessionModel.
func NewSessionModel() *SessionModel { return &SessionModel{} }

// OnTick updates the model using the current live/frozen state and timestamp.
// Call periodically (for example, from a presenter tick).
func (m *SessionModel) OnTick(live bool, now time.Time) {
	if m == nil {
		return
	}
	if live {
		if !m.active { // transition frozen -> live
			m.active = true
			m.liveStart = now
			m.lastLiveDuration = 0
		}
		m.lastLiveDuration = now.Sub(m.liveStart)
	} else if m.active { // transition live -> frozen
		m.lastLiveDuration = now.Sub(m.liveStart)
		m.accumulated += m.lastLiveDuration
		m.active = false
	}
}

// Values returns the current live stretch duration and the total accumulated
// live time. The total includes the ongoing stretch when active.
func (m *SessionModel) Values() (live, total time.Duration) {
	if m == nil {
		return 0, 0
	}
	live = m.lastLiveDuration
	total = m.accumulated
	if m.active {
		total += live
	}
	return
}
