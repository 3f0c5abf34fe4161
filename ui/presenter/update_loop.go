package presenter

import "time"

// Loop aggregates feature presenters and drives periodic updates.
//
// It calls Tick on the sub-presenters and invokes a scheduler callback. The
// zero value is usable (methods are nil-safe), so tests can drive any subset
// synchronously.
type Loop struct {
	Picker   *PickerPresenter
	State    *StatePresenter
	History  *HistoryPresenter
	Session  *SessionPresenter
	Schedule func()
}

func NewLoop(pick *PickerPresenter, state *StatePresenter, hist *HistoryPresenter, sess *SessionPresenter, schedule func()) *Loop {
	return &Loop{Picker: pick, State: state, History: hist, Session: sess, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	now := time.Now()
	if l.Picker != nil {
		l.Picker.Tick(now)
	}
	// State presenter after the picker so freshly queued transitions flush
	// in the same frame.
	if l.State != nil {
		l.State.Tick(now)
	}
	if l.History != nil {
		l.History.Tick(now)
	}
	if l.Session != nil {
		l.Session.Tick(now)
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
