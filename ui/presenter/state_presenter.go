package presenter

import (
	"time"

	"github.com/soocke/pixel-picker-go/domain/picker"
)

// StateView sets the session state label in the view.
type StateView interface{ SetStateLabel(string) }

// StatePresenter receives session transitions and updates the view on the
// next tick, keeping label writes on the UI scheduler thread.
type StatePresenter struct {
	view    StateView
	latest  picker.State
	shown   bool
	pending []picker.State
}

func NewStatePresenter(view StateView) *StatePresenter {
	return &StatePresenter{view: view}
}

// OnState queues a transitioned state from the session listener.
//
// The latest queued state will be reflected on the next Tick.
func (p *StatePresenter) OnState(prev, next picker.State) {
	if p == nil {
		return
	}
	p.pending = append(p.pending, next)
}

// Tick processes queued states and updates the view with the most recent one.
// It clears the pending queue after processing.
func (p *StatePresenter) Tick(now time.Time) {
	if p == nil || p.view == nil {
		return
	}
	if !p.shown {
		p.shown = true
		p.view.SetStateLabel(stateText(p.latest))
		return
	}
	if len(p.pending) > 0 {
		last := p.pending[len(p.pending)-1]
		p.pending = p.pending[:0]
		if last != p.latest {
			p.latest = last
			p.view.SetStateLabel(stateText(last))
		}
	}
}

func stateText(s picker.State) string {
	if s == picker.StateFrozen {
		return "Frozen (Esc resumes)"
	}
	return "Live (Space freezes)"
}
