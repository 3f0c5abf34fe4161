package presenter

import (
	"time"

	"github.com/soocke/pixel-picker-go/domain/picker"
	"github.com/soocke/pixel-picker-go/ui/model"
)

// LiveSource reports whether the session is currently live-tracking.
type LiveSource interface{ State() picker.State }

// SessionView displays formatted live and total durations.
type SessionView interface {
	SetSession(live, total time.Duration)
}

// SessionPresenter feeds live-time tracking from the session state into the
// model and pushes the durations to the view.
type SessionPresenter struct {
	sess *model.SessionModel
	src  LiveSource
	view SessionView
}

// NewSessionPresenter returns a new SessionPresenter.
func NewSessionPresenter(sess *model.SessionModel, src LiveSource, view SessionView) *SessionPresenter {
	return &SessionPresenter{sess: sess, src: src, view: view}
}

// Tick updates the presenter: advance the session model and push values to the view.
func (p *SessionPresenter) Tick(now time.Time) {
	if p == nil || p.sess == nil || p.src == nil || p.view == nil {
		return
	}
	p.sess.OnTick(p.src.State() == picker.StateLive, now)
	live, total := p.sess.Values()
	p.view.SetSession(live, total)
}
