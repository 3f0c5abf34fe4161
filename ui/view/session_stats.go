package view

import (
	"fmt"
	"time"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// SessionStats updates live and total tracking durations.
type SessionStats interface {
	SetSession(live, total time.Duration)
}

type sessionStats struct {
	liveLbl  *LabelWidget
	totalLbl *LabelWidget
}

// NewSessionStats creates live and total duration labels at (row, startCol)
// and (row, startCol+1).
func NewSessionStats(row, startCol int) SessionStats {
	s := &sessionStats{liveLbl: Label(Width(14)), totalLbl: Label(Width(14))}
	Grid(s.liveLbl, Row(row), Column(startCol), Sticky("w"), Padx("0.2m"))
	Grid(s.totalLbl, Row(row), Column(startCol+1), Sticky("w"), Padx("0.2m"))
	s.liveLbl.Configure(Txt("Live: 00:00"))
	s.totalLbl.Configure(Txt("Total: 00:00"))
	return s
}

// SetSession updates both duration displays.
func (s *sessionStats) SetSession(live, total time.Duration) {
	if s == nil {
		return
	}
	if s.liveLbl != nil {
		s.liveLbl.Configure(Txt("Live: " + mmss(live)))
	}
	if s.totalLbl != nil {
		s.totalLbl.Configure(Txt("Total: " + mmss(total)))
	}
}

func mmss(d time.Duration) string {
	seconds := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
