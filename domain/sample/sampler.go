package sample

import (
	"fmt"
	"image"
	"log/slog"
)

// Sampler implements region capture: monitor hit-test, region clamping and
// pixel read through the Screen collaborator. It holds no state between calls
// beyond the Screen handle, keeping the per-tick hot path allocation-bounded.
type Sampler struct {
	screen Screen
	logger *slog.Logger
}

// NewSampler returns a Sampler reading through screen.
func NewSampler(screen Screen, logger *slog.Logger) *Sampler {
	return &Sampler{screen: screen, logger: logger}
}

// Capture samples the square of side 2*radius+1 around center and returns it
// as a Grid. It fails with ErrNoMonitorFound when center is on no display and
// wraps OS read failures in ErrCaptureUnavailable.
func (s *Sampler) Capture(center image.Point, radius int) (*Grid, error) {
	monitor, ok := MonitorAt(center, s.screen.Displays())
	if !ok {
		return nil, fmt.Errorf("%w: point (%d,%d)", ErrNoMonitorFound, center.X, center.Y)
	}
	region, cell, err := RegionFor(center, radius, monitor)
	if err != nil {
		return nil, err
	}
	img, err := s.screen.ReadPixels(region)
	if err != nil {
		if s.logger != nil {
			s.logger.Debug("pixel read failed", "region", region.String(), "error", err)
		}
		return nil, fmt.Errorf("%w: %v", ErrCaptureUnavailable, err)
	}
	return NewGridFromImage(img, cell), nil
}
