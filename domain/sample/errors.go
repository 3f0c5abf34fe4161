package sample

import "errors"

var (
	// ErrNoMonitorFound means the cursor position lies outside every known
	// display. Callers skip the tick and retain the previous grid.
	ErrNoMonitorFound = errors.New("no monitor contains the cursor position")

	// ErrCaptureUnavailable means the OS refused or failed the screen read.
	// Transient; callers skip the tick.
	ErrCaptureUnavailable = errors.New("screen capture unavailable")

	// ErrInvalidRegion means the requested region has non-positive
	// dimensions. A configuration error, rejected before any OS call.
	ErrInvalidRegion = errors.New("invalid capture region")
)
