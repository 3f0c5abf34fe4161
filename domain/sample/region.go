package sample

import (
	"fmt"
	"image"
)

// Screen is the OS screen-query collaborator. Displays reports the bounds of
// every connected monitor in virtual-screen coordinates; ReadPixels captures
// the given region as a flat RGBA buffer.
type Screen interface {
	Displays() []image.Rectangle
	ReadPixels(region image.Rectangle) (*image.RGBA, error)
}

// RegionFor computes the capture rectangle for a cursor position. The ideal
// region is a square of side 2*radius+1 centered on the cursor. When it
// overhangs a monitor edge the region is shifted back inside, keeping its full
// size; it is shrunk only when the monitor itself is smaller than the square.
// The returned point is the cell containing the cursor, relative to the region
// origin, so the crosshair stays on the right cell after shifting.
func RegionFor(center image.Point, radius int, monitor image.Rectangle) (image.Rectangle, image.Point, error) {
	if radius < 1 {
		return image.Rectangle{}, image.Point{}, fmt.Errorf("%w: radius %d", ErrInvalidRegion, radius)
	}
	if monitor.Empty() {
		return image.Rectangle{}, image.Point{}, fmt.Errorf("%w: empty monitor bounds", ErrInvalidRegion)
	}
	r := image.Rect(center.X-radius, center.Y-radius, center.X+radius+1, center.Y+radius+1)

	r = shiftAxis(r, monitor, true)
	r = shiftAxis(r, monitor, false)

	cell := center.Sub(r.Min)
	// The cursor may sit outside the monitor; keep the cell inside the region.
	cell.X = clamp(cell.X, 0, r.Dx()-1)
	cell.Y = clamp(cell.Y, 0, r.Dy()-1)
	return r, cell, nil
}

// shiftAxis slides the region inside the monitor along one axis, shrinking to
// the monitor span only when the region is wider than the monitor.
func shiftAxis(r, monitor image.Rectangle, horizontal bool) image.Rectangle {
	if horizontal {
		if r.Dx() >= monitor.Dx() {
			r.Min.X, r.Max.X = monitor.Min.X, monitor.Max.X
			return r
		}
		if d := monitor.Min.X - r.Min.X; d > 0 {
			r = r.Add(image.Pt(d, 0))
		} else if d := r.Max.X - monitor.Max.X; d > 0 {
			r = r.Sub(image.Pt(d, 0))
		}
		return r
	}
	if r.Dy() >= monitor.Dy() {
		r.Min.Y, r.Max.Y = monitor.Min.Y, monitor.Max.Y
		return r
	}
	if d := monitor.Min.Y - r.Min.Y; d > 0 {
		r = r.Add(image.Pt(0, d))
	} else if d := r.Max.Y - monitor.Max.Y; d > 0 {
		r = r.Sub(image.Pt(0, d))
	}
	return r
}

// MonitorAt returns the bounds of the display containing p.
func MonitorAt(p image.Point, displays []image.Rectangle) (image.Rectangle, bool) {
	for _, d := range displays {
		if p.In(d) {
			return d, true
		}
	}
	return image.Rectangle{}, false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
