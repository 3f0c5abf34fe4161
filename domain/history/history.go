// Package history keeps a bounded, most-recent-first list of captured colors.
package history

import "github.com/soocke/pixel-picker-go/domain/colorspace"

// DefaultCapacity bounds a History constructed with a non-positive capacity.
const DefaultCapacity = 12

// History is an ordered collection of previously captured colors. Pushing a
// color already present moves it to the front instead of duplicating it.
// Mutations arrive only from the capture session's critical section, so the
// type carries no locking of its own.
type History struct {
	capacity int
	colors   []colorspace.Color
}

// New returns an empty History bounded to capacity.
func New(capacity int) *History {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &History{capacity: capacity}
}

// Capacity returns the maximum number of retained colors.
func (h *History) Capacity() int { return h.capacity }

// Len returns the current number of entries.
func (h *History) Len() int { return len(h.colors) }

// Push records c as the most recent color. An existing equal entry (exact
// channel equality) moves to the front; otherwise c is inserted at the front
// and the oldest entry is evicted once the capacity is exceeded.
func (h *History) Push(c colorspace.Color) {
	for i, existing := range h.colors {
		if existing.Equal(c) {
			copy(h.colors[1:i+1], h.colors[:i])
			h.colors[0] = c
			return
		}
	}
	h.colors = append(h.colors, colorspace.Color{})
	copy(h.colors[1:], h.colors)
	h.colors[0] = c
	if len(h.colors) > h.capacity {
		h.colors = h.colors[:h.capacity]
	}
}

// Colors returns the entries most-recent-first. The slice is a copy.
func (h *History) Colors() []colorspace.Color {
	out := make([]colorspace.Color, len(h.colors))
	copy(out, h.colors)
	return out
}

// Restore replaces the contents with a previously persisted sequence. The
// order is trusted; the only validation is truncation to capacity.
func (h *History) Restore(colors []colorspace.Color) {
	if len(colors) > h.capacity {
		colors = colors[:h.capacity]
	}
	h.colors = append(h.colors[:0], colors...)
}
