package model

import (
	"sync/atomic"

	"github.com/soocke/pixel-picker-go/config"
)

// ZoomModel holds the magnification cell size in pixels. Concurrency-safe via
// atomic Int64 because UI callbacks and presenter ticks may race.
type ZoomModel struct{ cellSize atomic.Int64 }

// NewZoomModel returns a model initialized to size (clamped).
func NewZoomModel(size int) *ZoomModel {
	m := &ZoomModel{}
	m.SetCellSize(size)
	return m
}

// CellSize returns the current magnified cell size.
func (m *ZoomModel) CellSize() int {
	if m == nil {
		return config.MinCellSize
	}
	return int(m.cellSize.Load())
}

// SetCellSize stores a clamped cell size.
func (m *ZoomModel) SetCellSize(size int) {
	if m == nil {
		return
	}
	if size < config.MinCellSize {
		size = config.MinCellSize
	}
	if size > config.MaxCellSize {
		size = config.MaxCellSize
	}
	m.cellSize.Store(int64(size))
}
