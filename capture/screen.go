// Package capture provides the OS-facing collaborators: display-backed pixel
// reads and cursor position polling.
package capture

import (
	"fmt"
	"image"

	"github.com/kbinani/screenshot"

	"github.com/soocke/pixel-picker-go/domain/sample"
)

// DisplayScreen implements sample.Screen on top of the OS screenshot API.
type DisplayScreen struct{}

// NewDisplayScreen returns the live screen collaborator.
func NewDisplayScreen() DisplayScreen { return DisplayScreen{} }

// Displays returns the bounds of every active display in virtual-screen
// coordinates.
func (DisplayScreen) Displays() []image.Rectangle {
	n := screenshot.NumActiveDisplays()
	out := make([]image.Rectangle, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, screenshot.GetDisplayBounds(i))
	}
	return out
}

// ReadPixels captures the given region.
func (DisplayScreen) ReadPixels(region image.Rectangle) (*image.RGBA, error) {
	img, err := screenshot.CaptureRect(region)
	if err != nil {
		return nil, fmt.Errorf("capturing region %s: %w", region.String(), err)
	}
	return img, nil
}

var _ sample.Screen = DisplayScreen{}
