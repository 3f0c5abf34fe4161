//go:build windows

package capture

import (
	"image"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modUser32        = windows.NewLazySystemDLL("user32.dll")
	procGetCursorPos = modUser32.NewProc("GetCursorPos")
)

type winPoint struct {
	X, Y int32
}

// CursorPosition reports the pointer position in virtual-screen coordinates.
// ok is false when the Win32 query fails.
func CursorPosition() (image.Point, bool) {
	var p winPoint
	r1, _, _ := procGetCursorPos.Call(uintptr(unsafe.Pointer(&p)))
	if r1 == 0 {
		return image.Point{}, false
	}
	return image.Pt(int(p.X), int(p.Y)), true
}
