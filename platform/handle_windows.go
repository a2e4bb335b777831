//go:build windows

package platform

import (
	"errors"
	"unsafe"
)

// Handle returns the HWND of the window.
func (w *Window) Handle() (uintptr, error) {
	if w.win == nil {
		return 0, errors.New("platform: window destroyed")
	}
	hwnd := w.win.GetWin32Window()
	if hwnd == nil {
		return 0, errors.New("platform: no native window handle")
	}
	return uintptr(unsafe.Pointer(hwnd)), nil
}
