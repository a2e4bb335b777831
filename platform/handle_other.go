//go:build !windows

package platform

import (
	"fmt"
	"runtime"
)

// Handle is only implemented on Windows, the single platform with a Direct3D 9 device.
func (w *Window) Handle() (uintptr, error) {
	return 0, fmt.Errorf("platform: native window handle not supported on %s", runtime.GOOS)
}
