//go:build windows

package dx9

import (
	"errors"
	"image/color"

	"github.com/esimov/imdx9"
	"github.com/gonutz/d3d9"
)

var errReleased = errors.New("device already released")

// Device is a Direct3D 9 device rendering into the back buffer of a window.
type Device struct {
	dev  *d3d9.Device
	size [2]uint32
}

var _ imdx9.Device = (*Device)(nil)

// Clear fills the whole back buffer with c.
func (d *Device) Clear(c color.NRGBA) error {
	if d.dev == nil {
		return errReleased
	}
	if err := d.dev.Clear(nil, d3d9.CLEAR_TARGET, d3d9.ColorValue(colorComponents(c)), 1, 0); err != nil {
		return err
	}
	return nil
}

// BeginScene opens the scene the draw calls of the frame are recorded in.
func (d *Device) BeginScene() error {
	if d.dev == nil {
		return errReleased
	}
	if err := d.dev.BeginScene(); err != nil {
		return err
	}
	return nil
}

// EndScene closes the scene opened by BeginScene.
func (d *Device) EndScene() error {
	if d.dev == nil {
		return errReleased
	}
	if err := d.dev.EndScene(); err != nil {
		return err
	}
	return nil
}

// Present shows the back buffer in the window.
func (d *Device) Present() error {
	if d.dev == nil {
		return errReleased
	}
	if err := d.dev.Present(nil, nil, 0, nil); err != nil {
		return err
	}
	return nil
}

// Release releases the native device. It is safe to call more than once.
func (d *Device) Release() {
	if d.dev != nil {
		d.dev.Release()
		d.dev = nil
	}
}
