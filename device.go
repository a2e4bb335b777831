package imdx9

import (
	"errors"
	"image/color"
)

// Device is the native rendering device driven by the frame loop.
type Device interface {
	Clear(c color.NRGBA) error
	BeginScene() error
	EndScene() error
	Present() error
	Release()
}

// Factory is the graphics API entry object which creates devices.
type Factory[D Device] interface {
	CreateDevice(hwnd uintptr, params PresentParams) (D, error)
	Release()
}

// Bootstrap creates the graphics factory and a single device bound to the
// native window handle. Either both objects are returned or neither is: when
// the device cannot be created the factory is released before returning.
// Every failure is a *FatalError of kind StartupFailure.
func Bootstrap[D Device, F Factory[D]](
	newFactory func() (F, error),
	hwnd uintptr,
	params PresentParams,
) (F, D, error) {
	var (
		nilFactory F
		nilDevice  D
	)
	if hwnd == 0 {
		return nilFactory, nilDevice, fatal(StartupFailure, "CreateDevice", errors.New("missing native window handle"))
	}
	factory, err := newFactory()
	if err != nil {
		return nilFactory, nilDevice, fatal(StartupFailure, "Direct3DCreate9", err)
	}
	device, err := factory.CreateDevice(hwnd, params)
	if err != nil {
		factory.Release()
		return nilFactory, nilDevice, fatal(StartupFailure, "CreateDevice", err)
	}
	return factory, device, nil
}
