//go:build windows

package dx9

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/esimov/imdx9"
	"github.com/gonutz/d3d9"
)

// Factory is the Direct3D 9 entry object.
type Factory struct {
	d3d *d3d9.Direct3D
	// Adapter is the description of the default adapter, empty if it could not be queried.
	Adapter string
}

var _ imdx9.Factory[*Device] = (*Factory)(nil)

// NewFactory loads Direct3D 9 at the SDK version the bindings were built for.
func NewFactory() (*Factory, error) {
	d3d, err := d3d9.Create(d3d9.SDK_VERSION)
	if err != nil {
		return nil, fmt.Errorf("Direct3D 9 is not available: %w", err)
	}
	f := &Factory{d3d: d3d}
	if id, err := d3d.GetAdapterIdentifier(d3d9.ADAPTER_DEFAULT, 0); err == nil {
		f.Adapter = strings.TrimSpace(id.Description)
	}
	return f, nil
}

// CreateDevice creates a HAL device with software vertex processing bound to
// the window hwnd.
func (f *Factory) CreateDevice(hwnd uintptr, params imdx9.PresentParams) (*Device, error) {
	if f.d3d == nil {
		return nil, errors.New("factory already released")
	}
	n, err := nativeParams(params)
	if err != nil {
		return nil, err
	}
	pp := d3d9.PRESENT_PARAMETERS{
		BackBufferWidth:            n.Width,
		BackBufferHeight:           n.Height,
		BackBufferFormat:           d3d9.FORMAT(n.Format),
		BackBufferCount:            n.Count,
		SwapEffect:                 d3d9.SWAPEFFECT(n.SwapEffect),
		HDeviceWindow:              d3d9.HWND(hwnd),
		Windowed:                   n.Windowed,
		FullScreen_RefreshRateInHz: n.RefreshRate,
		PresentationInterval:       n.Interval,
	}
	dev, _, err := f.d3d.CreateDevice(
		d3d9.ADAPTER_DEFAULT,
		d3d9.DEVTYPE_HAL,
		d3d9.HWND(hwnd),
		d3d9.CREATE_SOFTWARE_VERTEXPROCESSING,
		pp,
	)
	if err != nil {
		return nil, err
	}
	return &Device{dev: dev, size: [2]uint32{n.Width, n.Height}}, nil
}

// Log writes the adapter description to l.
func (f *Factory) Log(l *log.Logger) {
	if l != nil && f.Adapter != "" {
		l.Printf("Direct3D 9 adapter: %s\n", f.Adapter)
	}
}

// Release releases the Direct3D object. It is safe to call more than once.
func (f *Factory) Release() {
	if f.d3d != nil {
		f.d3d.Release()
		f.d3d = nil
	}
}
