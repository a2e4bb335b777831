/*
Package dx9 implements the device bootstrap and the GUI renderer on top of
Direct3D 9 via the github.com/gonutz/d3d9 bindings.

The native parts only build on Windows. The conversions between the portable
parameters of the frame loop and the Direct3D values (pixel formats, swap
effects, colors, projection matrices, scissor rectangles and vertex layouts)
are plain Go and are available on every platform.

	factory, device, err := imdx9.Bootstrap[*dx9.Device](dx9.NewFactory, hwnd, params)
	if err != nil {
		return err
	}
	renderer := dx9.NewRenderer(device, params)
*/
package dx9
