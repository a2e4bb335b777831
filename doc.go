/*
Package imdx9 drives a Dear ImGui user interface on top of a Direct3D 9 device.

The package owns the parts of the program which do not depend on any native API:
the presentation parameters handed to the device at creation time, the event
vocabulary delivered by the window, the per-event frame state machine and the
error taxonomy. The native pieces live in sibling packages:

	platform  the GLFW window and its event callbacks
	gui       the ImGui context, fonts, input and widgets
	dx9       the Direct3D 9 factory, device and draw data renderer

The command line program wiring them together can be found under cmd/imdx9.
To check the supported flags type:

	$ imdx9 --help

A minimal wiring looks like this:

	fac, dev, err := imdx9.Bootstrap[*dx9.Device](dx9.NewFactory, hwnd, params)
	if err != nil {
		log.Fatal(err)
	}
	app, err := imdx9.NewApp(imdx9.Config{
		Factory:  fac,
		Device:   dev,
		GUI:      ui,
		Renderer: renderer,
		Window:   win,
		Layout:   ui.HelloWorld,
	})
	if err != nil {
		log.Fatal(err)
	}
	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
*/
package imdx9
