//go:build windows

package main

import (
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/esimov/imdx9"
	"github.com/esimov/imdx9/dx9"
	"github.com/esimov/imdx9/gui"
	"github.com/esimov/imdx9/platform"
	"github.com/esimov/imdx9/utils"
)

func init() {
	// GLFW and the Direct3D device are bound to the main thread.
	runtime.LockOSThread()
}

func main() {
	log.SetFlags(0)

	opts, err := parseOptions(os.Args[1:], os.Stderr)
	if err != nil {
		if code := exitCode(err); code != 0 {
			fmt.Fprint(os.Stderr, describe(err))
			os.Exit(code)
		}
		os.Exit(0)
	}

	now := time.Now()
	frames, err := run(opts)
	if err != nil {
		fmt.Fprint(os.Stderr, describe(err))
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "\n%s frames presented in %s\n",
		utils.DecorateText(fmt.Sprint(frames), utils.SuccessMessage),
		utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage),
	)
}

// run opens the window, creates the device and the GUI, then runs the frame loop
// until the window is closed. Every native object is released before it returns.
func run(opts *options) (uint64, error) {
	logger := log.New(io.Discard, "", 0)
	if opts.verbose {
		logger = log.New(os.Stderr, "imdx9: ", 0)
	}

	font, err := fontData(opts.font, newSpinner())
	if err != nil {
		return 0, err
	}

	win, err := platform.NewWindow(platform.Config{
		Width:  opts.width,
		Height: opts.height,
		Title:  opts.title,
	})
	if err != nil {
		return 0, err
	}
	defer win.Destroy()

	hwnd, err := win.Handle()
	if err != nil {
		return 0, err
	}
	params, err := imdx9.NewPresentParams(opts.width, opts.height)
	if err != nil {
		return 0, err
	}
	params.BackBufferFormat = opts.format
	if opts.vsync {
		params.PresentInterval = imdx9.IntervalOne
	}

	factory, device, err := imdx9.Bootstrap[*dx9.Device](dx9.NewFactory, hwnd, params)
	if err != nil {
		return 0, err
	}
	factory.Log(logger)
	logger.Printf("back buffer %dx%d %v, swap effect %v\n",
		params.BackBufferWidth, params.BackBufferHeight, params.BackBufferFormat, params.SwapEffect)
	renderer := dx9.NewRenderer(device)

	ui, err := gui.New(gui.Config{
		FontData:    font,
		FontSize:    float32(opts.fontSize),
		DisplaySize: image.Pt(params.BackBufferWidth, params.BackBufferHeight),
		ShowDemo:    opts.demo,
	}, win)
	if err != nil {
		renderer.Release()
		device.Release()
		factory.Release()
		return 0, err
	}
	defer ui.Destroy()
	logger.Printf("HiDPI factor %v\n", ui.HiDPI())

	app, err := imdx9.NewApp(imdx9.Config{
		Factory:  factory,
		Device:   device,
		GUI:      ui,
		Renderer: renderer,
		Window:   win,
		Layout:   ui.HelloWorld,
		Clear:    opts.clear,
		Logger:   logger,
	})
	if err != nil {
		return 0, err
	}
	if opts.dumpAtlas != "" {
		if err := ui.DumpAtlas(opts.dumpAtlas); err != nil {
			app.Close()
			return 0, err
		}
		logger.Printf("font atlas saved as %s\n", opts.dumpAtlas)
	}

	err = app.Run()
	return app.Frames(), err
}
