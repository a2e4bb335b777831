package imdx9

import (
	"errors"
	"image"
	"image/color"
	"io"
	"log"
	"time"
)

// DrawList is the draw command list generated by the GUI for a single frame.
// It is only valid until the frame which produced it has been presented.
type DrawList interface {
	Valid() bool
}

// GUI is the immediate mode user interface the frame loop feeds and renders.
type GUI interface {
	// BuildFontAtlas rasterises the configured fonts. It is called once.
	BuildFontAtlas() (*image.RGBA, error)
	// SetFontTexture tells the GUI the texture id of the uploaded font atlas.
	SetFontTexture(id uintptr)
	// Forward feeds an input event to the GUI input model.
	Forward(ev InputEvent)
	// Advance sets the time elapsed since the previous frame.
	Advance(dt time.Duration)
	// PrepareFrame snapshots the window state for the next frame.
	PrepareFrame() error
	// Frame builds the widget tree with layout and returns its draw commands.
	Frame(layout func()) DrawList
}

// Renderer turns the GUI draw commands into native draw calls.
type Renderer interface {
	CreateFontTexture(img *image.RGBA) (uintptr, error)
	Render(dl DrawList) error
	Release()
}

// Window is the event source of the frame loop.
type Window interface {
	Next() Event
	RequestRedraw()
}

// Releaser is implemented by the native objects owned by App.
type Releaser interface {
	Release()
}

// Config holds the collaborators of App.
type Config struct {
	Factory  Releaser
	Device   Device
	GUI      GUI
	Renderer Renderer
	Window   Window
	// Layout builds the widgets of every frame.
	Layout func()
	// Clear is the color the back buffer is cleared with before each frame.
	Clear color.NRGBA
	// Logger receives verbose diagnostics. Nil discards them.
	Logger *log.Logger
	// Now is the clock used for the first frame timing. Nil means time.Now.
	Now func() time.Time
}

// App is the frame orchestrator. It owns the factory, the device and the renderer
// for the lifetime of the event loop and releases them when the loop ends.
type App struct {
	fac    Releaser
	dev    Device
	gui    GUI
	rend   Renderer
	win    Window
	layout func()
	clear  color.NRGBA
	log    *log.Logger

	state  FrameState
	last   time.Time
	start  time.Time
	frames uint64
	exit   bool
	closed bool
}

// NewApp validates the configuration, builds the font atlas and uploads it to the
// renderer. App takes ownership of the factory, device and renderer, including
// when NewApp fails.
func NewApp(cfg Config) (*App, error) {
	a := &App{
		fac:    cfg.Factory,
		dev:    cfg.Device,
		gui:    cfg.GUI,
		rend:   cfg.Renderer,
		win:    cfg.Window,
		layout: cfg.Layout,
		clear:  cfg.Clear,
		log:    cfg.Logger,
	}
	if a.log == nil {
		a.log = log.New(io.Discard, "", 0)
	}
	if a.layout == nil {
		a.layout = func() {}
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	a.start = now()
	a.last = a.start

	switch {
	case a.dev == nil:
		a.Close()
		return nil, errors.New("imdx9: missing device")
	case a.gui == nil:
		a.Close()
		return nil, errors.New("imdx9: missing gui")
	case a.rend == nil:
		a.Close()
		return nil, errors.New("imdx9: missing renderer")
	case a.win == nil:
		a.Close()
		return nil, errors.New("imdx9: missing window")
	}

	if err := a.uploadFonts(); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func (a *App) uploadFonts() error {
	atlas, err := a.gui.BuildFontAtlas()
	if err != nil {
		return fatal(StartupFailure, "build font atlas", err)
	}
	id, err := a.rend.CreateFontTexture(atlas)
	if err != nil {
		return fatal(StartupFailure, "CreateTexture", err)
	}
	a.gui.SetFontTexture(id)
	a.log.Printf("font atlas %dx%d uploaded as texture %d", atlas.Bounds().Dx(), atlas.Bounds().Dy(), id)

	return nil
}

// State returns the current frame state.
func (a *App) State() FrameState { return a.state }

// Frames returns the number of presented frames.
func (a *App) Frames() uint64 { return a.frames }

// Closing reports whether a close request has been received.
func (a *App) Closing() bool { return a.exit }

// Run dispatches the window events until the window is closed or a fatal error
// occurs. The owned native objects are released on every exit path.
func (a *App) Run() error {
	defer a.Close()

	for !a.exit {
		if err := a.Dispatch(a.win.Next()); err != nil {
			return err
		}
	}
	return nil
}

// Dispatch handles a single event. No event is handled once the close request
// has been received.
func (a *App) Dispatch(ev Event) error {
	if a.exit {
		return nil
	}
	switch ev := ev.(type) {
	case NewFrame:
		a.tick(ev.At)
	case EventsCleared:
		if err := a.gui.PrepareFrame(); err != nil {
			return fatal(FramePrepFailure, "prepare frame", err)
		}
		a.win.RequestRedraw()
		a.state = FrameBegun
	case RedrawRequested:
		return a.redraw()
	case CloseRequested:
		a.exit = true
		a.state = Closing
		a.log.Printf("close requested after %d frames", a.frames)
	case InputEvent:
		a.gui.Forward(ev)
	}
	return nil
}

// tick updates the GUI timing with the time elapsed since the previous frame.
func (a *App) tick(now time.Time) {
	dt := now.Sub(a.last)
	if dt < 0 {
		dt = 0
	}
	a.last = now
	a.gui.Advance(dt)
}

// redraw runs the clear, begin scene, render, end scene, present sequence of one frame.
func (a *App) redraw() error {
	if err := a.dev.Clear(a.clear); err != nil {
		return fatal(RenderFailure, "Clear", err)
	}
	if err := a.dev.BeginScene(); err != nil {
		return fatal(RenderFailure, "BeginScene", err)
	}
	a.state = SceneActive

	dl := a.gui.Frame(a.layout)
	if err := a.rend.Render(dl); err != nil {
		return fatal(RenderFailure, "render draw data", err)
	}
	if err := a.dev.EndScene(); err != nil {
		return fatal(RenderFailure, "EndScene", err)
	}
	if err := a.dev.Present(); err != nil {
		return fatal(RenderFailure, "Present", err)
	}
	a.state = Presented
	a.frames++
	a.state = Idle

	return nil
}

// Close releases the renderer, the device and the factory, in this order.
// It is safe to call Close more than once.
func (a *App) Close() {
	if a.closed {
		return
	}
	a.closed = true

	if a.rend != nil {
		a.rend.Release()
	}
	if a.dev != nil {
		a.dev.Release()
	}
	if a.fac != nil {
		a.fac.Release()
	}
	a.log.Printf("released graphics objects, %d frames presented in %s", a.frames, a.last.Sub(a.start))
}
