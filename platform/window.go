// Package platform creates the OS window with GLFW and translates its
// callbacks into the event vocabulary of the frame loop.
//
// GLFW must be driven from the main OS thread: the caller is expected to lock
// the main goroutine to its thread before calling NewWindow.
package platform

import (
	"errors"
	"fmt"
	"time"

	"github.com/esimov/imdx9"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Config describes the window.
type Config struct {
	Width  int
	Height int
	Title  string
}

// Window is a fixed size window without client API; the graphics device
// renders into it through its native handle.
type Window struct {
	*imdx9.EventPump
	win     *glfw.Window
	cursors map[glfw.StandardCursor]*glfw.Cursor
}

// NewWindow initializes GLFW and opens a non resizable window.
func NewWindow(cfg Config) (*Window, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("platform: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("platform: unable to initialize GLFW: %w", err)
	}
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("platform: unable to create the window: %w", err)
	}
	w := &Window{win: win}
	w.EventPump = imdx9.NewEventPump(glfw.PollEvents, time.Now)
	w.registerCallbacks()

	return w, nil
}

// registerCallbacks forwards every GLFW event to the event pump in delivery order.
func (w *Window) registerCallbacks() {
	w.win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) { w.onCursor(x, y) })
	w.win.SetMouseButtonCallback(func(_ *glfw.Window, b glfw.MouseButton, a glfw.Action, _ glfw.ModifierKey) {
		w.onMouseButton(b, a)
	})
	w.win.SetScrollCallback(func(_ *glfw.Window, dx, dy float64) { w.onScroll(dx, dy) })
	w.win.SetKeyCallback(func(_ *glfw.Window, k glfw.Key, _ int, a glfw.Action, m glfw.ModifierKey) {
		w.onKey(k, a, m)
	})
	w.win.SetCharCallback(func(_ *glfw.Window, r rune) { w.onChar(r) })
	w.win.SetFocusCallback(func(_ *glfw.Window, focused bool) { w.onFocus(focused) })
	w.win.SetSizeCallback(func(_ *glfw.Window, width, height int) { w.onSize(width, height) })
	w.win.SetCloseCallback(func(_ *glfw.Window) { w.onClose() })
	w.win.SetRefreshCallback(func(_ *glfw.Window) { w.onRefresh() })
}

func (w *Window) onCursor(x, y float64) {
	w.Push(imdx9.CursorMoved{X: x, Y: y})
}

// onMouseButton drops the buttons ImGui has no slot for.
func (w *Window) onMouseButton(b glfw.MouseButton, a glfw.Action) {
	if btn, ok := mouseButtons[b]; ok {
		w.Push(imdx9.MouseInput{Button: btn, Pressed: a == glfw.Press})
	}
}

func (w *Window) onScroll(dx, dy float64) {
	w.Push(imdx9.Scroll{DX: dx, DY: dy})
}

// onKey reports key repeats as presses.
func (w *Window) onKey(k glfw.Key, a glfw.Action, m glfw.ModifierKey) {
	w.Push(imdx9.KeyInput{
		Key:     translateKey(k),
		Pressed: a != glfw.Release,
		Mods:    translateMods(m),
	})
}

func (w *Window) onChar(r rune) {
	w.Push(imdx9.CharInput{Char: r})
}

func (w *Window) onFocus(focused bool) {
	w.Push(imdx9.Focused{Focused: focused})
}

func (w *Window) onSize(width, height int) {
	w.Push(imdx9.Resized{Width: width, Height: height})
}

func (w *Window) onClose() {
	w.Push(imdx9.CloseRequested{})
}

// onRefresh is called when the OS asks for the content to be repainted,
// e.g. after the window was uncovered.
func (w *Window) onRefresh() {
	w.RequestRedraw()
}

// SetCursor shows the standard cursor closest to c, or hides the cursor for CursorNone.
func (w *Window) SetCursor(c imdx9.Cursor) {
	if w.win == nil {
		return
	}
	if c == imdx9.CursorNone {
		w.win.SetInputMode(glfw.CursorMode, glfw.CursorHidden)
		return
	}
	shape := standardCursor(c)
	cur, ok := w.cursors[shape]
	if !ok {
		cur = glfw.CreateStandardCursor(shape)
		if w.cursors == nil {
			w.cursors = make(map[glfw.StandardCursor]*glfw.Cursor)
		}
		w.cursors[shape] = cur
	}
	w.win.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	w.win.SetCursor(cur)
}

// Size returns the window size in screen coordinates.
func (w *Window) Size() (int, int, error) {
	if w.win == nil {
		return 0, 0, errors.New("platform: window destroyed")
	}
	width, height := w.win.GetSize()
	return width, height, nil
}

// ContentScale returns the ratio between the current DPI and the platform default.
func (w *Window) ContentScale() (float32, float32) {
	if w.win == nil {
		return 1, 1
	}
	return w.win.GetContentScale()
}

// Destroy closes the window and terminates GLFW.
func (w *Window) Destroy() {
	for shape, cur := range w.cursors {
		cur.Destroy()
		delete(w.cursors, shape)
	}
	if w.win != nil {
		w.win.Destroy()
		w.win = nil
	}
	glfw.Terminate()
}
