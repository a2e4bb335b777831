package gui

import (
	"fmt"
	"time"

	"gioui.org/f32"
	"github.com/esimov/imdx9"
	"github.com/esimov/imdx9/utils"
	"github.com/inkyblackness/imgui-go/v4"
)

// minDeltaTime keeps the frame time strictly positive, which ImGui asserts on.
const minDeltaTime = float32(1e-6)

// Advance sets the time elapsed since the previous frame.
func (c *Context) Advance(dt time.Duration) {
	c.io.SetDeltaTime(utils.Max(float32(dt.Seconds()), minDeltaTime))
}

// PrepareFrame reads the window size and updates the display size of the next frame.
func (c *Context) PrepareFrame() error {
	w, h, err := c.surface.Size()
	if err != nil {
		return fmt.Errorf("unable to query the window size: %w", err)
	}
	if w != c.window.X || h != c.window.Y {
		c.resize(w, h)
	}
	c.io.SetDisplaySize(imgui.Vec2{X: c.display.X, Y: c.display.Y})

	return nil
}

// FrameData is the draw data of a frame along with the display size it was laid out for.
type FrameData struct {
	imgui.DrawData
	DisplaySize f32.Point
}

// Frame builds the widgets of one frame and returns the resulting FrameData.
// The draw data is owned by ImGui and is only valid until the next call to Frame.
func (c *Context) Frame(layout func()) imdx9.DrawList {
	imgui.NewFrame()
	if layout != nil {
		layout()
	}
	if c.cfg.ShowDemo {
		imgui.ShowDemoWindow(&c.cfg.ShowDemo)
	}
	imgui.Render()
	c.syncCursor()

	return FrameData{
		DrawData:    imgui.RenderedDrawData(),
		DisplaySize: c.display,
	}
}

// helloSize is the size of the hello world window when it first appears.
var helloSize = imgui.Vec2{X: 300, Y: 100}

// HelloWorld is the widget tree of the example.
func (c *Context) HelloWorld() {
	imgui.SetNextWindowSizeV(helloSize, imgui.ConditionFirstUseEver)
	if imgui.Begin("Hello world") {
		imgui.Text("Hello world!")
		imgui.Text("This...is...imgui-go on Direct3D 9!")
		imgui.Separator()
		if c.input.HasMouse {
			imgui.Text(fmt.Sprintf("Mouse Position: (%.1f,%.1f)", c.input.Mouse.X, c.input.Mouse.Y))
		} else {
			imgui.Text("Mouse Position: <invalid>")
		}
	}
	imgui.End()
}

// cursorUnset forces the first frame to push its cursor to the surface.
const cursorUnset = imdx9.CursorNone - 1

// syncCursor passes the cursor requested by the last frame to the surface
// when it differs from the one already shown.
func (c *Context) syncCursor() {
	cur := translateCursor(int(imgui.MouseCursor()))
	if cur == c.cursor {
		return
	}
	c.cursor = cur
	c.surface.SetCursor(cur)
}

func translateCursor(id int) imdx9.Cursor {
	switch id {
	case int(imgui.MouseCursorNone):
		return imdx9.CursorNone
	case int(imgui.MouseCursorTextInput):
		return imdx9.CursorTextInput
	case int(imgui.MouseCursorResizeAll):
		return imdx9.CursorResizeAll
	case int(imgui.MouseCursorResizeNS):
		return imdx9.CursorResizeNS
	case int(imgui.MouseCursorResizeEW):
		return imdx9.CursorResizeEW
	case int(imgui.MouseCursorResizeNESW):
		return imdx9.CursorResizeNESW
	case int(imgui.MouseCursorResizeNWSE):
		return imdx9.CursorResizeNWSE
	case int(imgui.MouseCursorHand):
		return imdx9.CursorHand
	case int(imgui.MouseCursorNotAllowed):
		return imdx9.CursorNotAllowed
	}
	return imdx9.CursorArrow
}
