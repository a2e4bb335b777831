package gui

import (
	"image"
	"math"

	"gioui.org/f32"
	"github.com/esimov/imdx9"
	"github.com/inkyblackness/imgui-go/v4"
)

// keyMap maps the ImGui navigation and shortcut keys to the platform independent key codes.
var keyMap = map[imdx9.Key]int{
	imdx9.KeyTab:       imgui.KeyTab,
	imdx9.KeyLeft:      imgui.KeyLeftArrow,
	imdx9.KeyRight:     imgui.KeyRightArrow,
	imdx9.KeyUp:        imgui.KeyUpArrow,
	imdx9.KeyDown:      imgui.KeyDownArrow,
	imdx9.KeyPageUp:    imgui.KeyPageUp,
	imdx9.KeyPageDown:  imgui.KeyPageDown,
	imdx9.KeyHome:      imgui.KeyHome,
	imdx9.KeyEnd:       imgui.KeyEnd,
	imdx9.KeyInsert:    imgui.KeyInsert,
	imdx9.KeyDelete:    imgui.KeyDelete,
	imdx9.KeyBackspace: imgui.KeyBackspace,
	imdx9.KeySpace:     imgui.KeySpace,
	imdx9.KeyEnter:     imgui.KeyEnter,
	imdx9.KeyEscape:    imgui.KeyEscape,
	imdx9.KeyA:         imgui.KeyA,
	imdx9.KeyC:         imgui.KeyC,
	imdx9.KeyV:         imgui.KeyV,
	imdx9.KeyX:         imgui.KeyX,
	imdx9.KeyY:         imgui.KeyY,
	imdx9.KeyZ:         imgui.KeyZ,
}

func (c *Context) mapKeys() {
	for key, imguiKey := range keyMap {
		c.io.KeyMap(imguiKey, int(key))
	}
}

// Forward feeds an input event to the ImGui input model.
func (c *Context) Forward(ev imdx9.InputEvent) {
	switch ev := ev.(type) {
	case imdx9.CursorMoved:
		p := c.toDisplay.Transform(f32.Pt(float32(ev.X), float32(ev.Y)))
		c.input.Mouse, c.input.HasMouse = p, true
		c.io.SetMousePosition(imgui.Vec2{X: p.X, Y: p.Y})
	case imdx9.MouseInput:
		if ev.Button < 0 || int(ev.Button) >= len(c.input.Buttons) {
			return
		}
		c.input.Buttons[ev.Button] = ev.Pressed
		c.io.SetMouseButtonDown(int(ev.Button), ev.Pressed)
	case imdx9.Scroll:
		c.io.AddMouseWheelDelta(float32(ev.DX), float32(ev.DY))
	case imdx9.KeyInput:
		c.key(ev)
	case imdx9.CharInput:
		c.io.AddInputCharacters(string(ev.Char))
	case imdx9.Focused:
		c.input.Focused = ev.Focused
		if !ev.Focused {
			c.releaseAll()
		}
	case imdx9.Resized:
		c.resize(ev.Width, ev.Height)
	}
}

func (c *Context) key(ev imdx9.KeyInput) {
	if ev.Key <= imdx9.KeyUnknown || ev.Key >= imdx9.KeyCount {
		return
	}
	c.input.Keys[ev.Key] = ev.Pressed
	if ev.Pressed {
		c.io.KeyPress(int(ev.Key))
	} else {
		c.io.KeyRelease(int(ev.Key))
	}
	c.io.KeyCtrl(int(imdx9.KeyLeftCtrl), int(imdx9.KeyRightCtrl))
	c.io.KeyShift(int(imdx9.KeyLeftShift), int(imdx9.KeyRightShift))
	c.io.KeyAlt(int(imdx9.KeyLeftAlt), int(imdx9.KeyRightAlt))
	c.io.KeySuper(int(imdx9.KeyLeftSuper), int(imdx9.KeyRightSuper))
}

// releaseAll drops the held buttons and keys when the window loses the focus,
// since their release events are delivered to another window.
func (c *Context) releaseAll() {
	for i, down := range c.input.Buttons {
		if down {
			c.input.Buttons[i] = false
			c.io.SetMouseButtonDown(i, false)
		}
	}
	for k, down := range c.input.Keys {
		if down {
			c.key(imdx9.KeyInput{Key: imdx9.Key(k), Pressed: false})
		}
	}
	c.input.HasMouse = false
	c.io.SetMousePosition(imgui.Vec2{X: -math.MaxFloat32, Y: -math.MaxFloat32})
}

// resize updates the window to display coordinates transform. A minimized
// window reports a zero size and keeps the previous transform.
func (c *Context) resize(w, h int) {
	c.display = f32.Pt(float32(w), float32(h))
	if !c.cfg.DisplaySize.Eq(image.Point{}) {
		c.display = f32.Pt(float32(c.cfg.DisplaySize.X), float32(c.cfg.DisplaySize.Y))
	}
	if w <= 0 || h <= 0 {
		return
	}
	c.window = image.Pt(w, h)
	c.toDisplay = f32.Affine2D{}.Scale(f32.Point{}, f32.Pt(
		c.display.X/float32(w),
		c.display.Y/float32(h),
	))
}
