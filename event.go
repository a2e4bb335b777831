package imdx9

import "time"

// Event is anything delivered by the window event loop.
type Event interface {
	isEvent()
}

// InputEvent is an event forwarded unchanged to the GUI input model.
type InputEvent interface {
	Event
	isInput()
}

// NewFrame starts a new iteration of the event loop.
type NewFrame struct {
	At time.Time
}

// EventsCleared is delivered once every pending OS event has been dispatched.
type EventsCleared struct{}

// RedrawRequested asks for the window content to be drawn.
type RedrawRequested struct{}

// CloseRequested is delivered when the user closes the window.
type CloseRequested struct{}

func (NewFrame) isEvent()        {}
func (EventsCleared) isEvent()   {}
func (RedrawRequested) isEvent() {}
func (CloseRequested) isEvent()  {}

// MouseButton identifies a mouse button in the order ImGui expects them.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
	MouseX1
	MouseX2

	MouseButtonCount
)

// Cursor is the mouse cursor shape requested by the GUI for the current frame.
type Cursor int

const (
	CursorNone Cursor = iota - 1
	CursorArrow
	CursorTextInput
	CursorResizeAll
	CursorResizeNS
	CursorResizeEW
	CursorResizeNESW
	CursorResizeNWSE
	CursorHand
	CursorNotAllowed
)

// Modifier is a bit set of the modifier keys held down during a key event.
type Modifier int

const (
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
)

// Key is a platform independent key code. Only the keys the GUI reacts to are named.
type Key int

const (
	KeyUnknown Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyBackspace
	KeySpace
	KeyEnter
	KeyEscape
	KeyA
	KeyC
	KeyV
	KeyX
	KeyY
	KeyZ
	KeyLeftShift
	KeyRightShift
	KeyLeftCtrl
	KeyRightCtrl
	KeyLeftAlt
	KeyRightAlt
	KeyLeftSuper
	KeyRightSuper

	// KeyCount is the number of named keys.
	KeyCount
)

// CursorMoved reports the cursor position in window coordinates.
type CursorMoved struct {
	X, Y float64
}

// MouseInput reports a mouse button press or release.
type MouseInput struct {
	Button  MouseButton
	Pressed bool
}

// Scroll reports a mouse wheel or touchpad scroll.
type Scroll struct {
	DX, DY float64
}

// KeyInput reports a key press or release.
type KeyInput struct {
	Key     Key
	Pressed bool
	Mods    Modifier
}

// CharInput reports a typed unicode character.
type CharInput struct {
	Char rune
}

// Focused reports the window gaining or losing the input focus.
type Focused struct {
	Focused bool
}

// Resized reports the new size of the window in screen coordinates.
type Resized struct {
	Width, Height int
}

func (CursorMoved) isEvent() {}
func (MouseInput) isEvent()  {}
func (Scroll) isEvent()      {}
func (KeyInput) isEvent()    {}
func (CharInput) isEvent()   {}
func (Focused) isEvent()     {}
func (Resized) isEvent()     {}

func (CursorMoved) isInput() {}
func (MouseInput) isInput()  {}
func (Scroll) isInput()      {}
func (KeyInput) isInput()    {}
func (CharInput) isInput()   {}
func (Focused) isInput()     {}
func (Resized) isInput()     {}
