package platform

import (
	"github.com/esimov/imdx9"
	"github.com/go-gl/glfw/v3.3/glfw"
)

var mouseButtons = map[glfw.MouseButton]imdx9.MouseButton{
	glfw.MouseButtonLeft:   imdx9.MouseLeft,
	glfw.MouseButtonRight:  imdx9.MouseRight,
	glfw.MouseButtonMiddle: imdx9.MouseMiddle,
	glfw.MouseButton4:      imdx9.MouseX1,
	glfw.MouseButton5:      imdx9.MouseX2,
}

// cursors lists the GLFW 3.3 standard cursors. The shapes GLFW 3.3 lacks fall back to the arrow.
var cursors = map[imdx9.Cursor]glfw.StandardCursor{
	imdx9.CursorArrow:     glfw.ArrowCursor,
	imdx9.CursorTextInput: glfw.IBeamCursor,
	imdx9.CursorResizeNS:  glfw.VResizeCursor,
	imdx9.CursorResizeEW:  glfw.HResizeCursor,
	imdx9.CursorHand:      glfw.HandCursor,
}

func standardCursor(c imdx9.Cursor) glfw.StandardCursor {
	if shape, ok := cursors[c]; ok {
		return shape
	}
	return glfw.ArrowCursor
}

var keys = map[glfw.Key]imdx9.Key{
	glfw.KeyTab:          imdx9.KeyTab,
	glfw.KeyLeft:         imdx9.KeyLeft,
	glfw.KeyRight:        imdx9.KeyRight,
	glfw.KeyUp:           imdx9.KeyUp,
	glfw.KeyDown:         imdx9.KeyDown,
	glfw.KeyPageUp:       imdx9.KeyPageUp,
	glfw.KeyPageDown:     imdx9.KeyPageDown,
	glfw.KeyHome:         imdx9.KeyHome,
	glfw.KeyEnd:          imdx9.KeyEnd,
	glfw.KeyInsert:       imdx9.KeyInsert,
	glfw.KeyDelete:       imdx9.KeyDelete,
	glfw.KeyBackspace:    imdx9.KeyBackspace,
	glfw.KeySpace:        imdx9.KeySpace,
	glfw.KeyEnter:        imdx9.KeyEnter,
	glfw.KeyKPEnter:      imdx9.KeyEnter,
	glfw.KeyEscape:       imdx9.KeyEscape,
	glfw.KeyA:            imdx9.KeyA,
	glfw.KeyC:            imdx9.KeyC,
	glfw.KeyV:            imdx9.KeyV,
	glfw.KeyX:            imdx9.KeyX,
	glfw.KeyY:            imdx9.KeyY,
	glfw.KeyZ:            imdx9.KeyZ,
	glfw.KeyLeftShift:    imdx9.KeyLeftShift,
	glfw.KeyRightShift:   imdx9.KeyRightShift,
	glfw.KeyLeftControl:  imdx9.KeyLeftCtrl,
	glfw.KeyRightControl: imdx9.KeyRightCtrl,
	glfw.KeyLeftAlt:      imdx9.KeyLeftAlt,
	glfw.KeyRightAlt:     imdx9.KeyRightAlt,
	glfw.KeyLeftSuper:    imdx9.KeyLeftSuper,
	glfw.KeyRightSuper:   imdx9.KeyRightSuper,
}

func translateKey(k glfw.Key) imdx9.Key {
	if key, ok := keys[k]; ok {
		return key
	}
	return imdx9.KeyUnknown
}

func translateMods(m glfw.ModifierKey) imdx9.Modifier {
	var mods imdx9.Modifier
	if m&glfw.ModShift != 0 {
		mods |= imdx9.ModShift
	}
	if m&glfw.ModControl != 0 {
		mods |= imdx9.ModCtrl
	}
	if m&glfw.ModAlt != 0 {
		mods |= imdx9.ModAlt
	}
	if m&glfw.ModSuper != 0 {
		mods |= imdx9.ModSuper
	}
	return mods
}
