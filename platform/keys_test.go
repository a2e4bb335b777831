package platform

import (
	"testing"

	"github.com/esimov/imdx9"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestKeys_Translate(t *testing.T) {
	assert.Equal(t, imdx9.KeyTab, translateKey(glfw.KeyTab))
	assert.Equal(t, imdx9.KeyEnter, translateKey(glfw.KeyKPEnter))
	assert.Equal(t, imdx9.KeyLeftCtrl, translateKey(glfw.KeyLeftControl))
	assert.Equal(t, imdx9.KeyUnknown, translateKey(glfw.KeyF12))
}

func TestKeys_EveryNamedKeyIsReachable(t *testing.T) {
	seen := make(map[imdx9.Key]bool)
	for _, k := range keys {
		seen[k] = true
	}
	for k := imdx9.KeyUnknown + 1; k < imdx9.KeyCount; k++ {
		assert.True(t, seen[k], "key %d has no GLFW key", k)
	}
}

func TestKeys_Mods(t *testing.T) {
	assert.Equal(t, imdx9.Modifier(0), translateMods(0))
	assert.Equal(t, imdx9.ModCtrl|imdx9.ModShift, translateMods(glfw.ModControl|glfw.ModShift))
	assert.Equal(t, imdx9.ModAlt|imdx9.ModSuper, translateMods(glfw.ModAlt|glfw.ModSuper))
}

func TestKeys_MouseButtons(t *testing.T) {
	assert.Equal(t, imdx9.MouseLeft, mouseButtons[glfw.MouseButtonLeft])
	assert.Equal(t, imdx9.MouseRight, mouseButtons[glfw.MouseButtonRight])
	assert.Equal(t, imdx9.MouseMiddle, mouseButtons[glfw.MouseButtonMiddle])
	assert.Equal(t, imdx9.MouseX1, mouseButtons[glfw.MouseButton4])
	assert.Equal(t, imdx9.MouseX2, mouseButtons[glfw.MouseButton5])

	_, ok := mouseButtons[glfw.MouseButton6]
	assert.False(t, ok)
}

func TestKeys_StandardCursor(t *testing.T) {
	tests := []struct {
		cursor imdx9.Cursor
		want   glfw.StandardCursor
	}{
		{imdx9.CursorArrow, glfw.ArrowCursor},
		{imdx9.CursorTextInput, glfw.IBeamCursor},
		{imdx9.CursorResizeAll, glfw.ArrowCursor},
		{imdx9.CursorResizeNS, glfw.VResizeCursor},
		{imdx9.CursorResizeEW, glfw.HResizeCursor},
		{imdx9.CursorResizeNESW, glfw.ArrowCursor},
		{imdx9.CursorResizeNWSE, glfw.ArrowCursor},
		{imdx9.CursorHand, glfw.HandCursor},
		{imdx9.CursorNotAllowed, glfw.ArrowCursor},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, standardCursor(tt.cursor), "cursor %d", tt.cursor)
	}
}
