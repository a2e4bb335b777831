package gui

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gioui.org/f32"
	"github.com/esimov/imdx9"
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

type fakeSurface struct {
	w, h    int
	scale   float32
	err     error
	cursors []imdx9.Cursor
}

func (s *fakeSurface) Size() (int, int, error)          { return s.w, s.h, s.err }
func (s *fakeSurface) ContentScale() (float32, float32) { return s.scale, s.scale }
func (s *fakeSurface) SetCursor(c imdx9.Cursor)         { s.cursors = append(s.cursors, c) }

func newContext(t *testing.T, cfg Config, s *fakeSurface) *Context {
	t.Helper()
	c, err := New(cfg, s)
	require.NoError(t, err)
	t.Cleanup(c.Destroy)
	return c
}

func TestGui_HiDPIFactor(t *testing.T) {
	assert.Equal(t, 1.0, hidpiFactor(1, 1))
	assert.Equal(t, 1.0, hidpiFactor(1.25, 1.25))
	assert.Equal(t, 2.0, hidpiFactor(1.5, 1.5))
	assert.Equal(t, 2.0, hidpiFactor(2, 1))
	assert.Equal(t, 1.0, hidpiFactor(0, 0))
}

func TestGui_FontAtlasBuiltOnce(t *testing.T) {
	c := newContext(t, Config{}, &fakeSurface{w: 760, h: 760, scale: 1})

	atlas, err := c.BuildFontAtlas()
	require.NoError(t, err)
	assert.Greater(t, atlas.Bounds().Dx(), 0)
	assert.Greater(t, atlas.Bounds().Dy(), 0)

	_, err = c.BuildFontAtlas()
	assert.Error(t, err)
}

func TestGui_CustomFont(t *testing.T) {
	c := newContext(t, Config{FontData: goregular.TTF, FontSize: 16}, &fakeSurface{w: 100, h: 100, scale: 2})

	assert.Equal(t, 2.0, c.HiDPI())
	_, err := c.BuildFontAtlas()
	assert.NoError(t, err)
}

func TestGui_DumpAtlas(t *testing.T) {
	c := newContext(t, Config{}, &fakeSurface{w: 100, h: 100, scale: 1})
	path := filepath.Join(t.TempDir(), "atlas.png")

	assert.Error(t, c.DumpAtlas(path), "the atlas must be built before it is saved")

	_, err := c.BuildFontAtlas()
	require.NoError(t, err)
	require.NoError(t, c.DumpAtlas(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestGui_CursorMappedToDisplay(t *testing.T) {
	s := &fakeSurface{w: 100, h: 50, scale: 1}
	c := newContext(t, Config{DisplaySize: image.Pt(200, 200)}, s)

	assert.False(t, c.Input().HasMouse)
	c.Forward(imdx9.CursorMoved{X: 10, Y: 20})
	assert.True(t, c.Input().HasMouse)
	assert.Equal(t, f32.Pt(20, 80), c.Input().Mouse)
}

func TestGui_CursorIdentityWithoutDisplaySize(t *testing.T) {
	c := newContext(t, Config{}, &fakeSurface{w: 640, h: 480, scale: 1})

	c.Forward(imdx9.CursorMoved{X: 33.5, Y: 12})
	assert.Equal(t, f32.Pt(33.5, 12), c.Input().Mouse)
}

func TestGui_ButtonsAndFocus(t *testing.T) {
	c := newContext(t, Config{}, &fakeSurface{w: 640, h: 480, scale: 1})

	c.Forward(imdx9.MouseInput{Button: imdx9.MouseLeft, Pressed: true})
	c.Forward(imdx9.MouseInput{Button: imdx9.MouseMiddle, Pressed: true})
	c.Forward(imdx9.MouseInput{Button: imdx9.MouseX2, Pressed: true})
	c.Forward(imdx9.MouseInput{Button: imdx9.MouseButtonCount, Pressed: true})
	c.Forward(imdx9.MouseInput{Button: imdx9.MouseButton(-1), Pressed: true})
	c.Forward(imdx9.KeyInput{Key: imdx9.KeyLeftCtrl, Pressed: true, Mods: imdx9.ModCtrl})
	assert.Equal(t, [imdx9.MouseButtonCount]bool{true, false, true, false, true}, c.Input().Buttons)
	assert.True(t, c.Input().Keys[imdx9.KeyLeftCtrl])

	c.Forward(imdx9.Focused{Focused: false})
	assert.False(t, c.Input().Focused)
	assert.Equal(t, [imdx9.MouseButtonCount]bool{}, c.Input().Buttons)
	assert.False(t, c.Input().Keys[imdx9.KeyLeftCtrl])
	assert.False(t, c.Input().HasMouse)
}

func TestGui_ResizeUpdatesTransform(t *testing.T) {
	c := newContext(t, Config{DisplaySize: image.Pt(400, 400)}, &fakeSurface{w: 400, h: 400, scale: 1})

	c.Forward(imdx9.Resized{Width: 200, Height: 100})
	c.Forward(imdx9.CursorMoved{X: 50, Y: 50})
	assert.Equal(t, f32.Pt(100, 200), c.Input().Mouse)

	// Minimized windows report a zero size and keep the previous mapping.
	c.Forward(imdx9.Resized{Width: 0, Height: 0})
	c.Forward(imdx9.CursorMoved{X: 50, Y: 50})
	assert.Equal(t, f32.Pt(100, 200), c.Input().Mouse)
}

func TestGui_PrepareFrameFailure(t *testing.T) {
	s := &fakeSurface{w: 640, h: 480, scale: 1}
	c := newContext(t, Config{}, s)

	require.NoError(t, c.PrepareFrame())

	s.err = errors.New("window destroyed")
	assert.ErrorIs(t, c.PrepareFrame(), s.err)
}

func TestGui_FrameProducesDrawData(t *testing.T) {
	c := newContext(t, Config{}, &fakeSurface{w: 640, h: 480, scale: 1})

	_, err := c.BuildFontAtlas()
	require.NoError(t, err)
	c.SetFontTexture(1)

	for i := 0; i < 2; i++ {
		c.Advance(16 * time.Millisecond)
		require.NoError(t, c.PrepareFrame())
		c.Forward(imdx9.CursorMoved{X: 20, Y: 30})

		dl := c.Frame(c.HelloWorld)
		require.True(t, dl.Valid())

		data, ok := dl.(FrameData)
		require.True(t, ok)
		assert.NotEmpty(t, data.CommandLists())
		assert.Equal(t, f32.Pt(640, 480), data.DisplaySize)
	}
}

func TestGui_FrameSyncsCursor(t *testing.T) {
	s := &fakeSurface{w: 640, h: 480, scale: 1}
	c := newContext(t, Config{}, s)

	_, err := c.BuildFontAtlas()
	require.NoError(t, err)
	c.SetFontTexture(1)

	frame := func() {
		c.Advance(16 * time.Millisecond)
		require.NoError(t, c.PrepareFrame())
		c.Frame(c.HelloWorld)
	}
	frame()
	frame()
	assert.Equal(t, []imdx9.Cursor{imdx9.CursorArrow}, s.cursors)

	// A cursor changed behind the context is restored on the next frame.
	c.cursor = imdx9.CursorHand
	frame()
	assert.Equal(t, []imdx9.Cursor{imdx9.CursorArrow, imdx9.CursorArrow}, s.cursors)
}

func TestGui_HelloWorldSize(t *testing.T) {
	c := newContext(t, Config{}, &fakeSurface{w: 640, h: 480, scale: 1})

	_, err := c.BuildFontAtlas()
	require.NoError(t, err)
	c.SetFontTexture(1)

	var size imgui.Vec2
	c.Advance(16 * time.Millisecond)
	require.NoError(t, c.PrepareFrame())
	c.Frame(func() {
		c.HelloWorld()
		imgui.Begin("Hello world")
		size = imgui.WindowSize()
		imgui.End()
	})
	assert.Equal(t, imgui.Vec2{X: 300, Y: 100}, helloSize)
	assert.Equal(t, helloSize, size)
}

func TestGui_TranslateCursor(t *testing.T) {
	tests := []struct {
		id   int
		want imdx9.Cursor
	}{
		{int(imgui.MouseCursorNone), imdx9.CursorNone},
		{int(imgui.MouseCursorArrow), imdx9.CursorArrow},
		{int(imgui.MouseCursorTextInput), imdx9.CursorTextInput},
		{int(imgui.MouseCursorResizeAll), imdx9.CursorResizeAll},
		{int(imgui.MouseCursorResizeNS), imdx9.CursorResizeNS},
		{int(imgui.MouseCursorResizeEW), imdx9.CursorResizeEW},
		{int(imgui.MouseCursorResizeNESW), imdx9.CursorResizeNESW},
		{int(imgui.MouseCursorResizeNWSE), imdx9.CursorResizeNWSE},
		{int(imgui.MouseCursorHand), imdx9.CursorHand},
		{int(imgui.MouseCursorNotAllowed), imdx9.CursorNotAllowed},
		{99, imdx9.CursorArrow},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, translateCursor(tt.id), "cursor %d", tt.id)
	}
}

func TestGui_NewRequiresSurface(t *testing.T) {
	_, err := New(Config{}, nil)
	assert.Error(t, err)

	_, err = New(Config{}, &fakeSurface{err: errors.New("no window")})
	assert.Error(t, err)
}
