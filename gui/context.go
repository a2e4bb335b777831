// Package gui owns the Dear ImGui context of the program: the font atlas,
// the input model fed from the window events and the widgets built every frame.
package gui

import (
	"errors"
	"fmt"
	"image"
	"math"
	"unsafe"

	"gioui.org/f32"
	"github.com/disintegration/imaging"
	"github.com/esimov/imdx9"
	"github.com/esimov/imdx9/utils"
	"github.com/inkyblackness/imgui-go/v4"
)

// DefaultFontSize is the font size in pixels at a HiDPI factor of one.
const DefaultFontSize = 13

// Surface is the window the GUI is displayed in.
type Surface interface {
	// Size returns the window size in screen coordinates.
	Size() (width, height int, err error)
	// ContentScale returns the ratio between the current DPI and the platform default.
	ContentScale() (x, y float32)
	// SetCursor changes the mouse cursor shown over the window.
	SetCursor(c imdx9.Cursor)
}

// Config describes the fonts and the optional windows of the GUI.
type Config struct {
	// FontData is a TrueType or OpenType font. The built-in ImGui font is used when empty.
	FontData []byte
	// FontSize is the font size in pixels before the HiDPI factor is applied.
	FontSize float32
	// DisplaySize is the size of the back buffer the GUI is drawn into.
	// The window size is used when empty.
	DisplaySize image.Point
	// ShowDemo opens the ImGui demo window next to the hello world window.
	ShowDemo bool
}

// Context is the GUI state mutated by the frame loop. It is not safe for concurrent use.
type Context struct {
	ctx     *imgui.Context
	io      imgui.IO
	surface Surface
	cfg     Config

	hidpi   float64
	display f32.Point
	window  image.Point
	// toDisplay maps window coordinates to display coordinates.
	toDisplay f32.Affine2D

	atlas  *image.RGBA
	input  Input
	cursor imdx9.Cursor
}

var _ imdx9.GUI = (*Context)(nil)

// Input is a snapshot of the input forwarded to the GUI.
type Input struct {
	Mouse    f32.Point
	HasMouse bool
	Buttons  [imdx9.MouseButtonCount]bool
	Keys     [imdx9.KeyCount]bool
	Focused  bool
}

// New creates the ImGui context. The settings file of ImGui is disabled.
func New(cfg Config, s Surface) (*Context, error) {
	if s == nil {
		return nil, errors.New("gui: missing surface")
	}
	if cfg.FontSize <= 0 {
		cfg.FontSize = DefaultFontSize
	}
	w, h, err := s.Size()
	if err != nil {
		return nil, fmt.Errorf("gui: unable to query the window size: %w", err)
	}

	c := &Context{
		ctx:     imgui.CreateContext(nil),
		io:      imgui.CurrentIO(),
		surface: s,
		cfg:     cfg,
		hidpi:   hidpiFactor(s.ContentScale()),
		input:   Input{Focused: true},
		cursor:  cursorUnset,
	}
	c.io.SetIniFilename("")
	c.io.SetBackendFlags(imgui.BackendFlagsHasMouseCursors)
	c.mapKeys()
	c.loadFonts()
	c.resize(w, h)

	return c, nil
}

// hidpiFactor rounds the content scale to the closest integer factor, never less than one.
func hidpiFactor(x, y float32) float64 {
	return utils.Max(math.Round(float64(utils.Max(x, y))), 1)
}

// HiDPI returns the HiDPI factor applied to the fonts.
func (c *Context) HiDPI() float64 { return c.hidpi }

// Input returns the current input snapshot.
func (c *Context) Input() Input { return c.input }

func (c *Context) loadFonts() {
	size := c.cfg.FontSize * float32(c.hidpi)
	fonts := c.io.Fonts()

	if len(c.cfg.FontData) == 0 {
		fc := imgui.NewFontConfig()
		defer fc.Delete()

		fc.SetSize(size)
		fonts.AddFontDefaultV(fc)
	} else {
		fonts.AddFontFromMemoryTTF(c.cfg.FontData, size)
	}
	// Rasterise at the physical size but lay out at the logical one.
	c.io.SetFontGlobalScale(float32(1 / c.hidpi))
}

// BuildFontAtlas rasterises the fonts into an RGBA image. The atlas is built
// once; later calls fail.
func (c *Context) BuildFontAtlas() (*image.RGBA, error) {
	if c.atlas != nil {
		return nil, errors.New("gui: font atlas already built")
	}
	data := c.io.Fonts().TextureDataRGBA32()
	if data == nil || data.Width <= 0 || data.Height <= 0 || data.Pixels == nil {
		return nil, errors.New("gui: empty font atlas")
	}
	img := image.NewRGBA(image.Rect(0, 0, data.Width, data.Height))
	copy(img.Pix, unsafe.Slice((*byte)(data.Pixels), len(img.Pix)))
	c.atlas = img

	return img, nil
}

// SetFontTexture records the id of the texture holding the font atlas.
func (c *Context) SetFontTexture(id uintptr) {
	c.io.Fonts().SetTextureID(imgui.TextureID(id))
}

// DumpAtlas saves the built font atlas as an image. The format is deduced from the file extension.
func (c *Context) DumpAtlas(path string) error {
	if c.atlas == nil {
		return errors.New("gui: font atlas not built yet")
	}
	if err := imaging.Save(c.atlas, path); err != nil {
		return fmt.Errorf("gui: unable to save the font atlas: %w", err)
	}
	return nil
}

// Destroy releases the ImGui context.
func (c *Context) Destroy() {
	if c.ctx != nil {
		c.ctx.Destroy()
		c.ctx = nil
	}
}
