package dx9

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"unsafe"

	"gioui.org/f32"
	"github.com/esimov/imdx9"
	"github.com/esimov/imdx9/utils"
)

// Native values of the D3DFORMAT, D3DSWAPEFFECT and D3DPRESENT enumerations.
const (
	fmtUnknown  = 0
	fmtA8R8G8B8 = 21
	fmtX8R8G8B8 = 22
	fmtR5G6B5   = 23

	swapDiscard = 1
	swapFlip    = 2
	swapCopy    = 3

	intervalDefault   = 0
	intervalOne       = 1
	intervalImmediate = 0x80000000

	maxBackBuffers = 3
)

// presentation mirrors the D3DPRESENT_PARAMETERS fields set by the bootstrap.
type presentation struct {
	Width       uint32
	Height      uint32
	Count       uint32
	Format      uint32
	SwapEffect  uint32
	Windowed    int32
	RefreshRate uint32
	Interval    uint32
}

// nativeParams validates the presentation parameters and translates them to
// their Direct3D values.
func nativeParams(p imdx9.PresentParams) (presentation, error) {
	var n presentation

	if p.BackBufferWidth <= 0 || p.BackBufferHeight <= 0 {
		return n, fmt.Errorf("invalid back buffer size %dx%d", p.BackBufferWidth, p.BackBufferHeight)
	}
	if p.BackBufferCount < 1 || p.BackBufferCount > maxBackBuffers {
		return n, fmt.Errorf("invalid back buffer count %d", p.BackBufferCount)
	}
	if p.Windowed && p.RefreshRate != imdx9.RefreshRateDefault {
		return n, errors.New("the refresh rate must be left to the adapter in windowed mode")
	}
	if p.SwapEffect == imdx9.SwapCopy && p.BackBufferCount != 1 {
		return n, errors.New("the copy swap effect requires a single back buffer")
	}
	n.Width = uint32(p.BackBufferWidth)
	n.Height = uint32(p.BackBufferHeight)
	n.Count = uint32(p.BackBufferCount)
	n.RefreshRate = uint32(p.RefreshRate)
	if p.Windowed {
		n.Windowed = 1
	}

	switch p.BackBufferFormat {
	case imdx9.FormatUnknown:
		n.Format = fmtUnknown
	case imdx9.FormatR5G6B5:
		n.Format = fmtR5G6B5
	case imdx9.FormatX8R8G8B8:
		n.Format = fmtX8R8G8B8
	case imdx9.FormatA8R8G8B8:
		n.Format = fmtA8R8G8B8
	default:
		return n, fmt.Errorf("unsupported back buffer format %v", p.BackBufferFormat)
	}

	switch p.SwapEffect {
	case imdx9.SwapDiscard:
		n.SwapEffect = swapDiscard
	case imdx9.SwapFlip:
		n.SwapEffect = swapFlip
	case imdx9.SwapCopy:
		n.SwapEffect = swapCopy
	default:
		return n, fmt.Errorf("unsupported swap effect %v", p.SwapEffect)
	}

	switch p.PresentInterval {
	case imdx9.IntervalDefault:
		n.Interval = intervalDefault
	case imdx9.IntervalOne:
		n.Interval = intervalOne
	case imdx9.IntervalImmediate:
		n.Interval = intervalImmediate
	default:
		return n, fmt.Errorf("unsupported present interval %d", p.PresentInterval)
	}

	return n, nil
}

// colorComponents returns the normalized channels of c.
func colorComponents(c color.NRGBA) (r, g, b, a float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255
}

// abgrToARGB swaps the red and blue channels of a packed ImGui color.
func abgrToARGB(c uint32) uint32 {
	return c&0xff00ff00 | (c&0x00ff0000)>>16 | (c&0x000000ff)<<16
}

// projection returns the row major orthographic matrix mapping the display
// rectangle to clip space. Direct3D 9 samples at pixel corners, hence the half pixel offset.
func projection(display f32.Point) [16]float32 {
	const (
		l = 0.5
		t = 0.5
	)
	r := display.X + 0.5
	b := display.Y + 0.5

	return [16]float32{
		2 / (r - l), 0, 0, 0,
		0, 2 / (t - b), 0, 0,
		0, 0, 0.5, 0,
		(l + r) / (l - r), (t + b) / (b - t), 0.5, 1,
	}
}

// scissorRect scales a GUI clip rectangle to the back buffer and clamps it to
// its bounds. The boolean is false when nothing is left to draw.
func scissorRect(clip [4]float32, scale f32.Point, bounds image.Point) (image.Rectangle, bool) {
	r := image.Rect(
		utils.Clamp(int(clip[0]*scale.X), 0, bounds.X),
		utils.Clamp(int(clip[1]*scale.Y), 0, bounds.Y),
		utils.Clamp(int(clip[2]*scale.X), 0, bounds.X),
		utils.Clamp(int(clip[3]*scale.Y), 0, bounds.Y),
	)
	return r, !r.Empty()
}

// bgra packs the image rows into the byte order of an A8R8G8B8 texture.
func bgra(img *image.RGBA) []byte {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	out := make([]byte, w*h*4)

	for y := 0; y < h; y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+w*4]
		dst := out[y*w*4 : (y+1)*w*4]
		for x := 0; x < len(src); x += 4 {
			dst[x+0] = src[x+2]
			dst[x+1] = src[x+1]
			dst[x+2] = src[x+0]
			dst[x+3] = src[x+3]
		}
	}
	return out
}

// vertex is the fixed function layout declared by vertexFVF: position,
// diffuse color and one set of texture coordinates.
type vertex struct {
	X, Y, Z float32
	Color   uint32
	U, V    float32
}

// vertexLayout describes an ImGui vertex: its size and the offsets of its fields.
type vertexLayout struct {
	size, pos, uv, col int
}

// convertVertices decodes count GUI vertices starting at src into dst, reusing its storage.
func convertVertices(dst []vertex, src unsafe.Pointer, count int, l vertexLayout) []vertex {
	if cap(dst) < count {
		dst = make([]vertex, count)
	}
	dst = dst[:count]
	if count == 0 {
		return dst
	}
	buf := unsafe.Slice((*byte)(src), count*l.size)

	for i := range dst {
		v := buf[i*l.size:]
		pos := (*[2]float32)(unsafe.Pointer(&v[l.pos]))
		uv := (*[2]float32)(unsafe.Pointer(&v[l.uv]))
		col := *(*uint32)(unsafe.Pointer(&v[l.col]))

		dst[i] = vertex{
			X:     pos[0],
			Y:     pos[1],
			Color: abgrToARGB(col),
			U:     uv[0],
			V:     uv[1],
		}
	}
	return dst
}
