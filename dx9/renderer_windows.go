//go:build windows

package dx9

import (
	"errors"
	"fmt"
	"image"
	"unsafe"

	"gioui.org/f32"
	"github.com/esimov/imdx9"
	"github.com/esimov/imdx9/gui"
	"github.com/gonutz/d3d9"
	"github.com/inkyblackness/imgui-go/v4"
)

const vertexFVF = d3d9.FVF_XYZ | d3d9.FVF_DIFFUSE | d3d9.FVF_TEX1

// Renderer draws the GUI frames with the fixed function pipeline of a Device.
// It owns the textures it creates but not the device.
type Renderer struct {
	dev      *Device
	bounds   image.Point
	textures map[uintptr]*d3d9.Texture
	lastID   uintptr
	vertices []vertex
}

var _ imdx9.Renderer = (*Renderer)(nil)

// NewRenderer returns a renderer drawing into the back buffer of d.
func NewRenderer(d *Device) *Renderer {
	return &Renderer{
		dev:      d,
		bounds:   image.Pt(int(d.size[0]), int(d.size[1])),
		textures: make(map[uintptr]*d3d9.Texture),
	}
}

// CreateFontTexture uploads the font atlas into a managed texture and returns its id.
func (r *Renderer) CreateFontTexture(img *image.RGBA) (uintptr, error) {
	if r.dev.dev == nil {
		return 0, errReleased
	}
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if w == 0 || h == 0 {
		return 0, errors.New("empty texture image")
	}
	tex, err := r.dev.dev.CreateTexture(uint(w), uint(h), 1, 0, d3d9.FMT_A8R8G8B8, d3d9.POOL_MANAGED, 0)
	if err != nil {
		return 0, err
	}
	rect, err := tex.LockRect(0, nil, 0)
	if err != nil {
		tex.Release()
		return 0, err
	}
	rect.SetAllBytes(bgra(img), w*4)
	if err := tex.UnlockRect(0); err != nil {
		tex.Release()
		return 0, err
	}
	r.lastID++
	r.textures[r.lastID] = tex

	return r.lastID, nil
}

// firstError keeps the first failure of a sequence of native calls.
type firstError struct{ err error }

func (f *firstError) check(err error) {
	if f.err == nil && err != nil {
		f.err = err
	}
}

// setupState configures the pipeline for alpha blended, scissored, textured triangles.
func (r *Renderer) setupState(display f32.Point) error {
	d := r.dev.dev
	var fe firstError

	fe.check(d.SetViewport(d3d9.VIEWPORT{
		Width:  uint32(r.bounds.X),
		Height: uint32(r.bounds.Y),
		MinZ:   0,
		MaxZ:   1,
	}))
	fe.check(d.SetRenderState(d3d9.RS_CULLMODE, d3d9.CULL_NONE))
	fe.check(d.SetRenderState(d3d9.RS_LIGHTING, 0))
	fe.check(d.SetRenderState(d3d9.RS_ZENABLE, 0))
	fe.check(d.SetRenderState(d3d9.RS_ZWRITEENABLE, 0))
	fe.check(d.SetRenderState(d3d9.RS_ALPHATESTENABLE, 0))
	fe.check(d.SetRenderState(d3d9.RS_ALPHABLENDENABLE, 1))
	fe.check(d.SetRenderState(d3d9.RS_SRCBLEND, d3d9.BLEND_SRCALPHA))
	fe.check(d.SetRenderState(d3d9.RS_DESTBLEND, d3d9.BLEND_INVSRCALPHA))
	fe.check(d.SetRenderState(d3d9.RS_SCISSORTESTENABLE, 1))

	fe.check(d.SetTextureStageState(0, d3d9.TSS_COLOROP, d3d9.TOP_MODULATE))
	fe.check(d.SetTextureStageState(0, d3d9.TSS_COLORARG1, d3d9.TA_TEXTURE))
	fe.check(d.SetTextureStageState(0, d3d9.TSS_COLORARG2, d3d9.TA_DIFFUSE))
	fe.check(d.SetTextureStageState(0, d3d9.TSS_ALPHAOP, d3d9.TOP_MODULATE))
	fe.check(d.SetTextureStageState(0, d3d9.TSS_ALPHAARG1, d3d9.TA_TEXTURE))
	fe.check(d.SetTextureStageState(0, d3d9.TSS_ALPHAARG2, d3d9.TA_DIFFUSE))
	fe.check(d.SetSamplerState(0, d3d9.SAMP_MINFILTER, d3d9.TEXF_LINEAR))
	fe.check(d.SetSamplerState(0, d3d9.SAMP_MAGFILTER, d3d9.TEXF_LINEAR))

	var identity d3d9.MATRIX
	identity[0], identity[5], identity[10], identity[15] = 1, 1, 1, 1
	fe.check(d.SetTransform(d3d9.TSWorldMatrix(0), identity))
	fe.check(d.SetTransform(d3d9.TS_VIEW, identity))
	fe.check(d.SetTransform(d3d9.TS_PROJECTION, d3d9.MATRIX(projection(display))))
	fe.check(d.SetFVF(vertexFVF))

	return fe.err
}

// Render draws a frame produced by the gui package. It must be called
// between BeginScene and EndScene.
func (r *Renderer) Render(dl imdx9.DrawList) error {
	frame, ok := dl.(gui.FrameData)
	if !ok {
		return fmt.Errorf("unsupported draw list %T", dl)
	}
	if r.dev.dev == nil {
		return errReleased
	}
	if !frame.Valid() || frame.DisplaySize.X <= 0 || frame.DisplaySize.Y <= 0 {
		return nil
	}
	if err := r.setupState(frame.DisplaySize); err != nil {
		return fmt.Errorf("unable to set up the render state: %w", err)
	}
	scale := f32.Pt(
		float32(r.bounds.X)/frame.DisplaySize.X,
		float32(r.bounds.Y)/frame.DisplaySize.Y,
	)

	vertexSize, posOffset, uvOffset, colOffset := imgui.VertexBufferLayout()
	layout := vertexLayout{size: vertexSize, pos: posOffset, uv: uvOffset, col: colOffset}
	indexSize := imgui.IndexBufferLayout()
	indexFormat := d3d9.FORMAT(d3d9.FMT_INDEX16)
	if indexSize == 4 {
		indexFormat = d3d9.FMT_INDEX32
	}

	for _, list := range frame.CommandLists() {
		vb, vbSize := list.VertexBuffer()
		ib, _ := list.IndexBuffer()
		r.vertices = convertVertices(r.vertices, vb, vbSize/vertexSize, layout)

		for _, cmd := range list.Commands() {
			if cmd.HasUserCallback() {
				cmd.CallUserCallback(list)
				continue
			}
			clip := cmd.ClipRect()
			rect, visible := scissorRect([4]float32{clip.X, clip.Y, clip.Z, clip.W}, scale, r.bounds)
			if !visible || cmd.ElementCount() == 0 {
				continue
			}
			if err := r.draw(cmd, rect, ib, indexSize, indexFormat); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Renderer) draw(
	cmd imgui.DrawCommand,
	clip image.Rectangle,
	indices unsafe.Pointer,
	indexSize int,
	indexFormat d3d9.FORMAT,
) error {
	d := r.dev.dev

	if err := d.SetScissorRect(d3d9.RECT{
		Left:   int32(clip.Min.X),
		Top:    int32(clip.Min.Y),
		Right:  int32(clip.Max.X),
		Bottom: int32(clip.Max.Y),
	}); err != nil {
		return fmt.Errorf("unable to set the scissor rectangle: %w", err)
	}

	var err error
	if tex, ok := r.textures[uintptr(cmd.TextureID())]; ok {
		err = d.SetTexture(0, tex)
	} else {
		err = d.SetTexture(0, nil)
	}
	if err != nil {
		return fmt.Errorf("unable to bind texture %d: %w", cmd.TextureID(), err)
	}

	base := cmd.VertexOffset()
	if base >= len(r.vertices) {
		return fmt.Errorf("vertex offset %d out of range", base)
	}
	if err := d.DrawIndexedPrimitiveUP(
		d3d9.PT_TRIANGLELIST,
		0,
		uint(len(r.vertices)-base),
		uint(cmd.ElementCount()/3),
		uintptr(indices)+uintptr(cmd.IndexOffset()*indexSize),
		indexFormat,
		uintptr(unsafe.Pointer(&r.vertices[base])),
		uint(unsafe.Sizeof(vertex{})),
	); err != nil {
		return fmt.Errorf("unable to draw %d elements: %w", cmd.ElementCount(), err)
	}
	return nil
}

// Release releases the textures created by the renderer.
func (r *Renderer) Release() {
	for id, tex := range r.textures {
		tex.Release()
		delete(r.textures, id)
	}
}
