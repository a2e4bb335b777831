package imdx9

import (
	"errors"
	"image"
	"image/color"
	"time"
)

// trace records the calls made on the fakes in their order.
type trace struct {
	calls []string
}

func (t *trace) add(call string) { t.calls = append(t.calls, call) }

type fakeDevice struct {
	tr       *trace
	failOn   string
	released int
	cleared  []color.NRGBA
}

func (d *fakeDevice) call(name string) error {
	d.tr.add(name)
	if d.failOn == name {
		return errors.New(name + " failed")
	}
	return nil
}

func (d *fakeDevice) Clear(c color.NRGBA) error {
	d.cleared = append(d.cleared, c)
	return d.call("clear")
}
func (d *fakeDevice) BeginScene() error { return d.call("begin") }
func (d *fakeDevice) EndScene() error   { return d.call("end") }
func (d *fakeDevice) Present() error    { return d.call("present") }
func (d *fakeDevice) Release() {
	d.released++
	d.tr.add("release device")
}

type fakeFactory struct {
	tr       *trace
	dev      *fakeDevice
	err      error
	created  int
	released int
	hwnd     uintptr
	params   PresentParams
}

func (f *fakeFactory) CreateDevice(hwnd uintptr, p PresentParams) (*fakeDevice, error) {
	f.created++
	f.hwnd, f.params = hwnd, p
	if f.err != nil {
		return nil, f.err
	}
	return f.dev, nil
}

func (f *fakeFactory) Release() {
	f.released++
	f.tr.add("release factory")
}

type fakeDrawList struct{ frame int }

func (fakeDrawList) Valid() bool { return true }

type fakeGUI struct {
	tr         *trace
	atlasBuilt int
	textureID  uintptr
	inputs     []InputEvent
	deltas     []time.Duration
	prepErr    error
	frames     int
}

func (g *fakeGUI) BuildFontAtlas() (*image.RGBA, error) {
	g.atlasBuilt++
	g.tr.add("build atlas")
	return image.NewRGBA(image.Rect(0, 0, 8, 4)), nil
}

func (g *fakeGUI) SetFontTexture(id uintptr) { g.textureID = id }

func (g *fakeGUI) Forward(ev InputEvent) {
	g.inputs = append(g.inputs, ev)
	g.tr.add("input")
}

func (g *fakeGUI) Advance(dt time.Duration) { g.deltas = append(g.deltas, dt) }

func (g *fakeGUI) PrepareFrame() error {
	g.tr.add("prepare")
	return g.prepErr
}

func (g *fakeGUI) Frame(layout func()) DrawList {
	g.frames++
	g.tr.add("frame")
	layout()
	return fakeDrawList{frame: g.frames}
}

type fakeRenderer struct {
	tr       *trace
	err      error
	textures int
	released int
	rendered []DrawList
}

func (r *fakeRenderer) CreateFontTexture(img *image.RGBA) (uintptr, error) {
	r.textures++
	r.tr.add("font texture")
	return 42, nil
}

func (r *fakeRenderer) Render(dl DrawList) error {
	r.rendered = append(r.rendered, dl)
	r.tr.add("render")
	return r.err
}

func (r *fakeRenderer) Release() {
	r.released++
	r.tr.add("release renderer")
}

// scriptWindow replays a fixed list of events and records redraw requests.
type scriptWindow struct {
	events   []Event
	redraws  int
	consumed int
}

func (w *scriptWindow) Next() Event {
	if w.consumed == len(w.events) {
		return CloseRequested{}
	}
	ev := w.events[w.consumed]
	w.consumed++
	return ev
}

func (w *scriptWindow) RequestRedraw() { w.redraws++ }

type fixture struct {
	tr   *trace
	fac  *fakeFactory
	dev  *fakeDevice
	gui  *fakeGUI
	rend *fakeRenderer
	win  *scriptWindow
}

func newFixture(events ...Event) *fixture {
	tr := &trace{}
	dev := &fakeDevice{tr: tr}
	return &fixture{
		tr:   tr,
		fac:  &fakeFactory{tr: tr, dev: dev},
		dev:  dev,
		gui:  &fakeGUI{tr: tr},
		rend: &fakeRenderer{tr: tr},
		win:  &scriptWindow{events: events},
	}
}

func (f *fixture) config() Config {
	return Config{
		Factory:  f.fac,
		Device:   f.dev,
		GUI:      f.gui,
		Renderer: f.rend,
		Window:   f.win,
		Now:      func() time.Time { return epoch },
	}
}

var epoch = time.Date(2022, 8, 1, 12, 0, 0, 0, time.UTC)
