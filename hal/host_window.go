//go:build cgo

package hal

import (
	"errors"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"skillnet/internal/buildinfo"
	"skillnet/viz/canvas"
)

// WindowConfig sizes the desktop window.
type WindowConfig struct {
	Width  int
	Height int
}

// RunWindow opens a resizable desktop window that shows the surface and
// forwards pointer and key input. It blocks until the window closes.
func RunWindow(newApp func(HAL) func() error, cfg WindowConfig) error {
	w := max(cfg.Width, MinWidth)
	h := max(cfg.Height, MinHeight)

	disp, err := newWindowDisplay(w, h)
	if err != nil {
		return err
	}
	host := newHost(disp, newHostTime())
	step := newApp(host)

	g := &hostGame{h: host, disp: disp, step: step}
	ebiten.SetWindowTitle("Skill Network (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowSizeLimits(MinWidth, MinHeight, -1, -1)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

type hostGame struct {
	h    *hostHAL
	disp *windowDisplay
	step func() error

	overlay   *ebiten.Image
	overlayAt *image.RGBA
}

func (g *hostGame) Update() error {
	g.pollPointer()
	g.pollKeys()
	g.h.t.step()
	if err := g.h.tick(g.step); err != nil {
		if errors.Is(err, ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.disp.canvas, nil)

	ov := g.disp.overlay
	if ov == nil {
		return
	}
	b := ov.Bounds()
	if b.Empty() {
		return
	}
	if g.overlay == nil || g.overlay.Bounds().Size() != b.Size() {
		if g.overlay != nil {
			g.overlay.Deallocate()
		}
		g.overlay = ebiten.NewImage(b.Dx(), b.Dy())
	}
	if g.overlayAt != ov {
		g.overlay.WritePixels(ov.Pix)
		g.overlayAt = ov
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(overlayOffset.X), float64(overlayOffset.Y))
	screen.DrawImage(g.overlay, op)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := max(outsideWidth, MinWidth)
	h := max(outsideHeight, MinHeight)
	g.disp.resize(w, h)
	return w, h
}

func (g *hostGame) pollPointer() {
	x, y := ebiten.CursorPosition()
	w, h := g.disp.surf.Size()
	inside := ebiten.IsFocused() && x >= 0 && y >= 0 && x < w && y < h
	g.h.ptr.update(x, y, inside)
}

func (g *hostGame) pollKeys() {
	keys := []struct {
		key  ebiten.Key
		code KeyCode
	}{
		{ebiten.KeyEscape, KeyEscape},
		{ebiten.KeySpace, KeySpace},
		{ebiten.KeyH, KeyH},
		{ebiten.KeyR, KeyR},
	}
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k.key) {
			g.h.kbd.emit(k.code)
		}
	}
}

type windowDisplay struct {
	canvas  *ebiten.Image
	surf    *ebitenSurface
	resizes chan image.Point
	overlay *image.RGBA
}

func newWindowDisplay(w, h int) (*windowDisplay, error) {
	src, err := newTextSource()
	if err != nil {
		return nil, err
	}
	img := ebiten.NewImage(w, h)
	return &windowDisplay{
		canvas:  img,
		surf:    newEbitenSurface(img, src),
		resizes: make(chan image.Point, 1),
	}, nil
}

func (d *windowDisplay) Surface() canvas.Surface        { return d.surf }
func (d *windowDisplay) Resizes() <-chan image.Point    { return d.resizes }
func (d *windowDisplay) SetOverlay(img *image.RGBA)     { d.overlay = img }
func (d *windowDisplay) Snapshot() (*image.RGBA, error) { return nil, ErrNotImplemented }

// resize reallocates the canvas and reports the new size, keeping only the
// latest size if the app has not drained the previous one.
func (d *windowDisplay) resize(w, h int) {
	if b := d.canvas.Bounds(); b.Dx() == w && b.Dy() == h {
		return
	}
	d.canvas.Deallocate()
	d.canvas = ebiten.NewImage(w, h)
	d.surf.reset(d.canvas)

	p := image.Pt(w, h)
	select {
	case d.resizes <- p:
	default:
		select {
		case <-d.resizes:
		default:
		}
		select {
		case d.resizes <- p:
		default:
		}
	}
}
