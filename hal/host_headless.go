package hal

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"skillnet/viz/canvas"
)

// MinWidth and MinHeight floor the drawing surface size.
const (
	MinWidth  = 280
	MinHeight = 260
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Hz     int
	Ticks  uint64
	Width  int
	Height int
	// Pointer, when set, places the cursor there before the first tick.
	Pointer *image.Point
	// RealTime uses the wall clock instead of advancing 1/Hz per tick.
	RealTime bool
}

// RunHeadless runs the app against a software surface without opening a
// window. It returns nil after cfg.Ticks ticks, or ctx.Err() when cancelled.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	disp, err := newHeadlessDisplay(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	clock := newFixedTime(d)
	if cfg.RealTime {
		clock = newHostTime()
	}
	h := newHost(disp, clock)
	if cfg.Pointer != nil {
		h.ptr.update(cfg.Pointer.X, cfg.Pointer.Y, true)
	}
	step := newApp(h)
	defer disp.present()

	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			h.t.step()
			if err := h.tick(step); err != nil {
				if errors.Is(err, ErrQuit) {
					return nil
				}
				return err
			}
			disp.present()
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}

type headlessDisplay struct {
	fb      *hostFramebuffer
	img     *image.RGBA
	surf    *canvas.Raster
	resizes chan image.Point
	overlay *image.RGBA
}

func newHeadlessDisplay(w, h int) (*headlessDisplay, error) {
	w = max(w, MinWidth)
	h = max(h, MinHeight)
	fonts, err := canvas.DefaultFonts()
	if err != nil {
		return nil, fmt.Errorf("headless display: %w", err)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	return &headlessDisplay{
		fb:      newHostFramebuffer(w, h),
		img:     img,
		surf:    canvas.NewRaster(img, fonts),
		resizes: make(chan image.Point, 1),
	}, nil
}

func (d *headlessDisplay) Surface() canvas.Surface     { return d.surf }
func (d *headlessDisplay) Resizes() <-chan image.Point { return d.resizes }
func (d *headlessDisplay) SetOverlay(img *image.RGBA)  { d.overlay = img }

func (d *headlessDisplay) Snapshot() (*image.RGBA, error) {
	return d.fb.snapshot(), nil
}

func (d *headlessDisplay) present() {
	d.fb.present(d.img, d.overlay)
}
