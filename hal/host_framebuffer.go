package hal

import (
	"image"
	"image/draw"
	"sync"
)

// hostFramebuffer holds the last presented frame. Snapshots may be taken
// from any goroutine.
type hostFramebuffer struct {
	mu  sync.Mutex
	img *image.RGBA
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	return &hostFramebuffer{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// present copies src and composites overlay on top of the copy.
func (f *hostFramebuffer) present(src *image.RGBA, overlay *image.RGBA) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if src == nil {
		return
	}
	if f.img.Bounds() != src.Bounds() {
		f.img = image.NewRGBA(src.Bounds())
	}
	copy(f.img.Pix, src.Pix)
	if overlay != nil {
		compositeOverlay(f.img, overlay)
	}
}

func (f *hostFramebuffer) snapshot() *image.RGBA {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := image.NewRGBA(f.img.Bounds())
	draw.Draw(out, out.Bounds(), f.img, f.img.Bounds().Min, draw.Src)
	return out
}
