package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Raster is a software Surface drawing into an *image.RGBA.
//
// Create it once per image and reuse it; it keeps a rasterizer between calls.
type Raster struct {
	img   *image.RGBA
	z     *vector.Rasterizer
	fonts *Fonts
}

// NewRaster wraps img. Text is skipped when fonts is nil.
func NewRaster(img *image.RGBA, fonts *Fonts) *Raster {
	r := &Raster{img: img, fonts: fonts}
	w, h := r.Size()
	r.z = vector.NewRasterizer(w, h)
	return r
}

// Image returns the backing image.
func (r *Raster) Image() *image.RGBA { return r.img }

// Reset points the surface at a new image, e.g. after a resize.
func (r *Raster) Reset(img *image.RGBA) {
	r.img = img
	w, h := r.Size()
	r.z.Reset(w, h)
}

func (r *Raster) Size() (w, h int) {
	if r == nil || r.img == nil {
		return 0, 0
	}
	b := r.img.Bounds()
	return b.Dx(), b.Dy()
}

func (r *Raster) Clear(c Color) {
	if w, h := r.Size(); w <= 0 || h <= 0 {
		return
	}
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(c.NRGBA()), image.Point{}, draw.Src)
}

func (r *Raster) StrokeLine(x0, y0, x1, y1, width float64, p Paint) {
	r.fill(LinePath(x0, y0, x1, y1, width), p)
}

func (r *Raster) FillCircle(cx, cy, radius float64, p Paint) {
	r.fill(CirclePath(cx, cy, radius), p)
}

func (r *Raster) FillRoundRect(x, y, w, h, radius float64, p Paint) {
	r.fill(RoundRectPath(x, y, w, h, radius), p)
}

func (r *Raster) StrokeRoundRect(x, y, w, h, radius, width float64, p Paint) {
	r.fill(RoundRectRingPath(x, y, w, h, radius, width), p)
}

func (r *Raster) MeasureText(s string, size float64) float64 {
	face := r.fonts.Face(size)
	if face == nil {
		return 0
	}
	return fixedToFloat(font.MeasureString(face, s))
}

func (r *Raster) FillText(s string, cx, cy, size float64, c Color) {
	w, h := r.Size()
	if w <= 0 || h <= 0 || s == "" {
		return
	}
	face := r.fonts.Face(size)
	if face == nil {
		return
	}
	m := face.Metrics()
	adv := fixedToFloat(font.MeasureString(face, s))
	baseline := cy + (fixedToFloat(m.Ascent)-fixedToFloat(m.Descent))/2

	d := font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(c.NRGBA()),
		Face: face,
		Dot: fixed.Point26_6{
			X: floatToFixed(cx - adv/2),
			Y: floatToFixed(baseline),
		},
	}
	d.DrawString(s)
}

func (r *Raster) fill(path *Path, p Paint) {
	w, h := r.Size()
	if w <= 0 || h <= 0 || path.Empty() || p == nil {
		return
	}
	box := r.clip(path)
	if box.Empty() {
		return
	}

	var src image.Image
	if c, ok := p.(Color); ok {
		if c.A == 0 {
			return
		}
		src = image.NewUniform(c.NRGBA())
	} else {
		src = paintImage{p: p}
	}

	// The rasterizer covers only the shape's box; its origin is box.Min.
	r.z.Reset(box.Dx(), box.Dy())
	path.ReplayAt(r.z, -float64(box.Min.X), -float64(box.Min.Y))
	r.z.Draw(r.img, box, src, box.Min)
}

// clip returns the pixels path can touch, one pixel wider on each side for
// antialiasing, limited to the image.
func (r *Raster) clip(path *Path) image.Rectangle {
	minX, minY, maxX, maxY, ok := path.Bounds()
	if !ok {
		return image.Rectangle{}
	}
	box := image.Rect(
		int(math.Floor(minX))-1, int(math.Floor(minY))-1,
		int(math.Ceil(maxX))+1, int(math.Ceil(maxY))+1,
	)
	return box.Intersect(r.img.Bounds())
}

// paintImage adapts a Paint to an image.Image sampled at pixel centers.
type paintImage struct {
	p Paint
}

func (pi paintImage) ColorModel() color.Model { return color.NRGBAModel }

func (pi paintImage) Bounds() image.Rectangle {
	return image.Rect(-1e9, -1e9, 1e9, 1e9)
}

func (pi paintImage) At(x, y int) color.Color {
	return pi.p.ColorAt(float64(x)+0.5, float64(y)+0.5).NRGBA()
}

func fixedToFloat(v fixed.Int26_6) float64 { return float64(v) / 64 }

func floatToFixed(v float64) fixed.Int26_6 { return fixed.Int26_6(v * 64) }
