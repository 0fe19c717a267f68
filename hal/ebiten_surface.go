//go:build cgo

package hal

import (
	"bytes"
	"fmt"
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gomedium"

	"skillnet/viz/canvas"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(canvas.RGB(0xff, 0xff, 0xff))
}

// Disc tessellation for gradient fills: rings × segments.
const (
	discRings    = 12
	discSegments = 48
)

func newTextSource() (*text.GoTextFaceSource, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomedium.TTF))
	if err != nil {
		return nil, fmt.Errorf("load window font: %w", err)
	}
	return src, nil
}

// ebitenSurface implements canvas.Surface on an *ebiten.Image. Paths are
// tessellated with ebiten/vector and colored per vertex from the Paint.
type ebitenSurface struct {
	img   *ebiten.Image
	src   *text.GoTextFaceSource
	faces map[float64]*text.GoTextFace

	vs []ebiten.Vertex
	is []uint16
}

func newEbitenSurface(img *ebiten.Image, src *text.GoTextFaceSource) *ebitenSurface {
	return &ebitenSurface{img: img, src: src, faces: make(map[float64]*text.GoTextFace)}
}

func (s *ebitenSurface) reset(img *ebiten.Image) { s.img = img }

func (s *ebitenSurface) Size() (int, int) {
	if s.img == nil {
		return 0, 0
	}
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *ebitenSurface) Clear(c canvas.Color) {
	if s.img == nil {
		return
	}
	s.img.Fill(c)
}

func (s *ebitenSurface) StrokeLine(x0, y0, x1, y1, width float64, p canvas.Paint) {
	s.fillPath(canvas.LinePath(x0, y0, x1, y1, width), p)
}

func (s *ebitenSurface) FillCircle(cx, cy, r float64, p canvas.Paint) {
	if s.img == nil || r <= 0 || p == nil {
		return
	}
	if c, ok := p.(canvas.Color); ok {
		if c.A == 0 {
			return
		}
		s.fillPath(canvas.CirclePath(cx, cy, r), c)
		return
	}
	s.fillDisc(cx, cy, r, p)
}

func (s *ebitenSurface) FillRoundRect(x, y, w, h, r float64, p canvas.Paint) {
	s.fillPath(canvas.RoundRectPath(x, y, w, h, r), p)
}

func (s *ebitenSurface) StrokeRoundRect(x, y, w, h, r, width float64, p canvas.Paint) {
	s.fillPath(canvas.RoundRectRingPath(x, y, w, h, r, width), p)
}

func (s *ebitenSurface) MeasureText(str string, size float64) float64 {
	face := s.face(size)
	if face == nil {
		return 0
	}
	w, _ := text.Measure(str, face, 0)
	return w
}

func (s *ebitenSurface) FillText(str string, cx, cy, size float64, c canvas.Color) {
	face := s.face(size)
	if s.img == nil || face == nil || str == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(s.img, str, face, op)
}

func (s *ebitenSurface) face(size float64) *text.GoTextFace {
	if s.src == nil || !(size > 0) {
		return nil
	}
	key := math.Round(size*10) / 10
	if f, ok := s.faces[key]; ok {
		return f
	}
	f := &text.GoTextFace{Source: s.src, Size: key}
	s.faces[key] = f
	return f
}

// fillPath fills a nonzero-winding outline. Vertex colors come from the
// paint, which is exact for solid colors and linear gradients.
func (s *ebitenSurface) fillPath(p *canvas.Path, paint canvas.Paint) {
	if s.img == nil || p.Empty() || paint == nil {
		return
	}
	var vp vector.Path
	p.Replay(pathSink{&vp})
	s.vs, s.is = vp.AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])
	for i := range s.vs {
		s.colorVertex(&s.vs[i], paint)
	}
	s.img.DrawTriangles(s.vs, s.is, whiteSubImage, &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
		FillRule:       ebiten.NonZero,
		AntiAlias:      true,
	})
}

// fillDisc fills a circle with a center-out mesh so radial gradients are
// sampled inside the disc and not only on its rim.
func (s *ebitenSurface) fillDisc(cx, cy, r float64, paint canvas.Paint) {
	s.vs = s.vs[:0]
	s.is = s.is[:0]
	s.vs = append(s.vs, ebiten.Vertex{DstX: float32(cx), DstY: float32(cy)})
	for ring := 1; ring <= discRings; ring++ {
		rr := r * float64(ring) / discRings
		for seg := 0; seg < discSegments; seg++ {
			a := 2 * math.Pi * float64(seg) / discSegments
			s.vs = append(s.vs, ebiten.Vertex{
				DstX: float32(cx + rr*math.Cos(a)),
				DstY: float32(cy + rr*math.Sin(a)),
			})
		}
	}
	for i := range s.vs {
		s.colorVertex(&s.vs[i], paint)
	}

	ringStart := func(ring int) uint16 { return uint16(1 + (ring-1)*discSegments) }
	for seg := 0; seg < discSegments; seg++ {
		next := (seg + 1) % discSegments
		first := ringStart(1)
		s.is = append(s.is, 0, first+uint16(seg), first+uint16(next))
	}
	for ring := 2; ring <= discRings; ring++ {
		in, out := ringStart(ring-1), ringStart(ring)
		for seg := 0; seg < discSegments; seg++ {
			next := (seg + 1) % discSegments
			a, b := in+uint16(seg), in+uint16(next)
			c, d := out+uint16(seg), out+uint16(next)
			s.is = append(s.is, a, c, d, a, d, b)
		}
	}
	s.img.DrawTriangles(s.vs, s.is, whiteSubImage, &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
		AntiAlias:      true,
	})
}

func (s *ebitenSurface) colorVertex(v *ebiten.Vertex, paint canvas.Paint) {
	r, g, b, a := premul(paint.ColorAt(float64(v.DstX), float64(v.DstY)))
	v.SrcX, v.SrcY = 1, 1
	v.ColorR, v.ColorG, v.ColorB, v.ColorA = r, g, b, a
}

// pathSink adapts vector.Path to canvas.PathSink.
type pathSink struct {
	p *vector.Path
}

func (s pathSink) MoveTo(x, y float32) { s.p.MoveTo(x, y) }
func (s pathSink) LineTo(x, y float32) { s.p.LineTo(x, y) }
func (s pathSink) ClosePath()          { s.p.Close() }

func (s pathSink) CubeTo(x1, y1, x2, y2, x3, y3 float32) {
	s.p.CubicTo(x1, y1, x2, y2, x3, y3)
}
