package canvas

import "math"

// PathSink receives path segments. golang.org/x/image/vector.Rasterizer
// satisfies it directly.
type PathSink interface {
	MoveTo(x, y float32)
	LineTo(x, y float32)
	CubeTo(x1, y1, x2, y2, x3, y3 float32)
	ClosePath()
}

type segKind uint8

const (
	segMove segKind = iota
	segLine
	segCube
	segClose
)

type seg struct {
	kind segKind
	pts  [6]float32
}

// Path is a recorded outline that can be replayed into any PathSink.
// All subpaths use the nonzero winding rule; a reversed subpath cuts a hole.
type Path struct {
	segs []seg
}

func (p *Path) MoveTo(x, y float64) {
	p.segs = append(p.segs, seg{kind: segMove, pts: [6]float32{float32(x), float32(y)}})
}

func (p *Path) LineTo(x, y float64) {
	p.segs = append(p.segs, seg{kind: segLine, pts: [6]float32{float32(x), float32(y)}})
}

func (p *Path) CubeTo(x1, y1, x2, y2, x3, y3 float64) {
	p.segs = append(p.segs, seg{kind: segCube, pts: [6]float32{
		float32(x1), float32(y1), float32(x2), float32(y2), float32(x3), float32(y3),
	}})
}

func (p *Path) Close() { p.segs = append(p.segs, seg{kind: segClose}) }

func (p *Path) Empty() bool { return len(p.segs) == 0 }

// Bounds returns the box around every recorded point, control points
// included. ok is false for a path without points.
func (p *Path) Bounds() (minX, minY, maxX, maxY float64, ok bool) {
	add := func(x, y float32) {
		fx, fy := float64(x), float64(y)
		if !ok {
			minX, minY, maxX, maxY, ok = fx, fy, fx, fy, true
			return
		}
		minX = math.Min(minX, fx)
		minY = math.Min(minY, fy)
		maxX = math.Max(maxX, fx)
		maxY = math.Max(maxY, fy)
	}
	for _, sg := range p.segs {
		switch sg.kind {
		case segMove, segLine:
			add(sg.pts[0], sg.pts[1])
		case segCube:
			add(sg.pts[0], sg.pts[1])
			add(sg.pts[2], sg.pts[3])
			add(sg.pts[4], sg.pts[5])
		}
	}
	return minX, minY, maxX, maxY, ok
}

// Replay feeds the recorded segments into s.
func (p *Path) Replay(s PathSink) {
	for _, sg := range p.segs {
		switch sg.kind {
		case segMove:
			s.MoveTo(sg.pts[0], sg.pts[1])
		case segLine:
			s.LineTo(sg.pts[0], sg.pts[1])
		case segCube:
			s.CubeTo(sg.pts[0], sg.pts[1], sg.pts[2], sg.pts[3], sg.pts[4], sg.pts[5])
		case segClose:
			s.ClosePath()
		}
	}
}

// offsetSink shifts every point by (dx, dy) before forwarding it.
type offsetSink struct {
	s      PathSink
	dx, dy float32
}

func (o offsetSink) MoveTo(x, y float32) { o.s.MoveTo(x+o.dx, y+o.dy) }
func (o offsetSink) LineTo(x, y float32) { o.s.LineTo(x+o.dx, y+o.dy) }
func (o offsetSink) ClosePath()          { o.s.ClosePath() }

func (o offsetSink) CubeTo(x1, y1, x2, y2, x3, y3 float32) {
	o.s.CubeTo(x1+o.dx, y1+o.dy, x2+o.dx, y2+o.dy, x3+o.dx, y3+o.dy)
}

// ReplayAt feeds the recorded segments into s translated by (dx, dy).
func (p *Path) ReplayAt(s PathSink, dx, dy float64) {
	p.Replay(offsetSink{s: s, dx: float32(dx), dy: float32(dy)})
}

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498

// LinePath outlines a butt-capped line of the given width.
func LinePath(x0, y0, x1, y1, width float64) *Path {
	p := &Path{}
	dx := x1 - x0
	dy := y1 - y0
	l := math.Hypot(dx, dy)
	if l == 0 || width <= 0 {
		return p
	}
	nx := -dy / l * width / 2
	ny := dx / l * width / 2
	p.MoveTo(x0+nx, y0+ny)
	p.LineTo(x1+nx, y1+ny)
	p.LineTo(x1-nx, y1-ny)
	p.LineTo(x0-nx, y0-ny)
	p.Close()
	return p
}

// CirclePath outlines a full circle.
func CirclePath(cx, cy, r float64) *Path {
	p := &Path{}
	if r <= 0 {
		return p
	}
	k := kappa * r
	p.MoveTo(cx+r, cy)
	p.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	p.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	p.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	p.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	p.Close()
	return p
}

// RoundRectPath outlines a rectangle with corner radius r, clamped to half
// the shorter side.
func RoundRectPath(x, y, w, h, r float64) *Path {
	p := &Path{}
	appendRoundRect(p, x, y, w, h, r, false)
	return p
}

// RoundRectRingPath outlines the band a centered stroke of the given width
// covers along a rounded rectangle.
func RoundRectRingPath(x, y, w, h, r, width float64) *Path {
	p := &Path{}
	if width <= 0 {
		return p
	}
	hw := width / 2
	appendRoundRect(p, x-hw, y-hw, w+width, h+width, r+hw, false)
	if w > width && h > width {
		appendRoundRect(p, x+hw, y+hw, w-width, h-width, math.Max(0, r-hw), true)
	}
	return p
}

func appendRoundRect(p *Path, x, y, w, h, r float64, reverse bool) {
	if w <= 0 || h <= 0 {
		return
	}
	r = math.Max(0, math.Min(r, math.Min(w, h)/2))
	k := kappa * r
	x1, y1 := x+w, y+h

	if !reverse {
		p.MoveTo(x+r, y)
		p.LineTo(x1-r, y)
		p.CubeTo(x1-r+k, y, x1, y+r-k, x1, y+r)
		p.LineTo(x1, y1-r)
		p.CubeTo(x1, y1-r+k, x1-r+k, y1, x1-r, y1)
		p.LineTo(x+r, y1)
		p.CubeTo(x+r-k, y1, x, y1-r+k, x, y1-r)
		p.LineTo(x, y+r)
		p.CubeTo(x, y+r-k, x+r-k, y, x+r, y)
		p.Close()
		return
	}

	p.MoveTo(x+r, y)
	p.CubeTo(x+r-k, y, x, y+r-k, x, y+r)
	p.LineTo(x, y1-r)
	p.CubeTo(x, y1-r+k, x+r-k, y1, x+r, y1)
	p.LineTo(x1-r, y1)
	p.CubeTo(x1-r+k, y1, x1, y1-r+k, x1, y1-r)
	p.LineTo(x1, y+r)
	p.CubeTo(x1, y+r-k, x1-r+k, y, x1-r, y)
	p.Close()
}
