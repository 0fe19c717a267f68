package canvas

import "math"

// Paint gives the color of a fill at a surface point.
type Paint interface {
	ColorAt(x, y float64) Color
}

// ColorAt makes a solid Color usable as a Paint.
func (c Color) ColorAt(x, y float64) Color { return c }

// Stop is a gradient color stop; Offset is in [0, 1].
type Stop struct {
	Offset float64
	Color  Color
}

// LinearGradient varies along the segment (X0,Y0)→(X1,Y1).
type LinearGradient struct {
	X0, Y0, X1, Y1 float64
	Stops          []Stop
}

func (g LinearGradient) ColorAt(x, y float64) Color {
	dx := g.X1 - g.X0
	dy := g.Y1 - g.Y0
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		// A degenerate gradient paints nothing.
		return Color{}
	}
	t := ((x-g.X0)*dx + (y-g.Y0)*dy) / l2
	return sampleStops(g.Stops, t)
}

// RadialGradient varies with the distance from (CX,CY) between radii R0 and R1.
type RadialGradient struct {
	CX, CY float64
	R0, R1 float64
	Stops  []Stop
}

func (g RadialGradient) ColorAt(x, y float64) Color {
	span := g.R1 - g.R0
	if span <= 0 {
		return Color{}
	}
	d := math.Hypot(x-g.CX, y-g.CY)
	return sampleStops(g.Stops, (d-g.R0)/span)
}

// Linear is a two-stop linear gradient.
func Linear(x0, y0, x1, y1 float64, from, to Color) LinearGradient {
	return LinearGradient{X0: x0, Y0: y0, X1: x1, Y1: y1, Stops: []Stop{{0, from}, {1, to}}}
}

// Radial is a radial gradient from the center out to r.
func Radial(cx, cy, r float64, stops ...Stop) RadialGradient {
	return RadialGradient{CX: cx, CY: cy, R1: r, Stops: stops}
}

// sampleStops interpolates in premultiplied space so fading to a transparent
// stop does not bleed that stop's color.
func sampleStops(stops []Stop, t float64) Color {
	switch len(stops) {
	case 0:
		return Color{}
	case 1:
		return stops[0].Color
	}
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Offset {
		return last.Color
	}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if t > b.Offset {
			continue
		}
		span := b.Offset - a.Offset
		if span <= 0 {
			return b.Color
		}
		return lerpPremul(a.Color, b.Color, (t-a.Offset)/span)
	}
	return last.Color
}

func lerpPremul(a, b Color, t float64) Color {
	aa := float64(a.A) / 255
	ba := float64(b.A) / 255
	alpha := aa + (ba-aa)*t
	if alpha <= 0 {
		return Color{}
	}
	ch := func(x, y uint8) uint8 {
		v := (float64(x)*aa + (float64(y)*ba-float64(x)*aa)*t) / alpha
		if v > 255 {
			v = 255
		}
		return uint8(v + 0.5)
	}
	return Color{R: ch(a.R, b.R), G: ch(a.G, b.G), B: ch(a.B, b.B), A: uint8(alpha*255 + 0.5)}
}
