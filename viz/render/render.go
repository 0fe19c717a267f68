// Package render draws one frame of the skill sphere onto a canvas.Surface.
//
// Draw order is fixed: clear, edges (each followed by its pulse), then node
// chips in index order. The hovered chip is not raised above the others.
package render

import (
	"math"

	"skillnet/viz/canvas"
	"skillnet/viz/graph"
	"skillnet/viz/project"
)

// Frame is everything needed to draw one frame. Renderer never modifies it.
type Frame struct {
	Labels    []string
	Positions []project.Position
	Edges     []graph.Edge
	Hover     int // node index, or -1
	T         float64
	Motion    bool // draw edge pulses
}

// Renderer draws frames with a fixed Style.
type Renderer struct {
	style Style
}

func New(style Style) *Renderer {
	return &Renderer{style: style}
}

func (r *Renderer) Style() Style { return r.style }

// Draw renders f onto s. A nil or zero-sized surface is left untouched.
func (r *Renderer) Draw(s canvas.Surface, f Frame) {
	if s == nil {
		return
	}
	if w, h := s.Size(); w <= 0 || h <= 0 {
		return
	}
	st := &r.style
	s.Clear(st.Background)

	n := len(f.Positions)
	for i, e := range f.Edges {
		if e.A < 0 || e.B < 0 || e.A >= n || e.B >= n {
			continue
		}
		a, b := f.Positions[e.A], f.Positions[e.B]
		s.StrokeLine(a.X, a.Y, b.X, b.Y, st.EdgeWidth, canvas.Linear(a.X, a.Y, b.X, b.Y, st.EdgeFrom, st.EdgeTo))

		if f.Motion {
			p := r.PulsePhase(f.T, i)
			px := a.X + (b.X-a.X)*p
			py := a.Y + (b.Y-a.Y)*p
			s.FillCircle(px, py, st.PulseRadius, canvas.RadialGradient{
				CX: px, CY: py, R1: st.PulseReach, Stops: st.PulseStops,
			})
		}
	}

	for i, p := range f.Positions {
		label := ""
		if i < len(f.Labels) {
			label = f.Labels[i]
		}
		r.drawChip(s, p, label, i == f.Hover)
	}
}

func (r *Renderer) drawChip(s canvas.Surface, p project.Position, label string, hovered bool) {
	st := &r.style
	cs := st.Node
	if hovered {
		cs = st.Hovered
	}

	size := r.FontSize(p.Depth, hovered)
	tw := s.MeasureText(label, size)
	w := tw + cs.PadX*2
	h := cs.Height
	x := p.X - w/2
	y := p.Y - h/2

	s.FillCircle(p.X, p.Y, cs.GlowRadius, canvas.Radial(p.X, p.Y, cs.GlowReach,
		canvas.Stop{Offset: 0, Color: cs.GlowColor},
		canvas.Stop{Offset: 1, Color: st.GlowFade},
	))
	s.FillRoundRect(x, y, w, h, cs.Corner, canvas.Linear(x, y, x+w, y+h, st.ChipFrom, st.ChipTo))
	s.StrokeRoundRect(x, y, w, h, cs.Corner, cs.BorderWidth, cs.Border)
	s.FillText(label, p.X, p.Y+1, size, cs.Text)
}

// PulsePhase returns where along edge i the pulse sits at time t, in [0, 1].
// The pulse runs a→b then back, offset per edge so pulses do not move in
// lockstep.
func (r *Renderer) PulsePhase(t float64, i int) float64 {
	phase := math.Mod(t*r.style.PulseSpeed+float64(i)*r.style.PulseStagger, 2)
	if phase < 0 {
		phase += 2
	}
	if phase <= 1 {
		return phase
	}
	return 2 - phase
}

// FontScale maps a node's perspective depth to a font multiplier.
func (r *Renderer) FontScale(depth float64) float64 {
	return project.Clamp(depth*r.style.FontScaleFactor, r.style.FontScaleMin, r.style.FontScaleMax)
}

// FontSize is the label pixel size for a node, rounded to a tenth of a pixel.
func (r *Renderer) FontSize(depth float64, hovered bool) float64 {
	base := r.style.Node.FontSize
	if hovered {
		base = r.style.Hovered.FontSize
	}
	return math.Round(base*r.FontScale(depth)*10) / 10
}
