package project

import (
	"math/rand"

	"skillnet/viz/sphere"
)

// Params are the fixed projection constants.
type Params struct {
	RotX  float64 // radians per ms about X
	RotY  float64 // radians per ms about Y
	Focal float64
	ZBias float64
	Scale float64

	YOffset     float64
	JitterRange float64 // jitter is drawn from [-JitterRange/2, JitterRange/2)
	JitterScale float64

	MarginX float64
	MarginY float64
}

// DefaultParams returns the constants the visualization is tuned for.
func DefaultParams() Params {
	return Params{
		RotX:        0.00025,
		RotY:        0.00035,
		Focal:       1.25,
		ZBias:       1.6,
		Scale:       1.02,
		YOffset:     0.03,
		JitterRange: 0.25,
		JitterScale: 0.045,
		MarginX:     54,
		MarginY:     46,
	}
}

// Position is a projected node in surface space.
type Position struct {
	X, Y float64
	// Depth is the perspective factor; larger is closer to the camera.
	Depth float64
}

// Float64er is a source of uniform values in [0, 1). *rand.Rand satisfies it.
type Float64er interface {
	Float64() float64
}

type globalFloat64 struct{}

func (globalFloat64) Float64() float64 { return rand.Float64() }

// Projector holds the projection constants and per-node jitter.
//
// It is immutable after New and safe to share between loops.
type Projector struct {
	p      Params
	jitter []float64
}

// New draws the z-jitter for n nodes. A nil rng uses the math/rand global source.
func New(n int, rng Float64er, p Params) *Projector {
	if r, ok := rng.(*rand.Rand); rng == nil || (ok && r == nil) {
		rng = globalFloat64{}
	}
	j := make([]float64, n)
	for i := range j {
		j[i] = (rng.Float64() - 0.5) * p.JitterRange
	}
	return &Projector{p: p, jitter: j}
}

// NewWithJitter builds a projector from explicit jitter values.
func NewWithJitter(jitter []float64, p Params) *Projector {
	return &Projector{p: p, jitter: append([]float64(nil), jitter...)}
}

func (pr *Projector) Params() Params { return pr.p }

// Jitter returns the z-jitter of node i.
func (pr *Projector) Jitter(i int) float64 {
	if i < 0 || i >= len(pr.jitter) {
		return 0
	}
	return pr.jitter[i]
}

// Project maps nodes at time t (ms) onto a w×h surface. It reuses dst when it
// has enough capacity.
func (pr *Projector) Project(nodes []sphere.Node, t float64, w, h int, dst []Position) []Position {
	if cap(dst) < len(nodes) {
		dst = make([]Position, len(nodes))
	}
	dst = dst[:len(nodes)]

	p := pr.p
	ry := Rotate(t * p.RotY)
	rx := Rotate(t * p.RotX)
	fw := float64(w)
	fh := float64(h)

	for i, n := range nodes {
		v := V3(n.X, n.Y+p.YOffset, n.Z+pr.Jitter(i)*p.JitterScale).Mul(p.Scale)
		v = RotateX(RotateY(v, ry), rx)

		persp := p.Focal / (v.Z + p.ZBias)
		dst[i] = Position{
			X:     Clamp((v.X*persp+0.5)*fw, p.MarginX, fw-p.MarginX),
			Y:     Clamp((v.Y*persp+0.5)*fh, p.MarginY, fh-p.MarginY),
			Depth: persp,
		}
	}
	return dst
}
