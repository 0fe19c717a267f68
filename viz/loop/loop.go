// Package loop drives a scene: it owns pointer state, resolves hover, and
// decides when frames are rendered.
//
// A Loop is single-threaded. The host must deliver frames, pointer and
// resize events from one goroutine.
package loop

import (
	"math"

	"skillnet/viz/canvas"
	"skillnet/viz/project"
	"skillnet/viz/render"
	"skillnet/viz/scene"
)

// DefaultHitRadius is how close (in pixels) the pointer must be to a node
// for it to count as hovered.
const DefaultHitRadius = 32

// Mode is the loop's rendering strategy, fixed at Start.
type Mode uint8

const (
	// Animating renders on every frame the scheduler fires.
	Animating Mode = iota
	// Static renders a single frame at t=0 and only re-renders on resize
	// or Refresh.
	Static
)

func (m Mode) String() string {
	switch m {
	case Animating:
		return "animating"
	case Static:
		return "static"
	default:
		return "unknown"
	}
}

// FrameFunc is called by a Scheduler with a monotonic timestamp in ms.
type FrameFunc = func(now float64)

// Scheduler is a continuous-frame facility. RequestFrame runs fn once, on
// the next frame.
type Scheduler interface {
	RequestFrame(fn FrameFunc)
}

type Options struct {
	// ReducedMotion forces Static mode.
	ReducedMotion bool
	// Scheduler delivers frames. Without one the loop is Static.
	Scheduler Scheduler
	// HitRadius overrides DefaultHitRadius when positive.
	HitRadius float64
}

// Stats is a snapshot of the loop's counters and state.
type Stats struct {
	Mode     Mode
	Running  bool
	Rendered uint64
	Skipped  uint64
	Hover    int
	T        float64
	Width    int
	Height   int
}

type pointer struct {
	x, y   float64
	inside bool
}

// Loop renders one Scene with one Renderer onto an attached Surface.
type Loop struct {
	scene  *scene.Scene
	labels []string
	r      *render.Renderer
	opts   Options

	surf canvas.Surface
	w, h int

	mode    Mode
	running bool
	gen     uint64
	started bool
	origin  float64
	t       float64

	ptr   pointer
	hover int
	pos   []project.Position

	rendered uint64
	skipped  uint64
}

func New(sc *scene.Scene, r *render.Renderer, opts Options) *Loop {
	if opts.HitRadius <= 0 {
		opts.HitRadius = DefaultHitRadius
	}
	mode := Animating
	if opts.ReducedMotion || opts.Scheduler == nil {
		mode = Static
	}
	l := &Loop{
		scene: sc,
		r:     r,
		opts:  opts,
		mode:  mode,
		hover: -1,
	}
	if sc != nil {
		l.labels = sc.Labels()
	}
	return l
}

// Attach sets the surface frames are drawn to. A nil surface makes every
// frame a skip until a real one is attached.
func (l *Loop) Attach(s canvas.Surface) { l.surf = s }

func (l *Loop) Mode() Mode { return l.mode }

// Hover returns the hovered node index, or -1.
func (l *Loop) Hover() int { return l.hover }

// Positions returns the projected positions of the last rendered frame.
// The slice is reused by the next frame.
func (l *Loop) Positions() []project.Position { return l.pos }

// Start renders the first frame at t=0 and, when Animating, requests the
// next one. Starting a running loop does nothing.
func (l *Loop) Start() {
	if l.running {
		return
	}
	l.running = true
	l.gen++
	l.started = false
	l.render(0)
	if l.mode == Animating {
		l.request()
	}
}

// Stop ends the loop. Frames already queued with the scheduler are ignored
// when they fire.
func (l *Loop) Stop() {
	if !l.running {
		return
	}
	l.running = false
	l.gen++
}

func (l *Loop) Running() bool { return l.running }

func (l *Loop) PointerMove(x, y float64) {
	l.ptr = pointer{x: x, y: y, inside: true}
}

func (l *Loop) PointerLeave() {
	l.ptr = pointer{}
}

// Resize records the surface size and, while the loop runs, immediately
// renders at t=0. A stopped loop only records the size; call Refresh to
// draw anyway.
func (l *Loop) Resize(w, h int) {
	l.w, l.h = w, h
	if !l.running {
		return
	}
	l.render(0)
}

// Refresh re-renders at the current time. A Static loop uses it to pick up
// hover changes or to recover a skipped first frame.
func (l *Loop) Refresh() {
	l.render(l.t)
}

func (l *Loop) Stats() Stats {
	w, h := l.size()
	return Stats{
		Mode:     l.mode,
		Running:  l.running,
		Rendered: l.rendered,
		Skipped:  l.skipped,
		Hover:    l.hover,
		T:        l.t,
		Width:    w,
		Height:   h,
	}
}

func (l *Loop) request() {
	gen := l.gen
	l.opts.Scheduler.RequestFrame(func(now float64) {
		l.frame(gen, now)
	})
}

func (l *Loop) frame(gen uint64, now float64) {
	if !l.running || gen != l.gen {
		return
	}
	if !l.started {
		l.started = true
		l.origin = now
	}
	l.render(now - l.origin)
	if l.running && gen == l.gen {
		l.request()
	}
}

func (l *Loop) size() (int, int) {
	if l.w > 0 && l.h > 0 {
		return l.w, l.h
	}
	if l.surf == nil {
		return 0, 0
	}
	return l.surf.Size()
}

func (l *Loop) render(t float64) {
	w, h := l.size()
	if l.surf == nil || l.scene == nil || w <= 0 || h <= 0 {
		l.skipped++
		return
	}
	if sw, sh := l.surf.Size(); sw <= 0 || sh <= 0 {
		l.skipped++
		return
	}
	l.t = t
	l.pos = l.scene.Project(t, w, h, l.pos)

	l.hover = -1
	if l.ptr.inside {
		l.hover = HitTest(l.pos, l.ptr.x, l.ptr.y, l.opts.HitRadius)
	}

	l.r.Draw(l.surf, render.Frame{
		Labels:    l.labels,
		Positions: l.pos,
		Edges:     l.scene.Graph.Edges,
		Hover:     l.hover,
		T:         t,
		Motion:    l.mode == Animating,
	})
	l.rendered++
}

// HitTest returns the index of the position nearest to (x, y) that is
// strictly closer than radius, or -1. Ties go to the lower index.
func HitTest(positions []project.Position, x, y, radius float64) int {
	best := -1
	bestD := math.Inf(1)
	for i, p := range positions {
		d := math.Hypot(p.X-x, p.Y-y)
		if d < bestD && d < radius {
			bestD = d
			best = i
		}
	}
	return best
}
