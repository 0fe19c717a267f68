package app

import (
	"context"
	"image"
	"runtime"

	"golang.org/x/sync/errgroup"

	"skillnet/hal"
	"skillnet/internal/buildinfo"
	"skillnet/internal/config"
	"skillnet/viz/canvas"
	"skillnet/viz/hud"
	"skillnet/viz/loop"
	"skillnet/viz/render"
	"skillnet/viz/scene"
)

// SnapshotOptions describe a single rendered frame.
type SnapshotOptions struct {
	Options
	T       float64 // ms since the first animated frame
	Width   int
	Height  int
	Pointer *image.Point
}

// Snapshot renders one frame at opts.T into a new image. With reduced
// motion the frame is the static t=0 frame whatever T is.
func Snapshot(cfg *config.Config, opts SnapshotOptions) (*image.RGBA, error) {
	style, err := cfg.RenderStyle()
	if err != nil {
		return nil, err
	}
	sc, _, err := BuildScene(cfg, opts.Seed)
	if err != nil {
		return nil, err
	}
	return renderFrame(sc, style, cfg, opts)
}

// SequenceOptions describe evenly spaced frames of one scene.
type SequenceOptions struct {
	SnapshotOptions
	Count    int
	Interval float64 // ms between frames
	Workers  int     // 0 = GOMAXPROCS
}

// RenderSequence renders opts.Count frames starting at opts.T and hands each
// to write, possibly from several goroutines at once. The scene is built
// once and shared by every worker.
func RenderSequence(ctx context.Context, cfg *config.Config, opts SequenceOptions, write func(i int, img *image.RGBA) error) error {
	style, err := cfg.RenderStyle()
	if err != nil {
		return err
	}
	sc, _, err := BuildScene(cfg, opts.Seed)
	if err != nil {
		return err
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < opts.Count; i++ {
		i := i
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fo := opts.SnapshotOptions
			fo.T = opts.T + float64(i)*opts.Interval
			img, err := renderFrame(sc, style, cfg, fo)
			if err != nil {
				return err
			}
			return write(i, img)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// renderFrame drives a private loop on a manual frame queue. Fonts are
// loaded per call since font faces must not be shared between goroutines.
func renderFrame(sc *scene.Scene, style render.Style, cfg *config.Config, opts SnapshotOptions) (*image.RGBA, error) {
	fonts, err := canvas.DefaultFonts()
	if err != nil {
		return nil, err
	}

	w := max(opts.Width, hal.MinWidth)
	h := max(opts.Height, hal.MinHeight)
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	frames := hal.NewFrameQueue()
	l := loop.New(sc, render.New(style), loop.Options{
		ReducedMotion: cfg.Motion.Reduced || opts.ReducedMotion,
		Scheduler:     frames,
	})
	drawAt(l, frames, canvas.NewRaster(img, fonts), opts)

	if cfg.HUD.Enabled || opts.HUD {
		st := l.Stats()
		label := ""
		if st.Hover >= 0 {
			label = sc.Nodes[st.Hover].Label
		}
		hud.New().Draw(img, image.Pt(8, 8), hud.Lines(buildinfo.Short(), st, label))
	}
	return img, nil
}

// drawAt leaves exactly one frame on surf: the one at opts.T. The animated
// timeline starts at the first fired frame, so the loop is started and fired
// at 0 with no surface attached; those frames are counted as skipped.
func drawAt(l *loop.Loop, frames *hal.FrameQueue, surf canvas.Surface, opts SnapshotOptions) {
	if opts.Pointer != nil {
		l.PointerMove(float64(opts.Pointer.X), float64(opts.Pointer.Y))
	}
	if l.Mode() != loop.Animating || opts.T <= 0 {
		l.Attach(surf)
		l.Start()
		l.Stop()
		return
	}
	l.Start()
	frames.Fire(0)
	l.Attach(surf)
	frames.Fire(opts.T)
	l.Stop()
}
