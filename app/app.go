package app

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"skillnet/hal"
	"skillnet/internal/buildinfo"
	"skillnet/internal/config"
	"skillnet/viz/hud"
	"skillnet/viz/loop"
	"skillnet/viz/render"
	"skillnet/viz/scene"
)

// Options are run-time switches layered over the config file.
type Options struct {
	ReducedMotion bool
	HUD           bool
	Seed          int64 // 0 = use config, then the clock
}

type session struct {
	id  string
	h   hal.HAL
	log hal.Logger

	scene *scene.Scene
	loop  *loop.Loop

	hud      *hud.HUD
	showHUD  bool
	hudLines []string
}

// New builds a session with the default configuration.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, config.Default(), Options{})
}

// NewWithConfig builds the scene, starts the loop on h and returns the
// per-tick step. A construction error is reported by the first step.
func NewWithConfig(h hal.HAL, cfg *config.Config, opts Options) func() error {
	s, err := newSession(h, cfg, opts)
	if err != nil {
		if l := h.Logger(); l != nil {
			l.WriteLineString("skillnet: " + err.Error())
		}
		return func() error { return err }
	}
	return func() error {
		return guard(s.log, s.step)
	}
}

// BuildScene lays out and connects the configured labels.
func BuildScene(cfg *config.Config, seed int64) (*scene.Scene, int64, error) {
	if seed == 0 {
		seed = cfg.Scene.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sc, err := scene.New(cfg.Labels, rand.New(rand.NewSource(seed)), scene.Options{Radius: cfg.Scene.Radius})
	if err != nil {
		return nil, seed, fmt.Errorf("build scene: %w", err)
	}
	return sc, seed, nil
}

func newSession(h hal.HAL, cfg *config.Config, opts Options) (*session, error) {
	if h == nil || h.Display() == nil {
		return nil, errors.New("app: no display")
	}
	style, err := cfg.RenderStyle()
	if err != nil {
		return nil, err
	}
	sc, seed, err := BuildScene(cfg, opts.Seed)
	if err != nil {
		return nil, err
	}

	lopts := loop.Options{ReducedMotion: cfg.Motion.Reduced || opts.ReducedMotion}
	if f := h.Frames(); f != nil {
		lopts.Scheduler = f
	}
	l := loop.New(sc, render.New(style), lopts)
	l.Attach(h.Display().Surface())

	s := &session{
		id:      uuid.NewString(),
		h:       h,
		log:     h.Logger(),
		scene:   sc,
		loop:    l,
		hud:     hud.New(),
		showHUD: cfg.HUD.Enabled || opts.HUD,
	}
	s.logf("session %s", s.id)
	s.logf("skillnet %s: %d nodes, %d edges, %d active, seed %d",
		buildinfo.Short(), sc.Len(), len(sc.Graph.Edges), sc.Graph.ActiveCount(), seed)
	s.logf("mode: %s", l.Mode())

	l.Start()
	s.updateHUD()
	return s, nil
}

func (s *session) step() error {
	in := s.h.Input()
	if in != nil {
		if err := s.drainKeys(in.Keyboard()); err != nil {
			return err
		}
		s.drainPointer(in.Pointer())
	}
	s.drainResizes()
	s.updateHUD()
	return nil
}

func (s *session) drainPointer(p hal.Pointer) {
	if p == nil {
		return
	}
	for {
		select {
		case ev := <-p.Events():
			switch ev.Kind {
			case hal.PointerMove:
				s.loop.PointerMove(ev.X, ev.Y)
			case hal.PointerLeave:
				s.loop.PointerLeave()
			}
		default:
			return
		}
	}
}

func (s *session) drainKeys(k hal.Keyboard) error {
	if k == nil {
		return nil
	}
	for {
		select {
		case ev := <-k.Events():
			switch ev.Code {
			case hal.KeyEscape:
				return hal.ErrQuit
			case hal.KeySpace:
				s.togglePause()
			case hal.KeyH:
				s.showHUD = !s.showHUD
			case hal.KeyR:
				s.loop.Refresh()
			}
		default:
			return nil
		}
	}
}

func (s *session) drainResizes() {
	for {
		select {
		case sz := <-s.h.Display().Resizes():
			s.loop.Resize(sz.X, sz.Y)
			if !s.loop.Running() {
				// Paused: keep the frozen frame on the new surface.
				s.loop.Refresh()
			}
		default:
			return
		}
	}
}

func (s *session) togglePause() {
	if s.loop.Mode() != loop.Animating {
		return
	}
	if s.loop.Running() {
		s.loop.Stop()
		s.logf("paused")
		return
	}
	s.loop.Start()
	s.logf("resumed")
}

func (s *session) updateHUD() {
	disp := s.h.Display()
	if !s.showHUD {
		if s.hudLines != nil {
			disp.SetOverlay(nil)
			s.hudLines = nil
		}
		return
	}
	st := s.loop.Stats()
	label := ""
	if st.Hover >= 0 && st.Hover < s.scene.Len() {
		label = s.scene.Nodes[st.Hover].Label
	}
	lines := hud.Lines(buildinfo.Short(), st, label)
	if equalLines(lines, s.hudLines) {
		return
	}
	s.hudLines = lines
	disp.SetOverlay(s.hud.Image(lines))
}

func (s *session) logf(format string, args ...any) {
	if s.log == nil {
		return
	}
	s.log.WriteLineString(fmt.Sprintf(format, args...))
}

func equalLines(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	return strings.Join(a, "\n") == strings.Join(b, "\n")
}
