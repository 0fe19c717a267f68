package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

type hostHAL struct {
	logger *hostLogger
	disp   Display
	ptr    *hostPointer
	kbd    *hostKeyboard
	frames *FrameQueue
	t      *hostTime
}

func newHost(disp Display, t *hostTime) *hostHAL {
	return &hostHAL{
		logger: &hostLogger{w: os.Stdout},
		disp:   disp,
		ptr:    newHostPointer(),
		kbd:    newHostKeyboard(),
		frames: NewFrameQueue(),
		t:      t,
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return h.disp }
func (h *hostHAL) Input() Input     { return hostInput{ptr: h.ptr, kbd: h.kbd} }
func (h *hostHAL) Frames() Frames   { return h.frames }
func (h *hostHAL) Time() Time       { return h.t }

// tick advances one host frame: the app step consumes input, then the
// frames requested so far fire with the current time.
func (h *hostHAL) tick(step func() error) error {
	if step != nil {
		if err := step(); err != nil {
			return err
		}
	}
	h.frames.Fire(h.t.Now())
	return nil
}

type hostInput struct {
	ptr *hostPointer
	kbd *hostKeyboard
}

func (in hostInput) Pointer() Pointer   { return in.ptr }
func (in hostInput) Keyboard() Keyboard { return in.kbd }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

// NewLogger returns a Logger writing lines to w.
func NewLogger(w io.Writer) Logger {
	return &hostLogger{w: w}
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

type hostPointer struct {
	ch chan PointerEvent

	x, y   int
	inside bool
}

func newHostPointer() *hostPointer {
	return &hostPointer{ch: make(chan PointerEvent, 64)}
}

func (p *hostPointer) Events() <-chan PointerEvent { return p.ch }

func (p *hostPointer) emit(ev PointerEvent) {
	select {
	case p.ch <- ev:
	default:
	}
}

// update turns a polled cursor state into move/leave events.
func (p *hostPointer) update(x, y int, inside bool) {
	switch {
	case inside && (!p.inside || x != p.x || y != p.y):
		p.emit(PointerEvent{Kind: PointerMove, X: float64(x), Y: float64(y)})
	case !inside && p.inside:
		p.emit(PointerEvent{Kind: PointerLeave})
	}
	p.x, p.y, p.inside = x, y, inside
}

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *hostKeyboard) emit(code KeyCode) {
	select {
	case k.ch <- KeyEvent{Code: code}:
	default:
	}
}
