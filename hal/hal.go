package hal

import (
	"errors"
	"image"

	"skillnet/viz/canvas"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// ErrQuit is returned by an app step to end the host loop cleanly.
var ErrQuit = errors.New("quit")

// Display is the drawing target plus its size changes.
type Display interface {
	// Surface is where frames are drawn. Its size follows the latest resize.
	Surface() canvas.Surface
	// Resizes delivers the new surface size after each change.
	Resizes() <-chan image.Point
	// SetOverlay places img in the top-left corner above every frame.
	// A nil img removes it.
	SetOverlay(img *image.RGBA)
	// Snapshot copies the last presented frame.
	Snapshot() (*image.RGBA, error)
}

// PointerKind tells a move from a leave.
type PointerKind uint8

const (
	PointerMove PointerKind = iota + 1
	PointerLeave
)

// PointerEvent is a pointer update in surface coordinates.
type PointerEvent struct {
	Kind PointerKind
	X, Y float64
}

// Pointer provides pointer events (best-effort on each platform).
type Pointer interface {
	Events() <-chan PointerEvent
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyEscape
	KeySpace
	KeyH
	KeyR
)

// KeyEvent is a key press.
type KeyEvent struct {
	Code KeyCode
}

// Keyboard provides key press events.
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Input provides access to input devices (if available).
type Input interface {
	Pointer() Pointer
	Keyboard() Keyboard
}

// Frames is a continuous-frame facility: each requested callback runs once
// on the next host frame with a timestamp in ms.
type Frames interface {
	RequestFrame(fn func(now float64))
}

// Time is the host's monotonic clock in ms.
type Time interface {
	Now() float64
}

// HAL provides the only contact point between the visualization and the
// outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Frames() Frames
	Time() Time
}
