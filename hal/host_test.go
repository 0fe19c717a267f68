package hal

import (
	"bytes"
	"context"
	"errors"
	"image"
	"testing"
	"time"

	"skillnet/viz/canvas"
)

func TestPointerUpdateEmitsMoveAndLeave(t *testing.T) {
	p := newHostPointer()
	p.update(10, 20, true)
	p.update(10, 20, true) // unchanged, no event
	p.update(11, 20, true)
	p.update(11, 20, false)
	p.update(0, 0, false)

	want := []PointerEvent{
		{Kind: PointerMove, X: 10, Y: 20},
		{Kind: PointerMove, X: 11, Y: 20},
		{Kind: PointerLeave},
	}
	for i, w := range want {
		select {
		case ev := <-p.Events():
			if ev != w {
				t.Fatalf("event %d=%+v want %+v", i, ev, w)
			}
		default:
			t.Fatalf("missing event %d", i)
		}
	}
	select {
	case ev := <-p.Events():
		t.Fatalf("unexpected event %+v", ev)
	default:
	}
}

func TestFixedTimeAdvancesPerStep(t *testing.T) {
	c := newFixedTime(16 * time.Millisecond)
	c.step()
	c.step()
	if got := c.Now(); got != 32 {
		t.Fatalf("Now()=%v want 32", got)
	}
}

func TestLoggerWritesLines(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf)
	l.WriteLineString("one")
	l.WriteLineBytes([]byte("two"))
	if buf.String() != "one\ntwo\n" {
		t.Fatalf("log=%q", buf.String())
	}
}

func TestFramebufferSnapshotIsACopy(t *testing.T) {
	fb := newHostFramebuffer(4, 4)
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	src.Pix[0] = 200
	fb.present(src, nil)

	snap := fb.snapshot()
	if snap.Pix[0] != 200 {
		t.Fatalf("snapshot pixel=%d", snap.Pix[0])
	}
	snap.Pix[0] = 1
	if fb.snapshot().Pix[0] != 200 {
		t.Fatal("snapshot aliases the framebuffer")
	}
}

func TestRunHeadlessTicksAndPresents(t *testing.T) {
	var host HAL
	steps := 0
	fired := 0
	err := RunHeadless(context.Background(), func(h HAL) func() error {
		host = h
		return func() error {
			steps++
			h.Frames().RequestFrame(func(now float64) {
				fired++
				h.Display().Surface().Clear(canvas.RGB(9, 8, 7))
			})
			return nil
		}
	}, HeadlessConfig{Hz: 500, Ticks: 3, Width: 10, Height: 10})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if steps != 3 || fired != 3 {
		t.Fatalf("steps=%d fired=%d want 3", steps, fired)
	}
	img, err := host.Display().Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != MinWidth || b.Dy() != MinHeight {
		t.Fatalf("surface=%v want the minimum size", b)
	}
	if px := img.RGBAAt(0, 0); px.R != 9 || px.G != 8 || px.B != 7 {
		t.Fatalf("presented pixel=%+v", px)
	}
	if got := host.Time().Now(); got != 6 {
		t.Fatalf("clock=%vms want 6", got)
	}
}

func TestRunHeadlessQuitAndCancel(t *testing.T) {
	err := RunHeadless(context.Background(), func(h HAL) func() error {
		return func() error { return ErrQuit }
	}, HeadlessConfig{Hz: 500})
	if err != nil {
		t.Fatalf("quit err=%v want nil", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = RunHeadless(ctx, func(h HAL) func() error { return nil }, HeadlessConfig{Hz: 500})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("cancel err=%v", err)
	}
}

func TestRunHeadlessPointer(t *testing.T) {
	var got []PointerEvent
	err := RunHeadless(context.Background(), func(h HAL) func() error {
		return func() error {
			for {
				select {
				case ev := <-h.Input().Pointer().Events():
					got = append(got, ev)
				default:
					return nil
				}
			}
		}
	}, HeadlessConfig{Hz: 500, Ticks: 1, Pointer: &image.Point{X: 40, Y: 50}})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Kind != PointerMove || got[0].X != 40 || got[0].Y != 50 {
		t.Fatalf("events=%+v", got)
	}
}
