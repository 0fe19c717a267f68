package hud

import (
	"image"
	"strings"
	"testing"

	"skillnet/viz/loop"
)

func TestLines(t *testing.T) {
	st := loop.Stats{Mode: loop.Animating, Rendered: 10, Skipped: 1, Hover: 3, T: 2500, Width: 280, Height: 260}
	lines := Lines("v1.0.0", st, "React")
	if len(lines) != 4 {
		t.Fatalf("lines=%q", lines)
	}
	if !strings.Contains(lines[1], "animating") || !strings.Contains(lines[1], "280x260") {
		t.Fatalf("state line=%q", lines[1])
	}
	if lines[3] != "hover React" {
		t.Fatalf("hover line=%q", lines[3])
	}

	st.Hover = -1
	if got := Lines("dev", st, "React"); len(got) != 3 {
		t.Fatalf("no hover lines=%q", got)
	}
}

func TestImageDrawsText(t *testing.T) {
	h := New()
	img := h.Image([]string{"frames 12"})
	b := img.Bounds()
	if b.Dx() <= 2*pad || b.Dy() <= 2*pad {
		t.Fatalf("panel bounds=%v", b)
	}
	lit := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) == h.fg {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Fatal("no text pixels written")
	}
}

func TestDrawComposites(t *testing.T) {
	h := New()
	dst := image.NewRGBA(image.Rect(0, 0, 200, 100))
	h.Draw(dst, image.Pt(10, 10), []string{"skillnet"})
	if dst.RGBAAt(5, 5).A != 0 {
		t.Fatal("pixel outside panel touched")
	}
	if dst.RGBAAt(11, 11).A == 0 {
		t.Fatal("panel not drawn")
	}
	h.Draw(dst, image.Pt(0, 0), nil)
	if got := h.Bounds(nil); !got.Empty() {
		t.Fatalf("empty bounds=%v", got)
	}
}

func TestBoundsFollowWidestLine(t *testing.T) {
	h := New()
	if b := h.Bounds(nil); !b.Empty() {
		t.Fatalf("empty bounds=%v", b)
	}
	one := h.Bounds([]string{"ab"})
	wide := h.Bounds([]string{"ab", "abcdefgh"})
	if wide.Dx() <= one.Dx() {
		t.Fatalf("width %d not wider than %d", wide.Dx(), one.Dx())
	}
	if wide.Dy()-2*pad != 2*(one.Dy()-2*pad) {
		t.Fatalf("heights one=%d two=%d", one.Dy(), wide.Dy())
	}
}
