package project

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"skillnet/viz/sphere"
)

func nodes(t *testing.T, n int) []sphere.Node {
	t.Helper()
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("n%d", i)
	}
	out, err := sphere.Layout(labels, 0.56)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	return out
}

func TestProjectPure(t *testing.T) {
	ns := nodes(t, 29)
	pr := New(len(ns), rand.New(rand.NewSource(3)), DefaultParams())
	for _, tm := range []float64{0, 16.7, 1234.5, 1e7} {
		a := pr.Project(ns, tm, 280, 260, nil)
		b := pr.Project(ns, tm, 280, 260, nil)
		for i := range a {
			if math.Float64bits(a[i].X) != math.Float64bits(b[i].X) ||
				math.Float64bits(a[i].Y) != math.Float64bits(b[i].Y) ||
				math.Float64bits(a[i].Depth) != math.Float64bits(b[i].Depth) {
				t.Fatalf("t=%v node %d not reproducible: %+v vs %+v", tm, i, a[i], b[i])
			}
		}
	}
}

func TestProjectWithinMargins(t *testing.T) {
	ns := nodes(t, 29)
	pr := New(len(ns), rand.New(rand.NewSource(9)), DefaultParams())
	sizes := [][2]int{{280, 260}, {640, 480}, {1920, 1080}}
	var buf []Position
	for _, sz := range sizes {
		w, h := sz[0], sz[1]
		for tm := 0.0; tm < 60000; tm += 777 {
			buf = pr.Project(ns, tm, w, h, buf)
			for i, p := range buf {
				if p.X < 54 || p.X > float64(w)-54 || p.Y < 46 || p.Y > float64(h)-46 {
					t.Fatalf("%dx%d t=%v node %d out of bounds: %+v", w, h, tm, i, p)
				}
				if p.Depth <= 0 {
					t.Fatalf("node %d non-positive depth %v", i, p.Depth)
				}
			}
		}
	}
}

func TestProjectEndToEndAtZero(t *testing.T) {
	ns := nodes(t, 29)
	pr := New(len(ns), nil, DefaultParams())
	pos := pr.Project(ns, 0, 280, 260, nil)
	if len(pos) != 29 {
		t.Fatalf("got %d positions", len(pos))
	}
	for i, p := range pos {
		if p.X < 54 || p.X > 226 || p.Y < 46 || p.Y > 214 {
			t.Fatalf("node %d out of [54,226]x[46,214]: %+v", i, p)
		}
	}
}

func TestProjectCenterNode(t *testing.T) {
	ns := []sphere.Node{{Label: "c"}}
	pr := NewWithJitter([]float64{0}, DefaultParams())
	p := pr.Project(ns, 0, 400, 400, nil)[0]

	persp := 1.25 / 1.6
	wantY := (0.03*1.02*persp + 0.5) * 400
	if math.Abs(p.X-200) > 1e-9 || math.Abs(p.Y-wantY) > 1e-9 {
		t.Fatalf("center projected to %+v, want (200, %v)", p, wantY)
	}
	if math.Abs(p.Depth-persp) > 1e-12 {
		t.Fatalf("depth %v, want %v", p.Depth, persp)
	}
}

func TestProjectCloserNodesAreDeeper(t *testing.T) {
	ns := []sphere.Node{{Label: "near", Z: -0.5}, {Label: "far", Z: 0.5}}
	pr := NewWithJitter([]float64{0, 0}, DefaultParams())
	pos := pr.Project(ns, 0, 400, 400, nil)
	if pos[0].Depth <= pos[1].Depth {
		t.Fatalf("expected near node to have larger depth scale: %+v", pos)
	}
}

func TestProjectReusesBuffer(t *testing.T) {
	ns := nodes(t, 8)
	pr := New(len(ns), rand.New(rand.NewSource(1)), DefaultParams())
	buf := make([]Position, 0, 16)
	out := pr.Project(ns, 10, 300, 300, buf)
	if len(out) != 8 || &out[0] != &buf[:1][0] {
		t.Fatal("expected projection into the provided buffer")
	}
}

func TestJitterRange(t *testing.T) {
	pr := New(500, rand.New(rand.NewSource(5)), DefaultParams())
	for i := 0; i < 500; i++ {
		if j := pr.Jitter(i); j < -0.125 || j >= 0.125 {
			t.Fatalf("jitter %d = %v outside [-0.125, 0.125)", i, j)
		}
	}
	if pr.Jitter(-1) != 0 || pr.Jitter(500) != 0 {
		t.Fatal("expected zero jitter out of range")
	}
}

func TestRotationOrder(t *testing.T) {
	v := V3(1, 0, 0)
	ry := Rotate(math.Pi / 2)
	rx := Rotate(math.Pi / 2)

	// Y first: (1,0,0) → (0,0,1); then X: (0,0,1) → (0,-1,0).
	got := RotateX(RotateY(v, ry), rx)
	if math.Abs(got.X) > 1e-12 || math.Abs(got.Y+1) > 1e-12 || math.Abs(got.Z) > 1e-12 {
		t.Fatalf("RotateX(RotateY) = %+v", got)
	}

	// X first leaves the X axis alone, then Y: (1,0,0) → (0,0,1).
	got = RotateY(RotateX(v, rx), ry)
	if math.Abs(got.Z-1) > 1e-12 {
		t.Fatalf("RotateY(RotateX) = %+v", got)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 10) != 5 || Clamp(-1, 0, 10) != 0 || Clamp(11, 0, 10) != 10 {
		t.Fatal("clamp mismatch")
	}
	// Degenerate range resolves to the lower bound.
	if Clamp(5, 54, 40) != 54 {
		t.Fatal("expected lower bound for inverted range")
	}
}

func TestNewTypedNilRand(t *testing.T) {
	var rng *rand.Rand
	pr := New(50, rng, DefaultParams())
	for i := 0; i < 50; i++ {
		if j := pr.Jitter(i); j < -0.125 || j >= 0.125 {
			t.Fatalf("jitter %d = %v", i, j)
		}
	}
}
