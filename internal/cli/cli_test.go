package cli

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("SKILLNET_REDUCED_MOTION", "")

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParsePoint(t *testing.T) {
	p, err := parsePoint("12, 34")
	if err != nil || p.X != 12 || p.Y != 34 {
		t.Fatalf("parsePoint=%v, %v", p, err)
	}
	if p, err := parsePoint(""); p != nil || err != nil {
		t.Fatalf("empty=%v, %v", p, err)
	}
	for _, bad := range []string{"12", "a,1", "1,b"} {
		if _, err := parsePoint(bad); err == nil {
			t.Fatalf("parsePoint(%q) succeeded", bad)
		}
	}
}

func TestGraphCommand(t *testing.T) {
	out, err := run(t, "graph", "--seed", "7", "--edges")
	if err != nil {
		t.Fatalf("graph: %v\n%s", err, out)
	}
	for _, want := range []string{"TypeScript", "Python", "Components", "Isolated", "FROM"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	again, err := run(t, "graph", "--seed", "7", "--edges")
	if err != nil {
		t.Fatal(err)
	}
	if again != out {
		t.Fatal("same seed printed a different graph")
	}
}

func TestSnapshotCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	out, err := run(t, "snapshot", "--seed", "3", "--t", "800", "--width", "300", "--height", "270", "-o", path)
	if err != nil {
		t.Fatalf("snapshot: %v\n%s", err, out)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 300 || b.Dy() != 270 {
		t.Fatalf("bounds=%v", b)
	}
}

func TestSnapshotBadPointer(t *testing.T) {
	if _, err := run(t, "snapshot", "--pointer", "oops", "-o", filepath.Join(t.TempDir(), "x.png")); err == nil {
		t.Fatal("bad pointer accepted")
	}
}

func TestConfigCommand(t *testing.T) {
	out, err := run(t, "config")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "labels = [") || !strings.Contains(out, "[style]") {
		t.Fatalf("example config=%q", out)
	}
}

func TestMissingConfigFails(t *testing.T) {
	if _, err := run(t, "graph", "--config", filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("missing --config file accepted")
	}
}

func TestFramesCommand(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "seq")
	out, err := run(t, "frames", "--seed", "5", "--count", "3", "--interval", "40", "--workers", "2", "--dir", dir)
	if err != nil {
		t.Fatalf("frames: %v\n%s", err, out)
	}
	for _, name := range []string{"frame_0000.png", "frame_0001.png", "frame_0002.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("missing %s: %v", name, err)
		}
	}
	if _, err := run(t, "frames", "--count", "0", "--dir", dir); err == nil {
		t.Fatal("zero count accepted")
	}
}
