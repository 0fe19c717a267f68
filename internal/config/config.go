package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"skillnet/viz/canvas"
	"skillnet/viz/render"
)

// EnvReducedMotion forces reduced motion when set to a true value.
const EnvReducedMotion = "SKILLNET_REDUCED_MOTION"

//go:embed default.toml
var exampleTOML []byte

// Config holds skillnet configuration.
type Config struct {
	Labels   []string       `toml:"labels"`
	Scene    SceneConfig    `toml:"scene"`
	Motion   MotionConfig   `toml:"motion"`
	Window   WindowConfig   `toml:"window"`
	HUD      HUDConfig      `toml:"hud"`
	Style    StyleConfig    `toml:"style"`
	Headless HeadlessConfig `toml:"headless"`
}

// SceneConfig controls layout and randomness.
type SceneConfig struct {
	Radius float64 `toml:"radius"`
	Seed   int64   `toml:"seed"` // 0 = random per run
}

// MotionConfig controls animation.
type MotionConfig struct {
	Reduced bool `toml:"reduced"`
}

// WindowConfig is the initial desktop window size.
type WindowConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// HUDConfig toggles the status overlay.
type HUDConfig struct {
	Enabled bool `toml:"enabled"`
}

// StyleConfig overrides renderer colors. Empty strings keep the built-in
// color. Values are "#rgb", "#rrggbb" or "#rrggbbaa".
type StyleConfig struct {
	Background string `toml:"background"`
	EdgeFrom   string `toml:"edge_from"`
	EdgeTo     string `toml:"edge_to"`
	Text       string `toml:"text"`
	TextHover  string `toml:"text_hover"`
}

// HeadlessConfig controls the no-window runner.
type HeadlessConfig struct {
	Hz    int    `toml:"hz"`
	Ticks uint64 `toml:"ticks"`
}

// DefaultLabels is the built-in skill set.
var DefaultLabels = []string{
	"TypeScript", "React", "Node.js", "JavaScript", "REST APIs", "CI/CD",
	"Docker", "Prisma", "React Native", "Redux", "TailwindCSS", "HTML5",
	"CSS3", "Vite", "Build Tools", "Express", "WebSockets", "Microservices",
	"PostgreSQL", "MongoDB", "MySQL", "Kubernetes", "GitHub Actions", "GCP",
	"AWS", "Azure", "Jest", "RTL", "Python",
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Labels:   append([]string(nil), DefaultLabels...),
		Scene:    SceneConfig{Radius: 0.56},
		Window:   WindowConfig{Width: 960, Height: 640},
		Style:    StyleConfig{},
		Headless: HeadlessConfig{Hz: 60},
	}
}

// Example returns the commented example config file.
func Example() []byte {
	return append([]byte(nil), exampleTOML...)
}

// ConfigDir returns the skillnet config directory path.
func ConfigDir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "skillnet")
}

// DefaultPath is the config file read when no path is given.
func DefaultPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config at path over the defaults. An empty path reads
// DefaultPath if it exists. The reduced-motion environment override is
// applied last.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := Decode(data, cfg); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	case !explicit && errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg.ApplyEnv(os.LookupEnv)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode overlays TOML data onto cfg.
func Decode(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return err
	}
	if un := md.Undecoded(); len(un) > 0 {
		keys := make([]string, len(un))
		for i, k := range un {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

// ApplyEnv applies environment overrides using lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvReducedMotion); ok {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "on":
			c.Motion.Reduced = true
		case "0", "false", "no", "off":
			c.Motion.Reduced = false
		}
	}
}

// Validate checks values that would only fail later, deep in a run.
func (c *Config) Validate() error {
	if len(c.Labels) < 2 {
		return fmt.Errorf("labels: need at least 2, have %d", len(c.Labels))
	}
	if c.Scene.Radius < 0 {
		return fmt.Errorf("scene.radius: must not be negative")
	}
	if c.Headless.Hz < 0 {
		return fmt.Errorf("headless.hz: must not be negative")
	}
	_, err := c.RenderStyle()
	return err
}

// RenderStyle returns the renderer style with the configured colors applied.
func (c *Config) RenderStyle() (render.Style, error) {
	st := render.DefaultStyle()
	overrides := []struct {
		key string
		val string
		dst *canvas.Color
	}{
		{"style.background", c.Style.Background, &st.Background},
		{"style.edge_from", c.Style.EdgeFrom, &st.EdgeFrom},
		{"style.edge_to", c.Style.EdgeTo, &st.EdgeTo},
		{"style.text", c.Style.Text, &st.Node.Text},
		{"style.text_hover", c.Style.TextHover, &st.Hovered.Text},
	}
	for _, o := range overrides {
		if o.val == "" {
			continue
		}
		col, err := canvas.ParseHex(o.val)
		if err != nil {
			return render.Style{}, fmt.Errorf("%s: %w", o.key, err)
		}
		*o.dst = col
	}
	return st, nil
}
