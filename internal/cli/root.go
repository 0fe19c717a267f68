package cli

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"skillnet/app"
	"skillnet/internal/buildinfo"
	"skillnet/internal/config"
	"skillnet/internal/ui"
)

type globalFlags struct {
	configPath    string
	reducedMotion bool
	seed          int64
	hud           bool
}

// NewRootCmd builds the skillnet command tree.
func NewRootCmd() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:   "skillnet",
		Short: "skillnet, a rotating sphere of connected skills",
		Long: ui.Brand.Sprint("skillnet") + " renders labeled skills on a rotating sphere,\n" +
			ui.Subtle.Sprint("linked into a sparse network with pulses running along the edges."),
		Version:       buildinfo.Long(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(g)
		},
	}
	root.SetVersionTemplate("skillnet {{ .Version }}\n")

	pf := root.PersistentFlags()
	pf.StringVar(&g.configPath, "config", "", "Config file (default "+config.DefaultPath()+")")
	pf.BoolVar(&g.reducedMotion, "reduced-motion", false, "Render a single static frame, no animation.")
	pf.Int64Var(&g.seed, "seed", 0, "Random seed for the graph and depth jitter (0 = config, then clock).")
	pf.BoolVar(&g.hud, "hud", false, "Show the status overlay.")

	root.AddCommand(
		windowCmd(g),
		headlessCmd(g),
		snapshotCmd(g),
		framesCmd(g),
		graphCmd(g),
		configCmd(),
	)
	return root
}

// Execute runs the root command and returns the process exit code.
func Execute(ctx context.Context) int {
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return 0
		}
		ui.Bad.Fprintf(os.Stderr, "skillnet: %v\n", err)
		return 1
	}
	return 0
}

func (g *globalFlags) load() (*config.Config, error) {
	return config.Load(g.configPath)
}

func (g *globalFlags) options() app.Options {
	return app.Options{ReducedMotion: g.reducedMotion, HUD: g.hud, Seed: g.seed}
}

// parsePoint parses "x,y".
func parsePoint(s string) (*image.Point, error) {
	if s == "" {
		return nil, nil
	}
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return nil, fmt.Errorf("pointer %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return nil, fmt.Errorf("pointer %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return nil, fmt.Errorf("pointer %q: %w", s, err)
	}
	return &image.Point{X: x, Y: y}, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
