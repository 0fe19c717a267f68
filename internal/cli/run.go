package cli

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"skillnet/app"
	"skillnet/hal"
	"skillnet/internal/ui"
)

func windowCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "window",
		Short: "Open the desktop window (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(g)
		},
	}
}

func runWindow(g *globalFlags) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	opts := g.options()
	return hal.RunWindow(func(h hal.HAL) func() error {
		return app.NewWithConfig(h, cfg, opts)
	}, hal.WindowConfig{Width: cfg.Window.Width, Height: cfg.Window.Height})
}

func headlessCmd(g *globalFlags) *cobra.Command {
	var (
		hz       int
		ticks    uint64
		width    int
		height   int
		pointer  string
		out      string
		realTime bool
	)

	cmd := &cobra.Command{
		Use:   "headless",
		Short: "Run frames on a ticker without a window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.load()
			if err != nil {
				return err
			}
			ptr, err := parsePoint(pointer)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("hz") {
				hz = cfg.Headless.Hz
			}
			if !cmd.Flags().Changed("ticks") {
				ticks = cfg.Headless.Ticks
			}

			var host hal.HAL
			opts := g.options()
			runErr := hal.RunHeadless(cmd.Context(), func(h hal.HAL) func() error {
				host = h
				return app.NewWithConfig(h, cfg, opts)
			}, hal.HeadlessConfig{
				Hz:       hz,
				Ticks:    ticks,
				Width:    width,
				Height:   height,
				Pointer:  ptr,
				RealTime: realTime,
			})

			// An interrupted run still writes the last frame.
			if out != "" && host != nil {
				img, err := host.Display().Snapshot()
				if err != nil {
					return err
				}
				if err := writePNG(out, img); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "  %s wrote %s\n", ui.StatusIcon(true), out)
			}
			return runErr
		},
	}

	f := cmd.Flags()
	f.IntVar(&hz, "hz", 60, "Tick rate.")
	f.Uint64Var(&ticks, "ticks", 0, "Stop after N ticks (0 = run until interrupted).")
	f.IntVar(&width, "width", 640, "Surface width.")
	f.IntVar(&height, "height", 480, "Surface height.")
	f.StringVar(&pointer, "pointer", "", "Pointer position x,y held for the whole run.")
	f.StringVar(&out, "out", "", "Write the last frame to this PNG file.")
	f.BoolVar(&realTime, "real-time", false, "Advance animation by the wall clock instead of 1/hz per tick.")
	return cmd
}

func snapshotCmd(g *globalFlags) *cobra.Command {
	var (
		t       float64
		width   int
		height  int
		pointer string
		out     string
	)

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render one frame to a PNG file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.load()
			if err != nil {
				return err
			}
			ptr, err := parsePoint(pointer)
			if err != nil {
				return err
			}
			img, err := app.Snapshot(cfg, app.SnapshotOptions{
				Options: g.options(),
				T:       t,
				Width:   width,
				Height:  height,
				Pointer: ptr,
			})
			if err != nil {
				return err
			}
			if err := writePNG(out, img); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  %s wrote %s (%dx%d, t=%gms)\n",
				ui.StatusIcon(true), out, img.Bounds().Dx(), img.Bounds().Dy(), t)
			return nil
		},
	}

	f := cmd.Flags()
	f.Float64Var(&t, "t", 0, "Animation time in ms.")
	f.IntVar(&width, "width", 640, "Image width.")
	f.IntVar(&height, "height", 480, "Image height.")
	f.StringVar(&pointer, "pointer", "", "Pointer position x,y.")
	f.StringVarP(&out, "out", "o", "skillnet.png", "Output PNG path.")
	return cmd
}

func framesCmd(g *globalFlags) *cobra.Command {
	var (
		start    float64
		count    int
		interval float64
		width    int
		height   int
		pointer  string
		dir      string
		workers  int
	)

	cmd := &cobra.Command{
		Use:   "frames",
		Short: "Render a numbered PNG sequence in parallel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.load()
			if err != nil {
				return err
			}
			ptr, err := parsePoint(pointer)
			if err != nil {
				return err
			}
			if count <= 0 {
				return fmt.Errorf("count must be positive, got %d", count)
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}

			err = app.RenderSequence(cmd.Context(), cfg, app.SequenceOptions{
				SnapshotOptions: app.SnapshotOptions{
					Options: g.options(),
					T:       start,
					Width:   width,
					Height:  height,
					Pointer: ptr,
				},
				Count:    count,
				Interval: interval,
				Workers:  workers,
			}, func(i int, img *image.RGBA) error {
				return writePNG(filepath.Join(dir, fmt.Sprintf("frame_%04d.png", i)), img)
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  %s wrote %d frames to %s\n", ui.StatusIcon(true), count, dir)
			return nil
		},
	}

	f := cmd.Flags()
	f.Float64Var(&start, "t", 0, "Time of the first frame in ms.")
	f.IntVar(&count, "count", 60, "Number of frames.")
	f.Float64Var(&interval, "interval", 1000.0/60, "Time between frames in ms.")
	f.IntVar(&width, "width", 640, "Image width.")
	f.IntVar(&height, "height", 480, "Image height.")
	f.StringVar(&pointer, "pointer", "", "Pointer position x,y.")
	f.StringVar(&dir, "dir", "frames", "Output directory.")
	f.IntVar(&workers, "workers", 0, "Parallel renders (0 = GOMAXPROCS).")
	return cmd
}
