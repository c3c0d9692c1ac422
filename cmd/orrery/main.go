// orrery - software-rendered planetary viewer
// Draws procedurally shaded planets with a CPU rasterizer, in a window,
// in the terminal, or into an image file.
//
// Controls:
//
//	Arrows  - Move the body
//	A/D     - Spin left/right
//	W/S     - Tilt up/down
//	Q/E     - Zoom in/out
//	1-8     - Select body (star, rocky, gas giant, ringed giant, colorful,
//	          exotic, dark red, rocky with moon)
//	R       - Reset position, spin and zoom
//	G       - Toggle debug guides
//	Esc     - Quit
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/taigrr/orrery/pkg/config"
	"github.com/taigrr/orrery/pkg/models"
	"github.com/taigrr/orrery/pkg/noise"
	"github.com/taigrr/orrery/pkg/present"
	"github.com/taigrr/orrery/pkg/render"
	"github.com/taigrr/orrery/pkg/scene"
	"github.com/taigrr/orrery/pkg/shaders"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := fang.Execute(ctx, newRootCmd(), fang.WithVersion(version))
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		flags      config.Flags
		seed       int64
	)

	cmd := &cobra.Command{
		Use:   "orrery",
		Short: "Software-rendered planetary viewer",
		Long: `orrery renders procedurally shaded planets with a CPU rasterizer.

Output goes to a desktop window, to the terminal using half-block cells,
or to a .webp/.png snapshot.`,
		Example: `  orrery --body gas_giant_with_rings
  orrery --output terminal --body 8
  orrery --output snapshot --frames 120 --snapshot ringed.webp --body 4 --upscale 2
  orrery --shader exotic+screen --guides`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("seed") {
				flags.Seed = &seed
			}
			return run(cmd.Context(), configPath, flags)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&configPath, "config", "c", "", "JSON config file")
	f.IntVar(&flags.Width, "width", 0, "framebuffer width (default 800)")
	f.IntVar(&flags.Height, "height", 0, "framebuffer height (default 600)")
	f.IntVar(&flags.FPS, "fps", 0, "target frames per second (default 60)")
	f.StringVar(&flags.Background, "bg", "", "background color, #RRGGBB or R,G,B (default #333355)")
	f.StringVarP(&flags.Output, "output", "o", "", "output: window, terminal or snapshot (default window)")
	f.StringVarP(&flags.Body, "body", "b", "", "body to show, by name or key 1-8 (default star)")
	f.StringVar(&flags.Shader, "shader", "", "override the body shader, e.g. stripes or exotic+screen")
	f.StringVar(&flags.Blend, "blend", "", "blend mode for layered shaders: normal, multiply, add, subtract, screen")
	f.Int64Var(&seed, "seed", config.DefaultSeed, "noise seed")
	f.BoolVar(&flags.Guides, "guides", false, "draw axes, bounds and orbit guides")
	f.StringVar(&flags.Sphere, "sphere", "", "mesh file (.obj, .glb, .gltf) replacing the built-in sphere")
	f.StringVar(&flags.Ring, "ring", "", "mesh file replacing the built-in ring")
	f.StringVar(&flags.Snapshot, "snapshot", "", "snapshot path, .webp or .png (default orrery.webp)")
	f.IntVar(&flags.Frames, "frames", 0, "frames to advance before a snapshot (default 1)")
	f.IntVar(&flags.Upscale, "upscale", 0, "integer pixel scale for the window and snapshots (default 1)")
	f.StringVar(&flags.LogLevel, "log-level", "", "debug, info, warn or error (default info)")

	cmd.AddCommand(newListCmd())
	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List bodies, shaders and blend modes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "Bodies:")
			for i, b := range scene.Bodies() {
				fmt.Fprintf(w, "  %d  %-24s %s\n", i+1, b, b.Shader())
			}
			fmt.Fprintln(w, "\nShaders:")
			for _, name := range shaders.Default().Names() {
				fmt.Fprintf(w, "  %s\n", name)
			}
			fmt.Fprintln(w, "\nBlend modes:")
			for _, m := range render.BlendModes() {
				fmt.Fprintf(w, "  %s\n", m)
			}
		},
	}
}

func newScene(cfg config.Config, settings config.Settings, sphere, ring render.BoundedMesh) *scene.Scene {
	return scene.New(scene.Options{
		FPS:    cfg.FPS,
		Body:   settings.Body,
		Shader: settings.Shader,
		Blend:  settings.Blend,
		Guides: cfg.Guides,
		Width:  cfg.Width,
		Height: cfg.Height,
		Sphere: sphere,
		Ring:   ring,
	})
}

func run(ctx context.Context, configPath string, flags config.Flags) error {
	var cfg config.Config
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}
	cfg.Resolve(flags)
	settings, err := cfg.Parse()
	if err != nil {
		return err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           settings.LogLevel,
		ReportTimestamp: true,
		Prefix:          "orrery",
	})
	if cfg.Output == config.OutputTerminal {
		// The terminal presenter owns the screen.
		logger.SetOutput(io.Discard)
	}

	sphere, ring, err := loadMeshes(cfg, logger)
	if err != nil {
		return err
	}

	sc := newScene(cfg, settings, sphere, ring)

	fb := render.NewFramebuffer(cfg.Width, cfg.Height)
	fb.SetBackground(settings.Background)
	u := render.NewUniforms(
		noise.NewOpenSimplex(*cfg.Seed, noise.DefaultFrequency),
		noise.NewCellular(*cfg.Seed, noise.DefaultFrequency, noise.Manhattan),
	)
	v := present.NewViewer(sc, render.NewRenderer(shaders.Default()), u, fb, logger)

	logger.Debug("starting", "output", cfg.Output, "body", settings.Body, "shader", sc.Selector(), "seed", *cfg.Seed)

	switch cfg.Output {
	case config.OutputTerminal:
		return present.RunTerminal(ctx, v, cfg.FPS)
	case config.OutputSnapshot:
		return present.Snapshot(v, present.SnapshotOptions{
			Path:    cfg.Snapshot,
			Frames:  cfg.Frames,
			Upscale: cfg.Upscale,
		})
	default:
		return present.RunWindow(v, "orrery", cfg.FPS, cfg.Upscale)
	}
}

// loadMeshes returns the sphere and ring replacements named in cfg. A nil
// mesh keeps the built-in one.
func loadMeshes(cfg config.Config, logger *log.Logger) (sphere, ring render.BoundedMesh, err error) {
	if cfg.Sphere != "" {
		m, err := models.Load(cfg.Sphere)
		if err != nil {
			return nil, nil, fmt.Errorf("load sphere: %w", err)
		}
		m.Normalize()
		logger.Info("loaded sphere", "path", cfg.Sphere, "vertices", m.VertexCount(), "triangles", m.TriangleCount())
		sphere = m
	}
	if cfg.Ring != "" {
		m, err := models.Load(cfg.Ring)
		if err != nil {
			return nil, nil, fmt.Errorf("load ring: %w", err)
		}
		logger.Info("loaded ring", "path", cfg.Ring, "vertices", m.VertexCount(), "triangles", m.TriangleCount())
		ring = m
	}
	return sphere, ring, nil
}
