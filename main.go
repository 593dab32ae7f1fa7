package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Options holds the parsed command line
type Options struct {
	Scene   string
	Mesh    string
	Output  string
	Time    float64
	Verbose bool
	Config  renderer.Config
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseArgs turns command line arguments into Options
func parseArgs(args []string, stderr io.Writer) (Options, error) {
	defaults := renderer.DefaultConfig()

	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Whitted Raytracer")
		fmt.Fprintln(stderr, "Usage: raytracer [options]")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Options:")
		fs.PrintDefaults()
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Available scenes:")
		for _, info := range scene.List() {
			fmt.Fprintf(stderr, "  %-12s %s\n", info.Name, info.Description)
		}
	}

	sceneName := fs.String("scene", "spheres", "Scene: "+strings.Join(scene.Names(), ", "))
	width := fs.Int("width", defaults.Width, "Image width in pixels")
	height := fs.Int("height", defaults.Height, "Image height in pixels")
	mode := fs.String("mode", defaults.Mode.String(), "Lighting mode: observed-area, radiance, brdf, combined")
	shadows := fs.Bool("shadows", defaults.Shadows, "Trace shadow rays")
	mesh := fs.String("mesh", scene.DefaultMeshPath, "Mesh file for the 'mesh' scene")
	output := fs.String("out", renderer.DefaultSnapshotPath, "Output BMP file")
	animTime := fs.Float64("time", 0, "Animation time in seconds applied to meshes")
	verbose := fs.Bool("v", false, "Log debug output")

	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}

	if *width <= 0 || *height <= 0 {
		return Options{}, fmt.Errorf("invalid size %dx%d", *width, *height)
	}

	lightingMode, err := renderer.ParseLightingMode(*mode)
	if err != nil {
		return Options{}, err
	}

	config := defaults
	config.Width = *width
	config.Height = *height
	config.Mode = lightingMode
	config.Shadows = *shadows

	return Options{
		Scene:   *sceneName,
		Mesh:    *mesh,
		Output:  *output,
		Time:    *animTime,
		Verbose: *verbose,
		Config:  config,
	}, nil
}

// run renders one frame as described by args and writes it to disk
func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	core.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	world, err := scene.Create(opts.Scene, scene.Options{MeshPath: opts.Mesh, Time: opts.Time})
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Rendering %s (%d primitives) at %dx%d, mode %s, shadows %t\n",
		opts.Scene, world.PrimitiveCount(), opts.Config.Width, opts.Config.Height,
		opts.Config.Mode, opts.Config.Shadows)

	startTime := time.Now()
	img, stats := renderer.NewRenderer(world, opts.Config).Render()
	fmt.Fprintf(stdout, "Render completed in %v (%d hits, %d of %d shadow rays occluded)\n",
		time.Since(startTime), stats.Hits, stats.Occluded, stats.ShadowRays)

	if err := renderer.SaveBufferToImage(img, opts.Output); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Render saved as %s\n", opts.Output)
	return nil
}
