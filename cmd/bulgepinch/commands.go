package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	"github.com/phanxgames/bulgepinch"
)

// warpOptions holds the flags of the warp command.
type warpOptions struct {
	output     string
	centerX    float64
	centerY    float64
	radius     float64
	strength   float64
	presetFile string
	preset     string
	all        bool
	workers    int
	edge       string
	debug      bool
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "bulgepinch",
		Short:         "Bulge or pinch images inside a circle",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newWarpCmd(), newPresetsCmd())
	return root
}

func newWarpCmd() *cobra.Command {
	def := bulgepinch.DefaultParams()
	opts := &warpOptions{}
	cmd := &cobra.Command{
		Use:   "warp INPUT",
		Short: "Warp an image file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWarp(cmd, args[0], opts)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.output, "output", "o", "", "output file, or directory with --all (default INPUT_warped.png)")
	f.Float64Var(&opts.centerX, "center-x", def.Center.X, "normalized x of the circle center")
	f.Float64Var(&opts.centerY, "center-y", def.Center.Y, "normalized y of the circle center")
	f.Float64Var(&opts.radius, "radius", def.Radius, "radius of the circle of effect in pixels")
	f.Float64Var(&opts.strength, "strength", def.Strength, "-1 strong pinch, 0 none, 1 strong bulge")
	f.StringVar(&opts.presetFile, "preset-file", "", "JSON preset document")
	f.StringVar(&opts.preset, "preset", "", "preset name from --preset-file")
	f.BoolVar(&opts.all, "all", false, "render every preset in --preset-file")
	f.IntVar(&opts.workers, "workers", 0, "goroutines used for rendering (0 = GOMAXPROCS)")
	f.StringVar(&opts.edge, "edge", bulgepinch.EdgeFade.String(), "edge mode: fade, clamp or transparent")
	f.BoolVar(&opts.debug, "debug", false, "print render timing to stderr")
	return cmd
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets FILE",
		Short: "List the presets in a JSON preset document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets, err := readPresets(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, p := range presets {
				fmt.Fprintf(out, "%-16s center=(%.3f, %.3f) radius=%.1f strength=%.2f\n",
					p.Name, p.Params.Center.X, p.Params.Center.Y, p.Params.Radius, p.Params.Strength)
			}
			return nil
		},
	}
}

// job is one render: the parameters and where to write the result.
type job struct {
	params bulgepinch.Params
	output string
}

func runWarp(cmd *cobra.Command, input string, opts *warpOptions) error {
	edge, ok := bulgepinch.ParseEdgeMode(opts.edge)
	if !ok {
		return fmt.Errorf("unknown edge mode %q", opts.edge)
	}

	jobs, err := planJobs(cmd, input, opts)
	if err != nil {
		return err
	}

	src, err := imaging.Open(input, imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("open %s: %w", input, err)
	}

	r := bulgepinch.Renderer{Workers: opts.workers, Edge: edge, Debug: opts.debug}
	for _, j := range jobs {
		out, err := r.Render(src, j.params)
		if err != nil {
			return fmt.Errorf("render %s: %w", input, err)
		}
		if err := imaging.Save(out, j.output); err != nil {
			return fmt.Errorf("save %s: %w", j.output, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), j.output)
	}
	return nil
}

// planJobs resolves flags and presets into the list of renders to perform.
// Explicitly set parameter flags override values taken from a preset.
func planJobs(cmd *cobra.Command, input string, opts *warpOptions) ([]job, error) {
	if opts.all {
		if opts.presetFile == "" {
			return nil, fmt.Errorf("--all requires --preset-file")
		}
		presets, err := readPresets(opts.presetFile)
		if err != nil {
			return nil, err
		}
		dir := opts.output
		if dir == "" {
			dir = filepath.Dir(input)
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
		jobs := make([]job, 0, len(presets))
		for _, p := range presets {
			name := fmt.Sprintf("%s_%s.png", stem(input), bulgepinch.SanitizeLabel(p.Name))
			jobs = append(jobs, job{
				params: overrideParams(cmd, p.Params, opts),
				output: filepath.Join(dir, name),
			})
		}
		return jobs, nil
	}

	params := bulgepinch.DefaultParams()
	if opts.preset != "" {
		if opts.presetFile == "" {
			return nil, fmt.Errorf("--preset requires --preset-file")
		}
		presets, err := readPresets(opts.presetFile)
		if err != nil {
			return nil, err
		}
		p, ok := bulgepinch.FindPreset(presets, opts.preset)
		if !ok {
			return nil, fmt.Errorf("preset %q not found in %s", opts.preset, opts.presetFile)
		}
		params = p.Params
	}

	output := opts.output
	if output == "" {
		output = filepath.Join(filepath.Dir(input), stem(input)+"_warped.png")
	}
	return []job{{params: overrideParams(cmd, params, opts), output: output}}, nil
}

// overrideParams applies every parameter flag the user set explicitly.
func overrideParams(cmd *cobra.Command, p bulgepinch.Params, opts *warpOptions) bulgepinch.Params {
	f := cmd.Flags()
	if f.Changed("center-x") {
		p.Center.X = opts.centerX
	}
	if f.Changed("center-y") {
		p.Center.Y = opts.centerY
	}
	if f.Changed("radius") {
		p.Radius = opts.radius
	}
	if f.Changed("strength") {
		p.Strength = opts.strength
	}
	return p
}

func readPresets(path string) ([]bulgepinch.Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presets: %w", err)
	}
	presets, err := bulgepinch.LoadPresets(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return presets, nil
}

// stem returns the file name of path without directory and extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
