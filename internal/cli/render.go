package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/schedkit/schedkit/pkg/config"
	"github.com/schedkit/schedkit/pkg/gantt"
	"github.com/schedkit/schedkit/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
// These options control layout, output formats, and file destinations.
type renderOpts struct {
	output     string   // output file path (or base path for multiple formats)
	jobs       string   // optional jobs JSON file for label/tooltip enrichment
	machines   string   // optional machine-group JSON file
	configPath string   // optional TOML config file
	formats    []string // output formats: "svg", "json", "pdf", "png"
	scale      float64  // horizontal scale in pixels per time unit
	topology   string   // row topology: "group_instance" or "machine"
	noGrid     bool     // suppress vertical grid lines at axis ticks
	font       string   // SVG font family override
	background string   // SVG background color
	pngScale   float64  // raster scale factor for PNG output
}

// newRenderCmd creates the render command for generating Gantt charts.
// It reads a solved schedule from JSON and writes one file per requested
// format (SVG, JSON, PDF, PNG).
//
// Default settings:
//   - format: svg
//   - topology: group_instance (one row per machine-group instance)
//   - scale: 50px per time unit
//   - grid: on
func newRenderCmd() *cobra.Command {
	var formatsStr string
	opts := renderOpts{
		scale:    pipeline.DefaultScale,
		topology: string(gantt.TopologyGroupInstance),
		pngScale: 2.0,
	}

	cmd := &cobra.Command{
		Use:   "render [schedule.json]",
		Short: "Render a solved schedule as a Gantt chart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return runRender(cmd.Context(), cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVar(&opts.jobs, "jobs", "", "jobs JSON file for richer labels and tooltips")
	cmd.Flags().StringVar(&opts.machines, "machines", "", "machine-group JSON file (required for group_instance topology)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, pdf, png (comma-separated)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "horizontal scale in pixels per time unit")
	cmd.Flags().StringVar(&opts.topology, "topology", opts.topology, "row topology: group_instance (default), machine")
	cmd.Flags().BoolVar(&opts.noGrid, "no-grid", false, "suppress vertical grid lines")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "TOML config file with geometry and palette overrides")
	cmd.Flags().StringVar(&opts.font, "font", "", "SVG font family")
	cmd.Flags().StringVar(&opts.background, "background", "", "SVG background color")
	cmd.Flags().Float64Var(&opts.pngScale, "png-scale", opts.pngScale, "raster scale factor for PNG output")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .pdf, etc.), it strips that
// extension. This is used when generating multiple files
// (e.g., schedule.svg, schedule.json).
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPath builds the destination file name for one format.
// With a single requested format the explicit --output path is used as-is
// when it already carries an extension.
func outputPath(base, format string, opts *renderOpts) string {
	if len(opts.formats) == 1 && opts.output != "" && filepath.Ext(opts.output) != "" {
		return opts.output
	}
	return base + "." + format
}

// buildOptions merges the config file (when given) with command-line flags.
// Flags that were set explicitly win over config file values.
func buildOptions(cmd *cobra.Command, opts *renderOpts) (pipeline.Options, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return pipeline.Options{}, err
		}
	}

	scale := cfg.Layout.TimeScale
	if cmd.Flags().Changed("scale") {
		scale = opts.scale
	}
	topology := cfg.Layout.Topology
	if cmd.Flags().Changed("topology") {
		topology = opts.topology
	}
	noGrid := !cfg.Layout.Grid
	if cmd.Flags().Changed("no-grid") {
		noGrid = opts.noGrid
	}

	palette, err := cfg.BuildPalette()
	if err != nil {
		return pipeline.Options{}, err
	}

	return pipeline.Options{
		Scale:      scale,
		Topology:   gantt.Topology(topology),
		NoGrid:     noGrid,
		Geometry:   cfg.ToGeometry(),
		Palette:    palette,
		Formats:    opts.formats,
		FontFamily: opts.font,
		Background: opts.background,
		PNGScale:   opts.pngScale,
	}, nil
}

// runRender loads the schedule, runs the layout pipeline, and writes one
// artifact per requested format.
func runRender(ctx context.Context, cmd *cobra.Command, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s", input)

	pOpts, err := buildOptions(cmd, opts)
	if err != nil {
		return err
	}
	pOpts.Logger = logger

	in, err := pipeline.LoadInputs(ctx, input, opts.jobs, opts.machines)
	if err != nil {
		return err
	}
	logger.Infof("Loaded schedule: %d operations, makespan %d",
		len(in.Schedule.ScheduledOperations), in.Schedule.EffectiveMakespan())

	prog := newProgress(logger)
	result, err := pipeline.NewRunner(logger).Execute(ctx, in, pOpts)
	if err != nil {
		return err
	}

	base := basePath(opts.output, input)
	for _, format := range opts.formats {
		path := outputPath(base, format, opts)
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	prog.done(fmt.Sprintf("Rendered %d artifact(s)", len(opts.formats)))

	if result.Stats.SkippedOps > 0 {
		printWarning("%d operation(s) referenced unknown machines and were skipped", result.Stats.SkippedOps)
	}
	printLayoutStats(result.Stats.Operations, result.Stats.CommandCount, result.Stats.SkippedOps)
	printSuccess("Chart size %.0f×%.0f px", result.ContentWidth, result.ContentHeight)
	return nil
}
