// Package pipeline provides the load → layout → render pipeline for
// schedkit.
//
// The pipeline ties the pure layout engine to file inputs and artifact
// outputs so the CLI and any embedding host share one code path:
//
//  1. Load: read the solved schedule (and optional jobs / machine groups)
//     from JSON files.
//  2. Layout: run one engine session over the inputs.
//  3. Render: serialize the draw commands to the requested formats.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{Formats: []string{"svg"}}
//	result, err := runner.Execute(ctx, inputs, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/schedkit/schedkit/pkg/errors"
	"github.com/schedkit/schedkit/pkg/gantt"
	"github.com/schedkit/schedkit/pkg/observability"
	"github.com/schedkit/schedkit/pkg/schedule"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatJSON: true,
	FormatPNG:  true,
	FormatPDF:  true,
}

// DefaultScale is the default horizontal scale in pixels per time unit.
var DefaultScale = gantt.DefaultGeometry().TimeScale

// Options contains all configuration for one pipeline run.
type Options struct {
	// Layout options
	Scale    float64        `json:"scale,omitempty"`
	Topology gantt.Topology `json:"topology,omitempty"`
	NoGrid   bool           `json:"no_grid,omitempty"`

	// Geometry overrides the chart constants; the zero value means the
	// built-in defaults.
	Geometry gantt.Geometry `json:"-"`

	// Palette overrides the job color cycle (nil means built-in).
	Palette *gantt.Palette `json:"-"`

	// Render options
	Formats    []string `json:"formats,omitempty"`
	FontFamily string   `json:"font_family,omitempty"`
	Background string   `json:"background,omitempty"`
	PNGScale   float64  `json:"png_scale,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	validated bool `json:"-"`
}

// Inputs are the already-decoded solver values for one run.
type Inputs struct {
	Schedule *schedule.Schedule
	Jobs     []schedule.Job
	Groups   []schedule.MachineGroup
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, json, png, pdf)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults checks fields and applies defaults. Idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidScale, "scale must be positive, got %v", o.Scale)
	}
	if o.Topology == "" {
		o.Topology = gantt.TopologyGroupInstance
	}
	if !gantt.ValidTopologies[o.Topology] {
		return errors.New(errors.ErrCodeInvalidTopology,
			"unknown topology %q (must be group_instance or machine)", o.Topology)
	}
	if o.Geometry == (gantt.Geometry{}) {
		o.Geometry = gantt.DefaultGeometry()
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.PNGScale == 0 {
		o.PNGScale = 2.0
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// LoadInputs reads the schedule and, when paths are given, the jobs and
// machine-group topology files. Jobs and groups are optional enrichment;
// an empty path just yields empty slices.
func LoadInputs(ctx context.Context, schedulePath, jobsPath, groupsPath string) (Inputs, error) {
	var in Inputs

	observability.Pipeline().OnLoadStart(ctx, schedulePath)
	start := time.Now()
	sched, err := schedule.ReadFile(schedulePath)
	if err != nil {
		observability.Pipeline().OnLoadComplete(ctx, schedulePath, 0, time.Since(start), err)
		return in, errors.Wrap(errors.ErrCodeInvalidSchedule, err, "load schedule")
	}
	in.Schedule = sched
	observability.Pipeline().OnLoadComplete(ctx, schedulePath, len(sched.ScheduledOperations), time.Since(start), nil)

	if jobsPath != "" {
		if in.Jobs, err = schedule.ReadJobsFile(jobsPath); err != nil {
			return in, errors.Wrap(errors.ErrCodeInvalidSchedule, err, "load jobs")
		}
	}
	if groupsPath != "" {
		if in.Groups, err = schedule.ReadMachineGroupsFile(groupsPath); err != nil {
			return in, errors.Wrap(errors.ErrCodeInvalidSchedule, err, "load machine groups")
		}
	}
	return in, nil
}
