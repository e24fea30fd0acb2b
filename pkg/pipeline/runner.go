package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/schedkit/schedkit/pkg/errors"
	"github.com/schedkit/schedkit/pkg/gantt"
	"github.com/schedkit/schedkit/pkg/gantt/sink"
	"github.com/schedkit/schedkit/pkg/observability"
)

// Runner executes the layout and render stages.
type Runner struct {
	logger *log.Logger
}

// NewRunner creates a pipeline runner. A nil logger disables logging.
func NewRunner(logger *log.Logger) *Runner {
	return &Runner{logger: logger}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RenderID uniquely identifies this run; it is embedded in JSON
	// artifacts so outputs of one run can be correlated.
	RenderID string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// ContentWidth and ContentHeight are the chart extent in pixels.
	ContentWidth  float64
	ContentHeight float64

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Operations   int
	CommandCount int
	SkippedOps   int
	LayoutTime   time.Duration
	RenderTime   time.Duration
}

// Execute runs layout and render over already-loaded inputs. Empty input
// produces an empty chart, not an error; only invalid options fail.
func (r *Runner) Execute(ctx context.Context, in Inputs, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := r.logger
	if logger == nil {
		logger = opts.Logger
	}

	res := &Result{
		RenderID:  uuid.NewString(),
		Artifacts: make(map[string][]byte, len(opts.Formats)),
	}

	// Layout
	opCount := 0
	if in.Schedule != nil {
		opCount = len(in.Schedule.ScheduledOperations)
	}
	observability.Pipeline().OnLayoutStart(ctx, string(opts.Topology), opCount)
	start := time.Now()
	session := gantt.NewSession(
		gantt.WithGeometry(opts.Geometry),
		gantt.WithTopology(opts.Topology),
		gantt.WithTimeScale(opts.Scale),
		gantt.WithGridLines(!opts.NoGrid),
		paletteOption(opts.Palette),
	)
	session.DisplaySchedule(in.Schedule, in.Jobs, in.Groups)
	res.Stats.LayoutTime = time.Since(start)

	cmds := session.Commands()
	res.ContentWidth, res.ContentHeight = session.ContentSize()
	res.Stats.CommandCount = len(cmds)
	res.Stats.SkippedOps = session.SkippedOperations()
	res.Stats.Operations = opCount
	observability.Pipeline().OnLayoutComplete(ctx, string(opts.Topology), res.Stats.CommandCount, res.Stats.LayoutTime, nil)

	if !session.Populated() {
		logger.Warn("empty schedule, rendering empty chart")
	}
	if res.Stats.SkippedOps > 0 {
		logger.Warn("operations referenced unknown machines and were skipped",
			"skipped", res.Stats.SkippedOps)
	}
	logger.Debug("layout computed",
		"commands", res.Stats.CommandCount,
		"width", res.ContentWidth,
		"height", res.ContentHeight,
		"duration", res.Stats.LayoutTime)

	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "cancelled before render")
	}

	// Render
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	start = time.Now()
	for _, format := range opts.Formats {
		artifact, err := r.render(session, cmds, format, opts, res.RenderID)
		if err != nil {
			observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
			return nil, err
		}
		res.Artifacts[format] = artifact
	}
	res.Stats.RenderTime = time.Since(start)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, res.Stats.RenderTime, nil)

	logger.Debug("artifacts rendered",
		"formats", opts.Formats,
		"duration", res.Stats.RenderTime)

	return res, nil
}

func (r *Runner) render(session *gantt.Session, cmds []gantt.Command, format string, opts Options, renderID string) ([]byte, error) {
	w, h := session.ContentSize()
	svgOpts := []sink.SVGOption{}
	if opts.FontFamily != "" {
		svgOpts = append(svgOpts, sink.WithFontFamily(opts.FontFamily))
	}
	if opts.Background != "" {
		svgOpts = append(svgOpts, sink.WithBackground(opts.Background))
	}

	switch format {
	case FormatSVG:
		return sink.RenderSVG(cmds, w, h, svgOpts...), nil
	case FormatJSON:
		data, err := sink.RenderJSON(cmds, w, h,
			sink.WithJSONRenderID(renderID),
			sink.WithJSONScale(session.TimeScale()),
			sink.WithJSONTopology(string(session.Topology())),
		)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render json")
		}
		return data, nil
	case FormatPNG:
		data, err := sink.RenderPNG(cmds, w, h,
			sink.WithPNGScale(opts.PNGScale),
			sink.WithPNGSVGOptions(svgOpts...),
		)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeUnsupported, err, "render png")
		}
		return data, nil
	case FormatPDF:
		data, err := sink.RenderPDF(cmds, w, h, svgOpts...)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeUnsupported, err, "render pdf")
		}
		return data, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q", format)
	}
}

// paletteOption returns a no-op option for a nil palette so NewSession
// keeps its default.
func paletteOption(p *gantt.Palette) gantt.Option {
	if p == nil {
		return func(*gantt.Session) {}
	}
	return gantt.WithPalette(p)
}
