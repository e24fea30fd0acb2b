package gantt

import (
	"strconv"

	"github.com/schedkit/schedkit/pkg/gantt/textmetrics"
	"github.com/schedkit/schedkit/pkg/schedule"
)

// Topology selects how machine rows are derived. The two variants exist in
// the field with different upstream data shapes; which one applies is a
// deployment choice, not something the engine reconciles at runtime.
type Topology string

const (
	// TopologyGroupInstance unrolls each machine group into one row per
	// instance, addressed as "<groupID>_<index>".
	TopologyGroupInstance Topology = "group_instance"

	// TopologyMachine uses one row per raw machine id and enables the
	// anti-overlap clamp for blocks sharing a row.
	TopologyMachine Topology = "machine"
)

// ValidTopologies is the set of accepted topology names.
var ValidTopologies = map[Topology]bool{
	TopologyGroupInstance: true,
	TopologyMachine:       true,
}

// Option configures a Session.
type Option func(*Session)

// WithGeometry overrides the chart constants.
func WithGeometry(g Geometry) Option { return func(s *Session) { s.geo = g } }

// WithTopology selects the row derivation variant.
func WithTopology(t Topology) Option { return func(s *Session) { s.topology = t } }

// WithMeasurer replaces the text measurement backend used for the
// label-fit decision and axis label centering.
func WithMeasurer(m TextMeasurer) Option { return func(s *Session) { s.measure = m } }

// WithPalette replaces the job color palette.
func WithPalette(p *Palette) Option { return func(s *Session) { s.palette = p } }

// WithTimeScale sets the initial horizontal scale in pixels per time unit.
func WithTimeScale(scale float64) Option {
	return func(s *Session) {
		if scale > 0 {
			s.scale = scale
		}
	}
}

// WithGridLines toggles the faint vertical rules at axis ticks.
func WithGridLines(enabled bool) Option { return func(s *Session) { s.grid = enabled } }

// Session is one layout engine instance: it owns the current draw-command
// list and the job color cache, and nothing else. Layout is a pure function
// of the borrowed inputs plus that cache; calls must be serialized by the
// host (no internal locking).
type Session struct {
	geo      Geometry
	scale    float64
	topology Topology
	measure  TextMeasurer
	palette  *Palette
	grid     bool

	// inputs held for SetTimeScale re-layout; borrowed, never mutated
	schedule *schedule.Schedule
	jobs     []schedule.Job
	groups   []schedule.MachineGroup

	commands  []Command
	contentW  float64
	contentH  float64
	skipped   int
	populated bool
}

// NewSession creates a layout session with the reference geometry, the
// built-in palette, the heuristic text measurer, grid lines on, and the
// group-instance topology.
func NewSession(opts ...Option) *Session {
	s := &Session{
		geo:      DefaultGeometry(),
		topology: TopologyGroupInstance,
		measure:  textmetrics.Heuristic{},
		palette:  DefaultPalette(),
		grid:     true,
	}
	s.scale = s.geo.TimeScale
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DisplaySchedule lays out one solved schedule. A nil schedule, a schedule
// without operations, or (under the group topology) an empty group list
// clears the session instead; rendering nothing is the recovery for empty
// input, never an error.
//
// The previous call's draw commands are discarded, but the color cache is
// kept so re-renders of schedules sharing job ids stay color-stable.
func (s *Session) DisplaySchedule(sched *schedule.Schedule, jobs []schedule.Job, groups []schedule.MachineGroup) {
	if sched == nil || len(sched.ScheduledOperations) == 0 {
		s.Clear()
		return
	}
	if s.topology == TopologyGroupInstance && len(groups) == 0 {
		s.Clear()
		return
	}

	s.schedule = sched
	s.jobs = jobs
	s.groups = groups
	s.layout()
}

// Clear discards all draw commands, resets the color assignment, and
// returns the session to the empty state.
func (s *Session) Clear() {
	s.commands = nil
	s.contentW, s.contentH = 0, 0
	s.skipped = 0
	s.populated = false
	s.schedule = nil
	s.jobs = nil
	s.groups = nil
	s.palette.Reset()
}

// SetTimeScale changes the horizontal scale and, when content is populated,
// re-lays out the held schedule at the new scale. Non-positive factors are
// ignored. No solver round-trip happens; this is a pure re-layout.
func (s *Session) SetTimeScale(factor float64) {
	if factor <= 0 {
		return
	}
	s.scale = factor
	if s.populated {
		s.layout()
	}
}

// TimeScale returns the current horizontal scale.
func (s *Session) TimeScale() float64 {
	return s.scale
}

// Commands returns the current draw-command list in paint order. The slice
// is owned by the session and replaced wholesale on the next layout.
func (s *Session) Commands() []Command {
	return s.commands
}

// ContentSize returns the total canvas extent of the current layout, for
// scroll-viewport sizing. Zero when empty.
func (s *Session) ContentSize() (w, h float64) {
	return s.contentW, s.contentH
}

// Populated reports whether the session holds a rendered layout.
func (s *Session) Populated() bool {
	return s.populated
}

// SkippedOperations returns how many operations of the last layout were
// dropped because they referenced unknown machine instances.
func (s *Session) SkippedOperations() int {
	return s.skipped
}

// Topology returns the active row topology.
func (s *Session) Topology() Topology {
	return s.topology
}

// layout recomputes the full command list from the held inputs.
func (s *Session) layout() {
	s.commands = s.commands[:0]
	s.skipped = 0

	var rows RowModel
	if s.topology == TopologyMachine {
		rows = BuildMachineRows(s.schedule.ScheduledOperations)
	} else {
		rows = BuildGroupRows(s.groups)
	}
	if rows.Len() == 0 {
		s.Clear()
		return
	}

	makespan := s.schedule.EffectiveMakespan()

	s.emitAxis(makespan, rows)
	s.emitRowLabels(rows)
	s.emitBlocks(rows)

	s.contentW, s.contentH = s.geo.ContentSize(makespan, s.scale, rows.Len())
	s.populated = true
}

// emitAxis appends grid lines and tick labels for the time axis.
func (s *Session) emitAxis(makespan int, rows RowModel) {
	ticks := PlanTicks(s.geo, makespan, s.scale)

	if s.grid {
		y1 := s.geo.rowY(0)
		y2 := s.geo.rowY(rows.Len())
		for _, t := range ticks {
			s.commands = append(s.commands, GridLine{X: t.X, Y1: y1, Y2: y2, Tick: t.Value})
		}
	}

	baseline := s.geo.Padding + axisFontSize
	for _, t := range ticks {
		text := strconv.Itoa(t.Value)
		s.commands = append(s.commands, Label{
			X:     t.X - s.measure.Width(text, axisFontSize, false)/2,
			Y:     baseline,
			Text:  text,
			Class: LabelAxis,
			Size:  axisFontSize,
			Tick:  t.Value,
		})
	}
}

// emitRowLabels appends the machine header labels down the left edge.
func (s *Session) emitRowLabels(rows RowModel) {
	for i, r := range rows.Rows() {
		s.commands = append(s.commands, Label{
			X:     s.geo.Padding,
			Y:     s.geo.rowY(i) + s.geo.RowHeight/2 + rowFontSize/2,
			Text:  r.Label,
			Class: LabelRow,
			Size:  rowFontSize,
		})
	}
}
