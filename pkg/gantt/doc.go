// Package gantt provides the schedule layout engine.
//
// # Overview
//
// Schedkit's visualization is a Gantt chart: one horizontal lane per machine
// instance, one colored block per scheduled operation. This package
// implements the pure transformation from a solved [schedule.Schedule] plus
// resource topology into toolkit-agnostic draw commands:
//
//  1. Rows ([BuildGroupRows], [BuildMachineRows]): Unroll the machine topology into ordered chart lanes.
//  2. Axis ([PlanTicks]): Choose a tick step and place time-axis labels and grid lines.
//  3. Blocks: Resolve each operation to a row and compute its rectangle, color, and labels.
//  4. Commands ([Command]): Emit an immutable list of Rect/Label/GridLine/Tooltip values.
//
// # Usage
//
//	s := gantt.NewSession()
//	s.DisplaySchedule(sched, jobs, groups)
//	w, h := s.ContentSize()
//	for _, cmd := range s.Commands() {
//		// hand off to a sink or UI adapter
//	}
//
// A [Session] owns nothing beyond its current command list and the
// job-to-color cache; schedule data is borrowed read-only for the duration
// of one layout call. Layout is synchronous and single-threaded; hosts
// embedding the engine must serialize calls into one session.
//
// Rendering of the emitted commands lives in [sink]; the engine never
// touches an output surface itself.
//
// [sink]: github.com/schedkit/schedkit/pkg/gantt/sink
package gantt
