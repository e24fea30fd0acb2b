// Package sink provides output renderers for the layout engine's draw
// commands.
//
// # Overview
//
// A "sink" consumes the immutable command list a [gantt.Session] emits and
// produces a concrete artifact. The engine computes geometry once; sinks
// only serialize it, so every format shows the identical chart:
//
//   - SVG: vector output with hover tooltips
//   - JSON: command-list export for external tools and round-tripping
//   - PNG: raster output (requires rsvg-convert)
//   - PDF: print output (requires rsvg-convert)
//
// Basic usage:
//
//	s := gantt.NewSession()
//	s.DisplaySchedule(sched, jobs, groups)
//	w, h := s.ContentSize()
//	svg := sink.RenderSVG(s.Commands(), w, h)
//
// Command order is paint order; sinks must not re-sort rectangles, since
// schedule order decides which block wins on degenerate overlaps.
//
// [gantt.Session]: github.com/schedkit/schedkit/pkg/gantt
package sink
