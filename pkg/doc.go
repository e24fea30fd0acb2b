// Package pkg provides the core libraries for schedkit Gantt chart rendering.
//
// # Overview
//
// Schedkit transforms solved job-shop schedules into Gantt chart
// visualizations where each machine gets a row and each scheduled operation
// a colored block. The pkg directory is organized into five main areas:
//
//  1. [schedule] - Solver-facing data model (schedules, jobs, machine groups)
//  2. [gantt] - Layout engine (rows, axis, blocks, labels, color palette)
//  3. [gantt/sink] - Output formats (SVG, JSON, PDF, PNG)
//  4. [pipeline] - Orchestration (load → layout → render)
//  5. [config] - TOML configuration for geometry and palette overrides
//
// # Architecture
//
// The typical data flow through schedkit:
//
//	Solver output (JSON)
//	         ↓
//	    [schedule] package (decode + derived values)
//	         ↓
//	    [gantt] package (layout session → draw commands)
//	         ↓
//	    [gantt/sink] package (serialize commands)
//	         ↓
//	    SVG/JSON/PDF/PNG output
//
// # Quick Start
//
// Render a schedule to SVG:
//
//	sched, err := schedule.ReadFile("schedule.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	session := gantt.NewSession()
//	session.DisplaySchedule(sched, jobs, groups)
//	w, h := session.ContentSize()
//	svg := sink.RenderSVG(session.Commands(), w, h)
package pkg
