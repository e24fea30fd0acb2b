package gantt

import (
	"github.com/schedkit/schedkit/pkg/schedule"
)

// emitBlocks places one rectangle, an always-attached tooltip, and (when
// it fits) a two-line label for every scheduled operation. Operations are
// processed in schedule order, which is also the paint order for
// degenerate overlapping inputs.
func (s *Session) emitBlocks(rows RowModel) {
	// Rightmost pixel reached per row, used by the machine-topology
	// anti-overlap clamp. Upstream time-unit rounding can make two
	// operations on one machine overlap visually; the clamp shifts the
	// later block rightward without ever reordering.
	lastXEnd := make(map[int]float64)

	for _, op := range s.schedule.ScheduledOperations {
		rowIdx, ok := rows.Index(op.MachineID)
		if !ok {
			// Stale or inconsistent solver data; drop the operation's
			// draw commands rather than fail the whole chart.
			s.skipped++
			continue
		}
		row := rows.Row(rowIdx)

		x := s.geo.originX() + float64(op.StartTime)*s.scale
		y := s.geo.rowY(rowIdx) + s.geo.BlockVPad
		w := float64(op.Duration()) * s.scale
		if w < 1.0 {
			// Zero-duration and sub-pixel operations stay visible and
			// hoverable.
			w = 1.0
		}
		h := s.geo.RowHeight - 2*s.geo.BlockVPad

		if s.topology == TopologyMachine {
			if end, seen := lastXEnd[rowIdx]; seen && x < end {
				x = end
			}
			lastXEnd[rowIdx] = x + w + s.geo.OverlapGap
		}

		ref := Ref{JobID: op.JobID, OperationID: op.OperationID, MachineKey: op.MachineID}
		color := s.palette.ColorFor(op.JobID)
		fill, opacity := BlockFill(color)

		s.commands = append(s.commands, Rect{
			X: x, Y: y, W: w, H: h,
			Fill:        fill,
			FillOpacity: opacity,
			Stroke:      BlockStroke(color),
			Row:         rowIdx,
			Ref:         ref,
		})

		s.commands = append(s.commands, Tooltip{
			Text: tooltipText(op, schedule.JobByID(s.jobs, op.JobID), row, s.topology),
			Ref:  ref,
		})

		title := blockTitle(op)
		if labelFits(s.measure, title, w, s.geo.LabelInset) {
			titleY := y + h/2 - 2
			s.commands = append(s.commands,
				Label{
					X: x + 8, Y: titleY,
					Text:  title,
					Class: LabelBlockTitle,
					Size:  blockTitleFontSize,
					Bold:  true,
					Color: "#ffffff",
					Ref:   ref,
				},
				Label{
					X: x + 8, Y: titleY + blockDetailFontSize + 2,
					Text:  blockDetail(op),
					Class: LabelBlockDetail,
					Size:  blockDetailFontSize,
					Color: "#ffffff",
					Ref:   ref,
				},
			)
		}
	}
}
