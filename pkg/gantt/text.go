package gantt

import (
	"fmt"
	"strings"

	"github.com/schedkit/schedkit/pkg/schedule"
)

// Font sizes in pixels for the chart text roles.
const (
	axisFontSize        = 11.0
	rowFontSize         = 13.0
	blockTitleFontSize  = 11.0
	blockDetailFontSize = 10.0
)

// TextMeasurer reports the rendered width of a text run. The engine only
// compares measured widths against block geometry, so any backend works:
// the heuristic measurer in textmetrics, a freetype face, or a host
// toolkit's own metrics.
type TextMeasurer interface {
	Width(text string, size float64, bold bool) float64
}

// labelFits decides whether the primary in-block label is drawn. The block
// must be wider than the measured label plus the fixed inset; otherwise the
// rectangle renders bare and stays hoverable via its tooltip.
func labelFits(m TextMeasurer, text string, blockWidth, inset float64) bool {
	return m.Width(text, blockTitleFontSize, true) < blockWidth-inset
}

// blockTitle is the primary in-block line and the one measured for fit.
func blockTitle(op schedule.ScheduledOperation) string {
	return "Job: " + op.JobID
}

// blockDetail is the secondary in-block line.
func blockDetail(op schedule.ScheduledOperation) string {
	return "Op: " + op.OperationID
}

// tooltipText builds the fixed-format hover text for one placed operation.
// The machine line shows the resolved group name with a 1-based instance
// number under the group topology, or the raw machine id otherwise.
func tooltipText(op schedule.ScheduledOperation, job *schedule.Job, row Row, topology Topology) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Job ID: %s\n", op.JobID)
	if job != nil && job.Name != "" {
		fmt.Fprintf(&b, "Job Name: %s\n", job.Name)
	}
	fmt.Fprintf(&b, "Operation ID: %s\n", op.OperationID)
	if topology == TopologyGroupInstance {
		name := row.Label
		if i := strings.LastIndex(name, "-"); i > 0 {
			name = name[:i]
		}
		fmt.Fprintf(&b, "Machine: %s #%d\n", name, row.Instance+1)
	} else {
		fmt.Fprintf(&b, "Machine ID: %s\n", op.MachineID)
	}
	fmt.Fprintf(&b, "\nStart Time: %d\nEnd Time: %d\nDuration: %d",
		op.StartTime, op.EndTime, op.Duration())
	return b.String()
}
