package gantt

// Geometry holds the fixed pixel-space constants of the chart. Time values
// are integers in solver units; everything here is floating-point pixels.
type Geometry struct {
	// TimeScale is the default horizontal scale in pixels per time unit.
	// Sessions may override it at runtime via SetTimeScale.
	TimeScale float64

	// RowHeight is the full height of one machine lane.
	RowHeight float64

	// HeaderWidth reserves space on the left for row labels.
	HeaderWidth float64

	// Padding is the outer margin on all four sides.
	Padding float64

	// TimeAxisHeight reserves space at the top for tick labels.
	TimeAxisHeight float64

	// BlockVPad is the vertical inset of a block within its row, applied
	// top and bottom.
	BlockVPad float64

	// LabelInset is the horizontal slack a block must have beyond its
	// primary label's measured width before the label is drawn in-block.
	LabelInset float64

	// OverlapGap is the minimum pixel gap enforced between consecutive
	// blocks on one row under the machine topology.
	OverlapGap float64
}

// DefaultGeometry returns the chart constants used by the reference
// frontend.
func DefaultGeometry() Geometry {
	return Geometry{
		TimeScale:      50.0,
		RowHeight:      70.0,
		HeaderWidth:    120.0,
		Padding:        25.0,
		TimeAxisHeight: 30.0,
		BlockVPad:      8.0,
		LabelInset:     16.0,
		OverlapGap:     4.0,
	}
}

// originX returns the pixel x of time zero.
func (g Geometry) originX() float64 {
	return g.HeaderWidth + g.Padding
}

// rowY returns the pixel y of the top edge of row index i.
func (g Geometry) rowY(i int) float64 {
	return g.Padding + g.TimeAxisHeight + float64(i)*g.RowHeight
}

// ContentSize returns the total canvas extent for the given makespan,
// scale, and row count. Hosts use it to size scroll viewports.
func (g Geometry) ContentSize(makespan int, scale float64, rows int) (w, h float64) {
	w = g.HeaderWidth + float64(makespan)*scale + 2*g.Padding
	h = g.TimeAxisHeight + float64(rows)*g.RowHeight + 2*g.Padding
	return w, h
}
