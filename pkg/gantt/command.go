package gantt

// Ref points a draw command back at the scheduled operation that produced
// it. Commands not tied to an operation (axis labels, grid lines, row
// labels) carry a zero Ref.
type Ref struct {
	JobID       string
	OperationID string
	MachineKey  string
}

// IsZero reports whether the ref is unbound.
func (r Ref) IsZero() bool {
	return r == Ref{}
}

// Command is one toolkit-agnostic draw instruction. The concrete types are
// [Rect], [Label], [GridLine], and [Tooltip]; the list order emitted by a
// session defines paint order.
type Command interface {
	isCommand()
}

// Rect is a filled operation block.
type Rect struct {
	X, Y, W, H  float64
	Fill        string  // fill color, #rrggbb
	FillOpacity float64 // 0..1
	Stroke      string  // border color, darker shade of Fill
	Row         int     // row index the block landed on
	Ref         Ref
}

// LabelClass distinguishes the text roles on the chart.
type LabelClass string

const (
	LabelAxis        LabelClass = "axis"
	LabelRow         LabelClass = "row"
	LabelBlockTitle  LabelClass = "block-title"
	LabelBlockDetail LabelClass = "block-detail"
)

// Label is a positioned text run. X is the left edge except for axis
// labels, which are centered on their tick by the emitting session.
type Label struct {
	X, Y  float64
	Text  string
	Class LabelClass
	Size  float64
	Bold  bool
	Color string // #rrggbb, empty means renderer default
	Tick  int    // tick value, meaningful only for LabelAxis
	Ref   Ref
}

// GridLine is a faint vertical rule at one axis tick, spanning the rows.
type GridLine struct {
	X, Y1, Y2 float64
	Tick      int
}

// Tooltip binds hover text to the block with the same Ref. It is always
// emitted for a placed operation, even when the in-block label did not fit.
type Tooltip struct {
	Text string
	Ref  Ref
}

func (Rect) isCommand()     {}
func (Label) isCommand()    {}
func (GridLine) isCommand() {}
func (Tooltip) isCommand()  {}
