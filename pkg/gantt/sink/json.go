package sink

import (
	"encoding/json"

	"github.com/schedkit/schedkit/pkg/gantt"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	renderID string
	scale    float64
	topology string
}

// WithJSONRenderID records the pipeline's render id in the output so
// artifacts produced by one run can be correlated.
func WithJSONRenderID(id string) JSONOption { return func(r *jsonRenderer) { r.renderID = id } }

// WithJSONScale records the horizontal scale the layout was computed at.
func WithJSONScale(scale float64) JSONOption { return func(r *jsonRenderer) { r.scale = scale } }

// WithJSONTopology records the row topology name.
func WithJSONTopology(t string) JSONOption { return func(r *jsonRenderer) { r.topology = t } }

type jsonOutput struct {
	RenderID string        `json:"render_id,omitempty"`
	Width    float64       `json:"width"`
	Height   float64       `json:"height"`
	Scale    float64       `json:"scale,omitempty"`
	Topology string        `json:"topology,omitempty"`
	Commands []jsonCommand `json:"commands"`
}

// jsonCommand flattens the command union; Type discriminates which fields
// are populated.
type jsonCommand struct {
	Type string `json:"type"`

	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Y1     float64 `json:"y1,omitempty"`
	Y2     float64 `json:"y2,omitempty"`

	Fill        string  `json:"fill,omitempty"`
	FillOpacity float64 `json:"fill_opacity,omitempty"`
	Stroke      string  `json:"stroke,omitempty"`
	Color       string  `json:"color,omitempty"`

	Text  string  `json:"text,omitempty"`
	Class string  `json:"class,omitempty"`
	Size  float64 `json:"size,omitempty"`
	Bold  bool    `json:"bold,omitempty"`

	Row  *int `json:"row,omitempty"`
	Tick *int `json:"tick,omitempty"`

	JobID       string `json:"job_id,omitempty"`
	OperationID string `json:"operation_id,omitempty"`
	MachineKey  string `json:"machine_key,omitempty"`
}

// RenderJSON exports a command list as a pretty-printed JSON document.
// This is the primary interchange format: external tools can consume the
// already-positioned primitives without re-implementing the layout rules.
// The command order in the output is the paint order.
func RenderJSON(cmds []gantt.Command, width, height float64, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		RenderID: r.renderID,
		Width:    width,
		Height:   height,
		Scale:    r.scale,
		Topology: r.topology,
		Commands: make([]jsonCommand, 0, len(cmds)),
	}

	for _, c := range cmds {
		out.Commands = append(out.Commands, encodeCommand(c))
	}

	return json.MarshalIndent(out, "", "  ")
}

func encodeCommand(c gantt.Command) jsonCommand {
	switch v := c.(type) {
	case gantt.Rect:
		row := v.Row
		return jsonCommand{
			Type: "rect",
			X:    v.X, Y: v.Y, Width: v.W, Height: v.H,
			Fill: v.Fill, FillOpacity: v.FillOpacity, Stroke: v.Stroke,
			Row:         &row,
			JobID:       v.Ref.JobID,
			OperationID: v.Ref.OperationID,
			MachineKey:  v.Ref.MachineKey,
		}
	case gantt.Label:
		cmd := jsonCommand{
			Type: "label",
			X:    v.X, Y: v.Y,
			Text: v.Text, Class: string(v.Class), Size: v.Size, Bold: v.Bold,
			Color:       v.Color,
			JobID:       v.Ref.JobID,
			OperationID: v.Ref.OperationID,
			MachineKey:  v.Ref.MachineKey,
		}
		if v.Class == gantt.LabelAxis {
			tick := v.Tick
			cmd.Tick = &tick
		}
		return cmd
	case gantt.GridLine:
		tick := v.Tick
		return jsonCommand{
			Type: "grid_line",
			X:    v.X, Y1: v.Y1, Y2: v.Y2,
			Tick: &tick,
		}
	case gantt.Tooltip:
		return jsonCommand{
			Type:        "tooltip",
			Text:        v.Text,
			JobID:       v.Ref.JobID,
			OperationID: v.Ref.OperationID,
			MachineKey:  v.Ref.MachineKey,
		}
	default:
		return jsonCommand{Type: "unknown"}
	}
}
