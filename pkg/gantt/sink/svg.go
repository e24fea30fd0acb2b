package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/schedkit/schedkit/pkg/gantt"
)

const (
	gridStroke    = "#e0e0e0"
	axisTextColor = "#555555"
	rowTextColor  = "#222222"
	blockCorner   = 6.0
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	fontFamily string
	background string
	tooltips   bool
}

// WithFontFamily sets the CSS font-family for all chart text.
func WithFontFamily(f string) SVGOption { return func(r *svgRenderer) { r.fontFamily = f } }

// WithBackground fills the canvas with a solid color before drawing.
func WithBackground(hex string) SVGOption { return func(r *svgRenderer) { r.background = hex } }

// WithoutTooltips omits the hover <title> elements.
func WithoutTooltips() SVGOption { return func(r *svgRenderer) { r.tooltips = false } }

// RenderSVG serializes a command list into an SVG document of the given
// content extent. Commands are drawn in list order.
func RenderSVG(cmds []gantt.Command, width, height float64, opts ...SVGOption) []byte {
	r := svgRenderer{fontFamily: "sans-serif", tooltips: true}
	for _, opt := range opts {
		opt(&r)
	}

	tips := tooltipIndex(cmds)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)

	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
			width, height, r.background)
	}

	for _, c := range cmds {
		switch v := c.(type) {
		case gantt.GridLine:
			r.renderGridLine(&buf, v)
		case gantt.Label:
			r.renderLabel(&buf, v)
		case gantt.Rect:
			r.renderRect(&buf, v, tips)
		case gantt.Tooltip:
			// rendered inline with its rect
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *svgRenderer) renderGridLine(buf *bytes.Buffer, g gantt.GridLine) {
	fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1"/>`+"\n",
		g.X, g.Y1, g.X, g.Y2, gridStroke)
}

func (r *svgRenderer) renderLabel(buf *bytes.Buffer, l gantt.Label) {
	color := l.Color
	if color == "" {
		switch l.Class {
		case gantt.LabelAxis:
			color = axisTextColor
		default:
			color = rowTextColor
		}
	}
	weight := ""
	if l.Bold {
		weight = ` font-weight="bold"`
	}
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-family="%s" font-size="%.0f"%s fill="%s">%s</text>`+"\n",
		l.X, l.Y, r.fontFamily, l.Size, weight, color, escapeXML(l.Text))
}

func (r *svgRenderer) renderRect(buf *bytes.Buffer, rect gantt.Rect, tips map[gantt.Ref]string) {
	fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="%.0f" ry="%.0f" fill="%s" fill-opacity="%.2f" stroke="%s" stroke-width="1.5"`,
		rect.X, rect.Y, rect.W, rect.H, blockCorner, blockCorner,
		rect.Fill, rect.FillOpacity, rect.Stroke)

	text, ok := tips[rect.Ref]
	if r.tooltips && ok {
		fmt.Fprintf(buf, ">\n    <title>%s</title>\n  </rect>\n", escapeXML(text))
		return
	}
	buf.WriteString("/>\n")
}

// tooltipIndex maps operation refs to their hover text so rects can embed
// the tooltip emitted for the same operation.
func tooltipIndex(cmds []gantt.Command) map[gantt.Ref]string {
	tips := make(map[gantt.Ref]string)
	for _, c := range cmds {
		if t, ok := c.(gantt.Tooltip); ok {
			tips[t.Ref] = t.Text
		}
	}
	return tips
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
