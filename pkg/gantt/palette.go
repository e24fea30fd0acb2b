package gantt

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// defaultPaletteHex is the fixed job color cycle of the reference frontend.
var defaultPaletteHex = []string{
	"#8ecae6", "#219ebc", "#023047",
	"#ffb703", "#fd9e02", "#fb8500",
	"#e63946", "#a8dadc", "#457b9d",
}

// Palette assigns stable display colors to job ids. The first time a job id
// is seen it receives the next palette entry; later lookups return the
// cached color. Colors cycle once the job count exceeds the palette size,
// an accepted degeneracy rather than an error.
type Palette struct {
	colors []colorful.Color
	byJob  map[string]colorful.Color
	next   int
}

// NewPalette builds a palette from hex color strings. At least one valid
// color is required.
func NewPalette(hexes []string) (*Palette, error) {
	if len(hexes) == 0 {
		return nil, fmt.Errorf("palette requires at least one color")
	}
	colors := make([]colorful.Color, 0, len(hexes))
	for _, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("palette color %q: %w", h, err)
		}
		colors = append(colors, c)
	}
	return &Palette{colors: colors, byJob: make(map[string]colorful.Color)}, nil
}

// DefaultPalette returns the built-in nine-color palette.
func DefaultPalette() *Palette {
	p, err := NewPalette(defaultPaletteHex)
	if err != nil {
		panic(err) // built-in hex values are valid
	}
	return p
}

// ColorFor returns the color assigned to jobID, assigning the next palette
// entry on first sight. Deterministic per session: assignment order follows
// first-encounter order of job ids.
func (p *Palette) ColorFor(jobID string) colorful.Color {
	if c, ok := p.byJob[jobID]; ok {
		return c
	}
	c := p.colors[p.next%len(p.colors)]
	p.next++
	p.byJob[jobID] = c
	return c
}

// Reset drops all assignments and restarts the cycle at palette index 0.
func (p *Palette) Reset() {
	p.byJob = make(map[string]colorful.Color)
	p.next = 0
}

// Size returns the number of colors in the cycle.
func (p *Palette) Size() int {
	return len(p.colors)
}

// BlockFill derives the translucent block fill from a job color: saturation
// scaled by 1.2 (clamped), drawn at 0.7 opacity.
func BlockFill(c colorful.Color) (hex string, opacity float64) {
	h, s, v := c.Hsv()
	s = math.Min(1.0, s*1.2)
	return colorful.Hsv(h, s, v).Hex(), 0.7
}

// BlockStroke derives the block border as a darker shade of the job color.
func BlockStroke(c colorful.Color) string {
	h, s, v := c.Hsv()
	return colorful.Hsv(h, s, v*0.7).Hex()
}
