// Package textmetrics provides text-width measurement backends for the
// layout engine's label-fit decision.
//
// The engine only ever compares a measured width against block geometry,
// so two implementations cover all hosts:
//
//   - [Heuristic]: a per-character ratio estimate with no font files.
//     Deterministic everywhere; the default for layout and tests.
//   - [Face]: real glyph metrics from a TrueType font discovered on the
//     host system, for hosts that rasterize the chart themselves.
package textmetrics

import (
	"fmt"
	"os"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// Character width ratios relative to font size. The regular ratio matches
// the average advance of common UI fonts at small sizes.
const (
	charWidthRatio = 0.55
	boldWidthRatio = 0.60
)

// Heuristic estimates text width as size multiplied by a fixed
// per-character ratio. It requires no font files and is deterministic on
// every platform.
type Heuristic struct{}

// Width implements the measurer contract.
func (Heuristic) Width(text string, size float64, bold bool) float64 {
	ratio := charWidthRatio
	if bold {
		ratio = boldWidthRatio
	}
	return float64(len([]rune(text))) * size * ratio
}

// Face measures text with real glyph metrics from a parsed TrueType font.
type Face struct {
	font *truetype.Font
}

// LoadFace locates a font by name via the system font directories and
// parses it. Typical names: "DejaVuSans.ttf", "Arial.ttf".
func LoadFace(name string) (*Face, error) {
	path, err := findfont.Find(name)
	if err != nil {
		return nil, fmt.Errorf("find font %q: %w", name, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", path, err)
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	return &Face{font: f}, nil
}

// Width returns the advance width of text at the given size in pixels.
// Bold is approximated by widening the regular advance when no bold face
// is available; the few percent error is well inside the label-fit slack.
func (f *Face) Width(text string, size float64, bold bool) float64 {
	face := truetype.NewFace(f.font, &truetype.Options{Size: size, DPI: 72})
	defer face.Close()
	adv := font.MeasureString(face, text)
	w := float64(adv) / 64.0
	if bold {
		w *= boldWidthRatio / charWidthRatio
	}
	return w
}
