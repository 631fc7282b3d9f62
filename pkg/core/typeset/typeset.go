// Package typeset measures and line-breaks poster text.
//
// [Metrics] measures with the embedded TrueType fonts and is what the CLI and
// pipeline use. [Approx] estimates widths from a fixed per-character ratio
// and needs no font data; it is handy when exact glyph metrics do not matter.
package typeset

import (
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/matzehuels/plakat/pkg/fonts"
)

type faceKey struct {
	style fonts.Style
	size  float64
}

// Metrics measures text using TrueType faces. Faces are created lazily and
// cached per (style, size); Metrics is safe for concurrent use.
type Metrics struct {
	mu    sync.Mutex
	faces map[faceKey]font.Face
}

// New returns a Metrics backed by the embedded fonts.
func New() *Metrics {
	return &Metrics{faces: make(map[faceKey]font.Face)}
}

// Face returns a font face for style at size pixels (72 DPI, so points equal
// pixels).
func (m *Metrics) Face(style fonts.Style, size float64) (font.Face, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := faceKey{style, size}
	if f, ok := m.faces[key]; ok {
		return f, nil
	}
	ttf, err := fonts.Font(style)
	if err != nil {
		return nil, err
	}
	f := truetype.NewFace(ttf, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingNone})
	m.faces[key] = f
	return f, nil
}

// MeasureWidth returns the advance width of text. When the face cannot be
// loaded it falls back to the [Approx] estimate.
func (m *Metrics) MeasureWidth(text string, style fonts.Style, size float64) float64 {
	f, err := m.Face(style, size)
	if err != nil {
		return Approx{}.MeasureWidth(text, style, size)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return fixedToFloat(font.MeasureString(f, text))
}

// LineBreak greedily breaks text into lines no wider than maxWidth.
func (m *Metrics) LineBreak(text string, style fonts.Style, size, maxWidth float64) []string {
	return Wrap(text, maxWidth, func(s string) float64 {
		return m.MeasureWidth(s, style, size)
	})
}

// Ascent returns the distance from the baseline to the top of the face.
func (m *Metrics) Ascent(style fonts.Style, size float64) float64 {
	f, err := m.Face(style, size)
	if err != nil {
		return Approx{}.Ascent(style, size)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return fixedToFloat(f.Metrics().Ascent)
}

// Descent returns the distance from the baseline to the bottom of the face.
func (m *Metrics) Descent(style fonts.Style, size float64) float64 {
	f, err := m.Face(style, size)
	if err != nil {
		return Approx{}.Descent(style, size)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return fixedToFloat(f.Metrics().Descent)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// Wrap breaks text on whitespace so that every line measures at most
// maxWidth. A single word wider than maxWidth is kept on its own line.
// Empty text yields no lines.
func Wrap(text string, maxWidth float64, measure func(string) float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	current := words[0]
	for _, w := range words[1:] {
		candidate := current + " " + w
		if measure(candidate) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = w
	}
	return append(lines, current)
}
