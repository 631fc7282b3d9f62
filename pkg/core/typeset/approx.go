package typeset

import (
	"unicode/utf8"

	"github.com/matzehuels/plakat/pkg/fonts"
)

const (
	defaultCharWidth = 0.55
	ascentRatio      = 0.93
	descentRatio     = 0.22
)

// Approx estimates text metrics from the character count. CharWidth is the
// advance of one character as a fraction of the font size (default 0.55).
type Approx struct {
	CharWidth float64
}

func (a Approx) charWidth() float64 {
	if a.CharWidth <= 0 {
		return defaultCharWidth
	}
	return a.CharWidth
}

func (a Approx) MeasureWidth(text string, _ fonts.Style, size float64) float64 {
	return float64(utf8.RuneCountInString(text)) * size * a.charWidth()
}

func (a Approx) LineBreak(text string, style fonts.Style, size, maxWidth float64) []string {
	return Wrap(text, maxWidth, func(s string) float64 {
		return a.MeasureWidth(s, style, size)
	})
}

func (a Approx) Ascent(_ fonts.Style, size float64) float64  { return size * ascentRatio }
func (a Approx) Descent(_ fonts.Style, size float64) float64 { return size * descentRatio }
