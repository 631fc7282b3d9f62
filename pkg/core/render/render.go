// Package render defines the drawing capability that poster sinks target and
// the shared helpers they use: colours, rectangles and SVG conversion.
//
// A [Canvas] is deliberately small. Sinks replay a finished poster layout
// onto it in order: clear, texts, rectangles, then the optional grid overlay.
// Fill strategies in the fill subpackage decide how a rectangle is painted.
package render

import (
	"image"
	"image/color"
	"regexp"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/plakat/pkg/errors"
	"github.com/matzehuels/plakat/pkg/fonts"
)

// DefaultColor is the poster colour used when none is given.
const DefaultColor = "#E93036"

// Rect is an axis-aligned rectangle in canvas pixels.
type Rect struct {
	X, Y, W, H float64
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Image converts r to integer image bounds, rounding outward.
func (r Rect) Image() image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(r.X+r.W+0.999999), int(r.Y+r.H+0.999999))
}

// Canvas is the drawing surface a poster is rendered onto. Coordinates are
// in layout pixels; implementations apply their own output scale.
type Canvas interface {
	Clear(c color.Color)
	DrawText(text string, x, y float64, font fonts.Style, size float64, c color.Color) error
	DrawRect(r Rect, c color.Color)
	DrawLine(x1, y1, x2, y2, width float64, c color.Color)
	// DrawImageRegion draws the src region of img stretched over dst.
	DrawImageRegion(img image.Image, dst, src Rect) error
}

// hexColor matches "#rgb" and "#rrggbb". colorful.Hex alone ignores
// trailing digits.
var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ParseColor parses a hex colour such as "#E93036", "#e93036" or "#fff".
func ParseColor(hex string) (color.Color, error) {
	if !hexColor.MatchString(hex) {
		return nil, errors.New(errors.ErrCodeInvalidColor, "invalid colour %q (want #rgb or #rrggbb)", hex)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid colour %q", hex)
	}
	return c, nil
}

// MustParseColor is like ParseColor but panics on malformed input.
// It is meant for package-level constants.
func MustParseColor(hex string) color.Color {
	c, err := ParseColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats c as a lowercase "#rrggbb" string.
func Hex(c color.Color) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}
