package sink

import (
	"image/color"

	"github.com/matzehuels/plakat/pkg/core/poster"
	"github.com/matzehuels/plakat/pkg/core/render"
	"github.com/matzehuels/plakat/pkg/core/render/fill"
	"github.com/matzehuels/plakat/pkg/errors"
)

var gridColor = color.NRGBA{R: 0x99, G: 0x99, B: 0x99, A: 0xff}

// Option configures rendering.
type Option func(*options)

type options struct {
	fill       fill.Fill
	color      color.Color
	background color.Color
	grid       bool
	scale      float64
}

func newOptions(opts ...Option) options {
	o := options{
		fill:       fill.Flat{},
		color:      render.MustParseColor(render.DefaultColor),
		background: color.White,
		scale:      2,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.scale <= 0 {
		o.scale = 1
	}
	return o
}

// WithFill sets how background rectangles are painted (default flat colour).
func WithFill(f fill.Fill) Option {
	return func(o *options) {
		if f != nil {
			o.fill = f
		}
	}
}

// WithColor sets the poster colour used for text and flat rectangles.
func WithColor(c color.Color) Option {
	return func(o *options) {
		if c != nil {
			o.color = c
		}
	}
}

// WithBackground sets the canvas colour (default white).
func WithBackground(c color.Color) Option {
	return func(o *options) {
		if c != nil {
			o.background = c
		}
	}
}

// WithGrid draws a line at every row boundary on top of the poster.
func WithGrid(show bool) Option { return func(o *options) { o.grid = show } }

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) Option { return func(o *options) { o.scale = s } }

// Draw replays l onto c.
func Draw(l poster.Layout, c render.Canvas, opts ...Option) error {
	return draw(l, c, newOptions(opts...))
}

func draw(l poster.Layout, c render.Canvas, o options) error {
	c.Clear(o.background)

	for _, t := range l.Texts {
		if err := c.DrawText(t.Text, t.X, t.Y, t.Font, t.Size, o.color); err != nil {
			return errors.Wrap(errors.ErrCodeRenderFailed, err, "draw %s text", t.Element)
		}
	}

	for _, r := range l.Rects {
		dst := render.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
		if err := o.fill.Paint(c, dst, o.color); err != nil {
			return errors.Wrap(errors.ErrCodeRenderFailed, err, "paint %s rect", r.Role)
		}
	}

	if o.grid {
		for row := 0; row <= l.Grid.Rows; row++ {
			y := l.Grid.Y(row)
			c.DrawLine(0, y, l.Width, y, 1, gridColor)
		}
	}
	return nil
}
