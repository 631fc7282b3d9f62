package sink

import (
	"bytes"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/matzehuels/plakat/pkg/core/poster"
	"github.com/matzehuels/plakat/pkg/core/render"
	"github.com/matzehuels/plakat/pkg/core/typeset"
	"github.com/matzehuels/plakat/pkg/errors"
	"github.com/matzehuels/plakat/pkg/fonts"
)

// pngCanvas draws onto a gg context, multiplying every coordinate by scale.
// Font faces are cached per canvas because gg uses them without locking.
type pngCanvas struct {
	dc    *gg.Context
	scale float64
	faces *typeset.Metrics
}

func newPNGCanvas(w, h, scale float64) *pngCanvas {
	return &pngCanvas{
		dc:    gg.NewContext(int(math.Ceil(w*scale)), int(math.Ceil(h*scale))),
		scale: scale,
		faces: typeset.New(),
	}
}

func (p *pngCanvas) Clear(c color.Color) {
	p.dc.SetColor(c)
	p.dc.Clear()
}

func (p *pngCanvas) DrawText(text string, x, y float64, font fonts.Style, size float64, c color.Color) error {
	face, err := p.faces.Face(font, size*p.scale)
	if err != nil {
		return err
	}
	p.dc.SetFontFace(face)
	p.dc.SetColor(c)
	p.dc.DrawString(text, x*p.scale, y*p.scale)
	return nil
}

func (p *pngCanvas) DrawRect(r render.Rect, c color.Color) {
	p.dc.SetColor(c)
	p.dc.DrawRectangle(r.X*p.scale, r.Y*p.scale, r.W*p.scale, r.H*p.scale)
	p.dc.Fill()
}

func (p *pngCanvas) DrawLine(x1, y1, x2, y2, width float64, c color.Color) {
	p.dc.SetColor(c)
	p.dc.SetLineWidth(width * p.scale)
	p.dc.DrawLine(x1*p.scale, y1*p.scale, x2*p.scale, y2*p.scale)
	p.dc.Stroke()
}

func (p *pngCanvas) DrawImageRegion(img image.Image, dst, src render.Rect) error {
	w := int(math.Round(dst.W * p.scale))
	h := int(math.Round(dst.H * p.scale))
	if w < 1 || h < 1 {
		return nil
	}
	region := imaging.Crop(img, src.Image())
	if region.Bounds().Empty() {
		return nil
	}
	scaled := imaging.Resize(region, w, h, imaging.Lanczos)
	p.dc.DrawImage(scaled, int(math.Round(dst.X*p.scale)), int(math.Round(dst.Y*p.scale)))
	return nil
}

// RenderPNG renders the layout as a PNG image at the configured scale.
func RenderPNG(l poster.Layout, opts ...Option) ([]byte, error) {
	o := newOptions(opts...)
	c := newPNGCanvas(l.Width, l.Height, o.scale)
	if err := draw(l, c, o); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := c.dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "encode png")
	}
	return buf.Bytes(), nil
}
