package sink

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/disintegration/imaging"

	"github.com/matzehuels/plakat/pkg/core/poster"
	"github.com/matzehuels/plakat/pkg/core/render"
	"github.com/matzehuels/plakat/pkg/fonts"
)

// svgo works in integer user units; the viewBox is ten times the canvas so
// coordinates keep one decimal of precision.
const svgUnits = 10

func u(v float64) int { return int(math.Round(v * svgUnits)) }

type svgCanvas struct {
	svg    *svg.SVG
	width  float64
	height float64
}

func (s *svgCanvas) Clear(c color.Color) {
	s.svg.Rect(0, 0, u(s.width), u(s.height), "fill:"+render.Hex(c))
}

func (s *svgCanvas) DrawText(text string, x, y float64, font fonts.Style, size float64, c color.Color) error {
	s.svg.Text(u(x), u(y), text,
		fmt.Sprintf("font-family:'%s';font-size:%dpx;fill:%s", fonts.FontFamily(font), u(size), render.Hex(c)))
	return nil
}

func (s *svgCanvas) DrawRect(r render.Rect, c color.Color) {
	s.svg.Rect(u(r.X), u(r.Y), u(r.W), u(r.H), "fill:"+render.Hex(c))
}

func (s *svgCanvas) DrawLine(x1, y1, x2, y2, width float64, c color.Color) {
	s.svg.Line(u(x1), u(y1), u(x2), u(y2),
		fmt.Sprintf("stroke:%s;stroke-width:%d", render.Hex(c), u(width)))
}

func (s *svgCanvas) DrawImageRegion(img image.Image, dst, src render.Rect) error {
	region := imaging.Crop(img, src.Image())
	if region.Bounds().Empty() {
		return nil
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, region); err != nil {
		return err
	}
	href := "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
	s.svg.Image(u(dst.X), u(dst.Y), u(dst.W), u(dst.H), href, `preserveAspectRatio="none"`)
	return nil
}

// RenderSVG renders the layout as a standalone SVG document. The fonts used
// by the layout are embedded, so the file renders the same anywhere.
func RenderSVG(l poster.Layout, opts ...Option) ([]byte, error) {
	o := newOptions(opts...)

	var buf bytes.Buffer
	doc := svg.New(&buf)
	doc.Startview(int(math.Ceil(l.Width)), int(math.Ceil(l.Height)), 0, 0, u(l.Width), u(l.Height))
	if css := fontFaceCSS(l); css != "" {
		doc.Style("text/css", css)
	}

	c := &svgCanvas{svg: doc, width: l.Width, height: l.Height}
	if err := draw(l, c, o); err != nil {
		return nil, err
	}
	doc.End()
	return buf.Bytes(), nil
}

// fontFaceCSS declares every font style the layout's texts use.
func fontFaceCSS(l poster.Layout) string {
	var sb strings.Builder
	seen := map[fonts.Style]bool{}
	for _, t := range l.Texts {
		if seen[t.Font] {
			continue
		}
		seen[t.Font] = true
		data := fonts.TTFBase64(t.Font)
		if data == "" {
			continue
		}
		fmt.Fprintf(&sb, "@font-face { font-family: '%s'; src: url(data:font/ttf;base64,%s) format('truetype'); }\n",
			fonts.FontFamily(t.Font), data)
	}
	return sb.String()
}
