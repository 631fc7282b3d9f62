package sink

import (
	"github.com/matzehuels/plakat/pkg/core/poster"
	"github.com/matzehuels/plakat/pkg/core/render"
)

// RenderPDF renders the layout as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(l poster.Layout, opts ...Option) ([]byte, error) {
	svg, err := RenderSVG(l, opts...)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}
