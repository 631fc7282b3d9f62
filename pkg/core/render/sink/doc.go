// Package sink renders finished poster layouts to output formats.
//
// # Overview
//
// A "sink" replays a [poster.Layout] onto a [render.Canvas] and encodes the
// result. This package provides renderers for:
//
//   - PNG: raster output drawn with gg (scaled, 2x by default)
//   - SVG: vector output with the fonts embedded as @font-face data
//   - PDF: print output (requires rsvg-convert)
//   - JSON: the layout itself, for re-rendering later
//
// Every renderer draws in the same order: background, texts, rectangles,
// then the optional grid overlay. Rectangles are painted by the poster-wide
// [fill.Fill], either the flat poster colour or a tinted image.
//
//	png, err := sink.RenderPNG(layout,
//	    sink.WithColor(red),
//	    sink.WithFill(imageFill),
//	    sink.WithScale(2),
//	)
//
// [Draw] exposes the shared draw sequence for custom canvases.
//
// [poster.Layout]: github.com/matzehuels/plakat/pkg/core/poster.Layout
// [render.Canvas]: github.com/matzehuels/plakat/pkg/core/render.Canvas
// [fill.Fill]: github.com/matzehuels/plakat/pkg/core/render/fill.Fill
package sink
