// Package pkg provides the libraries behind plakat, a generator of
// randomized quote posters.
//
// # Overview
//
// A poster is a stack of horizontal grid rows. A few text blocks (an
// episode tag or a speaker caption, a title and a quotation) are placed on
// free rows so that no two blocks share a row, then the remaining rows are
// filled with randomized rectangles of colour or a tinted photo.
//
// # Architecture
//
//	Input (texts, canvas, variant)
//	         ↓
//	    [core/poster] compose on a [core/grid] with [core/random] choices
//	         ↓
//	    Layout (elements, text ops, rect ops)
//	         ↓
//	    [core/render/sink] draw via [core/render/fill]
//	         ↓
//	    SVG/PNG/PDF/JSON output
//
// [pipeline] ties the stages together with defaults, validation, presets
// and seed retries. [io] reads inputs and saved layouts and writes the
// rendered files.
//
// # Quick Start
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Episode: "S4:E1",
//	    Title:   "Unge hjerter",
//	    Quote:   "Jeg vil bare ikke spise noget der er blevet tøet op",
//	    Formats: []string{"svg", "png"},
//	})
//
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/plakat/pkg/pipeline
// [io]: https://pkg.go.dev/github.com/matzehuels/plakat/pkg/io
//
// [core/poster]: https://pkg.go.dev/github.com/matzehuels/plakat/pkg/core/poster
// [core/grid]: https://pkg.go.dev/github.com/matzehuels/plakat/pkg/core/grid
// [core/random]: https://pkg.go.dev/github.com/matzehuels/plakat/pkg/core/random
// [core/render/sink]: https://pkg.go.dev/github.com/matzehuels/plakat/pkg/core/render/sink
// [core/render/fill]: https://pkg.go.dev/github.com/matzehuels/plakat/pkg/core/render/fill
package pkg
