// Package poster composes randomized quote posters on a row grid.
//
// # Overview
//
// [Generate] runs one complete layout pass and returns a [Layout]: a
// description of every text line and background rectangle, in draw order.
// Nothing is drawn here; sinks in the render packages replay the layout onto
// a canvas. Because the description is complete before drawing starts, a
// failed pass has no partial output.
//
// # Placement
//
// Text blocks are placed one at a time onto a shared [grid.Pool] of free
// rows. Each block computes the contiguous row span it needs, picks a random
// start among every structurally valid position ([grid.FindStarts]), and
// removes its rows from the pool before the next block searches. Later
// blocks therefore always see a strictly smaller candidate space.
//
// Two variants are supported:
//
//   - [VariantEpisode]: episode tag, title, quote
//   - [VariantCaption]: caption (the speaker), title, quote
//
// When the quote is too wide to sit beside the title it is wrapped over
// several rows and kept clear of the title (and the caption).
//
// # Background Composition
//
// Once the text is placed, the free rows and the rows of the title and quote
// are partitioned into three-row sections ([grid.Sections]). A random subset
// of each receives a rectangle starting at the [IntersectionOffset] of the
// text sharing its rows, optionally split into a main block and a side
// column. A coin flip may add one full-height column for the whole poster.
//
// # Errors
//
// A block that cannot find enough contiguous free rows fails the pass with
// an [errors.LayoutOverflowError]; text that can never fit its width fails
// with an [errors.ContentTooLargeError] before placement is attempted.
//
// [errors.LayoutOverflowError]: github.com/matzehuels/plakat/pkg/errors.LayoutOverflowError
// [errors.ContentTooLargeError]: github.com/matzehuels/plakat/pkg/errors.ContentTooLargeError
package poster
