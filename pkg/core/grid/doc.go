// Package grid models the horizontal row grid a poster is composed on.
//
// # Overview
//
// A poster is divided into a fixed number of equal-height rows ([Grid]).
// Every text block claims a contiguous, inclusive [RowRange], and collision
// avoidance happens purely at row granularity: two blocks never share a row,
// even when their horizontal extents would not touch.
//
// # Row Pool
//
// A [Pool] holds the rows that are still free during one layout pass. It only
// ever shrinks: after a block is placed its rows are removed with
// [Pool.RemoveRange] before the next block searches for space.
//
// [FindStarts] answers "where can a block of span n start?":
//
//	p := grid.NewPool(32)
//	p.RemoveRange(3, 3)
//	starts := grid.FindStarts(p, 3) // 0 and 4..29
//
// # Sections
//
// [Sections] partitions a set of rows into maximal contiguous runs and chunks
// each run into pieces of bounded length. Sections are the placement unit for
// background rectangles.
package grid
