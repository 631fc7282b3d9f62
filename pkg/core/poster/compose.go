package poster

import (
	"github.com/matzehuels/plakat/pkg/core/grid"
	"github.com/matzehuels/plakat/pkg/core/random"
)

// sectionLength is the maximum number of rows in a background section.
const sectionLength = 3

// IntersectionOffset returns the largest X2 among the elements whose rows
// overlap rr, or 0 when none do. Rectangles drawn from this offset never
// cover the text sharing their rows.
func IntersectionOffset(rr grid.RowRange, elements []Element) float64 {
	offset := 0.0
	for _, e := range elements {
		if rr.Overlaps(e.Rows()) {
			offset = max(offset, e.X2)
		}
	}
	return offset
}

// composeBackground fills a random selection of sections with rectangles.
// Only the title and quote push rectangles to the right; the other blocks'
// rows never appear in a selected section.
func (c *composer) composeBackground(title, quote Element) (Stats, bool) {
	W, H := c.in.Width, c.in.Height
	margin := c.margin()
	column := W / 4

	maxUsed := 0.0
	for _, e := range c.elements {
		maxUsed = max(maxUsed, e.X2)
	}
	bigColumn := W-maxUsed > column+margin && random.FlipCoin(c.src)

	text := []Element{title, quote}
	var usedRows []int
	for _, e := range text {
		usedRows = append(usedRows, e.Rows().Rows()...)
	}
	used := grid.Sections(usedRows, sectionLength)
	free := grid.Sections(c.pool.Rows(), sectionLength)

	nFree := len(free)
	if nFree > 2 {
		nFree = random.RandInt(c.src, nFree-2, nFree)
	}
	selected := random.Sample(c.src, free, nFree)
	selected = append(selected, random.Sample(c.src, used, random.RandInt(c.src, 0, len(used)))...)

	c.logger.Debug("composing background",
		"free_sections", len(free),
		"used_sections", len(used),
		"selected", len(selected),
		"big_column", bigColumn)

	for _, s := range selected {
		split := bigColumn || random.FlipCoin(c.src)
		offset := IntersectionOffset(s.Range(), text)
		y := c.grid.Y(s.StartRow)
		h := c.grid.Height(s.Length)
		if split {
			c.addRect(RoleSection, offset, y, W-offset-(column+margin), h)
			c.addRect(RoleColumn, W-column, y, column, h)
		} else {
			c.addRect(RoleSection, offset, y, W-offset, h)
		}
	}
	if bigColumn {
		c.addRect(RoleBigColumn, W-column, 0, column, H)
	}

	return Stats{
		FreeRows:     c.pool.Len(),
		FreeSections: len(free),
		UsedSections: len(used),
		Selected:     len(selected),
	}, bigColumn
}
