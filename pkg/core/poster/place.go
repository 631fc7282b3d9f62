package poster

import (
	"math"
	"strings"

	"github.com/matzehuels/plakat/pkg/core/random"
	"github.com/matzehuels/plakat/pkg/errors"
	"github.com/matzehuels/plakat/pkg/fonts"
)

// placeEpisode stacks the episode tag one word per line in large slanted
// type. Each line advances baseRowSize-1 rows.
func (c *composer) placeEpisode() (Element, error) {
	W := c.in.Width
	rh := c.grid.RowHeight
	words := strings.Fields(strings.ToUpper(c.in.Episode))

	base := random.RandInt(c.src, 3, 6)
	size := float64(base) * rh * 0.8
	font := fonts.HeavySlanted

	widest := 0.0
	for _, w := range words {
		width := c.metrics.MeasureWidth(w, font, size)
		if width+c.margin() > W {
			return Element{}, &errors.ContentTooLargeError{
				Element: string(KindEpisode), Text: w, Width: width, Limit: W - c.margin(),
			}
		}
		widest = max(widest, width)
	}

	span := base*len(words) + 1
	start, err := c.findStart(KindEpisode, c.pool, span)
	if err != nil {
		return Element{}, err
	}

	length := max(W/3, widest) + c.margin()
	el := Element{
		Kind:        KindEpisode,
		StartRow:    start,
		EndRow:      start + len(words)*(base-1),
		BaseRowSize: base,
		X1:          0,
		X2:          length,
		Y:           c.grid.Y(start),
		Length:      length,
		Font:        font,
		FontSize:    size,
		Lines:       words,
	}
	for i, w := range words {
		c.addText(el, w, el.Y+float64((i+1)*(base-1))*rh)
	}
	c.commit(el)
	return el, nil
}

// placeCaption sets the speaker on a single row.
func (c *composer) placeCaption() (Element, error) {
	W := c.in.Width
	rh := c.grid.RowHeight
	text := strings.ToUpper(strings.TrimSpace(c.in.Caption))
	size := rh * 0.8
	font := fonts.Heavy

	width := c.metrics.MeasureWidth(text, font, size)
	if width+c.margin() > W {
		return Element{}, &errors.ContentTooLargeError{
			Element: string(KindCaption), Text: text, Width: width, Limit: W - c.margin(),
		}
	}

	start, err := c.findStart(KindCaption, c.pool, 2)
	if err != nil {
		return Element{}, err
	}

	length := max(W/4, width) + c.margin()
	el := Element{
		Kind:        KindCaption,
		StartRow:    start,
		EndRow:      start + 1,
		BaseRowSize: 1,
		X2:          length,
		Y:           c.grid.Y(start),
		Length:      length,
		Font:        font,
		FontSize:    size,
		Lines:       []string{text},
	}
	c.addText(el, text, el.Y+rh)
	c.commit(el)
	return el, nil
}

// placeTitle sets the title on one line two rows tall.
func (c *composer) placeTitle() (Element, error) {
	W := c.in.Width
	rh := c.grid.RowHeight
	text := strings.ToUpper(strings.TrimSpace(c.in.Title))
	size := rh * 2
	font := fonts.HeavySlanted

	width := c.metrics.MeasureWidth(text, font, size)
	if width+c.margin() > W {
		return Element{}, &errors.ContentTooLargeError{
			Element: string(KindTitle), Text: text, Width: width, Limit: W - c.margin(),
		}
	}

	start, err := c.findStart(KindTitle, c.pool, 3)
	if err != nil {
		return Element{}, err
	}

	length := width + c.margin()
	el := Element{
		Kind:        KindTitle,
		StartRow:    start,
		EndRow:      start + 2,
		BaseRowSize: 2,
		X2:          length,
		Y:           c.grid.Y(start),
		Length:      length,
		Font:        font,
		FontSize:    size,
		Lines:       []string{text},
	}
	c.addText(el, text, el.Y+2*rh)
	c.commit(el)
	return el, nil
}

// placeQuote sets the quotation. A quote that cannot share a row band with
// the title is wrapped and kept off the title's rows, the rows just below
// it, and the caption's rows.
func (c *composer) placeQuote(title Element, caption *Element) (Element, error) {
	W := c.in.Width
	rh := c.grid.RowHeight
	text := strings.ToLower(strings.Join(strings.Fields(c.in.Quote), " "))
	size := rh * 0.8
	font := fonts.Regular

	minLength := c.metrics.MeasureWidth(text, font, size) + c.margin()
	if minLength+title.Length < W {
		return c.placeQuoteLine(text, font, size, minLength)
	}

	wrapWidth := W - title.Length - c.margin()
	if wrapWidth <= 0 {
		return Element{}, &errors.ContentTooLargeError{
			Element: string(KindQuote), Text: text, Width: minLength - c.margin(), Limit: wrapWidth,
		}
	}
	lines := c.metrics.LineBreak(text, font, size, wrapWidth)
	for _, line := range lines {
		if width := c.metrics.MeasureWidth(line, font, size); width > wrapWidth {
			return Element{}, &errors.ContentTooLargeError{
				Element: string(KindQuote), Text: line, Width: width, Limit: wrapWidth,
			}
		}
	}

	lineHeight := c.metrics.Ascent(font, size) + c.metrics.Descent(font, size)
	required := max(int(math.Ceil(float64(len(lines))*lineHeight/rh)), len(lines))

	blocks := []Element{title}
	if caption != nil {
		blocks = append(blocks, *caption)
	}
	candidates := c.pool.Filter(func(r int) bool {
		for _, b := range blocks {
			if r >= b.StartRow && r <= b.EndRow+required {
				return false
			}
		}
		return true
	})
	c.logger.Debug("wrapping quote",
		"lines", len(lines),
		"wrap_width", wrapWidth,
		"required_rows", required,
		"candidates", candidates.Len())

	start, err := c.findStart(KindQuote, candidates, required+1)
	if err != nil {
		return Element{}, err
	}

	el := Element{
		Kind:        KindQuote,
		StartRow:    start,
		EndRow:      start + required,
		BaseRowSize: 1,
		X2:          W,
		Y:           c.grid.Y(start),
		Length:      W,
		Font:        font,
		FontSize:    size,
		Lines:       lines,
		Wrapped:     true,
	}
	for i, line := range lines {
		c.addText(el, line, el.Y+float64(i+1)*lineHeight)
	}
	c.commit(el)
	return el, nil
}

func (c *composer) placeQuoteLine(text string, font fonts.Style, size, length float64) (Element, error) {
	start, err := c.findStart(KindQuote, c.pool, 2)
	if err != nil {
		return Element{}, err
	}
	el := Element{
		Kind:        KindQuote,
		StartRow:    start,
		EndRow:      start + 1,
		BaseRowSize: 1,
		X2:          length,
		Y:           c.grid.Y(start),
		Length:      length,
		Font:        font,
		FontSize:    size,
		Lines:       []string{text},
	}
	c.addText(el, text, el.Y+c.grid.RowHeight)
	c.commit(el)
	return el, nil
}
