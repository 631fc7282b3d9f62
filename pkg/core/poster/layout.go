package poster

import (
	"github.com/matzehuels/plakat/pkg/core/grid"
	"github.com/matzehuels/plakat/pkg/fonts"
)

// Kind identifies a text block.
type Kind string

const (
	KindEpisode Kind = "episode"
	KindCaption Kind = "caption"
	KindTitle   Kind = "title"
	KindQuote   Kind = "quote"
)

// Variant selects which secondary block accompanies the title and quote.
type Variant string

const (
	VariantEpisode Variant = "episode"
	VariantCaption Variant = "caption"
)

// Variants lists the supported variants.
var Variants = []Variant{VariantEpisode, VariantCaption}

// Input is the content and canvas of one poster.
type Input struct {
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Rows    int     `json:"rows"`
	Variant Variant `json:"variant"`
	Episode string  `json:"episode,omitempty"`
	Caption string  `json:"caption,omitempty"`
	Title   string  `json:"title"`
	Quote   string  `json:"quote"`
}

// Element is a placed text block. It occupies the inclusive rows
// [StartRow, EndRow] and the horizontal extent [X1, X2].
type Element struct {
	Kind        Kind        `json:"kind"`
	StartRow    int         `json:"start_row"`
	EndRow      int         `json:"end_row"`
	BaseRowSize int         `json:"base_row_size"`
	X1          float64     `json:"x1"`
	X2          float64     `json:"x2"`
	Y           float64     `json:"y"`
	Length      float64     `json:"length"`
	Font        fonts.Style `json:"font"`
	FontSize    float64     `json:"font_size"`
	Lines       []string    `json:"lines"`
	Wrapped     bool        `json:"wrapped,omitempty"`
}

// Rows returns the rows occupied by e.
func (e Element) Rows() grid.RowRange {
	return grid.RowRange{Start: e.StartRow, End: e.EndRow}
}

// TextOp draws one line of text with its baseline at (X, Y).
type TextOp struct {
	Element Kind        `json:"element"`
	Text    string      `json:"text"`
	X       float64     `json:"x"`
	Y       float64     `json:"y"`
	Font    fonts.Style `json:"font"`
	Size    float64     `json:"size"`
}

// RectRole describes why a background rectangle exists.
type RectRole string

const (
	RoleSection   RectRole = "section"
	RoleColumn    RectRole = "column"
	RoleBigColumn RectRole = "big-column"
)

// RectOp draws one background rectangle.
type RectOp struct {
	Role RectRole `json:"role"`
	X    float64  `json:"x"`
	Y    float64  `json:"y"`
	W    float64  `json:"w"`
	H    float64  `json:"h"`
}

// Stats summarizes the composition decisions of a pass.
type Stats struct {
	FreeRows     int `json:"free_rows"`
	FreeSections int `json:"free_sections"`
	UsedSections int `json:"used_sections"`
	Selected     int `json:"selected_sections"`
}

// Layout is the finished description of one poster. Texts are drawn first,
// then Rects, each in slice order.
type Layout struct {
	Width     float64   `json:"width"`
	Height    float64   `json:"height"`
	Grid      grid.Grid `json:"grid"`
	Variant   Variant   `json:"variant"`
	Seed      uint64    `json:"seed,omitempty"`
	Elements  []Element `json:"elements"`
	Texts     []TextOp  `json:"texts"`
	Rects     []RectOp  `json:"rects"`
	BigColumn bool      `json:"big_column"`
	Stats     Stats     `json:"stats"`
}

// Element returns the placed block of the given kind.
func (l Layout) Element(k Kind) (Element, bool) {
	for _, e := range l.Elements {
		if e.Kind == k {
			return e, true
		}
	}
	return Element{}, false
}

// Metrics is the text measurement capability the composer needs.
// Sizes are in pixels.
type Metrics interface {
	MeasureWidth(text string, font fonts.Style, size float64) float64
	LineBreak(text string, font fonts.Style, size, maxWidth float64) []string
	Ascent(font fonts.Style, size float64) float64
	Descent(font fonts.Style, size float64) float64
}
