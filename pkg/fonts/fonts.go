// Package fonts provides the embedded typefaces used to set poster text.
//
// The fonts ship with golang.org/x/image (the Go font family), so they are
// available without external files. Three styles are exposed: a regular
// face for the quotation, and heavy and heavy-slanted faces for the title,
// the caption and the episode tag.
package fonts

import (
	"encoding/base64"
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goregular"
)

// Style selects one of the embedded typefaces.
type Style string

const (
	Regular      Style = "regular"
	Heavy        Style = "heavy"
	HeavySlanted Style = "heavy-slanted"
)

// Styles lists every supported style.
var Styles = []Style{Regular, Heavy, HeavySlanted}

var ttfData = map[Style][]byte{
	Regular:      goregular.TTF,
	Heavy:        gobold.TTF,
	HeavySlanted: gobolditalic.TTF,
}

var families = map[Style]string{
	Regular:      "Plakat Regular",
	Heavy:        "Plakat Heavy",
	HeavySlanted: "Plakat Heavy Slanted",
}

// TTF returns the raw TrueType data for s.
func TTF(s Style) ([]byte, error) {
	data, ok := ttfData[s]
	if !ok {
		return nil, fmt.Errorf("unknown font style %q", s)
	}
	return data, nil
}

// FontFamily returns the CSS font-family name used for s in SVG output.
func FontFamily(s Style) string {
	if f, ok := families[s]; ok {
		return f
	}
	return families[Regular]
}

// Parsed fonts and base64 encodings are computed once on first access.
var (
	parsedMu sync.Mutex
	parsed   = make(map[Style]*truetype.Font)

	b64Mu sync.Mutex
	b64   = make(map[Style]string)
)

// Font returns the parsed TrueType font for s.
func Font(s Style) (*truetype.Font, error) {
	parsedMu.Lock()
	defer parsedMu.Unlock()
	if f, ok := parsed[s]; ok {
		return f, nil
	}
	data, err := TTF(s)
	if err != nil {
		return nil, err
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s font: %w", s, err)
	}
	parsed[s] = f
	return f, nil
}

// TTFBase64 returns the TrueType data for s as a base64 string, suitable for
// an @font-face data URL.
func TTFBase64(s Style) string {
	b64Mu.Lock()
	defer b64Mu.Unlock()
	if enc, ok := b64[s]; ok {
		return enc
	}
	data, err := TTF(s)
	if err != nil {
		return ""
	}
	enc := base64.StdEncoding.EncodeToString(data)
	b64[s] = enc
	return enc
}
