package sink

import (
	"encoding/json"

	"github.com/matzehuels/plakat/pkg/core/poster"
	"github.com/matzehuels/plakat/pkg/errors"
)

// RenderJSON exports the layout as a pretty-printed JSON document. The
// output can be read back with [ReadJSON] and rendered to any other format
// without re-running the layout.
func RenderJSON(l poster.Layout) ([]byte, error) {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "encode layout")
	}
	return data, nil
}

// ReadJSON decodes a layout written by [RenderJSON].
func ReadJSON(data []byte) (poster.Layout, error) {
	var l poster.Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return poster.Layout{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode layout")
	}
	if l.Width <= 0 || l.Height <= 0 || l.Grid.Rows <= 0 {
		return poster.Layout{}, errors.New(errors.ErrCodeInvalidInput, "layout has no canvas")
	}
	return l, nil
}
