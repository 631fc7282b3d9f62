package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/plakat/pkg/core/poster"
	"github.com/matzehuels/plakat/pkg/core/render/sink"
	"github.com/matzehuels/plakat/pkg/errors"
)

// ReadInput decodes a poster input from r. Unknown fields are rejected so
// typos do not silently drop text. ReadInput does not close r.
func ReadInput(r io.Reader) (poster.Input, error) {
	var in poster.Input
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		return poster.Input{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode poster input")
	}
	return in, nil
}

// ImportInput reads a poster input from the JSON file at path.
func ImportInput(path string) (poster.Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return poster.Input{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	return ReadInput(f)
}

// ReadLayout decodes a layout previously written by [WriteLayout].
func ReadLayout(r io.Reader) (poster.Layout, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return poster.Layout{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "read layout")
	}
	return sink.ReadJSON(data)
}

// ImportLayout reads a layout from the JSON file at path.
func ImportLayout(path string) (poster.Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return poster.Layout{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	return ReadLayout(f)
}
