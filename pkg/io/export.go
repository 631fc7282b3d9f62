package io

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/matzehuels/plakat/pkg/core/poster"
	"github.com/matzehuels/plakat/pkg/core/render/sink"
	"github.com/matzehuels/plakat/pkg/errors"
	"github.com/matzehuels/plakat/pkg/observability"
)

// WriteLayout encodes l as indented JSON and writes it to w.
func WriteLayout(l poster.Layout, w io.Writer) error {
	data, err := sink.RenderJSON(l)
	if err != nil {
		return err
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write layout")
	}
	return nil
}

// ExportLayout writes l to the JSON file at path, creating or truncating it.
func ExportLayout(l poster.Layout, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	if err := WriteLayout(l, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ArtifactPath returns the file path for one format of an output: base with
// its extension replaced by the format name.
func ArtifactPath(base, format string) string {
	ext := filepath.Ext(base)
	return base[:len(base)-len(ext)] + "." + format
}

// WriteArtifacts writes every artifact to ArtifactPath(base, format) and
// returns the written paths in format order. Missing parent directories are
// created.
func WriteArtifacts(ctx context.Context, base string, artifacts map[string][]byte) ([]string, error) {
	if dir := filepath.Dir(base); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", dir)
		}
	}

	formats := make([]string, 0, len(artifacts))
	for f := range artifacts {
		formats = append(formats, f)
	}
	slices.Sort(formats)

	hooks := observability.Output()
	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		path := ArtifactPath(base, format)
		data := artifacts[format]
		if err := os.WriteFile(path, data, 0o644); err != nil {
			hooks.OnWriteError(ctx, format, path, err)
			return paths, errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
		}
		hooks.OnWrite(ctx, format, path, len(data))
		paths = append(paths, path)
	}
	return paths, nil
}
