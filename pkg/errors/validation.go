package errors

import (
	"strings"
	"unicode"
)

const (
	maxTextLength = 500
	maxPathLength = 1024
	maxCanvasSide = 20000
)

// ValidateText checks a poster text field. Empty text is rejected when
// required is set; control characters other than newlines and tabs are
// always rejected.
func ValidateText(field, text string, required bool) error {
	if strings.TrimSpace(text) == "" {
		if required {
			return New(ErrCodeInvalidInput, "%s cannot be empty", field)
		}
		return nil
	}

	if len(text) > maxTextLength {
		return New(ErrCodeInvalidInput, "%s too long (max %d characters)", field, maxTextLength)
	}

	for _, r := range text {
		if r == '\n' || r == '\t' {
			continue
		}
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "%s contains invalid control characters", field)
		}
	}
	return nil
}

// ValidateCanvas checks that a canvas size is positive and reasonable.
func ValidateCanvas(width, height float64, rows int) error {
	if width <= 0 || height <= 0 {
		return New(ErrCodeInvalidCanvas, "canvas size must be positive, got %.0fx%.0f", width, height)
	}
	if width > maxCanvasSide || height > maxCanvasSide {
		return New(ErrCodeInvalidCanvas, "canvas too large (max %d per side)", maxCanvasSide)
	}
	if rows < 4 {
		return New(ErrCodeInvalidCanvas, "grid needs at least 4 rows, got %d", rows)
	}
	return nil
}

// ValidateImagePath validates a local image path.
//
// Validation rules:
//   - Maximum length of 1024 characters
//   - No null bytes or control characters
//   - Must name a file with a supported raster extension
func ValidateImagePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "image path cannot be empty")
	}
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "image path too long (max %d characters)", maxPathLength)
	}
	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "image path contains invalid characters")
		}
	}

	lower := strings.ToLower(path)
	for _, ext := range []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff"} {
		if strings.HasSuffix(lower, ext) {
			return nil
		}
	}
	return New(ErrCodeInvalidPath, "unsupported image type: %q", path)
}
