// Package pipeline provides the poster pipeline shared by every entry point.
//
// This package implements the complete layout → render pipeline. By
// centralizing it, the CLI commands and tests get identical defaults,
// validation, retries and logging.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Layout: compose the poster on its row grid ([poster.Generate])
//  2. Render: draw the layout to the requested formats (SVG, PNG, PDF, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Episode: "S4:E1",
//	    Title:   "Unge hjerter",
//	    Quote:   "Jeg vil bare ikke spise noget der er blevet tøet op",
//	    Formats: []string{"png", "svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	png := result.Artifacts["png"]
//
// Run individual stages:
//
//	l, attempts, err := runner.GenerateLayout(ctx, opts)
//	artifacts, err := runner.Render(ctx, l, opts)
//
// [poster.Generate]: github.com/matzehuels/plakat/pkg/core/poster.Generate
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/plakat/pkg/core/grid"
	"github.com/matzehuels/plakat/pkg/core/poster"
	"github.com/matzehuels/plakat/pkg/core/render"
	"github.com/matzehuels/plakat/pkg/errors"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultWidth is the default canvas width in pixels (A4 at 72 DPI).
	DefaultWidth = 595.0

	// DefaultHeight is the default canvas height in pixels (A4 at 72 DPI).
	DefaultHeight = 842.0

	// DefaultRows is the default number of grid rows.
	DefaultRows = grid.DefaultRows

	// DefaultScale is the default PNG scale factor.
	DefaultScale = 2.0

	// DefaultColor is the default poster colour.
	DefaultColor = render.DefaultColor

	// DefaultBackground is the default canvas colour.
	DefaultBackground = "#FFFFFF"

	// MaxScale caps the PNG scale factor.
	MaxScale = 8.0

	// MaxRetries caps how many extra seeds a failed layout may try.
	MaxRetries = 100
)

// DefaultVariant is the default poster variant.
const DefaultVariant = string(poster.VariantEpisode)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// ValidVariants is the set of supported poster variants.
var ValidVariants = map[string]bool{
	string(poster.VariantEpisode): true,
	string(poster.VariantCaption): true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the poster pipeline.
type Options struct {
	// Content
	Variant string `json:"variant,omitempty"`
	Episode string `json:"episode,omitempty"`
	Caption string `json:"caption,omitempty"`
	Title   string `json:"title"`
	Quote   string `json:"quote"`

	// Layout options
	Width   float64 `json:"width,omitempty"`
	Height  float64 `json:"height,omitempty"`
	Rows    int     `json:"rows,omitempty"`
	Seed    uint64  `json:"seed,omitempty"`    // 0 derives a seed from the clock
	Retries int     `json:"retries,omitempty"` // extra attempts with seed+1, seed+2, ...

	// Render options
	Formats    []string `json:"formats,omitempty"`
	Color      string   `json:"color,omitempty"`
	Background string   `json:"background,omitempty"`
	Image      string   `json:"image,omitempty"` // optional photo painted into the rectangles
	Grid       bool     `json:"grid,omitempty"`
	Scale      float64  `json:"scale,omitempty"`

	// Runtime options (not serialized)
	Logger  *log.Logger    `json:"-"`
	Metrics poster.Metrics `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// ID identifies this poster; the CLI uses it for default file names.
	ID uuid.UUID

	// Layout is the composed poster.
	Layout poster.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and attempt information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Seed       uint64 // seed of the successful attempt
	Attempts   int
	Elements   int
	Rects      int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateVariant checks that a variant is valid.
func ValidateVariant(variant string) error {
	if !ValidVariants[variant] {
		return errors.New(errors.ErrCodeInvalidVariant, "invalid variant: %q (must be one of: episode, caption)", variant)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Variant == "" {
		o.Variant = DefaultVariant
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Rows == 0 {
		o.Rows = DefaultRows
	}
	if o.Seed == 0 {
		o.Seed = uint64(time.Now().UnixNano())
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if err := ValidateVariant(o.Variant); err != nil {
		return err
	}
	if o.Retries < 0 || o.Retries > MaxRetries {
		return errors.New(errors.ErrCodeInvalidInput, "retries must be between 0 and %d, got %d", MaxRetries, o.Retries)
	}
	return o.Input().Validate()
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Color == "" {
		o.Color = DefaultColor
	}
	if o.Background == "" {
		o.Background = DefaultBackground
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if _, err := render.ParseColor(o.Color); err != nil {
		return err
	}
	if _, err := render.ParseColor(o.Background); err != nil {
		return err
	}
	if o.Scale <= 0 || o.Scale > MaxScale {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be in (0, %g], got %g", MaxScale, o.Scale)
	}
	if o.Image != "" {
		return errors.ValidateImagePath(o.Image)
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline.
func (o *Options) ValidateAndSetDefaults() error {
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	return o.ValidateForRender()
}

// Input returns the poster content and canvas described by o.
func (o *Options) Input() poster.Input {
	return poster.Input{
		Width:   o.Width,
		Height:  o.Height,
		Rows:    o.Rows,
		Variant: poster.Variant(o.Variant),
		Episode: o.Episode,
		Caption: o.Caption,
		Title:   o.Title,
		Quote:   o.Quote,
	}
}

// HasFormat reports whether format is among the requested formats.
func (o *Options) HasFormat(format string) bool {
	for _, f := range o.Formats {
		if f == format {
			return true
		}
	}
	return false
}
