package pipeline

import (
	"testing"

	"github.com/matzehuels/plakat/pkg/errors"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s", tt.format, errors.GetCode(err))
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestValidateVariant(t *testing.T) {
	tests := []struct {
		variant string
		wantErr bool
	}{
		{"episode", false},
		{"caption", false},
		{"poem", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateVariant(tt.variant)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateVariant(%q) error = %v, wantErr %v", tt.variant, err, tt.wantErr)
		}
	}
}

func TestSetDefaults(t *testing.T) {
	var o Options
	o.SetLayoutDefaults()
	o.SetRenderDefaults()

	if o.Width != DefaultWidth || o.Height != DefaultHeight || o.Rows != DefaultRows {
		t.Errorf("canvas = %vx%v/%d", o.Width, o.Height, o.Rows)
	}
	if o.Variant != DefaultVariant {
		t.Errorf("Variant = %q", o.Variant)
	}
	if o.Seed == 0 {
		t.Error("Seed should be derived when unset")
	}
	if len(o.Formats) != 1 || o.Formats[0] != FormatSVG {
		t.Errorf("Formats = %v", o.Formats)
	}
	if o.Color != DefaultColor || o.Background != DefaultBackground || o.Scale != DefaultScale {
		t.Errorf("render defaults = %q %q %v", o.Color, o.Background, o.Scale)
	}
	if o.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}

	seeded := Options{Seed: 42}
	seeded.SetLayoutDefaults()
	if seeded.Seed != 42 {
		t.Errorf("explicit seed changed to %d", seeded.Seed)
	}
}

func TestValidateForRender(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"bad color", Options{Color: "red"}, errors.ErrCodeInvalidColor},
		{"bad background", Options{Background: "#12345"}, errors.ErrCodeInvalidColor},
		{"bad format", Options{Formats: []string{"gif"}}, errors.ErrCodeInvalidFormat},
		{"negative scale", Options{Scale: -1}, errors.ErrCodeInvalidInput},
		{"huge scale", Options{Scale: 20}, errors.ErrCodeInvalidInput},
		{"bad image", Options{Image: "photo.txt"}, errors.ErrCodeInvalidPath},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateForRender()
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}

	ok := Options{}
	if err := ok.ValidateForRender(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestValidateForLayout(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"missing title", Options{Episode: "S1", Quote: "q"}, errors.ErrCodeInvalidInput},
		{"missing caption", Options{Variant: "caption", Title: "t", Quote: "q"}, errors.ErrCodeInvalidInput},
		{"bad variant", Options{Variant: "poem", Title: "t", Quote: "q"}, errors.ErrCodeInvalidVariant},
		{"too many retries", Options{Episode: "S1", Title: "t", Quote: "q", Retries: MaxRetries + 1}, errors.ErrCodeInvalidInput},
		{"tiny grid", Options{Episode: "S1", Title: "t", Quote: "q", Rows: 2}, errors.ErrCodeInvalidCanvas},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.opts.ValidateForLayout(); !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestHasFormat(t *testing.T) {
	o := Options{Formats: []string{"svg", "png"}}
	if !o.HasFormat("png") || o.HasFormat("pdf") {
		t.Errorf("HasFormat wrong for %v", o.Formats)
	}
}
