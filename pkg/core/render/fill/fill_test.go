package fill

import (
	"image"
	"image/color"
	"math"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/plakat/pkg/core/render"
	"github.com/matzehuels/plakat/pkg/errors"
	"github.com/matzehuels/plakat/pkg/fonts"
)

type recorder struct {
	rects  []render.Rect
	images []render.Rect
	src    []render.Rect
}

func (r *recorder) Clear(color.Color) {}
func (r *recorder) DrawText(string, float64, float64, fonts.Style, float64, color.Color) error {
	return nil
}
func (r *recorder) DrawRect(rect render.Rect, _ color.Color)      { r.rects = append(r.rects, rect) }
func (r *recorder) DrawLine(_, _, _, _, _ float64, _ color.Color) {}
func (r *recorder) DrawImageRegion(_ image.Image, dst, src render.Rect) error {
	r.images = append(r.images, dst)
	r.src = append(r.src, src)
	return nil
}

func nearly(a, b render.Rect) bool {
	const eps = 1e-9
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps &&
		math.Abs(a.W-b.W) < eps && math.Abs(a.H-b.H) < eps
}

func TestCoverCrop(t *testing.T) {
	tests := []struct {
		name                     string
		imgW, imgH, rectW, rectH float64
		want                     render.Rect
	}{
		{"wide rect on square image", 100, 100, 200, 50, render.Rect{X: 0, Y: 37.5, W: 100, H: 25}},
		{"tall rect on square image", 100, 100, 50, 200, render.Rect{X: 37.5, Y: 0, W: 25, H: 100}},
		{"same ratio", 400, 200, 40, 20, render.Rect{X: 0, Y: 0, W: 400, H: 200}},
		{"wide rect on wide image", 300, 100, 600, 100, render.Rect{X: 0, Y: 25, W: 300, H: 50}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CoverCrop(tt.imgW, tt.imgH, tt.rectW, tt.rectH)
			if !nearly(got, tt.want) {
				t.Errorf("CoverCrop = %+v, want %+v", got, tt.want)
			}
			if math.Abs(got.W/got.H-tt.rectW/tt.rectH) > 1e-9 {
				t.Errorf("ratio %v, want %v", got.W/got.H, tt.rectW/tt.rectH)
			}
		})
	}
}

func TestTint(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{A: 255})

	red := color.NRGBA{R: 0xE9, G: 0x30, B: 0x36, A: 255}
	out := Tint(img, red)

	if got := out.NRGBAAt(0, 0); got != red {
		t.Errorf("white pixel = %v, want %v", got, red)
	}
	if got := out.NRGBAAt(1, 0); got != (color.NRGBA{A: 255}) {
		t.Errorf("black pixel = %v, want black", got)
	}
}

func TestFlatPaint(t *testing.T) {
	rec := &recorder{}
	dst := render.Rect{X: 1, Y: 2, W: 3, H: 4}
	if err := (Flat{}).Paint(rec, dst, color.Black); err != nil {
		t.Fatal(err)
	}
	if len(rec.rects) != 1 || rec.rects[0] != dst {
		t.Errorf("rects = %v", rec.rects)
	}
}

func TestImagePaint(t *testing.T) {
	rec := &recorder{}
	f := NewImage(image.NewNRGBA(image.Rect(0, 0, 100, 100)), color.White)
	dst := render.Rect{X: 0, Y: 0, W: 200, H: 50}
	if err := f.Paint(rec, dst, color.Black); err != nil {
		t.Fatal(err)
	}
	if len(rec.images) != 1 || len(rec.rects) != 0 {
		t.Fatalf("images=%d rects=%d", len(rec.images), len(rec.rects))
	}
	if want := (render.Rect{X: 0, Y: 37.5, W: 100, H: 25}); !nearly(rec.src[0], want) {
		t.Errorf("src = %+v, want %+v", rec.src[0], want)
	}

	if err := f.Paint(rec, render.Rect{W: 0, H: 10}, color.Black); err != nil {
		t.Fatal(err)
	}
	if len(rec.images) != 1 {
		t.Error("empty rect should not be painted")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photo.png")
	if err := imaging.Save(imaging.New(8, 4, color.White), path); err != nil {
		t.Fatal(err)
	}
	f, err := Load(path, color.NRGBA{R: 255, A: 255})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b := f.Source().Bounds(); b.Dx() != 8 || b.Dy() != 4 {
		t.Errorf("bounds = %v", b)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.png"), color.White); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file err = %v", err)
	}
	if _, err := Load("notes.txt", color.White); !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("bad extension err = %v", err)
	}
}
