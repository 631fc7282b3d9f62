// Package fill provides the strategies used to paint poster background
// rectangles: a flat poster colour, or a tinted photograph cropped to cover
// each rectangle.
package fill

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/plakat/pkg/core/render"
	"github.com/matzehuels/plakat/pkg/errors"
)

// Fill paints one background rectangle. A poster uses a single Fill for all
// of its rectangles.
type Fill interface {
	Paint(c render.Canvas, dst render.Rect, col color.Color) error
}

// Flat paints rectangles in the poster colour.
type Flat struct{}

func (Flat) Paint(c render.Canvas, dst render.Rect, col color.Color) error {
	c.DrawRect(dst, col)
	return nil
}

// Image paints rectangles with a region of a pre-tinted image.
type Image struct {
	img image.Image
}

// NewImage tints img with col and returns a fill that paints it.
func NewImage(img image.Image, col color.Color) *Image {
	return &Image{img: Tint(img, col)}
}

// Load opens the image at path and prepares it as a fill tinted with col.
func Load(path string, col color.Color) (*Image, error) {
	if err := errors.ValidateImagePath(path); err != nil {
		return nil, err
	}
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open image %s", path)
	}
	return NewImage(img, col), nil
}

// Source returns the tinted image.
func (f *Image) Source() image.Image { return f.img }

// Paint draws the centred cover crop of the image over dst. The colour is
// already baked into the image.
func (f *Image) Paint(c render.Canvas, dst render.Rect, _ color.Color) error {
	if dst.Empty() {
		return nil
	}
	b := f.img.Bounds()
	src := CoverCrop(float64(b.Dx()), float64(b.Dy()), dst.W, dst.H)
	src.X += float64(b.Min.X)
	src.Y += float64(b.Min.Y)
	return c.DrawImageRegion(f.img, dst, src)
}

// CoverCrop returns the largest centred window of an imgW×imgH image that
// has the aspect ratio of a rectW×rectH rectangle. Scaling that window to
// the rectangle covers it fully without distortion.
func CoverCrop(imgW, imgH, rectW, rectH float64) render.Rect {
	rectRatio := rectW / rectH
	imgRatio := imgW / imgH

	var sw, sh float64
	if rectRatio > imgRatio {
		sw = imgW
		sh = imgW / rectRatio
	} else {
		sw = imgH * rectRatio
		sh = imgH
	}
	return render.Rect{X: (imgW - sw) / 2, Y: (imgH - sh) / 2, W: sw, H: sh}
}

// Tint converts img to grayscale and multiplies every pixel by col.
// White becomes col and black stays black.
func Tint(img image.Image, col color.Color) *image.NRGBA {
	tint := color.NRGBAModel.Convert(col).(color.NRGBA)
	gray := imaging.Grayscale(img)
	return imaging.AdjustFunc(gray, func(c color.NRGBA) color.NRGBA {
		return color.NRGBA{
			R: multiply(c.R, tint.R),
			G: multiply(c.G, tint.G),
			B: multiply(c.B, tint.B),
			A: c.A,
		}
	})
}

func multiply(a, b uint8) uint8 {
	return uint8((uint16(a)*uint16(b) + 127) / 255)
}
