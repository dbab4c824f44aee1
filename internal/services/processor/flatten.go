package processor

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// flatten removes transparency by painting img over an opaque canvas of the
// background color. A fully transparent background flattens onto white.
func flatten(img *image.NRGBA, background color.NRGBA) *image.NRGBA {
	fill := background
	if fill.A == 0 {
		fill = color.NRGBA{R: 0xff, G: 0xff, B: 0xff}
	}
	fill.A = 0xff

	canvas := imaging.New(img.Bounds().Dx(), img.Bounds().Dy(), fill)
	return imaging.Overlay(canvas, img, image.Pt(0, 0), 1.0)
}
