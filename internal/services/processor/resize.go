package processor

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// resizeCover scales img to cover width x height, cropping the overflow, and
// returns a layer of exactly that size on a transparent canvas. A zero side
// is derived from the source aspect ratio; both zero keeps the source size.
func resizeCover(img image.Image, width, height int) *image.NRGBA {
	switch {
	case width == 0 && height == 0:
		return imaging.Clone(img)
	case width == 0 || height == 0:
		return imaging.Resize(img, width, height, imaging.Lanczos)
	}

	filled := imaging.Fill(img, width, height, imaging.Center, imaging.Lanczos)
	canvas := imaging.New(width, height, color.NRGBA{})
	return imaging.PasteCenter(canvas, filled)
}
