package processor

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// rotate turns img clockwise by degrees. The canvas grows to fit and the new
// area is transparent.
func rotate(img *image.NRGBA, degrees float64) *image.NRGBA {
	if math.Mod(degrees, 360) == 0 {
		return img
	}
	// imaging rotates counter-clockwise.
	return imaging.Rotate(img, -degrees, color.NRGBA{})
}
