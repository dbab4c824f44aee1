package processor

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

func createBackground(width, height int, fill color.NRGBA) *image.NRGBA {
	return imaging.New(width, height, fill)
}
