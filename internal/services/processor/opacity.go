package processor

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// applyOpacity scales the alpha channel of every pixel by opacity. Colors are
// straight (non-premultiplied) so only alpha changes.
func applyOpacity(img *image.NRGBA, opacity float64) *image.NRGBA {
	if opacity >= 1 {
		return img
	}

	out := imaging.Clone(img)
	if opacity <= 0 {
		for i := 3; i < len(out.Pix); i += 4 {
			out.Pix[i] = 0
		}
		return out
	}

	for i := 3; i < len(out.Pix); i += 4 {
		out.Pix[i] = uint8(math.Round(float64(out.Pix[i]) * opacity))
	}
	return out
}
