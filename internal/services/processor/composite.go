package processor

import (
	"image"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// overlay paints src over dst with its top-left corner at pt.
// imaging.Overlay divides by the combined alpha, which is zero where both
// pixels are transparent, so canvases with transparency are blended with
// draw.Over on premultiplied values instead.
func overlay(dst *image.NRGBA, src image.Image, pt image.Point) *image.NRGBA {
	if dst.Opaque() {
		return imaging.Overlay(dst, src, pt, 1.0)
	}

	out := imaging.Clone(dst)
	bounds := src.Bounds()
	draw.Draw(out, bounds.Sub(bounds.Min).Add(pt), src, bounds.Min, draw.Over)
	return out
}
