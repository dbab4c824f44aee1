package processor

import (
	"image"

	"github.com/phambaophuc/ez-image-gen/internal/models"
)

// anchorPoint returns where the top-left corner of layer goes so that it sits
// at position inside canvas. Layers larger than the canvas get negative
// offsets and are clipped by the overlay.
func anchorPoint(canvas, layer image.Rectangle, position models.Position) image.Point {
	left := canvas.Min.X
	top := canvas.Min.Y
	right := canvas.Max.X - layer.Dx()
	bottom := canvas.Max.Y - layer.Dy()
	centerX := canvas.Min.X + (canvas.Dx()-layer.Dx())/2
	centerY := canvas.Min.Y + (canvas.Dy()-layer.Dy())/2

	switch position {
	case models.PositionTop:
		return image.Pt(centerX, top)
	case models.PositionBottom:
		return image.Pt(centerX, bottom)
	case models.PositionLeft:
		return image.Pt(left, centerY)
	case models.PositionRight:
		return image.Pt(right, centerY)
	case models.PositionTopLeft:
		return image.Pt(left, top)
	case models.PositionTopRight:
		return image.Pt(right, top)
	case models.PositionBottomLeft:
		return image.Pt(left, bottom)
	case models.PositionBottomRight:
		return image.Pt(right, bottom)
	default:
		return image.Pt(centerX, centerY)
	}
}
