package processor

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/phambaophuc/ez-image-gen/internal/models"
	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// AutoFontSize derives a font size from the image dimensions.
func AutoFontSize(width, height int) int {
	return int(math.Round(float64(width+height) / 2 * 0.1))
}

// EffectiveFontSize applies the auto sizing rule; auto wins over an explicit size.
func EffectiveFontSize(opts models.GenerationOptions) int {
	if opts.AutoFontSize {
		return AutoFontSize(opts.Width, opts.Height)
	}
	return opts.FontSize
}

// RenderTextLayer returns a transparent width x height layer with text
// centered on both axes. Empty text yields a fully transparent layer.
func (p *ImageProcessor) RenderTextLayer(width, height int, text string, textColor color.NRGBA, size int) *image.NRGBA {
	layer := imaging.New(width, height, color.NRGBA{})
	p.drawText(layer, text, textColor, size)
	return layer
}

// drawText draws text centered on dst, blending each glyph over what is
// already there.
func (p *ImageProcessor) drawText(dst *image.NRGBA, text string, textColor color.NRGBA, size int) {
	if text == "" || size <= 0 {
		return
	}

	face := p.newFace(size)
	defer face.Close()

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(textColor),
		Face: face,
	}

	// Horizontal centering on the advance width, vertical centering on the
	// ascent/descent box so the line's middle sits on the canvas middle.
	bounds := dst.Bounds()
	metrics := face.Metrics()
	advance := d.MeasureString(text)
	d.Dot = fixed.Point26_6{
		X: fixed.I(bounds.Min.X) + (fixed.I(bounds.Dx())-advance)/2,
		Y: fixed.I(bounds.Min.Y) + (fixed.I(bounds.Dy())+metrics.Ascent-metrics.Descent)/2,
	}
	d.DrawString(text)
}

func (p *ImageProcessor) newFace(size int) font.Face {
	face, err := opentype.NewFace(p.font, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		p.logger.Warn("Falling back to the built-in bitmap font", zap.Int("size", size), zap.Error(err))
		return basicfont.Face7x13
	}
	return face
}
