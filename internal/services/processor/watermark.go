package processor

import (
	"bytes"
	"context"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/phambaophuc/ez-image-gen/internal/models"
	"go.uber.org/zap"
	_ "golang.org/x/image/webp"
)

// applyWatermarks paints each spec over img in order; later specs end up on
// top. The first failure aborts.
func (p *ImageProcessor) applyWatermarks(ctx context.Context, img *image.NRGBA, marks []models.WatermarkSpec) (*image.NRGBA, error) {
	result := img
	for i, mark := range marks {
		var err error
		result, err = p.addWatermark(ctx, result, mark)
		if err != nil {
			return nil, fmt.Errorf("watermark %d: %w", i+1, err)
		}
	}
	return result, nil
}

func (p *ImageProcessor) addWatermark(ctx context.Context, img *image.NRGBA, mark models.WatermarkSpec) (*image.NRGBA, error) {
	data, err := p.loader.Load(ctx, mark.Path)
	if err != nil {
		return nil, err
	}

	source, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode %s: %v", models.ErrAssetFetch, mark.Path, err)
	}

	layer := resizeCover(source, mark.Width, mark.Height)
	layer = applyOpacity(layer, mark.Opacity)
	layer = rotate(layer, mark.Rotation)

	position, ok := models.ParsePosition(string(mark.Position))
	if !ok {
		return nil, fmt.Errorf("%w: unknown position %q", models.ErrConfiguration, mark.Position)
	}

	p.logger.Debug("Compositing watermark",
		zap.String("path", mark.Path),
		zap.String("position", string(position)),
		zap.Int("width", layer.Bounds().Dx()),
		zap.Int("height", layer.Bounds().Dy()),
		zap.Float64("opacity", mark.Opacity),
		zap.Float64("rotation", mark.Rotation))

	return overlay(img, layer, anchorPoint(img.Bounds(), layer.Bounds(), position)), nil
}
