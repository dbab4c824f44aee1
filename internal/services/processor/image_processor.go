package processor

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"os"

	"github.com/phambaophuc/ez-image-gen/internal/config"
	"github.com/phambaophuc/ez-image-gen/internal/models"
	"github.com/phambaophuc/ez-image-gen/pkg/utils"
	"go.uber.org/zap"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const DefaultQuality = 85

// AssetLoader returns the raw bytes of a watermark source.
type AssetLoader interface {
	Load(ctx context.Context, path string) ([]byte, error)
}

type ImageProcessor struct {
	loader  AssetLoader
	font    *opentype.Font
	quality int
	logger  *zap.Logger
}

func NewImageProcessor(cfg config.RenderConfig, loader AssetLoader, logger *zap.Logger) (*ImageProcessor, error) {
	fontData := goregular.TTF
	if cfg.FontPath != "" {
		data, err := os.ReadFile(cfg.FontPath)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read font %s: %v", models.ErrConfiguration, cfg.FontPath, err)
		}
		fontData = data
	}

	f, err := opentype.Parse(fontData)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse font: %v", models.ErrConfiguration, err)
	}

	quality := cfg.JPEGQuality
	if quality < 1 || quality > 100 {
		quality = DefaultQuality
	}

	return &ImageProcessor{
		loader:  loader,
		font:    f,
		quality: quality,
		logger:  logger,
	}, nil
}

// Generate composes one image and writes it to {OutputPath}/{Filename}.{Format}.
// Nothing is written unless every step succeeds.
func (p *ImageProcessor) Generate(ctx context.Context, opts models.GenerationOptions) (string, error) {
	img, err := p.Compose(ctx, opts)
	if err != nil {
		return "", err
	}

	buffer := &bytes.Buffer{}
	if err := p.encodeImage(buffer, img, opts.Format); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}

	filename := fmt.Sprintf("%s.%s", opts.Filename, opts.Format)
	outputPath, err := p.writeFile(opts.OutputPath, filename, buffer.Bytes())
	if err != nil {
		return "", err
	}

	p.logger.Info("Generated "+outputPath,
		zap.Int("width", opts.Width),
		zap.Int("height", opts.Height),
		zap.String("format", opts.Format.String()),
		zap.Int("watermarks", len(opts.Watermarks)),
		zap.Int("bytes", buffer.Len()))

	return outputPath, nil
}

// Compose runs the pipeline in memory: background, text, watermarks, and
// flattening when the target format has no alpha channel.
func (p *ImageProcessor) Compose(ctx context.Context, opts models.GenerationOptions) (*image.NRGBA, error) {
	background, err := utils.ParseColor(opts.BackgroundColor)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid backgroundColor: %v", models.ErrConfiguration, err)
	}
	textColor, err := utils.ParseColor(opts.TextColor)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid textColor: %v", models.ErrConfiguration, err)
	}

	canvas := createBackground(opts.Width, opts.Height, background)

	if opts.TextOverlay != "" {
		p.drawText(canvas, opts.TextOverlay, textColor, EffectiveFontSize(opts))
	}

	if len(opts.Watermarks) > 0 {
		canvas, err = p.applyWatermarks(ctx, canvas, opts.Watermarks)
		if err != nil {
			return nil, err
		}
	}

	if !opts.Format.SupportsAlpha() {
		canvas = flatten(canvas, background)
	}

	return canvas, nil
}
