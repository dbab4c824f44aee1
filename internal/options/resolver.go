// Package options merges the defaults, CLI and list-entry layers into the
// effective options of one image and validates the result.
package options

import (
	"fmt"

	"github.com/phambaophuc/ez-image-gen/internal/config"
	"github.com/phambaophuc/ez-image-gen/internal/models"
)

// Defaults builds the bottom layer of the merge from configuration.
func Defaults(cfg config.DefaultsConfig) models.GenerationOptions {
	format, ok := models.ParseFormat(cfg.Format)
	if !ok {
		format = models.Format(cfg.Format)
	}

	return models.GenerationOptions{
		Width:           cfg.Width,
		Height:          cfg.Height,
		Format:          format,
		BackgroundColor: cfg.BackgroundColor,
		TextColor:       cfg.TextColor,
		FontSize:        cfg.FontSize,
		OutputPath:      cfg.Output,
	}
}

// Resolve applies layers over base in order, later layers winning, and
// validates the result. base is not modified.
func Resolve(base models.GenerationOptions, layers ...models.Override) (models.GenerationOptions, error) {
	opts := base
	opts.Watermarks = append([]models.WatermarkSpec(nil), base.Watermarks...)

	for _, layer := range layers {
		if err := apply(&opts, layer); err != nil {
			return models.GenerationOptions{}, err
		}
	}

	if err := Validate(opts); err != nil {
		return models.GenerationOptions{}, err
	}
	return opts, nil
}

func apply(opts *models.GenerationOptions, layer models.Override) error {
	if err := CheckFontMode(layer); err != nil {
		return err
	}

	if layer.Width != nil {
		opts.Width = *layer.Width
	}
	if layer.Height != nil {
		opts.Height = *layer.Height
	}
	if layer.Format != nil {
		format, ok := models.ParseFormat(*layer.Format)
		if !ok {
			return fmt.Errorf("%w: unsupported format %q (want png, jpg or webp)", models.ErrConfiguration, *layer.Format)
		}
		opts.Format = format
	}
	if layer.BackgroundColor != nil {
		opts.BackgroundColor = *layer.BackgroundColor
	}
	if layer.TextColor != nil {
		opts.TextColor = *layer.TextColor
	}
	if layer.TextOverlay != nil {
		opts.TextOverlay = *layer.TextOverlay
	}

	// The font mode of the most specific layer wins.
	if layer.FontSize != nil {
		opts.FontSize = *layer.FontSize
		opts.AutoFontSize = false
	}
	if layer.AutoFontSize != nil {
		opts.AutoFontSize = *layer.AutoFontSize
	}

	if layer.Output != nil {
		opts.OutputPath = *layer.Output
	}
	if layer.OutputPath != nil {
		opts.OutputPath = *layer.OutputPath
	}

	if layer.Watermarks != nil || layer.Watermark != nil {
		var marks []models.WatermarkSpec
		if layer.Watermarks != nil {
			marks = append(marks, *layer.Watermarks...)
		}
		if layer.Watermark != nil {
			marks = append(marks, *layer.Watermark)
		}
		opts.Watermarks = marks
	}

	return nil
}

// CheckFontMode rejects a layer that asks for an explicit font size and
// automatic sizing at the same time.
func CheckFontMode(layer models.Override) error {
	if layer.FontSize != nil && layer.AutoFontSize != nil && *layer.AutoFontSize {
		return fmt.Errorf("%w: please provide either fontSize or autoFontSize, not both", models.ErrConfiguration)
	}
	return nil
}
