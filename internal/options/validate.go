package options

import (
	"fmt"
	"strings"

	"github.com/phambaophuc/ez-image-gen/internal/models"
	"github.com/phambaophuc/ez-image-gen/pkg/utils"
)

// ValidateRun checks the run-level flags before any image is generated.
func ValidateRun(req models.RunRequest) error {
	if req.Amount < 0 {
		return fmt.Errorf("%w: amount must be a positive integer", models.ErrConfiguration)
	}
	if req.List == "" && req.Amount == 0 {
		return fmt.Errorf("%w: you must provide either --amount for single image generation or --list for bulk generation", models.ErrConfiguration)
	}
	if req.List != "" && req.Amount > 0 {
		return fmt.Errorf("%w: please provide either --list or --amount, not both", models.ErrConfiguration)
	}
	if strings.TrimSpace(req.OutputPath) == "" {
		return fmt.Errorf("%w: output path is required", models.ErrConfiguration)
	}
	return nil
}

// Validate checks the effective options of a single image.
func Validate(opts models.GenerationOptions) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("%w: width and height must be positive integers, got %dx%d",
			models.ErrConfiguration, opts.Width, opts.Height)
	}
	if _, ok := models.ParseFormat(string(opts.Format)); !ok {
		return fmt.Errorf("%w: unsupported format %q (want png, jpg or webp)", models.ErrConfiguration, opts.Format)
	}
	if _, err := utils.ParseColor(opts.BackgroundColor); err != nil {
		return fmt.Errorf("%w: invalid backgroundColor: %v", models.ErrConfiguration, err)
	}
	if _, err := utils.ParseColor(opts.TextColor); err != nil {
		return fmt.Errorf("%w: invalid textColor: %v", models.ErrConfiguration, err)
	}
	if !opts.AutoFontSize && opts.FontSize <= 0 {
		return fmt.Errorf("%w: fontSize must be a positive integer", models.ErrConfiguration)
	}
	if strings.TrimSpace(opts.OutputPath) == "" {
		return fmt.Errorf("%w: output path is required", models.ErrConfiguration)
	}

	for i, mark := range opts.Watermarks {
		if err := validateWatermark(mark); err != nil {
			return fmt.Errorf("watermark %d: %w", i+1, err)
		}
	}
	return nil
}

func validateWatermark(mark models.WatermarkSpec) error {
	if strings.TrimSpace(mark.Path) == "" {
		return fmt.Errorf("%w: path is required", models.ErrConfiguration)
	}
	if mark.Width < 0 || mark.Height < 0 {
		return fmt.Errorf("%w: width and height must not be negative", models.ErrConfiguration)
	}
	if mark.Opacity < 0 || mark.Opacity > 1 {
		return fmt.Errorf("%w: opacity must be between 0 and 1, got %g", models.ErrConfiguration, mark.Opacity)
	}
	if _, ok := models.ParsePosition(string(mark.Position)); !ok {
		return fmt.Errorf("%w: unknown position %q", models.ErrConfiguration, mark.Position)
	}
	return nil
}
