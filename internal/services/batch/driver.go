package batch

import (
	"context"
	"fmt"

	"github.com/phambaophuc/ez-image-gen/internal/models"
	"github.com/phambaophuc/ez-image-gen/internal/options"
	"go.uber.org/zap"
)

// Generator produces one image file and returns its path.
type Generator interface {
	Generate(ctx context.Context, opts models.GenerationOptions) (string, error)
}

// Driver runs image generations one after another. The first failure stops
// the run.
type Driver struct {
	generator Generator
	logger    *zap.Logger
}

func NewDriver(generator Generator, logger *zap.Logger) *Driver {
	return &Driver{
		generator: generator,
		logger:    logger,
	}
}

// RunList generates one image per entry of the list file, each entry merged
// over base and the CLI layer.
func (d *Driver) RunList(ctx context.Context, listPath string, base models.GenerationOptions, cli models.Override, prefix string) ([]string, error) {
	entries, err := ParseList(listPath)
	if err != nil {
		return nil, err
	}

	d.logger.Debug("Parsed list file",
		zap.String("path", listPath),
		zap.Int("entries", len(entries)))

	paths := make([]string, 0, len(entries))
	for i, entry := range entries {
		opts, err := options.Resolve(base, cli, entry)
		if err != nil {
			return paths, fmt.Errorf("entry %d: %w", i+1, err)
		}

		path, err := d.generate(ctx, opts, prefix, i)
		if err != nil {
			return paths, fmt.Errorf("entry %d: %w", i+1, err)
		}
		paths = append(paths, path)
	}

	return paths, nil
}

// RunAmount generates amount identical images.
func (d *Driver) RunAmount(ctx context.Context, amount int, base models.GenerationOptions, cli models.Override, prefix string) ([]string, error) {
	opts, err := options.Resolve(base, cli)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, amount)
	for i := 0; i < amount; i++ {
		path, err := d.generate(ctx, opts, prefix, i)
		if err != nil {
			return paths, fmt.Errorf("image %d: %w", i+1, err)
		}
		paths = append(paths, path)
	}

	return paths, nil
}

func (d *Driver) generate(ctx context.Context, opts models.GenerationOptions, prefix string, index int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	opts.Filename = fmt.Sprintf("%s%d", prefix, index+1)
	return d.generator.Generate(ctx, opts)
}
