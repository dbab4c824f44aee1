package processor

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/phambaophuc/ez-image-gen/internal/models"
	"github.com/phambaophuc/ez-image-gen/pkg/utils"
)

// writeFile stores data as dir/name through a temporary sibling and a rename,
// so a failed write never leaves a partial image behind.
func (p *ImageProcessor) writeFile(dir, name string, data []byte) (string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return "", fmt.Errorf("%w: output directory %s: %v", models.ErrFilesystem, dir, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: output path %s is not a directory", models.ErrFilesystem, dir)
	}

	finalPath := filepath.Join(dir, name)
	tmpPath := filepath.Join(dir, utils.GenerateTempName(name))

	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("%w: failed to write %s: %v", models.ErrFilesystem, finalPath, err)
	}

	if err := os.Rename(tmpPath, finalPath); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("%w: failed to write %s: %v", models.ErrFilesystem, finalPath, err)
	}

	return finalPath, nil
}
