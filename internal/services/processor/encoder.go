package processor

import (
	"fmt"
	"image"
	"io"

	"github.com/HugoSmits86/nativewebp"
	"github.com/disintegration/imaging"
	"github.com/phambaophuc/ez-image-gen/internal/models"
)

func (p *ImageProcessor) encodeImage(w io.Writer, img image.Image, format models.Format) error {
	switch format {
	case models.FormatJPG:
		return imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(p.quality))
	case models.FormatPNG:
		return imaging.Encode(w, img, imaging.PNG)
	case models.FormatWebP:
		return nativewebp.Encode(w, img, nil)
	default:
		return fmt.Errorf("%w: unsupported format %q", models.ErrConfiguration, format)
	}
}
