package assets

import (
	"context"
	"fmt"
	"strings"

	"github.com/phambaophuc/ez-image-gen/internal/models"
	"go.uber.org/zap"
)

// download reads supabase://<bucket>/<object> from Supabase Storage.
func (l *Loader) download(ctx context.Context, path string) ([]byte, error) {
	bucket, object, err := splitStoragePath(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrAssetFetch, err)
	}

	if l.sbClient == nil {
		return nil, fmt.Errorf("%w: %s: storage is not configured (set SUPABASE_URL and SUPABASE_KEY)", models.ErrAssetFetch, path)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", models.ErrAssetFetch, path, err)
	}

	l.logger.Debug("Downloading asset from storage",
		zap.String("bucket", bucket),
		zap.String("object", object))

	data, err := l.sbClient.DownloadFile(bucket, object)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", models.ErrAssetFetch, path, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s: empty object", models.ErrAssetFetch, path)
	}
	if int64(len(data)) > l.maxAssetSize {
		return nil, fmt.Errorf("%w: %s: object exceeds maximum allowed size %d", models.ErrAssetFetch, path, l.maxAssetSize)
	}

	return data, nil
}

func splitStoragePath(path string) (bucket, object string, err error) {
	rest := path[len(storageScheme):]
	bucket, object, found := strings.Cut(rest, "/")
	if !found || bucket == "" || object == "" {
		return "", "", fmt.Errorf("invalid storage path %q, want supabase://<bucket>/<object>", path)
	}
	return bucket, object, nil
}
