package assets

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"strings"

	"github.com/phambaophuc/ez-image-gen/internal/config"
	"github.com/phambaophuc/ez-image-gen/internal/models"
	"github.com/phambaophuc/ez-image-gen/pkg/utils"
	storage_go "github.com/supabase-community/storage-go"
	"go.uber.org/zap"
)

const storageScheme = "supabase://"

// Loader resolves a watermark path to raw bytes. Paths are read from the
// local filesystem unless they carry an http(s) or supabase:// scheme.
type Loader struct {
	httpClient   *http.Client
	sbClient     *storage_go.Client
	maxAssetSize int64
	logger       *zap.Logger
}

func NewLoader(cfg *config.Config, logger *zap.Logger) *Loader {
	var sbClient *storage_go.Client
	if cfg.Supabase.URL != "" && cfg.Supabase.KEY != "" {
		sbClient = storage_go.NewClient(strings.TrimRight(cfg.Supabase.URL, "/")+"/storage/v1", cfg.Supabase.KEY, nil)
	}

	return &Loader{
		httpClient:   &http.Client{Timeout: cfg.Fetch.Timeout},
		sbClient:     sbClient,
		maxAssetSize: cfg.Fetch.MaxAssetSize,
		logger:       logger,
	}
}

// Load returns the bytes behind path.
func (l *Loader) Load(ctx context.Context, path string) ([]byte, error) {
	switch {
	case utils.IsRemoteURL(path):
		return l.fetch(ctx, path)
	case strings.HasPrefix(strings.ToLower(path), storageScheme):
		return l.download(ctx, path)
	default:
		return l.readLocal(path)
	}
}

func (l *Loader) fetch(ctx context.Context, url string) ([]byte, error) {
	l.logger.Debug("Fetching remote asset", zap.String("url", url))

	data, _, err := utils.DownloadImage(ctx, l.httpClient, url, l.maxAssetSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", models.ErrAssetFetch, url, err)
	}
	return data, nil
}

func (l *Loader) readLocal(path string) ([]byte, error) {
	path = strings.TrimPrefix(path, "file://")

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", models.ErrAssetNotFound, path)
		}
		return nil, fmt.Errorf("%w: failed to read %s: %v", models.ErrFilesystem, path, err)
	}
	return data, nil
}
