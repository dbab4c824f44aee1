package batch

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/phambaophuc/ez-image-gen/internal/config"
	"github.com/phambaophuc/ez-image-gen/internal/models"
	"github.com/phambaophuc/ez-image-gen/internal/services/assets"
	"github.com/phambaophuc/ez-image-gen/internal/services/processor"
	"go.uber.org/zap"
)

type recordingGenerator struct {
	calls  []models.GenerationOptions
	failAt int
}

func (g *recordingGenerator) Generate(ctx context.Context, opts models.GenerationOptions) (string, error) {
	g.calls = append(g.calls, opts)
	if g.failAt > 0 && len(g.calls) == g.failAt {
		return "", models.ErrAssetFetch
	}
	return filepath.Join(opts.OutputPath, opts.Filename+"."+opts.Format.String()), nil
}

func baseOptions(dir string) models.GenerationOptions {
	return models.GenerationOptions{
		Width:           100,
		Height:          100,
		Format:          models.FormatPNG,
		BackgroundColor: "#D3D3D3",
		TextColor:       "#000000",
		FontSize:        48,
		OutputPath:      dir,
	}
}

func TestRunListMergesEntries(t *testing.T) {
	dir := t.TempDir()
	list := writeFile(t, dir, "list.json", `[{"textOverlay": "a"}, {"width": 320, "format": "webp"}]`)

	gen := &recordingGenerator{}
	driver := NewDriver(gen, zap.NewNop())

	text := "cli text"
	paths, err := driver.RunList(context.Background(), list, baseOptions(dir), models.Override{TextOverlay: &text}, "shot-")
	if err != nil {
		t.Fatalf("RunList returned error: %v", err)
	}
	if len(paths) != 2 || len(gen.calls) != 2 {
		t.Fatalf("expected 2 generations, got %d", len(gen.calls))
	}

	first, second := gen.calls[0], gen.calls[1]
	if first.Filename != "shot-1" || second.Filename != "shot-2" {
		t.Fatalf("filenames mismatch: %q %q", first.Filename, second.Filename)
	}
	if first.TextOverlay != "a" || first.Width != 100 || first.Format != models.FormatPNG {
		t.Fatalf("entry 1 mismatch: %+v", first)
	}
	if second.TextOverlay != "cli text" || second.Width != 320 || second.Height != 100 || second.Format != models.FormatWebP {
		t.Fatalf("entry 2 mismatch: %+v", second)
	}
}

func TestRunTextListCarriesEachLine(t *testing.T) {
	dir := t.TempDir()
	list := writeFile(t, dir, "list.txt", "first\nsecond\nthird\n")

	gen := &recordingGenerator{}
	base := baseOptions(dir)
	if _, err := NewDriver(gen, zap.NewNop()).RunList(context.Background(), list, base, models.Override{}, "image-"); err != nil {
		t.Fatalf("RunList returned error: %v", err)
	}

	lines := []string{"first", "second", "third"}
	if len(gen.calls) != len(lines) {
		t.Fatalf("expected %d generations, got %d", len(lines), len(gen.calls))
	}
	for i, call := range gen.calls {
		want := base
		want.TextOverlay = lines[i]
		want.Filename = fmt.Sprintf("image-%d", i+1)
		if !reflect.DeepEqual(call, want) {
			t.Fatalf("entry %d = %+v, want %+v", i+1, call, want)
		}
	}
}

func TestRunListStopsAtFirstFailure(t *testing.T) {
	dir := t.TempDir()
	list := writeFile(t, dir, "list.txt", "one\ntwo\nthree\n")

	gen := &recordingGenerator{failAt: 2}
	paths, err := NewDriver(gen, zap.NewNop()).RunList(context.Background(), list, baseOptions(dir), models.Override{}, "image-")
	if !errors.Is(err, models.ErrAssetFetch) {
		t.Fatalf("expected ErrAssetFetch, got %v", err)
	}
	if len(gen.calls) != 2 {
		t.Fatalf("processing should stop after the failing entry, got %d calls", len(gen.calls))
	}
	if len(paths) != 1 {
		t.Fatalf("expected 1 completed path, got %d", len(paths))
	}
}

func TestRunListInvalidEntry(t *testing.T) {
	dir := t.TempDir()
	list := writeFile(t, dir, "list.json", `[{"width": 10}, {"fontSize": 10, "autoFontSize": true}]`)

	gen := &recordingGenerator{}
	_, err := NewDriver(gen, zap.NewNop()).RunList(context.Background(), list, baseOptions(dir), models.Override{}, "image-")
	if !errors.Is(err, models.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
	if len(gen.calls) != 1 {
		t.Fatalf("expected 1 generation before the invalid entry, got %d", len(gen.calls))
	}
}

func TestRunAmount(t *testing.T) {
	dir := t.TempDir()
	gen := &recordingGenerator{}

	paths, err := NewDriver(gen, zap.NewNop()).RunAmount(context.Background(), 3, baseOptions(dir), models.Override{}, "image-")
	if err != nil {
		t.Fatalf("RunAmount returned error: %v", err)
	}
	want := []string{"image-1", "image-2", "image-3"}
	for i, call := range gen.calls {
		if call.Filename != want[i] {
			t.Fatalf("call %d filename = %q, want %q", i, call.Filename, want[i])
		}
	}
	if len(paths) != 3 {
		t.Fatalf("expected 3 paths, got %d", len(paths))
	}
}

func TestRunHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gen := &recordingGenerator{}
	_, err := NewDriver(gen, zap.NewNop()).RunAmount(ctx, 2, baseOptions(t.TempDir()), models.Override{}, "image-")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(gen.calls) != 0 {
		t.Fatalf("no image should be generated after cancellation")
	}
}

func newRealDriver(t *testing.T) *Driver {
	t.Helper()
	cfg := &config.Config{Fetch: config.FetchConfig{Timeout: 5 * time.Second, MaxAssetSize: 1 << 20}}
	p, err := processor.NewImageProcessor(cfg.Render, assets.NewLoader(cfg, zap.NewNop()), zap.NewNop())
	if err != nil {
		t.Fatalf("NewImageProcessor returned error: %v", err)
	}
	return NewDriver(p, zap.NewNop())
}

func TestRunListWritesNumberedFiles(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out")
	if err := os.Mkdir(out, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	list := writeFile(t, dir, "list.txt", "first\nsecond\nthird\n")

	paths, err := newRealDriver(t).RunList(context.Background(), list, baseOptions(out), models.Override{}, "image-")
	if err != nil {
		t.Fatalf("RunList returned error: %v", err)
	}

	for i, name := range []string{"image-1.png", "image-2.png", "image-3.png"} {
		want := filepath.Join(out, name)
		if paths[i] != want {
			t.Fatalf("path %d = %q, want %q", i, paths[i], want)
		}
		if _, err := os.Stat(want); err != nil {
			t.Fatalf("expected %s to exist: %v", name, err)
		}
	}

	entries, _ := os.ReadDir(out)
	if len(entries) != 3 {
		t.Fatalf("expected exactly 3 files, got %d", len(entries))
	}
}

func TestRunListUnreachableWatermark(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL + "/logo.png"
	srv.Close()

	dir := t.TempDir()
	out := filepath.Join(dir, "out")
	if err := os.Mkdir(out, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	list := writeFile(t, dir, "list.json", `[{"textOverlay": "ok"}, {"watermark": {"path": "`+url+`", "width": 10, "height": 10}}]`)

	paths, err := newRealDriver(t).RunList(context.Background(), list, baseOptions(out), models.Override{}, "image-")
	if !errors.Is(err, models.ErrAssetFetch) {
		t.Fatalf("expected ErrAssetFetch, got %v", err)
	}
	if len(paths) != 1 {
		t.Fatalf("expected only the first entry to complete, got %d", len(paths))
	}
	if _, err := os.Stat(filepath.Join(out, "image-2.png")); !os.IsNotExist(err) {
		t.Fatalf("no file should exist for the failing entry")
	}
}
