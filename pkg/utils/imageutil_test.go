package utils

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/image/tiff"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestDownloadImage(t *testing.T) {
	body := pngBytes(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok.png":
			w.Write(body)
		case "/text":
			w.Write([]byte("hello, not an image"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	data, contentType, err := DownloadImage(context.Background(), srv.Client(), srv.URL+"/ok.png", 1<<20)
	if err != nil {
		t.Fatalf("DownloadImage returned error: %v", err)
	}
	if !bytes.Equal(data, body) {
		t.Fatalf("body mismatch")
	}
	if contentType != "image/png" {
		t.Fatalf("content type mismatch: got %q", contentType)
	}

	if _, _, err := DownloadImage(context.Background(), srv.Client(), srv.URL+"/missing.png", 1<<20); err == nil || !strings.Contains(err.Error(), "status 404") {
		t.Fatalf("expected status error, got %v", err)
	}
	if _, _, err := DownloadImage(context.Background(), srv.Client(), srv.URL+"/text", 1<<20); err == nil {
		t.Fatalf("expected content type error")
	}
	if _, _, err := DownloadImage(context.Background(), srv.Client(), srv.URL+"/ok.png", 8); err == nil {
		t.Fatalf("expected size error")
	}
}

func TestDownloadImageTIFF(t *testing.T) {
	var body bytes.Buffer
	if err := tiff.Encode(&body, image.NewNRGBA(image.Rect(0, 0, 3, 2)), nil); err != nil {
		t.Fatalf("encode tiff: %v", err)
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(body.Bytes())
	}))
	defer srv.Close()

	data, contentType, err := DownloadImage(context.Background(), srv.Client(), srv.URL+"/logo.tiff", 1<<20)
	if err != nil {
		t.Fatalf("DownloadImage returned error: %v", err)
	}
	if contentType != "image/tiff" {
		t.Fatalf("content type mismatch: got %q", contentType)
	}
	if !bytes.Equal(data, body.Bytes()) {
		t.Fatalf("body mismatch")
	}
}

func TestIsRemoteURL(t *testing.T) {
	tests := map[string]bool{
		"https://example.com/a.png": true,
		"HTTP://example.com/a.png":  true,
		"./logo.png":                false,
		"/abs/logo.png":             false,
		"supabase://bucket/a.png":   false,
	}
	for in, want := range tests {
		if got := IsRemoteURL(in); got != want {
			t.Fatalf("IsRemoteURL(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestGenerateTempName(t *testing.T) {
	a := GenerateTempName("image-1.png")
	b := GenerateTempName("image-1.png")
	if a == b {
		t.Fatalf("temp names should be unique: %q", a)
	}
	if !strings.HasPrefix(a, ".image-1.png.") || !strings.HasSuffix(a, ".tmp") {
		t.Fatalf("unexpected temp name %q", a)
	}
}
