package batch

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/phambaophuc/ez-image-gen/internal/models"
)

var lineBreak = regexp.MustCompile(`\r?\n`)

// ParseList reads a list file. A .json file holds an array of override
// objects; any other file holds one text overlay per line.
func ParseList(path string) ([]models.Override, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: list file %s does not exist", models.ErrFilesystem, path)
		}
		return nil, fmt.Errorf("%w: failed to read list file %s: %v", models.ErrFilesystem, path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return parseJSONList(path, data)
	}
	return parseTextList(data), nil
}

func parseJSONList(path string, data []byte) ([]models.Override, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: %s: top level must be a JSON array", models.ErrParse, path)
	}

	var entries []models.Override
	if err := json.Unmarshal(trimmed, &entries); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", models.ErrParse, path, err)
	}
	return entries, nil
}

// parseTextList keeps blank lines as entries with empty text. Only the empty
// remainder after a final newline is dropped.
func parseTextList(data []byte) []models.Override {
	text := string(data)
	if text == "" {
		return nil
	}

	lines := lineBreak.Split(text, -1)
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	entries := make([]models.Override, 0, len(lines))
	for _, line := range lines {
		entries = append(entries, models.Override{TextOverlay: &line})
	}
	return entries
}
