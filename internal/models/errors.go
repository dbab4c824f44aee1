package models

import "errors"

// Error kinds surfaced to the CLI. Wrap them with fmt.Errorf("...: %w", ErrX)
// and test with errors.Is.
var (
	ErrConfiguration = errors.New("configuration error")
	ErrParse         = errors.New("parse error")
	ErrAssetNotFound = errors.New("asset not found")
	ErrAssetFetch    = errors.New("asset fetch failed")
	ErrFilesystem    = errors.New("filesystem error")
)
