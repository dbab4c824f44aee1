package models

import "strings"

type Format string

const (
	FormatPNG  Format = "png"
	FormatJPG  Format = "jpg"
	FormatWebP Format = "webp"
)

// ParseFormat normalizes a user supplied format name. "jpeg" is accepted as jpg.
func ParseFormat(s string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "png":
		return FormatPNG, true
	case "jpg", "jpeg":
		return FormatJPG, true
	case "webp":
		return FormatWebP, true
	}
	return "", false
}

// SupportsAlpha reports whether the encoder keeps the alpha channel.
func (f Format) SupportsAlpha() bool {
	return f != FormatJPG
}

func (f Format) String() string {
	return string(f)
}
