package models

import "strings"

// Position is the anchor a watermark layer is placed at.
type Position string

const (
	PositionCenter      Position = "center"
	PositionTop         Position = "top"
	PositionBottom      Position = "bottom"
	PositionLeft        Position = "left"
	PositionRight       Position = "right"
	PositionTopLeft     Position = "top-left"
	PositionTopRight    Position = "top-right"
	PositionBottomLeft  Position = "bottom-left"
	PositionBottomRight Position = "bottom-right"
)

var positionAliases = map[string]Position{
	"":             PositionCenter,
	"center":       PositionCenter,
	"centre":       PositionCenter,
	"top":          PositionTop,
	"north":        PositionTop,
	"bottom":       PositionBottom,
	"south":        PositionBottom,
	"left":         PositionLeft,
	"west":         PositionLeft,
	"right":        PositionRight,
	"east":         PositionRight,
	"top-left":     PositionTopLeft,
	"northwest":    PositionTopLeft,
	"top-right":    PositionTopRight,
	"northeast":    PositionTopRight,
	"bottom-left":  PositionBottomLeft,
	"southwest":    PositionBottomLeft,
	"bottom-right": PositionBottomRight,
	"southeast":    PositionBottomRight,
}

// ParsePosition accepts the anchor names plus gravity style aliases
// ("north", "southeast", "top left", "top_left"). Empty means center.
func ParsePosition(s string) (Position, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer(" ", "-", "_", "-").Replace(key)
	p, ok := positionAliases[key]
	return p, ok
}
