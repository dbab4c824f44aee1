package utils

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor understands #rgb, #rgba, #rrggbb, #rrggbbaa, rgb(r,g,b),
// rgba(r,g,b,a) with a in [0,1], "transparent" and the CSS color names.
func ParseColor(s string) (color.NRGBA, error) {
	value := strings.ToLower(strings.TrimSpace(s))
	if value == "" {
		return color.NRGBA{}, fmt.Errorf("empty color")
	}

	switch {
	case value == "transparent":
		return color.NRGBA{}, nil
	case strings.HasPrefix(value, "#"):
		return parseHexColor(value[1:])
	case strings.HasPrefix(value, "rgb"):
		return parseFunctionalColor(value)
	}

	if named, ok := colornames.Map[value]; ok {
		return color.NRGBA{R: named.R, G: named.G, B: named.B, A: named.A}, nil
	}

	return color.NRGBA{}, fmt.Errorf("unknown color %q", s)
}

func parseHexColor(hex string) (color.NRGBA, error) {
	if len(hex) == 3 || len(hex) == 4 {
		var expanded strings.Builder
		for _, c := range hex {
			expanded.WriteRune(c)
			expanded.WriteRune(c)
		}
		hex = expanded.String()
	}

	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid hex color #%s", hex)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color #%s", hex)
	}

	if len(hex) == 6 {
		return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

func parseFunctionalColor(value string) (color.NRGBA, error) {
	open := strings.IndexByte(value, '(')
	if open < 0 || !strings.HasSuffix(value, ")") {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", value)
	}

	name := value[:open]
	parts := strings.Split(value[open+1:len(value)-1], ",")

	want := 3
	if name == "rgba" {
		want = 4
	} else if name != "rgb" {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", value)
	}
	if len(parts) != want {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", value)
	}

	var channels [3]uint8
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 || n > 255 {
			return color.NRGBA{}, fmt.Errorf("invalid color %q", value)
		}
		channels[i] = uint8(n)
	}

	alpha := uint8(0xff)
	if want == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return color.NRGBA{}, fmt.Errorf("invalid color %q", value)
		}
		alpha = uint8(a*255 + 0.5)
	}

	return color.NRGBA{R: channels[0], G: channels[1], B: channels[2], A: alpha}, nil
}
