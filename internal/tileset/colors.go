package tileset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000")
// to its RGB components.
func ParseHexColor(hex string) (r, g, b uint8, err error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid hex color length: %s", hex)
	}

	rv, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid red component in %s: %w", hex, err)
	}

	gv, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid green component in %s: %w", hex, err)
	}

	bv, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid blue component in %s: %w", hex, err)
	}

	return uint8(rv), uint8(gv), uint8(bv), nil
}

// TCellColor converts a hex color string to a tcell.Color, falling back to
// white on parse errors.
func TCellColor(hex string) tcell.Color {
	r, g, b, err := ParseHexColor(hex)
	if err != nil {
		return tcell.ColorWhite
	}
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// ColorfulColor converts a hex color string to a colorful.Color with
// components normalized to [0,1].
func ColorfulColor(hex string) (colorful.Color, error) {
	r, g, b, err := ParseHexColor(hex)
	if err != nil {
		return colorful.Color{}, err
	}
	return colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}, nil
}
