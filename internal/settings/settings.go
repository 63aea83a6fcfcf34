// Package settings holds the layout and interaction parameters shared by the
// controller and the renderer.
package settings

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Settings describes how the grid is laid out on screen and stepped.
type Settings struct {
	// Wraparound joins opposite edges of the grid when counting neighbors.
	Wraparound bool

	// Offset is the distance of the grid from the top-left window corner.
	Offset float64
	// CellWidth is the side length of a cell.
	CellWidth float64
	// CellDistance is the gap between adjacent cells.
	CellDistance float64

	Background color.RGBA
	Live       color.RGBA
	Dead       color.RGBA
}

// Default returns the stock look: 16px cells with 2px gaps, a 4px margin and
// wraparound enabled.
func Default() Settings {
	return Settings{
		Wraparound:   true,
		Offset:       4,
		CellWidth:    16,
		CellDistance: 2,
		Background:   color.RGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xff},
		Live:         color.RGBA{R: 0x80, G: 0xcc, B: 0xff, A: 0xff},
		Dead:         color.RGBA{R: 0x1a, G: 0x1a, B: 0x33, A: 0xff},
	}
}

// Pitch is the distance between the left edges of two adjacent cells.
func (s Settings) Pitch() float64 { return s.CellWidth + s.CellDistance }

// ParseHexColor parses "#rrggbb" or "#rrggbbaa" (the leading '#' is optional).
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: expected #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// HexColor formats c as "#rrggbb", appending alpha only when it is not opaque.
func HexColor(c color.RGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
