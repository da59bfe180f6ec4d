package main

import (
	"fmt"
	"image/color"
	"math"
)

// Foreground choices for text on themed backgrounds.
var (
	ForegroundLight color.Color = color.RGBA{0xf4, 0xf4, 0xf4, 0xff}
	ForegroundDark  color.Color = color.RGBA{0x16, 0x16, 0x16, 0xff}
)

// Backgrounds lighter than this take the dark foreground.
const luminanceThreshold = 0.179

// ParseHexColor parses #RGB or #RRGGBB.
func ParseHexColor(s string) (color.RGBA, error) {
	var c color.RGBA
	c.A = 0xff
	switch len(s) {
	case 7:
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
			return color.RGBA{}, fmt.Errorf("bad hex color %q: %v", s, err)
		}
	case 4:
		if _, err := fmt.Sscanf(s, "#%1x%1x%1x", &c.R, &c.G, &c.B); err != nil {
			return color.RGBA{}, fmt.Errorf("bad hex color %q: %v", s, err)
		}
		c.R *= 17
		c.G *= 17
		c.B *= 17
	default:
		return color.RGBA{}, fmt.Errorf("bad hex color %q", s)
	}
	return c, nil
}

// RelativeLuminance computes WCAG relative luminance in [0, 1].
func RelativeLuminance(c color.Color) float64 {
	r, g, b, _ := c.RGBA()
	lin := func(v uint32) float64 {
		ch := float64(v>>8) / 255
		if ch <= 0.03928 {
			return ch / 12.92
		}
		return math.Pow((ch+0.055)/1.055, 2.4)
	}
	return 0.2126*lin(r) + 0.7152*lin(g) + 0.0722*lin(b)
}

// ForegroundFor picks the legible foreground for a background color.
func ForegroundFor(bg color.Color) color.Color {
	if RelativeLuminance(bg) > luminanceThreshold {
		return ForegroundDark
	}
	return ForegroundLight
}

// ForegroundForHex is ForegroundFor over a hex string. A color that
// does not parse gets the light default.
func ForegroundForHex(s string) color.Color {
	bg, err := ParseHexColor(s)
	if err != nil {
		return ForegroundLight
	}
	return ForegroundFor(bg)
}
