package main

import (
	"image/color"
	"log"
	"strings"
	"sync"
)

var (
	// http://personal.sron.nl/~pault/ "bright" + "muted", one per
	// pitch class.
	defaultPalette = [NumPitchClasses]color.RGBA{
		{0x44, 0x77, 0xaa, 0xff}, // C: blue
		{0x66, 0xcc, 0xee, 0xff}, // C♯: cyan
		{0x22, 0x88, 0x33, 0xff}, // D: green
		{0xcc, 0xbb, 0x44, 0xff}, // D♯: yellow
		{0xee, 0x66, 0x77, 0xff}, // E: red
		{0xaa, 0x33, 0x77, 0xff}, // F: purple
		{0x33, 0x22, 0x88, 0xff}, // F♯: indigo
		{0x44, 0xaa, 0x99, 0xff}, // G: teal
		{0x99, 0x99, 0x33, 0xff}, // G♯: olive
		{0xdd, 0xcc, 0x77, 0xff}, // A: sand
		{0x88, 0x22, 0x55, 0xff}, // A♯: wine
		{0xbb, 0xbb, 0xbb, 0xff}, // B: grey
	}

	barColor    = color.RGBA{0x18, 0x11, 0x11, 0xff}
	borderColor = color.Black
)

// Theme maps pitch classes to background colors. Unset slots fall back
// to the default palette. Theme changes are presentation only and never
// touch selection state.
type Theme struct {
	mu        sync.Mutex
	overrides *[NumPitchClasses]*color.RGBA
	version   int
}

func NewTheme() *Theme {
	return &Theme{}
}

// Set replaces all overrides. Passing nil restores the defaults.
func (t *Theme) Set(overrides *[NumPitchClasses]*color.RGBA) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.overrides = overrides
	t.version++
}

// Version increments on every Set, so renderers can invalidate caches.
func (t *Theme) Version() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.version
}

func (t *Theme) Background(pc PitchClass) color.RGBA {
	if !pc.Valid() {
		return defaultPalette[0]
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.overrides != nil && t.overrides[pc] != nil {
		return *t.overrides[pc]
	}
	return defaultPalette[pc]
}

func (t *Theme) Foreground(pc PitchClass) color.Color {
	return ForegroundFor(t.Background(pc))
}

// ParseThemeList parses a comma-separated list of up to 12 hex colors
// into theme overrides. Empty entries leave their slot on the default;
// malformed entries are logged and skipped. An empty list means no
// overrides at all.
func ParseThemeList(list string) *[NumPitchClasses]*color.RGBA {
	if list == "" {
		return nil
	}
	var overrides [NumPitchClasses]*color.RGBA
	for i, entry := range strings.Split(list, ",") {
		if i >= NumPitchClasses {
			log.Printf("Theme list has more than %d entries, ignoring the rest", NumPitchClasses)
			break
		}
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		c, err := ParseHexColor(entry)
		if err != nil {
			log.Printf("Skipping theme entry %d: %v", i, err)
			continue
		}
		overrides[i] = &c
	}
	return &overrides
}
