package main

import (
	"image/color"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// History shows recent selections as marks fading down a column per
// pitch class. Purely presentational: it records completed transitions
// and never feeds back into selection state.
type History struct {
	theme  *Theme
	window time.Duration

	width    float32
	height   float32
	markSize float32

	events []pickEvent

	// Time source, swappable in tests.
	now func() time.Time

	mu sync.Mutex
}

type pickEvent struct {
	pitch PitchClass
	at    time.Time
}

func NewHistory(theme *Theme, window time.Duration, width, height float32) *History {
	return &History{
		theme:    theme,
		window:   window,
		width:    width,
		height:   height,
		markSize: 10,
		now:      time.Now,
	}
}

// Record notes a completed selection.
func (h *History) Record(pitch PitchClass) {
	if !pitch.Valid() {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, pickEvent{pitch: pitch, at: h.now()})
}

// age maps an event time to [0, 1] over the fade window; >= 1 means
// fully faded.
func (h *History) age(at, now time.Time) float64 {
	if h.window <= 0 {
		return 1
	}
	return float64(now.Sub(at)) / float64(h.window)
}

// prune drops fully faded events. mu must be held.
func (h *History) prune(now time.Time) {
	kept := h.events[:0]
	for _, ev := range h.events {
		if h.age(ev.at, now) < 1 {
			kept = append(kept, ev)
		}
	}
	h.events = kept
}

// fade scales a color towards transparent. Channels stay premultiplied.
func fade(c color.RGBA, alpha float64) color.RGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

// Draw renders directly: the handful of live marks is cheaper than the
// cache bookkeeping would be.
func (h *History) Draw(dst *ebiten.Image, op *ebiten.DrawImageOptions) {
	h.mu.Lock()
	defer h.mu.Unlock()

	now := h.now()
	h.prune(now)

	offsetX, offsetY := op.GeoM.Apply(0, 0)
	colWidth := h.width / NumPitchClasses
	for _, ev := range h.events {
		age := h.age(ev.at, now)
		x0 := float32(ev.pitch)*colWidth + 2 + float32(offsetX)
		x1 := x0 + colWidth - 4
		y0 := float32(age)*(h.height-h.markSize) + float32(offsetY)
		y1 := y0 + h.markSize

		path := vector.Path{}
		path.MoveTo(x0, y0)
		path.LineTo(x0, y1)
		path.LineTo(x1, y1)
		path.LineTo(x1, y0)
		path.Fill(dst, &vector.FillOptions{Color: fade(h.theme.Background(ev.pitch), 1-age)})
	}
}
