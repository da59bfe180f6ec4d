package main

import (
	"image/color"
	"testing"
	"time"
)

func TestHistoryAge(t *testing.T) {
	h := NewHistory(NewTheme(), 10*time.Second, 288, 336)
	epoch := time.Unix(100, 0)

	for _, tc := range []struct {
		name string
		at   time.Time
		now  time.Time
		want float64
	}{
		{name: "fresh", at: epoch, now: epoch, want: 0},
		{name: "halfway", at: epoch, now: epoch.Add(5 * time.Second), want: 0.5},
		{name: "expired", at: epoch, now: epoch.Add(10 * time.Second), want: 1},
		{name: "past expiry", at: epoch, now: epoch.Add(20 * time.Second), want: 2},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := h.age(tc.at, tc.now); !AlmostEqual(got, tc.want) {
				t.Errorf("age = %.3f, want %.3f", got, tc.want)
			}
		})
	}
}

func TestHistoryPrune(t *testing.T) {
	h := NewHistory(NewTheme(), 10*time.Second, 288, 336)
	now := time.Unix(100, 0)
	h.now = func() time.Time { return now }

	h.Record(0)
	now = now.Add(6 * time.Second)
	h.Record(5)
	now = now.Add(6 * time.Second) // first event now 12s old

	h.mu.Lock()
	h.prune(now)
	kept := len(h.events)
	var keptPitch PitchClass
	if kept > 0 {
		keptPitch = h.events[0].pitch
	}
	h.mu.Unlock()

	if kept != 1 || keptPitch != 5 {
		t.Errorf("prune kept %d events (pitch %d), want just pitch 5", kept, keptPitch)
	}
}

func TestHistoryIgnoresInvalidPitch(t *testing.T) {
	h := NewHistory(NewTheme(), 10*time.Second, 288, 336)
	h.Record(PitchClass(NoPitch))
	h.Record(PitchClass(12))

	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.events) != 0 {
		t.Errorf("invalid pitches recorded: %v", h.events)
	}
}

func TestFade(t *testing.T) {
	c := color.RGBA{0x80, 0x40, 0x20, 0xff}
	if got := fade(c, 1); got != c {
		t.Errorf("fade(c, 1) = %v, want %v", got, c)
	}
	if got := fade(c, 0); got != (color.RGBA{}) {
		t.Errorf("fade(c, 0) = %v, want zero", got)
	}
	half := fade(c, 0.5)
	if half.R != 0x40 || half.A != 0x7f {
		t.Errorf("fade(c, 0.5) = %v", half)
	}
	// Out-of-range alphas clamp.
	if got := fade(c, 2); got != c {
		t.Errorf("fade(c, 2) = %v, want %v", got, c)
	}
	if got := fade(c, -1); got != (color.RGBA{}) {
		t.Errorf("fade(c, -1) = %v, want zero", got)
	}
}
