package main

import "testing"

func newTestPicker(t *testing.T, rootsOnly bool) *Picker {
	t.Helper()
	face, err := loadFace(labelSize)
	if err != nil {
		t.Fatalf("loadFace: %v", err)
	}
	p, err := NewPicker(DefaultCatalog(), NewTheme(), face)
	if err != nil {
		t.Fatalf("NewPicker: %v", err)
	}
	p.SetRootsOnly(rootsOnly)
	return p
}

func TestPickerHit(t *testing.T) {
	p := newTestPicker(t, false)

	for _, tc := range []struct {
		name     string
		x, y     float32
		wantName string
		wantOK   bool
	}{
		{name: "first cell", x: 1, y: 1, wantName: "C", wantOK: true},
		{name: "second column of row 0", x: 100, y: 10, wantName: "B♯", wantOK: true},
		{name: "third column of row 0", x: 200, y: 10, wantName: "D♭♭", wantOK: true},
		{name: "row 1 root", x: 10, y: 30, wantName: "C♯", wantOK: true},
		{name: "last row", x: 10, y: 28*11 + 5, wantName: "B", wantOK: true},
		{name: "column past short group", x: 200, y: 28*8 + 5, wantOK: false}, // G♯ group has 2 spellings
		{name: "below last row", x: 10, y: 28 * 12, wantOK: false},
		{name: "negative", x: -1, y: 5, wantOK: false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			name, ok := p.Hit(tc.x, tc.y)
			if ok != tc.wantOK {
				t.Fatalf("Hit(%.0f, %.0f) ok = %t, want %t", tc.x, tc.y, ok, tc.wantOK)
			}
			if ok && name != tc.wantName {
				t.Errorf("Hit(%.0f, %.0f) = %q, want %q", tc.x, tc.y, name, tc.wantName)
			}
		})
	}
}

func TestPickerHitRootsOnly(t *testing.T) {
	p := newTestPicker(t, true)

	if name, ok := p.Hit(10, 10); !ok || name != "C" {
		t.Errorf("Hit(10, 10) = %q/%t, want C", name, ok)
	}
	// Only the root column is selectable.
	if _, ok := p.Hit(100, 10); ok {
		t.Errorf("second column should miss in roots-only mode")
	}
}

func TestPickerSizeStableAcrossModes(t *testing.T) {
	p := newTestPicker(t, false)
	w1, h1 := p.Size()
	p.SetRootsOnly(true)
	w2, h2 := p.Size()
	if w1 != w2 || h1 != h2 {
		t.Errorf("size changed on mode toggle: %dx%d -> %dx%d", int(w1), int(h1), int(w2), int(h2))
	}
	if h1 != 28*NumPitchClasses {
		t.Errorf("height = %.0f, want one row per pitch class", h1)
	}
}

func TestPickerCellRect(t *testing.T) {
	p := newTestPicker(t, false)

	x0, y0, x1, y1 := p.cellRect(0, 0)
	if x0 != 1 || y0 != 1 || x1 != 95 || y1 != 27 {
		t.Errorf("cellRect(0, 0) = (%.0f, %.0f, %.0f, %.0f)", x0, y0, x1, y1)
	}
	x0, y0, _, _ = p.cellRect(2, 1)
	if x0 != 97 || y0 != 57 {
		t.Errorf("cellRect(2, 1) origin = (%.0f, %.0f)", x0, y0)
	}
}

func TestPickerRequiresAnchors(t *testing.T) {
	face, err := loadFace(labelSize)
	if err != nil {
		t.Fatalf("loadFace: %v", err)
	}
	if _, err := NewPicker(nil, NewTheme(), face); err == nil {
		t.Errorf("nil catalog accepted")
	}
	if _, err := NewPicker(DefaultCatalog(), nil, face); err == nil {
		t.Errorf("nil theme accepted")
	}
	if _, err := NewPicker(DefaultCatalog(), NewTheme(), nil); err == nil {
		t.Errorf("nil face accepted")
	}
}

func TestSummaryHitZones(t *testing.T) {
	face, err := loadFace(labelSize)
	if err != nil {
		t.Fatalf("loadFace: %v", err)
	}
	s, err := NewSummary(NewTheme(), face, 288, summaryHeight)
	if err != nil {
		t.Fatalf("NewSummary: %v", err)
	}

	for _, tc := range []struct {
		name                string
		x, y                float32
		open, random, clear bool
	}{
		{name: "label area", x: 10, y: 10, open: true},
		{name: "label right edge", x: 191, y: 10, open: true},
		{name: "random button", x: 192, y: 10, random: true},
		{name: "clear button", x: 240, y: 10, clear: true},
		{name: "clear right edge", x: 287, y: 10, clear: true},
		{name: "outside", x: 288, y: 10},
		{name: "below", x: 10, y: summaryHeight},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.HitOpen(tc.x, tc.y); got != tc.open {
				t.Errorf("HitOpen = %t, want %t", got, tc.open)
			}
			if got := s.HitRandom(tc.x, tc.y); got != tc.random {
				t.Errorf("HitRandom = %t, want %t", got, tc.random)
			}
			if got := s.HitClear(tc.x, tc.y); got != tc.clear {
				t.Errorf("HitClear = %t, want %t", got, tc.clear)
			}
		})
	}
}

func TestSummaryRejectsBadAnchors(t *testing.T) {
	face, err := loadFace(labelSize)
	if err != nil {
		t.Fatalf("loadFace: %v", err)
	}
	if _, err := NewSummary(NewTheme(), nil, 288, summaryHeight); err == nil {
		t.Errorf("nil face accepted")
	}
	if _, err := NewSummary(NewTheme(), face, 0, summaryHeight); err == nil {
		t.Errorf("zero width accepted")
	}
}
