package main

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const placeholder = "—"

// Summary is the one-line trigger bar: the current selection (or a
// placeholder) on the left, random and clear buttons on the right.
// Clicking the label area opens the chooser.
type Summary struct {
	theme *Theme
	face  font.Face

	width       float32
	height      float32
	buttonWidth float32
	borderWidth float32

	name  string
	pitch int

	cached       *ebiten.Image
	ready        bool
	themeVersion int

	mu sync.Mutex
}

func NewSummary(theme *Theme, face font.Face, width, height float32) (*Summary, error) {
	if theme == nil || face == nil || width <= 0 || height <= 0 {
		return nil, errMissingAnchor
	}
	return &Summary{
		theme:       theme,
		face:        face,
		width:       width,
		height:      height,
		buttonWidth: 48,
		borderWidth: 2,
		pitch:       NoPitch,
	}, nil
}

// SetSelection reflects the selector state. Repeated calls with the
// same state keep the cached image.
func (s *Summary) SetSelection(name string, pitch int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.name != name || s.pitch != pitch {
		s.name = name
		s.pitch = pitch
		s.ready = false
	}
}

// Hit zones, in widget-local coordinates.

func (s *Summary) HitOpen(x, y float32) bool {
	return x >= 0 && x < s.width-2*s.buttonWidth && y >= 0 && y < s.height
}

func (s *Summary) HitRandom(x, y float32) bool {
	return x >= s.width-2*s.buttonWidth && x < s.width-s.buttonWidth && y >= 0 && y < s.height
}

func (s *Summary) HitClear(x, y float32) bool {
	return x >= s.width-s.buttonWidth && x < s.width && y >= 0 && y < s.height
}

func (s *Summary) Draw(dst *ebiten.Image, op *ebiten.DrawImageOptions) {
	dst.DrawImage(s.getCached(), op)
}

// Internal

func (s *Summary) getCached() *ebiten.Image {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready || s.themeVersion != s.theme.Version() {
		s.themeVersion = s.theme.Version()
		if s.cached == nil {
			s.cached = ebiten.NewImage(int(s.width), int(s.height))
		}
		s.cached.Fill(borderColor)

		half := s.borderWidth / 2
		labelEnd := s.width - 2*s.buttonWidth

		labelBG := color.Color(barColor)
		labelFG := ForegroundLight
		label := placeholder
		if s.pitch != NoPitch {
			labelBG = s.theme.Background(PitchClass(s.pitch))
			labelFG = s.theme.Foreground(PitchClass(s.pitch))
			label = s.name
		}

		s.fillRect(half, half, labelEnd-half, s.height-half, labelBG)
		s.drawLabel(label, 0, labelEnd, labelFG)

		s.fillRect(labelEnd+half, half, s.width-s.buttonWidth-half, s.height-half, barColor)
		s.drawLabel("rnd", labelEnd, s.width-s.buttonWidth, ForegroundLight)

		s.fillRect(s.width-s.buttonWidth+half, half, s.width-half, s.height-half, barColor)
		s.drawLabel("clr", s.width-s.buttonWidth, s.width, ForegroundLight)

		s.ready = true
	}
	return s.cached
}

func (s *Summary) fillRect(x0, y0, x1, y1 float32, c color.Color) {
	path := vector.Path{}
	path.MoveTo(x0, y0)
	path.LineTo(x0, y1)
	path.LineTo(x1, y1)
	path.LineTo(x1, y0)
	path.Fill(s.cached, &vector.FillOptions{Color: c})
}

func (s *Summary) drawLabel(label string, x0, x1 float32, c color.Color) {
	bounds := text.BoundString(s.face, label)
	x := int(x0) + (int(x1-x0)-bounds.Dx())/2 - bounds.Min.X
	y := (int(s.height)-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(s.cached, label, s.face, x, y, c)
}
