package main

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Picker is the chooser overlay: one row per pitch class, one button
// per spelling of the active catalog. Buttons take the theme background
// of their pitch class with a contrast-picked label color.
type Picker struct {
	catalog   *Catalog
	theme     *Theme
	face      font.Face
	rootsOnly bool
	selected  string

	cellWidth   float32
	cellHeight  float32
	borderWidth float32

	base         *ebiten.Image
	baseReady    bool
	overlay      *ebiten.Image
	overlayReady bool
	themeVersion int

	mu sync.Mutex
}

func NewPicker(catalog *Catalog, theme *Theme, face font.Face) (*Picker, error) {
	if catalog == nil || theme == nil || face == nil {
		return nil, errMissingAnchor
	}
	return &Picker{
		catalog:     catalog,
		theme:       theme,
		face:        face,
		cellWidth:   96,
		cellHeight:  28,
		borderWidth: 2,
	}, nil
}

// Size is fixed by the full catalog so the window does not resize when
// the catalog mode toggles.
func (p *Picker) Size() (float32, float32) {
	return p.cellWidth * float32(p.catalog.MaxSpellings(false)),
		p.cellHeight * NumPitchClasses
}

// SetRootsOnly switches the rendered entry set.
func (p *Picker) SetRootsOnly(rootsOnly bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.rootsOnly != rootsOnly {
		p.rootsOnly = rootsOnly
		p.baseReady = false
		p.overlayReady = false
	}
}

// SetSelected marks the currently selected spelling for highlighting.
func (p *Picker) SetSelected(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.selected != name {
		p.selected = name
		p.overlayReady = false
	}
}

// Hit resolves widget-local coordinates to the spelling under them.
func (p *Picker) Hit(x, y float32) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if x < 0 || y < 0 {
		return "", false
	}
	row := int(y / p.cellHeight)
	col := int(x / p.cellWidth)
	if row >= NumPitchClasses {
		return "", false
	}
	spellings := p.catalog.Spellings(PitchClass(row), p.rootsOnly)
	if col >= len(spellings) {
		return "", false
	}
	return spellings[col], true
}

func (p *Picker) cellRect(row, col int) (x0, y0, x1, y1 float32) {
	half := p.borderWidth / 2
	x0 = float32(col)*p.cellWidth + half
	y0 = float32(row)*p.cellHeight + half
	x1 = float32(col+1)*p.cellWidth - half
	y1 = float32(row+1)*p.cellHeight - half
	return
}

func (p *Picker) Draw(dst *ebiten.Image, op *ebiten.DrawImageOptions) {
	dst.DrawImage(p.getBase(), op)
	dst.DrawImage(p.getOverlay(), op)
}

// Internal

func (p *Picker) fillRect(dst *ebiten.Image, x0, y0, x1, y1 float32, c color.Color) {
	path := vector.Path{}
	path.MoveTo(x0, y0)
	path.LineTo(x0, y1)
	path.LineTo(x1, y1)
	path.LineTo(x1, y0)
	path.Fill(dst, &vector.FillOptions{Color: c})
}

func (p *Picker) drawLabel(dst *ebiten.Image, s string, x0, y0, x1, y1 float32, c color.Color) {
	bounds := text.BoundString(p.face, s)
	x := int(x0) + (int(x1-x0)-bounds.Dx())/2 - bounds.Min.X
	y := int(y0) + (int(y1-y0)-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(dst, s, p.face, x, y, c)
}

func (p *Picker) getBase() *ebiten.Image {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.baseReady || p.themeVersion != p.theme.Version() {
		p.themeVersion = p.theme.Version()
		if p.base == nil {
			w, h := p.Size()
			p.base = ebiten.NewImage(int(w), int(h))
		}
		p.base.Fill(borderColor)

		for _, group := range p.catalog.Groups(p.rootsOnly) {
			for col, name := range group.Spellings {
				x0, y0, x1, y1 := p.cellRect(int(group.Class), col)
				p.fillRect(p.base, x0, y0, x1, y1, p.theme.Background(group.Class))
				p.drawLabel(p.base, name, x0, y0, x1, y1, p.theme.Foreground(group.Class))
			}
		}
		p.baseReady = true
		p.overlayReady = false
	}
	return p.base
}

func (p *Picker) getOverlay() *ebiten.Image {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.overlayReady {
		if p.overlay == nil {
			w, h := p.Size()
			p.overlay = ebiten.NewImage(int(w), int(h))
		}
		p.overlay.Fill(color.Transparent)

		if p.selected != "" {
			for _, group := range p.catalog.Groups(p.rootsOnly) {
				for col, name := range group.Spellings {
					if name != p.selected {
						continue
					}
					x0, y0, x1, y1 := p.cellRect(int(group.Class), col)
					fg := p.theme.Foreground(group.Class)
					b := p.borderWidth
					p.fillRect(p.overlay, x0, y0, x1, y0+b, fg)
					p.fillRect(p.overlay, x0, y1-b, x1, y1, fg)
					p.fillRect(p.overlay, x0, y0, x0+b, y1, fg)
					p.fillRect(p.overlay, x1-b, y0, x1, y1, fg)
				}
			}
		}
		p.overlayReady = true
	}
	return p.overlay
}
