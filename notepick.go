package main

import (
	"errors"
	"image/color"
	"log"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var Finished = errors.New("notepick finished")

// errMissingAnchor aborts construction when a rendering piece failed to
// materialize; the widget never runs partially wired.
var errMissingAnchor = errors.New("rendering anchor missing")

const (
	summaryHeight = 36
	labelSize     = 16
)

// Config carries the embedding-side knobs for one NotePick.
type Config struct {
	Catalog     *Catalog
	InitialNote string
	RootsOnly   bool
	Theme       *[NumPitchClasses]*color.RGBA

	HistoryWindow time.Duration

	// Optional external bridges; nil disables them.
	Notifier *Notifier
	Audition *Audition
}

// NotePick is the whole widget: summary bar on top, chooser overlay or
// history strip below. Implements ebiten.Game.
type NotePick struct {
	selector *Selector
	theme    *Theme
	summary  *Summary
	picker   *Picker
	history  *History

	notifier *Notifier
	audition *Audition

	open bool

	width  float32
	height float32

	// Attach/detach bookkeeping. Callbacks carry the generation they
	// were attached under; stale generations are dropped.
	mu       sync.Mutex
	attached bool
	gen      int
	cancel   func()
}

func NewNotePick(cfg Config) (*NotePick, error) {
	catalog := cfg.Catalog
	if catalog == nil {
		catalog = DefaultCatalog()
	}

	face, err := loadFace(labelSize)
	if err != nil {
		return nil, err
	}

	theme := NewTheme()
	theme.Set(cfg.Theme)

	picker, err := NewPicker(catalog, theme, face)
	if err != nil {
		return nil, err
	}
	picker.SetRootsOnly(cfg.RootsOnly)

	width, pickerHeight := picker.Size()
	summary, err := NewSummary(theme, face, width, summaryHeight)
	if err != nil {
		return nil, err
	}

	window := cfg.HistoryWindow
	if window <= 0 {
		window = 10 * time.Second
	}

	np := &NotePick{
		selector: NewSelector(catalog, cfg.InitialNote, cfg.RootsOnly),
		theme:    theme,
		summary:  summary,
		picker:   picker,
		history:  NewHistory(theme, window, width, pickerHeight),
		notifier: cfg.Notifier,
		audition: cfg.Audition,
		width:    width,
		height:   summaryHeight + pickerHeight,
	}
	return np, nil
}

// Attach wires the external bridges to the selector. Calling it again
// without a Detach in between is a no-op, so re-attachment never
// accumulates duplicate subscriptions.
func (np *NotePick) Attach() {
	np.mu.Lock()
	defer np.mu.Unlock()
	if np.attached {
		return
	}
	np.attached = true
	np.gen++
	gen := np.gen

	np.cancel = np.selector.Subscribe(func(name string, pitch int) {
		if !np.tokenValid(gen) {
			log.Printf("Dropping stale selection callback (%q)", name)
			return
		}
		if pitch != NoPitch {
			np.history.Record(PitchClass(pitch))
			if np.audition != nil {
				np.audition.Play(PitchClass(pitch))
			}
		}
		if np.notifier != nil {
			np.notifier.Notify(name, pitch)
		}
	})
}

// Detach cancels the subscriptions and invalidates the token, so any
// callback still in flight is ignored.
func (np *NotePick) Detach() {
	np.mu.Lock()
	defer np.mu.Unlock()
	if !np.attached {
		return
	}
	np.attached = false
	np.gen++
	if np.cancel != nil {
		np.cancel()
		np.cancel = nil
	}
}

func (np *NotePick) tokenValid(gen int) bool {
	np.mu.Lock()
	defer np.mu.Unlock()
	return np.attached && np.gen == gen
}

// Programmatic accessors, also driven by the OSC server.

func (np *NotePick) Name() string    { return np.selector.Name() }
func (np *NotePick) Pitch() int      { return np.selector.Pitch() }
func (np *NotePick) Set(name string) { np.selector.Set(name) }
func (np *NotePick) Clear()          { np.selector.Clear() }
func (np *NotePick) Random()         { np.selector.Random() }
func (np *NotePick) RootsOnly() bool { return np.selector.RootsOnly() }

func (np *NotePick) Subscribe(fn func(string, int)) func() {
	return np.selector.Subscribe(fn)
}

// SetRootsOnly switches catalog mode: the entry list re-renders but the
// current selection stays put and nothing is emitted.
func (np *NotePick) SetRootsOnly(rootsOnly bool) {
	np.selector.SetRootsOnly(rootsOnly)
	np.picker.SetRootsOnly(rootsOnly)
}

func (np *NotePick) SetTheme(overrides *[NumPitchClasses]*color.RGBA) {
	np.theme.Set(overrides)
}

// Implements ebiten.Game.

func (np *NotePick) Update() error {
	// Widgets mirror the selector.
	np.summary.SetSelection(np.selector.Name(), np.selector.Pitch())
	np.picker.SetSelected(np.selector.Name())

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		cx, cy := ebiten.CursorPosition()
		x, y := float32(cx), float32(cy)
		if np.open {
			if name, ok := np.picker.Hit(x, y-summaryHeight); ok {
				np.selector.Set(name)
				np.open = false
			}
		} else {
			switch {
			case np.summary.HitOpen(x, y):
				np.open = true
			case np.summary.HitRandom(x, y):
				np.selector.Random()
			case np.summary.HitClear(x, y):
				np.selector.Clear()
			}
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		np.open = !np.open
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		np.selector.Random()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		np.selector.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		np.SetRootsOnly(!np.selector.RootsOnly())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if np.open {
			np.open = false
		} else {
			return Finished
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return Finished
	}

	return nil
}

func (np *NotePick) Draw(screen *ebiten.Image) {
	screen.Fill(borderColor)

	np.summary.Draw(screen, &ebiten.DrawImageOptions{})

	contentOp := ebiten.DrawImageOptions{}
	contentOp.GeoM.Translate(0, summaryHeight)
	if np.open {
		np.picker.Draw(screen, &contentOp)
	} else {
		np.history.Draw(screen, &contentOp)
	}
}

func (np *NotePick) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(np.width), int(np.height)
}
