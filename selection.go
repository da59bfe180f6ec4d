package main

import (
	"math/rand"
	"sync"
	"time"
)

// NoPitch is reported to listeners while nothing is selected.
const NoPitch = -1

// Selector holds the current note selection and tells subscribers
// about changes. Invalid names clear the selection instead of raising
// an error.
type Selector struct {
	mu        sync.Mutex
	catalog   *Catalog
	name      string
	pitch     int
	rootsOnly bool

	listeners map[int]func(name string, pitch int)
	nextID    int

	rand *rand.Rand
}

// NewSelector starts unselected unless initial resolves in the active
// catalog. An unresolvable initial name degrades silently.
func NewSelector(catalog *Catalog, initial string, rootsOnly bool) *Selector {
	s := &Selector{
		catalog:   catalog,
		pitch:     NoPitch,
		rootsOnly: rootsOnly,
		listeners: map[int]func(string, int){},
		rand:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	if initial != "" {
		if pc, ok := catalog.Resolve(initial, rootsOnly); ok {
			s.name = initial
			s.pitch = int(pc)
		}
	}
	return s
}

func (s *Selector) Name() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name
}

func (s *Selector) Pitch() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pitch
}

func (s *Selector) Selected() bool {
	return s.Pitch() != NoPitch
}

func (s *Selector) RootsOnly() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rootsOnly
}

// SetRootsOnly switches the active catalog. The current selection is
// left alone even when its spelling is absent from the root subset;
// it only changes on the next explicit transition.
func (s *Selector) SetRootsOnly(rootsOnly bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rootsOnly = rootsOnly
}

// Set selects name, or clears the selection when name is empty or not
// in the active catalog.
func (s *Selector) Set(name string) {
	if name == "" {
		s.transition("", NoPitch)
		return
	}
	s.mu.Lock()
	pc, ok := s.catalog.Resolve(name, s.rootsOnly)
	s.mu.Unlock()
	if !ok {
		s.transition("", NoPitch)
		return
	}
	s.transition(name, int(pc))
}

func (s *Selector) Clear() {
	s.transition("", NoPitch)
}

// Random picks a pitch class uniformly from the active catalog, then a
// spelling uniformly within it. It resamples until the result differs
// from the current selection, unless the whole catalog holds a single
// note.
func (s *Selector) Random() {
	s.mu.Lock()
	multiple := s.catalog.TotalNotes(s.rootsOnly) > 1
	var name string
	var pc PitchClass
	for {
		pc = PitchClass(s.rand.Intn(NumPitchClasses))
		spellings := s.catalog.Spellings(pc, s.rootsOnly)
		name = spellings[s.rand.Intn(len(spellings))]
		if !multiple || name != s.name {
			break
		}
	}
	s.mu.Unlock()
	s.transition(name, int(pc))
}

// Subscribe registers a listener for completed transitions. The
// returned cancel removes it; cancelling twice is harmless.
func (s *Selector) Subscribe(fn func(name string, pitch int)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// transition moves to the new state and notifies listeners. No-op
// transitions are swallowed.
func (s *Selector) transition(name string, pitch int) {
	s.mu.Lock()
	if s.name == name && s.pitch == pitch {
		s.mu.Unlock()
		return
	}
	s.name = name
	s.pitch = pitch
	fns := make([]func(string, int), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(name, pitch)
	}
}
