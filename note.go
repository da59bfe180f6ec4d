package main

import "fmt"

// PitchClass identifies one of the 12 equivalence classes of musical
// pitch. 0 = C.
type PitchClass int

const NumPitchClasses = 12

func (pc PitchClass) Valid() bool {
	return pc >= 0 && pc < NumPitchClasses
}

func (pc PitchClass) IsWhite() bool {
	degree := int(pc) % NumPitchClasses
	return map[int]bool{0: true, 2: true, 4: true, 5: true, 7: true, 9: true, 11: true}[degree]
}

// Group is one pitch class together with its spellings, in catalog
// order.
type Group struct {
	Class     PitchClass
	Spellings []string
}

// Catalog maps each pitch class to its enharmonic spellings. The first
// spelling of each group is the canonical root. Accidental glyphs are
// significant characters: lookups are exact and case-sensitive.
type Catalog struct {
	groups [NumPitchClasses][]string
}

func DefaultCatalog() *Catalog {
	return &Catalog{groups: [NumPitchClasses][]string{
		{"C", "B♯", "D♭♭"},
		{"C♯", "D♭", "B♯♯"},
		{"D", "C♯♯", "E♭♭"},
		{"D♯", "E♭", "F♭♭"},
		{"E", "F♭", "D♯♯"},
		{"F", "E♯", "G♭♭"},
		{"F♯", "G♭", "E♯♯"},
		{"G", "F♯♯", "A♭♭"},
		{"G♯", "A♭"},
		{"A", "G♯♯", "B♭♭"},
		{"A♯", "B♭", "C♭♭"},
		{"B", "C♭", "A♯♯"},
	}}
}

// NewCatalog builds a catalog from explicit groups, one per pitch
// class. Groups must be non-empty and disjoint.
func NewCatalog(groups [NumPitchClasses][]string) (*Catalog, error) {
	seen := map[string]PitchClass{}
	for pc, group := range groups {
		if len(group) == 0 {
			return nil, fmt.Errorf("pitch class %d has no spellings", pc)
		}
		for _, name := range group {
			if prev, ok := seen[name]; ok {
				return nil, fmt.Errorf("spelling %q in both group %d and group %d", name, prev, pc)
			}
			seen[name] = PitchClass(pc)
		}
	}
	return &Catalog{groups: groups}, nil
}

// Spellings returns the spellings of one pitch class. With rootsOnly
// set only the canonical root is returned.
func (c *Catalog) Spellings(pc PitchClass, rootsOnly bool) []string {
	if !pc.Valid() {
		return nil
	}
	if rootsOnly {
		return c.groups[pc][:1]
	}
	return c.groups[pc]
}

// Resolve maps a note name to its pitch class by exact string match
// against the active catalog.
func (c *Catalog) Resolve(name string, rootsOnly bool) (PitchClass, bool) {
	for pc := PitchClass(0); pc < NumPitchClasses; pc++ {
		for _, s := range c.Spellings(pc, rootsOnly) {
			if s == name {
				return pc, true
			}
		}
	}
	return 0, false
}

// Groups enumerates all pitch classes with their active spellings, in
// stable order.
func (c *Catalog) Groups(rootsOnly bool) []Group {
	groups := make([]Group, 0, NumPitchClasses)
	for pc := PitchClass(0); pc < NumPitchClasses; pc++ {
		groups = append(groups, Group{Class: pc, Spellings: c.Spellings(pc, rootsOnly)})
	}
	return groups
}

// TotalNotes counts all selectable spellings in the active catalog.
func (c *Catalog) TotalNotes(rootsOnly bool) int {
	var n int
	for pc := PitchClass(0); pc < NumPitchClasses; pc++ {
		n += len(c.Spellings(pc, rootsOnly))
	}
	return n
}

// MaxSpellings is the widest group of the active catalog, used for
// chooser layout.
func (c *Catalog) MaxSpellings(rootsOnly bool) int {
	var max int
	for pc := PitchClass(0); pc < NumPitchClasses; pc++ {
		if n := len(c.Spellings(pc, rootsOnly)); n > max {
			max = n
		}
	}
	return max
}
