// Package palette binds families of interchangeable tile-graphic slots to
// per-phase render variants and rewrites tile variants on phase changes.
package palette

import (
	"errors"
	"fmt"
)

// ErrEmptyPalette is returned when a binding is requested with no phases.
var ErrEmptyPalette = errors.New("empty palette: numPhases must be positive")

// Binding is the read-only family -> per-phase variant table produced by
// one resolution run. It is immutable until families are re-resolved.
type Binding struct {
	NumPhases int

	// phaseVariant[family][phase] is the atlas slot to display. Every
	// cell is populated; families lacking a slot for some phase fall
	// back to their first member.
	phaseVariant [][]int

	// Singletons counts families with exactly one member. A singleton is
	// a slot that never joined any cluster; harmless, but worth a
	// warning upstream.
	Singletons int
}

// Bind groups slots by family and fills the family x phase table.
//
// familyOf maps slot index -> family id (dense ids, as produced by
// adjacency.Resolve). phaseOf maps slot index -> the slot's authored phase.
// For each family and phase, the first member slot authored for that phase
// is chosen; phases with no authored member fall back to the family's
// first member (lowest slot index), so every (family, phase) cell is
// defined.
func Bind(familyOf, phaseOf []int, numPhases int) (*Binding, error) {
	if numPhases <= 0 {
		return nil, ErrEmptyPalette
	}
	if len(phaseOf) != len(familyOf) {
		return nil, fmt.Errorf("phase table has %d entries for %d slots",
			len(phaseOf), len(familyOf))
	}

	numFamilies := 0
	for _, f := range familyOf {
		if f+1 > numFamilies {
			numFamilies = f + 1
		}
	}

	// Members per family, ascending slot order (familyOf is walked in
	// slot order).
	members := make([][]int, numFamilies)
	for slot, f := range familyOf {
		members[f] = append(members[f], slot)
	}

	b := &Binding{
		NumPhases:    numPhases,
		phaseVariant: make([][]int, numFamilies),
	}
	for f, slots := range members {
		if len(slots) == 1 {
			b.Singletons++
		}
		row := make([]int, numPhases)
		for phase := 0; phase < numPhases; phase++ {
			row[phase] = slots[0] // fallback: first member
			for _, slot := range slots {
				if phaseOf[slot] == phase {
					row[phase] = slot
					break
				}
			}
		}
		b.phaseVariant[f] = row
	}
	return b, nil
}

// FamilyCount returns the number of families in the binding.
func (b *Binding) FamilyCount() int {
	return len(b.phaseVariant)
}

// Variant returns the slot to display for a family at a phase. The phase
// is clamped to [0, NumPhases).
func (b *Binding) Variant(family, phase int) int {
	if phase < 0 {
		phase = 0
	} else if phase >= b.NumPhases {
		phase = b.NumPhases - 1
	}
	return b.phaseVariant[family][phase]
}
