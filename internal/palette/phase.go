package palette

import "github.com/samdwyer/mosaic/internal/grid"

// PhaseControl is the single global phase record. External control (UI,
// game logic) writes the fields and sets Dirty; Swap consumes the record
// and clears Dirty.
type PhaseControl struct {
	PhaseIndex int
	BiomeID    int
	NumPhases  int
	Dirty      bool
}

// Cycle advances to the next phase and marks the control dirty.
func (pc *PhaseControl) Cycle() {
	if pc.NumPhases <= 0 {
		return
	}
	pc.PhaseIndex = (pc.PhaseIndex + 1) % pc.NumPhases
	pc.Dirty = true
}

// Swap rewrites each tile's displayed variant for the current phase and
// clears the dirty flag. Tiles whose id has no family binding are left
// untouched; variants are written only when they actually change. Returns
// the number of tiles rewritten.
//
// Swap does nothing unless pc.Dirty is set, so it is cheap to call every
// frame.
func Swap(tiles []*grid.Tile, tileToFamily map[int]int, b *Binding, pc *PhaseControl) int {
	if !pc.Dirty {
		return 0
	}
	pc.Dirty = false

	updated := 0
	for _, t := range tiles {
		family, ok := tileToFamily[t.TileID]
		if !ok {
			continue
		}
		v := b.Variant(family, pc.PhaseIndex)
		if t.VariantIndex != v {
			t.VariantIndex = v
			updated++
		}
	}
	return updated
}
