package autotile

import "github.com/samdwyer/mosaic/internal/grid"

// Evaluator recomputes tile variants reactively as occupancy changes near
// them.
type Evaluator struct {
	rules Ruleset
}

// NewEvaluator creates an evaluator with the given ruleset.
func NewEvaluator(rules Ruleset) *Evaluator {
	return &Evaluator{rules: rules}
}

// Refresh recomputes the variant of the tile at pos, if any, and of every
// tile in its 8 neighboring cells. Call it after any occupancy change at
// pos: the changed cell appears in each neighbor's mask, so all of them
// are stale.
func (e *Evaluator) Refresh(ix *grid.Index, pos grid.Point) {
	e.refreshOne(ix, pos)
	for _, off := range neighborOffsets {
		e.refreshOne(ix, pos.Add(off))
	}
}

// refreshOne recomputes a single tile's variant from the current snapshot.
func (e *Evaluator) refreshOne(ix *grid.Index, pos grid.Point) {
	t := ix.TileAt(pos)
	if t == nil {
		return
	}
	mask := ComputeMask(pos, ix.OccupiedAt)
	t.VariantIndex = e.rules.Variant(mask)
}
