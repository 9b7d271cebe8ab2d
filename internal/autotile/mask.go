// Package autotile selects tile render variants from 8-neighbor occupancy
// masks.
package autotile

import "github.com/samdwyer/mosaic/internal/grid"

// neighborOffsets lists the 8 grid-adjacent offsets in row-major scan
// order, center omitted. Offset i maps to mask bit i.
var neighborOffsets = [8]grid.Point{
	{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	{X: -1, Y: 0}, {X: 1, Y: 0},
	{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
}

// ComputeMask returns the 8-bit neighbor-presence mask for the cell. Bit i
// is set when the cell at pos + neighborOffsets[i] satisfies the occupancy
// predicate. The result is a pure function of the current occupancy
// snapshot.
func ComputeMask(pos grid.Point, occupied func(grid.Point) bool) uint8 {
	var mask uint8
	for i, off := range neighborOffsets {
		if occupied(pos.Add(off)) {
			mask |= 1 << uint(i)
		}
	}
	return mask
}

// Ruleset maps neighbor masks to render-variant indices. Table entries are
// authored content and take precedence; masks not covered fall back to
// mask mod Size.
type Ruleset struct {
	Size  int
	Table map[uint8]int
}

// Variant returns the render-variant index for a mask. A ruleset with no
// variants always selects 0.
func (r Ruleset) Variant(mask uint8) int {
	if v, ok := r.Table[mask]; ok {
		return v
	}
	if r.Size <= 0 {
		return 0
	}
	return int(mask) % r.Size
}
