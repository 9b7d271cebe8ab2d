package grid

import "github.com/google/uuid"

// Tile is a single occupied cell. VariantIndex selects which graphic the
// render layer displays; it is rewritten by the autotile evaluator and the
// phase swapper, never by the tile itself.
type Tile struct {
	Pos          Point
	TileID       int
	VariantIndex int
}

// Handle identifies a placed structure.
type Handle = uuid.UUID

// Structure is a multi-cell footprint occupying a rectangle of cells as one
// logical unit.
type Structure struct {
	Handle Handle
	Origin Point
	Size   Point
	TileID int

	// Cells is derived from Origin and Size at creation and never mutated
	// independently.
	Cells []Point
}

// newStructure builds a structure and computes its occupied cells.
func newStructure(origin, size Point, tileID int) *Structure {
	return &Structure{
		Handle: uuid.New(),
		Origin: origin,
		Size:   size,
		TileID: tileID,
		Cells:  RectAt(origin, size).Cells(),
	}
}

// Bounds returns the structure's footprint rectangle.
func (s *Structure) Bounds() Rect {
	return RectAt(s.Origin, s.Size)
}
