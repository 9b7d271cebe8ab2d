package grid

// Placer validates and commits placements against an Index. All checks run
// before any mutation, so a rejected request leaves the index untouched.
type Placer struct {
	index *Index
}

// NewPlacer creates a placer over the given index.
func NewPlacer(index *Index) *Placer {
	return &Placer{index: index}
}

// Place commits a multi-cell structure with the given footprint. It fails
// with ErrInvalidFootprint for a non-positive size and with *ConflictError
// if any footprint cell holds a tile or the footprint rectangle intersects
// an existing structure. On success every footprint cell is marked owned
// by the returned structure in a single update.
//
// Re-placing a structure over itself is not supported; erase it first.
func (pl *Placer) Place(origin, size Point, tileID int) (*Structure, error) {
	if size.X <= 0 || size.Y <= 0 {
		return nil, ErrInvalidFootprint
	}

	footprint := RectAt(origin, size)

	// Check every cell against single tiles.
	for _, c := range footprint.Cells() {
		if pl.index.TileAt(c) != nil {
			return nil, &ConflictError{Cell: c}
		}
	}

	// Check the rectangle against every existing structure's rectangle.
	for _, s := range pl.index.structures {
		if footprint.Intersects(s.Bounds()) {
			return nil, &ConflictError{Cell: firstOverlap(footprint, s.Bounds())}
		}
	}

	s := newStructure(origin, size, tileID)
	pl.index.putStructure(s)
	return s, nil
}

// PlaceSingle places one tile at the cell, displacing any prior occupant.
// A structure under the cell is removed whole. This cannot conflict: the
// cell is always fully replaced.
func (pl *Placer) PlaceSingle(pos Point, tileID int) *Tile {
	pl.Erase(pos)
	t := &Tile{Pos: pos, TileID: tileID}
	pl.index.putTile(t)
	return t
}

// Erase removes whatever occupies the cell: a single tile, or the whole
// structure whose footprint covers it. Returns true if anything was
// removed.
func (pl *Placer) Erase(pos Point) bool {
	if pl.index.removeTile(pos) {
		return true
	}
	if h, ok := pl.index.cells[pos]; ok {
		return pl.index.removeStructure(h)
	}
	return false
}

// firstOverlap returns the row-major first cell in the intersection of two
// overlapping rectangles.
func firstOverlap(a, b Rect) Point {
	x := max(a.X, b.X)
	y := max(a.Y, b.Y)
	return Point{X: x, Y: y}
}
