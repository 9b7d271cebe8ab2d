package grid

import "sort"

// Index is a sparse coordinate -> occupant lookup over the live tile and
// structure set. Every occupied coordinate maps to exactly one occupant:
// either a single tile or one cell of a structure footprint.
//
// Index is not safe for concurrent writers; the editor is the single
// writer and batch passes read snapshots.
type Index struct {
	tiles      map[Point]*Tile
	structures map[Handle]*Structure
	cells      map[Point]Handle // structure-owned cells
}

// NewIndex creates an empty occupancy index.
func NewIndex() *Index {
	return &Index{
		tiles:      make(map[Point]*Tile),
		structures: make(map[Handle]*Structure),
		cells:      make(map[Point]Handle),
	}
}

// OccupiedAt returns true if any tile or structure occupies the cell.
func (ix *Index) OccupiedAt(p Point) bool {
	if _, ok := ix.tiles[p]; ok {
		return true
	}
	_, ok := ix.cells[p]
	return ok
}

// TileAt returns the single tile at the cell, or nil.
func (ix *Index) TileAt(p Point) *Tile {
	return ix.tiles[p]
}

// StructureAt returns the structure whose footprint covers the cell, or nil.
func (ix *Index) StructureAt(p Point) *Structure {
	h, ok := ix.cells[p]
	if !ok {
		return nil
	}
	return ix.structures[h]
}

// Structure returns the structure with the given handle, or nil.
func (ix *Index) Structure(h Handle) *Structure {
	return ix.structures[h]
}

// TileCount returns the number of single tiles.
func (ix *Index) TileCount() int {
	return len(ix.tiles)
}

// StructureCount returns the number of placed structures.
func (ix *Index) StructureCount() int {
	return len(ix.structures)
}

// Tiles returns all single tiles ordered by position (row-major). The
// stable order keeps batch passes over the tile set deterministic.
func (ix *Index) Tiles() []*Tile {
	tiles := make([]*Tile, 0, len(ix.tiles))
	for _, t := range ix.tiles {
		tiles = append(tiles, t)
	}
	sort.Slice(tiles, func(i, j int) bool {
		if tiles[i].Pos.Y != tiles[j].Pos.Y {
			return tiles[i].Pos.Y < tiles[j].Pos.Y
		}
		return tiles[i].Pos.X < tiles[j].Pos.X
	})
	return tiles
}

// Structures returns all placed structures in no particular order.
func (ix *Index) Structures() []*Structure {
	structures := make([]*Structure, 0, len(ix.structures))
	for _, s := range ix.structures {
		structures = append(structures, s)
	}
	return structures
}

// Snapshot returns every occupied cell mapped to the occupant's tile id.
// Used to verify that rejected placements leave the index untouched.
func (ix *Index) Snapshot() map[Point]int {
	snap := make(map[Point]int, len(ix.tiles)+len(ix.cells))
	for p, t := range ix.tiles {
		snap[p] = t.TileID
	}
	for p, h := range ix.cells {
		snap[p] = ix.structures[h].TileID
	}
	return snap
}

// putTile inserts a tile, displacing nothing. Callers ensure the cell is
// free first.
func (ix *Index) putTile(t *Tile) {
	ix.tiles[t.Pos] = t
}

// putStructure marks all of the structure's cells owned by its handle in
// one update.
func (ix *Index) putStructure(s *Structure) {
	ix.structures[s.Handle] = s
	for _, c := range s.Cells {
		ix.cells[c] = s.Handle
	}
}

// removeTile deletes the tile at the cell, reporting whether one existed.
func (ix *Index) removeTile(p Point) bool {
	if _, ok := ix.tiles[p]; !ok {
		return false
	}
	delete(ix.tiles, p)
	return true
}

// removeStructure deletes the structure and frees all of its cells.
func (ix *Index) removeStructure(h Handle) bool {
	s, ok := ix.structures[h]
	if !ok {
		return false
	}
	for _, c := range s.Cells {
		delete(ix.cells, c)
	}
	delete(ix.structures, h)
	return true
}
