package grid

import (
	"errors"
	"math/rand"
	"testing"
)

func TestPlaceStructureScenario(t *testing.T) {
	ix := NewIndex()
	pl := NewPlacer(ix)

	// A 3x2 structure at (10,10) fits on an empty grid.
	first, err := pl.Place(Pt(10, 10), Pt(3, 2), 1)
	if err != nil {
		t.Fatalf("First placement failed: %v", err)
	}
	if len(first.Cells) != 6 {
		t.Errorf("Expected 6 occupied cells, got %d", len(first.Cells))
	}

	// A 2x2 structure at (11,11) overlaps the first one.
	_, err = pl.Place(Pt(11, 11), Pt(2, 2), 2)
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("Expected ConflictError, got %v", err)
	}
	if conflict.Cell != Pt(11, 11) {
		t.Errorf("Expected conflict at (11,11), got %s", conflict.Cell)
	}

	// Moved right of the first footprint, the same structure fits.
	if _, err := pl.Place(Pt(13, 10), Pt(2, 2), 2); err != nil {
		t.Errorf("Placement at (13,10) should succeed: %v", err)
	}

	if ix.StructureCount() != 2 {
		t.Errorf("Expected 2 structures, got %d", ix.StructureCount())
	}
}

func TestPlaceRejectsInvalidFootprint(t *testing.T) {
	pl := NewPlacer(NewIndex())

	for _, size := range []Point{Pt(0, 1), Pt(1, 0), Pt(-2, 3), Pt(0, 0)} {
		_, err := pl.Place(Pt(0, 0), size, 1)
		if !errors.Is(err, ErrInvalidFootprint) {
			t.Errorf("Size %s: expected ErrInvalidFootprint, got %v", size, err)
		}
	}
}

func TestPlaceRejectsTileOverlap(t *testing.T) {
	ix := NewIndex()
	pl := NewPlacer(ix)

	pl.PlaceSingle(Pt(4, 4), 7)

	_, err := pl.Place(Pt(3, 3), Pt(3, 3), 1)
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("Expected ConflictError over tile cell, got %v", err)
	}
	if conflict.Cell != Pt(4, 4) {
		t.Errorf("Expected conflict at tile cell (4,4), got %s", conflict.Cell)
	}
}

func TestRejectedPlacementIsAtomic(t *testing.T) {
	ix := NewIndex()
	pl := NewPlacer(ix)

	pl.PlaceSingle(Pt(2, 2), 3)
	if _, err := pl.Place(Pt(5, 5), Pt(2, 2), 1); err != nil {
		t.Fatalf("Setup placement failed: %v", err)
	}

	before := ix.Snapshot()

	// Overlaps both the tile and the structure; must commit nothing.
	if _, err := pl.Place(Pt(1, 1), Pt(6, 6), 9); err == nil {
		t.Fatal("Expected overlapping placement to fail")
	}

	after := ix.Snapshot()
	if len(before) != len(after) {
		t.Fatalf("Occupied cell count changed: %d != %d", len(before), len(after))
	}
	for p, id := range before {
		if after[p] != id {
			t.Errorf("Cell %s changed: tile id %d != %d", p, id, after[p])
		}
	}
}

func TestPlaceSingleDisplaces(t *testing.T) {
	ix := NewIndex()
	pl := NewPlacer(ix)

	pl.PlaceSingle(Pt(1, 1), 1)
	replaced := pl.PlaceSingle(Pt(1, 1), 2)
	if got := ix.TileAt(Pt(1, 1)); got != replaced || got.TileID != 2 {
		t.Errorf("Expected tile id 2 at (1,1), got %+v", got)
	}
	if ix.TileCount() != 1 {
		t.Errorf("Expected 1 tile after overwrite, got %d", ix.TileCount())
	}

	// Painting over a structure cell removes the whole structure.
	s, err := pl.Place(Pt(5, 5), Pt(2, 2), 3)
	if err != nil {
		t.Fatalf("Placement failed: %v", err)
	}
	pl.PlaceSingle(Pt(6, 6), 4)
	if ix.Structure(s.Handle) != nil {
		t.Error("Structure should be removed when a cell is painted over")
	}
	for _, c := range s.Cells {
		if c != Pt(6, 6) && ix.OccupiedAt(c) {
			t.Errorf("Cell %s should be free after structure removal", c)
		}
	}
}

func TestErase(t *testing.T) {
	ix := NewIndex()
	pl := NewPlacer(ix)

	if pl.Erase(Pt(0, 0)) {
		t.Error("Erasing an empty cell should return false")
	}

	pl.PlaceSingle(Pt(1, 1), 1)
	if !pl.Erase(Pt(1, 1)) {
		t.Error("Erasing a tile should return true")
	}
	if ix.OccupiedAt(Pt(1, 1)) {
		t.Error("Cell should be free after erase")
	}

	s, err := pl.Place(Pt(3, 3), Pt(2, 3), 2)
	if err != nil {
		t.Fatalf("Placement failed: %v", err)
	}
	if !pl.Erase(Pt(4, 5)) {
		t.Error("Erasing a structure cell should return true")
	}
	for _, c := range s.Cells {
		if ix.OccupiedAt(c) {
			t.Errorf("Cell %s should be free after structure erase", c)
		}
	}
}

func TestOccupancyExclusivity(t *testing.T) {
	// Random placement sequences never produce overlapping occupants.
	rng := rand.New(rand.NewSource(99))

	ix := NewIndex()
	pl := NewPlacer(ix)

	expected := 0
	for i := 0; i < 500; i++ {
		origin := Pt(rng.Intn(40), rng.Intn(40))
		switch rng.Intn(3) {
		case 0:
			if s := ix.StructureAt(origin); s != nil {
				expected -= len(s.Cells)
			} else if ix.TileAt(origin) != nil {
				expected--
			}
			expected++
			pl.PlaceSingle(origin, rng.Intn(8))
		case 1:
			size := Pt(1+rng.Intn(4), 1+rng.Intn(4))
			if s, err := pl.Place(origin, size, rng.Intn(8)); err == nil {
				expected += len(s.Cells)
			}
		case 2:
			if ix.TileAt(origin) != nil {
				expected--
			} else if s := ix.StructureAt(origin); s != nil {
				expected -= len(s.Cells)
			}
			pl.Erase(origin)
		}
	}

	// Structure rectangles are pairwise disjoint.
	structures := ix.Structures()
	for i := 0; i < len(structures); i++ {
		for j := i + 1; j < len(structures); j++ {
			if structures[i].Bounds().Intersects(structures[j].Bounds()) {
				t.Errorf("Structures %d and %d overlap", i, j)
			}
		}
	}

	// No structure cell coincides with a tile cell, and the occupied cell
	// count matches what the committed operations produced.
	for _, s := range structures {
		for _, c := range s.Cells {
			if ix.TileAt(c) != nil {
				t.Errorf("Structure cell %s also holds a tile", c)
			}
		}
	}
	if got := len(ix.Snapshot()); got != expected {
		t.Errorf("Occupied cell count mismatch: got %d, expected %d", got, expected)
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 3, H: 3}

	cases := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlapping", Rect{X: 2, Y: 2, W: 3, H: 3}, true},
		{"contained", Rect{X: 1, Y: 1, W: 1, H: 1}, true},
		{"touching right edge", Rect{X: 3, Y: 0, W: 2, H: 2}, false},
		{"touching bottom edge", Rect{X: 0, Y: 3, W: 2, H: 2}, false},
		{"disjoint", Rect{X: 10, Y: 10, W: 2, H: 2}, false},
	}
	for _, tc := range cases {
		if got := a.Intersects(tc.b); got != tc.want {
			t.Errorf("%s: Intersects = %v, want %v", tc.name, got, tc.want)
		}
		if got := tc.b.Intersects(a); got != tc.want {
			t.Errorf("%s (reversed): Intersects = %v, want %v", tc.name, got, tc.want)
		}
	}
}
