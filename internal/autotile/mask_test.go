package autotile

import (
	"math/rand"
	"testing"

	"github.com/samdwyer/mosaic/internal/grid"
)

func occupancyOf(cells ...grid.Point) func(grid.Point) bool {
	set := make(map[grid.Point]bool, len(cells))
	for _, c := range cells {
		set[c] = true
	}
	return func(p grid.Point) bool { return set[p] }
}

func TestComputeMaskHorizontalNeighbors(t *testing.T) {
	// A tile at (5,5) with neighbors at (4,5) and (6,5) only: bits for
	// offsets (-1,0) and (1,0) are 3 and 4 in scan order.
	mask := ComputeMask(grid.Pt(5, 5), occupancyOf(grid.Pt(4, 5), grid.Pt(6, 5)))

	want := uint8(1<<3 | 1<<4)
	if mask != want {
		t.Errorf("Mask = %08b, want %08b", mask, want)
	}
}

func TestComputeMaskBitOrder(t *testing.T) {
	center := grid.Pt(0, 0)
	for i, off := range neighborOffsets {
		mask := ComputeMask(center, occupancyOf(center.Add(off)))
		if mask != 1<<uint(i) {
			t.Errorf("Offset %s: mask = %08b, want bit %d", off, mask, i)
		}
	}

	// All neighbors present sets every bit; the center itself never
	// contributes.
	all := make([]grid.Point, 0, 9)
	all = append(all, center)
	for _, off := range neighborOffsets {
		all = append(all, center.Add(off))
	}
	if mask := ComputeMask(center, occupancyOf(all...)); mask != 0xFF {
		t.Errorf("Full neighborhood mask = %08b, want 11111111", mask)
	}
}

func TestComputeMaskDeterminism(t *testing.T) {
	// Identical snapshots always produce identical masks.
	rng := rand.New(rand.NewSource(7))
	cells := make([]grid.Point, 0, 30)
	for i := 0; i < 30; i++ {
		cells = append(cells, grid.Pt(rng.Intn(6)-3, rng.Intn(6)-3))
	}

	for i := 0; i < 10; i++ {
		a := ComputeMask(grid.Pt(0, 0), occupancyOf(cells...))
		b := ComputeMask(grid.Pt(0, 0), occupancyOf(cells...))
		if a != b {
			t.Fatalf("Mask not deterministic: %08b != %08b", a, b)
		}
	}
}

func TestRulesetVariant(t *testing.T) {
	cases := []struct {
		name  string
		rules Ruleset
		mask  uint8
		want  int
	}{
		{"modulo fallback", Ruleset{Size: 16}, 0x1A, 0x1A % 16},
		{"zero size", Ruleset{Size: 0}, 0xFF, 0},
		{"negative size", Ruleset{Size: -4}, 0x0F, 0},
		{"table hit", Ruleset{Size: 4, Table: map[uint8]int{0x18: 11}}, 0x18, 11},
		{"table miss falls back", Ruleset{Size: 4, Table: map[uint8]int{0x18: 11}}, 0x19, 0x19 % 4},
	}
	for _, tc := range cases {
		if got := tc.rules.Variant(tc.mask); got != tc.want {
			t.Errorf("%s: Variant(%08b) = %d, want %d", tc.name, tc.mask, got, tc.want)
		}
	}
}

func TestEvaluatorRefresh(t *testing.T) {
	ix := grid.NewIndex()
	pl := grid.NewPlacer(ix)
	ev := NewEvaluator(Ruleset{Size: 256})

	left := pl.PlaceSingle(grid.Pt(4, 5), 1)
	center := pl.PlaceSingle(grid.Pt(5, 5), 1)
	right := pl.PlaceSingle(grid.Pt(6, 5), 1)
	ev.Refresh(ix, center.Pos)

	if center.VariantIndex != 1<<3|1<<4 {
		t.Errorf("Center variant = %d, want %d", center.VariantIndex, 1<<3|1<<4)
	}
	// Neighbors see the center on their opposite side.
	if left.VariantIndex != 1<<4 {
		t.Errorf("Left variant = %d, want %d", left.VariantIndex, 1<<4)
	}
	if right.VariantIndex != 1<<3 {
		t.Errorf("Right variant = %d, want %d", right.VariantIndex, 1<<3)
	}

	// Erasing the center refreshes its neighbors back to isolation.
	pl.Erase(center.Pos)
	ev.Refresh(ix, center.Pos)
	if left.VariantIndex != 0 || right.VariantIndex != 0 {
		t.Errorf("Variants after erase = %d, %d, want 0, 0",
			left.VariantIndex, right.VariantIndex)
	}
}
