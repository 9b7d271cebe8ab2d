package adjacency

// Resolve clusters tile-graphic slots into families via union-find over
// the compatibility edges.
//
// Pass 1 unions edges whose primary score (hue when chromaFirst, alpha
// otherwise) meets the threshold; pass 2 unions edges whose weighted score
// meets it, irrespective of pass 1. Family ids are assigned by walking
// slot indices ascending and numbering each union-find root the first time
// it is seen, so identical inputs always yield identical family-id arrays.
// A slot that never joined any cluster becomes its own singleton family.
//
// Returns familyOf: slot index -> family id.
func Resolve(edges []Edge, numSlots int, threshold float64, chromaFirst bool) []int {
	uf := newUnionFind(numSlots)

	for _, e := range edges {
		primary := e.AlphaScore
		if chromaFirst {
			primary = e.HueScore
		}
		if primary >= threshold {
			uf.union(e.A, e.B)
		}
	}
	for _, e := range edges {
		if e.WeightedScore >= threshold {
			uf.union(e.A, e.B)
		}
	}

	// Stable first-seen-root numbering.
	familyOf := make([]int, numSlots)
	rootFamily := make(map[int]int, numSlots)
	next := 0
	for slot := 0; slot < numSlots; slot++ {
		root := uf.find(slot)
		id, ok := rootFamily[root]
		if !ok {
			id = next
			rootFamily[root] = id
			next++
		}
		familyOf[slot] = id
	}
	return familyOf
}

// Neighbors returns, for each slot, the slots it shares a compatibility
// edge with at or above the given threshold on the weighted score. The
// lists are diagnostics only; clustering does not consume them.
func Neighbors(edges []Edge, numSlots int, threshold float64) [][]int {
	out := make([][]int, numSlots)
	for _, e := range edges {
		if e.WeightedScore < threshold {
			continue
		}
		out[e.A] = append(out[e.A], e.B)
		out[e.B] = append(out[e.B], e.A)
	}
	return out
}

// FamilyCount returns the number of distinct families in a familyOf
// mapping. Ids are dense, so it is one past the maximum.
func FamilyCount(familyOf []int) int {
	count := 0
	for _, f := range familyOf {
		if f+1 > count {
			count = f + 1
		}
	}
	return count
}
