package adjacency

import "math"

const (
	// alphaFloor excludes fully (or nearly) transparent sample pairs from
	// alpha scoring.
	alphaFloor = 0.1
	// alphaTolerance is the per-pair match threshold for alpha samples.
	alphaTolerance = 0.35
)

// Weights blends the hue and alpha scores into an edge's weighted score.
type Weights struct {
	Chroma float64
	Alpha  float64
}

// DefaultWeights favors hue agreement over alpha-shape agreement.
var DefaultWeights = Weights{Chroma: 0.6, Alpha: 0.4}

// Edge is a scored compatibility relationship between two atlas-adjacent
// tile-graphic slots. All scores are in [0,1].
type Edge struct {
	A, B          int
	AlphaScore    float64
	HueScore      float64
	WeightedScore float64
}

// BuildEdges emits one compatibility edge per atlas-adjacent slot pair:
// each slot against its right neighbor (right edge vs. the neighbor's left
// edge) and its bottom neighbor (bottom vs. top), when those neighbors
// exist. Profiles are indexed row-major within the cols x rows atlas.
// Pairs touching an undefined atlas position (a gap with no graphic) are
// skipped entirely, so gaps never join or bridge families.
func BuildEdges(profiles []EdgeProfile, cols, rows int, w Weights) []Edge {
	edges := make([]Edge, 0, 2*len(profiles))
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			i := row*cols + col
			if i >= len(profiles) || !profiles[i].Defined {
				continue
			}
			if col+1 < cols && i+1 < len(profiles) && profiles[i+1].Defined {
				edges = append(edges, scoreEdge(
					&profiles[i], &profiles[i+1],
					profiles[i].Right, profiles[i+1].Left,
					profiles[i].HueRight, profiles[i+1].HueLeft,
					w,
				))
			}
			if j := i + cols; row+1 < rows && j < len(profiles) && profiles[j].Defined {
				edges = append(edges, scoreEdge(
					&profiles[i], &profiles[j],
					profiles[i].Bottom, profiles[j].Top,
					profiles[i].HueBottom, profiles[j].HueTop,
					w,
				))
			}
		}
	}
	return edges
}

// scoreEdge scores one adjacent pair across their shared border.
func scoreEdge(a, b *EdgeProfile, aSamples, bSamples []float64, aHue, bHue float64, w Weights) Edge {
	alpha := alphaScore(aSamples, bSamples)
	hue := hueScore(aHue, bHue)
	return Edge{
		A:             a.Slot,
		B:             b.Slot,
		AlphaScore:    alpha,
		HueScore:      hue,
		WeightedScore: w.Chroma*hue + w.Alpha*alpha,
	}
}

// alphaScore compares two edge sample arrays. A pair is comparable when
// either side's alpha exceeds the floor, and matches when the samples
// differ by less than the tolerance. The score is matches over comparable
// pairs, or 0 when no pair is comparable.
func alphaScore(a, b []float64) float64 {
	n := min(len(a), len(b))
	comparable, matches := 0, 0
	for i := 0; i < n; i++ {
		if a[i] <= alphaFloor && b[i] <= alphaFloor {
			continue
		}
		comparable++
		if math.Abs(a[i]-b[i]) < alphaTolerance {
			matches++
		}
	}
	if comparable == 0 {
		return 0
	}
	return float64(matches) / float64(comparable)
}

// hueScore maps circular hue distance to a similarity in [0,1]. Hues are
// normalized to [0,1), so the wrap-around distance is min(d, 1-d).
func hueScore(h1, h2 float64) float64 {
	d := math.Abs(h1 - h2)
	if 1-d < d {
		d = 1 - d
	}
	return 1 - d
}
