// Package adjacency clusters tile-graphic slots into visually
// interchangeable families by scoring edge compatibility between
// grid-adjacent slots of the source atlas.
package adjacency

import "github.com/lucasb-eyer/go-colorful"

// EdgeProfile describes one tile-graphic slot of a cols x rows atlas: the
// alpha samples along each edge, the slot's average color, and the hue at
// each edge. Profiles are produced externally (the core never reads image
// data) and are immutable inputs to clustering. There is one profile per
// slot, not per placed tile.
type EdgeProfile struct {
	Slot int // row-major index in the atlas

	// Defined marks an atlas position that actually carries a graphic.
	// Atlases may have gaps; undefined positions emit no compatibility
	// edges and always resolve to singleton families.
	Defined bool

	// Per-edge alpha samples, normalized to [0,1]. All four arrays have
	// the same length within one atlas.
	Top, Bottom, Left, Right []float64

	AvgColor colorful.Color

	// Per-edge hue, normalized to [0,1).
	HueTop, HueBottom, HueLeft, HueRight float64

	// PhaseIndex is the authored phase this slot's graphic belongs to
	// (e.g. season). Consumed by the palette binder.
	PhaseIndex int
}

// Hue returns a color's hue normalized to [0,1).
func Hue(c colorful.Color) float64 {
	h, _, _ := c.Hsv()
	return h / 360.0
}
