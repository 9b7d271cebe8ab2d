package tileset

import (
	"fmt"
	"strconv"

	"github.com/samdwyer/mosaic/internal/adjacency"
	"github.com/samdwyer/mosaic/internal/autotile"
)

// SchemaVersion is the tileset JSON schema this package understands. The
// schema is explicit and versioned; producers commit to it, nothing is
// discovered by reflection.
const SchemaVersion = 1

// EdgesDef holds per-edge alpha samples as 0-255 ints. A nil EdgesDef
// means the slot is fully opaque on all four edges.
type EdgesDef struct {
	Top    []int `json:"top"`
	Bottom []int `json:"bottom"`
	Left   []int `json:"left"`
	Right  []int `json:"right"`
}

// SlotDef defines one tile-graphic slot of the atlas.
type SlotDef struct {
	Index int       `json:"index"` // row-major position in the atlas
	Name  string    `json:"name"`  // e.g. "grass_spring"
	Glyph string    `json:"glyph"` // single character for rendering
	Color string    `json:"color"` // hex color code (e.g. "#4CAF50")
	Phase int       `json:"phase"` // authored phase (e.g. season)
	Edges *EdgesDef `json:"edges,omitempty"`
}

// RulesetDef defines the neighbor-mask ruleset. Table keys are decimal
// mask values (JSON object keys must be strings).
type RulesetDef struct {
	Size  int            `json:"size"`
	Table map[string]int `json:"table,omitempty"`
}

// ClusteringDef carries the family-resolution parameters authored with
// the tileset.
type ClusteringDef struct {
	Threshold         float64 `json:"threshold"`
	NeighborThreshold float64 `json:"neighborThreshold"`
	ChromaWeight      float64 `json:"chromaWeight"`
	AlphaWeight       float64 `json:"alphaWeight"`
	ChromaFirst       bool    `json:"chromaFirst"`
}

// TilesetDef is the root record of a tileset JSON file.
type TilesetDef struct {
	Version     int           `json:"version"`
	Name        string        `json:"name"`
	Cols        int           `json:"cols"`
	Rows        int           `json:"rows"`
	NumPhases   int           `json:"numPhases"`
	SampleCount int           `json:"sampleCount"`
	Ruleset     RulesetDef    `json:"ruleset"`
	Clustering  ClusteringDef `json:"clustering"`
	Slots       []SlotDef     `json:"slots"`
}

// validate checks a decoded tileset's schema version, atlas dimensions,
// and slot indices.
func (def *TilesetDef) validate() error {
	if def.Version != SchemaVersion {
		return fmt.Errorf("unsupported schema version %d (want %d)",
			def.Version, SchemaVersion)
	}
	if def.Cols <= 0 || def.Rows <= 0 {
		return fmt.Errorf("invalid atlas dimensions %dx%d", def.Cols, def.Rows)
	}
	if len(def.Slots) > def.Cols*def.Rows {
		return fmt.Errorf("%d slots exceed %dx%d atlas",
			len(def.Slots), def.Cols, def.Rows)
	}
	for _, slot := range def.Slots {
		if slot.Index < 0 || slot.Index >= def.Cols*def.Rows {
			return fmt.Errorf("slot %q: index %d outside %dx%d atlas",
				slot.Name, slot.Index, def.Cols, def.Rows)
		}
	}
	return nil
}

// Registry holds a loaded tileset and the derived lookups the editor and
// renderer need.
type Registry struct {
	def   *TilesetDef
	slots map[int]*SlotDef
}

// NewRegistry creates a registry from a loaded tileset definition.
func NewRegistry(def *TilesetDef) *Registry {
	r := &Registry{
		def:   def,
		slots: make(map[int]*SlotDef, len(def.Slots)),
	}
	for i := range def.Slots {
		r.slots[def.Slots[i].Index] = &def.Slots[i]
	}
	return r
}

// LoadRegistry loads a tileset file and wraps it in a registry.
func LoadRegistry(filename string) (*Registry, error) {
	def, err := LoadTileset(filename)
	if err != nil {
		return nil, err
	}
	return NewRegistry(def), nil
}

// Def returns the underlying tileset definition.
func (r *Registry) Def() *TilesetDef {
	return r.def
}

// Slot returns the definition for a slot index, or nil if not present.
func (r *Registry) Slot(index int) *SlotDef {
	return r.slots[index]
}

// Count returns the number of defined slots.
func (r *Registry) Count() int {
	return len(r.def.Slots)
}

// Ruleset converts the authored ruleset definition into an autotile
// ruleset, parsing the decimal mask keys.
func (r *Registry) Ruleset() (autotile.Ruleset, error) {
	rs := autotile.Ruleset{Size: r.def.Ruleset.Size}
	if len(r.def.Ruleset.Table) > 0 {
		rs.Table = make(map[uint8]int, len(r.def.Ruleset.Table))
		for key, variant := range r.def.Ruleset.Table {
			mask, err := strconv.ParseUint(key, 10, 8)
			if err != nil {
				return autotile.Ruleset{}, fmt.Errorf("ruleset table key %q: %w", key, err)
			}
			rs.Table[uint8(mask)] = variant
		}
	}
	return rs, nil
}

// Weights returns the authored clustering weights.
func (r *Registry) Weights() adjacency.Weights {
	return adjacency.Weights{
		Chroma: r.def.Clustering.ChromaWeight,
		Alpha:  r.def.Clustering.AlphaWeight,
	}
}

// Profiles converts every slot into an edge profile for clustering. Slots
// are ordered row-major by atlas index; atlas gaps stay as undefined
// profiles so BuildEdges can index positionally without scoring them.
// Alphas are normalized to [0,1]; per-edge hues are derived from the slot
// color.
func (r *Registry) Profiles() ([]adjacency.EdgeProfile, error) {
	profiles := make([]adjacency.EdgeProfile, r.def.Cols*r.def.Rows)
	for i := range profiles {
		profiles[i].Slot = i
	}

	for _, slot := range r.def.Slots {
		if slot.Index < 0 || slot.Index >= len(profiles) {
			return nil, fmt.Errorf("slot %q: index %d outside %dx%d atlas",
				slot.Name, slot.Index, r.def.Cols, r.def.Rows)
		}
		color, err := ColorfulColor(slot.Color)
		if err != nil {
			return nil, fmt.Errorf("slot %q: %w", slot.Name, err)
		}
		hue := adjacency.Hue(color)

		p := &profiles[slot.Index]
		p.Defined = true
		p.AvgColor = color
		p.HueTop, p.HueBottom, p.HueLeft, p.HueRight = hue, hue, hue, hue
		p.PhaseIndex = slot.Phase
		p.Top = normalizeSamples(edgeOf(slot.Edges, 'T'), r.def.SampleCount)
		p.Bottom = normalizeSamples(edgeOf(slot.Edges, 'B'), r.def.SampleCount)
		p.Left = normalizeSamples(edgeOf(slot.Edges, 'L'), r.def.SampleCount)
		p.Right = normalizeSamples(edgeOf(slot.Edges, 'R'), r.def.SampleCount)
	}
	return profiles, nil
}

// edgeOf picks one edge's raw samples; nil when the slot is opaque.
func edgeOf(e *EdgesDef, side byte) []int {
	if e == nil {
		return nil
	}
	switch side {
	case 'T':
		return e.Top
	case 'B':
		return e.Bottom
	case 'L':
		return e.Left
	default:
		return e.Right
	}
}

// normalizeSamples converts 0-255 ints to [0,1] floats. A nil input yields
// a fully opaque edge of the atlas sample count.
func normalizeSamples(raw []int, sampleCount int) []float64 {
	if raw == nil {
		out := make([]float64, sampleCount)
		for i := range out {
			out[i] = 1.0
		}
		return out
	}
	out := make([]float64, len(raw))
	for i, v := range raw {
		out[i] = float64(v) / 255.0
	}
	return out
}
