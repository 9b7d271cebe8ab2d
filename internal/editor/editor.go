package editor

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mosaic/internal/adjacency"
	"github.com/samdwyer/mosaic/internal/autotile"
	"github.com/samdwyer/mosaic/internal/grid"
	"github.com/samdwyer/mosaic/internal/palette"
	"github.com/samdwyer/mosaic/internal/telemetry"
	"github.com/samdwyer/mosaic/internal/tileset"
	"github.com/samdwyer/mosaic/internal/ui"
)

// Editor holds the entire editor state: the occupancy index, the resolved
// family binding, and the interactive tool state.
type Editor struct {
	cfg      *Config
	screen   *ui.Screen
	renderer *ui.Renderer

	index     *grid.Index
	placer    *grid.Placer
	evaluator *autotile.Evaluator
	registry  *tileset.Registry

	binding      *palette.Binding
	familyOf     []int
	tileToFamily map[int]int
	neighbors    [][]int
	phase        *palette.PhaseControl

	cursor     grid.Point
	mode       Mode
	brushSlots []int // paintable slot indices, ascending
	brush      int   // position in brushSlots
	message    string
	running    bool
}

// New creates a new editor instance.
func New(cfg *Config) (*Editor, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	registry, err := tileset.LoadRegistry(cfg.Tileset)
	if err != nil {
		screen.Close()
		return nil, err
	}

	rules, err := registry.Ruleset()
	if err != nil {
		screen.Close()
		return nil, err
	}

	brushSlots := make([]int, 0, registry.Count())
	for _, slot := range registry.Def().Slots {
		brushSlots = append(brushSlots, slot.Index)
	}
	sort.Ints(brushSlots)

	index := grid.NewIndex()
	return &Editor{
		cfg:        cfg,
		screen:     screen,
		renderer:   ui.NewRenderer(screen),
		index:      index,
		placer:     grid.NewPlacer(index),
		evaluator:  autotile.NewEvaluator(rules),
		registry:   registry,
		phase:      &palette.PhaseControl{NumPhases: registry.Def().NumPhases},
		brushSlots: brushSlots,
		running:    true,
	}, nil
}

// Run executes the main editor loop.
func (e *Editor) Run(ctx context.Context) error {
	if err := e.resolveFamilies(ctx); err != nil {
		e.screen.Close()
		return err
	}

	if e.cfg.Seed != 0 {
		e.seedDemo(ctx, rand.New(rand.NewSource(e.cfg.Seed)))
	}

	for e.running {
		e.swapPhaseIfDirty(ctx)
		e.render()
		e.handleInput(ctx)
	}

	e.screen.Close()
	return nil
}

// resolveFamilies runs the batch clustering pass: edge profiles ->
// compatibility edges -> union-find families -> phase palette binding.
// It runs once at startup over the immutable tileset snapshot.
func (e *Editor) resolveFamilies(ctx context.Context) error {
	tracer := telemetry.Tracer("editor")
	_, span := tracer.Start(ctx, "editor.resolve")
	defer span.End()

	startTime := time.Now()

	profiles, err := e.registry.Profiles()
	if err != nil {
		return err
	}

	def := e.registry.Def()
	threshold := def.Clustering.Threshold
	if e.cfg.Threshold >= 0 {
		threshold = e.cfg.Threshold
	}
	neighborThreshold := def.Clustering.NeighborThreshold
	if e.cfg.NeighborThreshold >= 0 {
		neighborThreshold = e.cfg.NeighborThreshold
	}

	edges := adjacency.BuildEdges(profiles, def.Cols, def.Rows, e.registry.Weights())
	e.familyOf = adjacency.Resolve(edges, len(profiles), threshold, def.Clustering.ChromaFirst)
	e.neighbors = adjacency.Neighbors(edges, len(profiles), neighborThreshold)

	phaseOf := make([]int, len(profiles))
	for i, p := range profiles {
		phaseOf[i] = p.PhaseIndex
	}
	e.binding, err = palette.Bind(e.familyOf, phaseOf, def.NumPhases)
	if err != nil {
		return err
	}

	// Every atlas slot participates in phase swapping: painted tile ids
	// are slot indices.
	e.tileToFamily = make(map[int]int, len(e.familyOf))
	for slot, family := range e.familyOf {
		e.tileToFamily[slot] = family
	}

	span.SetAttributes(
		attribute.Int("resolve.slots", len(profiles)),
		attribute.Int("resolve.edges", len(edges)),
		attribute.Int("resolve.families", e.binding.FamilyCount()),
		attribute.Int("resolve.singletons", e.binding.Singletons),
		attribute.Float64("resolve.threshold", threshold),
		attribute.Int64("resolve.duration_ms", time.Since(startTime).Milliseconds()),
	)
	return nil
}

// seedDemo scatters a few structures and terrain patches through the
// placer so a fresh grid has something to look at.
func (e *Editor) seedDemo(ctx context.Context, rng *rand.Rand) {
	tracer := telemetry.Tracer("editor")
	_, span := tracer.Start(ctx, "editor.seed_demo")
	defer span.End()

	placed := 0
	for i := 0; i < 8; i++ {
		origin := grid.Pt(rng.Intn(e.cfg.GridWidth), rng.Intn(e.cfg.GridHeight))
		size := grid.Pt(2+rng.Intn(3), 2+rng.Intn(2))
		tileID := e.brushSlots[rng.Intn(len(e.brushSlots))]
		if _, err := e.placer.Place(origin, size, tileID); err == nil {
			placed++
		}
	}

	for i := 0; i < 120; i++ {
		pos := grid.Pt(rng.Intn(e.cfg.GridWidth), rng.Intn(e.cfg.GridHeight))
		if e.index.OccupiedAt(pos) {
			continue
		}
		tileID := e.brushSlots[rng.Intn(len(e.brushSlots))]
		e.placer.PlaceSingle(pos, tileID)
		e.evaluator.Refresh(e.index, pos)
	}

	span.SetAttributes(
		attribute.Int("seed.structures", placed),
		attribute.Int("seed.tiles", e.index.TileCount()),
	)
}

// swapPhaseIfDirty runs the phase swap pass when external control has
// marked the phase record dirty. This is the only recurring per-frame
// work; it is a no-op on a clean record.
func (e *Editor) swapPhaseIfDirty(ctx context.Context) {
	if !e.phase.Dirty {
		return
	}

	tracer := telemetry.Tracer("editor")
	_, span := tracer.Start(ctx, "editor.phase_swap")
	defer span.End()

	updated := palette.Swap(e.index.Tiles(), e.tileToFamily, e.binding, e.phase)

	span.SetAttributes(
		attribute.Int("phase.index", e.phase.PhaseIndex),
		attribute.Int("phase.biome", e.phase.BiomeID),
		attribute.Int("phase.tiles_updated", updated),
	)
}

// render draws the current frame.
func (e *Editor) render() {
	brushSlot := e.registry.Slot(e.brushSlots[e.brush])
	status := fmt.Sprintf("[%s] brush:%s phase:%d/%d biome:%d tiles:%d structures:%d",
		e.mode, brushSlot.Name,
		e.phase.PhaseIndex, e.phase.NumPhases, e.phase.BiomeID,
		e.index.TileCount(), e.index.StructureCount())

	e.renderer.Render(ui.Frame{
		Index:     e.index,
		Tiles:     e.registry,
		Cursor:    e.cursor,
		Width:     e.cfg.GridWidth,
		Height:    e.cfg.GridHeight,
		Status:    status,
		Message:   e.message,
		BrushSize: grid.Pt(e.cfg.StructureWidth, e.cfg.StructureHeight),
		ShowBrush: e.mode == ModeStructure,
	})
}

// handleInput processes a single input event.
func (e *Editor) handleInput(ctx context.Context) {
	ev := e.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		e.handleKeyEvent(ctx, ev)
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			x, y := ev.Position()
			if x >= 0 && x < e.cfg.GridWidth && y >= 0 && y < e.cfg.GridHeight {
				e.cursor = grid.Pt(x, y)
				e.applyTool()
			}
		}
	case *tcell.EventResize:
		e.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (e *Editor) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		e.running = false

	case tcell.KeyUp:
		e.moveCursor(0, -1)
	case tcell.KeyDown:
		e.moveCursor(0, 1)
	case tcell.KeyLeft:
		e.moveCursor(-1, 0)
	case tcell.KeyRight:
		e.moveCursor(1, 0)

	case tcell.KeyTab:
		e.brush = (e.brush + 1) % len(e.brushSlots)
		e.message = ""

	case tcell.KeyEnter:
		e.applyTool()

	case tcell.KeyRune:
		switch r := ev.Rune(); r {
		case 'q', 'Q':
			e.running = false
		case 'h':
			e.moveCursor(-1, 0)
		case 'j':
			e.moveCursor(0, 1)
		case 'k':
			e.moveCursor(0, -1)
		case 'l':
			e.moveCursor(1, 0)
		case ' ':
			e.applyTool()
		case 'm', 'M':
			e.mode = e.mode.Next()
			e.message = ""
		case 'p', 'P':
			e.phase.Cycle()
		case 'b', 'B':
			e.phase.BiomeID++
			e.phase.Dirty = true
		case 'n', 'N':
			e.showNeighbors()
		default:
			if r >= '1' && r <= '9' && int(r-'1') < len(e.brushSlots) {
				e.brush = int(r - '1')
			}
		}
	}
}

// moveCursor moves the cursor, clamped to the viewport.
func (e *Editor) moveCursor(dx, dy int) {
	e.cursor.X = clamp(e.cursor.X+dx, 0, e.cfg.GridWidth-1)
	e.cursor.Y = clamp(e.cursor.Y+dy, 0, e.cfg.GridHeight-1)
}

// applyTool applies the active mode at the cursor.
func (e *Editor) applyTool() {
	switch e.mode {
	case ModePaint:
		changed := e.displacedCells(e.cursor)
		e.placer.PlaceSingle(e.cursor, e.brushSlots[e.brush])
		e.refreshAround(changed)
		e.message = ""

	case ModeStructure:
		size := grid.Pt(e.cfg.StructureWidth, e.cfg.StructureHeight)
		s, err := e.placer.Place(e.cursor, size, e.brushSlots[e.brush])
		if err != nil {
			e.message = err.Error()
			return
		}
		e.refreshAround(s.Cells)
		e.message = ""

	case ModeErase:
		changed := e.displacedCells(e.cursor)
		if e.placer.Erase(e.cursor) {
			e.refreshAround(changed)
		}
		e.message = ""
	}
}

// displacedCells returns every cell whose occupancy an operation at pos
// can change: the cell itself, plus the full footprint of any structure
// covering it.
func (e *Editor) displacedCells(pos grid.Point) []grid.Point {
	if s := e.index.StructureAt(pos); s != nil {
		return s.Cells
	}
	return []grid.Point{pos}
}

// refreshAround recomputes autotile variants for every tile adjacent to
// the changed cells.
func (e *Editor) refreshAround(cells []grid.Point) {
	for _, c := range cells {
		e.evaluator.Refresh(e.index, c)
	}
}

// showNeighbors reports the brush slot's compatible neighbors from the
// last resolution run.
func (e *Editor) showNeighbors() {
	e.message = neighborSummary(e.registry, e.neighbors, e.brushSlots[e.brush])
}

// neighborSummary formats one slot's compatible-neighbor list. Neighbor
// lists are indexed over all atlas positions, so entries may name
// positions without an authored slot; those render as a placeholder
// instead of being dereferenced.
func neighborSummary(reg *tileset.Registry, neighbors [][]int, slot int) string {
	compatible := neighbors[slot]
	if len(compatible) == 0 {
		return fmt.Sprintf("%s: no compatible neighbors", slotName(reg, slot))
	}
	names := make([]string, 0, len(compatible))
	for _, n := range compatible {
		names = append(names, slotName(reg, n))
	}
	return fmt.Sprintf("%s ~ %v", slotName(reg, slot), names)
}

// slotName returns a slot's authored name, or a positional placeholder
// for atlas gaps.
func slotName(reg *tileset.Registry, slot int) string {
	if s := reg.Slot(slot); s != nil {
		return s.Name
	}
	return fmt.Sprintf("slot#%d", slot)
}

// clamp limits v to [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
