package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mosaic/internal/grid"
	"github.com/samdwyer/mosaic/internal/tileset"
)

// Frame is everything the renderer needs for one draw pass. The core
// exposes plain records; the renderer only reads them.
type Frame struct {
	Index     *grid.Index
	Tiles     *tileset.Registry
	Cursor    grid.Point
	Width     int // viewport width in cells
	Height    int // viewport height in cells
	Status    string
	Message   string
	BrushSize grid.Point // structure footprint preview size
	ShowBrush bool
}

// Renderer draws the grid state to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws one frame: tiles, structures, cursor, and the status and
// message lines below the viewport.
func (r *Renderer) Render(f Frame) {
	r.screen.Clear()

	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			pos := grid.Pt(x, y)
			ch, style := r.cellContent(f, pos)
			r.screen.SetContent(x, y, ch, style)
		}
	}

	r.drawCursor(f)

	statusStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	r.screen.Print(0, f.Height, f.Status, statusStyle)
	if f.Message != "" {
		msgStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
		r.screen.Print(0, f.Height+1, f.Message, msgStyle)
	}

	r.screen.Show()
}

// cellContent picks the rune and style for one grid cell.
func (r *Renderer) cellContent(f Frame, pos grid.Point) (rune, tcell.Style) {
	if t := f.Index.TileAt(pos); t != nil {
		slot := r.displaySlot(f.Tiles, t)
		if slot == nil {
			return '?', tcell.StyleDefault.Foreground(tcell.ColorRed)
		}
		return glyphRune(slot), tcell.StyleDefault.Foreground(tileset.TCellColor(slot.Color))
	}
	if s := f.Index.StructureAt(pos); s != nil {
		style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
		if slot := f.Tiles.Slot(s.TileID); slot != nil {
			style = tcell.StyleDefault.Foreground(tileset.TCellColor(slot.Color))
		}
		return '█', style
	}
	return '·', tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
}

// displaySlot resolves which atlas slot a tile displays. The phase swapper
// writes atlas slot indices into VariantIndex; mask-derived variants that
// don't name a slot fall back to the painted tile id.
func (r *Renderer) displaySlot(reg *tileset.Registry, t *grid.Tile) *tileset.SlotDef {
	if slot := reg.Slot(t.VariantIndex); slot != nil {
		return slot
	}
	return reg.Slot(t.TileID)
}

// drawCursor highlights the cursor cell, previewing the structure brush
// footprint when a multi-cell tool is active.
func (r *Renderer) drawCursor(f Frame) {
	bounds := grid.RectAt(f.Cursor, grid.Pt(1, 1))
	if f.ShowBrush {
		bounds = grid.RectAt(f.Cursor, f.BrushSize)
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	for _, c := range bounds.Cells() {
		if c.X < 0 || c.X >= f.Width || c.Y < 0 || c.Y >= f.Height {
			continue
		}
		ch, _ := r.cellContent(f, c)
		r.screen.SetContent(c.X, c.Y, ch, style.Reverse(true))
	}
}

// glyphRune returns a slot's display rune, defaulting to '?'.
func glyphRune(slot *tileset.SlotDef) rune {
	if len(slot.Glyph) == 0 {
		return '?'
	}
	return []rune(slot.Glyph)[0]
}
