// Package editor provides the interactive map-editing loop.
package editor

// Mode represents the active editing tool.
type Mode int

const (
	// ModePaint places single tiles, displacing whatever occupied the
	// cell.
	ModePaint Mode = iota
	// ModeStructure places multi-cell structures, rejecting overlaps.
	ModeStructure
	// ModeErase removes the tile or structure under the cursor.
	ModeErase
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModePaint:
		return "paint"
	case ModeStructure:
		return "structure"
	case ModeErase:
		return "erase"
	default:
		return "unknown"
	}
}

// Next cycles to the following mode.
func (m Mode) Next() Mode {
	switch m {
	case ModePaint:
		return ModeStructure
	case ModeStructure:
		return ModeErase
	default:
		return ModePaint
	}
}
