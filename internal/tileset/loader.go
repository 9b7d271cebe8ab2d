package tileset

import (
	"encoding/json"
	"fmt"
)

// loadJSON reads and decodes one embedded JSON file.
func loadJSON[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}

	return result, nil
}

// LoadTileset loads a tileset from the embedded filesystem and validates
// its schema version and atlas dimensions.
func LoadTileset(filename string) (*TilesetDef, error) {
	def, err := loadJSON[TilesetDef](filename)
	if err != nil {
		return nil, err
	}
	if err := def.validate(); err != nil {
		return nil, fmt.Errorf("tileset %s: %w", filename, err)
	}
	return &def, nil
}

// MustLoadTileset loads a tileset, panicking on error. Use this for
// content the editor cannot run without.
func MustLoadTileset(filename string) *TilesetDef {
	def, err := LoadTileset(filename)
	if err != nil {
		panic(err)
	}
	return def
}
