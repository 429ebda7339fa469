package save

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nathoo/adventurers/engine"
	"github.com/nathoo/adventurers/engine/board"
)

// DefaultSlot is used when the player does not name a save.
const DefaultSlot = "quicksave"

// SlotPath returns the file a named save lives in under dir.
func SlotPath(dir, name string) string {
	if name == "" {
		name = DefaultSlot
	}
	return filepath.Join(dir, name+".json")
}

// WriteSlot saves e into the named slot under dir, creating dir if needed.
func WriteSlot(dir, name string, e *engine.Engine, mapName string) error {
	data, err := Save(e, mapName)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(SlotPath(dir, name), data, 0o644)
}

// ReadSlot loads the named slot under dir and restores it onto b.
func ReadSlot(dir, name string, b *board.Board, opts ...engine.Option) (*engine.Engine, *SaveData, error) {
	data, err := os.ReadFile(SlotPath(dir, name))
	if err != nil {
		return nil, nil, err
	}
	sd, err := Load(data)
	if err != nil {
		return nil, nil, fmt.Errorf("decoding save: %w", err)
	}
	e, err := Restore(b, sd, opts...)
	if err != nil {
		return nil, nil, err
	}
	return e, sd, nil
}
