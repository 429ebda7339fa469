package save

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/nathoo/adventurers/engine"
	"github.com/nathoo/adventurers/engine/board"
	"github.com/nathoo/adventurers/engine/parser"
	"github.com/nathoo/adventurers/types"
)

func testBoard(t *testing.T) *board.Board {
	t.Helper()
	b, err := board.New(map[types.Coordinate]types.Block{
		{X: 4, Y: 3}: types.Terrain(types.Sand),
		{X: 5, Y: 3}: types.Terrain(types.Water),
		{X: 6, Y: 3}: types.Terrain(types.Water),
		{X: 4, Y: 4}: types.NewObject('y'),
		{X: 3, Y: 2}: types.Terrain(types.Barrier),
	})
	if err != nil {
		t.Fatalf("board.New failed: %v", err)
	}
	return b
}

func play(e *engine.Engine, inputs ...string) {
	for _, in := range inputs {
		e.Step(parser.Parse(in))
	}
}

func TestRoundTrip(t *testing.T) {
	b := testBoard(t)
	e := engine.New(b, "q2")
	play(e, "right", "right", "right", "up", "q", "left", "left", "down")

	data, err := Save(e, "test.yaml")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	sd, err := Load(data)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if sd.Map != "test.yaml" {
		t.Errorf("expected map 'test.yaml', got %q", sd.Map)
	}
	if sd.Quest != "q2" {
		t.Errorf("expected quest 'q2', got %q", sd.Quest)
	}
	if sd.Turn != 7 {
		t.Errorf("expected turn 7, got %d", sd.Turn)
	}

	e2, err := Restore(b, sd)
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	if e2.Movement.Player != e.Movement.Player {
		t.Errorf("player = %+v, want %+v", e2.Movement.Player, e.Movement.Player)
	}
	if e2.Movement.Viewport != e.Movement.Viewport {
		t.Errorf("viewport = %+v, want %+v", e2.Movement.Viewport, e.Movement.Viewport)
	}
	if e2.Quest.Display() != e.Quest.Display() {
		t.Errorf("quest display mismatch:\n%s\nwant:\n%s", e2.Quest.Display(), e.Quest.Display())
	}
}

func TestSave_ProducesValidJSON(t *testing.T) {
	e := engine.New(testBoard(t), "unknown")

	data, err := Save(e, "m.lua")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !json.Valid(data) {
		t.Fatal("Save output is not valid JSON")
	}

	var raw map[string]any
	json.Unmarshal(data, &raw)
	if raw["version"] != FormatVersion {
		t.Errorf("expected version %q, got %v", FormatVersion, raw["version"])
	}
	if raw["quest"] != "q3" {
		t.Errorf("expected fallback quest 'q3', got %v", raw["quest"])
	}
}

func TestLoad_MissingOptionalFields(t *testing.T) {
	data := []byte(`{"version":"1","quest":"q1"}`)

	sd, err := Load(data)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if sd.CommandLog == nil {
		t.Error("expected non-nil command_log")
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load([]byte("{not json")); err == nil {
		t.Error("expected error for malformed JSON")
	}
	_, err := Load([]byte(`{"version":"99"}`))
	if err == nil || !strings.Contains(err.Error(), "unsupported") {
		t.Errorf("expected version error, got %v", err)
	}
}

func TestRestore_WrongMap(t *testing.T) {
	e := engine.New(testBoard(t), "q1")
	play(e, "up", "up") // barrier: stays at (3,3)

	data, _ := Save(e, "a")
	sd, _ := Load(data)

	open, _ := board.New(nil) // no barrier here
	if _, err := Restore(open, sd); err == nil {
		t.Fatal("expected mismatch error")
	}
}

func TestSlot_WriteAndRead(t *testing.T) {
	dir := t.TempDir()
	b := testBoard(t)
	e := engine.New(b, "q1")
	play(e, "right", "right")

	if err := WriteSlot(dir, "", e, "test"); err != nil {
		t.Fatalf("WriteSlot failed: %v", err)
	}
	if !strings.HasSuffix(SlotPath(dir, ""), "quicksave.json") {
		t.Errorf("default slot path = %q", SlotPath(dir, ""))
	}

	e2, sd, err := ReadSlot(dir, DefaultSlot, b)
	if err != nil {
		t.Fatalf("ReadSlot failed: %v", err)
	}
	if sd.Turn != 2 {
		t.Errorf("expected turn 2, got %d", sd.Turn)
	}
	if e2.Movement.Player != e.Movement.Player {
		t.Errorf("player = %+v, want %+v", e2.Movement.Player, e.Movement.Player)
	}

	if _, _, err := ReadSlot(dir, "missing", b); err == nil {
		t.Error("expected an error for a missing slot")
	}
}
