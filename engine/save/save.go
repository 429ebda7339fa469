// Package save implements JSON serialization of a game session. The save
// stores the command log. Loading replays it against the same board and
// checks the player snapshot it recorded.
package save

import (
	"encoding/json"
	"fmt"

	"github.com/nathoo/adventurers/engine"
	"github.com/nathoo/adventurers/engine/board"
	"github.com/nathoo/adventurers/types"
)

// FormatVersion is written into every save.
const FormatVersion = "1"

// SaveData is the JSON-serializable save format.
type SaveData struct {
	Version    string           `json:"version"`
	Map        string           `json:"map"`
	Quest      string           `json:"quest"`
	Turn       int              `json:"turn"`
	Position   types.Coordinate `json:"position"`
	Viewport   types.Coordinate `json:"viewport"`
	Streak     int              `json:"streak"`
	Drowned    bool             `json:"drowned"`
	CommandLog []string         `json:"command_log"`
}

// Save serializes a session to JSON bytes. mapName identifies the board
// the session was played on.
func Save(e *engine.Engine, mapName string) ([]byte, error) {
	p := e.Movement.Player
	data := SaveData{
		Version:    FormatVersion,
		Map:        mapName,
		Quest:      e.Quest.Key(),
		Turn:       len(e.CommandLog),
		Position:   p.Position,
		Viewport:   e.Movement.Viewport,
		Streak:     p.Streak,
		Drowned:    p.Drowned,
		CommandLog: e.CommandLog,
	}
	return json.MarshalIndent(data, "", "  ")
}

// Load deserializes JSON bytes into SaveData.
func Load(data []byte) (*SaveData, error) {
	var sd SaveData
	if err := json.Unmarshal(data, &sd); err != nil {
		return nil, err
	}
	if sd.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported save version %q", sd.Version)
	}
	// Ensure the log is never nil after load.
	if sd.CommandLog == nil {
		sd.CommandLog = []string{}
	}
	return &sd, nil
}

// Restore rebuilds a session on b by replaying the saved command log. It
// fails if the replay does not land where the save says it should, which
// happens when the save came from a different board.
func Restore(b *board.Board, sd *SaveData, opts ...engine.Option) (*engine.Engine, error) {
	e := engine.New(b, sd.Quest, opts...)
	e.Replay(sd.CommandLog)

	p := e.Movement.Player
	if p.Position != sd.Position || p.Streak != sd.Streak || p.Drowned != sd.Drowned {
		return nil, fmt.Errorf("save does not match this map: replay ended at (%d,%d), save says (%d,%d)",
			p.Position.X, p.Position.Y, sd.Position.X, sd.Position.Y)
	}
	return e, nil
}
