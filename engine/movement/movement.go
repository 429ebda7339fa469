// Package movement turns directional input into validated position changes,
// keeps the viewport over the player and tracks drowning.
package movement

import (
	"github.com/nathoo/adventurers/engine/board"
	"github.com/nathoo/adventurers/types"
)

const (
	// ViewportWidth and ViewportHeight are the size of the visible window.
	ViewportWidth  = 77
	ViewportHeight = 21

	// DrownAfter is the number of consecutive water landings that drowns
	// the player.
	DrownAfter = 10
)

// Start is where a new player stands.
var Start = types.Coordinate{X: 3, Y: 3}

// Player is the mutable hazard and position state.
type Player struct {
	Position types.Coordinate
	Streak   int  // consecutive water landings
	Drowned  bool // terminal once set
}

// Outcome describes an accepted move.
type Outcome struct {
	Block  types.Block // Empty when the cell has no terrain
	Event  types.QuestEvent
	Note   *types.Notification
	Scroll bool // viewport moved
}

// Machine owns the player and viewport.
type Machine struct {
	Player   Player
	Viewport types.Coordinate // top-left corner of the visible window
}

// New returns a machine with the player at Start and the viewport at the
// origin.
func New() *Machine {
	return &Machine{Player: Player{Position: Start}}
}

// Move tries to step the player one cell in dir. Moving into a Barrier is
// rejected: ok is false and nothing changes. Drowning does not stop the
// machine from accepting further moves.
func (m *Machine) Move(b *board.Board, dir types.Direction) (out Outcome, ok bool) {
	delta := dir.Delta()
	target := m.Player.Position.Add(delta)

	blk, present := b.At(target)
	if present && blk.Kind == types.Barrier {
		return Outcome{}, false
	}

	m.Player.Position = target

	if !m.Visible(target) {
		m.Viewport = m.Viewport.Add(delta)
		out.Scroll = true
	}

	out.Block = blk
	switch blk.Kind {
	case types.Water:
		m.Player.Streak++
		if m.Player.Streak == DrownAfter {
			m.Player.Drowned = true
			out.Note = &types.Notification{Kind: types.NoteDrowned, Title: "Message", Text: "You are drowned."}
		}
	case types.Sign:
		m.Player.Streak = 0
		out.Note = &types.Notification{Kind: types.NoteSign, Title: "Message", Text: blk.Text}
	default:
		m.Player.Streak = 0
	}

	out.Event = types.QuestEvent{Block: blk, Type: types.Walk}
	if blk.Kind == types.Object {
		out.Event.Type = types.Collect
	}
	return out, true
}

// Visible reports whether c lies inside the current viewport.
func (m *Machine) Visible(c types.Coordinate) bool {
	return c.X >= m.Viewport.X && c.X < m.Viewport.X+ViewportWidth &&
		c.Y >= m.Viewport.Y && c.Y < m.Viewport.Y+ViewportHeight
}
