package movement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nathoo/adventurers/engine/board"
	"github.com/nathoo/adventurers/types"
)

func mustBoard(t *testing.T, cells map[types.Coordinate]types.Block) *board.Board {
	t.Helper()
	b, err := board.New(cells)
	require.NoError(t, err)
	return b
}

// waterStrip lays water from x=4 to x=4+n-1 on row 3, with grass at the start.
func waterStrip(t *testing.T, n int) *board.Board {
	t.Helper()
	cells := map[types.Coordinate]types.Block{{X: 3, Y: 3}: types.Terrain(types.Grass)}
	for i := 0; i < n; i++ {
		cells[types.Coordinate{X: 4 + i, Y: 3}] = types.Terrain(types.Water)
	}
	return mustBoard(t, cells)
}

func TestMove_ScenarioSandThenObject(t *testing.T) {
	b := mustBoard(t, map[types.Coordinate]types.Block{
		{X: 3, Y: 3}: types.Terrain(types.Grass),
		{X: 4, Y: 3}: types.Terrain(types.Sand),
		{X: 4, Y: 4}: types.NewObject('y'),
	})
	m := New()

	out, ok := m.Move(b, types.Right)
	require.True(t, ok)
	assert.Equal(t, types.Coordinate{X: 4, Y: 3}, m.Player.Position)
	assert.Equal(t, types.QuestEvent{Block: types.Terrain(types.Sand), Type: types.Walk}, out.Event)

	out, ok = m.Move(b, types.Down)
	require.True(t, ok)
	assert.Equal(t, types.Coordinate{X: 4, Y: 4}, m.Player.Position)
	assert.Equal(t, types.QuestEvent{Block: types.NewObject('y'), Type: types.Collect}, out.Event)
}

func TestMove_BarrierIsNoOp(t *testing.T) {
	b := mustBoard(t, map[types.Coordinate]types.Block{
		{X: 2, Y: 3}: types.Terrain(types.Water),
		{X: 3, Y: 3}: types.Terrain(types.Water),
		{X: 4, Y: 3}: types.Terrain(types.Barrier),
	})
	m := New()
	m.Move(b, types.Left)
	m.Move(b, types.Right)
	before := *m

	out, ok := m.Move(b, types.Right)
	assert.False(t, ok)
	assert.Equal(t, Outcome{}, out)
	assert.Equal(t, before, *m)
	assert.Equal(t, 2, m.Player.Streak, "barrier does not reset the streak")
}

func TestMove_NoTerrain(t *testing.T) {
	m := New()
	out, ok := m.Move(mustBoard(t, nil), types.Up)
	require.True(t, ok)
	assert.Equal(t, types.Coordinate{X: 3, Y: 2}, m.Player.Position)
	assert.Equal(t, types.QuestEvent{Type: types.Walk}, out.Event)
	assert.Nil(t, out.Note)
}

func TestMove_DrownsOnTenthWater(t *testing.T) {
	b := waterStrip(t, 12)
	m := New()

	for i := 1; i <= 9; i++ {
		out, _ := m.Move(b, types.Right)
		require.Nil(t, out.Note, "step %d", i)
		require.False(t, m.Player.Drowned, "step %d", i)
	}
	assert.Equal(t, 9, m.Player.Streak)

	out, ok := m.Move(b, types.Right)
	require.True(t, ok)
	require.NotNil(t, out.Note)
	assert.Equal(t, types.NoteDrowned, out.Note.Kind)
	assert.Equal(t, "You are drowned.", out.Note.Text)
	assert.True(t, m.Player.Drowned)

	// Still accepts input, and the notification does not repeat.
	out, ok = m.Move(b, types.Right)
	assert.True(t, ok)
	assert.Nil(t, out.Note)
	assert.True(t, m.Player.Drowned)
}

func TestMove_NonWaterResetsStreak(t *testing.T) {
	b := waterStrip(t, 20)
	m := New()

	for i := 0; i < 9; i++ {
		m.Move(b, types.Right)
	}
	m.Move(b, types.Down) // (12,4): no terrain
	assert.Equal(t, 0, m.Player.Streak)
	m.Move(b, types.Up)
	assert.Equal(t, 1, m.Player.Streak)

	for i := 0; i < 8; i++ {
		m.Move(b, types.Right)
	}
	assert.False(t, m.Player.Drowned, "streak restarted")
	out, _ := m.Move(b, types.Right)
	assert.True(t, m.Player.Drowned)
	require.NotNil(t, out.Note)
}

func TestMove_SignNotifiesAndResetsStreak(t *testing.T) {
	b := mustBoard(t, map[types.Coordinate]types.Block{
		{X: 4, Y: 3}: types.Terrain(types.Water),
		{X: 5, Y: 3}: types.NewSign("Beware of the lake"),
	})
	m := New()
	m.Move(b, types.Right)
	require.Equal(t, 1, m.Player.Streak)

	out, ok := m.Move(b, types.Right)
	require.True(t, ok)
	require.NotNil(t, out.Note)
	assert.Equal(t, types.NoteSign, out.Note.Kind)
	assert.Equal(t, "Beware of the lake", out.Note.Text)
	assert.Equal(t, 0, m.Player.Streak)
	assert.Equal(t, types.Walk, out.Event.Type)
}

func TestMove_ViewportFollowsByDelta(t *testing.T) {
	b := mustBoard(t, nil)
	m := New()

	// x from 3 to 76 stays inside [0,77).
	for i := 0; i < 73; i++ {
		out, _ := m.Move(b, types.Right)
		require.False(t, out.Scroll)
	}
	assert.Equal(t, 76, m.Player.Position.X)

	out, _ := m.Move(b, types.Right)
	assert.True(t, out.Scroll)
	assert.Equal(t, types.Coordinate{X: 1, Y: 0}, m.Viewport)

	// Moving back left stays visible, no scroll.
	out, _ = m.Move(b, types.Left)
	assert.False(t, out.Scroll)
	assert.Equal(t, types.Coordinate{X: 1, Y: 0}, m.Viewport)

	// Up off the top edge.
	for i := 0; i < 3; i++ {
		m.Move(b, types.Up)
	}
	assert.Equal(t, 0, m.Player.Position.Y)
	out, _ = m.Move(b, types.Up)
	assert.True(t, out.Scroll)
	assert.Equal(t, types.Coordinate{X: 1, Y: -1}, m.Viewport)
}

func TestVisible(t *testing.T) {
	m := New()
	assert.True(t, m.Visible(types.Coordinate{X: 0, Y: 0}))
	assert.True(t, m.Visible(types.Coordinate{X: 76, Y: 20}))
	assert.False(t, m.Visible(types.Coordinate{X: 77, Y: 0}))
	assert.False(t, m.Visible(types.Coordinate{X: 0, Y: 21}))
	assert.False(t, m.Visible(types.Coordinate{X: -1, Y: 5}))
}
