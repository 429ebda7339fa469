package quest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nathoo/adventurers/types"
)

var (
	walkSand    = types.QuestEvent{Block: types.Terrain(types.Sand), Type: types.Walk}
	walkGrass   = types.QuestEvent{Block: types.Terrain(types.Grass), Type: types.Walk}
	walkWater   = types.QuestEvent{Block: types.Terrain(types.Water), Type: types.Walk}
	collectX    = types.QuestEvent{Block: types.NewObject('x'), Type: types.Collect}
	collectY    = types.QuestEvent{Block: types.NewObject('y'), Type: types.Collect}
	walkNowhere = types.QuestEvent{Type: types.Walk}
)

func repeat(q Quest, ev types.QuestEvent, n int) Status {
	st := q.Status()
	for i := 0; i < n; i++ {
		st = q.RegisterEvent(ev)
	}
	return st
}

func TestAtomic_CompletesAfterThresholdTimesCycles(t *testing.T) {
	tests := []struct {
		threshold, cycles int
	}{
		{1, 1}, {5, 1}, {3, 2}, {9, 3},
	}
	for _, tt := range tests {
		q := NewAtomic(types.Terrain(types.Water), types.Walk, tt.threshold, tt.cycles)
		total := tt.threshold * tt.cycles
		for i := 1; i < total; i++ {
			require.Equal(t, InProgress, q.RegisterEvent(walkWater),
				"threshold=%d cycles=%d event %d", tt.threshold, tt.cycles, i)
		}
		assert.Equal(t, Complete, q.RegisterEvent(walkWater))
		assert.Equal(t, Complete, repeat(q, walkWater, 4), "stays complete")
	}
}

func TestAtomic_IgnoresNonMatching(t *testing.T) {
	q := NewAtomic(types.Terrain(types.Sand), types.Walk, 2, 1)
	before := q.Display()

	q.RegisterEvent(walkGrass)
	q.RegisterEvent(walkNowhere)
	q.RegisterEvent(types.QuestEvent{Block: types.Terrain(types.Sand), Type: types.Collect})
	assert.Equal(t, before, q.Display())

	q.RegisterEvent(walkSand)
	q.RegisterEvent(walkGrass) // does not break the count
	assert.Equal(t, Complete, q.RegisterEvent(walkSand))
}

func TestAtomic_ObjectPayloadMustMatch(t *testing.T) {
	q := NewAtomic(types.NewObject('y'), types.Collect, 1, 1)
	assert.Equal(t, InProgress, q.RegisterEvent(collectX))
	assert.Equal(t, Complete, q.RegisterEvent(collectY))
}

func TestAtomic_SignPayloadMustMatch(t *testing.T) {
	q := NewAtomic(types.NewSign("north"), types.Walk, 1, 1)
	assert.Equal(t, InProgress, q.RegisterEvent(types.QuestEvent{Block: types.NewSign("south"), Type: types.Walk}))
	assert.Equal(t, Complete, q.RegisterEvent(types.QuestEvent{Block: types.NewSign("north"), Type: types.Walk}))
}

func TestAtomic_ClampsBounds(t *testing.T) {
	q := NewAtomic(types.Terrain(types.Sand), types.Walk, 0, -3)
	assert.Equal(t, Complete, q.RegisterEvent(walkSand))
}

func TestAtomic_Display(t *testing.T) {
	q := NewAtomic(types.Terrain(types.Sand), types.Walk, 5, 1)
	assert.Equal(t, "[ ] Walk on Sand 5 times (0/5)", q.Display())
	repeat(q, walkSand, 2)
	assert.Equal(t, "[ ] Walk on Sand 5 times (2/5)", q.Display())
	repeat(q, walkSand, 3)
	assert.Equal(t, "[✓] Walk on Sand 5 times", q.Display())

	w := NewAtomic(types.Terrain(types.Water), types.Walk, 9, 3)
	repeat(w, walkWater, 11)
	assert.Equal(t, "[ ] Walk on Water 9 times, 3 times over (cycle 2/3: 2/9)", w.Display())

	c := NewAtomic(types.NewObject('x'), types.Collect, 1, 1)
	assert.Equal(t, "[ ] Collect 'x'", c.Display())
}

func TestInOrder_OnlyActiveChildSeesEvents(t *testing.T) {
	q := NewInOrder(
		NewAtomic(types.Terrain(types.Sand), types.Walk, 2, 1),
		NewAtomic(types.NewObject('y'), types.Collect, 1, 1),
	)

	// Events for the second child before the first completes are lost.
	repeat(q, collectY, 3)
	q.RegisterEvent(walkSand)
	assert.Equal(t, InProgress, q.RegisterEvent(walkSand))
	assert.Equal(t, InProgress, q.Status())

	assert.Equal(t, Complete, q.RegisterEvent(collectY))
}

func TestInOrder_CompletingEventIsNotReplayed(t *testing.T) {
	// The event that finishes child 0 must not also count for child 1.
	q := NewInOrder(
		NewAtomic(types.Terrain(types.Sand), types.Walk, 1, 1),
		NewAtomic(types.Terrain(types.Sand), types.Walk, 1, 1),
	)
	assert.Equal(t, InProgress, q.RegisterEvent(walkSand))
	assert.Equal(t, Complete, q.RegisterEvent(walkSand))
}

func TestInOrder_Empty(t *testing.T) {
	q := NewInOrder()
	assert.Equal(t, Complete, q.Status())
	assert.Equal(t, Complete, q.RegisterEvent(walkSand))
}

func TestChoice_AnyTwoOfThree(t *testing.T) {
	newChoice := func() *Choice {
		return NewChoice(2,
			NewAtomic(types.Terrain(types.Sand), types.Walk, 1, 1),  // X
			NewAtomic(types.Terrain(types.Grass), types.Walk, 1, 1), // Y
			NewAtomic(types.Terrain(types.Water), types.Walk, 2, 1), // Z
		)
	}

	orders := [][]types.QuestEvent{
		{walkSand, walkWater, walkWater},
		{walkWater, walkSand, walkWater},
		{walkWater, walkWater, walkSand},
	}
	for i, evs := range orders {
		q := newChoice()
		var st Status
		for _, ev := range evs {
			st = q.RegisterEvent(ev)
		}
		assert.Equal(t, Complete, st, "order %d", i)
	}

	q := newChoice()
	assert.Equal(t, InProgress, repeat(q, walkSand, 5), "one branch is not enough")
}

func TestChoice_BranchesProgressIndependently(t *testing.T) {
	a := NewAtomic(types.Terrain(types.Sand), types.Walk, 2, 1)
	b := NewAtomic(types.Terrain(types.Sand), types.Walk, 3, 1)
	q := NewChoice(2, a, b)

	repeat(q, walkSand, 2)
	assert.Equal(t, Complete, a.Status())
	assert.Equal(t, InProgress, b.Status())
	assert.Equal(t, Complete, q.RegisterEvent(walkSand))
}

func TestChoice_ClampsK(t *testing.T) {
	q := NewChoice(5, NewAtomic(types.Terrain(types.Sand), types.Walk, 1, 1))
	assert.Equal(t, Complete, q.RegisterEvent(walkSand))

	assert.Equal(t, Complete, NewChoice(-1).Status())
}

func TestReset_RestoresInitialDisplay(t *testing.T) {
	for _, build := range []func() Quest{Q1, Q2, Q3} {
		q := build()
		initial := q.Display()

		for _, ev := range []types.QuestEvent{walkSand, walkSand, walkSand, walkSand, walkSand, collectY, collectX, walkGrass, walkWater} {
			q.RegisterEvent(ev)
		}
		require.NotEqual(t, initial, q.Display())

		q.Reset()
		assert.Equal(t, initial, q.Display())
		assert.Equal(t, InProgress, q.Status())
	}
}
