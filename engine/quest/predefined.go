package quest

import "github.com/nathoo/adventurers/types"

// Keys of the predefined quest trees.
const (
	KeyQ1 = "q1"
	KeyQ2 = "q2"
	KeyQ3 = "q3"
)

// Select builds a fresh tracker for key. Unrecognized keys get the q3 tree.
func Select(key string) *Tracker {
	switch key {
	case KeyQ1:
		return NewTracker(KeyQ1, Q1())
	case KeyQ2:
		return NewTracker(KeyQ2, Q2())
	default:
		return NewTracker(KeyQ3, Q3())
	}
}

// Q1: walk on sand 5 times.
func Q1() Quest {
	return NewAtomic(types.Terrain(types.Sand), types.Walk, 5, 1)
}

// Q2: walk on sand 5 times, then collect 3 'y' objects.
func Q2() Quest {
	return NewInOrder(
		NewAtomic(types.Terrain(types.Sand), types.Walk, 5, 1),
		NewAtomic(types.NewObject('y'), types.Collect, 3, 1),
	)
}

// Q3: any 2 of
//   - walk on sand 5 times, then collect an 'x'
//   - collect a 'y', then walk on grass
//   - walk on water 9 times, 3 times over
func Q3() Quest {
	return NewChoice(2,
		NewInOrder(
			NewAtomic(types.Terrain(types.Sand), types.Walk, 5, 1),
			NewAtomic(types.NewObject('x'), types.Collect, 1, 1),
		),
		NewInOrder(
			NewAtomic(types.NewObject('y'), types.Collect, 1, 1),
			NewAtomic(types.Terrain(types.Grass), types.Walk, 1, 1),
		),
		NewAtomic(types.Terrain(types.Water), types.Walk, 9, 3),
	)
}
