// Package board holds the immutable, sparse tile map the player walks on.
package board

import (
	"fmt"

	"github.com/nathoo/adventurers/types"
)

// Board maps coordinates to blocks. Cells that are not present have no
// terrain. A Board is never modified after New returns.
type Board struct {
	cells map[types.Coordinate]types.Block
}

// New builds a Board from the given cells. The map is copied. Empty blocks
// are rejected since absence already means "no terrain".
func New(cells map[types.Coordinate]types.Block) (*Board, error) {
	b := &Board{cells: make(map[types.Coordinate]types.Block, len(cells))}
	for c, blk := range cells {
		if blk.Kind == types.Empty {
			return nil, fmt.Errorf("cell (%d,%d): empty block", c.X, c.Y)
		}
		b.cells[c] = blk
	}
	return b, nil
}

// At returns the block at c and whether one exists.
func (b *Board) At(c types.Coordinate) (types.Block, bool) {
	blk, ok := b.cells[c]
	return blk, ok
}

// Len returns the number of populated cells.
func (b *Board) Len() int {
	return len(b.cells)
}

// Each calls fn for every populated cell, in no particular order.
func (b *Board) Each(fn func(types.Coordinate, types.Block)) {
	for c, blk := range b.cells {
		fn(c, blk)
	}
}
