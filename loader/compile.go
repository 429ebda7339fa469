// Package loader loads board files into an immutable board.Board.
// Lua scripts run in a sandbox that is discarded after loading.
package loader

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/nathoo/adventurers/engine/board"
	"github.com/nathoo/adventurers/types"
)

// rawCell holds a cell before validation and compilation.
type rawCell struct {
	x, y       int
	tag        string
	payload    string
	hasPayload bool
	src        string // where the cell was declared, for error messages
}

func (c rawCell) coord() types.Coordinate {
	return types.Coordinate{X: c.x, Y: c.y}
}

// terrainTags are the payload-free block tags in canonical spelling.
var terrainTags = []string{
	"Grass", "Sand", "Rock", "Cinderblock", "Flowerbush", "Barrier", "Water",
}

// blockKinds maps every accepted tag spelling to its kind. Rocks and
// Flowers are spellings older maps used.
var blockKinds = map[string]types.BlockKind{
	"Grass":       types.Grass,
	"Sand":        types.Sand,
	"Rock":        types.Rock,
	"Rocks":       types.Rock,
	"Cinderblock": types.Cinderblock,
	"Flowerbush":  types.Flowerbush,
	"Flowers":     types.Flowerbush,
	"Barrier":     types.Barrier,
	"Water":       types.Water,
	"Sign":        types.Sign,
	"Object":      types.Object,
}

// parseBlockLiteral splits a block literal like `Sand`, `Sign("hi")` or `Object('y')`
// into its tag and payload. Surrounding quotes on the payload are removed.
func parseBlockLiteral(s string) (tag, payload string, hasPayload bool) {
	s = strings.TrimSpace(s)
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return s, "", false
	}
	tag = strings.TrimSpace(s[:open])
	payload = strings.TrimSpace(s[open+1 : len(s)-1])
	if len(payload) >= 2 {
		first, last := payload[0], payload[len(payload)-1]
		if (first == '"' || first == '\'') && last == first {
			payload = payload[1 : len(payload)-1]
		}
	}
	return tag, payload, true
}

// toBlock converts a raw cell into a Block.
func toBlock(c rawCell) (types.Block, error) {
	kind, ok := blockKinds[c.tag]
	if !ok {
		return types.Block{}, fmt.Errorf("unknown block tag %q", c.tag)
	}
	switch kind {
	case types.Sign:
		if !c.hasPayload || c.payload == "" {
			return types.Block{}, fmt.Errorf("Sign needs text")
		}
		return types.NewSign(c.payload), nil
	case types.Object:
		if utf8.RuneCountInString(c.payload) != 1 {
			return types.Block{}, fmt.Errorf("Object needs exactly one character, got %q", c.payload)
		}
		r, _ := utf8.DecodeRuneInString(c.payload)
		return types.NewObject(r), nil
	}
	if c.hasPayload {
		return types.Block{}, fmt.Errorf("%s takes no payload", c.tag)
	}
	return types.Terrain(kind), nil
}

// compile turns validated cells into a Board.
func compile(cells []rawCell) (*board.Board, error) {
	out := make(map[types.Coordinate]types.Block, len(cells))
	for _, c := range cells {
		blk, err := toBlock(c)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.src, err)
		}
		out[c.coord()] = blk
	}
	return board.New(out)
}
