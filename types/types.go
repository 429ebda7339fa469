// Package types defines the shared data structures for the adventurers game.
// Apart from a few small accessors, it holds type definitions only.
package types

import "fmt"

// Coordinate is an integer position on the board. X grows to the right,
// Y grows downwards.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns c translated by d.
func (c Coordinate) Add(d Coordinate) Coordinate {
	return Coordinate{X: c.X + d.X, Y: c.Y + d.Y}
}

// Direction is one of the four movement directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Delta returns the unit offset for a direction.
func (d Direction) Delta() Coordinate {
	switch d {
	case Up:
		return Coordinate{X: 0, Y: -1}
	case Down:
		return Coordinate{X: 0, Y: 1}
	case Left:
		return Coordinate{X: -1, Y: 0}
	case Right:
		return Coordinate{X: 1, Y: 0}
	}
	return Coordinate{}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// BlockKind tags the variant of a Block.
type BlockKind int

const (
	// Empty is the zero kind: no terrain at the cell. Boards never store it.
	Empty BlockKind = iota
	Grass
	Sand
	Rock
	Cinderblock
	Flowerbush
	Barrier
	Water
	Sign
	Object
)

var blockKindNames = map[BlockKind]string{
	Empty:       "Empty",
	Grass:       "Grass",
	Sand:        "Sand",
	Rock:        "Rock",
	Cinderblock: "Cinderblock",
	Flowerbush:  "Flowerbush",
	Barrier:     "Barrier",
	Water:       "Water",
	Sign:        "Sign",
	Object:      "Object",
}

func (k BlockKind) String() string {
	if name, ok := blockKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("BlockKind(%d)", int(k))
}

// Block is one tile of terrain or content. Only Sign carries Text and only
// Object carries Char, so == is structural equality.
type Block struct {
	Kind BlockKind
	Text string
	Char rune
}

// Terrain returns a payload-free block of the given kind.
func Terrain(k BlockKind) Block {
	return Block{Kind: k}
}

// NewSign returns a Sign block showing text.
func NewSign(text string) Block {
	return Block{Kind: Sign, Text: text}
}

// NewObject returns a collectable Object block drawn as c.
func NewObject(c rune) Block {
	return Block{Kind: Object, Char: c}
}

func (b Block) String() string {
	switch b.Kind {
	case Sign:
		return fmt.Sprintf("Sign(%q)", b.Text)
	case Object:
		return fmt.Sprintf("Object('%c')", b.Char)
	}
	return b.Kind.String()
}

// EventType is what the player did on a block.
type EventType int

const (
	Walk EventType = iota
	Collect
)

func (e EventType) String() string {
	if e == Collect {
		return "Collect"
	}
	return "Walk"
}

// QuestEvent is the unit the quest engine reacts to. One is produced per
// accepted move.
type QuestEvent struct {
	Block Block
	Type  EventType
}

// CommandKind identifies a player command.
type CommandKind int

const (
	CmdUnknown CommandKind = iota
	CmdMove
	CmdStatus
	CmdReset
)

// Command is a parsed player input. Dir is only meaningful for CmdMove.
type Command struct {
	Kind CommandKind
	Dir  Direction
}

// NotificationKind classifies a one-shot message for the player.
type NotificationKind int

const (
	NoteSign NotificationKind = iota + 1
	NoteDrowned
	NoteWin
	NoteQuest
)

// Notification is a titled message shown to the player.
type Notification struct {
	Kind  NotificationKind
	Title string
	Text  string
}

// Result is the output of a single game step.
type Result struct {
	Position Coordinate
	Viewport Coordinate
	Moved    bool
	Event    *QuestEvent   // nil unless a move was accepted
	Note     *Notification // at most one per step
	Over     bool          // session ended by drowning or winning
	Output   []string
}
