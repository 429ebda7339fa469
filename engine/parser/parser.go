// Package parser converts command strings into Commands.
// Intentionally dumb: a single word, optionally after a movement verb.
package parser

import (
	"strings"

	"github.com/nathoo/adventurers/types"
)

var directions = map[string]types.Direction{
	"up":    types.Up,
	"u":     types.Up,
	"north": types.Up,
	"n":     types.Up,
	"k":     types.Up,

	"down":  types.Down,
	"d":     types.Down,
	"south": types.Down,
	"s":     types.Down,
	"j":     types.Down,

	"left": types.Left,
	"west": types.Left,
	"w":    types.Left,
	"h":    types.Left,

	"right": types.Right,
	"east":  types.Right,
	"e":     types.Right,
	"l":     types.Right,
}

// Movement verbs that may prefix a direction: "go north", "walk left".
var moveVerbs = map[string]bool{
	"go": true, "walk": true, "move": true, "run": true, "head": true,
}

var commandAliases = map[string]types.CommandKind{
	"q":      types.CmdStatus,
	"quest":  types.CmdStatus,
	"status": types.CmdStatus,
	"r":      types.CmdReset,
	"reset":  types.CmdReset,
}

// Parse converts a raw command string into a Command. Anything it does not
// recognize yields CmdUnknown.
func Parse(input string) types.Command {
	words := strings.Fields(strings.ToLower(input))
	if len(words) == 0 {
		return types.Command{}
	}

	if len(words) == 2 && moveVerbs[words[0]] {
		words = words[1:]
	}
	if len(words) != 1 {
		return types.Command{}
	}

	if dir, ok := directions[words[0]]; ok {
		return types.Command{Kind: types.CmdMove, Dir: dir}
	}
	if kind, ok := commandAliases[words[0]]; ok {
		return types.Command{Kind: kind}
	}
	return types.Command{}
}

// Format renders a Command in the canonical form Parse accepts. Unknown
// commands format as "".
func Format(cmd types.Command) string {
	switch cmd.Kind {
	case types.CmdMove:
		return cmd.Dir.String()
	case types.CmdStatus:
		return "status"
	case types.CmdReset:
		return "reset"
	}
	return ""
}
