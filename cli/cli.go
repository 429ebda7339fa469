// Package cli provides line-oriented terminal I/O and meta-command
// dispatch for the adventurers game. It is used for scripts, pipes and
// terminals without full-screen support.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nathoo/adventurers/engine"
	"github.com/nathoo/adventurers/engine/board"
	"github.com/nathoo/adventurers/engine/parser"
	"github.com/nathoo/adventurers/engine/save"
	"github.com/nathoo/adventurers/types"
)

// CLI handles terminal interaction with the player.
type CLI struct {
	Engine    *engine.Engine
	Board     *board.Board
	MapName   string
	Options   []engine.Option // applied to engines rebuilt by /load
	In        io.Reader
	Out       io.Writer
	SaveDir   string
	Trace     bool
	EchoInput bool   // echo each input line after the prompt (for script playback)
	lastCmd   string // for "again"/"g" repeat
}

// New creates a CLI wired to the given engine.
func New(eng *engine.Engine, mapName string) *CLI {
	home, _ := os.UserHomeDir()
	return &CLI{
		Engine:  eng,
		Board:   eng.Board,
		MapName: mapName,
		In:      os.Stdin,
		Out:     os.Stdout,
		SaveDir: filepath.Join(home, ".adventurers", "saves"),
	}
}

// Run starts the game loop: prompt → input → dispatch → output. It returns
// when input ends, on /quit, or when the session is over.
func (c *CLI) Run() {
	c.printLine(fmt.Sprintf("Quest %s. Type /help for commands.", c.Engine.Quest.Key()))
	c.printPosition()

	scanner := bufio.NewScanner(c.In)
	for {
		c.print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		// Skip comment lines (for script files).
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		// Meta-commands start with '/'.
		if strings.HasPrefix(input, "/") {
			if c.handleMeta(input) {
				return // /quit
			}
			continue
		}

		// "again" / "g" repeats the last game command.
		lower := strings.ToLower(input)
		if lower == "again" || lower == "g" {
			if c.lastCmd == "" {
				c.printLine("Nothing to repeat.")
				continue
			}
			input = c.lastCmd
		} else {
			c.lastCmd = input
		}

		cmd := parser.Parse(input)
		result := c.Engine.Step(cmd)
		c.printResult(cmd, result)

		if c.Trace {
			c.printTrace(result)
		}
		if result.Over {
			c.printLine("Game ended!")
			return
		}
	}
}

// handleMeta dispatches meta-commands. Returns true if the game should exit.
func (c *CLI) handleMeta(input string) bool {
	parts := strings.Fields(input)
	cmd := parts[0]
	var arg string
	if len(parts) > 1 {
		arg = parts[1]
	}

	switch cmd {
	case "/quit", "/exit":
		c.printSystem("Goodbye.")
		return true

	case "/save":
		c.cmdSave(arg)

	case "/load":
		c.cmdLoad(arg)

	case "/help":
		c.cmdHelp()

	case "/state":
		c.cmdState()

	case "/quest":
		c.printResult(types.Command{Kind: types.CmdStatus}, c.Engine.Step(types.Command{Kind: types.CmdStatus}))

	case "/reset":
		c.printResult(types.Command{Kind: types.CmdReset}, c.Engine.Step(types.Command{Kind: types.CmdReset}))

	case "/trace":
		c.Trace = !c.Trace
		if c.Trace {
			c.printSystem("Trace output enabled.")
		} else {
			c.printSystem("Trace output disabled.")
		}

	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd))
	}

	return false
}

func (c *CLI) cmdSave(name string) {
	if name == "" {
		name = save.DefaultSlot
	}
	if err := save.WriteSlot(c.SaveDir, name, c.Engine, c.MapName); err != nil {
		c.printSystem(fmt.Sprintf("Save failed: %v", err))
		return
	}
	c.printSystem(fmt.Sprintf("Game saved to %s.", name))
}

func (c *CLI) cmdLoad(name string) {
	if name == "" {
		name = save.DefaultSlot
	}
	eng, sd, err := save.ReadSlot(c.SaveDir, name, c.Board, c.Options...)
	if err != nil {
		c.printSystem(fmt.Sprintf("Load failed: %v", err))
		return
	}
	c.Engine = eng
	c.printSystem(fmt.Sprintf("Game loaded from %s (turn %d).", name, sd.Turn))

	// Show current position after loading.
	c.printPosition()
}

func (c *CLI) cmdHelp() {
	help := []string{
		"System:",
		"  /save [name]  — Save game (default: quicksave)",
		"  /load [name]  — Load game (default: quicksave)",
		"  /quest        — Show quest progress",
		"  /reset        — Reset quest progress",
		"  /quit         — Exit game",
		"  /help         — Show this help",
		"  /state        — Debug: dump current state",
		"  /trace        — Toggle debug trace output",
		"",
		"Game commands:",
		"  up/down/left/right    — Move (also n/s/e/w, h/j/k/l, go <dir>)",
		"  quest (q)             — Show quest progress",
		"  reset (r)             — Reset quest progress",
		"  again (g)             — Repeat your last command",
	}
	for _, line := range help {
		c.printLine(line)
	}
}

func (c *CLI) cmdState() {
	m := c.Engine.Movement
	c.printSystem(fmt.Sprintf("Turn: %d", len(c.Engine.CommandLog)))
	c.printSystem(fmt.Sprintf("Position: (%d,%d)", m.Player.Position.X, m.Player.Position.Y))
	c.printSystem(fmt.Sprintf("Viewport: (%d,%d)", m.Viewport.X, m.Viewport.Y))
	c.printSystem(fmt.Sprintf("Water streak: %d", m.Player.Streak))
	if m.Player.Drowned {
		c.printSystem("Drowned: true")
	}
	c.printSystem(fmt.Sprintf("Quest: %s (%s)", c.Engine.Quest.Key(), c.Engine.Quest.Status()))
	if c.Engine.Over() {
		c.printSystem("Session over")
	}
}

func (c *CLI) printTrace(result types.Result) {
	if result.Event != nil {
		c.printSystem(fmt.Sprintf("[trace] Event: %s %s", result.Event.Type, result.Event.Block))
	}
	c.printSystem(fmt.Sprintf("[trace] Streak: %d", c.Engine.Movement.Player.Streak))
	if result.Note != nil {
		c.printSystem(fmt.Sprintf("[trace] Note: %s", result.Note.Title))
	}
}

func (c *CLI) printResult(cmd types.Command, result types.Result) {
	switch {
	case result.Moved:
		c.printPosition()
	case cmd.Kind == types.CmdMove && !result.Over:
		c.printLine("You can't go that way.")
	}
	for _, line := range result.Output {
		c.printLine(line)
	}
}

// printPosition describes the cell the player stands on.
func (c *CLI) printPosition() {
	pos := c.Engine.Movement.Player.Position
	what := "nothing"
	if blk, ok := c.Board.At(pos); ok {
		what = blk.String()
	}
	c.printLine(fmt.Sprintf("You are at (%d,%d): %s.", pos.X, pos.Y, what))
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}
