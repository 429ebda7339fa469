// Package tui provides a Bubble Tea terminal UI for the adventurers game.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nathoo/adventurers/engine"
	"github.com/nathoo/adventurers/engine/board"
	"github.com/nathoo/adventurers/engine/movement"
	"github.com/nathoo/adventurers/engine/save"
	"github.com/nathoo/adventurers/types"
)

// Model is the Bubble Tea model for the game.
type Model struct {
	engine  *engine.Engine
	board   *board.Board
	mapName string
	saveDir string
	opts    []engine.Option

	keys keyMap
	help help.Model

	note     *types.Notification // message box, cleared by the next key
	ending   bool                // a win or drowning is on screen; next key quits
	width    int
	quitting bool
}

// New creates a TUI model wired to the given engine.
func New(eng *engine.Engine, mapName string, opts ...engine.Option) Model {
	home, _ := os.UserHomeDir()
	return Model{
		engine:  eng,
		board:   eng.Board,
		mapName: mapName,
		saveDir: filepath.Join(home, ".adventurers", "saves"),
		opts:    opts,
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
}

// WithSaveDir returns a copy of m that saves under dir.
func (m Model) WithSaveDir(dir string) Model {
	m.saveDir = dir
	return m
}

// Run starts the Bubble Tea program.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model. Nothing happens until the first key.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses and window resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case tea.KeyMsg:
		// The previous step ended the session: any key leaves.
		if m.ending {
			m.quitting = true
			return m, tea.Quit
		}
		m.note = nil

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			m = m.step(types.Command{Kind: types.CmdMove, Dir: types.Up})
		case key.Matches(msg, m.keys.Down):
			m = m.step(types.Command{Kind: types.CmdMove, Dir: types.Down})
		case key.Matches(msg, m.keys.Left):
			m = m.step(types.Command{Kind: types.CmdMove, Dir: types.Left})
		case key.Matches(msg, m.keys.Right):
			m = m.step(types.Command{Kind: types.CmdMove, Dir: types.Right})
		case key.Matches(msg, m.keys.Status):
			m = m.step(types.Command{Kind: types.CmdStatus})
		case key.Matches(msg, m.keys.Reset):
			m = m.step(types.Command{Kind: types.CmdReset})
			m.note = &types.Notification{Kind: types.NoteQuest, Title: "Quest", Text: "Quest progress reset."}

		case key.Matches(msg, m.keys.Save):
			m.note = m.system(m.cmdSave())
		case key.Matches(msg, m.keys.Load):
			m.note = m.system(m.cmdLoad())
		}
		// Unmapped keys fall through untouched.
	}

	return m, nil
}

func (m Model) step(cmd types.Command) Model {
	r := m.engine.Step(cmd)
	m.note = r.Note
	m.ending = r.Over
	return m
}

func (m Model) system(text string) *types.Notification {
	return &types.Notification{Title: "Game", Text: text}
}

// View renders the board, status bar, message box and key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	parts := []string{m.renderBoard(), m.renderStatusBar()}
	if m.note != nil {
		parts = append(parts, m.renderNote())
	}
	parts = append(parts, m.help.View(m.keys))
	return strings.Join(parts, "\n")
}

// renderBoard draws the cells inside the viewport.
func (m Model) renderBoard() string {
	vp := m.engine.Movement.Viewport
	pos := m.engine.Movement.Player.Position

	rows := make([]string, 0, movement.ViewportHeight)
	for y := vp.Y; y < vp.Y+movement.ViewportHeight; y++ {
		var row strings.Builder
		for x := vp.X; x < vp.X+movement.ViewportWidth; x++ {
			c := types.Coordinate{X: x, Y: y}
			blk, _ := m.board.At(c)
			row.WriteString(renderCell(blk, c == pos))
		}
		rows = append(rows, row.String())
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderNote() string {
	text := m.note.Text
	switch m.note.Kind {
	case types.NoteWin:
		text = styleWin.Render(text)
	case types.NoteDrowned:
		text = styleDanger.Render(text)
	}
	body := styleMessageTitle.Render(m.note.Title) + "\n" + text
	if m.ending {
		body += "\n\n(press any key)"
	}
	return styleMessageBox.Render(body)
}

func (m *Model) cmdSave() string {
	if err := save.WriteSlot(m.saveDir, save.DefaultSlot, m.engine, m.mapName); err != nil {
		return fmt.Sprintf("Save failed: %v", err)
	}
	return fmt.Sprintf("Game saved to %s.", save.DefaultSlot)
}

func (m *Model) cmdLoad() string {
	eng, sd, err := save.ReadSlot(m.saveDir, save.DefaultSlot, m.board, m.opts...)
	if err != nil {
		return fmt.Sprintf("Load failed: %v", err)
	}
	m.engine = eng
	return fmt.Sprintf("Game loaded from %s (turn %d).", save.DefaultSlot, sd.Turn)
}
