package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nathoo/adventurers/types"
)

// Player and sign glyphs. Signs use a single-width glyph so the grid
// stays aligned in every terminal.
const (
	playerGlyph = '♗'
	signGlyph   = '¶'
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleMessageBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("243")).
			Padding(0, 1)

	styleMessageTitle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("228"))

	styleWin = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("34"))

	styleDanger = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	styleEmpty = lipgloss.NewStyle()
)

// blockStyles colours each terrain kind by background.
var blockStyles = map[types.BlockKind]lipgloss.Style{
	types.Grass:       lipgloss.NewStyle().Background(lipgloss.Color("2")),
	types.Sand:        lipgloss.NewStyle().Background(lipgloss.Color("3")),
	types.Rock:        lipgloss.NewStyle().Background(lipgloss.Color("8")),
	types.Cinderblock: lipgloss.NewStyle().Background(lipgloss.Color("1")),
	types.Flowerbush:  lipgloss.NewStyle().Background(lipgloss.Color("5")),
	types.Barrier:     lipgloss.NewStyle().Background(lipgloss.Color("7")),
	types.Water:       lipgloss.NewStyle().Background(lipgloss.Color("4")),
	types.Sign:        lipgloss.NewStyle(),
	types.Object:      lipgloss.NewStyle().Bold(true),
}

// glyph returns the character drawn for a cell.
func glyph(blk types.Block, player bool) rune {
	switch {
	case player:
		return playerGlyph
	case blk.Kind == types.Object:
		return blk.Char
	case blk.Kind == types.Sign:
		return signGlyph
	}
	return ' '
}

// renderCell draws one board cell, keeping the terrain colour under the player.
func renderCell(blk types.Block, player bool) string {
	style, ok := blockStyles[blk.Kind]
	if !ok {
		style = styleEmpty
	}
	return style.Render(string(glyph(blk, player)))
}
