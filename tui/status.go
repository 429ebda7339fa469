package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nathoo/adventurers/engine/movement"
)

// renderStatusBar produces a full-width inverted status line showing the
// quest, position, the block underfoot and the water streak.
func (m Model) renderStatusBar() string {
	p := m.engine.Movement.Player

	under := "nothing"
	if blk, ok := m.board.At(p.Position); ok {
		under = blk.String()
	}

	left := fmt.Sprintf(" Quest %s | (%d,%d) %s", m.engine.Quest.Key(), p.Position.X, p.Position.Y, under)
	right := fmt.Sprintf("T:%d ", len(m.engine.CommandLog))
	if p.Streak > 0 {
		right = fmt.Sprintf("Air: %d | T:%d ", movement.DrownAfter-p.Streak, len(m.engine.CommandLog))
	}

	width := m.width
	if width < movement.ViewportWidth {
		width = movement.ViewportWidth
	}
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(width).Render(bar)
}
