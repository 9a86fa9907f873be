package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nathoo/frontiercore/engine"
)

// renderStatusBar produces a full-width inverted status line showing the
// current place, the hour, the player's purse, and the world seed.
func (m Model) renderStatusBar() string {
	p := m.session.Player

	place := "the open range"
	if loc := m.session.Location(); loc != nil {
		place = loc.Name
		if r := m.session.Region(); r != nil {
			place += " | " + r.Name
		}
	}

	left := fmt.Sprintf(" %s | %s (h%d)", place, engine.PeriodOfHour(p.Hour), p.Hour)
	right := fmt.Sprintf("%dg | seed %d ", p.Purse, m.session.World.Seed)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}
