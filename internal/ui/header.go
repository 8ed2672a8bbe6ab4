package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader draws the top bar: logo, place, offline badge and the
// time of the last successful weather refresh.
func (m Model) renderHeader() string {
	logo := m.styles.Logo.Render(" perch ")
	place := m.styles.MutedText.Render(m.place.String())

	left := lipgloss.JoinHorizontal(lipgloss.Center, logo, "  ", place)

	var right string
	switch {
	case m.snapshot.IsOffline():
		right = m.styles.DangerText.Render("● offline")
	case !m.snapshot.LastUpdated.IsZero():
		right = m.styles.FaintText.Render("updated " + m.snapshot.LastUpdated.Format("15:04:05"))
	default:
		right = m.styles.FaintText.Render(m.spinner.View() + " connecting")
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}

	line := left + strings.Repeat(" ", gap) + right
	return m.styles.Header.Width(m.width).Render(line)
}
