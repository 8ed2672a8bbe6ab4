package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	header := m.renderHeader()
	footer := m.renderFooter()

	clockPanel := m.renderClockPanel()
	weatherCard := m.renderWeatherCard()
	body := lipgloss.JoinHorizontal(lipgloss.Top, clockPanel, " ", weatherCard)
	body = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body)

	toastStack := m.renderToasts()

	// The toast stack sits above the footer, right-aligned, so it reads
	// like an overlay without compositing layers.
	used := lipgloss.Height(header) + lipgloss.Height(body) + lipgloss.Height(footer)
	if toastStack != "" {
		used += lipgloss.Height(toastStack)
	}
	filler := ""
	if pad := m.height - used; pad > 0 {
		filler = strings.Repeat("\n", pad-1)
	}

	sections := []string{header, body}
	if filler != "" {
		sections = append(sections, filler)
	}
	if toastStack != "" {
		sections = append(sections, lipgloss.PlaceHorizontal(m.width, lipgloss.Right, toastStack))
	}
	sections = append(sections, footer)

	return strings.Join(sections, "\n")
}

func (m Model) renderFooter() string {
	hints := []string{
		"? help",
		"T theme",
		"u °C/°F",
		"x dismiss",
		"1-4 toasts",
		"q quit",
	}
	return m.styles.Footer.Width(m.width).Render(strings.Join(hints, "  ·  "))
}

// renderHelp shows the full keybinding reference.
func (m Model) renderHelp() string {
	rows := []struct{ key, desc string }{
		{"?", "toggle this help"},
		{"T", "cycle theme (" + strings.Join(ThemeNames(), ", ") + ")"},
		{"c", "toggle 12/24 hour clock"},
		{"u", "toggle °C/°F"},
		{"x", "dismiss newest toast"},
		{"X", "dismiss all toasts"},
		{"1", "show an info toast"},
		{"2", "show a success toast"},
		{"3", "show a warning toast"},
		{"4", "show a sticky error toast"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString(m.styles.AccentText.Render("perch keys"))
	b.WriteString("\n\n")
	for _, r := range rows {
		b.WriteString(m.styles.Text.Render(padRight(r.key, 4)))
		b.WriteString(m.styles.MutedText.Render(r.desc))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.FaintText.Render("press any key to close"))

	panel := m.styles.PanelFocus.Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, panel)
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
