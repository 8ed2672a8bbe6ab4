package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/perch-tui/perch/internal/toast"
)

// renderToasts draws the notification stack, oldest at the top so the
// newest toast lands closest to the footer.
func (m Model) renderToasts() string {
	if len(m.activeToast) == 0 {
		return ""
	}

	cards := make([]string, 0, len(m.activeToast))
	for i := len(m.activeToast) - 1; i >= 0; i-- {
		cards = append(cards, m.renderToast(m.activeToast[i]))
	}
	return lipgloss.JoinVertical(lipgloss.Right, cards...)
}

func (m Model) renderToast(t toast.Toast) string {
	var b strings.Builder
	b.WriteString(levelIcon(t.Level))
	b.WriteString(" ")
	b.WriteString(t.Title)
	if t.Description != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.MutedText.Render(t.Description))
	}
	if t.Action != nil && t.Action.Label != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.AccentText.Render("[" + t.Action.Label + "]"))
	}

	style := m.toastStyle(t.Level)
	if !t.Open {
		// Closing toasts stay on screen until their removal fires;
		// fade them instead of snapping them away.
		style = style.Faint(true)
	}
	return style.Render(b.String())
}

func (m Model) toastStyle(level toast.Level) lipgloss.Style {
	switch level {
	case toast.LevelSuccess:
		return m.styles.ToastSuccess
	case toast.LevelWarning:
		return m.styles.ToastWarning
	case toast.LevelError:
		return m.styles.ToastError
	default:
		return m.styles.ToastInfo
	}
}

func levelIcon(level toast.Level) string {
	switch level {
	case toast.LevelSuccess:
		return "✓"
	case toast.LevelWarning:
		return "▲"
	case toast.LevelError:
		return "✗"
	default:
		return "ℹ"
	}
}
