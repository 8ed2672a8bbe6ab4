package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors and styles for the UI.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background
	Surface    string // Main content panels
	SurfaceAlt string // Secondary surfaces

	// Border colors
	Border      string // Default border
	BorderFocus string // Focus border

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.Border)).
		Padding(0, 1)

	toastCard := func(accent string) lipgloss.Style {
		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(accent)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1)
	}

	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		InfoText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Info)),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Panel:      panel,
		PanelFocus: panel.BorderForeground(lipgloss.Color(t.BorderFocus)),

		ClockDigits: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		ToastInfo:    toastCard(t.Info),
		ToastSuccess: toastCard(t.Success),
		ToastWarning: toastCard(t.Warning),
		ToastError:   toastCard(t.Danger),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	// Text
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style

	// Components
	Header      lipgloss.Style
	Footer      lipgloss.Style
	Logo        lipgloss.Style
	Panel       lipgloss.Style
	PanelFocus  lipgloss.Style
	ClockDigits lipgloss.Style

	// Toast cards by level
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style
}

// Theme definitions

var themes = map[string]Theme{
	"Nightfall": nightfallTheme(),
	"Daylight":  daylightTheme(),
	"Slate":     slateTheme(),
}

var themeOrder = []string{"Nightfall", "Daylight", "Slate"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return nightfallTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func nightfallTheme() Theme {
	// Nightfox-derived dark palette.
	return Theme{
		Name: "Nightfall",

		Background: "#131a24",
		Surface:    "#192330",
		SurfaceAlt: "#212e3f",

		Border:      "#39506d",
		BorderFocus: "#719cd6",

		Text:    "#cdcecf",
		Muted:   "#738091",
		Faint:   "#71839b",
		Accent:  "#719cd6",
		Success: "#81b29a",
		Warning: "#dbc074",
		Danger:  "#c94f6d",
		Info:    "#63cdcf",
	}
}

func daylightTheme() Theme {
	return Theme{
		Name: "Daylight",

		Background: "#fafafa",
		Surface:    "#eceff4",
		SurfaceAlt: "#e5e9f0",

		Border:      "#c2c9d6",
		BorderFocus: "#3b6ea5",

		Text:    "#2e3440",
		Muted:   "#6b7386",
		Faint:   "#8a92a5",
		Accent:  "#3b6ea5",
		Success: "#3f7d54",
		Warning: "#aa6f1d",
		Danger:  "#a5222f",
		Info:    "#2b7a8c",
	}
}

func slateTheme() Theme {
	return Theme{
		Name: "Slate",

		Background: "#1c1f26",
		Surface:    "#23272f",
		SurfaceAlt: "#2b3039",

		Border:      "#3d434f",
		BorderFocus: "#8fa1b3",

		Text:    "#d4d9e1",
		Muted:   "#7f8694",
		Faint:   "#6a7180",
		Accent:  "#8fa1b3",
		Success: "#9bc29b",
		Warning: "#d9b47f",
		Danger:  "#c97f8c",
		Info:    "#9fc6d4",
	}
}
