package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding

	// Toasts
	DismissToast  key.Binding
	DismissAll    key.Binding
	DemoInfo      key.Binding
	DemoSuccess   key.Binding
	DemoWarning   key.Binding
	DemoError     key.Binding
	ToggleUnits   key.Binding
	ToggleClockHr key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("?", "help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "cycle theme"),
		),
		DismissToast: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "dismiss toast"),
		),
		DismissAll: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "dismiss all toasts"),
		),
		DemoInfo: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "info toast"),
		),
		DemoSuccess: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "success toast"),
		),
		DemoWarning: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "warning toast"),
		),
		DemoError: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "error toast"),
		),
		ToggleUnits: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "°C/°F"),
		),
		ToggleClockHr: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "12/24 hour"),
		),
	}
}
