package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/perch-tui/perch/internal/toast"
)

// Run starts the terminal UI and blocks until the user quits or the
// context in opts is cancelled.
func Run(opts Options) error {
	m := New(opts)

	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		progOpts = append(progOpts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(m, progOpts...)

	// Bridge notification fan-out into the tea loop. Send is safe from
	// other goroutines, so the subscriber can fire from timer callbacks.
	if opts.Toasts != nil {
		unsubscribe := opts.Toasts.Subscribe(func(ts []toast.Toast) {
			p.Send(toastsMsg(ts))
		})
		defer unsubscribe()
	}

	_, err := p.Run()
	return err
}
