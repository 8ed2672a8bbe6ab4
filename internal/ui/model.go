package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/perch-tui/perch/internal/clock"
	"github.com/perch-tui/perch/internal/config"
	"github.com/perch-tui/perch/internal/location"
	"github.com/perch-tui/perch/internal/prefs"
	"github.com/perch-tui/perch/internal/state"
	"github.com/perch-tui/perch/internal/toast"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Toasts    *toast.Store
	Clock     *clock.Clock
	Place     location.Place
	Units     config.Units
	ThemeName string
	PrefsPath string
}

// tickMsg drives the clock and the snapshot refresh, once per second.
type tickMsg time.Time

// toastsMsg carries the toast list pushed by the store subscription.
type toastsMsg []toast.Toast

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	store     *state.Store
	toasts    *toast.Store
	clk       *clock.Clock
	place     location.Place
	units     config.Units
	prefsPath string

	// UI state
	theme   Theme
	styles  Styles
	keys    keyMap
	width   int
	height  int
	ready   bool
	spinner spinner.Model

	// Data state
	snapshot    state.Snapshot
	activeToast []toast.Toast
	lastUpdated time.Time

	// Help overlay
	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = themeOrder[0]
	}
	theme := GetTheme(themeName)

	clk := opts.Clock
	if clk == nil {
		clk = clock.New(nil, true)
	}

	units := opts.Units
	if units == "" {
		units = config.UnitsMetric
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Styles().AccentText

	return Model{
		ctx:       ctx,
		store:     opts.Store,
		toasts:    opts.Toasts,
		clk:       clk,
		place:     opts.Place,
		units:     units,
		prefsPath: prefsPath,
		theme:     theme,
		styles:    theme.Styles(),
		keys:      DefaultKeyMap(),
		spinner:   sp,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tickCmd(),
		m.spinner.Tick,
	)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		if m.store != nil {
			m.snapshot = m.store.Snapshot()
			m.lastUpdated = m.snapshot.LastUpdated
		}
		return m, tickCmd()

	case toastsMsg:
		m.activeToast = msg
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes the help overlay.
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.styles = m.theme.Styles()
		m.spinner.Style = m.styles.AccentText
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.DismissToast):
		m.dismissNewestToast()
		return m, nil

	case key.Matches(msg, m.keys.DismissAll):
		if m.toasts != nil {
			m.toasts.DismissAll()
		}
		return m, nil

	case key.Matches(msg, m.keys.DemoInfo):
		if m.toasts != nil {
			m.toasts.Info("Heads up", "This is an informational toast")
		}
		return m, nil

	case key.Matches(msg, m.keys.DemoSuccess):
		if m.toasts != nil {
			m.toasts.Success("All good", "The operation completed")
		}
		return m, nil

	case key.Matches(msg, m.keys.DemoWarning):
		if m.toasts != nil {
			m.toasts.Warning("Careful", "This one lingers a little longer")
		}
		return m, nil

	case key.Matches(msg, m.keys.DemoError):
		if m.toasts != nil {
			m.toasts.Error("Something broke", "Sticky until dismissed with x")
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleUnits):
		if m.units == config.UnitsMetric {
			m.units = config.UnitsImperial
		} else {
			m.units = config.UnitsMetric
		}
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.ToggleClockHr):
		m.clk.SetTwentyFourHour(!m.clk.TwentyFourHour())
		m.savePrefs()
		return m, nil
	}

	return m, nil
}

// savePrefs snapshots the runtime toggles. Failures are dropped; a
// read-only home directory should not break the session.
func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	_ = prefs.Save(m.prefsPath, prefs.Prefs{
		Theme:          m.theme.Name,
		Units:          prefs.StringPtr(string(m.units)),
		TwentyFourHour: prefs.BoolPtr(m.clk.TwentyFourHour()),
	})
}

// dismissNewestToast closes the most recent open toast through its own
// OnOpenChange callback, the same path a click on a close affordance
// would take in a graphical shell.
func (m *Model) dismissNewestToast() {
	for _, t := range m.activeToast {
		if t.Open {
			if t.OnOpenChange != nil {
				t.OnOpenChange(false)
			}
			return
		}
	}
}
