package app

import (
	"context"
	"fmt"
	"time"

	"github.com/perch-tui/perch/internal/clock"
	"github.com/perch-tui/perch/internal/config"
	"github.com/perch-tui/perch/internal/location"
	"github.com/perch-tui/perch/internal/logging"
	"github.com/perch-tui/perch/internal/prefs"
	"github.com/perch-tui/perch/internal/state"
	"github.com/perch-tui/perch/internal/toast"
	"github.com/perch-tui/perch/internal/ui"
	"github.com/perch-tui/perch/internal/weather"
)

// Options configure the Perch application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/perch/prefs.toml
	PollEvery  int    // seconds; zero uses the config/default value
}

// Run boots the Perch TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		return fmt.Errorf("load prefs: %w", err)
	}

	place := location.Resolve(cfg.Location.Name, cfg.Location.Lat, cfg.Location.Lon, cfg.Location.Timezone)

	provider := weather.NewSimulated(weather.SimOptions{
		FailureRate: cfg.Weather.FailureRate,
		Latency:     250 * time.Millisecond,
	})

	store := &state.Store{}

	toastLog := logging.Component("toast")
	toasts := toast.NewStore(toast.Config{
		Capacity:        cfg.Toast.Capacity,
		DefaultDuration: cfg.Toast.DefaultDuration,
		Logger:          &toastLog,
	})
	defer toasts.Cleanup()

	interval := cfg.Weather.PollInterval
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}

	poller := NewPoller(PollerOptions{
		Store:    store,
		Provider: provider,
		Place:    place,
		Days:     cfg.Weather.ForecastDays,
		Interval: interval,
		Toasts:   toasts,
		Log:      logging.Component("poller"),
	})
	// The first refresh happens inside the poller goroutine; the UI
	// shows the skeleton card until it lands.
	poller.Start(ctx)

	// Runtime toggles saved from a previous session win over the config.
	units := cfg.Weather.Units
	if userPrefs.Units != nil {
		if u := config.Units(*userPrefs.Units); u == config.UnitsMetric || u == config.UnitsImperial {
			units = u
		}
	}
	twentyFour := cfg.Clock.TwentyFourHour
	if userPrefs.TwentyFourHour != nil {
		twentyFour = *userPrefs.TwentyFourHour
	}

	uiOpts := ui.Options{
		Context:   ctx,
		Store:     store,
		Toasts:    toasts,
		Clock:     clock.New(place.TimeLocation(), twentyFour),
		Place:     place,
		Units:     units,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
