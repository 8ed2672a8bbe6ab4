package app

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/perch-tui/perch/internal/location"
	"github.com/perch-tui/perch/internal/state"
	"github.com/perch-tui/perch/internal/toast"
	"github.com/perch-tui/perch/internal/weather"
)

const (
	defaultPollInterval = 30 * time.Second
	maxBackoff          = 2 * time.Minute
)

// Poller refreshes the weather snapshot at a fixed cadence, backing
// off while the provider is failing. Outage transitions are surfaced
// as toasts: a sticky error toast when polling starts failing, a
// success toast once it recovers.
type Poller struct {
	store    *state.Store
	provider weather.Provider
	place    location.Place
	days     int
	interval time.Duration
	toasts   *toast.Store
	log      zerolog.Logger

	failing      bool
	outageHandle toast.Handle
}

// PollerOptions configure a Poller. Store, Provider, and Toasts are
// required.
type PollerOptions struct {
	Store    *state.Store
	Provider weather.Provider
	Place    location.Place
	Days     int
	Interval time.Duration
	Toasts   *toast.Store
	Log      zerolog.Logger
}

// NewPoller builds a poller; it does not start any goroutine.
func NewPoller(opts PollerOptions) *Poller {
	interval := opts.Interval
	if interval <= 0 {
		interval = defaultPollInterval
	}
	days := opts.Days
	if days <= 0 {
		days = 3
	}
	return &Poller{
		store:    opts.Store,
		provider: opts.Provider,
		place:    opts.Place,
		days:     days,
		interval: interval,
		toasts:   opts.Toasts,
		log:      opts.Log,
	}
}

// Start launches the background polling goroutine. It returns
// immediately; the goroutine exits when ctx is cancelled.
func (p *Poller) Start(ctx context.Context) {
	go func() {
		for {
			p.refresh(ctx)

			wait := calculateBackoff(p.store.Snapshot().ConsecutiveFailures, p.interval)
			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
		}
	}()
}

// refresh performs a single fetch cycle and records the result.
func (p *Poller) refresh(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	current, err := p.provider.Current(ctx, p.place)
	if err != nil {
		p.recordFailure(err)
		return
	}
	forecast, err := p.provider.Forecast(ctx, p.place, p.days)
	if err != nil {
		p.recordFailure(err)
		return
	}

	p.store.Update(&current, forecast, nil)

	if p.failing {
		p.failing = false
		p.outageHandle.Dismiss()
		p.toasts.Success("Weather restored", "Provider is reachable again")
		p.log.Info().Msg("weather poll recovered")
	}
}

func (p *Poller) recordFailure(err error) {
	p.store.Update(nil, nil, err)
	p.log.Warn().Err(err).Msg("weather poll failed")

	// Only the transition into an outage raises a toast; repeated
	// failures extend it silently.
	if !p.failing {
		p.failing = true
		p.outageHandle = p.toasts.Error("Weather unavailable", err.Error())
	}
}

// calculateBackoff doubles the base interval per consecutive failure,
// capped at maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	backoff := base << failures
	if backoff <= 0 || backoff > maxBackoff {
		return maxBackoff
	}
	return backoff
}
