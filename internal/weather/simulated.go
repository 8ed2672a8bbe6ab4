package weather

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/perch-tui/perch/internal/location"
)

// ErrUnavailable is returned by the simulated provider when it is
// imitating an outage.
var ErrUnavailable = errors.New("weather provider unavailable")

// Ensure Simulated implements Provider at compile time.
var _ Provider = (*Simulated)(nil)

// SimOptions tune the simulated provider.
type SimOptions struct {
	// Seed makes the simulation reproducible. Zero picks a random seed.
	Seed uint64

	// Latency is an artificial per-call delay imitating a network
	// fetch. Zero means no delay.
	Latency time.Duration

	// FailureRate is the probability in [0,1] that a call fails with
	// ErrUnavailable. Useful for exercising error surfacing.
	FailureRate float64
}

// Simulated synthesizes plausible weather with a bounded random walk:
// successive calls for the same place drift smoothly instead of
// jumping. It never talks to a real API.
type Simulated struct {
	latency     time.Duration
	failureRate float64

	mu   sync.Mutex
	rng  *rand.Rand
	last map[string]Conditions
	now  func() time.Time
}

// NewSimulated creates a simulated weather provider.
func NewSimulated(opts SimOptions) *Simulated {
	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Simulated{
		latency:     opts.Latency,
		failureRate: opts.FailureRate,
		rng:         rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		last:        make(map[string]Conditions),
		now:         time.Now,
	}
}

// Current returns synthesized conditions for the place.
func (s *Simulated) Current(ctx context.Context, place location.Place) (Conditions, error) {
	if err := s.simulateFetch(ctx); err != nil {
		return Conditions{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().In(place.TimeLocation())
	cond := s.nextConditionsLocked(place, now)
	s.last[place.Name] = cond
	return cond, nil
}

// Forecast returns a synthesized outlook derived from the current
// conditions, one entry per day starting tomorrow.
func (s *Simulated) Forecast(ctx context.Context, place location.Place, days int) ([]DayForecast, error) {
	if err := s.simulateFetch(ctx); err != nil {
		return nil, err
	}
	if days <= 0 {
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().In(place.TimeLocation())
	cond, ok := s.last[place.Name]
	if !ok {
		cond = s.nextConditionsLocked(place, now)
		s.last[place.Name] = cond
	}

	out := make([]DayForecast, 0, days)
	high := cond.TemperatureC + 2
	for i := 1; i <= days; i++ {
		high += s.rng.Float64()*4 - 2
		low := high - 5 - s.rng.Float64()*5
		precip := clampPct(cond.PrecipChancePct + int(s.rng.Float64()*40-20))
		summary, icon := describe(high, precip, cond.WindKPH)
		out = append(out, DayForecast{
			Day:             now.AddDate(0, 0, i).Weekday().String(),
			HighC:           round1(high),
			LowC:            round1(low),
			Summary:         summary,
			Icon:            icon,
			PrecipChancePct: precip,
		})
	}
	return out, nil
}

// simulateFetch sleeps for the configured latency (honoring ctx) and
// rolls for a simulated outage.
func (s *Simulated) simulateFetch(ctx context.Context) error {
	if s.latency > 0 {
		timer := time.NewTimer(s.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	s.mu.Lock()
	fail := s.failureRate > 0 && s.rng.Float64() < s.failureRate
	s.mu.Unlock()
	if fail {
		return ErrUnavailable
	}
	return nil
}

// nextConditionsLocked advances the random walk for a place. The
// baseline depends on latitude, season, and hour of day so the numbers
// stay plausible for the location.
func (s *Simulated) nextConditionsLocked(place location.Place, now time.Time) Conditions {
	base := baselineC(place.Lat, now)

	prev, ok := s.last[place.Name]
	temp := base
	humidity := 40 + s.rng.Float64()*40
	wind := 5 + s.rng.Float64()*25
	precip := clampPct(int(s.rng.Float64() * 100))
	if ok {
		// Drift from the previous observation instead of re-rolling.
		temp = prev.TemperatureC + s.rng.Float64()*2 - 1
		humidity = clampF(prev.HumidityPct+s.rng.Float64()*10-5, 10, 100)
		wind = clampF(prev.WindKPH+s.rng.Float64()*6-3, 0, 90)
		precip = clampPct(prev.PrecipChancePct + int(s.rng.Float64()*20-10))
	}

	summary, icon := describe(temp, precip, wind)
	feels := temp - wind*0.08
	if temp > 20 {
		feels = temp + (humidity-50)*0.04
	}

	return Conditions{
		TemperatureC:    round1(temp),
		FeelsLikeC:      round1(feels),
		HumidityPct:     math.Round(humidity),
		WindKPH:         round1(wind),
		PrecipChancePct: precip,
		Summary:         summary,
		Icon:            icon,
		ObservedAt:      now,
	}
}

// baselineC estimates a typical temperature for a latitude at a given
// moment: colder toward the poles, a seasonal swing, and a diurnal
// cycle peaking mid-afternoon.
func baselineC(lat float64, now time.Time) float64 {
	yearFrac := float64(now.YearDay()) / 365
	seasonal := math.Sin(2 * math.Pi * (yearFrac - 0.22))
	if lat < 0 {
		seasonal = -seasonal
	}
	diurnal := -math.Cos(2 * math.Pi * float64(now.Hour()-2) / 24)

	return 27 - 0.4*math.Abs(lat) + 8*seasonal + 4*diurnal
}

func describe(tempC float64, precipPct int, windKPH float64) (summary, icon string) {
	switch {
	case precipPct >= 80 && tempC > 18:
		return "Thunderstorm", "⛈"
	case precipPct >= 60 && tempC <= 0:
		return "Snow", "❄"
	case precipPct >= 60:
		return "Rain", "🌧"
	case precipPct >= 40:
		return "Cloudy", "☁"
	case windKPH >= 40:
		return "Windy", "🌬"
	case precipPct >= 15:
		return "Partly cloudy", "⛅"
	default:
		return "Clear", "☀"
	}
}

func clampPct(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func clampF(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
