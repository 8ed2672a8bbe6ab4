package weather

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/perch-tui/perch/internal/location"
)

func fixedNow() time.Time {
	return time.Date(2026, 6, 15, 14, 0, 0, 0, time.UTC)
}

func TestSimulated_Current_plausibleRanges(t *testing.T) {
	sim := NewSimulated(SimOptions{Seed: 42})
	sim.now = fixedNow

	tests := []struct {
		name  string
		place location.Place
	}{
		{"temperate", location.Place{Name: "Berlin", Lat: 52.52, Lon: 13.4, Timezone: "UTC"}},
		{"equatorial", location.Place{Name: "Quito", Lat: -0.18, Lon: -78.4, Timezone: "UTC"}},
		{"polar", location.Place{Name: "Longyearbyen", Lat: 78.2, Lon: 15.6, Timezone: "UTC"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cond, err := sim.Current(context.Background(), tt.place)
			if err != nil {
				t.Fatalf("Current() error = %v", err)
			}
			if cond.TemperatureC < -60 || cond.TemperatureC > 55 {
				t.Fatalf("TemperatureC = %v, outside plausible range", cond.TemperatureC)
			}
			if cond.HumidityPct < 0 || cond.HumidityPct > 100 {
				t.Fatalf("HumidityPct = %v, want 0..100", cond.HumidityPct)
			}
			if cond.PrecipChancePct < 0 || cond.PrecipChancePct > 100 {
				t.Fatalf("PrecipChancePct = %v, want 0..100", cond.PrecipChancePct)
			}
			if cond.Summary == "" || cond.Icon == "" {
				t.Fatalf("summary/icon empty: %q %q", cond.Summary, cond.Icon)
			}
			if cond.ObservedAt.IsZero() {
				t.Fatal("ObservedAt not set")
			}
		})
	}
}

func TestSimulated_Current_driftsSmoothly(t *testing.T) {
	sim := NewSimulated(SimOptions{Seed: 7})
	sim.now = fixedNow
	place := location.DefaultPlace

	first, err := sim.Current(context.Background(), place)
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}
	second, err := sim.Current(context.Background(), place)
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}

	delta := second.TemperatureC - first.TemperatureC
	if delta < -1.5 || delta > 1.5 {
		t.Fatalf("temperature jumped by %v between polls, want bounded drift", delta)
	}
}

func TestSimulated_Forecast(t *testing.T) {
	sim := NewSimulated(SimOptions{Seed: 3})
	sim.now = fixedNow

	days, err := sim.Forecast(context.Background(), location.DefaultPlace, 3)
	if err != nil {
		t.Fatalf("Forecast() error = %v", err)
	}
	if len(days) != 3 {
		t.Fatalf("len(forecast) = %d, want 3", len(days))
	}
	if days[0].Day != "Tuesday" {
		// fixedNow is a Monday; the outlook starts tomorrow.
		t.Fatalf("first forecast day = %q, want Tuesday", days[0].Day)
	}
	for _, d := range days {
		if d.LowC >= d.HighC {
			t.Fatalf("day %s: low %v >= high %v", d.Day, d.LowC, d.HighC)
		}
	}
}

func TestSimulated_Forecast_zeroDays(t *testing.T) {
	sim := NewSimulated(SimOptions{Seed: 3})
	days, err := sim.Forecast(context.Background(), location.DefaultPlace, 0)
	if err != nil || days != nil {
		t.Fatalf("Forecast(0) = %v, %v; want nil, nil", days, err)
	}
}

func TestSimulated_FailureRate(t *testing.T) {
	sim := NewSimulated(SimOptions{Seed: 1, FailureRate: 1})

	_, err := sim.Current(context.Background(), location.DefaultPlace)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Current() error = %v, want ErrUnavailable", err)
	}
}

func TestSimulated_LatencyHonorsContext(t *testing.T) {
	sim := NewSimulated(SimOptions{Seed: 1, Latency: time.Minute})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := sim.Current(ctx, location.DefaultPlace)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Current() error = %v, want deadline exceeded", err)
	}
}

func TestConditions_TemperatureF(t *testing.T) {
	c := Conditions{TemperatureC: 20, FeelsLikeC: 0}
	if got := c.TemperatureF(); got != 68 {
		t.Fatalf("TemperatureF() = %v, want 68", got)
	}
	if got := c.FeelsLikeF(); got != 32 {
		t.Fatalf("FeelsLikeF() = %v, want 32", got)
	}
}
