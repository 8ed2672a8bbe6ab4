package weather

import (
	"context"
	"time"

	"github.com/perch-tui/perch/internal/location"
)

// Conditions is a point-in-time weather observation.
type Conditions struct {
	TemperatureC    float64
	FeelsLikeC      float64
	HumidityPct     float64
	WindKPH         float64
	PrecipChancePct int
	Summary         string
	Icon            string
	ObservedAt      time.Time
}

// TemperatureF returns the temperature in Fahrenheit.
func (c Conditions) TemperatureF() float64 {
	return c.TemperatureC*9/5 + 32
}

// FeelsLikeF returns the apparent temperature in Fahrenheit.
func (c Conditions) FeelsLikeF() float64 {
	return c.FeelsLikeC*9/5 + 32
}

// DayForecast is a single-day outlook entry.
type DayForecast struct {
	Day             string // e.g. "Monday"
	HighC           float64
	LowC            float64
	Summary         string
	Icon            string
	PrecipChancePct int
}

// Provider supplies weather data for a place. Implementations must be
// safe for concurrent use; the poller and the UI may call them from
// different goroutines.
type Provider interface {
	Current(ctx context.Context, place location.Place) (Conditions, error)
	Forecast(ctx context.Context, place location.Place, days int) ([]DayForecast, error)
}
