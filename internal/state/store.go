package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/perch-tui/perch/internal/weather"
)

// Snapshot represents the latest weather data available to the UI.
type Snapshot struct {
	Current             weather.Conditions
	HasCurrent          bool
	Forecast            []weather.DayForecast
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive poll failures
}

// IsOffline returns true when the provider has failed multiple polls
// in a row.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored snapshot. When err is non-nil the previous
// data is kept but the error is recorded for visibility.
func (s *Store) Update(current *weather.Conditions, forecast []weather.DayForecast, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = time.Now()
		s.snapshot.ConsecutiveFailures++
		return
	}

	s.snapshot.Forecast = cloneForecast(forecast)
	if current != nil {
		s.snapshot.Current = *current
		s.snapshot.HasCurrent = true
	} else {
		s.snapshot.HasCurrent = false
	}
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Forecast = cloneForecast(s.snapshot.Forecast)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneForecast(days []weather.DayForecast) []weather.DayForecast {
	if len(days) == 0 {
		return nil
	}
	dup := make([]weather.DayForecast, len(days))
	copy(dup, days)
	return dup
}
