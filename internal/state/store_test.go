package state

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/perch-tui/perch/internal/weather"
)

func TestStore_UpdateAndSnapshotClone(t *testing.T) {
	var s Store

	current := &weather.Conditions{TemperatureC: 21.5, Summary: "Clear"}
	forecast := []weather.DayForecast{{Day: "Tuesday"}, {Day: "Wednesday"}}

	before := time.Now()
	s.Update(current, forecast, nil)

	snap := s.Snapshot()
	if !snap.HasCurrent || snap.Current.TemperatureC != 21.5 {
		t.Fatalf("snapshot current = %#v, want 21.5C HasCurrent=true", snap.Current)
	}
	if len(snap.Forecast) != 2 || snap.Forecast[0].Day != "Tuesday" {
		t.Fatalf("snapshot forecast = %#v, want 2 days", snap.Forecast)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}

	// Returned snapshot should be independent of the stored one.
	snap.Forecast[0].Day = "Never"
	snap2 := s.Snapshot()
	if snap2.Forecast[0].Day != "Tuesday" {
		t.Fatalf("Snapshot should clone forecast; got %q want Tuesday", snap2.Forecast[0].Day)
	}
}

func TestStore_UpdateErrorKeepsPreviousData(t *testing.T) {
	var s Store

	s.Update(&weather.Conditions{TemperatureC: 10}, []weather.DayForecast{{Day: "Tuesday"}}, nil)
	prev := s.Snapshot()

	before := time.Now()
	origErr := errors.New("boom")
	s.Update(nil, nil, origErr)

	snap := s.Snapshot()
	if snap.HasCurrent != prev.HasCurrent || snap.Current.TemperatureC != prev.Current.TemperatureC {
		t.Fatalf("current changed on error: got %#v want %#v", snap.Current, prev.Current)
	}
	if len(snap.Forecast) != 1 || snap.Forecast[0].Day != "Tuesday" {
		t.Fatalf("forecast changed on error: got %#v want %#v", snap.Forecast, prev.Forecast)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}
}

func TestStore_ConsecutiveFailuresAndOffline(t *testing.T) {
	var s Store

	if s.Snapshot().IsOffline() {
		t.Fatal("zero-value snapshot should not be offline")
	}

	s.Update(nil, nil, errors.New("one"))
	if s.Snapshot().IsOffline() {
		t.Fatal("one failure should not be offline yet")
	}

	s.Update(nil, nil, errors.New("two"))
	if !s.Snapshot().IsOffline() {
		t.Fatal("two straight failures should read offline")
	}

	s.Update(&weather.Conditions{}, nil, nil)
	snap := s.Snapshot()
	if snap.IsOffline() || snap.ConsecutiveFailures != 0 {
		t.Fatalf("success should reset failures, got %d", snap.ConsecutiveFailures)
	}
}
