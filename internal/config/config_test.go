package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Weather.PollInterval != defaultPollInterval {
		t.Fatalf("PollInterval = %v, want %v", cfg.Weather.PollInterval, defaultPollInterval)
	}
	if cfg.Weather.ForecastDays != defaultForecastDays {
		t.Fatalf("ForecastDays = %d, want %d", cfg.Weather.ForecastDays, defaultForecastDays)
	}
	if cfg.Weather.Units != UnitsMetric {
		t.Fatalf("Units = %q, want metric", cfg.Weather.Units)
	}
	if !cfg.Clock.TwentyFourHour {
		t.Fatal("TwentyFourHour should default to true")
	}
	if cfg.Location.Name != "" {
		t.Fatalf("Location.Name = %q, want empty (resolved later)", cfg.Location.Name)
	}
	if !strings.HasPrefix(cfg.Log.File, home) {
		t.Fatalf("Log.File = %q, want it under HOME %q", cfg.Log.File, home)
	}
	if cfg.Log.Level != defaultLogLevel {
		t.Fatalf("Log.Level = %q, want %q", cfg.Log.Level, defaultLogLevel)
	}
}

func TestLoad_ParsesAndNormalizes(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
[location]
name = "  Lisbon  "
lat = 38.72
lon = -9.14
timezone = " Europe/Lisbon "

[weather]
poll_seconds = 10
forecast_days = 5
failure_rate = 0.25
units = "imperial"

[clock]
twenty_four_hour = false

[toast]
capacity = 3
duration_ms = 2500

[log]
file = "~/perch-logs/out.log"
level = "debug"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Location.Name != "Lisbon" {
		t.Fatalf("Location.Name = %q, want Lisbon", cfg.Location.Name)
	}
	if cfg.Location.Timezone != "Europe/Lisbon" {
		t.Fatalf("Location.Timezone = %q, want trimmed", cfg.Location.Timezone)
	}
	if cfg.Weather.PollInterval != 10*time.Second {
		t.Fatalf("PollInterval = %v, want 10s", cfg.Weather.PollInterval)
	}
	if cfg.Weather.ForecastDays != 5 {
		t.Fatalf("ForecastDays = %d, want 5", cfg.Weather.ForecastDays)
	}
	if cfg.Weather.FailureRate != 0.25 {
		t.Fatalf("FailureRate = %v, want 0.25", cfg.Weather.FailureRate)
	}
	if cfg.Weather.Units != UnitsImperial {
		t.Fatalf("Units = %q, want imperial", cfg.Weather.Units)
	}
	if cfg.Clock.TwentyFourHour {
		t.Fatal("TwentyFourHour should be false")
	}
	if cfg.Toast.Capacity != 3 {
		t.Fatalf("Toast.Capacity = %d, want 3", cfg.Toast.Capacity)
	}
	if cfg.Toast.DefaultDuration != 2500*time.Millisecond {
		t.Fatalf("Toast.DefaultDuration = %v, want 2.5s", cfg.Toast.DefaultDuration)
	}
	if !strings.HasPrefix(cfg.Log.File, home) {
		t.Fatalf("Log.File = %q, want it under HOME %q", cfg.Log.File, home)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoad_InvalidValuesKeepDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
[weather]
poll_seconds = -3
forecast_days = 0
failure_rate = 7.5
units = "kelvin"

[toast]
capacity = -1
duration_ms = 0
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Weather.PollInterval != defaultPollInterval {
		t.Fatalf("PollInterval = %v, want default", cfg.Weather.PollInterval)
	}
	if cfg.Weather.ForecastDays != defaultForecastDays {
		t.Fatalf("ForecastDays = %d, want default", cfg.Weather.ForecastDays)
	}
	if cfg.Weather.FailureRate != 0 {
		t.Fatalf("FailureRate = %v, want 0 (out of range ignored)", cfg.Weather.FailureRate)
	}
	if cfg.Weather.Units != UnitsMetric {
		t.Fatalf("Units = %q, want metric", cfg.Weather.Units)
	}
	if cfg.Toast.Capacity != 0 {
		t.Fatalf("Toast.Capacity = %d, want 0 (store picks its default)", cfg.Toast.Capacity)
	}
	if cfg.Toast.DefaultDuration != 0 {
		t.Fatalf("Toast.DefaultDuration = %v, want 0 (store picks its default)", cfg.Toast.DefaultDuration)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`[location`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
