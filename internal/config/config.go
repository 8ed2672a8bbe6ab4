package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Units selects the temperature display scale.
type Units string

const (
	UnitsMetric   Units = "metric"
	UnitsImperial Units = "imperial"
)

// Config captures everything Perch reads from its config file.
type Config struct {
	Location LocationConfig
	Weather  WeatherConfig
	Clock    ClockConfig
	Toast    ToastConfig
	Log      LogConfig
}

// LocationConfig names the place the weather card reports on.
type LocationConfig struct {
	Name     string
	Lat      float64
	Lon      float64
	Timezone string
}

// WeatherConfig tunes the simulated weather provider and its poller.
type WeatherConfig struct {
	PollInterval time.Duration
	ForecastDays int
	FailureRate  float64
	Units        Units
}

// ClockConfig tunes time display.
type ClockConfig struct {
	TwentyFourHour bool
}

// ToastConfig tunes the notification store.
type ToastConfig struct {
	Capacity        int
	DefaultDuration time.Duration
}

// LogConfig names the log sink.
type LogConfig struct {
	File  string
	Level string
}

const (
	defaultConfigPath   = "~/.config/perch/config.toml"
	defaultLogPath      = "~/.local/state/perch/perch.log"
	defaultPollInterval = 30 * time.Second
	defaultForecastDays = 3
	defaultLogLevel     = "info"
)

// rawConfig mirrors the TOML layout on disk.
type rawConfig struct {
	Location struct {
		Name     string  `toml:"name"`
		Lat      float64 `toml:"lat"`
		Lon      float64 `toml:"lon"`
		Timezone string  `toml:"timezone"`
	} `toml:"location"`
	Weather struct {
		PollSeconds  int     `toml:"poll_seconds"`
		ForecastDays int     `toml:"forecast_days"`
		FailureRate  float64 `toml:"failure_rate"`
		Units        string  `toml:"units"`
	} `toml:"weather"`
	Clock struct {
		TwentyFourHour *bool `toml:"twenty_four_hour"`
	} `toml:"clock"`
	Toast struct {
		Capacity   int `toml:"capacity"`
		DurationMS int `toml:"duration_ms"`
	} `toml:"toast"`
	Log struct {
		File  string `toml:"file"`
		Level string `toml:"level"`
	} `toml:"log"`
}

// Load locates and parses the Perch config, falling back to defaults
// when the file is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.apply(raw)
	return cfg, nil
}

func defaults() Config {
	return Config{
		Weather: WeatherConfig{
			PollInterval: defaultPollInterval,
			ForecastDays: defaultForecastDays,
			Units:        UnitsMetric,
		},
		Clock: ClockConfig{TwentyFourHour: true},
		Log:   LogConfig{File: mustExpand(defaultLogPath), Level: defaultLogLevel},
	}
}

func (c *Config) apply(raw rawConfig) {
	c.Location.Name = strings.TrimSpace(raw.Location.Name)
	c.Location.Lat = raw.Location.Lat
	c.Location.Lon = raw.Location.Lon
	c.Location.Timezone = strings.TrimSpace(raw.Location.Timezone)

	if raw.Weather.PollSeconds > 0 {
		c.Weather.PollInterval = time.Duration(raw.Weather.PollSeconds) * time.Second
	}
	if raw.Weather.ForecastDays > 0 {
		c.Weather.ForecastDays = raw.Weather.ForecastDays
	}
	if raw.Weather.FailureRate >= 0 && raw.Weather.FailureRate <= 1 {
		c.Weather.FailureRate = raw.Weather.FailureRate
	}
	if units := Units(strings.TrimSpace(raw.Weather.Units)); units == UnitsMetric || units == UnitsImperial {
		c.Weather.Units = units
	}

	if raw.Clock.TwentyFourHour != nil {
		c.Clock.TwentyFourHour = *raw.Clock.TwentyFourHour
	}

	if raw.Toast.Capacity > 0 {
		c.Toast.Capacity = raw.Toast.Capacity
	}
	if raw.Toast.DurationMS > 0 {
		c.Toast.DefaultDuration = time.Duration(raw.Toast.DurationMS) * time.Millisecond
	}

	if file := strings.TrimSpace(raw.Log.File); file != "" {
		c.Log.File = mustExpand(file)
	}
	if level := strings.TrimSpace(raw.Log.Level); level != "" {
		c.Log.Level = level
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
