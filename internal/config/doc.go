// Package config handles loading and parsing the Perch configuration
// file.
//
// # Overview
//
// Perch reads a single TOML file describing the place to report weather
// for, how the simulated provider and its poller behave, how the clock
// is displayed, how the toast store is bounded, and where logs go.
// Every field is optional; a missing file is not an error.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/perch/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/invalid, use defaults
//     for those fields
//
// # Default Values
//
//   - Config file: ~/.config/perch/config.toml
//   - Weather poll interval: 30 seconds
//   - Forecast days: 3
//   - Units: metric
//   - Clock: 24-hour
//   - Toast capacity/duration: store defaults (5 toasts, 5 seconds)
//   - Log file: ~/.local/state/perch/perch.log, level info
//
// # TOML Format
//
// Example config.toml:
//
//	[location]
//	name = "Lisbon"
//	lat = 38.72
//	lon = -9.14
//	timezone = "Europe/Lisbon"
//
//	[weather]
//	poll_seconds = 30
//	forecast_days = 3
//	failure_rate = 0.1   # fraction of simulated polls that fail
//	units = "metric"     # or "imperial"
//
//	[clock]
//	twenty_four_hour = true
//
//	[toast]
//	capacity = 5
//	duration_ms = 5000
//
//	[log]
//	file = "~/.local/state/perch/perch.log"
//	level = "info"
//
// Out-of-range numbers (negative poll interval, failure rate above 1,
// unknown units) are ignored in favor of the defaults rather than
// rejected: the dashboard should start with whatever sensible subset of
// the file it can use.
package config
