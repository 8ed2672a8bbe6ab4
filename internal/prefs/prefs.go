// Package prefs persists the dashboard toggles a user flips at runtime:
// theme, units, and the clock format. Unlike internal/config, which is
// hand-edited, this file is written by the application itself, so loads
// degrade gracefully and never block startup.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds the persisted runtime toggles. Units and TwentyFourHour
// are pointers so that an absent key defers to the config layer instead
// of forcing a value.
type Prefs struct {
	Theme          string  `toml:"theme"`
	Units          *string `toml:"units,omitempty"`
	TwentyFourHour *bool   `toml:"twenty_four_hour,omitempty"`
}

const (
	defaultPrefsPath = "~/.config/perch/prefs.toml"
	defaultTheme     = "Nightfall"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

func defaults() Prefs {
	return Prefs{Theme: defaultTheme}
}

func (p *Prefs) normalize() {
	if strings.TrimSpace(p.Theme) == "" {
		p.Theme = defaultTheme
	}
	if p.Units != nil {
		trimmed := strings.TrimSpace(*p.Units)
		if trimmed == "" {
			p.Units = nil
		} else {
			*p.Units = trimmed
		}
	}
}

// Load reads preferences, degrading to defaults on any read or parse
// problem.
func Load(path string) (Prefs, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return defaults(), nil
	}

	// A missing or unreadable file is treated the same way: defaults.
	raw, err := os.ReadFile(resolved)
	if err != nil {
		return defaults(), nil
	}

	prefs := defaults()
	if err := toml.Unmarshal(raw, &prefs); err != nil {
		return defaults(), nil
	}
	prefs.normalize()
	return prefs, nil
}

// Save writes preferences to path, creating parent directories as
// needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	raw, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, raw, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

// StringPtr returns a pointer to s, for optional Prefs fields.
func StringPtr(s string) *string { return &s }

// BoolPtr returns a pointer to b, for optional Prefs fields.
func BoolPtr(b bool) *bool { return &b }

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
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
