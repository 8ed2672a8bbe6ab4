package ui

import "testing"

func TestGetTheme(t *testing.T) {
	for _, name := range ThemeNames() {
		got := GetTheme(name)
		if got.Name != name {
			t.Errorf("GetTheme(%q).Name = %q", name, got.Name)
		}
	}
}

func TestGetThemeUnknownFallsBack(t *testing.T) {
	got := GetTheme("no-such-theme")
	if got.Name != "Nightfall" {
		t.Errorf("fallback theme = %q, want Nightfall", got.Name)
	}
}

func TestNextThemeCycles(t *testing.T) {
	names := ThemeNames()
	seen := map[string]bool{}
	current := names[0]
	for range names {
		seen[current] = true
		current = NextTheme(current)
	}
	if current != names[0] {
		t.Errorf("cycle did not wrap, ended on %q", current)
	}
	if len(seen) != len(names) {
		t.Errorf("cycle visited %d themes, want %d", len(seen), len(names))
	}
}

func TestNextThemeUnknownResets(t *testing.T) {
	if got := NextTheme("missing"); got != "Nightfall" {
		t.Errorf("NextTheme(missing) = %q, want Nightfall", got)
	}
}

func TestStylesUsesThemeColors(t *testing.T) {
	for _, name := range ThemeNames() {
		theme := GetTheme(name)
		styles := theme.Styles()
		if styles.Text.GetForeground() != styles.FaintText.GetForeground() {
			continue
		}
		t.Errorf("theme %q: text and faint styles share a color", name)
	}
}
