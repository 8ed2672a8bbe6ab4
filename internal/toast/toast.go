package toast

import "time"

// Level represents the severity of a toast notification.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

const (
	// DefaultDuration is how long a toast stays on screen when the caller
	// does not override it.
	DefaultDuration = 5 * time.Second

	// WarningDuration is the longer default used by the Warning preset.
	WarningDuration = 10 * time.Second

	// Sticky marks a toast that is never auto-removed. Only a manual
	// Dismiss or Remove erases it.
	Sticky time.Duration = -1

	// DefaultCapacity bounds how many toasts are held at once.
	DefaultCapacity = 5
)

// Action is an optional interactive element attached to a toast. The
// rendering layer decides how (and whether) to present it.
type Action struct {
	Label  string
	Invoke func()
}

// Toast is a single notification record.
//
// Duration semantics: zero means "use the store default", a positive
// value is an explicit on-screen time, and Sticky (negative) disables
// auto-removal entirely.
type Toast struct {
	ID          string
	Title       string
	Description string
	Level       Level
	Action      *Action

	// Open is true while the toast is visible. Dismiss flips it to
	// false; the rendering layer treats false as "closing".
	Open bool

	Duration time.Duration

	// OnOpenChange is invoked by the rendering layer when visibility
	// changes. The store wires it so that reporting open=false triggers
	// a dismiss, regardless of what caused the close.
	OnOpenChange func(open bool)
}

// ttl resolves the effective auto-removal delay for a toast.
func (t Toast) ttl(fallback time.Duration) time.Duration {
	if t.Duration != 0 {
		return t.Duration
	}
	return fallback
}

// sticky reports whether the toast must never be auto-removed.
func (t Toast) sticky() bool {
	return t.Duration < 0
}

// Patch is a partial update applied to an existing toast by ID. Nil
// fields are left untouched.
type Patch struct {
	Title       *string
	Description *string
	Level       *Level
	Action      *Action
	Duration    *time.Duration
}

func (p Patch) apply(t Toast) Toast {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Level != nil {
		t.Level = *p.Level
	}
	if p.Action != nil {
		t.Action = p.Action
	}
	if p.Duration != nil {
		t.Duration = *p.Duration
	}
	return t
}

// String returns a pointer to s, for use in Patch literals.
func String(s string) *string { return &s }

// LevelPtr returns a pointer to l, for use in Patch literals.
func LevelPtr(l Level) *Level { return &l }

// DurationPtr returns a pointer to d, for use in Patch literals.
func DurationPtr(d time.Duration) *time.Duration { return &d }
