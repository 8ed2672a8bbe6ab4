// Package ui renders the perch dashboard with Bubble Tea.
//
// The Model owns no domain state of its own. Weather and clock data are
// pulled on a one second tick from the state store; notifications are
// pushed into the loop by a toast store subscriber that forwards each
// snapshot with Program.Send:
//
//	state.Store ──(tick, Snapshot)──▶ Model ◀──(Send, toastsMsg)── toast.Store
//
// Layout is a header bar, a clock panel and weather card side by side,
// the toast stack right-aligned above the footer, and a footer with key
// hints. Themes live in theme.go; cycling persists the selection to the
// preferences file so the next launch starts on the same theme.
package ui
