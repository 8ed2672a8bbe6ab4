// Package state provides thread-safe state management for the Perch
// dashboard.
//
// # Overview
//
// This package implements a simple but thread-safe store for sharing
// weather data between the background poller and the UI. It acts as the
// coordination point where polling updates meet UI rendering.
//
// # Architecture
//
// The package follows a producer-consumer pattern:
//
//	Producer (Poller):             Consumer (UI):
//	┌────────────────┐            ┌─────────────────┐
//	│ Current()      │            │                 │
//	│ Forecast()     │            │                 │
//	│      ↓         │            │                 │
//	│ store.Update() │───────────→│ store.Snapshot()│
//	│      ↓         │  (mutex)   │      ↓          │
//	│  repeat...     │            │  render card    │
//	└────────────────┘            └─────────────────┘
//
// The Store mediates between these two independent goroutines, ensuring:
//   - Atomic updates (no partial/torn reads)
//   - No data races (mutex-protected access)
//   - Immutable snapshots (defensive copying)
//
// # Update Semantics
//
// The Update method keeps the last successful observation around when a
// poll fails:
//
//	// Success case: Replace entire snapshot
//	store.Update(current, forecast, nil)
//	→ snapshot.Current = current
//	→ snapshot.Forecast = forecast
//	→ snapshot.LastError = nil
//	→ snapshot.ConsecutiveFailures = 0
//
//	// Error case: Keep old data, record error
//	store.Update(nil, nil, err)
//	→ snapshot.Current = <unchanged>
//	→ snapshot.LastError = err
//	→ snapshot.ConsecutiveFailures++
//
// This lets the weather card keep showing the most recent reading while
// the header surfaces an offline badge once IsOffline() trips (two
// straight failures).
//
// # Concurrency Model
//
// The Store uses a readers-writer lock: Update acquires the write lock,
// Snapshot the read lock. The lock is held only during copy operations,
// never during simulation work or rendering. Both paths deep-copy the
// forecast slice and the error value so neither side can mutate what
// the other is holding.
//
// # Testing Considerations
//
// The Store is safe to construct with its zero value:
//
//	store := &state.Store{}  // Ready to use immediately
//
// Snapshot() returns a zero Snapshot until the first Update.
package state
