// Package toast implements the notification core for Perch: an
// in-memory, event-driven store that enqueues, updates, auto-dismisses,
// and removes transient UI notifications.
//
// # Overview
//
// The package is self-contained and UI-agnostic. Application code shows
// toasts through the Store facade (Show, Info, Success, Warning, Error)
// and any number of UI bindings subscribe to state changes. The Bubble
// Tea layer in internal/ui is the primary subscriber, but nothing here
// depends on it.
//
// # Architecture
//
// Every mutation flows through a single dispatch funnel:
//
//	Facade (Show/Dismiss/...)            Timer fire (auto-removal)
//	        │                                     │
//	        └────────────► dispatch ◄─────────────┘
//	                          │
//	            ┌─────────────┼──────────────┐
//	            │             │              │
//	     timer effects   reduce (pure)   state swap
//	            │             │              │
//	            └─────────────┴──────► subscribers (in order)
//
// The reducer is a pure function over a tagged action set
// (add/update/dismiss/remove/clear); it never schedules timers and never
// mutates its input, which keeps it unit-testable without fake clocks.
// All timer bookkeeping lives in the dispatch layer around it.
//
// # Invariants
//
//   - The toast list never exceeds the configured capacity; adds beyond
//     it evict the oldest entries and cancel their pending timers.
//   - At most one removal timer is armed per toast ID, and an armed
//     timer always implies a future remove for that ID.
//   - After ClearAll or Cleanup no timers remain.
//   - Unknown-ID updates, dismissals, and removals are silent no-ops,
//     so callers cannot fail by racing an auto-removal.
//
// # Concurrency
//
// A mutex serializes state transitions, so dispatches from the UI
// goroutine and from timer goroutines apply in a strict order. Each
// timer arming carries a generation; a timer that expires concurrently
// with a reschedule fires with a stale generation and its removal is
// dropped, so a re-armed toast always gets its full delay.
// Subscribers are invoked synchronously after the state swap, outside
// the lock, which lets a listener re-enter the store; the OnOpenChange
// callback wired onto every toast relies on this to trigger a dismiss
// when the rendering layer reports a close.
//
// # Lifecycle
//
// Stores are explicit objects with no package-level singleton: create
// one per process with NewStore and tear it down with Cleanup. Tests
// get a fresh, isolated store each.
package toast
