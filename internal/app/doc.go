// Package app provides the orchestration layer for the Perch dashboard.
//
// # Overview
//
// This package wires together configuration, the simulated weather
// provider, state management, the toast store, and the UI to create the
// complete Perch experience. It serves as the composition root where
// all dependencies are initialized and connected.
//
// # Architecture
//
// The app package follows a simple initialization pattern:
//
//  1. Load Perch configuration from ~/.config/perch/config.toml
//  2. Load user preferences (theme) from ~/.config/perch/prefs.toml
//  3. Resolve the place to report weather for
//  4. Create the simulated weather provider and shared state.Store
//  5. Create the toast.Store (torn down via Cleanup on exit)
//  6. Launch the background weather poller goroutine
//  7. Start the TUI and block until the user exits or ctx cancels
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()        Read perch config
//	       ├─────> prefs.Load()         Read theme preference
//	       ├─────> location.Resolve()   Pick the place
//	       ├─────> weather.NewSimulated() Synthetic provider
//	       ├─────> state.Store{}        Shared state container
//	       ├─────> toast.NewStore()     Notification core
//	       ├─────> NewPoller().Start()  Launch background updates
//	       └─────> ui.Run()             Start TUI (blocks)
//
//	Background Poller Loop:
//	┌─────────────────────────────────────────┐
//	│ Poller goroutine                        │
//	│  ├─> provider.Current()                 │
//	│  ├─> provider.Forecast()                │
//	│  ├─> store.Update()  (atomic)           │
//	│  │   └─> UI reads store.Snapshot()      │
//	│  └─> toasts on outage/recovery edges    │
//	└─────────────────────────────────────────┘
//
// # Polling Behavior
//
// The poller runs continuously at a configurable interval (default 30
// seconds). While the provider is failing, the wait between attempts
// doubles per consecutive failure up to a cap, so a long simulated
// outage does not burn cycles. Only the transition into an outage
// raises a toast (sticky, error level); recovery dismisses it and
// raises a success toast. Repeated failures in between are logged and
// counted but stay quiet.
//
// # Error Handling
//
// Fatal errors (returned from Run): unreadable or invalid config or
// prefs. Recoverable errors (logged, polling continues): every
// provider failure. The dashboard keeps rendering the last good
// observation throughout an outage.
package app
