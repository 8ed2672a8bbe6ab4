package toast

import (
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Listener receives the full toast list after every state transition,
// newest toast first.
type Listener func([]Toast)

// Config customizes a Store. Zero values select the defaults.
type Config struct {
	// Capacity bounds the number of concurrently held toasts. Adds
	// beyond it evict the oldest entries.
	Capacity int

	// DefaultDuration is used for toasts that do not set their own.
	DefaultDuration time.Duration

	// Logger receives debug-level dispatch traces. Nil disables logging.
	Logger *zerolog.Logger
}

// Store is the single mutation funnel for toast state. It owns the
// current toast list, the pending auto-removal timers, and the
// subscriber list. All transitions flow through dispatch, which
// serializes them under a mutex so the external ordering guarantees
// hold on a multi-goroutine host.
type Store struct {
	capacity   int
	defaultTTL time.Duration
	log        zerolog.Logger

	mu      sync.Mutex
	toasts  []Toast
	timers  *timerRegistry
	subs    []subscription
	nextSub int
	nextID  uint64
}

type subscription struct {
	id int
	fn Listener
}

// NewStore creates an empty toast store. Each store is independent;
// there is no package-level singleton.
func NewStore(cfg Config) *Store {
	capacity := cfg.Capacity
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	ttl := cfg.DefaultDuration
	if ttl <= 0 {
		ttl = DefaultDuration
	}
	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}
	return &Store{
		capacity:   capacity,
		defaultTTL: ttl,
		log:        log,
		timers:     newTimerRegistry(),
	}
}

// Options describe a toast to show. Zero Duration selects the store
// default; Sticky disables auto-removal.
type Options struct {
	Title       string
	Description string
	Level       Level
	Action      *Action
	Duration    time.Duration
}

// Handle is a manual control for one toast, independent of any
// subscription.
type Handle struct {
	ID string

	store *Store
}

// Dismiss closes the toast and arms its removal timer. Safe to call
// at any time, any number of times.
func (h Handle) Dismiss() {
	h.store.Dismiss(h.ID)
}

// Update merges the non-nil fields of p into the toast. A no-op once
// the toast has been removed.
func (h Handle) Update(p Patch) {
	h.store.dispatch(action{kind: actionUpdate, id: h.ID, patch: p})
}

// Show adds a toast and returns its handle. Unless the toast is
// sticky, auto-removal is scheduled immediately using its duration or
// the store default.
func (s *Store) Show(opts Options) Handle {
	level := opts.Level
	if level == "" {
		level = LevelInfo
	}

	s.mu.Lock()
	id := strconv.FormatUint(s.nextID, 10)
	s.nextID++ // wraps to 0; collisions after wrap are not a practical concern
	s.mu.Unlock()

	h := Handle{ID: id, store: s}
	t := Toast{
		ID:          id,
		Title:       opts.Title,
		Description: opts.Description,
		Level:       level,
		Action:      opts.Action,
		Open:        true,
		Duration:    opts.Duration,
		OnOpenChange: func(open bool) {
			if !open {
				h.Dismiss()
			}
		},
	}

	s.dispatch(action{kind: actionAdd, toast: t})
	return h
}

// Info shows an informational toast with the default duration.
func (s *Store) Info(title, description string) Handle {
	return s.Show(Options{Title: title, Description: description, Level: LevelInfo})
}

// Success shows a success toast with the default duration.
func (s *Store) Success(title, description string) Handle {
	return s.Show(Options{Title: title, Description: description, Level: LevelSuccess})
}

// Warning shows a warning toast that lingers longer than the default.
func (s *Store) Warning(title, description string) Handle {
	return s.Show(Options{Title: title, Description: description, Level: LevelWarning, Duration: WarningDuration})
}

// Error shows a sticky error toast that stays until dismissed.
func (s *Store) Error(title, description string) Handle {
	return s.Show(Options{Title: title, Description: description, Level: LevelError, Duration: Sticky})
}

// Dismiss closes the toast with the given id and arms its removal
// timer. Unknown ids are a silent no-op.
func (s *Store) Dismiss(id string) {
	s.dispatch(action{kind: actionDismiss, id: id})
}

// DismissAll closes every toast and arms a removal timer for each.
func (s *Store) DismissAll() {
	s.dispatch(action{kind: actionDismiss})
}

// Remove erases the toast with the given id immediately, cancelling
// its pending timer. Unknown ids are a silent no-op.
func (s *Store) Remove(id string) {
	s.dispatch(action{kind: actionRemove, id: id})
}

// ClearAll erases every toast and cancels every pending timer.
func (s *Store) ClearAll() {
	s.dispatch(action{kind: actionClearAll})
}

// Toasts returns a copy of the current toast list, newest first.
func (s *Store) Toasts() []Toast {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers a listener invoked synchronously after every
// state transition, in subscription order. The returned function
// removes exactly that registration and may be called more than once.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Cleanup cancels every pending timer, empties the store, and drops
// every subscriber. Idempotent; intended for application teardown.
func (s *Store) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timers.cancelAll()
	s.toasts = nil
	s.subs = nil
}

// dispatch applies a single action: timer bookkeeping, the pure
// reduction, the state swap, then subscriber fan-out. The mutex
// serializes transitions; listeners run after the swap and outside the
// lock so they may re-enter the store (the OnOpenChange dismiss path).
func (s *Store) dispatch(a action) {
	s.dispatchIf(a, nil)
}

// dispatchIf is dispatch with an optional precondition evaluated under
// the lock. Timer fire paths use it to drop stale removals: a timer
// that expired just before a reschedule stopped it must not erase the
// re-armed toast.
func (s *Store) dispatchIf(a action, ok func() bool) {
	s.mu.Lock()
	if ok != nil && !ok() {
		s.mu.Unlock()
		return
	}
	s.applyTimersLocked(a)
	s.toasts = reduce(s.toasts, a, s.capacity)
	if a.kind == actionAdd && !a.toast.sticky() {
		s.scheduleRemovalLocked(a.toast)
	}
	state := s.snapshotLocked()
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	s.log.Debug().Int("kind", int(a.kind)).Str("id", a.id).Int("toasts", len(state)).Msg("toast dispatch")

	for _, sub := range subs {
		sub.fn(state)
	}
}

// applyTimersLocked performs the timer side effects for a, keeping the
// reducer itself pure.
func (s *Store) applyTimersLocked(a action) {
	switch a.kind {
	case actionAdd:
		// Toasts about to be evicted by capacity truncation lose their
		// pending timers, so a stale REMOVE never fires for them.
		if len(s.toasts) >= s.capacity {
			for _, t := range s.toasts[s.capacity-1:] {
				s.timers.cancel(t.ID)
			}
		}

	case actionDismiss:
		for _, t := range s.toasts {
			if a.id == "" || t.ID == a.id {
				s.scheduleRemovalLocked(t)
			}
		}

	case actionRemove:
		if a.id == "" {
			s.timers.cancelAll()
		} else {
			s.timers.cancel(a.id)
		}

	case actionClearAll:
		s.timers.cancelAll()
	}
}

// scheduleRemovalLocked arms (or re-arms) the removal timer for t.
// Sticky toasts fall back to the store default here: this path is only
// reached once a toast is dismissed or added non-sticky, and a
// dismissed toast must always be reaped eventually.
func (s *Store) scheduleRemovalLocked(t Toast) {
	delay := t.ttl(s.defaultTTL)
	if delay <= 0 {
		delay = s.defaultTTL
	}
	id := t.ID
	s.timers.schedule(id, delay, func(gen uint64) {
		s.expireTimer(id, gen)
	})
}

// expireTimer is the timer fire path: it removes the toast only when
// the firing generation is still the armed one for that id.
func (s *Store) expireTimer(id string, gen uint64) {
	s.dispatchIf(action{kind: actionRemove, id: id}, func() bool {
		cur, ok := s.timers.current(id)
		return ok && cur == gen
	})
}

func (s *Store) snapshotLocked() []Toast {
	if len(s.toasts) == 0 {
		return nil
	}
	dup := make([]Toast, len(s.toasts))
	copy(dup, s.toasts)
	return dup
}

// pendingTimers reports the number of armed removal timers. Exposed for
// tests in this package.
func (s *Store) pendingTimers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timers.count()
}

// hasTimer reports whether a removal timer is armed for id.
func (s *Store) hasTimer(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timers.has(id)
}

// timerGeneration reports the generation armed for id.
func (s *Store) timerGeneration(id string) (uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timers.current(id)
}
