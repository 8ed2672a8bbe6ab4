package toast

import "time"

// timerEntry pairs a pending timer with the generation it was armed
// under. A fired timer may already have launched its callback goroutine
// when a reschedule stops it; the generation lets the fire path detect
// that it is stale and back off.
type timerEntry struct {
	timer *time.Timer
	gen   uint64
}

// timerRegistry tracks at most one pending auto-removal timer per toast
// ID. It is not safe for concurrent use on its own; the owning Store
// serializes access under its mutex.
type timerRegistry struct {
	pending map[string]timerEntry
	nextGen uint64
}

func newTimerRegistry() *timerRegistry {
	return &timerRegistry{pending: make(map[string]timerEntry)}
}

// schedule arms a one-shot timer for id, replacing any existing one,
// and returns the generation of the new arming. The fire callback runs
// on its own goroutine and receives that generation; it must re-enter
// through dispatch and abort when the generation is no longer current.
func (r *timerRegistry) schedule(id string, delay time.Duration, fire func(gen uint64)) uint64 {
	r.cancel(id)
	r.nextGen++
	gen := r.nextGen
	r.pending[id] = timerEntry{
		gen:   gen,
		timer: time.AfterFunc(delay, func() { fire(gen) }),
	}
	return gen
}

// current reports the generation armed for id, if any.
func (r *timerRegistry) current(id string) (uint64, bool) {
	e, ok := r.pending[id]
	return e.gen, ok
}

// cancel stops and forgets the timer for id. No-op when absent.
func (r *timerRegistry) cancel(id string) {
	if e, ok := r.pending[id]; ok {
		e.timer.Stop()
		delete(r.pending, id)
	}
}

// cancelAll stops and forgets every pending timer.
func (r *timerRegistry) cancelAll() {
	for id, e := range r.pending {
		e.timer.Stop()
		delete(r.pending, id)
	}
}

func (r *timerRegistry) count() int {
	return len(r.pending)
}

func (r *timerRegistry) has(id string) bool {
	_, ok := r.pending[id]
	return ok
}
