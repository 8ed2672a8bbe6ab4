package toast

// actionKind tags the variants of the action set.
type actionKind int

const (
	actionAdd actionKind = iota
	actionUpdate
	actionDismiss
	actionRemove
	actionClearAll
)

// action is a single state transition request. For dismiss and remove an
// empty id targets every toast.
type action struct {
	kind  actionKind
	toast Toast
	patch Patch
	id    string
}

// reduce computes the next toast list from the current one and an
// action. It is pure: no timers, no I/O, and the input slice is never
// mutated. Toasts are ordered newest first; adds beyond capacity drop
// the oldest entries.
func reduce(state []Toast, a action, capacity int) []Toast {
	switch a.kind {
	case actionAdd:
		next := make([]Toast, 0, len(state)+1)
		next = append(next, a.toast)
		next = append(next, state...)
		if len(next) > capacity {
			next = next[:capacity]
		}
		return next

	case actionUpdate:
		next := make([]Toast, len(state))
		copy(next, state)
		for i := range next {
			if next[i].ID == a.id {
				next[i] = a.patch.apply(next[i])
			}
		}
		return next

	case actionDismiss:
		next := make([]Toast, len(state))
		copy(next, state)
		for i := range next {
			if a.id == "" || next[i].ID == a.id {
				next[i].Open = false
			}
		}
		return next

	case actionRemove:
		if a.id == "" {
			return nil
		}
		next := make([]Toast, 0, len(state))
		for _, t := range state {
			if t.ID != a.id {
				next = append(next, t)
			}
		}
		return next

	case actionClearAll:
		return nil
	}

	return state
}
