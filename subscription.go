package storex

import "github.com/comalice/storex/internal/primitives"

// Listener is a no-argument callback invoked after every successful
// dispatch. Listeners do not receive the new state; they call Store.State
// themselves if they need it.
type Listener func()

// Subscription is the handle returned by Store.Subscribe.
type Subscription struct {
	registry *primitives.Registry
	id       uint64
}

// Cancel removes the listener from the store. Idempotent. A notification
// pass already in flight still runs the listener one last time; subsequent
// dispatches will not.
func (s *Subscription) Cancel() {
	s.registry.Remove(s.id)
}
