package primitives

import "sync"

// Registry is an ordered list of no-argument callbacks with cancelable
// handles. Callbacks are invoked in registration order; removing one does
// not disturb the order of the rest.
type Registry struct {
	mu      sync.RWMutex
	nextID  uint64
	entries []entry
}

type entry struct {
	id uint64
	fn func()
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends fn and returns a handle for Remove. fn must be non-nil.
func (r *Registry) Add(fn func()) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	r.entries = append(r.entries, entry{id: r.nextID, fn: fn})
	return r.nextID
}

// Remove deletes the callback registered under id. Unknown ids are a no-op,
// so cancellation is idempotent.
func (r *Registry) Remove(id uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.entries {
		if e.id == id {
			r.entries = append(r.entries[:i:i], r.entries[i+1:]...)
			return
		}
	}
}

// Len returns the number of registered callbacks.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Snapshot returns the callbacks in registration order. The returned slice
// is a copy; iterating it holds no lock, so a callback may Add or Remove on
// the same Registry without deadlocking. Additions made during iteration are
// not part of the snapshot.
func (r *Registry) Snapshot() []func() {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fns := make([]func(), len(r.entries))
	for i, e := range r.entries {
		fns[i] = e.fn
	}
	return fns
}
