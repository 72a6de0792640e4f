// Package storex is a single-writer, observable state container: one
// authoritative state value per Store, mutated only by dispatching actions
// through a Reducer, with ordered listener notification after each commit.
//
// The engine is polymorphic over the state type S and the action type A and
// imposes no structure on either, nor on reducer errors. A dispatch either
// fully commits the reducer's result or leaves the prior state intact; there
// is no third outcome.
//
// Basic usage:
//
//	store, err := storex.New(reducer, TodoState{})
//	store.Subscribe(func() { fmt.Println(store.State()) })
//	err = store.Dispatch(Insert{Text: "Clean the bathroom"})
//
// Dispatch, State, and Subscribe are safe for concurrent use; dispatches
// from different goroutines are fully serialized.
package storex

import "github.com/comalice/storex/internal/primitives"

// Store owns the canonical state value and the listener sequence. Create one
// with New or via Builder; the zero Store is not usable.
type Store[S, A any] struct {
	reducer   Reducer[S, A]
	cell      *primitives.Cell[S]
	listeners *primitives.Registry
}

// New creates a Store holding initial, with the given listeners already
// subscribed in order. Returns ErrNilReducer if r is nil.
//
// From construction onward the Store always holds exactly one committed S.
// The zero value of S is the natural initial state for most reducers.
func New[S, A any](r Reducer[S, A], initial S, listeners ...Listener) (*Store[S, A], error) {
	if r == nil {
		return nil, ErrNilReducer
	}
	s := &Store[S, A]{
		reducer:   r,
		cell:      primitives.NewCell(initial),
		listeners: primitives.NewRegistry(),
	}
	for _, l := range listeners {
		s.Subscribe(l)
	}
	return s, nil
}

// State returns the committed state. When S implements Cloner[S] the value
// is deep-copied; otherwise it is returned by value (a shallow copy).
//
// Safe to call at any time, including from a listener running during a
// dispatch — it observes the state before or after a commit, never a torn
// intermediate.
func (s *Store[S, A]) State() S {
	v := s.cell.Load()
	if c, ok := any(v).(Cloner[S]); ok {
		return c.Clone()
	}
	return v
}

// Dispatch applies action to the current state through the reducer.
//
// On a nil reducer error the result is committed and every listener runs, in
// registration order, before Dispatch returns. On a non-nil error the state
// is left exactly as it was, no listener runs, and the reducer's error is
// returned untouched — a rejected dispatch is a no-op, and the Store stays
// fully usable.
//
// The state lock is released before notification, so a listener may call
// Dispatch, State, or Subscribe on the same Store. A listener that panics
// does not stop the listeners after it: each runs under its own recover and
// the first captured panic is re-raised once fan-out completes.
func (s *Store[S, A]) Dispatch(action A) error {
	err := s.cell.Update(func(cur S) (S, error) {
		return s.reducer.Reduce(cur, action)
	})
	if err != nil {
		return err
	}

	s.notify()
	return nil
}

// Subscribe appends l to the listener sequence and returns a handle for
// cancellation. The listener fires after every subsequent successful
// dispatch; it is not fired retroactively for states already committed.
func (s *Store[S, A]) Subscribe(l Listener) *Subscription {
	id := s.listeners.Add(l)
	return &Subscription{registry: s.listeners, id: id}
}

// notify runs the registered listeners in order against a snapshot of the
// registry, isolating panics so one failing listener cannot starve the rest.
func (s *Store[S, A]) notify() {
	var firstPanic any
	for _, fn := range s.listeners.Snapshot() {
		func() {
			defer func() {
				if r := recover(); r != nil && firstPanic == nil {
					firstPanic = r
				}
			}()
			fn()
		}()
	}
	if firstPanic != nil {
		panic(firstPanic)
	}
}
