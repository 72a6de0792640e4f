package storex

// Reducer is the transition contract between a state type S and its action
// type A. Reduce consumes the current state value and an action and returns
// the next state value, or an error when the action is rejected.
//
// The store never inspects S, A, or the returned error; it only splits on
// error == nil. Because Reduce receives and returns S by value, a rejected
// action cannot leave a partially applied state behind — the store simply
// keeps the value it already holds.
//
// Reduce must not touch the store it is installed in (no Dispatch, no
// Subscribe); it is a pure transition as far as the container is concerned.
type Reducer[S, A any] interface {
	Reduce(state S, action A) (S, error)
}

// ReducerFunc adapts an ordinary function to the Reducer interface.
type ReducerFunc[S, A any] func(state S, action A) (S, error)

// Reduce calls fn(state, action).
func (fn ReducerFunc[S, A]) Reduce(state S, action A) (S, error) {
	return fn(state, action)
}

// Cloner is an optional capability for state types that carry reference
// fields (slices, maps, pointers). When S implements Cloner[S], Store.State
// returns Clone() instead of a shallow copy, so callers never hold a mutable
// alias into the committed state.
//
// Plain value states don't need this; Go's copy semantics already isolate
// them.
type Cloner[S any] interface {
	Clone() S
}
