package primitives

import "sync"

// Cell is a mutex-guarded value cell holding exactly one T. It is the
// commit point of the engine: Update runs a transition function under the
// lock and swaps the held value only when the transition returns nil.
//
// Readers never observe a torn value — Load returns either the value from
// before a given Update or the value after it.
type Cell[T any] struct {
	mu  sync.RWMutex
	val T
}

// NewCell creates a Cell holding initial.
func NewCell[T any](initial T) *Cell[T] {
	return &Cell[T]{val: initial}
}

// Load returns a copy of the held value. Safe for concurrent use.
func (c *Cell[T]) Load() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.val
}

// Update runs fn with the current value under the write lock. When fn
// returns a nil error the returned value is committed; otherwise the held
// value is left untouched and the error is returned to the caller.
//
// At most one Update is in flight at a time; concurrent callers are fully
// serialized. fn must not call back into the same Cell.
func (c *Cell[T]) Update(fn func(T) (T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, err := fn(c.val)
	if err != nil {
		return err
	}
	c.val = next
	return nil
}
