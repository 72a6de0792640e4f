package storex

// Builder provides a fluent API for constructing a Store, mirroring the
// shape construction takes in larger applications: reducer first, then an
// explicit initial state, then any number of listeners.
//
//	store, err := storex.NewBuilder[TodoState, TodoAction]().
//	    Reduce(reduceTodo).
//	    Initial(TodoState{}).
//	    Listen(onChange).
//	    Build()
type Builder[S, A any] struct {
	reducer   Reducer[S, A]
	initial   S
	listeners []Listener
}

// NewBuilder creates an empty Builder. The initial state defaults to the
// zero value of S until Initial is called.
func NewBuilder[S, A any]() *Builder[S, A] {
	return &Builder[S, A]{}
}

// Reduce sets the reducer from a plain function.
func (b *Builder[S, A]) Reduce(fn func(S, A) (S, error)) *Builder[S, A] {
	b.reducer = ReducerFunc[S, A](fn)
	return b
}

// Reducer sets the reducer from any Reducer implementation.
func (b *Builder[S, A]) Reducer(r Reducer[S, A]) *Builder[S, A] {
	b.reducer = r
	return b
}

// Initial sets the state the store starts from.
func (b *Builder[S, A]) Initial(s S) *Builder[S, A] {
	b.initial = s
	return b
}

// Listen appends a listener to subscribe at construction. Listeners are
// subscribed in the order Listen was called.
func (b *Builder[S, A]) Listen(l Listener) *Builder[S, A] {
	b.listeners = append(b.listeners, l)
	return b
}

// Build validates the configuration and constructs the Store. Returns
// ErrNilReducer if no reducer was set.
func (b *Builder[S, A]) Build() (*Store[S, A], error) {
	return New(b.reducer, b.initial, b.listeners...)
}
