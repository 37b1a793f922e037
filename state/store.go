package state

// Reducer maps the current state and an action to the next state.
// It must not mutate its input.
type Reducer[S any, A any] func(state S, action A) S

// Store is a reducer-driven state container.
// State changes only through Dispatch.
type Store[S any, A any] struct {
	reducer Reducer[S, A]
	signal  *Signal[S]
}

// NewStore creates a store with an initial state.
func NewStore[S any, A any](reducer Reducer[S, A], initial S) *Store[S, A] {
	if reducer == nil {
		reducer = func(state S, _ A) S { return state }
	}
	return &Store[S, A]{
		reducer: reducer,
		signal:  NewSignal(initial),
	}
}

// SetEqualFunc lets the store skip notifications when the reducer
// returns a state equal to the current one.
func (s *Store[S, A]) SetEqualFunc(fn EqualFunc[S]) {
	if s == nil {
		return
	}
	s.signal.SetEqualFunc(fn)
}

// Dispatch applies action and publishes the resulting state.
// Like Signal.Update it is not atomic across goroutines; dispatch from
// the event loop only.
func (s *Store[S, A]) Dispatch(action A) {
	if s == nil {
		return
	}
	s.signal.Set(s.reducer(s.signal.Get(), action))
}

// Get returns the current state.
func (s *Store[S, A]) Get() S {
	if s == nil {
		var zero S
		return zero
	}
	return s.signal.Get()
}

// Subscribe registers a listener for state changes.
func (s *Store[S, A]) Subscribe(fn func()) func() {
	if s == nil {
		return func() {}
	}
	return s.signal.Subscribe(fn)
}

// SubscribeWithScheduler registers a listener using a scheduler.
func (s *Store[S, A]) SubscribeWithScheduler(scheduler Scheduler, fn func()) func() {
	if s == nil {
		return func() {}
	}
	return s.signal.SubscribeWithScheduler(scheduler, fn)
}
