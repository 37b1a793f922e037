package state

// Readable exposes read-only reactive state.
type Readable[T any] interface {
	Get() T
	Subscribe(fn func()) func()
	SubscribeWithScheduler(scheduler Scheduler, fn func()) func()
}

// Writable exposes read/write reactive state.
type Writable[T any] interface {
	Readable[T]
	Set(value T) bool
	Update(fn func(T) T) bool
}

// Dispatcher accepts actions for a reducer-backed store.
type Dispatcher[A any] interface {
	Dispatch(action A)
}

var (
	_ Writable[int]   = (*Signal[int])(nil)
	_ Readable[int]   = (*Computed[int])(nil)
	_ Readable[int]   = (*Store[int, int])(nil)
	_ Dispatcher[int] = (*Store[int, int])(nil)
)
