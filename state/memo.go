package state

import "sync"

// Memo caches the result of compute for the most recent key.
// Get runs compute only on the first call or when the key differs
// from the key of the previous computation.
type Memo[K any, T any] struct {
	mu        sync.Mutex
	compute   func(K) T
	equal     EqualFunc[K]
	key       K
	value     T
	valid     bool
	runs      int
	onCompute func(key K, value T)
}

// NewMemo creates a memo keyed by a comparable input.
func NewMemo[K comparable, T any](compute func(K) T) *Memo[K, T] {
	return NewMemoFunc(compute, EqualComparable[K])
}

// NewMemoFunc creates a memo that compares keys with equal.
// A nil equal never matches, so every Get recomputes.
func NewMemoFunc[K any, T any](compute func(K) T, equal EqualFunc[K]) *Memo[K, T] {
	if compute == nil {
		compute = func(K) T {
			var zero T
			return zero
		}
	}
	return &Memo[K, T]{compute: compute, equal: equal}
}

// OnCompute registers a hook that runs after each computation.
func (m *Memo[K, T]) OnCompute(fn func(key K, value T)) {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.onCompute = fn
	m.mu.Unlock()
}

// Get returns the cached value for key, computing it if needed.
func (m *Memo[K, T]) Get(key K) T {
	if m == nil {
		var zero T
		return zero
	}
	m.mu.Lock()
	if m.valid && m.equal != nil && m.equal(m.key, key) {
		value := m.value
		m.mu.Unlock()
		return value
	}
	value := m.compute(key)
	m.key = key
	m.value = value
	m.valid = true
	m.runs++
	hook := m.onCompute
	m.mu.Unlock()

	if hook != nil {
		hook(key, value)
	}
	return value
}

// Peek returns the cached value without computing.
func (m *Memo[K, T]) Peek() (T, bool) {
	if m == nil {
		var zero T
		return zero, false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.value, m.valid
}

// Computations returns how many times compute has run.
func (m *Memo[K, T]) Computations() int {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.runs
}

// Reset drops the cached value; the next Get always computes.
func (m *Memo[K, T]) Reset() {
	if m == nil {
		return
	}
	m.mu.Lock()
	var zeroK K
	var zeroT T
	m.key = zeroK
	m.value = zeroT
	m.valid = false
	m.mu.Unlock()
}
