package state

// Callback is a function with pointer identity.
// Props holding the same *Callback compare equal with ==, so a memoized
// child receiving a Callback created once is not rebuilt by unrelated changes.
type Callback struct {
	fn func()
}

// NewCallback wraps fn in a new identity.
func NewCallback(fn func()) *Callback {
	return &Callback{fn: fn}
}

// Call invokes the wrapped function. A nil Callback is a no-op.
func (c *Callback) Call() {
	if c == nil || c.fn == nil {
		return
	}
	c.fn()
}
