package runtime

import "sync/atomic"

// Invalidator requests render passes, coalescing requests until the loop
// has handled the pending InvalidateMsg.
type Invalidator struct {
	post    PostFunc
	pending atomic.Bool
}

// NewInvalidator creates an invalidator wired to a post function.
func NewInvalidator(post PostFunc) *Invalidator {
	return &Invalidator{post: post}
}

// Invalidate requests a render pass.
func (i *Invalidator) Invalidate() {
	if i == nil || i.post == nil {
		return
	}
	if !i.pending.CompareAndSwap(false, true) {
		return
	}
	if !i.post(InvalidateMsg{}) {
		i.pending.Store(false)
	}
}

// Pending reports whether an InvalidateMsg is in flight.
func (i *Invalidator) Pending() bool {
	return i != nil && i.pending.Load()
}

func (i *Invalidator) resetPending() {
	if i == nil {
		return
	}
	i.pending.Store(false)
}
