package runtime

import (
	"sync/atomic"

	"github.com/odvcencio/furry-hooks/state"
)

// QueueScheduler enqueues state callbacks and wakes the loop with a single
// QueueFlushMsg per batch.
type QueueScheduler struct {
	queue   *state.Queue
	post    PostFunc
	pending atomic.Bool
}

// NewQueueScheduler wires a queue to a post function.
func NewQueueScheduler(queue *state.Queue, post PostFunc) *QueueScheduler {
	if queue == nil {
		queue = state.NewQueue()
	}
	return &QueueScheduler{queue: queue, post: post}
}

// Schedule enqueues the callback and posts a flush message if none is pending.
func (s *QueueScheduler) Schedule(fn func()) {
	if s == nil || fn == nil {
		return
	}
	s.queue.Schedule(fn)
	if s.post == nil || !s.pending.CompareAndSwap(false, true) {
		return
	}
	if !s.post(QueueFlushMsg{}) {
		s.pending.Store(false)
	}
}

func (s *QueueScheduler) resetPending() {
	if s == nil {
		return
	}
	s.pending.Store(false)
}
