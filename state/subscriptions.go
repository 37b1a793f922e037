package state

import "sync"

// Subscriptions tracks unsubscribe callbacks owned by one component.
type Subscriptions struct {
	mu     sync.Mutex
	unsubs []func()
	sched  Scheduler
}

// NewSubscriptions creates a Subscriptions with a default scheduler.
func NewSubscriptions(scheduler Scheduler) *Subscriptions {
	return &Subscriptions{sched: scheduler}
}

// SetScheduler updates the default scheduler used by Observe.
func (s *Subscriptions) SetScheduler(scheduler Scheduler) {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.sched = scheduler
	s.mu.Unlock()
}

// Add registers an unsubscribe callback.
func (s *Subscriptions) Add(unsub func()) {
	if s == nil || unsub == nil {
		return
	}
	s.mu.Lock()
	s.unsubs = append(s.unsubs, unsub)
	s.mu.Unlock()
}

// Len returns the number of tracked subscriptions.
func (s *Subscriptions) Len() int {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.unsubs)
}

// Observe registers a listener using the default scheduler.
// Sources that cannot schedule fall back to synchronous delivery.
func (s *Subscriptions) Observe(sub Subscribable, fn func()) {
	if s == nil || sub == nil || fn == nil {
		return
	}
	s.mu.Lock()
	scheduler := s.sched
	s.mu.Unlock()

	if scheduler != nil {
		if sched, ok := sub.(interface {
			SubscribeWithScheduler(Scheduler, func()) func()
		}); ok {
			s.Add(sched.SubscribeWithScheduler(scheduler, fn))
			return
		}
	}
	s.Add(sub.Subscribe(fn))
}

// Clear unsubscribes all tracked callbacks.
func (s *Subscriptions) Clear() {
	if s == nil {
		return
	}
	s.mu.Lock()
	unsubs := s.unsubs
	s.unsubs = nil
	s.mu.Unlock()
	for _, unsub := range unsubs {
		unsub()
	}
}
