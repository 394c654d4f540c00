package internal

import "sync"

// Teardown is a zero-argument cleanup callback run on unsubscription.
type Teardown func()

// Subscription is an ordered registry of teardown callbacks.
type Subscription struct {
	mu sync.Mutex

	closed    bool
	teardowns []Teardown
}

func NewSubscription() *Subscription {
	return &Subscription{
		teardowns: make([]Teardown, 0),
	}
}

// Add registers a teardown to run on unsubscribe. Anything that isn't
// callable is ignored. Adding to an already-closed subscription runs the
// teardown immediately so late async producers can't leak resources.
func (s *Subscription) Add(t Teardown) {
	if !Callable(t) {
		return
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		t()
		return
	}
	s.teardowns = append(s.teardowns, t)
	s.mu.Unlock()
}

// Unsubscribe runs every registered teardown in insertion order, exactly
// once. Repeated calls are no-ops.
func (s *Subscription) Unsubscribe() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	teardowns := s.teardowns
	s.teardowns = nil
	s.mu.Unlock()

	for _, t := range teardowns {
		t()
	}
}

func (s *Subscription) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.closed
}
