package internal

import "sync"

// Observer is the capability set a consumer implements.
// Any member may be left nil; calling an absent member is a no-op.
type Observer struct {
	Next     func(any)
	Error    func(error)
	Complete func()
}

// Subscriber forwards events to one destination observer. It holds the
// subscription for its execution, so tearing down resources and logically
// completing stay distinct terminal paths.
type Subscriber struct {
	mu      sync.Mutex
	stopped bool

	dest Observer
	sub  *Subscription
}

func NewSubscriber(dest Observer) *Subscriber {
	return &Subscriber{
		dest: dest,
		sub:  NewSubscription(),
	}
}

// Next forwards a value unless the subscriber has stopped.
func (s *Subscriber) Next(v any) {
	s.mu.Lock()
	stopped := s.stopped
	s.mu.Unlock()

	if stopped || s.dest.Next == nil {
		return
	}

	s.dest.Next(v)
}

// Error forwards unconditionally: errors are not stop-checked and not
// idempotent, unlike Next and Complete.
func (s *Subscriber) Error(err error) {
	if s.dest.Error == nil {
		return
	}

	s.dest.Error(err)
}

// Complete stops the subscriber, then forwards. Later calls are no-ops.
func (s *Subscriber) Complete() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	s.mu.Unlock()

	if s.dest.Complete != nil {
		s.dest.Complete()
	}
}

// Add registers a teardown on the underlying subscription.
func (s *Subscriber) Add(t Teardown) {
	s.sub.Add(t)
}

// Unsubscribe stops delivery and runs the registered teardowns. No
// completion is forwarded: a stream can be torn down without ever
// logically completing.
func (s *Subscriber) Unsubscribe() {
	s.mu.Lock()
	s.stopped = true
	s.mu.Unlock()

	s.sub.Unsubscribe()
}

func (s *Subscriber) Stopped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.stopped
}
