package internal

import (
	"slices"
	"sync"
)

type event struct {
	value    any
	complete bool
}

// Subject is an observable whose producer joins subscribers into a shared
// list instead of generating data (hot multicast). There is no buffering
// and no completed flag: a subscriber joining after Complete simply never
// hears anything, and keeps its list entry until it unsubscribes.
type Subject struct {
	*Observable

	mu          sync.Mutex
	subscribers []*Subscriber

	// pending event queues keyed by goroutine id, for reentrant broadcasts
	broadcasts sync.Map
}

func NewSubject() *Subject {
	s := &Subject{
		subscribers: make([]*Subscriber, 0),
	}

	s.Observable = NewObservable(func(sub *Subscriber) Teardown {
		s.add(sub)
		return func() { s.remove(sub) }
	})

	return s
}

func (s *Subject) add(sub *Subscriber) {
	s.mu.Lock()
	s.subscribers = append(s.subscribers, sub)
	s.mu.Unlock()
}

func (s *Subject) remove(sub *Subscriber) {
	s.mu.Lock()
	if i := slices.Index(s.subscribers, sub); i >= 0 {
		s.subscribers = slices.Delete(s.subscribers, i, i+1)
	}
	s.mu.Unlock()
}

// Next broadcasts a value to every currently-registered subscriber in
// registration order. Each subscriber applies its own stop guard.
func (s *Subject) Next(v any) {
	s.broadcast(event{value: v})
}

// Complete broadcasts completion in registration order. The list is not
// cleared; cleanup belongs to each subscriber's own unsubscribe.
func (s *Subject) Complete() {
	s.broadcast(event{complete: true})
}

// broadcast delivers one event. A reentrant call from a delivery callback
// on the same goroutine is queued and delivered after the in-flight event,
// so every subscriber sees events in the same order.
func (s *Subject) broadcast(e event) {
	gid := GID()

	if q, ok := s.broadcasts.Load(gid); ok {
		queue := q.(*[]event)
		*queue = append(*queue, e)
		return
	}

	queue := &[]event{e}
	s.broadcasts.Store(gid, queue)
	defer s.broadcasts.Delete(gid)

	for len(*queue) > 0 {
		head := (*queue)[0]
		*queue = (*queue)[1:]
		s.deliver(head)
	}
}

func (s *Subject) deliver(e event) {
	// cloning so callbacks may subscribe or unsubscribe mid-delivery
	s.mu.Lock()
	subscribers := slices.Clone(s.subscribers)
	s.mu.Unlock()

	for _, sub := range subscribers {
		if e.complete {
			sub.Complete()
		} else {
			sub.Next(e.value)
		}
	}
}
