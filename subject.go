package rx

import "github.com/AnatoleLucet/rx/internal"

// Subject is a hot, multicast observable: one shared producer broadcasting
// to every currently-registered subscriber. A value emitted before a
// subscriber joins is never replayed to it.
type Subject[T any] struct {
	Observable[T]

	subject *internal.Subject
}

// NewSubject creates an empty subject.
func NewSubject[T any]() *Subject[T] {
	s := internal.NewSubject()

	return &Subject[T]{
		Observable: Observable[T]{obs: s.Observable},
		subject:    s,
	}
}

// Next broadcasts a value to subscribers in registration order.
func (s *Subject[T]) Next(v T) { s.subject.Next(v) }

// Complete broadcasts completion in registration order. The subscriber list
// is not cleared or marked exhausted; a later joiner just never hears
// anything, and unsubscribing remains each subscriber's own cleanup path.
func (s *Subject[T]) Complete() { s.subject.Complete() }
