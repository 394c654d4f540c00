// Package rx implements a minimal push-based reactive-stream engine: cold
// observables, hot multicast subjects, a clock-driven scheduler, and a small
// operator and adapter algebra on top.
package rx

import "github.com/AnatoleLucet/rx/internal"

func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}

	return v.(T)
}

// Teardown is a zero-argument cleanup callback run on unsubscription.
type Teardown = internal.Teardown

// Observer is the capability set a consumer implements. Any member may be
// left nil; calling an absent member is a no-op, never an error.
type Observer[T any] struct {
	Next     func(T)
	Error    func(error)
	Complete func()
}

func (o Observer[T]) lower() internal.Observer {
	dest := internal.Observer{
		Error:    o.Error,
		Complete: o.Complete,
	}

	if o.Next != nil {
		dest.Next = func(v any) { o.Next(as[T](v)) }
	}

	return dest
}

// Observable is an immutable reference to a producer function. Subscribing
// runs the producer again for each subscriber (cold semantics).
type Observable[T any] struct {
	obs *internal.Observable
}

// NewObservable creates an observable from a producer. The producer runs
// synchronously on each Subscribe call and may return a teardown for the
// subscriber to run on unsubscription.
func NewObservable[T any](producer func(sub *Subscriber[T]) Teardown) Observable[T] {
	return Observable[T]{
		obs: internal.NewObservable(func(sub *internal.Subscriber) internal.Teardown {
			return producer(&Subscriber[T]{sub})
		}),
	}
}

// Subscribe runs the producer with a fresh subscriber wired to dest. Values
// the producer emits synchronously are delivered before Subscribe returns;
// panics inside the producer propagate to the caller. The returned
// subscriber is the subscription handle.
func (o Observable[T]) Subscribe(dest Observer[T]) *Subscriber[T] {
	return &Subscriber[T]{o.obs.Subscribe(dest.lower())}
}

// SubscribeFunc subscribes with a next-only observer.
func (o Observable[T]) SubscribeFunc(next func(T)) *Subscriber[T] {
	return o.Subscribe(Observer[T]{Next: next})
}

// Subscriber forwards events to one destination observer and owns the
// teardown registry of its execution.
type Subscriber[T any] struct {
	sub *internal.Subscriber
}

// Next forwards a value unless the subscriber has stopped.
func (s *Subscriber[T]) Next(v T) { s.sub.Next(v) }

// Error forwards an error. Errors are not stop-checked.
func (s *Subscriber[T]) Error(err error) { s.sub.Error(err) }

// Complete stops the subscriber then forwards completion, once.
func (s *Subscriber[T]) Complete() { s.sub.Complete() }

// Add registers a teardown to run when the subscriber unsubscribes.
func (s *Subscriber[T]) Add(t Teardown) { s.sub.Add(t) }

// Unsubscribe stops delivery and runs the registered teardowns in order,
// exactly once. Unlike Complete it forwards nothing downstream.
func (s *Subscriber[T]) Unsubscribe() { s.sub.Unsubscribe() }

// Stopped reports whether the subscriber still forwards values.
func (s *Subscriber[T]) Stopped() bool { return s.sub.Stopped() }
