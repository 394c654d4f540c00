package rx

import (
	"reflect"

	"github.com/AnatoleLucet/rx/internal"
)

// Of emits the given values in order then completes.
func Of[T any](values ...T) Observable[T] {
	return FromSlice(values)
}

// FromSlice emits every element in index order then completes, all
// synchronously within the Subscribe call. There is no asynchronous
// boundary, so such an execution cannot be cancelled mid-flight.
func FromSlice[T any](items []T) Observable[T] {
	return NewObservable(func(sub *Subscriber[T]) Teardown {
		for _, v := range items {
			sub.Next(v)
		}
		sub.Complete()

		return nil
	})
}

// Empty completes immediately on subscribe.
func Empty[T any]() Observable[T] {
	return NewObservable(func(sub *Subscriber[T]) Teardown {
		sub.Complete()
		return nil
	})
}

// FromFunc runs fn on its own goroutine once per subscriber: its result is
// emitted and the stream completes, or its error is forwarded.
// Unsubscribing does not stop the underlying call; a late result is only
// governed by the guards the downstream retains.
func FromFunc[T any](fn func() (T, error)) Observable[T] {
	return NewObservable(func(sub *Subscriber[T]) Teardown {
		go func() {
			v, err := fn()
			if err != nil {
				sub.Error(err)
				return
			}

			sub.Next(v)
			sub.Complete()
		}()

		return nil
	})
}

// FromChan emits every value received from ch and completes when ch closes.
// The teardown detaches the forwarding goroutine without closing ch.
func FromChan[T any](ch <-chan T) Observable[T] {
	return NewObservable(func(sub *Subscriber[T]) Teardown {
		done := make(chan struct{})

		go func() {
			for {
				select {
				case v, ok := <-ch:
					if !ok {
						sub.Complete()
						return
					}
					sub.Next(v)
				case <-done:
					return
				}
			}
		}()

		return func() { close(done) }
	})
}

// From lifts input into an observable by classification: observables and
// subjects pass through, slices, arrays and receivable channels are
// adapted, a result function becomes a single-emission stream, and
// anything else is an immediately-completing empty stream.
func From[T any](input any) Observable[T] {
	switch v := input.(type) {
	case Observable[T]:
		return v
	case *Subject[T]:
		return v.Observable
	case []T:
		return FromSlice(v)
	case chan T:
		return FromChan(v)
	case <-chan T:
		return FromChan(v)
	case func() (T, error):
		return FromFunc(v)
	}

	if internal.ArrayLike(input) {
		return fromReflectedSlice[T](input)
	}
	if internal.Receivable(input) {
		return fromReflectedChan[T](input)
	}

	return Empty[T]()
}

// fromReflectedSlice covers array-likes the type switch can't name, e.g.
// fixed-size arrays.
func fromReflectedSlice[T any](input any) Observable[T] {
	return NewObservable(func(sub *Subscriber[T]) Teardown {
		val := reflect.ValueOf(input)
		for i := 0; i < val.Len(); i++ {
			sub.Next(as[T](val.Index(i).Interface()))
		}
		sub.Complete()

		return nil
	})
}

// fromReflectedChan covers receive-only channels of assignable element
// types.
func fromReflectedChan[T any](input any) Observable[T] {
	return NewObservable(func(sub *Subscriber[T]) Teardown {
		done := make(chan struct{})

		go func() {
			cases := []reflect.SelectCase{
				{Dir: reflect.SelectRecv, Chan: reflect.ValueOf(input)},
				{Dir: reflect.SelectRecv, Chan: reflect.ValueOf(done)},
			}

			for {
				chosen, recv, ok := reflect.Select(cases)
				if chosen == 1 {
					return
				}
				if !ok {
					sub.Complete()
					return
				}

				sub.Next(as[T](recv.Interface()))
			}
		}()

		return func() { close(done) }
	})
}
