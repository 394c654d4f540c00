package rx

// Listener is an event callback. Its arguments are whatever the target
// fires.
type Listener func(args ...any)

// EventTarget is anything that can register event listeners.
// AddEventListener returns the remover for exactly the listener it
// registered; options are passed through opaquely and their meaning belongs
// to the target.
type EventTarget interface {
	AddEventListener(event string, listener Listener, options ...any) (remove func())
}

// FromEvent emits the target's events: the single callback argument when
// there is exactly one, the full argument slice otherwise. The teardown
// removes the registered listener.
func FromEvent(target EventTarget, event string, options ...any) Observable[any] {
	return FromEventWith(target, event, func(args ...any) any {
		if len(args) == 1 {
			return args[0]
		}
		return args
	}, options...)
}

// FromEventWith emits selector applied to the raw callback arguments.
func FromEventWith[T any](target EventTarget, event string, selector func(args ...any) T, options ...any) Observable[T] {
	return NewObservable(func(sub *Subscriber[T]) Teardown {
		return target.AddEventListener(event, func(args ...any) {
			sub.Next(selector(args...))
		}, options...)
	})
}
