package rx

// Operator is a pure Observable to Observable transform, composed left to
// right with Pipe. Operators that change the element type, like Map, are
// applied directly.
type Operator[T any] func(Observable[T]) Observable[T]

// Pipe folds the operators over the receiver, left to right. No operators
// returns the receiver unchanged; a single operator is applied directly.
func (o Observable[T]) Pipe(ops ...Operator[T]) Observable[T] {
	out := o
	for _, op := range ops {
		out = op(out)
	}

	return out
}

// Map emits project(v) for every source value v, preserving count and
// order.
func Map[T, R any](project func(T) R) func(Observable[T]) Observable[R] {
	return func(source Observable[T]) Observable[R] {
		return NewObservable(func(sub *Subscriber[R]) Teardown {
			inner := source.Subscribe(Observer[T]{
				Next:     func(v T) { sub.Next(project(v)) },
				Error:    sub.Error,
				Complete: sub.Complete,
			})

			return inner.Unsubscribe
		})
	}
}

// Filter forwards only the values pred accepts, preserving source order.
func Filter[T any](pred func(T) bool) Operator[T] {
	return func(source Observable[T]) Observable[T] {
		return NewObservable(func(sub *Subscriber[T]) Teardown {
			inner := source.Subscribe(Observer[T]{
				Next: func(v T) {
					if pred(v) {
						sub.Next(v)
					}
				},
				Error:    sub.Error,
				Complete: sub.Complete,
			})

			return inner.Unsubscribe
		})
	}
}

// Take forwards the first count values, completing the downstream with the
// last one. A count of zero or less never forwards and never completes.
func Take[T any](count int) Operator[T] {
	return func(source Observable[T]) Observable[T] {
		return NewObservable(func(sub *Subscriber[T]) Teardown {
			seen := 0

			inner := source.Subscribe(Observer[T]{
				Next: func(v T) {
					if count <= 0 {
						return
					}

					sub.Next(v)
					seen++

					if seen >= count {
						sub.Complete()
					}
				},
				Error:    sub.Error,
				Complete: sub.Complete,
			})

			return inner.Unsubscribe
		})
	}
}
