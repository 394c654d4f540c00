package internal

// Producer starts one execution for one subscriber. It may return a
// teardown to run when that subscriber unsubscribes.
type Producer func(*Subscriber) Teardown

// Observable is an immutable reference to a producer function. Every
// Subscribe call runs the producer again (cold semantics); sharing, if any,
// lives in the producer's own state, as in Subject.
type Observable struct {
	producer Producer
}

func NewObservable(producer Producer) *Observable {
	return &Observable{producer: producer}
}

// Subscribe builds a subscriber around dest and invokes the producer
// synchronously on the caller's stack, so synchronously-emitted values are
// delivered before Subscribe returns. Panics inside the producer propagate
// to the caller. The subscriber is the subscription handle.
func (o *Observable) Subscribe(dest Observer) *Subscriber {
	sub := NewSubscriber(dest)
	sub.Add(o.producer(sub))
	return sub
}
