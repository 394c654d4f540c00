package rx

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// capture returns a subscriber whose producer emits nothing, so tests can
// drive it by hand, plus the logs it appends to.
func capture(t *testing.T) (*Subscriber[int], *[]string) {
	t.Helper()

	log := &[]string{}
	var producer *Subscriber[int]

	NewObservable(func(sub *Subscriber[int]) Teardown {
		producer = sub
		return nil
	}).Subscribe(Observer[int]{
		Next:     func(v int) { *log = append(*log, "next") },
		Error:    func(err error) { *log = append(*log, "error: "+err.Error()) },
		Complete: func() { *log = append(*log, "complete") },
	})

	return producer, log
}

func TestSubscriber(t *testing.T) {
	t.Run("stops forwarding next after complete", func(t *testing.T) {
		sub, log := capture(t)

		sub.Next(1)
		sub.Complete()
		sub.Next(2)

		assert.Equal(t, []string{"next", "complete"}, *log)
	})

	t.Run("complete is idempotent", func(t *testing.T) {
		sub, log := capture(t)

		sub.Complete()
		sub.Complete()

		assert.Equal(t, []string{"complete"}, *log)
	})

	t.Run("error is forwarded even after complete", func(t *testing.T) {
		sub, log := capture(t)

		sub.Complete()
		sub.Error(errors.New("late"))

		assert.Equal(t, []string{"complete", "error: late"}, *log)
	})

	t.Run("error is not idempotent", func(t *testing.T) {
		sub, log := capture(t)

		sub.Error(errors.New("boom"))
		sub.Error(errors.New("boom"))

		assert.Equal(t, []string{"error: boom", "error: boom"}, *log)
	})

	t.Run("unsubscribing stops next without completing", func(t *testing.T) {
		sub, log := capture(t)

		sub.Next(1)
		sub.Unsubscribe()
		sub.Next(2)

		assert.Equal(t, []string{"next"}, *log)
		assert.True(t, sub.Stopped())
	})
}
