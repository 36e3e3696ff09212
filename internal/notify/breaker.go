package notify

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker/v2"

	"feed-catalog/internal/logger"
)

// Breaker stops calling a failing notifier for a while so submissions are
// not held up by a dead broker.
type Breaker struct {
	next Notifier
	cb   *gobreaker.CircuitBreaker[struct{}]
}

func NewBreaker(name string, next Notifier) *Breaker {
	var st gobreaker.Settings
	st.Name = name
	st.Timeout = 30 * time.Second
	st.ReadyToTrip = func(counts gobreaker.Counts) bool {
		failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
		return counts.Requests >= 3 && failureRatio >= 0.6
	}
	// a caller that went away says nothing about the downstream's health
	st.IsSuccessful = func(err error) bool {
		return err == nil || errors.Is(err, context.Canceled)
	}
	st.OnStateChange = func(name string, from, to gobreaker.State) {
		logger.Warnf("notifier %s breaker %s -> %s", name, from, to)
	}

	return &Breaker{next: next, cb: gobreaker.NewCircuitBreaker[struct{}](st)}
}

func (b *Breaker) Notify(ctx context.Context, e Event) error {
	_, err := b.cb.Execute(func() (struct{}, error) {
		return struct{}{}, b.next.Notify(ctx, e)
	})
	return err
}

func (b *Breaker) State() gobreaker.State {
	return b.cb.State()
}
