package notify

import (
	"context"
	"time"

	"go.uber.org/multierr"

	"feed-catalog/internal/logger"
)

// Event is an accepted submission handed to downstream systems.
type Event struct {
	Kind    string    `json:"kind"`
	ID      string    `json:"id"`
	At      time.Time `json:"at"`
	Payload any       `json:"payload"`
}

// Notifier delivers events downstream. Implementations must honor ctx.
type Notifier interface {
	Notify(ctx context.Context, e Event) error
}

// LogNotifier writes the event to the structured log.
type LogNotifier struct{}

func (LogNotifier) Notify(ctx context.Context, e Event) error {
	logger.FromContext(ctx).Info().
		Str("kind", e.Kind).
		Str("confirmation_id", e.ID).
		Time("at", e.At).
		Interface("payload", e.Payload).
		Msg("inquiry.accepted")
	return nil
}

// Multi fans an event out to every notifier and joins their errors.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, e Event) error {
	var err error
	for _, n := range m {
		err = multierr.Append(err, n.Notify(ctx, e))
	}
	return err
}
