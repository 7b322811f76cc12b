package audit

import (
	"context"
	"errors"
	"time"
)

// Store is the append-only persistence surface for audit events.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByResident(ctx context.Context, residentID string) ([]Event, error)
}

// Publisher captures structured audit events. It is append-only and uses the
// storage layer for persistence so tests can swap sinks easily.
type Publisher struct {
	store Store
}

func NewPublisher(store Store) *Publisher {
	return &Publisher{store: store}
}

func (p *Publisher) Emit(ctx context.Context, base Event) error {
	if base.Timestamp.IsZero() {
		base.Timestamp = time.Now()
	}
	return p.store.Append(ctx, base)
}

func (p *Publisher) List(ctx context.Context, residentID string) ([]Event, error) {
	return p.store.ListByResident(ctx, residentID)
}

// AsyncPublisher queues events for a background Worker instead of writing
// inline, keeping audit persistence off the request path. Emit never blocks:
// when the buffer is full the event is dropped and the error surfaces to the
// caller's logger.
type AsyncPublisher struct {
	inbox chan Event
}

func NewAsyncPublisher(buffer int) *AsyncPublisher {
	return &AsyncPublisher{inbox: make(chan Event, buffer)}
}

func (p *AsyncPublisher) Emit(_ context.Context, base Event) error {
	if base.Timestamp.IsZero() {
		base.Timestamp = time.Now()
	}
	select {
	case p.inbox <- base:
		return nil
	default:
		return errors.New("audit inbox full, event dropped")
	}
}

// Inbox is the channel a Worker drains.
func (p *AsyncPublisher) Inbox() <-chan Event {
	return p.inbox
}
