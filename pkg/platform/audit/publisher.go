package audit

import (
	"context"
	"time"
)

// Publisher captures structured audit events. It is append-only and uses the
// storage layer for persistence so tests can swap sinks easily.
type Publisher struct {
	store Store
}

func NewPublisher(store Store) *Publisher {
	return &Publisher{store: store}
}

// Emit records an event, stamping the timestamp and category when absent.
func (p *Publisher) Emit(ctx context.Context, event Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if event.Category == "" {
		event.Category = AuditEvent(event.Action).Category()
	}
	return p.store.Append(ctx, event)
}

// ListBySubject returns the trail for one (hashed) subject.
func (p *Publisher) ListBySubject(ctx context.Context, subjectHash string) ([]Event, error) {
	return p.store.ListBySubject(ctx, subjectHash)
}
