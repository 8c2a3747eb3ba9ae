package audit

import "context"

// Store persists audit events. Implementations must be append-only; the
// trail is a legal record and is never rewritten.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListBySubject(ctx context.Context, subjectHash string) ([]Event, error)
}
