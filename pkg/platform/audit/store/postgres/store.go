// Package postgres implements audit.Store using the transactional outbox
// pattern. Events are written to the outbox table and relayed to Kafka by
// the outbox worker; Kafka is the long-term source of truth for the trail.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	audit "custodian/pkg/platform/audit"
	txcontext "custodian/pkg/platform/tx"
)

type Store struct {
	db *sql.DB
}

// New creates a PostgreSQL audit store that writes to the outbox.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *Store) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

// outboxPayload is the JSON structure relayed to Kafka. Field names match
// audit.Event for deserialization by downstream consumers.
type outboxPayload struct {
	ID          string `json:"ID"`
	Category    string `json:"Category"`
	Timestamp   string `json:"Timestamp"`
	SubjectHash string `json:"SubjectHash,omitempty"`
	Action      string `json:"Action"`
	Status      string `json:"Status,omitempty"`
	Detail      string `json:"Detail,omitempty"`
	RequestID   string `json:"RequestID,omitempty"`
	ActorID     string `json:"ActorID,omitempty"`
}

// Append writes an audit event to the outbox table for Kafka relay.
func (s *Store) Append(ctx context.Context, event audit.Event) error {
	eventID := uuid.New()

	// Always derive category from action - eventCategories is the source of truth
	category := audit.AuditEvent(event.Action).Category()

	payload := outboxPayload{
		ID:          eventID.String(),
		Category:    string(category),
		Timestamp:   event.Timestamp.Format(time.RFC3339Nano),
		SubjectHash: event.SubjectHash,
		Action:      event.Action,
		Status:      event.Status,
		Detail:      event.Detail,
		RequestID:   event.RequestID,
		ActorID:     event.ActorID,
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal audit payload: %w", err)
	}

	aggregateID := eventID.String()
	if event.SubjectHash != "" {
		// Partition the trail by subject so one user's events stay ordered.
		aggregateID = event.SubjectHash
	}

	query := `
		INSERT INTO audit_outbox (id, aggregate_id, event_type, payload, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := s.execer(ctx).ExecContext(ctx, query,
		eventID, aggregateID, event.Action, payloadBytes, time.Now(),
	); err != nil {
		return fmt.Errorf("append audit event: %w", err)
	}
	return nil
}

// ListBySubject reads back events for a hashed subject from the outbox.
// Intended for operational inspection; consumers should read from Kafka.
func (s *Store) ListBySubject(ctx context.Context, subjectHash string) ([]audit.Event, error) {
	query := `
		SELECT payload
		FROM audit_outbox
		WHERE aggregate_id = $1
		ORDER BY created_at ASC
	`
	rows, err := s.db.QueryContext(ctx, query, subjectHash)
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer rows.Close()

	var events []audit.Event
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		var p outboxPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("unmarshal audit payload: %w", err)
		}
		ts, _ := time.Parse(time.RFC3339Nano, p.Timestamp)
		events = append(events, audit.Event{
			Category:    audit.EventCategory(p.Category),
			Timestamp:   ts,
			SubjectHash: p.SubjectHash,
			Action:      p.Action,
			Status:      p.Status,
			Detail:      p.Detail,
			RequestID:   p.RequestID,
			ActorID:     p.ActorID,
		})
	}
	return events, rows.Err()
}
