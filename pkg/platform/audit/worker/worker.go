// Package worker relays audit events from the postgres outbox to Kafka.
// The relay is at-least-once: a row is marked published only after the
// produce is acknowledged, so consumers must tolerate duplicates.
package worker

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
)

const defaultPollInterval = 2 * time.Second
const defaultBatchSize = 100

// Producer is the subset of the Kafka client the relay needs.
type Producer interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
}

// Relay drains the audit outbox into a Kafka topic.
type Relay struct {
	db       *sql.DB
	producer Producer
	topic    string
	logger   *slog.Logger
	interval time.Duration
	batch    int
}

// Option configures the Relay.
type Option func(*Relay)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Relay) { r.logger = logger }
}

func WithPollInterval(d time.Duration) Option {
	return func(r *Relay) { r.interval = d }
}

func WithBatchSize(n int) Option {
	return func(r *Relay) { r.batch = n }
}

// NewRelay constructs an outbox relay.
func NewRelay(db *sql.DB, producer Producer, topic string, opts ...Option) (*Relay, error) {
	if db == nil {
		return nil, fmt.Errorf("outbox db is required")
	}
	if producer == nil {
		return nil, fmt.Errorf("kafka producer is required")
	}
	r := &Relay{
		db:       db,
		producer: producer,
		topic:    topic,
		interval: defaultPollInterval,
		batch:    defaultBatchSize,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Run polls the outbox until the context is cancelled.
func (r *Relay) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := r.drainOnce(ctx); err != nil && r.logger != nil {
				r.logger.WarnContext(ctx, "audit outbox drain failed", "error", err)
			}
		}
	}
}

type outboxRow struct {
	id          string
	aggregateID string
	payload     []byte
}

func (r *Relay) drainOnce(ctx context.Context) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, aggregate_id, payload
		FROM audit_outbox
		WHERE published_at IS NULL
		ORDER BY created_at ASC
		LIMIT $1
	`, r.batch)
	if err != nil {
		return fmt.Errorf("query outbox: %w", err)
	}

	var pending []outboxRow
	for rows.Next() {
		var row outboxRow
		if err := rows.Scan(&row.id, &row.aggregateID, &row.payload); err != nil {
			rows.Close()
			return fmt.Errorf("scan outbox row: %w", err)
		}
		pending = append(pending, row)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	for _, row := range pending {
		record := &kgo.Record{
			Topic: r.topic,
			// Key by aggregate so one subject's trail stays in one partition.
			Key:   []byte(row.aggregateID),
			Value: row.payload,
		}
		if err := r.producer.ProduceSync(ctx, record).FirstErr(); err != nil {
			return fmt.Errorf("produce audit event %s: %w", row.id, err)
		}
		if _, err := r.db.ExecContext(ctx,
			`UPDATE audit_outbox SET published_at = $1 WHERE id = $2`,
			time.Now(), row.id,
		); err != nil {
			return fmt.Errorf("mark outbox row published: %w", err)
		}
	}
	return nil
}
