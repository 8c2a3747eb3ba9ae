//go:build integration

package containers

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

// schema holds the tables the integration tests exercise. Kept in one place
// so adapter tests and outbox tests share a single source of truth.
const schema = `
CREATE TABLE IF NOT EXISTS user_records (
	user_id        UUID        NOT NULL,
	field_name     TEXT        NOT NULL,
	classification TEXT        NOT NULL,
	payload        JSONB       NOT NULL,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
	restricted     BOOLEAN     NOT NULL DEFAULT FALSE,
	PRIMARY KEY (user_id, field_name)
);

CREATE TABLE IF NOT EXISTS audit_outbox (
	id           UUID        PRIMARY KEY,
	aggregate_id TEXT        NOT NULL,
	event_type   TEXT        NOT NULL,
	payload      JSONB       NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL,
	published_at TIMESTAMPTZ
);
CREATE INDEX IF NOT EXISTS idx_audit_outbox_unpublished
	ON audit_outbox (created_at) WHERE published_at IS NULL;
`

// PostgresContainer wraps a testcontainers PostgreSQL instance with the
// custodian schema applied.
type PostgresContainer struct {
	Container testcontainers.Container
	URL       string
	DB        *sql.DB
}

// NewPostgresContainer starts a PostgreSQL container, applies the schema,
// and terminates the container when the test finishes.
func NewPostgresContainer(t *testing.T) *PostgresContainer {
	t.Helper()

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("custodian_test"),
		tcpostgres.WithUsername("custodian"),
		tcpostgres.WithPassword("custodian"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	url, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get postgres connection string: %v", err)
	}

	db, err := sql.Open("postgres", url)
	if err != nil {
		t.Fatalf("failed to open postgres: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	pingCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		t.Fatalf("failed to ping postgres: %v", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		t.Fatalf("failed to apply schema: %v", err)
	}

	return &PostgresContainer{
		Container: container,
		URL:       url,
		DB:        db,
	}
}

// Truncate empties the custodian tables. Use between tests for isolation.
func (p *PostgresContainer) Truncate(ctx context.Context) error {
	_, err := p.DB.ExecContext(ctx, `TRUNCATE user_records, audit_outbox`)
	return err
}
