// Package relational adapts the PostgreSQL system of record to the backend
// adapter contract. This store is pure I/O; status classification and
// failure policy belong to the orchestrators.
package relational

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"

	"custodian/internal/lifecycle/ports"
	id "custodian/pkg/domain"
	txcontext "custodian/pkg/platform/tx"
)

type Store struct {
	db *sql.DB
}

// New constructs a PostgreSQL-backed relational adapter.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Name() string {
	return ports.ComponentRelationalStore
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

// record mirrors one row of the user_records table.
type record struct {
	FieldName      string          `json:"field_name"`
	Classification string          `json:"classification"`
	Payload        json.RawMessage `json:"payload"`
	CreatedAt      time.Time       `json:"created_at"`
	Restricted     bool            `json:"restricted"`
}

// Export returns every structured record held for the user as a JSON array,
// or (nil, nil) when the store holds nothing for them.
func (s *Store) Export(ctx context.Context, userID id.UserID) (json.RawMessage, error) {
	query := `
		SELECT field_name, classification, payload, created_at, restricted
		FROM user_records
		WHERE user_id = $1
		ORDER BY field_name
	`
	rows, err := s.db.QueryContext(ctx, query, userID.String())
	if err != nil {
		return nil, fmt.Errorf("export user records: %w", err)
	}
	defer rows.Close()

	var records []record
	for rows.Next() {
		var r record
		if err := rows.Scan(&r.FieldName, &r.Classification, &r.Payload, &r.CreatedAt, &r.Restricted); err != nil {
			return nil, fmt.Errorf("scan user record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("export user records: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	payload, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("marshal user records: %w", err)
	}
	return payload, nil
}

// Delete removes every record for the user. Deleting an absent user is a
// no-op, which keeps the operation idempotent.
func (s *Store) Delete(ctx context.Context, userID id.UserID) error {
	if _, err := s.execer(ctx).ExecContext(ctx,
		`DELETE FROM user_records WHERE user_id = $1`, userID.String(),
	); err != nil {
		return fmt.Errorf("delete user records: %w", err)
	}
	return nil
}

// DeleteBatch removes every record for N users in one transaction, so an
// administrative campaign costs one round trip instead of N.
func (s *Store) DeleteBatch(ctx context.Context, userIDs []id.UserID) error {
	if len(userIDs) == 0 {
		return nil
	}
	ids := make([]string, len(userIDs))
	for i, u := range userIDs {
		ids[i] = u.String()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin batch delete: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM user_records WHERE user_id = ANY($1)`, pq.Array(ids),
	); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("batch delete user records: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit batch delete: %w", err)
	}
	return nil
}

// Restrict flips the reversible processing-restriction flag. Data is
// untouched; export output must be byte-identical across a freeze/unfreeze
// round trip.
func (s *Store) Restrict(ctx context.Context, userID id.UserID) error {
	if _, err := s.execer(ctx).ExecContext(ctx,
		`UPDATE user_records SET restricted = TRUE WHERE user_id = $1`, userID.String(),
	); err != nil {
		return fmt.Errorf("restrict user records: %w", err)
	}
	return nil
}

// Unrestrict reverses Restrict.
func (s *Store) Unrestrict(ctx context.Context, userID id.UserID) error {
	if _, err := s.execer(ctx).ExecContext(ctx,
		`UPDATE user_records SET restricted = FALSE WHERE user_id = $1`, userID.String(),
	); err != nil {
		return fmt.Errorf("unrestrict user records: %w", err)
	}
	return nil
}

// DeleteAged removes records of one classification created before the
// cutoff. Used by the retention sweeper; restricted rows are kept because
// restricted data may not be actively processed, including by cleanup.
func (s *Store) DeleteAged(ctx context.Context, classification id.DataClassification, before time.Time) (int64, error) {
	res, err := s.execer(ctx).ExecContext(ctx, `
		DELETE FROM user_records
		WHERE classification = $1 AND created_at < $2 AND restricted = FALSE
	`, classification.String(), before)
	if err != nil {
		return 0, fmt.Errorf("delete aged records: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("aged rows affected: %w", err)
	}
	return n, nil
}
