//go:build integration

package relational

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "custodian/pkg/domain"
	"custodian/pkg/testutil/containers"
)

func seedRecord(t *testing.T, pg *containers.PostgresContainer, userID id.UserID, field string, classification id.DataClassification, createdAt time.Time) {
	t.Helper()
	_, err := pg.DB.ExecContext(context.Background(), `
		INSERT INTO user_records (user_id, field_name, classification, payload, created_at)
		VALUES ($1, $2, $3, '{"v":1}', $4)
	`, userID.String(), field, classification.String(), createdAt)
	require.NoError(t, err)
}

func countRecords(t *testing.T, pg *containers.PostgresContainer, userID id.UserID) int {
	t.Helper()
	var n int
	err := pg.DB.QueryRowContext(context.Background(),
		`SELECT COUNT(*) FROM user_records WHERE user_id = $1`, userID.String(),
	).Scan(&n)
	require.NoError(t, err)
	return n
}

func TestStorePostgres(t *testing.T) {
	pg := containers.NewPostgresContainer(t)
	store := New(pg.DB)
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("export returns rows and nil for absent user", func(t *testing.T) {
		require.NoError(t, pg.Truncate(ctx))
		userID := id.NewUserID()
		seedRecord(t, pg, userID, "email", id.ClassificationInternal, now)
		seedRecord(t, pg, userID, "ssn", id.ClassificationSpecialCategory, now)

		payload, err := store.Export(ctx, userID)
		require.NoError(t, err)
		assert.NotNil(t, payload)

		absent, err := store.Export(ctx, id.NewUserID())
		require.NoError(t, err)
		assert.Nil(t, absent)
	})

	t.Run("delete is idempotent and scoped", func(t *testing.T) {
		require.NoError(t, pg.Truncate(ctx))
		userID := id.NewUserID()
		other := id.NewUserID()
		seedRecord(t, pg, userID, "email", id.ClassificationInternal, now)
		seedRecord(t, pg, other, "email", id.ClassificationInternal, now)

		require.NoError(t, store.Delete(ctx, userID))
		require.NoError(t, store.Delete(ctx, userID))

		assert.Equal(t, 0, countRecords(t, pg, userID))
		assert.Equal(t, 1, countRecords(t, pg, other))
	})

	t.Run("batch delete removes all listed users in one call", func(t *testing.T) {
		require.NoError(t, pg.Truncate(ctx))
		userA := id.NewUserID()
		userB := id.NewUserID()
		survivor := id.NewUserID()
		seedRecord(t, pg, userA, "email", id.ClassificationInternal, now)
		seedRecord(t, pg, userB, "email", id.ClassificationInternal, now)
		seedRecord(t, pg, survivor, "email", id.ClassificationInternal, now)

		require.NoError(t, store.DeleteBatch(ctx, []id.UserID{userA, userB}))

		assert.Equal(t, 0, countRecords(t, pg, userA))
		assert.Equal(t, 0, countRecords(t, pg, userB))
		assert.Equal(t, 1, countRecords(t, pg, survivor))
	})

	t.Run("restriction round trip leaves export byte-identical", func(t *testing.T) {
		require.NoError(t, pg.Truncate(ctx))
		userID := id.NewUserID()
		seedRecord(t, pg, userID, "email", id.ClassificationInternal, now)

		before, err := store.Export(ctx, userID)
		require.NoError(t, err)

		require.NoError(t, store.Restrict(ctx, userID))
		require.NoError(t, store.Unrestrict(ctx, userID))

		after, err := store.Export(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("aged delete respects tier and restriction", func(t *testing.T) {
		require.NoError(t, pg.Truncate(ctx))
		aged := id.NewUserID()
		fresh := id.NewUserID()
		frozen := id.NewUserID()
		old := now.Add(-100 * 24 * time.Hour)
		seedRecord(t, pg, aged, "diagnosis", id.ClassificationSpecialCategory, old)
		seedRecord(t, pg, fresh, "diagnosis", id.ClassificationSpecialCategory, now)
		seedRecord(t, pg, frozen, "diagnosis", id.ClassificationSpecialCategory, old)
		require.NoError(t, store.Restrict(ctx, frozen))

		cutoff := now.Add(-90 * 24 * time.Hour)
		deleted, err := store.DeleteAged(ctx, id.ClassificationSpecialCategory, cutoff)
		require.NoError(t, err)

		assert.Equal(t, int64(1), deleted)
		assert.Equal(t, 0, countRecords(t, pg, aged))
		assert.Equal(t, 1, countRecords(t, pg, fresh))
		// Restricted data is not actively processed, cleanup included.
		assert.Equal(t, 1, countRecords(t, pg, frozen))
	})
}
