package retention

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "custodian/pkg/domain"
)

// recordingDeleter captures per-tier cutoffs so tests can check which tiers
// were swept and with what cutoff.
type recordingDeleter struct {
	mu      sync.Mutex
	cutoffs map[id.DataClassification]time.Time
	errFor  id.DataClassification
	deleted int64
}

func (d *recordingDeleter) DeleteAged(ctx context.Context, c id.DataClassification, before time.Time) (int64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cutoffs == nil {
		d.cutoffs = make(map[id.DataClassification]time.Time)
	}
	d.cutoffs[c] = before
	if c == d.errFor {
		return 0, errors.New("sweep failed")
	}
	return d.deleted, nil
}

func TestSweepSkipsIndefiniteTiers(t *testing.T) {
	store := &recordingDeleter{deleted: 3}
	s, err := NewSweeper(DefaultPolicy(), store, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, err)

	require.NoError(t, s.Sweep(context.Background()))

	assert.NotContains(t, store.cutoffs, id.ClassificationPublic)
	assert.NotContains(t, store.cutoffs, id.ClassificationInternal)
	assert.Contains(t, store.cutoffs, id.ClassificationSensitive)
	assert.Contains(t, store.cutoffs, id.ClassificationSpecialCategory)
	assert.Contains(t, store.cutoffs, id.ClassificationFinancial)
}

func TestSweepContinuesPastTierFailure(t *testing.T) {
	store := &recordingDeleter{errFor: id.ClassificationSensitive}
	s, err := NewSweeper(DefaultPolicy(), store, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, err)

	err = s.Sweep(context.Background())

	assert.Error(t, err)
	// The failing tier did not stop the later tiers.
	assert.Contains(t, store.cutoffs, id.ClassificationSpecialCategory)
	assert.Contains(t, store.cutoffs, id.ClassificationFinancial)
}

func TestSweepCutoffMatchesWindow(t *testing.T) {
	store := &recordingDeleter{}
	s, err := NewSweeper(DefaultPolicy(), store)
	require.NoError(t, err)

	before := time.Now().UTC()
	require.NoError(t, s.Sweep(context.Background()))
	after := time.Now().UTC()

	cutoff := store.cutoffs[id.ClassificationSpecialCategory]
	window := 90 * 24 * time.Hour
	assert.False(t, cutoff.Before(before.Add(-window)))
	assert.False(t, cutoff.After(after.Add(-window)))
}

func TestNewSweeperValidation(t *testing.T) {
	_, err := NewSweeper(nil, &recordingDeleter{})
	assert.Error(t, err)

	_, err = NewSweeper(DefaultPolicy(), nil)
	assert.Error(t, err)
}
