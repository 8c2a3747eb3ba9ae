package retention

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "custodian/pkg/domain"
	dErrors "custodian/pkg/domain-errors"
)

func validWindows() map[id.DataClassification]int {
	return map[id.DataClassification]int{
		id.ClassificationPublic:          Indefinite,
		id.ClassificationInternal:        Indefinite,
		id.ClassificationSensitive:       365,
		id.ClassificationSpecialCategory: 90,
		id.ClassificationFinancial:       2555,
	}
}

func TestNewPolicyValidation(t *testing.T) {
	t.Run("accepts valid configuration", func(t *testing.T) {
		p, err := NewPolicy(validWindows())
		require.NoError(t, err)

		days, ok := p.Window(id.ClassificationSensitive)
		require.True(t, ok)
		assert.Equal(t, 365, days)
	})

	t.Run("rejects missing tier", func(t *testing.T) {
		windows := validWindows()
		delete(windows, id.ClassificationFinancial)

		_, err := NewPolicy(windows)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects window below sentinel", func(t *testing.T) {
		windows := validWindows()
		windows[id.ClassificationSensitive] = -2

		_, err := NewPolicy(windows)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects indefinite special category", func(t *testing.T) {
		windows := validWindows()
		windows[id.ClassificationSpecialCategory] = Indefinite

		_, err := NewPolicy(windows)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects indefinite financial", func(t *testing.T) {
		windows := validWindows()
		windows[id.ClassificationFinancial] = Indefinite

		_, err := NewPolicy(windows)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects unknown tier", func(t *testing.T) {
		windows := validWindows()
		windows[id.DataClassification("made_up")] = 10

		_, err := NewPolicy(windows)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})
}

func TestDefaultPolicyDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() { DefaultPolicy() })
}

func TestIsExpired(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	windows := validWindows()
	windows[id.ClassificationSensitive] = 0 // not retained once written
	p, err := NewPolicy(windows)
	require.NoError(t, err)

	tests := []struct {
		name           string
		classification id.DataClassification
		createdAt      time.Time
		want           bool
	}{
		{
			name:           "indefinite never expires",
			classification: id.ClassificationPublic,
			createdAt:      now.AddDate(-50, 0, 0),
			want:           false,
		},
		{
			name:           "zero-day window expires immediately",
			classification: id.ClassificationSensitive,
			createdAt:      now,
			want:           true,
		},
		{
			name:           "inside positive window",
			classification: id.ClassificationSpecialCategory,
			createdAt:      now.Add(-89 * 24 * time.Hour),
			want:           false,
		},
		{
			name:           "exactly at the window boundary",
			classification: id.ClassificationSpecialCategory,
			createdAt:      now.Add(-90 * 24 * time.Hour),
			want:           false,
		},
		{
			name:           "past the window",
			classification: id.ClassificationSpecialCategory,
			createdAt:      now.Add(-90*24*time.Hour - time.Second),
			want:           true,
		},
		{
			name:           "unknown tier fails safe",
			classification: id.DataClassification("made_up"),
			createdAt:      now,
			want:           true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.IsExpired(tt.classification, tt.createdAt, now))
		})
	}
}
