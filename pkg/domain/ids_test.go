package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "custodian/pkg/domain-errors"
)

func TestParseUserID(t *testing.T) {
	t.Run("accepts valid UUID", func(t *testing.T) {
		id, err := ParseUserID("550e8400-e29b-41d4-a716-446655440000")
		require.NoError(t, err)
		assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", id.String())
		assert.False(t, id.IsNil())
	})

	t.Run("rejects empty input", func(t *testing.T) {
		_, err := ParseUserID("")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects non-UUID input", func(t *testing.T) {
		_, err := ParseUserID("not-a-uuid")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects nil UUID", func(t *testing.T) {
		_, err := ParseUserID("00000000-0000-0000-0000-000000000000")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})
}

func TestNewUserID(t *testing.T) {
	a := NewUserID()
	b := NewUserID()

	assert.False(t, a.IsNil())
	assert.NotEqual(t, a, b)

	roundTrip, err := ParseUserID(a.String())
	require.NoError(t, err)
	assert.Equal(t, a, roundTrip)
}

func TestUserIDZeroValueIsNil(t *testing.T) {
	var id UserID
	assert.True(t, id.IsNil())
}
