package tx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEmptyContext(t *testing.T) {
	got, ok := From(context.Background())
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestWithTxNilIsNoOp(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, ctx, WithTx(ctx, nil))
}
